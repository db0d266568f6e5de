package intent

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Translation: "translate <text> to <language>", "<text> in spanish".
// Detection parses and validates the target language; the actual lookup is
// async (resolve.go). Source language is always "auto" for now.

var languageAliases = map[string]string{
	"english":    "en",
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"italian":    "it",
	"portuguese": "pt",
	"dutch":      "nl",
	"russian":    "ru",
	"japanese":   "ja",
	"korean":     "ko",
	"chinese":    "zh",
	"mandarin":   "zh",
	"arabic":     "ar",
	"hindi":      "hi",
	"turkish":    "tr",
	"polish":     "pl",
	"swedish":    "sv",
	"norwegian":  "no",
	"danish":     "da",
	"finnish":    "fi",
	"greek":      "el",
	"hebrew":     "he",
	"thai":       "th",
	"vietnamese": "vi",
	"indonesian": "id",
	"ukrainian":  "uk",
	"czech":      "cs",
	"romanian":   "ro",
	"hungarian":  "hu",
}

var (
	reTranslate        = regexp.MustCompile(`^translate\s+(.+?)\s+(?:to|into|in)\s+([a-z]+)$`)
	reTranslatePartial = regexp.MustCompile(`^translate(?:\s+.*)?$`)
)

// targetLanguage resolves a language name or two-letter code, returning the
// ISO 639-1 code and an English display name.
func targetLanguage(s string) (code, name string, ok bool) {
	if c, found := languageAliases[s]; found {
		s = c
	} else if len(s) != 2 {
		return "", "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", "", false
	}
	return base.String(), display.English.Languages().Name(tag), true
}

// DetectTranslation matches translation requests and their typed prefixes.
func DetectTranslation(text string) *Result {
	s := strings.TrimSpace(text)
	lower := strings.ToLower(s)
	if lower == "" {
		return nil
	}

	if m := reTranslate.FindStringSubmatch(lower); m != nil {
		code, name, ok := targetLanguage(m[2])
		if ok {
			return &Result{
				Kind:    KindTranslator,
				Loading: true,
				Display: "Translating to " + name + "...",
				Translation: &TranslationRequest{
					Text:   m[1],
					From:   "auto",
					To:     code,
					ToName: name,
				},
			}
		}
		// "translate hello to sp" is an unfinished language, not a miss.
	}

	if reTranslatePartial.MatchString(lower) {
		return &Result{
			Kind:    KindTranslator,
			Partial: true,
			Display: s + " ...",
		}
	}

	return nil
}
