package intent

import (
	"regexp"
	"strings"
)

// Dictionary lookups: "define serendipity", "definition of __", "meaning of
// __". Single words only; lookups resolve asynchronously.

var (
	reDefine        = regexp.MustCompile(`^(?:define|definition\s+of|meaning\s+of|what\s+does)\s+([a-z-]+)(?:\s+mean)?$`)
	reDefinePartial = regexp.MustCompile(`^(?:define|definition(?:\s+of)?|meaning(?:\s+of)?|what\s+does)\s*$`)
)

// DetectDictionary matches word definition requests.
func DetectDictionary(text string) *Result {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil
	}

	if m := reDefine.FindStringSubmatch(s); m != nil {
		word := m[1]
		return &Result{
			Kind:       KindDictionary,
			Loading:    true,
			Display:    "Looking up \"" + word + "\"...",
			Dictionary: &DictionaryRequest{Word: word},
		}
	}

	if reDefinePartial.MatchString(s) {
		return &Result{
			Kind:    KindDictionary,
			Partial: true,
			Display: strings.TrimSpace(text) + " ...",
		}
	}

	return nil
}
