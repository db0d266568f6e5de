package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Regex testing: "regex <pattern> on <text>" runs the pattern over the text
// and shows the matches. A leading slash is reserved for the command palette,
// so patterns are typed bare.

var reRegexCommand = regexp.MustCompile(`^(?:regex|re)\s+(.+?)\s+on\s+(.+)$`)

// DetectRegex matches regex test requests.
func DetectRegex(text string) *Result {
	s := strings.TrimSpace(text)
	lower := strings.ToLower(s)
	if lower == "" {
		return nil
	}

	if m := reRegexCommand.FindStringSubmatch(s); m != nil {
		pattern, subject := m[1], m[2]
		re, err := regexp.Compile(pattern)
		if err != nil {
			return &Result{Kind: KindRegex, Err: "invalid pattern: " + compileHint(err)}
		}

		matches := re.FindAllString(subject, -1)
		if len(matches) == 0 {
			return &Result{
				Kind:    KindRegex,
				Display: "no matches",
				Detail:  pattern,
			}
		}

		display := strconv.Itoa(len(matches)) + " matches"
		if len(matches) == 1 {
			display = "1 match"
		}
		shown := matches
		if len(shown) > 5 {
			shown = shown[:5]
		}
		return &Result{
			Kind:    KindRegex,
			Display: display + ": " + strings.Join(shown, ", "),
			Detail:  pattern,
			Copy:    strings.Join(matches, "\n"),
		}
	}

	if lower == "regex" || strings.HasPrefix(lower, "regex ") {
		return &Result{Kind: KindRegex, Partial: true, Display: s + " ..."}
	}

	return nil
}

// compileHint trims the "error parsing regexp: " prefix Go puts on every
// compile error.
func compileHint(err error) string {
	msg := err.Error()
	return strings.TrimPrefix(msg, "error parsing regexp: ")
}
