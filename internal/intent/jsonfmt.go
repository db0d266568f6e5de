package intent

import (
	"bytes"
	"encoding/json"
	"strings"
)

// JSON formatting: any input that parses as a JSON object or array is
// pretty-printed with two-space indentation. Scalars are excluded, otherwise
// every number and quoted word would light up as JSON.

// DetectJSONFormat matches JSON objects and arrays and reindents them.
func DetectJSONFormat(text string) *Result {
	s := strings.TrimSpace(text)
	if len(s) < 2 {
		return nil
	}
	first := s[0]
	if first != '{' && first != '[' {
		return nil
	}

	if !json.Valid([]byte(s)) {
		// An opened-but-unclosed structure is a typing prefix.
		if balancedJSONPrefix(s) {
			return &Result{
				Kind:    KindJSONFormat,
				Partial: true,
				Display: "json ...",
			}
		}
		return nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(s), "", "  "); err != nil {
		return nil
	}
	pretty := buf.String()

	return &Result{
		Kind:    KindJSONFormat,
		Display: pretty,
		Copy:    pretty,
	}
}

// balancedJSONPrefix reports whether s could still become valid JSON with
// more typing: no closing token appears without its opener.
func balancedJSONPrefix(s string) bool {
	depth := 0
	inString := false
	escaped := false
	for _, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth > 0 || inString
}
