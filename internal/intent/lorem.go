package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Lorem ipsum generation: "lorem 20" produces twenty words of filler text,
// cycling the canonical passage. Word count is clamped to [1, 200].

const loremMaxWords = 200

var loremWords = strings.Fields("lorem ipsum dolor sit amet consectetur " +
	"adipiscing elit sed do eiusmod tempor incididunt ut labore et dolore " +
	"magna aliqua enim ad minim veniam quis nostrud exercitation ullamco " +
	"laboris nisi aliquip ex ea commodo consequat duis aute irure in " +
	"reprehenderit voluptate velit esse cillum eu fugiat nulla pariatur " +
	"excepteur sint occaecat cupidatat non proident sunt culpa qui officia " +
	"deserunt mollit anim id est laborum")

var reLorem = regexp.MustCompile(`^(?:lorem|lipsum|lorem\s+ipsum)(?:\s+(\d+))?$`)

// DetectLorem matches lorem ipsum requests. A bare "lorem" yields 30 words.
func DetectLorem(text string) *Result {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil
	}

	m := reLorem.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	count := 30
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return nil
		}
		count = n
	}
	if count < 1 {
		count = 1
	}
	if count > loremMaxWords {
		count = loremMaxWords
	}

	out := make([]string, count)
	for i := 0; i < count; i++ {
		out[i] = loremWords[i%len(loremWords)]
	}
	textOut := strings.Join(out, " ")
	textOut = strings.ToUpper(textOut[:1]) + textOut[1:] + "."

	return &Result{
		Kind:    KindLorem,
		Display: textOut,
		Detail:  strconv.Itoa(count) + " words",
	}
}
