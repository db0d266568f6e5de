package intent

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Word count: "wordcount <text>", "count words in <text>", "wc <text>".
// Counts words, characters, and sentences of the payload.

var wordCountPrefixes = []string{
	"wordcount ",
	"word count ",
	"count words in ",
	"count words ",
	"wc ",
}

// DetectWordCount matches an explicit word-count request over trailing text.
func DetectWordCount(text string) *Result {
	s := strings.TrimSpace(text)
	lower := strings.ToLower(s)

	var payload string
	matched := false
	for _, p := range wordCountPrefixes {
		if strings.HasPrefix(lower, p) {
			payload = strings.TrimSpace(s[len(p):])
			matched = true
			break
		}
	}
	if !matched {
		switch lower {
		case "wordcount", "word count", "count words", "wc":
			return &Result{Kind: KindWordCount, Partial: true, Display: s + " ..."}
		}
		return nil
	}
	if payload == "" {
		return &Result{Kind: KindWordCount, Partial: true, Display: s + "..."}
	}

	words := len(strings.Fields(payload))
	chars := utf8.RuneCountInString(payload)
	sentences := countSentences(payload)

	display := strconv.Itoa(words) + " words · " + strconv.Itoa(chars) + " characters"
	detail := strconv.Itoa(sentences) + " sentences"
	if sentences == 1 {
		detail = "1 sentence"
	}
	return &Result{
		Kind:    KindWordCount,
		Display: display,
		Detail:  detail,
		Copy:    strconv.Itoa(words),
	}
}

func countSentences(s string) int {
	n := 0
	inRun := false
	for _, r := range s {
		switch r {
		case '.', '!', '?':
			if !inRun {
				n++
			}
			inRun = true
		default:
			inRun = false
		}
	}
	if n == 0 && strings.TrimSpace(s) != "" {
		n = 1
	}
	return n
}
