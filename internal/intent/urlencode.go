package intent

import (
	"net/url"
	"regexp"
	"strings"
)

// URL encoding: "urlencode <text>" / "urldecode <text>", plus an automatic
// decode of strings carrying percent-escapes.

var (
	reURLCommand = regexp.MustCompile(`(?i)^url\s*(encode|decode)\s+(.+)$`)
	rePctEscape  = regexp.MustCompile(`%[0-9a-fA-F]{2}`)
)

// DetectURLEncode matches explicit url encode/decode commands and
// auto-decodes percent-escaped strings.
func DetectURLEncode(text string) *Result {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}

	if m := reURLCommand.FindStringSubmatch(s); m != nil {
		payload := m[2]
		if strings.EqualFold(m[1], "encode") {
			out := url.QueryEscape(payload)
			return &Result{Kind: KindURLEncode, Display: out, Copy: out}
		}
		out, err := url.QueryUnescape(payload)
		if err != nil {
			return &Result{Kind: KindURLEncode, Err: "not valid url encoding"}
		}
		return &Result{Kind: KindURLEncode, Display: out, Copy: out}
	}

	switch strings.ToLower(s) {
	case "urlencode", "urldecode", "url encode", "url decode":
		return &Result{Kind: KindURLEncode, Partial: true, Display: s + " ..."}
	}

	if rePctEscape.MatchString(s) && !strings.ContainsAny(s, " \t") {
		out, err := url.QueryUnescape(s)
		if err == nil && out != s {
			return &Result{Kind: KindURLEncode, Display: out, Copy: out}
		}
	}

	return nil
}
