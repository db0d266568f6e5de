package intent

import (
	"encoding/base64"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Base64: explicit "base64 <text>" / "b64 decode <text>" commands, plus an
// automatic decode of anything that looks like a base64 blob and decodes to
// printable text.

var (
	reB64Command = regexp.MustCompile(`(?i)^(?:base64|b64)(?:\s+(encode|decode))?\s+(.+)$`)
	reB64Blob    = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)
)

// DetectBase64 matches explicit base64 commands and auto-decodes blobs.
func DetectBase64(text string) *Result {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}

	if m := reB64Command.FindStringSubmatch(s); m != nil {
		payload := m[2]
		switch strings.ToLower(m[1]) {
		case "decode":
			return decodeBase64(payload)
		case "encode", "":
			out := base64.StdEncoding.EncodeToString([]byte(payload))
			return &Result{Kind: KindBase64, Display: out, Copy: out}
		}
	}

	switch strings.ToLower(s) {
	case "base64", "b64", "base64 encode", "base64 decode", "b64 encode", "b64 decode":
		return &Result{Kind: KindBase64, Partial: true, Display: s + " ..."}
	}

	// Auto-decode: long enough to be unambiguous, valid alphabet, valid
	// padding, and the plaintext is printable.
	if len(s) >= 12 && len(s)%4 == 0 && reB64Blob.MatchString(s) {
		if raw, err := base64.StdEncoding.DecodeString(s); err == nil && utf8.Valid(raw) && printable(raw) {
			out := string(raw)
			return &Result{Kind: KindBase64, Display: out, Copy: out}
		}
	}

	return nil
}

// decodeBase64 handles the explicit decode command. Unlike auto-decode it
// always answers: bad input gets an inline error, and control characters in
// the plaintext are shown escaped but copied verbatim.
func decodeBase64(s string) *Result {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return &Result{Kind: KindBase64, Err: "not valid base64"}
	}
	if !utf8.Valid(raw) {
		return &Result{Kind: KindBase64, Err: "decodes to binary data"}
	}
	out := string(raw)
	display := out
	if !printable(raw) {
		display = strconv.Quote(out)
	}
	return &Result{Kind: KindBase64, Display: display, Copy: out}
}

func printable(b []byte) bool {
	for _, r := range string(b) {
		if r == '\n' || r == '\t' || r == '\r' {
			continue
		}
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}
