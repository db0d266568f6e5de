package intent

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"regexp"
	"strings"
)

// Hashing: "md5 <text>", "sha256 <text>". Digest rendered as lowercase hex.

var reHashCommand = regexp.MustCompile(`(?i)^(md5|sha1|sha256|sha512)\s+(.+)$`)

// DetectHash matches hash requests for the supported algorithms.
func DetectHash(text string) *Result {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}

	if m := reHashCommand.FindStringSubmatch(s); m != nil {
		algo := strings.ToLower(m[1])
		payload := []byte(m[2])

		var sum []byte
		switch algo {
		case "md5":
			d := md5.Sum(payload)
			sum = d[:]
		case "sha1":
			d := sha1.Sum(payload)
			sum = d[:]
		case "sha256":
			d := sha256.Sum256(payload)
			sum = d[:]
		case "sha512":
			d := sha512.Sum512(payload)
			sum = d[:]
		}

		out := hex.EncodeToString(sum)
		return &Result{
			Kind:    KindHash,
			Display: out,
			Detail:  algo,
			Copy:    out,
		}
	}

	switch strings.ToLower(s) {
	case "md5", "sha1", "sha256", "sha512":
		return &Result{Kind: KindHash, Partial: true, Display: s + " ..."}
	}

	return nil
}
