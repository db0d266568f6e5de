package commands

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match scoring. The tiers are deliberately far apart so that a weaker match
// class can never out-rank a stronger one through bonuses alone.
const (
	scoreExact     = 1000
	scorePrefix    = 800
	scoreSubstring = 600
	scoreFuzzyBase = 300

	bonusKeywordPrefix    = 150
	bonusIDSubstring      = 120
	bonusDescription      = 100
	bonusKeywordSubstring = 100
	bonusKeywordFuzzy     = 50
	bonusIDFuzzy          = 40
)

// Score rates how well a command matches a query. Zero means the query is
// not a subsequence of anything on the command and it must be excluded.
func Score(cmd Command, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	name := strings.ToLower(cmd.Name)
	id := strings.ToLower(cmd.ID)

	score := 0
	switch {
	case name == q:
		score = scoreExact
	case strings.HasPrefix(name, q):
		score = scorePrefix
	case strings.Contains(name, q):
		score = scoreSubstring
	default:
		if s, ok := fuzzyScore(q, name); ok {
			score = scoreFuzzyBase + s
		}
	}

	if strings.Contains(strings.ToLower(cmd.Description), q) {
		score += bonusDescription
	}

	best := 0
	for _, kw := range cmd.Keywords {
		kw = strings.ToLower(kw)
		var b int
		switch {
		case strings.HasPrefix(kw, q):
			b = bonusKeywordPrefix
		case strings.Contains(kw, q):
			b = bonusKeywordSubstring
		default:
			if _, ok := fuzzyScore(q, kw); ok {
				b = bonusKeywordFuzzy
			}
		}
		if b > best {
			best = b
		}
	}
	score += best

	if strings.Contains(id, q) {
		score += bonusIDSubstring
	} else if _, ok := fuzzyScore(q, id); ok {
		score += bonusIDFuzzy
	}

	return score
}

// fuzzyScore returns a small positive subsequence score for q against s.
// Consecutive runs and word-boundary hits rank higher; no subsequence means
// no match.
func fuzzyScore(q, s string) (int, bool) {
	matches := fuzzy.Find(q, []string{s})
	if len(matches) == 0 {
		return 0, false
	}
	score := matches[0].Score
	if score < 0 {
		score = 0
	}
	if score > scoreSubstring-scoreFuzzyBase-1 {
		// Keep fuzzy strictly below the substring tier.
		score = scoreSubstring - scoreFuzzyBase - 1
	}
	return score, true
}

// Search scores the catalog against query and returns matches in descending
// score order. Ties keep catalog order.
func Search(catalog []Command, query string) []Command {
	type scored struct {
		cmd   Command
		score int
	}
	var out []scored
	for _, cmd := range catalog {
		if s := Score(cmd, query); s > 0 {
			out = append(out, scored{cmd: cmd, score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })

	result := make([]Command, len(out))
	for i, s := range out {
		result[i] = s.cmd
	}
	return result
}
