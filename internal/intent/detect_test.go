package intent

import (
	"encoding/base64"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedDeps() Deps {
	return Deps{
		Now:  func() time.Time { return time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC) },
		Rand: rand.New(rand.NewSource(42)),
	}
}

func TestDetectCalculator(t *testing.T) {
	r := Detect("5+3*2", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindCalculator, r.Kind)
	assert.Equal(t, "5+3*2 = 11", r.Display)
	assert.Equal(t, "11", r.Copy)
}

func TestDetectCalculatorPartial(t *testing.T) {
	r := Detect("5+3*", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindCalculator, r.Kind)
	assert.True(t, r.Partial)
	assert.True(t, strings.HasSuffix(r.Display, "..."))
}

func TestDetectUnits(t *testing.T) {
	tests := []struct {
		input   string
		display string
	}{
		{"100f to c", "100°F = 37.7778°C"},
		{"0c to f", "0°C = 32°F"},
		{"5km to miles", "5 km = 3.1069 mi"},
		{"2 hours to minutes", "2 h = 120 min"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r := Detect(tt.input, fixedDeps())
			require.NotNil(t, r)
			assert.Equal(t, KindUnits, r.Kind)
			assert.Equal(t, tt.display, r.Display)
		})
	}
}

func TestDetectUnitsCategoryMismatch(t *testing.T) {
	assert.Nil(t, Detect("5km to kg", fixedDeps()))
}

// A rendered result fed back through detection must not re-match.
func TestDetectIdempotentOnOwnOutput(t *testing.T) {
	r := Detect("100f to c", fixedDeps())
	require.NotNil(t, r)
	assert.Nil(t, Detect(r.Display, fixedDeps()))
}

func TestDetectCurrency(t *testing.T) {
	r := Detect("100 usd to eur", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindCurrency, r.Kind)
	assert.True(t, r.Loading)
	assert.Equal(t, "100 USD → EUR", r.Display)
	require.NotNil(t, r.Currency)
	assert.Equal(t, 100.0, r.Currency.Amount)
	assert.Equal(t, "USD", r.Currency.From)
	assert.Equal(t, "EUR", r.Currency.To)
}

func TestDetectCurrencySymbol(t *testing.T) {
	r := Detect("$50 to gbp", fixedDeps())
	require.NotNil(t, r)
	require.NotNil(t, r.Currency)
	assert.Equal(t, "USD", r.Currency.From)
	assert.Equal(t, "GBP", r.Currency.To)
}

func TestDetectCurrencyPartial(t *testing.T) {
	r := Detect("100 usd to", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindCurrency, r.Kind)
	assert.True(t, r.Partial)
}

func TestDetectColor(t *testing.T) {
	r := Detect("#ff6b35", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindColor, r.Kind)
	assert.Equal(t, "#ff6b35", r.Display)
	assert.Contains(t, r.Detail, "rgb(255, 107, 53)")
}

func TestDetectColorShorthandAndNames(t *testing.T) {
	r := Detect("#abc", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, "#aabbcc", r.Display)

	r = Detect("teal", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindColor, r.Kind)
	assert.Equal(t, "#008080", r.Display)
}

func TestDetectTimezone(t *testing.T) {
	r := Detect("time in tokyo", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindTimezone, r.Kind)
	assert.Equal(t, "Time in Tokyo: 9:00 PM", r.Display)
}

func TestDetectTimezoneConvert(t *testing.T) {
	r := Detect("3pm est to pst", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, "3:00 PM EST = 12:00 PM PST", r.Display)
}

func TestDetectDate(t *testing.T) {
	r := Detect("today + 3 days", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindDate, r.Kind)
	assert.Equal(t, "Sunday, August 30, 2026", r.Display)
	assert.Equal(t, "2026-08-30", r.Copy)
}

func TestDetectDateDaysUntil(t *testing.T) {
	r := Detect("days until 2026-12-25", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, "120 days until December 25, 2026", r.Display)
	assert.Equal(t, "120", r.Copy)
}

func TestDetectDateBareTodayIgnored(t *testing.T) {
	assert.Nil(t, DetectTimer("today"))
	r := Detect("today", fixedDeps())
	if r != nil {
		assert.NotEqual(t, KindDate, r.Kind)
	}
}

func TestDetectTimer(t *testing.T) {
	r := Detect("timer 5 min", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindTimer, r.Kind)
	require.NotNil(t, r.Timer)
	assert.Equal(t, 300, r.Timer.Seconds)
	assert.Equal(t, "05:00", r.Display)

	r = Detect("90 second timer", fixedDeps())
	require.NotNil(t, r)
	require.NotNil(t, r.Timer)
	assert.Equal(t, 90, r.Timer.Seconds)
	assert.Equal(t, "01:30", r.Display)
}

func TestFormatTimerClock(t *testing.T) {
	assert.Equal(t, "00:05", FormatTimerClock(5))
	assert.Equal(t, "05:00", FormatTimerClock(300))
	assert.Equal(t, "1:01:05", FormatTimerClock(3665))
	assert.Equal(t, "00:00", FormatTimerClock(-3))
}

func TestDetectRandom(t *testing.T) {
	deps := fixedDeps()

	r := detectRandom("random 1-100", deps)
	require.NotNil(t, r)
	assert.Equal(t, KindRandom, r.Kind)

	r = detectRandom("flip a coin", deps)
	require.NotNil(t, r)
	assert.Contains(t, []string{"Heads", "Tails"}, r.Display)

	r = detectRandom("roll a dice", deps)
	require.NotNil(t, r)
	assert.Equal(t, "d6", r.Detail)

	r = detectRandom("uuid", deps)
	require.NotNil(t, r)
	assert.Len(t, r.Display, 36)
}

func TestDetectWordCount(t *testing.T) {
	r := Detect("wordcount the quick brown fox. it jumps.", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindWordCount, r.Kind)
	assert.Equal(t, "6 words · 30 characters", r.Display)
	assert.Equal(t, "2 sentences", r.Detail)
}

func TestDetectTranslation(t *testing.T) {
	r := Detect("translate hello world to spanish", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindTranslator, r.Kind)
	assert.True(t, r.Loading)
	require.NotNil(t, r.Translation)
	assert.Equal(t, "hello world", r.Translation.Text)
	assert.Equal(t, "auto", r.Translation.From)
	assert.Equal(t, "es", r.Translation.To)
	assert.Equal(t, "Spanish", r.Translation.ToName)
}

func TestDetectTranslationUnfinishedLanguage(t *testing.T) {
	r := Detect("translate hello to spa", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindTranslator, r.Kind)
	assert.True(t, r.Partial)
}

func TestDetectDictionary(t *testing.T) {
	r := Detect("define serendipity", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindDictionary, r.Kind)
	assert.True(t, r.Loading)
	require.NotNil(t, r.Dictionary)
	assert.Equal(t, "serendipity", r.Dictionary.Word)
}

func TestDetectLorem(t *testing.T) {
	r := Detect("lorem 5", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindLorem, r.Kind)
	assert.Equal(t, "Lorem ipsum dolor sit amet.", r.Display)

	r = Detect("lorem 1000", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, "200 words", r.Detail)
}

func TestDetectJSONFormat(t *testing.T) {
	r := Detect(`{"a":1,"b":[2,3]}`, fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindJSONFormat, r.Kind)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": [\n    2,\n    3\n  ]\n}", r.Display)
}

func TestDetectJSONFormatPartial(t *testing.T) {
	r := Detect(`{"a": 1,`, fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindJSONFormat, r.Kind)
	assert.True(t, r.Partial)
}

func TestDetectBase64(t *testing.T) {
	r := Detect("base64 hello", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindBase64, r.Kind)
	assert.Equal(t, "aGVsbG8=", r.Display)

	r = Detect("base64 decode aGVsbG8=", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, "hello", r.Display)
}

func TestDetectBase64Auto(t *testing.T) {
	r := Detect("aGVsbG8gd29ybGQ=", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindBase64, r.Kind)
	assert.Equal(t, "hello world", r.Display)
}

func TestDetectBase64RoundTrip(t *testing.T) {
	inputs := []string{
		"hello world",
		"héllo 世界",
		"emoji 🙂 ok",
		"bell\x07char",
		"tab\tand\nnewline",
	}
	for _, in := range inputs {
		enc := base64.StdEncoding.EncodeToString([]byte(in))
		r := Detect("base64 decode "+enc, fixedDeps())
		require.NotNil(t, r, "input %q", in)
		assert.Equal(t, KindBase64, r.Kind, "input %q", in)
		assert.Empty(t, r.Err, "input %q", in)
		assert.Equal(t, in, r.Copy, "input %q", in)
	}
}

func TestDetectBase64DecodeBinary(t *testing.T) {
	// 0xff 0xfe is not UTF-8; an explicit decode still answers.
	r := Detect("base64 decode //4=", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindBase64, r.Kind)
	assert.Equal(t, "decodes to binary data", r.Err)

	// Auto-decode of the same class of blob stays silent.
	assert.Nil(t, Detect("//79/P/+/fw=", fixedDeps()))
}

func TestDetectURLEncode(t *testing.T) {
	r := Detect("urlencode a b&c", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindURLEncode, r.Kind)
	assert.Equal(t, "a+b%26c", r.Display)

	r = Detect("urldecode a%20b", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, "a b", r.Display)
}

func TestDetectURLEncodeAutoDecode(t *testing.T) {
	r := Detect("hello%20world%21", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindURLEncode, r.Kind)
	assert.Equal(t, "hello world!", r.Display)
}

func TestDetectHash(t *testing.T) {
	r := Detect("md5 hello", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindHash, r.Kind)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", r.Display)

	r = Detect("sha256 hello", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", r.Display)
}

func TestDetectRegex(t *testing.T) {
	r := Detect(`regex \d+ on a1b22c333`, fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindRegex, r.Kind)
	assert.Equal(t, "3 matches: 1, 22, 333", r.Display)
	assert.Equal(t, "1\n22\n333", r.Copy)
}

func TestDetectRegexInvalid(t *testing.T) {
	r := Detect("regex [a- on text", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindRegex, r.Kind)
	assert.NotEmpty(t, r.Err)
	assert.False(t, r.Partial)
}

func TestDetectGraph(t *testing.T) {
	r := Detect("y = sin(x)", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindGraph, r.Kind)
	require.NotNil(t, r.Graph)
	y, ok := r.Graph.Eval(0)
	require.True(t, ok)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestDetectHelp(t *testing.T) {
	r := Detect("?", fixedDeps())
	require.NotNil(t, r)
	assert.Equal(t, KindHelp, r.Kind)
	assert.NotEmpty(t, r.Detail)
}

func TestDetectNoMatch(t *testing.T) {
	for _, input := range []string{"", "   ", "hello there", "what is love"} {
		assert.Nil(t, Detect(input, fixedDeps()), "input %q", input)
	}
}

// Partial and Err are mutually exclusive on every pipeline output.
func TestResultNeverPartialAndErr(t *testing.T) {
	inputs := []string{
		"5+3*", "100 usd to", "#ab", "timer 5", "translate hello to",
		"regex [a- on text", "base64 decode !!!", `{"a":`,
	}
	for _, input := range inputs {
		r := Detect(input, fixedDeps())
		if r != nil {
			assert.False(t, r.Partial && r.Err != "", "input %q", input)
		}
	}
}

func TestCopyText(t *testing.T) {
	r := &Result{Display: "shown", Copy: "copied"}
	assert.Equal(t, "copied", r.CopyText())
	r.Copy = ""
	assert.Equal(t, "shown", r.CopyText())
}
