// Package intent classifies free text into structured intents. Each detector
// is a pure function from text to a Result (nil meaning no match), owning its
// own grammar as regexes compiled once at package init. Detectors run in a
// fixed priority order because several patterns overlap; the first non-nil
// result wins and there is no cross-detector scoring.
package intent

import (
	"math/rand"
	"time"

	"contour/internal/graph"
)

// Kind identifies one of the structured intents.
type Kind string

const (
	KindCalculator Kind = "calculator"
	KindUnits      Kind = "units"
	KindCurrency   Kind = "currency"
	KindTimezone   Kind = "timezone"
	KindColor      Kind = "color"
	KindDate       Kind = "date"
	KindTimer      Kind = "timer"
	KindRandom     Kind = "random"
	KindWordCount  Kind = "wordcount"
	KindTranslator Kind = "translator"
	KindDictionary Kind = "dictionary"
	KindLorem      Kind = "lorem"
	KindJSONFormat Kind = "json-format"
	KindBase64     Kind = "base64"
	KindURLEncode  Kind = "url-encode"
	KindHash       Kind = "hash"
	KindRegex      Kind = "regex"
	KindGraph      Kind = "graph"
	KindHelp       Kind = "help"
)

// Result is a detected intent. A Result is never both Partial and carrying
// an Err; loading results resolve asynchronously into a second Result.
type Result struct {
	Kind    Kind
	Partial bool   // input is a recognizable prefix; render provisionally
	Loading bool   // network-backed resolution pending
	Err     string // resolution failure, inline; never set with Partial

	Display string // primary display line
	Detail  string // optional secondary lines
	Copy    string // text copied on Enter; Display when empty

	// Per-kind payloads. Only the field matching Kind is set.
	Timer       *TimerRequest
	Currency    *CurrencyRequest
	Translation *TranslationRequest
	Dictionary  *DictionaryRequest
	Graph       *graph.Plot
}

// CopyText returns the text a copy action should place on the clipboard.
func (r *Result) CopyText() string {
	if r.Copy != "" {
		return r.Copy
	}
	return r.Display
}

// TimerRequest is a parsed timer duration.
type TimerRequest struct {
	Seconds int
}

// CurrencyRequest is a parsed conversion awaiting rate resolution.
type CurrencyRequest struct {
	Amount float64
	From   string // ISO 4217 code
	To     string
}

// TranslationRequest is a parsed translation awaiting resolution.
type TranslationRequest struct {
	Text   string
	From   string // "auto" unless the user named a source language
	To     string // ISO 639-1 code
	ToName string // display name for the target language
}

// DictionaryRequest is a parsed lookup awaiting resolution.
type DictionaryRequest struct {
	Word string
}

// Detector pairs an intent kind with its detection function.
type Detector struct {
	Kind   Kind
	Detect func(text string) *Result
}

// Deps carries the injected ambient capabilities detectors need. Everything
// else a detector uses is pure.
type Deps struct {
	Now  func() time.Time
	Rand *rand.Rand
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d Deps) intn(n int) int {
	if d.Rand != nil {
		return d.Rand.Intn(n)
	}
	return rand.Intn(n)
}

// Pipeline returns all detectors in priority order. The order is a product
// decision, not a derivable invariant: a bare number-with-symbol could be
// currency, unit, or color, and the pipeline settles it. Do not reorder.
func Pipeline(deps Deps) []Detector {
	return []Detector{
		{KindHelp, DetectHelp},
		{KindColor, DetectColor},
		{KindUnits, DetectUnits},
		{KindCurrency, DetectCurrency},
		{KindTimezone, detectTimezoneWith(deps)},
		{KindDate, detectDateWith(deps)},
		{KindTimer, DetectTimer},
		{KindRandom, detectRandomWith(deps)},
		{KindTranslator, DetectTranslation},
		{KindDictionary, DetectDictionary},
		{KindWordCount, DetectWordCount},
		{KindLorem, DetectLorem},
		{KindHash, DetectHash},
		{KindRegex, DetectRegex},
		{KindJSONFormat, DetectJSONFormat},
		{KindBase64, DetectBase64},
		{KindURLEncode, DetectURLEncode},
		{KindGraph, DetectGraph},
		{KindCalculator, DetectCalculator},
	}
}

// ByKind indexes the pipeline for focused-mode dispatch, where keystrokes
// route to a single detector instead of the whole pipeline.
func ByKind(deps Deps) map[Kind]Detector {
	m := make(map[Kind]Detector)
	for _, d := range Pipeline(deps) {
		m[d.Kind] = d
	}
	return m
}

// Detect runs the pipeline over text and returns the first match, or nil.
func Detect(text string, deps Deps) *Result {
	for _, d := range Pipeline(deps) {
		if r := d.Detect(text); r != nil {
			return r
		}
	}
	return nil
}
