// Package providers defines the capability boundary between the detection
// core and the outside world: exchange rates, translation, dictionary lookup,
// the clipboard, and user notifications. The core only ever sees these
// interfaces; network details stay on this side of the line.
package providers

import (
	"context"
	"errors"
)

// ErrNotFound signals a dictionary word with no entry. It is the only
// provider failure the detectors distinguish from a generic error.
var ErrNotFound = errors.New("not found")

// ErrOffline is returned by the stub providers used in offline mode.
var ErrOffline = errors.New("offline")

// Rates is a base currency and its conversion rates.
type Rates struct {
	Base  string
	Rates map[string]float64
}

// ExchangeRateProvider fetches conversion rates for a base currency.
type ExchangeRateProvider interface {
	FetchRates(ctx context.Context, base string) (*Rates, error)
}

// Translation is a translated text with the detected source language when
// the caller asked for auto-detection.
type Translation struct {
	TranslatedText string
	DetectedLang   string
}

// TranslationProvider translates text between languages. from may be "auto".
type TranslationProvider interface {
	Translate(ctx context.Context, text, from, to string) (*Translation, error)
}

// Meaning is one part-of-speech block of a dictionary entry.
type Meaning struct {
	PartOfSpeech string
	Definitions  []string
	Example      string
}

// DictionaryEntry is a dictionary lookup result.
type DictionaryEntry struct {
	Word     string
	Phonetic string
	Meanings []Meaning
}

// DictionaryProvider looks up a single word. Returns ErrNotFound for words
// without an entry.
type DictionaryProvider interface {
	Lookup(ctx context.Context, word string) (*DictionaryEntry, error)
}

// ClipboardSink copies text for the user.
type ClipboardSink interface {
	Copy(text string) error
}

// NotificationSink delivers a best-effort user alert (timer completion).
type NotificationSink interface {
	Notify(title, body string) error
}

// Set bundles the network-backed providers handed to the engine.
type Set struct {
	Rates      ExchangeRateProvider
	Translator TranslationProvider
	Dictionary DictionaryProvider
}

// Offline returns a provider set whose calls all fail with ErrOffline.
// Detection still works; resolution surfaces inline errors.
func Offline() Set {
	return Set{
		Rates:      offlineRates{},
		Translator: offlineTranslator{},
		Dictionary: offlineDictionary{},
	}
}

type offlineRates struct{}

func (offlineRates) FetchRates(context.Context, string) (*Rates, error) {
	return nil, ErrOffline
}

type offlineTranslator struct{}

func (offlineTranslator) Translate(context.Context, string, string, string) (*Translation, error) {
	return nil, ErrOffline
}

type offlineDictionary struct{}

func (offlineDictionary) Lookup(context.Context, string) (*DictionaryEntry, error) {
	return nil, ErrOffline
}
