package providers

import "context"

// Mock providers with function fields, for engine and detector tests.

// MockExchangeRates implements ExchangeRateProvider.
type MockExchangeRates struct {
	FetchRatesFunc func(ctx context.Context, base string) (*Rates, error)
}

// FetchRates implements ExchangeRateProvider.
func (m *MockExchangeRates) FetchRates(ctx context.Context, base string) (*Rates, error) {
	return m.FetchRatesFunc(ctx, base)
}

// MockTranslator implements TranslationProvider.
type MockTranslator struct {
	TranslateFunc func(ctx context.Context, text, from, to string) (*Translation, error)
}

// Translate implements TranslationProvider.
func (m *MockTranslator) Translate(ctx context.Context, text, from, to string) (*Translation, error) {
	return m.TranslateFunc(ctx, text, from, to)
}

// MockDictionary implements DictionaryProvider.
type MockDictionary struct {
	LookupFunc func(ctx context.Context, word string) (*DictionaryEntry, error)
}

// Lookup implements DictionaryProvider.
func (m *MockDictionary) Lookup(ctx context.Context, word string) (*DictionaryEntry, error) {
	return m.LookupFunc(ctx, word)
}

// MockClipboard records copied text.
type MockClipboard struct {
	Copied []string
}

// Copy implements ClipboardSink.
func (m *MockClipboard) Copy(text string) error {
	m.Copied = append(m.Copied, text)
	return nil
}

// MockNotifier records notifications.
type MockNotifier struct {
	Notifications []string
}

// Notify implements NotificationSink.
func (m *MockNotifier) Notify(title, body string) error {
	m.Notifications = append(m.Notifications, title+": "+body)
	return nil
}
