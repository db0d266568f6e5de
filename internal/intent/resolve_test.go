package intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contour/internal/cache"
	"contour/internal/kvstore"
	"contour/internal/providers"
)

func testResolver(set providers.Set) *Resolver {
	return &Resolver{
		Providers: set,
		Cache:     cache.New(kvstore.NewMemStore()),
	}
}

func TestResolveCurrency(t *testing.T) {
	calls := 0
	set := providers.Set{
		Rates: &providers.MockExchangeRates{
			FetchRatesFunc: func(_ context.Context, base string) (*providers.Rates, error) {
				calls++
				assert.Equal(t, "USD", base)
				return &providers.Rates{
					Base:  "USD",
					Rates: map[string]float64{"EUR": 0.85},
				}, nil
			},
		},
	}
	r := testResolver(set)

	detected := DetectCurrency("100 usd to eur")
	require.NotNil(t, detected)

	resolved := r.Resolve(context.Background(), detected)
	require.NotNil(t, resolved)
	assert.False(t, resolved.Loading)
	assert.Empty(t, resolved.Err)
	assert.Equal(t, "100 USD = 85 EUR", resolved.Display)
	assert.Equal(t, "85", resolved.Copy)

	// Second resolution for the same base comes from cache.
	r.Resolve(context.Background(), DetectCurrency("50 usd to eur"))
	assert.Equal(t, 1, calls)
}

func TestResolveCurrencyMissingRate(t *testing.T) {
	set := providers.Set{
		Rates: &providers.MockExchangeRates{
			FetchRatesFunc: func(_ context.Context, base string) (*providers.Rates, error) {
				return &providers.Rates{Base: base, Rates: map[string]float64{}}, nil
			},
		},
	}
	r := testResolver(set)

	resolved := r.Resolve(context.Background(), DetectCurrency("100 usd to eur"))
	require.NotNil(t, resolved)
	assert.False(t, resolved.Loading)
	assert.Equal(t, "no rate for EUR", resolved.Err)
}

func TestResolveCurrencyOffline(t *testing.T) {
	r := testResolver(providers.Offline())

	resolved := r.Resolve(context.Background(), DetectCurrency("100 usd to eur"))
	require.NotNil(t, resolved)
	assert.Equal(t, "exchange rates unavailable", resolved.Err)
	assert.False(t, resolved.Partial)
}

func TestResolveTranslation(t *testing.T) {
	set := providers.Set{
		Translator: &providers.MockTranslator{
			TranslateFunc: func(_ context.Context, text, from, to string) (*providers.Translation, error) {
				assert.Equal(t, "hello", text)
				assert.Equal(t, "auto", from)
				assert.Equal(t, "es", to)
				return &providers.Translation{TranslatedText: "hola", DetectedLang: "en"}, nil
			},
		},
	}
	r := testResolver(set)

	resolved := r.Resolve(context.Background(), DetectTranslation("translate hello to spanish"))
	require.NotNil(t, resolved)
	assert.Equal(t, "hola", resolved.Display)
	assert.Equal(t, "en → Spanish", resolved.Detail)
	assert.Equal(t, "hola", resolved.Copy)
}

func TestResolveDictionary(t *testing.T) {
	calls := 0
	set := providers.Set{
		Dictionary: &providers.MockDictionary{
			LookupFunc: func(_ context.Context, word string) (*providers.DictionaryEntry, error) {
				calls++
				return &providers.DictionaryEntry{
					Word:     word,
					Phonetic: "/ˌsɛrənˈdɪpɪti/",
					Meanings: []providers.Meaning{
						{PartOfSpeech: "noun", Definitions: []string{"a happy accident"}},
					},
				}, nil
			},
		},
	}
	r := testResolver(set)

	resolved := r.Resolve(context.Background(), DetectDictionary("define serendipity"))
	require.NotNil(t, resolved)
	assert.Contains(t, resolved.Display, "serendipity")
	assert.Contains(t, resolved.Detail, "noun: a happy accident")
	assert.Equal(t, "a happy accident", resolved.Copy)

	r.Resolve(context.Background(), DetectDictionary("define serendipity"))
	assert.Equal(t, 1, calls)
}

func TestResolveDictionaryNotFound(t *testing.T) {
	set := providers.Set{
		Dictionary: &providers.MockDictionary{
			LookupFunc: func(_ context.Context, _ string) (*providers.DictionaryEntry, error) {
				return nil, providers.ErrNotFound
			},
		},
	}
	r := testResolver(set)

	resolved := r.Resolve(context.Background(), DetectDictionary("define zzzzz"))
	require.NotNil(t, resolved)
	assert.Equal(t, `no definition found for "zzzzz"`, resolved.Err)
}

func TestResolvePassThrough(t *testing.T) {
	r := testResolver(providers.Offline())

	done := &Result{Kind: KindCalculator, Display: "2+2 = 4"}
	assert.Same(t, done, r.Resolve(context.Background(), done))
	assert.Nil(t, r.Resolve(context.Background(), nil))
}
