package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"contour/internal/logging"
)

const httpTimeout = 10 * time.Second

// NewHTTPSet returns the production provider set over the public free APIs.
func NewHTTPSet() Set {
	client := &http.Client{Timeout: httpTimeout}
	return Set{
		Rates:      &HTTPExchangeRates{Client: client},
		Translator: &HTTPTranslator{Client: client},
		Dictionary: &HTTPDictionary{Client: client},
	}
}

func getJSON(ctx context.Context, client *http.Client, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// HTTPExchangeRates fetches rates from open.er-api.com.
type HTTPExchangeRates struct {
	Client *http.Client
}

// FetchRates implements ExchangeRateProvider.
func (p *HTTPExchangeRates) FetchRates(ctx context.Context, base string) (*Rates, error) {
	base = strings.ToUpper(base)

	var body struct {
		Result string             `json:"result"`
		Base   string             `json:"base_code"`
		Rates  map[string]float64 `json:"rates"`
	}
	u := "https://open.er-api.com/v6/latest/" + url.PathEscape(base)
	if err := getJSON(ctx, p.Client, u, &body); err != nil {
		return nil, err
	}
	if body.Result != "success" || len(body.Rates) == 0 {
		return nil, fmt.Errorf("rate lookup for %s failed", base)
	}

	logging.Debug("fetched exchange rates", "base", base, "count", len(body.Rates))
	return &Rates{Base: body.Base, Rates: body.Rates}, nil
}

// HTTPTranslator translates through the MyMemory API.
type HTTPTranslator struct {
	Client *http.Client
}

// Translate implements TranslationProvider.
func (p *HTTPTranslator) Translate(ctx context.Context, text, from, to string) (*Translation, error) {
	if from == "" || from == "auto" {
		// MyMemory wants a concrete source; English is the dominant input.
		from = "en"
	}

	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", from+"|"+to)

	var body struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
		ResponseStatus int `json:"responseStatus"`
	}
	u := "https://api.mymemory.translated.net/get?" + q.Encode()
	if err := getJSON(ctx, p.Client, u, &body); err != nil {
		return nil, err
	}
	if body.ResponseStatus != 200 || body.ResponseData.TranslatedText == "" {
		return nil, fmt.Errorf("translation to %s failed", to)
	}

	return &Translation{
		TranslatedText: body.ResponseData.TranslatedText,
		DetectedLang:   from,
	}, nil
}

// HTTPDictionary looks words up on dictionaryapi.dev.
type HTTPDictionary struct {
	Client *http.Client
}

// Lookup implements DictionaryProvider.
func (p *HTTPDictionary) Lookup(ctx context.Context, word string) (*DictionaryEntry, error) {
	var body []struct {
		Word     string `json:"word"`
		Phonetic string `json:"phonetic"`
		Meanings []struct {
			PartOfSpeech string `json:"partOfSpeech"`
			Definitions  []struct {
				Definition string `json:"definition"`
				Example    string `json:"example"`
			} `json:"definitions"`
		} `json:"meanings"`
	}

	u := "https://api.dictionaryapi.dev/api/v2/entries/en/" + url.PathEscape(strings.ToLower(word))
	if err := getJSON(ctx, p.Client, u, &body); err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, ErrNotFound
	}

	first := body[0]
	entry := &DictionaryEntry{
		Word:     first.Word,
		Phonetic: first.Phonetic,
	}
	for _, m := range first.Meanings {
		meaning := Meaning{PartOfSpeech: m.PartOfSpeech}
		for _, d := range m.Definitions {
			meaning.Definitions = append(meaning.Definitions, d.Definition)
			if meaning.Example == "" && d.Example != "" {
				meaning.Example = d.Example
			}
		}
		entry.Meanings = append(entry.Meanings, meaning)
	}
	return entry, nil
}
