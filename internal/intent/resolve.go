package intent

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"contour/internal/cache"
	"contour/internal/logging"
	"contour/internal/providers"
)

// Resolver completes loading results against the network providers, with the
// TTL cache consulted first. Resolve is synchronous; the engine runs it on a
// goroutine and discards stale completions by generation.
type Resolver struct {
	Providers providers.Set
	Cache     *cache.Cache
}

// Resolve returns the completed form of a loading result. Results that are
// not loading come back unchanged.
func (r *Resolver) Resolve(ctx context.Context, res *Result) *Result {
	if res == nil || !res.Loading {
		return res
	}
	switch res.Kind {
	case KindCurrency:
		return r.resolveCurrency(ctx, res)
	case KindTranslator:
		return r.resolveTranslation(ctx, res)
	case KindDictionary:
		return r.resolveDictionary(ctx, res)
	}
	return res
}

func (r *Resolver) resolveCurrency(ctx context.Context, res *Result) *Result {
	req := res.Currency
	if req == nil {
		return res
	}

	rates, err := r.fetchRates(ctx, req.From)
	if err != nil {
		logging.Warn("rate fetch failed", "base", req.From, "error", err)
		return failed(res, "exchange rates unavailable")
	}

	rate, ok := rates.Rates[req.To]
	if !ok || rate <= 0 {
		return failed(res, "no rate for "+req.To)
	}

	converted := req.Amount * rate
	out := *res
	out.Loading = false
	out.Display = formatCurrencyAmount(req.Amount) + " " + req.From +
		" = " + formatCurrencyAmount(converted) + " " + req.To
	out.Detail = "1 " + req.From + " = " + formatCurrencyAmount(rate) + " " + req.To
	out.Copy = formatCurrencyAmount(converted)
	return &out
}

// fetchRates returns the rate table for base, from cache when fresh.
func (r *Resolver) fetchRates(ctx context.Context, base string) (*providers.Rates, error) {
	key := "rates " + base
	if raw, ok := r.Cache.Get(cache.NamespaceCurrency, key); ok {
		var rates providers.Rates
		if err := json.Unmarshal(raw, &rates); err == nil {
			return &rates, nil
		}
	}

	rates, err := r.Providers.Rates.FetchRates(ctx, base)
	if err != nil {
		return nil, err
	}
	if err := r.Cache.Put(cache.NamespaceCurrency, key, rates); err != nil {
		logging.Warn("rate cache write failed", "base", base, "error", err)
	}
	return rates, nil
}

func (r *Resolver) resolveTranslation(ctx context.Context, res *Result) *Result {
	req := res.Translation
	if req == nil {
		return res
	}

	key := req.From + "|" + req.To + "|" + req.Text
	var tr providers.Translation
	if raw, ok := r.Cache.Get(cache.NamespaceTranslation, key); ok {
		if err := json.Unmarshal(raw, &tr); err != nil {
			return failed(res, "translation unavailable")
		}
	} else {
		got, err := r.Providers.Translator.Translate(ctx, req.Text, req.From, req.To)
		if err != nil {
			logging.Warn("translation failed", "to", req.To, "error", err)
			return failed(res, "translation unavailable")
		}
		tr = *got
		if err := r.Cache.Put(cache.NamespaceTranslation, key, tr); err != nil {
			logging.Warn("translation cache write failed", "error", err)
		}
	}

	out := *res
	out.Loading = false
	out.Display = tr.TranslatedText
	out.Detail = req.ToName
	if tr.DetectedLang != "" && req.From == "auto" {
		out.Detail = tr.DetectedLang + " → " + req.ToName
	}
	out.Copy = tr.TranslatedText
	return &out
}

func (r *Resolver) resolveDictionary(ctx context.Context, res *Result) *Result {
	req := res.Dictionary
	if req == nil {
		return res
	}

	var entry providers.DictionaryEntry
	if raw, ok := r.Cache.Get(cache.NamespaceDictionary, req.Word); ok {
		if err := json.Unmarshal(raw, &entry); err != nil {
			return failed(res, "lookup unavailable")
		}
	} else {
		got, err := r.Providers.Dictionary.Lookup(ctx, req.Word)
		if errors.Is(err, providers.ErrNotFound) {
			return failed(res, "no definition found for \""+req.Word+"\"")
		}
		if err != nil {
			logging.Warn("dictionary lookup failed", "word", req.Word, "error", err)
			return failed(res, "lookup unavailable")
		}
		entry = *got
		if err := r.Cache.Put(cache.NamespaceDictionary, req.Word, entry); err != nil {
			logging.Warn("dictionary cache write failed", "error", err)
		}
	}

	out := *res
	out.Loading = false
	out.Display = entry.Word
	if entry.Phonetic != "" {
		out.Display += "  " + entry.Phonetic
	}
	out.Detail = formatMeanings(entry.Meanings)
	out.Copy = firstDefinition(entry.Meanings)
	return &out
}

// formatMeanings renders up to three part-of-speech blocks, one definition
// each.
func formatMeanings(meanings []providers.Meaning) string {
	var lines []string
	for _, m := range meanings {
		if len(m.Definitions) == 0 {
			continue
		}
		lines = append(lines, m.PartOfSpeech+": "+m.Definitions[0])
		if len(lines) == 3 {
			break
		}
	}
	return strings.Join(lines, "\n")
}

func firstDefinition(meanings []providers.Meaning) string {
	for _, m := range meanings {
		if len(m.Definitions) > 0 {
			return m.Definitions[0]
		}
	}
	return ""
}

// failed converts a loading result into an inline error.
func failed(res *Result, msg string) *Result {
	out := *res
	out.Loading = false
	out.Err = msg
	out.Detail = ""
	return &out
}
