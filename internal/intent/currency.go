package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/currency"
)

// Currency conversion: "$100 to eur", "100 usd in gbp". Detection is
// synchronous and returns a loading placeholder; the rate lookup happens in
// the async resolve step (resolve.go) so typing never blocks on the network.

var currencySymbols = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
	"₹": "INR",
	"₩": "KRW",
	"₽": "RUB",
}

var (
	reCurrencyFull = regexp.MustCompile(
		`^([$€£¥₹₩₽])?\s*(\d+(?:[.,]\d+)*)\s*([a-z]{3})?\s+(?:to|in)\s+([$€£¥₹₩₽]|[a-z]{3})$`)
	reCurrencyPartial = regexp.MustCompile(
		`^([$€£¥₹₩₽])?\s*(\d+(?:[.,]\d+)*)\s*([a-z]{3})?(?:\s+(?:t|to|i|in)?)?\s*$`)
)

// currencyCode resolves a symbol or 3-letter code to a valid ISO 4217 code.
func currencyCode(s string) (string, bool) {
	if code, ok := currencySymbols[s]; ok {
		return code, true
	}
	if len(s) != 3 {
		return "", false
	}
	unit, err := currency.ParseISO(strings.ToUpper(s))
	if err != nil {
		return "", false
	}
	return unit.String(), true
}

// DetectCurrency matches currency conversions and their typed prefixes.
func DetectCurrency(text string) *Result {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil
	}

	if m := reCurrencyFull.FindStringSubmatch(s); m != nil {
		from, ok := pickCurrency(m[1], m[3])
		if !ok {
			return nil
		}
		to, ok := currencyCode(m[4])
		if !ok {
			return nil
		}
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
		if err != nil {
			return nil
		}

		return &Result{
			Kind:    KindCurrency,
			Loading: true,
			Display: formatCurrencyAmount(amount) + " " + from + " → " + to,
			Currency: &CurrencyRequest{
				Amount: amount,
				From:   from,
				To:     to,
			},
		}
	}

	if m := reCurrencyPartial.FindStringSubmatch(s); m != nil {
		from, ok := pickCurrency(m[1], m[3])
		if !ok {
			return nil
		}
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
		if err != nil {
			return nil
		}
		return &Result{
			Kind:    KindCurrency,
			Partial: true,
			Display: formatCurrencyAmount(amount) + " " + from + " to ...",
		}
	}

	return nil
}

// formatCurrencyAmount renders an amount with grouping and at most two
// decimals.
func formatCurrencyAmount(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}

// pickCurrency chooses the source currency from an optional symbol and an
// optional code; exactly one must be present.
func pickCurrency(symbol, code string) (string, bool) {
	switch {
	case symbol != "" && code != "":
		return "", false
	case symbol != "":
		return currencyCode(symbol)
	case code != "":
		return currencyCode(code)
	}
	return "", false
}
