package intent

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"contour/internal/expr"
)

// Unit conversion: "<number> <unit> to <unit>". Conversions only happen
// inside a single category; "100f to c" is temperature and nothing else, and
// a mismatched pair ("5km to kg") is a no-match rather than an error.

type unitCategory string

const (
	catLength      unitCategory = "length"
	catMass        unitCategory = "mass"
	catTemperature unitCategory = "temperature"
	catVolume      unitCategory = "volume"
	catSpeed       unitCategory = "speed"
	catData        unitCategory = "data"
	catTime        unitCategory = "time"
)

type unit struct {
	symbol   string // canonical display symbol
	category unitCategory
	toBase   func(float64) float64
	fromBase func(float64) float64
}

func linearUnit(symbol string, category unitCategory, factor float64) *unit {
	return &unit{
		symbol:   symbol,
		category: category,
		toBase:   func(v float64) float64 { return v * factor },
		fromBase: func(v float64) float64 { return v / factor },
	}
}

// unitAliases maps every accepted spelling to its unit. Built once at init.
var unitAliases = map[string]*unit{}

func registerUnit(u *unit, aliases ...string) {
	for _, a := range aliases {
		unitAliases[a] = u
	}
}

func init() {
	// Length, base meter
	registerUnit(linearUnit("mm", catLength, 0.001), "mm", "millimeter", "millimeters", "millimetre", "millimetres")
	registerUnit(linearUnit("cm", catLength, 0.01), "cm", "centimeter", "centimeters", "centimetre", "centimetres")
	registerUnit(linearUnit("m", catLength, 1), "m", "meter", "meters", "metre", "metres")
	registerUnit(linearUnit("km", catLength, 1000), "km", "kilometer", "kilometers", "kilometre", "kilometres")
	registerUnit(linearUnit("in", catLength, 0.0254), "in", "inch", "inches")
	registerUnit(linearUnit("ft", catLength, 0.3048), "ft", "foot", "feet")
	registerUnit(linearUnit("yd", catLength, 0.9144), "yd", "yard", "yards")
	registerUnit(linearUnit("mi", catLength, 1609.344), "mi", "mile", "miles")

	// Mass, base kilogram. "f" is NOT a mass alias; temperature owns it.
	registerUnit(linearUnit("mg", catMass, 1e-6), "mg", "milligram", "milligrams")
	registerUnit(linearUnit("g", catMass, 0.001), "g", "gram", "grams")
	registerUnit(linearUnit("kg", catMass, 1), "kg", "kilogram", "kilograms", "kilo", "kilos")
	registerUnit(linearUnit("t", catMass, 1000), "t", "tonne", "tonnes", "ton", "tons")
	registerUnit(linearUnit("oz", catMass, 0.028349523125), "oz", "ounce", "ounces")
	registerUnit(linearUnit("lb", catMass, 0.45359237), "lb", "lbs", "pound", "pounds")
	registerUnit(linearUnit("st", catMass, 6.35029318), "st", "stone", "stones")

	// Temperature, base Celsius
	celsius := &unit{
		symbol:   "°C",
		category: catTemperature,
		toBase:   func(v float64) float64 { return v },
		fromBase: func(v float64) float64 { return v },
	}
	fahrenheit := &unit{
		symbol:   "°F",
		category: catTemperature,
		toBase:   func(v float64) float64 { return (v - 32) * 5 / 9 },
		fromBase: func(v float64) float64 { return v*9/5 + 32 },
	}
	kelvin := &unit{
		symbol:   "K",
		category: catTemperature,
		toBase:   func(v float64) float64 { return v - 273.15 },
		fromBase: func(v float64) float64 { return v + 273.15 },
	}
	registerUnit(celsius, "c", "°c", "celsius", "centigrade")
	registerUnit(fahrenheit, "f", "°f", "fahrenheit")
	registerUnit(kelvin, "k", "kelvin")

	// Volume, base liter
	registerUnit(linearUnit("ml", catVolume, 0.001), "ml", "milliliter", "milliliters", "millilitre", "millilitres")
	registerUnit(linearUnit("l", catVolume, 1), "l", "liter", "liters", "litre", "litres")
	registerUnit(linearUnit("gal", catVolume, 3.785411784), "gal", "gallon", "gallons")
	registerUnit(linearUnit("qt", catVolume, 0.946352946), "qt", "quart", "quarts")
	registerUnit(linearUnit("pt", catVolume, 0.473176473), "pt", "pint", "pints")
	registerUnit(linearUnit("cup", catVolume, 0.2365882365), "cup", "cups")
	registerUnit(linearUnit("tbsp", catVolume, 0.01478676478125), "tbsp", "tablespoon", "tablespoons")
	registerUnit(linearUnit("tsp", catVolume, 0.00492892159375), "tsp", "teaspoon", "teaspoons")

	// Speed, base m/s
	registerUnit(linearUnit("m/s", catSpeed, 1), "m/s", "mps")
	registerUnit(linearUnit("km/h", catSpeed, 1.0/3.6), "km/h", "kmh", "kph")
	registerUnit(linearUnit("mph", catSpeed, 0.44704), "mph")
	registerUnit(linearUnit("kn", catSpeed, 0.514444), "kn", "knot", "knots")
	registerUnit(linearUnit("ft/s", catSpeed, 0.3048), "ft/s", "fps")

	// Data, base byte, 1024 steps
	registerUnit(linearUnit("B", catData, 1), "byte", "bytes")
	registerUnit(linearUnit("KB", catData, 1024), "kb", "kilobyte", "kilobytes")
	registerUnit(linearUnit("MB", catData, 1024*1024), "mb", "megabyte", "megabytes")
	registerUnit(linearUnit("GB", catData, 1024*1024*1024), "gb", "gigabyte", "gigabytes")
	registerUnit(linearUnit("TB", catData, 1024*1024*1024*1024), "tb", "terabyte", "terabytes")

	// Time, base second
	registerUnit(linearUnit("ms", catTime, 0.001), "ms", "millisecond", "milliseconds")
	registerUnit(linearUnit("s", catTime, 1), "s", "sec", "secs", "second", "seconds")
	registerUnit(linearUnit("min", catTime, 60), "min", "mins", "minute", "minutes")
	registerUnit(linearUnit("h", catTime, 3600), "h", "hr", "hrs", "hour", "hours")
	registerUnit(linearUnit("d", catTime, 86400), "d", "day", "days")
	registerUnit(linearUnit("wk", catTime, 604800), "wk", "week", "weeks")
}

var (
	reUnitFull    = regexp.MustCompile(`^(-?\d+(?:[.,]\d+)*)\s*([a-z°/]+)\s+(?:to|in)\s+([a-z°/]+)$`)
	reUnitPartial = regexp.MustCompile(`^(-?\d+(?:[.,]\d+)*)\s*([a-z°/]+)(?:\s+(?:t|to|i|in)?)?\s*$`)
)

// DetectUnits matches unit conversions and same-category prefixes thereof.
func DetectUnits(text string) *Result {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil
	}

	if m := reUnitFull.FindStringSubmatch(s); m != nil {
		value, ok := parseUnitNumber(m[1])
		if !ok {
			return nil
		}
		from := unitAliases[m[2]]
		to := unitAliases[m[3]]
		if from == nil || to == nil || from.category != to.category {
			return nil
		}

		converted := to.fromBase(from.toBase(value))
		display := formatUnitValue(value, from) + " = " + formatUnitValue(converted, to)
		return &Result{
			Kind:    KindUnits,
			Display: display,
			Copy:    formatUnitValue(converted, to),
		}
	}

	if m := reUnitPartial.FindStringSubmatch(s); m != nil {
		value, ok := parseUnitNumber(m[1])
		if !ok {
			return nil
		}
		from := unitAliases[m[2]]
		if from == nil {
			return nil
		}
		return &Result{
			Kind:    KindUnits,
			Partial: true,
			Display: formatUnitValue(value, from) + " to ...",
		}
	}

	return nil
}

func parseUnitNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// formatUnitValue renders a value with its unit symbol: up to 4 decimals,
// thousands grouped, temperature symbols attached without a space.
func formatUnitValue(v float64, u *unit) string {
	rounded := math.Round(v*1e4) / 1e4
	num := expr.FormatNumber(rounded)
	if u.category == catTemperature {
		return num + u.symbol
	}
	return num + " " + u.symbol
}
