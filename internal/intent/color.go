package intent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color detection: hex with a leading #, rgb()/hsl() notation, or an exact
// CSS color name. Highest-priority detector since "#abc" would otherwise
// never survive the broader numeric patterns.

var (
	reHexColor    = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	reHexPartial  = regexp.MustCompile(`^#[0-9a-fA-F]{0,5}$`)
	reRGBColor    = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	reRGBPartial  = regexp.MustCompile(`^rgb\(?[\d\s,]*$`)
	reHSLColor    = regexp.MustCompile(`^hsl\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*\)$`)
	reHSLPartial  = regexp.MustCompile(`^hsl\(?[\d\s,%]*$`)
)

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"brown":   "#a52a2a",
	"navy":    "#000080",
	"teal":    "#008080",
	"olive":   "#808000",
	"maroon":  "#800000",
	"silver":  "#c0c0c0",
	"gold":    "#ffd700",
	"indigo":  "#4b0082",
	"violet":  "#ee82ee",
	"coral":   "#ff7f50",
	"salmon":  "#fa8072",
	"khaki":   "#f0e68c",
	"crimson": "#dc143c",
}

// DetectColor matches color literals and converts between hex, rgb, and hsl.
func DetectColor(text string) *Result {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil
	}

	if hex, ok := namedColors[s]; ok {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil
		}
		return colorResult(c)
	}

	if m := reHexColor.FindStringSubmatch(s); m != nil {
		hex := s
		if len(m[1]) == 3 {
			// Expand shorthand #abc to #aabbcc
			hex = "#" + strings.Repeat(string(m[1][0]), 2) +
				strings.Repeat(string(m[1][1]), 2) +
				strings.Repeat(string(m[1][2]), 2)
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil
		}
		return colorResult(c)
	}

	if m := reRGBColor.FindStringSubmatch(s); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r > 255 || g > 255 || b > 255 {
			return nil
		}
		c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		return colorResult(c)
	}

	if m := reHSLColor.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		sat, _ := strconv.Atoi(m[2])
		l, _ := strconv.Atoi(m[3])
		if h > 360 || sat > 100 || l > 100 {
			return nil
		}
		c := colorful.Hsl(float64(h), float64(sat)/100, float64(l)/100)
		return colorResult(c)
	}

	// Prefixes of the literal notations render provisionally.
	if (reHexPartial.MatchString(s) && s != "#") ||
		(strings.HasPrefix(s, "rgb(") && reRGBPartial.MatchString(s)) ||
		(strings.HasPrefix(s, "hsl(") && reHSLPartial.MatchString(s)) {
		return &Result{
			Kind:    KindColor,
			Partial: true,
			Display: strings.TrimSpace(text) + " ...",
		}
	}

	return nil
}

func colorResult(c colorful.Color) *Result {
	r, g, b := c.RGB255()
	h, s, l := c.Hsl()
	hex := c.Hex()

	return &Result{
		Kind:    KindColor,
		Display: hex,
		Detail: fmt.Sprintf("rgb(%d, %d, %d) · hsl(%.0f, %.0f%%, %.0f%%)",
			r, g, b, h, s*100, l*100),
		Copy: hex,
	}
}
