package intent

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // embed the zone database; the TUI may run anywhere
)

// Timezone conversion and lookup: "time in tokyo", "3pm est to pst",
// "15:30 utc to ist". Zone names resolve through a fixed table of common
// cities and abbreviations onto IANA names.

var zoneTable = map[string]string{
	"utc":         "UTC",
	"gmt":         "UTC",
	"est":         "America/New_York",
	"edt":         "America/New_York",
	"cst":         "America/Chicago",
	"cdt":         "America/Chicago",
	"mst":         "America/Denver",
	"mdt":         "America/Denver",
	"pst":         "America/Los_Angeles",
	"pdt":         "America/Los_Angeles",
	"ist":         "Asia/Kolkata",
	"jst":         "Asia/Tokyo",
	"cet":         "Europe/Paris",
	"cest":        "Europe/Paris",
	"bst":         "Europe/London",
	"aest":        "Australia/Sydney",
	"new york":    "America/New_York",
	"nyc":         "America/New_York",
	"los angeles": "America/Los_Angeles",
	"la":          "America/Los_Angeles",
	"chicago":     "America/Chicago",
	"denver":      "America/Denver",
	"london":      "Europe/London",
	"paris":       "Europe/Paris",
	"berlin":      "Europe/Berlin",
	"madrid":      "Europe/Madrid",
	"rome":        "Europe/Rome",
	"moscow":      "Europe/Moscow",
	"dubai":       "Asia/Dubai",
	"mumbai":      "Asia/Kolkata",
	"delhi":       "Asia/Kolkata",
	"singapore":   "Asia/Singapore",
	"hong kong":   "Asia/Hong_Kong",
	"shanghai":    "Asia/Shanghai",
	"beijing":     "Asia/Shanghai",
	"tokyo":       "Asia/Tokyo",
	"seoul":       "Asia/Seoul",
	"sydney":      "Australia/Sydney",
	"auckland":    "Pacific/Auckland",
	"sao paulo":   "America/Sao_Paulo",
	"mexico city": "America/Mexico_City",
	"toronto":     "America/Toronto",
	"vancouver":   "America/Vancouver",
	"honolulu":    "Pacific/Honolulu",
	"anchorage":   "America/Anchorage",
}

var (
	reTimeIn      = regexp.MustCompile(`^(?:what\s+)?time(?:\s+is\s+it)?\s+in\s+([a-z .]+)$`)
	reTZConvert   = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s+([a-z .]+?)\s+(?:to|in)\s+([a-z .]+)$`)
	reTZPartial   = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s+([a-z .]+?)(?:\s+(?:t|to|i|in)?)?\s*$`)
	reTimePartial = regexp.MustCompile(`^(?:what\s+)?time(?:\s+is\s+it)?(?:\s+i|\s+in)?\s*$`)
)

func lookupZone(name string) (*time.Location, string, bool) {
	key := strings.TrimSpace(name)
	iana, ok := zoneTable[key]
	if !ok {
		return nil, "", false
	}
	loc, err := time.LoadLocation(iana)
	if err != nil {
		return nil, "", false
	}
	return loc, key, true
}

func detectTimezoneWith(deps Deps) func(string) *Result {
	return func(text string) *Result {
		return detectTimezone(text, deps.now())
	}
}

func detectTimezone(text string, now time.Time) *Result {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil
	}

	if m := reTimeIn.FindStringSubmatch(s); m != nil {
		loc, name, ok := lookupZone(m[1])
		if !ok {
			return nil
		}
		local := now.In(loc)
		return &Result{
			Kind:    KindTimezone,
			Display: "Time in " + titleCase(name) + ": " + local.Format("3:04 PM"),
			Detail:  local.Format("Monday, Jan 2 (MST)"),
			Copy:    local.Format("3:04 PM"),
		}
	}

	if m := reTZConvert.FindStringSubmatch(s); m != nil {
		fromLoc, fromName, ok := lookupZone(m[4])
		if !ok {
			return nil
		}
		toLoc, toName, ok := lookupZone(m[5])
		if !ok {
			return nil
		}

		hour, minute, ok := parseClock(m[1], m[2], m[3])
		if !ok {
			return nil
		}

		src := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, fromLoc)
		dst := src.In(toLoc)

		return &Result{
			Kind: KindTimezone,
			Display: src.Format("3:04 PM") + " " + strings.ToUpper(fromName) +
				" = " + dst.Format("3:04 PM") + " " + strings.ToUpper(toName),
			Copy: dst.Format("3:04 PM"),
		}
	}

	if m := reTZPartial.FindStringSubmatch(s); m != nil {
		if _, _, ok := lookupZone(m[4]); ok {
			return &Result{
				Kind:    KindTimezone,
				Partial: true,
				Display: strings.TrimSpace(text) + " ...",
			}
		}
		return nil
	}

	if reTimePartial.MatchString(s) {
		return &Result{
			Kind:    KindTimezone,
			Partial: true,
			Display: "time in ...",
		}
	}

	return nil
}

func parseClock(hourStr, minuteStr, meridiem string) (int, int, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, 0, false
	}
	minute := 0
	if minuteStr != "" {
		minute, err = strconv.Atoi(minuteStr)
		if err != nil || minute > 59 {
			return 0, 0, false
		}
	}

	switch meridiem {
	case "am":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return 0, 0, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return 0, 0, false
		}
	}
	return hour, minute, true
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) <= 3 && w == strings.ToLower(w) && zoneTable[w] != "" && !strings.Contains(w, ".") {
			// Short abbreviations read better fully uppercased.
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
