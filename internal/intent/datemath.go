package intent

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Date arithmetic: "today + 3 days", "now - 2 weeks", "days until
// 2025-12-25", "days until christmas". All calculations are calendar-day
// based in the local zone of the injected clock.

var (
	reDateArith = regexp.MustCompile(
		`^(today|tomorrow|yesterday|now)\s*(?:([+-]|plus|minus)\s*(\d+)\s*(day|days|week|weeks|month|months|year|years))?$`)
	reDaysUntil   = regexp.MustCompile(`^(?:how\s+many\s+)?days\s+(?:until|till|to)\s+(.+)$`)
	reDatePartial = regexp.MustCompile(`^(today|tomorrow|yesterday|now)\s*([+-]|plus|minus)\s*$`)
	reISODate     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reMonthDay    = regexp.MustCompile(`^([a-z]+)\s+(\d{1,2})(?:st|nd|rd|th)?(?:,?\s*(\d{4}))?$`)
)

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

func detectDateWith(deps Deps) func(string) *Result {
	return func(text string) *Result {
		return detectDate(text, deps.now())
	}
}

func detectDate(text string, now time.Time) *Result {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil
	}

	if m := reDatePartial.FindStringSubmatch(s); m != nil {
		return &Result{
			Kind:    KindDate,
			Partial: true,
			Display: strings.TrimSpace(text) + " ...",
		}
	}

	if m := reDateArith.FindStringSubmatch(s); m != nil {
		base := startOfDay(now)
		switch m[1] {
		case "tomorrow":
			base = base.AddDate(0, 0, 1)
		case "yesterday":
			base = base.AddDate(0, 0, -1)
		}

		if m[2] == "" {
			// Bare "today" and friends are too common as ordinary words to
			// hijack without an arithmetic tail.
			if m[1] == "tomorrow" || m[1] == "yesterday" {
				return &Result{
					Kind:    KindDate,
					Display: base.Format("Monday, January 2, 2006"),
					Copy:    base.Format("2006-01-02"),
				}
			}
			return nil
		}

		n, err := strconv.Atoi(m[3])
		if err != nil {
			return nil
		}
		if m[2] == "-" || m[2] == "minus" {
			n = -n
		}

		var result time.Time
		switch strings.TrimSuffix(m[4], "s") {
		case "day":
			result = base.AddDate(0, 0, n)
		case "week":
			result = base.AddDate(0, 0, 7*n)
		case "month":
			result = base.AddDate(0, n, 0)
		case "year":
			result = base.AddDate(n, 0, 0)
		}

		return &Result{
			Kind:    KindDate,
			Display: result.Format("Monday, January 2, 2006"),
			Detail:  humanize.Time(result),
			Copy:    result.Format("2006-01-02"),
		}
	}

	if m := reDaysUntil.FindStringSubmatch(s); m != nil {
		target, ok := parseTargetDate(m[1], now)
		if !ok {
			// "days until " with an unfinished date is a prefix.
			if strings.TrimSpace(m[1]) == "" {
				return &Result{Kind: KindDate, Partial: true, Display: "days until ..."}
			}
			return nil
		}

		days := int(target.Sub(startOfDay(now)).Hours() / 24)
		if days < 0 {
			return nil
		}

		display := strconv.Itoa(days) + " days"
		if days == 1 {
			display = "1 day"
		}
		return &Result{
			Kind:    KindDate,
			Display: display + " until " + target.Format("January 2, 2006"),
			Copy:    strconv.Itoa(days),
		}
	}

	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// parseTargetDate accepts ISO dates, "december 25", "dec 25 2026", and a few
// well-known holidays.
func parseTargetDate(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)

	switch s {
	case "christmas", "xmas":
		return nextOccurrence(time.December, 25, now), true
	case "new year", "new years", "new year's":
		return nextOccurrence(time.January, 1, now), true
	case "halloween":
		return nextOccurrence(time.October, 31, now), true
	case "valentines", "valentine's day", "valentines day":
		return nextOccurrence(time.February, 14, now), true
	}

	if m := reISODate.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), true
	}

	if m := reMonthDay.FindStringSubmatch(s); m != nil {
		month, ok := monthNames[m[1]]
		if !ok {
			return time.Time{}, false
		}
		day, err := strconv.Atoi(m[2])
		if err != nil || day < 1 || day > 31 {
			return time.Time{}, false
		}
		if m[3] != "" {
			year, err := strconv.Atoi(m[3])
			if err != nil {
				return time.Time{}, false
			}
			return time.Date(year, month, day, 0, 0, 0, 0, now.Location()), true
		}
		return nextOccurrence(month, day, now), true
	}

	return time.Time{}, false
}

// nextOccurrence returns the next future occurrence of month/day.
func nextOccurrence(month time.Month, day int, now time.Time) time.Time {
	candidate := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if candidate.Before(startOfDay(now)) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return candidate
}
