package intent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Timer: "timer 5 min", "5 minute timer", "countdown 90s". Detection only
// parses the duration; starting, ticking, and finishing live in the engine.

var (
	reTimerLead  = regexp.MustCompile(`^(?:timer|countdown)\s+(\d+)\s*(s|sec|secs|second|seconds|m|min|mins|minute|minutes|h|hr|hrs|hour|hours)$`)
	reTimerTrail = regexp.MustCompile(`^(\d+)\s*(s|sec|secs|second|seconds|m|min|mins|minute|minutes|h|hr|hrs|hour|hours)\s+(?:timer|countdown)$`)
	reTimerPart  = regexp.MustCompile(`^(?:timer|countdown)(?:\s+\d*)?$`)
)

// DetectTimer matches timer requests and produces a ready-to-start duration.
func DetectTimer(text string) *Result {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return nil
	}

	m := reTimerLead.FindStringSubmatch(s)
	if m == nil {
		m = reTimerTrail.FindStringSubmatch(s)
	}
	if m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			return nil
		}
		seconds := n
		switch m[2][0] {
		case 'm':
			seconds = n * 60
		case 'h':
			seconds = n * 3600
		}
		return &Result{
			Kind:    KindTimer,
			Display: FormatTimerClock(seconds),
			Detail:  "press enter to start",
			Timer:   &TimerRequest{Seconds: seconds},
		}
	}

	if reTimerPart.MatchString(s) {
		return &Result{
			Kind:    KindTimer,
			Partial: true,
			Display: strings.TrimSpace(text) + " ...",
		}
	}

	return nil
}

// FormatTimerClock renders seconds as MM:SS, or H:MM:SS past an hour.
func FormatTimerClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
