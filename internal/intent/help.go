package intent

import "strings"

// Help: a "?" or "help" shows a cheat sheet of everything the box detects.

var helpLines = []string{
	"5+3*2           calculator",
	"100 usd to eur  currency",
	"5km to miles    units",
	"3pm est to pst  timezone",
	"#ff6b35         color",
	"today + 3 days  dates",
	"timer 5 min     timer",
	"random 1-100    random",
	"translate hi to spanish",
	"define word     dictionary",
	"wordcount text  counts",
	"lorem 20        filler text",
	"md5 text        hashing",
	"regex \\d+ on a1b2",
	"{\"a\":1}         json format",
	"base64 text     encode/decode",
	"urlencode text  escaping",
	"y = sin(x)      graphing",
	"/               commands",
}

// DetectHelp matches explicit help requests.
func DetectHelp(text string) *Result {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "?", "help", "what can you do":
		return &Result{
			Kind:    KindHelp,
			Display: "Type anything below, or / for commands",
			Detail:  strings.Join(helpLines, "\n"),
		}
	}
	return nil
}
