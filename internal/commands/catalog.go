package commands

import "contour/internal/intent"

// Catalog returns the static command list. Entries are grouped by category
// so the palette renders each heading once; within a group, declaration
// order is the tiebreak order for equal match scores, roughly
// most-used-first.
func Catalog() []Command {
	return []Command{
		{
			ID:          "calculator",
			Name:        "Calculator",
			Description: "Evaluate arithmetic expressions",
			Icon:        "🧮",
			Category:    CategoryTools,
			Keywords:    []string{"math", "arithmetic", "compute", "calc"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindCalculator},
		},
		{
			ID:          "date",
			Name:        "Date Calculator",
			Description: "Add and subtract dates, count days",
			Icon:        "📅",
			Category:    CategoryTools,
			Keywords:    []string{"calendar", "days", "until", "tomorrow"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindDate},
		},
		{
			ID:          "timer",
			Name:        "Timer",
			Description: "Start a countdown timer",
			Icon:        "⏱️",
			Category:    CategoryTools,
			Keywords:    []string{"countdown", "alarm", "pomodoro"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindTimer},
		},
		{
			ID:          "random",
			Name:        "Random",
			Description: "Random numbers, coin flips, dice, uuids",
			Icon:        "🎲",
			Category:    CategoryTools,
			Keywords:    []string{"rng", "dice", "coin", "uuid", "pick"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindRandom},
		},
		{
			ID:          "json-format",
			Name:        "JSON Formatter",
			Description: "Pretty-print JSON",
			Icon:        "{}",
			Category:    CategoryTools,
			Keywords:    []string{"format", "pretty", "indent"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindJSONFormat},
		},
		{
			ID:          "base64",
			Name:        "Base64",
			Description: "Encode and decode base64",
			Icon:        "🔐",
			Category:    CategoryTools,
			Keywords:    []string{"encode", "decode", "b64"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindBase64},
		},
		{
			ID:          "url-encode",
			Name:        "URL Encoder",
			Description: "Escape and unescape URL components",
			Icon:        "🔗",
			Category:    CategoryTools,
			Keywords:    []string{"escape", "percent", "uri"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindURLEncode},
		},
		{
			ID:          "hash",
			Name:        "Hash",
			Description: "md5, sha1, sha256 and sha512 digests",
			Icon:        "#",
			Category:    CategoryTools,
			Keywords:    []string{"md5", "sha256", "checksum", "digest"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindHash},
		},
		{
			ID:          "regex",
			Name:        "Regex Tester",
			Description: "Run a pattern against sample text",
			Icon:        "⚙️",
			Category:    CategoryTools,
			Keywords:    []string{"pattern", "match", "regexp"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindRegex},
		},
		{
			ID:          "graph",
			Name:        "Graph",
			Description: "Plot a function of x",
			Icon:        "📈",
			Category:    CategoryTools,
			Keywords:    []string{"plot", "function", "sin", "math"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindGraph},
		},
		{
			ID:          "units",
			Name:        "Unit Converter",
			Description: "Convert lengths, weights, temperatures and more",
			Icon:        "📏",
			Category:    CategoryConvert,
			Keywords:    []string{"convert", "metric", "imperial", "temperature"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindUnits},
		},
		{
			ID:          "currency",
			Name:        "Currency Converter",
			Description: "Convert between currencies at live rates",
			Icon:        "💱",
			Category:    CategoryConvert,
			Keywords:    []string{"money", "exchange", "usd", "eur", "forex"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindCurrency},
		},
		{
			ID:          "timezone",
			Name:        "Timezone Converter",
			Description: "Convert times between cities and zones",
			Icon:        "🌍",
			Category:    CategoryConvert,
			Keywords:    []string{"time", "clock", "world", "utc"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindTimezone},
		},
		{
			ID:          "color",
			Name:        "Color Converter",
			Description: "Convert between hex, rgb and hsl",
			Icon:        "🎨",
			Category:    CategoryConvert,
			Keywords:    []string{"hex", "rgb", "hsl", "palette"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindColor},
		},
		{
			ID:          "translator",
			Name:        "Translator",
			Description: "Translate text between languages",
			Icon:        "🌐",
			Category:    CategoryText,
			Keywords:    []string{"language", "spanish", "french", "translate"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindTranslator},
		},
		{
			ID:          "dictionary",
			Name:        "Dictionary",
			Description: "Look up word definitions",
			Icon:        "📖",
			Category:    CategoryText,
			Keywords:    []string{"define", "meaning", "word"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindDictionary},
		},
		{
			ID:          "wordcount",
			Name:        "Word Count",
			Description: "Count words, characters and sentences",
			Icon:        "🔢",
			Category:    CategoryText,
			Keywords:    []string{"characters", "length", "count"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindWordCount},
		},
		{
			ID:          "lorem",
			Name:        "Lorem Ipsum",
			Description: "Generate placeholder text",
			Icon:        "📝",
			Category:    CategoryText,
			Keywords:    []string{"filler", "placeholder", "ipsum"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindLorem},
		},
		{
			ID:          "help",
			Name:        "Help",
			Description: "Show everything the input box understands",
			Icon:        "❓",
			Category:    CategoryNavigation,
			Keywords:    []string{"cheatsheet", "usage", "?"},
			Action:      Action{Type: ActionInlineHandler, Intent: intent.KindHelp},
		},
		{
			ID:          "settings",
			Name:        "Settings",
			Description: "Open settings",
			Icon:        "⚙",
			Category:    CategoryNavigation,
			Keywords:    []string{"preferences", "config"},
			Action:      Action{Type: ActionNavigate, Target: "settings"},
		},
		{
			ID:          "toggle-theme",
			Name:        "Toggle Theme",
			Description: "Switch between light and dark",
			Icon:        "🌓",
			Category:    CategoryNavigation,
			Keywords:    []string{"dark", "light", "appearance"},
			Action:      Action{Type: ActionModeSwitch, Target: "theme"},
		},
		{
			ID:          "copy-version",
			Name:        "Copy Version",
			Description: "Copy the app version to the clipboard",
			Icon:        "📋",
			Category:    CategoryNavigation,
			Keywords:    []string{"about", "build"},
			Action:      Action{Type: ActionClipboard, Payload: "contour"},
		},
		{
			ID:          "report-issue",
			Name:        "Report Issue",
			Description: "Open the issue tracker in a browser",
			Icon:        "🐛",
			Category:    CategoryNavigation,
			Keywords:    []string{"bug", "feedback", "github"},
			Action:      Action{Type: ActionExternalLink, URL: "https://github.com/contour-app/contour/issues"},
		},
	}
}
