package commands

import "contour/internal/intent"

// CommandCategory groups commands in the palette.
type CommandCategory string

const (
	CategoryTools      CommandCategory = "tools"
	CategoryConvert    CommandCategory = "convert"
	CategoryText       CommandCategory = "text"
	CategoryNavigation CommandCategory = "navigation"

	// CategoryRecents is synthetic: recently used commands are re-tagged
	// into it when the query is empty. It never appears in the catalog.
	CategoryRecents CommandCategory = "recents"
)

// ActionType discriminates the Action union.
type ActionType string

const (
	ActionInlineHandler ActionType = "inline-handler" // focus an intent module
	ActionNavigate      ActionType = "navigate"       // app-level navigation target
	ActionModeSwitch    ActionType = "mode-switch"    // toggle an app mode
	ActionClipboard     ActionType = "clipboard"      // copy a fixed payload
	ActionExternalLink  ActionType = "external-link"  // open a URL
)

// Action is what a committed command does. Exactly the fields implied by
// Type are set.
type Action struct {
	Type    ActionType
	Intent  intent.Kind // inline-handler
	Target  string      // navigate, mode-switch
	Payload string      // clipboard
	URL     string      // external-link
}

// Command is one palette entry.
type Command struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    CommandCategory
	Keywords    []string
	Action      Action
}
