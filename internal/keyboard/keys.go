// Package keyboard centralizes the key bindings so the app layer never
// hard-codes key strings.
package keyboard

// Keys holds all keyboard shortcut configurations for contour
type Keys struct {
	// Navigation
	Up   string // Move palette selection up
	Down string // Move palette selection down

	// Actions
	Commit string // Commit selection / copy result / start timer
	Copy   string // Explicit copy shortcut in module mode

	// Timer
	TimerToggle string // Pause/resume a running timer
	TimerReset  string // Reset the timer

	// Global
	Back string // Dismiss panel, clear input
	Quit string // Quit application
}

// Default returns the default contour keyboard configuration
func Default() *Keys {
	return &Keys{
		Up:          "up",
		Down:        "down",
		Commit:      "enter",
		Copy:        "ctrl+y",
		TimerToggle: "ctrl+t",
		TimerReset:  "ctrl+r",
		Back:        "esc",
		Quit:        "ctrl+c",
	}
}
