package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor

	// UI element colors
	Border lipgloss.AdaptiveColor // panel borders, separators
	Dimmed lipgloss.AdaptiveColor // very subtle text (shortcuts)
	Subtle lipgloss.AdaptiveColor // subtle UI elements

	// Component styles
	AppTitle    lipgloss.Style // app title line
	Panel       lipgloss.Style // result panel frame
	Display     lipgloss.Style // primary result line
	Detail      lipgloss.Style // secondary result lines
	Selected    lipgloss.Style // selected palette row
	Category    lipgloss.Style // palette category headings
	Shortcut    lipgloss.Style // dimmed key hints
	ErrorText   lipgloss.Style
	LoadingText lipgloss.Style
	StatusBar   lipgloss.Style
}

func (t *Theme) buildStyles() {
	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.Display = lipgloss.NewStyle().
		Foreground(t.Foreground).
		Bold(true)

	t.Detail = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	t.Category = lipgloss.NewStyle().
		Foreground(t.Secondary).
		Bold(true)

	t.Shortcut = lipgloss.NewStyle().
		Foreground(t.Dimmed)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(t.Error)

	t.LoadingText = lipgloss.NewStyle().
		Foreground(t.Subtle).
		Italic(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(t.Muted)
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	t := &Theme{Name: "charm"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	t.Muted = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Error = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	t.Success = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFAA00"}

	t.Border = lipgloss.AdaptiveColor{Light: "240", Dark: "240"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "243", Dark: "243"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "241", Dark: "241"}

	t.buildStyles()
	return t
}

// ThemeDracula returns a Dracula-inspired theme
func ThemeDracula() *Theme {
	t := &Theme{Name: "dracula"}

	t.Primary = lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"}
	t.Secondary = lipgloss.AdaptiveColor{Light: "#8be9fd", Dark: "#8be9fd"}
	t.Accent = lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"}
	t.Foreground = lipgloss.AdaptiveColor{Light: "235", Dark: "#f8f8f2"}
	t.Muted = lipgloss.AdaptiveColor{Light: "243", Dark: "#6272a4"}
	t.Error = lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"}
	t.Success = lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"}
	t.Warning = lipgloss.AdaptiveColor{Light: "#f1fa8c", Dark: "#f1fa8c"}

	t.Border = lipgloss.AdaptiveColor{Light: "240", Dark: "#44475a"}
	t.Dimmed = lipgloss.AdaptiveColor{Light: "243", Dark: "#6272a4"}
	t.Subtle = lipgloss.AdaptiveColor{Light: "241", Dark: "#6272a4"}

	t.buildStyles()
	return t
}

// GetTheme returns a theme by name, defaulting to charm.
func GetTheme(name string) *Theme {
	switch strings.ToLower(name) {
	case "dracula":
		return ThemeDracula()
	default:
		return ThemeCharm()
	}
}

// Next returns the other built-in theme, for the toggle command.
func (t *Theme) Next() *Theme {
	if t.Name == "charm" {
		return ThemeDracula()
	}
	return ThemeCharm()
}
