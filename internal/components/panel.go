// Package components renders the engine's panel state: the result panel for
// an active module and the command palette list.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"contour/internal/engine"
	"contour/internal/intent"
	"contour/internal/ui"
)

// Panel renders the drop-down under the input box.
type Panel struct {
	theme    *ui.Theme
	width    int
	progress progress.Model
}

// NewPanel creates a panel renderer.
func NewPanel(theme *ui.Theme, width int) *Panel {
	p := progress.New(progress.WithDefaultGradient())
	p.ShowPercentage = false
	return &Panel{theme: theme, width: width, progress: p}
}

// SetWidth updates the render width.
func (p *Panel) SetWidth(width int) {
	p.width = width
	p.progress.Width = width - 8
}

// SetTheme swaps the color scheme.
func (p *Panel) SetTheme(theme *ui.Theme) {
	p.theme = theme
}

// View renders the panel for a state snapshot. Hidden state renders empty.
func (p *Panel) View(state engine.PanelState) string {
	switch state.Mode {
	case engine.ModeCommands:
		return p.viewPalette(state)
	case engine.ModeModule:
		return p.viewModule(state)
	}
	return ""
}

func (p *Panel) viewModule(state engine.PanelState) string {
	active := state.Active
	if active == nil {
		return ""
	}

	var body string
	switch {
	case active.Kind == intent.KindTimer && state.Timer.TotalSeconds > 0:
		body = p.viewTimer(state.Timer)
	case active.Result == nil:
		body = p.theme.Detail.Render(p.focusedPrompt(active.Kind))
	default:
		body = p.viewResult(active.Result)
	}

	return p.theme.Panel.Width(p.width - 2).Render(body)
}

func (p *Panel) viewResult(r *intent.Result) string {
	switch {
	case r.Err != "":
		return ui.RenderMessage(r.Err, ui.MessageTypeError, p.theme, p.width)
	case r.Loading:
		return ui.RenderMessage(r.Display, ui.MessageTypeLoading, p.theme, p.width)
	case r.Partial:
		return p.theme.Detail.Render(r.Display)
	}

	lines := []string{p.theme.Display.Render(r.Display)}
	if r.Kind == intent.KindGraph && r.Graph != nil {
		if plot := RenderGraph(r.Graph, p.width-6, 12); plot != "" {
			lines = append(lines, p.theme.Detail.Render(plot))
		}
	}
	if r.Detail != "" {
		lines = append(lines, p.theme.Detail.Render(r.Detail))
	}
	lines = append(lines, p.theme.Shortcut.Render("enter to copy"))
	return strings.Join(lines, "\n")
}

func (p *Panel) viewTimer(t engine.TimerState) string {
	lines := []string{p.theme.Display.Render(t.Display())}
	lines = append(lines, p.progress.ViewAs(t.Progress()))

	switch {
	case t.Complete:
		lines = append(lines, ui.RenderMessage("Time's up!", ui.MessageTypeSuccess, p.theme, p.width))
	case t.Running:
		lines = append(lines, p.theme.Shortcut.Render("ctrl+t pause · ctrl+r reset"))
	default:
		lines = append(lines, p.theme.Shortcut.Render("enter to start"))
	}
	return strings.Join(lines, "\n")
}

// focusedPrompt is the placeholder hint for a focused module with no input.
func (p *Panel) focusedPrompt(kind intent.Kind) string {
	prompts := map[intent.Kind]string{
		intent.KindCalculator: "type an expression, e.g. 5+3*2",
		intent.KindUnits:      "e.g. 5km to miles",
		intent.KindCurrency:   "e.g. 100 usd to eur",
		intent.KindTimezone:   "e.g. 3pm est to pst",
		intent.KindColor:      "e.g. #ff6b35 or rgb(255, 107, 53)",
		intent.KindDate:       "e.g. today + 3 days",
		intent.KindTimer:      "e.g. timer 5 min",
		intent.KindRandom:     "e.g. random 1-100, flip a coin",
		intent.KindTranslator: "e.g. translate hello to spanish",
		intent.KindDictionary: "e.g. define serendipity",
		intent.KindWordCount:  "e.g. wordcount some text",
		intent.KindLorem:      "e.g. lorem 20",
		intent.KindJSONFormat: "paste json to format",
		intent.KindBase64:     "e.g. base64 hello",
		intent.KindURLEncode:  "e.g. urlencode a b&c",
		intent.KindHash:       "e.g. sha256 hello",
		intent.KindRegex:      "e.g. regex \\d+ on a1b2",
		intent.KindGraph:      "e.g. y = sin(x)",
		intent.KindHelp:       "press enter",
	}
	if prompt, ok := prompts[kind]; ok {
		return prompt
	}
	return "start typing"
}

func (p *Panel) viewPalette(state engine.PanelState) string {
	if len(state.Commands) == 0 {
		return p.theme.Panel.Width(p.width - 2).
			Render(p.theme.Detail.Render("no matching commands"))
	}

	var lines []string
	lastCategory := ""
	for i, cmd := range state.Commands {
		if string(cmd.Category) != lastCategory {
			lastCategory = string(cmd.Category)
			lines = append(lines, p.theme.Category.Render(lastCategory))
		}

		row := cmd.Icon + " " + cmd.Name
		desc := p.theme.Detail.Render("  " + cmd.Description)
		if i == state.SelectedIndex {
			lines = append(lines, p.theme.Selected.Render("> "+row)+desc)
		} else {
			lines = append(lines, "  "+row+desc)
		}
	}

	return p.theme.Panel.Width(p.width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
