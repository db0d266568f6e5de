// Package app is the Bubble Tea shell around the engine: one text input, the
// result panel underneath it, and a status line.
package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"contour/internal/commands"
	"contour/internal/components"
	"contour/internal/engine"
	"contour/internal/keyboard"
	"contour/internal/logging"
	"contour/internal/providers"
	"contour/internal/ui"
)

// engineUpdatedMsg signals that async work changed the panel state.
type engineUpdatedMsg struct{}

// Config wires the app model.
type Config struct {
	Engine    *engine.Engine
	Theme     *ui.Theme
	Keys      *keyboard.Keys
	Clipboard providers.ClipboardSink
	NotifyCh  <-chan struct{}
	Version   string
}

// Model is the root Bubble Tea model.
type Model struct {
	engine    *engine.Engine
	panel     *components.Panel
	input     textinput.Model
	keys      *keyboard.Keys
	theme     *ui.Theme
	clipboard providers.ClipboardSink
	notifyCh  <-chan struct{}
	version   string

	width  int
	height int
	status string
}

// New creates the root model.
func New(cfg Config) *Model {
	input := textinput.New()
	input.Placeholder = "Type anything... (? for help, / for commands)"
	input.Prompt = "> "
	input.Focus()

	keys := cfg.Keys
	if keys == nil {
		keys = keyboard.Default()
	}

	return &Model{
		engine:    cfg.Engine,
		panel:     components.NewPanel(cfg.Theme, 80),
		input:     input,
		keys:      keys,
		theme:     cfg.Theme,
		clipboard: cfg.Clipboard,
		notifyCh:  cfg.NotifyCh,
		version:   cfg.Version,
		width:     80,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForUpdate())
}

// waitForUpdate re-arms the listener for async engine changes.
func (m *Model) waitForUpdate() tea.Cmd {
	if m.notifyCh == nil {
		return nil
	}
	return func() tea.Msg {
		<-m.notifyCh
		return engineUpdatedMsg{}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		m.panel.SetWidth(msg.Width)
		return m, nil

	case engineUpdatedMsg:
		return m, m.waitForUpdate()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	state := m.engine.State()

	switch key {
	case m.keys.Quit:
		return m, tea.Quit

	case m.keys.Back:
		if state.Mode == engine.ModeHidden && m.input.Value() == "" {
			return m, tea.Quit
		}
		m.engine.Dismiss()
		m.input.Reset()
		m.status = ""
		return m, nil

	case m.keys.Up:
		if state.Mode == engine.ModeCommands {
			m.engine.SelectUp()
			return m, nil
		}

	case m.keys.Down:
		if state.Mode == engine.ModeCommands {
			m.engine.SelectDown()
			return m, nil
		}

	case m.keys.Commit:
		return m.commit()

	case m.keys.Copy:
		if state.Mode == engine.ModeModule {
			return m.commit()
		}

	case m.keys.TimerToggle:
		m.engine.ToggleTimer()
		return m, nil

	case m.keys.TimerReset:
		m.engine.ResetTimer()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.engine.Analyze(m.input.Value())
	return m, cmd
}

// commit handles Enter: palette commands, module copy, timer start.
func (m *Model) commit() (tea.Model, tea.Cmd) {
	before := m.engine.State()
	action, external := m.engine.Enter()

	if external {
		m.runAction(action)
		m.input.Reset()
		return m, nil
	}

	after := m.engine.State()
	switch {
	case before.Mode == engine.ModeCommands && after.Mode == engine.ModeModule:
		// Inline handler: fresh focused module wants an empty input.
		m.input.Reset()
	case before.Mode == engine.ModeCommands && after.Mode == engine.ModeHidden:
		m.input.Reset()
		m.status = "copied"
	case after.Mode == engine.ModeModule && after.Active != nil &&
		after.Active.Result != nil && !after.Active.Result.Partial &&
		!after.Active.Result.Loading && after.Active.Result.Err == "" &&
		!after.Timer.Running:
		m.status = "copied to clipboard"
	}
	return m, nil
}

// runAction carries out the command actions the engine hands back.
func (m *Model) runAction(action commands.Action) {
	switch action.Type {
	case commands.ActionModeSwitch:
		if action.Target == "theme" {
			m.theme = m.theme.Next()
			m.panel.SetTheme(m.theme)
			m.status = "theme: " + m.theme.Name
		}
	case commands.ActionExternalLink:
		if m.clipboard != nil {
			if err := m.clipboard.Copy(action.URL); err != nil {
				logging.Warn("clipboard copy failed", "error", err)
				m.status = "copy failed"
				return
			}
		}
		m.status = "link copied: " + action.URL
	case commands.ActionNavigate:
		m.status = action.Target + ": not available yet"
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	title := m.theme.AppTitle.Render("contour " + m.version)

	sections := []string{
		title,
		m.input.View(),
	}

	if panel := m.panel.View(m.engine.State()); panel != "" {
		sections = append(sections, panel)
	}

	if m.status != "" {
		sections = append(sections, ui.RenderMessage(m.status, ui.MessageTypeInfo, m.theme, m.width))
	}
	sections = append(sections, m.theme.StatusBar.Render("esc dismiss · ctrl+c quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
