// Package engine is the orchestrator behind the input box: it owns the panel
// state machine (hidden, commands, module), routes keystrokes to the
// detection pipeline or the command palette, and guards async resolutions
// with per-kind generation counters so fast retyping can never commit a
// stale result.
package engine

import (
	"context"
	"strings"
	"sync"

	"contour/internal/commands"
	"contour/internal/intent"
	"contour/internal/logging"
	"contour/internal/providers"
)

// Mode is the top-level panel state.
type Mode string

const (
	ModeHidden   Mode = "hidden"
	ModeCommands Mode = "commands"
	ModeModule   Mode = "module"
)

// ActiveModule is the live intent module. At most one exists, and only in
// ModeModule.
type ActiveModule struct {
	Kind    intent.Kind
	Focused bool
	Result  *intent.Result
}

// PanelState is a snapshot of everything the rendering layer needs. It is a
// value copy; mutating it does not touch the engine.
type PanelState struct {
	Mode          Mode
	Active        *ActiveModule
	Commands      []commands.Command
	Query         string
	SelectedIndex int
	Timer         TimerState
}

// Config wires an Engine. Notify is invoked (outside detection calls, under
// no lock ordering guarantees toward the caller) whenever async work changed
// the panel state and the UI should re-read it.
type Config struct {
	Deps      intent.Deps
	Resolver  *intent.Resolver
	Registry  *commands.Registry
	Clipboard providers.ClipboardSink
	Notifier  providers.NotificationSink
	Scheduler Scheduler
	Notify    func()
}

// Engine is the orchestrator. All exported methods are safe for concurrent
// use; detection itself is synchronous per call.
type Engine struct {
	mu sync.Mutex

	deps      intent.Deps
	detectors map[intent.Kind]intent.Detector
	resolver  *intent.Resolver
	registry  *commands.Registry
	clipboard providers.ClipboardSink
	scheduler Scheduler
	notify    func()

	state       PanelState
	generations map[intent.Kind]uint64
	timer       timerMachine
}

// New creates an engine in the hidden state.
func New(cfg Config) *Engine {
	e := &Engine{
		deps:        cfg.Deps,
		detectors:   intent.ByKind(cfg.Deps),
		resolver:    cfg.Resolver,
		registry:    cfg.Registry,
		clipboard:   cfg.Clipboard,
		scheduler:   cfg.Scheduler,
		notify:      cfg.Notify,
		state:       PanelState{Mode: ModeHidden},
		generations: make(map[intent.Kind]uint64),
	}
	e.timer.notifier = cfg.Notifier
	if e.notify == nil {
		e.notify = func() {}
	}
	if e.scheduler == nil {
		e.scheduler = TickScheduler{}
	}
	return e
}

// State returns a snapshot of the panel state.
func (e *Engine) State() PanelState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

// snapshot deep-copies the mutable parts. Caller holds e.mu.
func (e *Engine) snapshot() PanelState {
	s := e.state
	if s.Active != nil {
		active := *s.Active
		s.Active = &active
	}
	s.Commands = append([]commands.Command(nil), s.Commands...)
	s.Timer = e.timer.state
	return s
}

// Analyze drives the state machine from an input change. A leading slash
// short-circuits into the command palette; otherwise the detection pipeline
// runs. In focused mode only the active module's own detector sees the text.
func (e *Engine) Analyze(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Mode == ModeModule && e.state.Active != nil && e.state.Active.Focused {
		e.analyzeFocused(text)
		return
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		e.toHidden()
		return
	}

	if strings.HasPrefix(trimmed, "/") {
		e.toCommands(strings.TrimPrefix(trimmed, "/"))
		return
	}

	result := intent.Detect(text, e.deps)
	if result == nil {
		e.toHidden()
		return
	}
	e.toModule(result, false)
}

// analyzeFocused routes a keystroke to the active module's detector only.
// The timer module ignores input while running. Caller holds e.mu.
func (e *Engine) analyzeFocused(text string) {
	active := e.state.Active
	if active.Kind == intent.KindTimer && e.timer.state.Running {
		return
	}

	if strings.TrimSpace(text) == "" {
		active.Result = nil
		return
	}

	d, ok := e.detectors[active.Kind]
	if !ok {
		return
	}
	result := d.Detect(text)
	active.Result = result
	if result != nil && result.Loading {
		e.resolveAsync(active.Kind, result)
	}
}

// FocusModule opens an intent module in focused mode with no initial input.
func (e *Engine) FocusModule(kind intent.Kind) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.toModule(nil, true)
	e.state.Active.Kind = kind
}

// Dismiss hides the panel and stops any running timer tick. This is the
// explicit cancel; clearing or retyping the input hides the panel but lets
// a running countdown finish in the background.
func (e *Engine) Dismiss() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopTickLocked()
	e.toHidden()
}

// SelectUp moves the palette selection up, wrapping.
func (e *Engine) SelectUp() {
	e.moveSelection(-1)
}

// SelectDown moves the palette selection down, wrapping.
func (e *Engine) SelectDown() {
	e.moveSelection(1)
}

func (e *Engine) moveSelection(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Mode != ModeCommands || len(e.state.Commands) == 0 {
		return
	}
	n := len(e.state.Commands)
	e.state.SelectedIndex = ((e.state.SelectedIndex+delta)%n + n) % n
}

// Enter commits the current selection. In commands mode it executes the
// selected command and returns any action the caller must carry out
// (navigation, external links). In module mode it copies the resolved result
// to the clipboard, or starts a pending timer.
func (e *Engine) Enter() (commands.Action, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state.Mode {
	case ModeCommands:
		return e.commitCommand()
	case ModeModule:
		e.commitModule()
	}
	return commands.Action{}, false
}

// commitCommand executes the selected palette entry. Caller holds e.mu.
func (e *Engine) commitCommand() (commands.Action, bool) {
	if e.state.SelectedIndex >= len(e.state.Commands) {
		return commands.Action{}, false
	}
	cmd := e.state.Commands[e.state.SelectedIndex]
	e.registry.MarkUsed(cmd.ID)

	switch cmd.Action.Type {
	case commands.ActionInlineHandler:
		e.toModule(nil, true)
		e.state.Active.Kind = cmd.Action.Intent
		return commands.Action{}, false
	case commands.ActionClipboard:
		if e.clipboard != nil {
			if err := e.clipboard.Copy(cmd.Action.Payload); err != nil {
				logging.Warn("clipboard copy failed", "error", err)
			}
		}
		e.toHidden()
		return commands.Action{}, false
	default:
		// Navigation, mode switches, and links belong to the caller.
		e.toHidden()
		return cmd.Action, true
	}
}

// commitModule handles Enter on the active module. Caller holds e.mu.
func (e *Engine) commitModule() {
	active := e.state.Active
	if active == nil || active.Result == nil {
		return
	}
	r := active.Result

	if active.Kind == intent.KindTimer && r.Timer != nil && !e.timer.state.Running {
		e.timer.set(r.Timer.Seconds)
		e.startTimerLocked()
		return
	}

	if r.Partial || r.Loading || r.Err != "" {
		return
	}
	if e.clipboard != nil {
		if err := e.clipboard.Copy(r.CopyText()); err != nil {
			logging.Warn("clipboard copy failed", "error", err)
		}
	}
}

// State transitions. Callers hold e.mu.

func (e *Engine) toHidden() {
	e.state = PanelState{Mode: ModeHidden}
}

func (e *Engine) toCommands(query string) {
	e.state = PanelState{
		Mode:     ModeCommands,
		Query:    query,
		Commands: e.registry.Query(query),
	}
}

func (e *Engine) toModule(result *intent.Result, focused bool) {
	var kind intent.Kind
	if result != nil {
		kind = result.Kind
	}
	e.state = PanelState{
		Mode:   ModeModule,
		Active: &ActiveModule{Kind: kind, Focused: focused, Result: result},
	}
	if result != nil && result.Loading {
		e.resolveAsync(result.Kind, result)
	}
}

// resolveAsync runs the resolver on a goroutine. The result commits only if
// no newer request for the kind was issued meanwhile and the module is still
// live and of the same kind; stale completions are dropped silently. Caller
// holds e.mu.
func (e *Engine) resolveAsync(kind intent.Kind, result *intent.Result) {
	if e.resolver == nil {
		return
	}
	e.generations[kind]++
	gen := e.generations[kind]

	go func() {
		resolved := e.resolver.Resolve(context.Background(), result)

		e.mu.Lock()
		if e.generations[kind] != gen ||
			e.state.Mode != ModeModule ||
			e.state.Active == nil ||
			e.state.Active.Kind != kind {
			e.mu.Unlock()
			logging.Debug("dropping stale resolution", "kind", string(kind), "generation", gen)
			return
		}
		e.state.Active.Result = resolved
		e.mu.Unlock()

		e.notify()
	}()
}
