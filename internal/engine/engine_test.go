package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contour/internal/cache"
	"contour/internal/commands"
	"contour/internal/intent"
	"contour/internal/kvstore"
	"contour/internal/providers"
	"contour/internal/testutil"
)

type fixture struct {
	engine    *Engine
	scheduler *testutil.FakeScheduler
	clipboard *providers.MockClipboard
	notifier  *providers.MockNotifier
	notified  chan struct{}
}

func newFixture(t *testing.T, set providers.Set) *fixture {
	t.Helper()
	f := &fixture{
		scheduler: &testutil.FakeScheduler{},
		clipboard: &providers.MockClipboard{},
		notifier:  &providers.MockNotifier{},
		notified:  make(chan struct{}, 16),
	}
	f.engine = New(Config{
		Resolver: &intent.Resolver{
			Providers: set,
			Cache:     cache.New(kvstore.NewMemStore()),
		},
		Registry:  commands.NewRegistry(kvstore.NewMemStore()),
		Clipboard: f.clipboard,
		Notifier:  f.notifier,
		Scheduler: f.scheduler,
		Notify:    func() { f.notified <- struct{}{} },
	})
	return f
}

func (f *fixture) waitNotify(t *testing.T) {
	t.Helper()
	select {
	case <-f.notified:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notify")
	}
}

func TestAnalyzeHiddenOnEmptyAndNoMatch(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.Analyze("hello there general")
	assert.Equal(t, ModeHidden, f.engine.State().Mode)

	f.engine.Analyze("2+2")
	assert.Equal(t, ModeModule, f.engine.State().Mode)

	f.engine.Analyze("")
	assert.Equal(t, ModeHidden, f.engine.State().Mode)
}

func TestAnalyzeDetectsModule(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.Analyze("5+3*2")
	state := f.engine.State()
	require.Equal(t, ModeModule, state.Mode)
	require.NotNil(t, state.Active)
	assert.Equal(t, intent.KindCalculator, state.Active.Kind)
	assert.False(t, state.Active.Focused)
	require.NotNil(t, state.Active.Result)
	assert.Equal(t, "5+3*2 = 11", state.Active.Result.Display)
}

func TestAnalyzeSlashOpensPalette(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.Analyze("/")
	state := f.engine.State()
	assert.Equal(t, ModeCommands, state.Mode)
	assert.Empty(t, state.Query)
	assert.NotEmpty(t, state.Commands)
	assert.Zero(t, state.SelectedIndex)
	assert.Nil(t, state.Active)
}

func TestSelectionWrapsCircularly(t *testing.T) {
	f := newFixture(t, providers.Offline())
	f.engine.Analyze("/")

	n := len(f.engine.State().Commands)
	require.Greater(t, n, 1)

	f.engine.SelectUp()
	assert.Equal(t, n-1, f.engine.State().SelectedIndex)

	f.engine.SelectDown()
	assert.Zero(t, f.engine.State().SelectedIndex)
}

func TestSlashCalcEnterFocusesCalculator(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.Analyze("/calc")
	state := f.engine.State()
	require.Equal(t, ModeCommands, state.Mode)
	require.NotEmpty(t, state.Commands)
	assert.Equal(t, "calculator", state.Commands[0].ID)

	_, external := f.engine.Enter()
	assert.False(t, external)

	state = f.engine.State()
	require.Equal(t, ModeModule, state.Mode)
	require.NotNil(t, state.Active)
	assert.Equal(t, intent.KindCalculator, state.Active.Kind)
	assert.True(t, state.Active.Focused)
	assert.Nil(t, state.Active.Result)
}

func TestFocusedModeRoutesOnlyToActiveDetector(t *testing.T) {
	f := newFixture(t, providers.Offline())
	f.engine.FocusModule(intent.KindCalculator)

	// A color literal would match the pipeline, but the focused module only
	// runs the calculator detector.
	f.engine.Analyze("#ff6b35")
	state := f.engine.State()
	require.Equal(t, ModeModule, state.Mode)
	assert.Equal(t, intent.KindCalculator, state.Active.Kind)
	assert.Nil(t, state.Active.Result)

	f.engine.Analyze("6*7")
	state = f.engine.State()
	require.NotNil(t, state.Active.Result)
	assert.Equal(t, "6*7 = 42", state.Active.Result.Display)

	// Empty input while focused clears the result but keeps the module.
	f.engine.Analyze("")
	state = f.engine.State()
	assert.Equal(t, ModeModule, state.Mode)
	assert.Nil(t, state.Active.Result)
}

func TestEnterCopiesResolvedResult(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.Analyze("md5 hello")
	_, external := f.engine.Enter()
	assert.False(t, external)
	require.Len(t, f.clipboard.Copied, 1)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", f.clipboard.Copied[0])
}

func TestEnterIgnoresPartialAndError(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.Analyze("5+3*")
	f.engine.Enter()
	assert.Empty(t, f.clipboard.Copied)
}

func TestCommandActionsReturnToCaller(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.Analyze("/report issue")
	state := f.engine.State()
	require.NotEmpty(t, state.Commands)
	require.Equal(t, "report-issue", state.Commands[0].ID)

	action, external := f.engine.Enter()
	require.True(t, external)
	assert.Equal(t, commands.ActionExternalLink, action.Type)
	assert.NotEmpty(t, action.URL)
	assert.Equal(t, ModeHidden, f.engine.State().Mode)
}

func TestRaceLastRequestWins(t *testing.T) {
	blockUSD := make(chan struct{})
	set := providers.Set{
		Rates: &providers.MockExchangeRates{
			FetchRatesFunc: func(_ context.Context, base string) (*providers.Rates, error) {
				if base == "USD" {
					<-blockUSD
					return &providers.Rates{Base: "USD", Rates: map[string]float64{"EUR": 0.5}}, nil
				}
				return &providers.Rates{Base: "GBP", Rates: map[string]float64{"EUR": 2}}, nil
			},
		},
	}
	f := newFixture(t, set)

	// Request A is slow; request B supersedes it.
	f.engine.Analyze("100 usd to eur")
	f.engine.Analyze("100 gbp to eur")
	f.waitNotify(t)

	state := f.engine.State()
	require.NotNil(t, state.Active.Result)
	assert.Equal(t, "100 GBP = 200 EUR", state.Active.Result.Display)

	// A completes late and must be discarded.
	close(blockUSD)
	assert.Never(t, func() bool {
		s := f.engine.State()
		return s.Active == nil || s.Active.Result == nil ||
			s.Active.Result.Display != "100 GBP = 200 EUR"
	}, 200*time.Millisecond, 20*time.Millisecond)
}

func TestResolutionErrorSurfacesInline(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.Analyze("define serendipity")
	f.waitNotify(t)

	state := f.engine.State()
	require.NotNil(t, state.Active.Result)
	assert.False(t, state.Active.Result.Loading)
	assert.NotEmpty(t, state.Active.Result.Err)
}

func TestTimerLifecycle(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.Analyze("timer 3 sec")
	state := f.engine.State()
	require.Equal(t, ModeModule, state.Mode)
	require.NotNil(t, state.Active.Result.Timer)

	// Enter starts the countdown.
	f.engine.Enter()
	state = f.engine.State()
	assert.True(t, state.Timer.Running)
	assert.Equal(t, 3, state.Timer.RemainingSeconds)

	f.scheduler.Tick()
	assert.Equal(t, 2, f.engine.State().Timer.RemainingSeconds)

	f.scheduler.Tick()
	f.scheduler.Tick()
	state = f.engine.State()
	assert.Zero(t, state.Timer.RemainingSeconds)
	assert.True(t, state.Timer.Complete)
	assert.False(t, state.Timer.Running)
	assert.False(t, f.scheduler.Active())
	require.Len(t, f.notifier.Notifications, 1)
	assert.Contains(t, f.notifier.Notifications[0], "Timer complete")
}

func TestTimerToggleAndReset(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.SetTimerDuration(10)
	f.engine.StartTimer()
	f.scheduler.Tick()
	assert.Equal(t, 9, f.engine.State().Timer.RemainingSeconds)

	f.engine.ToggleTimer()
	assert.False(t, f.engine.State().Timer.Running)
	f.scheduler.Tick() // paused; must not decrement
	assert.Equal(t, 9, f.engine.State().Timer.RemainingSeconds)

	f.engine.ToggleTimer()
	f.scheduler.Tick()
	assert.Equal(t, 8, f.engine.State().Timer.RemainingSeconds)

	f.engine.ResetTimer()
	state := f.engine.State()
	assert.Equal(t, 10, state.Timer.RemainingSeconds)
	assert.False(t, state.Timer.Running)
}

func TestTimerIgnoresKeystrokesWhileRunning(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.FocusModule(intent.KindTimer)
	f.engine.Analyze("timer 5 min")
	require.NotNil(t, f.engine.State().Active.Result)

	f.engine.Enter()
	require.True(t, f.engine.State().Timer.Running)

	f.engine.Analyze("timer 1 min")
	state := f.engine.State()
	assert.Equal(t, 300, state.Active.Result.Timer.Seconds)
	assert.True(t, state.Timer.Running)
}

func TestStartTimerClearsPriorTick(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.SetTimerDuration(5)
	f.engine.StartTimer()
	f.engine.StartTimer()
	assert.Equal(t, 1, f.scheduler.Cancelled)

	f.scheduler.Tick()
	assert.Equal(t, 4, f.engine.State().Timer.RemainingSeconds)
}

func TestClearingInputKeepsTimerTicking(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.Analyze("timer 3 sec")
	f.engine.Enter()
	require.True(t, f.engine.State().Timer.Running)

	// Deleting the text hides the panel but the countdown runs on.
	f.engine.Analyze("")
	state := f.engine.State()
	assert.Equal(t, ModeHidden, state.Mode)
	assert.True(t, state.Timer.Running)
	assert.True(t, f.scheduler.Active())

	f.scheduler.Tick()
	assert.Equal(t, 2, f.engine.State().Timer.RemainingSeconds)

	// Typing something else switches modules without killing the tick.
	f.engine.Analyze("2+2")
	assert.True(t, f.engine.State().Timer.Running)

	f.scheduler.Tick()
	f.scheduler.Tick()
	state = f.engine.State()
	assert.True(t, state.Timer.Complete)
	require.Len(t, f.notifier.Notifications, 1)
}

func TestDismissStopsTimerAndHides(t *testing.T) {
	f := newFixture(t, providers.Offline())

	f.engine.Analyze("timer 3 sec")
	f.engine.Enter()
	require.True(t, f.engine.State().Timer.Running)

	f.engine.Dismiss()
	state := f.engine.State()
	assert.Equal(t, ModeHidden, state.Mode)
	assert.False(t, state.Timer.Running)
	assert.False(t, f.scheduler.Active())
}
