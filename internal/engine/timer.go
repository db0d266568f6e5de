package engine

import (
	"time"

	"contour/internal/intent"
	"contour/internal/logging"
	"contour/internal/providers"
)

// Scheduler abstracts the one-second tick so the timer sub-machine is
// testable without wall-clock waits.
type Scheduler interface {
	// Schedule invokes fn every interval until the returned cancel func is
	// called.
	Schedule(interval time.Duration, fn func()) (cancel func())
}

// TickScheduler is the production Scheduler, backed by time.Ticker.
type TickScheduler struct{}

// Schedule implements Scheduler.
func (TickScheduler) Schedule(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}

// TimerState is the countdown's externally visible state.
type TimerState struct {
	TotalSeconds     int
	RemainingSeconds int
	Running          bool
	Complete         bool
}

// Display renders the remaining time as a clock string.
func (t TimerState) Display() string {
	return intent.FormatTimerClock(t.RemainingSeconds)
}

// Progress returns completion in [0, 1].
func (t TimerState) Progress() float64 {
	if t.TotalSeconds == 0 {
		return 0
	}
	return float64(t.TotalSeconds-t.RemainingSeconds) / float64(t.TotalSeconds)
}

// timerMachine owns the tick handle. Starting a new tick always clears the
// prior handle first so two tickers can never run at once.
type timerMachine struct {
	state    TimerState
	cancel   func()
	notifier providers.NotificationSink
}

func (t *timerMachine) set(seconds int) {
	t.state = TimerState{TotalSeconds: seconds, RemainingSeconds: seconds}
}

// SetTimerDuration loads a new duration without starting the countdown.
func (e *Engine) SetTimerDuration(seconds int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if seconds < 0 {
		seconds = 0
	}
	e.stopTickLocked()
	e.timer.set(seconds)
}

// StartTimer starts (or restarts) the countdown.
func (e *Engine) StartTimer() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startTimerLocked()
}

func (e *Engine) startTimerLocked() {
	if e.timer.state.RemainingSeconds <= 0 {
		return
	}
	e.stopTickLocked()
	e.timer.state.Running = true
	e.timer.state.Complete = false
	e.timer.cancel = e.scheduler.Schedule(time.Second, e.tick)
}

// ToggleTimer pauses a running countdown or resumes a paused one.
func (e *Engine) ToggleTimer() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.timer.state.Running {
		e.stopTickLocked()
		return
	}
	e.startTimerLocked()
}

// ResetTimer stops the countdown and restores the full duration.
func (e *Engine) ResetTimer() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopTickLocked()
	e.timer.set(e.timer.state.TotalSeconds)
}

// tick is the per-second callback. On reaching zero it stops the interval,
// marks completion, and fires a best-effort notification.
func (e *Engine) tick() {
	e.mu.Lock()
	if !e.timer.state.Running {
		e.mu.Unlock()
		return
	}

	e.timer.state.RemainingSeconds--
	if e.timer.state.RemainingSeconds <= 0 {
		e.timer.state.RemainingSeconds = 0
		e.stopTickLocked()
		e.timer.state.Complete = true
		notifier := e.timer.notifier
		e.mu.Unlock()

		if notifier != nil {
			if err := notifier.Notify("Timer complete", "Your countdown has finished"); err != nil {
				logging.Warn("timer notification failed", "error", err)
			}
		}
		e.notify()
		return
	}
	e.mu.Unlock()

	e.notify()
}

// stopTickLocked clears the interval handle. Caller holds e.mu.
func (e *Engine) stopTickLocked() {
	if e.timer.cancel != nil {
		e.timer.cancel()
		e.timer.cancel = nil
	}
	e.timer.state.Running = false
}
