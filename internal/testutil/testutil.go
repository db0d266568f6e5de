// Package testutil holds fakes for the injected ambient capabilities: the
// timer scheduler and the clock.
package testutil

import (
	"sync"
	"time"
)

// FakeScheduler implements engine.Scheduler with a manual trigger. Tests
// call Tick to simulate one interval elapsing.
type FakeScheduler struct {
	mu        sync.Mutex
	fn        func()
	Scheduled int
	Cancelled int
}

// Schedule records the callback and returns a cancel func.
func (s *FakeScheduler) Schedule(_ time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = fn
	s.Scheduled++
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.fn = nil
		s.Cancelled++
	}
}

// Tick fires the scheduled callback once, if any is active.
func (s *FakeScheduler) Tick() {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Active reports whether a callback is currently scheduled.
func (s *FakeScheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn != nil
}

// FakeClock is a settable time source.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock starts a clock at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// Now returns the current fake time. Pass as intent.Deps.Now or
// cache.WithClock.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
