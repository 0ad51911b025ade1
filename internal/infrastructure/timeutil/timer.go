package timeutil

import (
	"sync"
	"time"
)

// Timer is an explicit cancellable one-shot timer: arm it, and the callback
// fires once the delay elapses unless a later Arm supersedes it or the timer
// is cancelled. Arming while a fire is pending cancels the pending fire, so
// only the last armed callback can run (last-write-wins). Stop disposes the
// timer permanently: a stopped timer never fires, even if a fire was already
// pending when Stop was called.
type Timer struct {
	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// NewTimer creates an unarmed timer.
func NewTimer() *Timer {
	return &Timer{}
}

// Arm schedules fn to run after d. Any previously armed callback is cancelled.
func (t *Timer) Arm(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return
	}

	if t.timer != nil {
		t.timer.Stop()
	}

	t.gen++
	gen := t.gen
	t.timer = time.AfterFunc(d, func() {
		t.fire(gen, fn)
	})
}

// fire runs fn only if this generation is still the armed one. time.AfterFunc
// can race a concurrent Arm or Stop; the generation check makes the stale
// callback a no-op.
func (t *Timer) fire(gen uint64, fn func()) {
	t.mu.Lock()
	if t.stopped || gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.timer = nil
	t.mu.Unlock()

	fn()
}

// Cancel clears any pending callback without disposing the timer.
func (t *Timer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
}

// Stop cancels any pending callback and disposes the timer. A stopped timer
// ignores further Arm calls.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.stopped = true
}
