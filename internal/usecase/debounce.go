package usecase

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of triggers into one invocation of fn after a
// quiet period. Trailing edge: only the last trigger inside the window
// fires. At most one timer is armed at a time; rescheduling replaces the
// pending one.
type Debouncer struct {
	window time.Duration
	fn     func()

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{window: window, fn: fn}
}

// Trigger (re)arms the timer. A pending invocation that has not fired yet is
// superseded.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fn)
}

// Fire invokes fn immediately and cancels any pending invocation. Used for
// edits that must not wait out the quiet period, like template switches.
func (d *Debouncer) Fire() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.fn()
}

// Close cancels any pending invocation and refuses further triggers.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
