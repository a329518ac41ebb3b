// Package debounce delays a function until calls stop arriving for a quiet period.
package debounce

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Option configures a Debouncer.
type Option func(*options)

type options struct {
	clock clock.Clock
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// Debouncer invokes fn with the argument of the latest Call once wait has
// elapsed without another Call.
//
// It is idle until Call, pending until the timer fires or Cancel runs.
// A Call while pending replaces the timer and the argument.
type Debouncer[T any] struct {
	fn    func(T)
	wait  time.Duration
	clock clock.Clock

	mu    sync.Mutex
	timer *clock.Timer
	gen   uint64
}

// New creates a Debouncer. A negative wait is treated as zero.
func New[T any](fn func(T), wait time.Duration, opts ...Option) *Debouncer[T] {
	o := options{clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}
	if wait < 0 {
		wait = 0
	}
	return &Debouncer[T]{fn: fn, wait: wait, clock: o.clock}
}

// Call schedules fn(arg) after the quiet period, dropping any pending invocation.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.wait, func() { d.fire(gen, arg) })
}

// Cancel drops the pending invocation. It reports whether one was pending.
func (d *Debouncer[T]) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	return true
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// fire runs on the timer goroutine. A timer that lost the race with a newer
// Call or a Cancel carries an old generation and is ignored.
func (d *Debouncer[T]) fire(gen uint64, arg T) {
	d.mu.Lock()
	if gen != d.gen || d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn(arg)
}

// Func returns the debounced form of fn.
func Func[T any](fn func(T), wait time.Duration, opts ...Option) func(T) {
	return New(fn, wait, opts...).Call
}
