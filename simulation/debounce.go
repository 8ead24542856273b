package simulation

import "time"

// Debouncer coalesces a burst of resize notifications into one, delivered
// after delay has passed without a new notification. It is polled from the
// frame loop and holds no goroutines or timers.
type Debouncer struct {
	delay    time.Duration
	now      func() time.Time
	pending  bool
	deadline time.Time
	width    float64
	height   float64
}

// NewDebouncer creates a debouncer. A nil clock uses time.Now.
func NewDebouncer(delay time.Duration, clock func() time.Time) *Debouncer {
	if clock == nil {
		clock = time.Now
	}
	return &Debouncer{delay: delay, now: clock}
}

// Trigger records the latest size and restarts the quiet period
func (d *Debouncer) Trigger(width, height float64) {
	d.width, d.height = width, height
	d.deadline = d.now().Add(d.delay)
	d.pending = true
}

// Pending reports whether a resize is waiting for its quiet period
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Poll returns the last triggered size once the quiet period has elapsed.
// Each burst is reported exactly once.
func (d *Debouncer) Poll() (width, height float64, ok bool) {
	if !d.pending || d.now().Before(d.deadline) {
		return 0, 0, false
	}
	d.pending = false
	return d.width, d.height, true
}
