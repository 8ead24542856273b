package simulation

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestDebouncerCoalescesBurst(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	d := NewDebouncer(250*time.Millisecond, clock.Now)

	if _, _, ok := d.Poll(); ok {
		t.Fatal("Expected nothing pending before any trigger")
	}

	d.Trigger(800, 200)
	clock.Advance(100 * time.Millisecond)
	d.Trigger(900, 220)
	clock.Advance(200 * time.Millisecond)

	if _, _, ok := d.Poll(); ok {
		t.Fatal("Resize fired before the quiet period after the last trigger")
	}
	if !d.Pending() {
		t.Error("Expected resize to be pending")
	}

	clock.Advance(50 * time.Millisecond)
	w, h, ok := d.Poll()
	if !ok {
		t.Fatal("Expected resize after the quiet period")
	}
	if w != 900 || h != 220 {
		t.Errorf("Expected latest size 900x220, got %gx%g", w, h)
	}

	if _, _, ok := d.Poll(); ok {
		t.Error("Resize reported twice for one burst")
	}
	if d.Pending() {
		t.Error("Expected nothing pending after delivery")
	}
}

func TestDebouncerZeroDelay(t *testing.T) {
	d := NewDebouncer(0, nil)
	d.Trigger(10, 20)
	if _, _, ok := d.Poll(); !ok {
		t.Error("Expected zero delay to deliver on the next poll")
	}
}
