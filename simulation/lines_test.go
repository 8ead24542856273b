package simulation

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func segmentsOf(particles []Particle, cursor Cursor, maxDist, exponent float64) []Segment {
	g := NewGrid(maxDist)
	g.Rebuild(particles, 400, 300, maxDist)
	var out []Segment
	for seg := range BuildSegments(particles, g, cursor, 90, maxDist, exponent) {
		out = append(out, seg)
	}
	return out
}

func TestTwoParticleSegment(t *testing.T) {
	particles := particlesAt(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 50, Y: 0})
	segs := segmentsOf(particles, ParkedCursor(90), 100, 1.5)

	if len(segs) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segs))
	}
	want := 1 - math.Pow(0.5, 1.5)
	if math.Abs(segs[0].Opacity-want) > eps {
		t.Errorf("Expected opacity %g, got %g", want, segs[0].Opacity)
	}
	if math.Abs(segs[0].Opacity-0.646) > 0.001 {
		t.Errorf("Expected opacity close to 0.646, got %g", segs[0].Opacity)
	}
	if segs[0].Cursor {
		t.Error("Particle pair segment marked as cursor segment")
	}
}

func TestLineOpacityFalloff(t *testing.T) {
	const maxDist = 150.0
	prev := LineOpacity(0, maxDist, 1.5)
	if prev != 1 {
		t.Errorf("Expected opacity 1 at distance 0, got %g", prev)
	}
	for d := 1.0; d <= maxDist; d++ {
		o := LineOpacity(d, maxDist, 1.5)
		if o > prev {
			t.Fatalf("Opacity rose from %g to %g at distance %g", prev, o, d)
		}
		prev = o
	}
	if o := LineOpacity(maxDist, maxDist, 1.5); o != 0 {
		t.Errorf("Expected opacity 0 at max distance, got %g", o)
	}
	if o := LineOpacity(2*maxDist, maxDist, 1.5); o != 0 {
		t.Errorf("Expected opacity clamped to 0 beyond max distance, got %g", o)
	}
}

func TestSegmentsAboveVisibilityThreshold(t *testing.T) {
	// Opacity 0.05 at d = 100 * 0.95^(1/1.5)
	edge := 100 * math.Pow(0.95, 1/1.5)
	particles := particlesAt(
		r2.Vec{X: 10, Y: 10},
		r2.Vec{X: 10 + edge + 0.5, Y: 10},
		r2.Vec{X: 10, Y: 10 + edge - 5},
		r2.Vec{X: 10, Y: 10 + 99.9},
	)
	segs := segmentsOf(particles, ParkedCursor(90), 100, 1.5)

	for _, s := range segs {
		if s.Opacity <= VisibilityThreshold {
			t.Errorf("Emitted segment with opacity %g", s.Opacity)
		}
	}
	// Pairs 0-2 and 2-3 clear the threshold, 0-1 and 0-3 fall just under it
	if len(segs) != 2 {
		t.Errorf("Expected 2 visible segments, got %d: %+v", len(segs), segs)
	}
}

func TestParkedCursorEmitsNoCursorSegments(t *testing.T) {
	particles := particlesAt(
		r2.Vec{X: 0, Y: 0},
		r2.Vec{X: 5, Y: 5},
		r2.Vec{X: 390, Y: 290},
	)
	for _, s := range segmentsOf(particles, Cursor{Pos: r2.Vec{X: -450, Y: -450}}, 150, 1.5) {
		if s.Cursor {
			t.Errorf("Unexpected cursor segment %+v", s)
		}
	}
}

func TestCursorSegments(t *testing.T) {
	particles := particlesAt(
		r2.Vec{X: 100, Y: 100},
		r2.Vec{X: 300, Y: 250},
	)
	cursor := Cursor{Pos: r2.Vec{X: 130, Y: 140}}
	segs := segmentsOf(particles, cursor, 150, 1.5)

	var cursorSegs []Segment
	for _, s := range segs {
		if s.Cursor {
			cursorSegs = append(cursorSegs, s)
		}
	}
	if len(cursorSegs) != 1 {
		t.Fatalf("Expected 1 cursor segment, got %d", len(cursorSegs))
	}
	s := cursorSegs[0]
	if s.To != cursor.Pos || s.From != particles[0].Pos {
		t.Errorf("Cursor segment endpoints wrong: %+v", s)
	}
	want := LineOpacity(50, 150, 1.5)
	if math.Abs(s.Opacity-want) > eps {
		t.Errorf("Expected cursor opacity %g, got %g", want, s.Opacity)
	}
}

func TestBuildSegmentsIsLazy(t *testing.T) {
	particles := particlesAt(
		r2.Vec{X: 10, Y: 10},
		r2.Vec{X: 20, Y: 10},
		r2.Vec{X: 30, Y: 10},
	)
	g := NewGrid(150)
	g.Rebuild(particles, 400, 300, 150)

	n := 0
	for range BuildSegments(particles, g, ParkedCursor(90), 90, 150, 1.5) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("Expected to stop after 2 segments, got %d", n)
	}
}
