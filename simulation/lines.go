package simulation

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Segment is one connective line to draw this frame
type Segment struct {
	From, To r2.Vec
	Opacity  float64
	Cursor   bool // To is the cursor rather than a particle
}

// LineOpacity fades from 1 at distance 0 to 0 at maxDistance
func LineOpacity(dist, maxDistance, exponent float64) float64 {
	return math.Max(0, 1-math.Pow(dist/maxDistance, exponent))
}

// BuildSegments yields the particle-particle lines of every near pair, then
// one line per particle to the cursor when the cursor is active. Segments at
// or below VisibilityThreshold are skipped. The sequence is computed lazily
// from the current positions.
func BuildSegments(particles []Particle, grid *Grid, cursor Cursor, cursorRadius, maxDistance, exponent float64) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for pair := range NearPairs(particles, grid, maxDistance) {
			opacity := LineOpacity(math.Sqrt(pair.DistSq), maxDistance, exponent)
			if opacity <= VisibilityThreshold {
				continue
			}
			seg := Segment{From: particles[pair.I].Pos, To: particles[pair.J].Pos, Opacity: opacity}
			if !yield(seg) {
				return
			}
		}

		if !cursor.Active(cursorRadius) {
			return
		}
		maxDistSq := maxDistance * maxDistance
		for i := range particles {
			distSq := r2.Norm2(r2.Sub(particles[i].Pos, cursor.Pos))
			if distSq >= maxDistSq {
				continue
			}
			opacity := LineOpacity(math.Sqrt(distSq), maxDistance, exponent)
			if opacity <= VisibilityThreshold {
				continue
			}
			if !yield(Segment{From: particles[i].Pos, To: cursor.Pos, Opacity: opacity, Cursor: true}) {
				return
			}
		}
	}
}
