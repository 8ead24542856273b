package simulation

import (
	"iter"

	"gonum.org/v1/gonum/spatial/r2"
)

// Pair is an unordered pair of particles closer than some radius
type Pair struct {
	I, J   int    // Indices into the population, particles[I].ID < particles[J].ID
	Delta  r2.Vec // particles[I].Pos - particles[J].Pos
	DistSq float64
}

// NearPairs yields every unordered pair whose squared distance is below
// radius*radius. Each pair is yielded once: a neighbour is only considered
// when its identity is greater than the particle being scanned.
func NearPairs(particles []Particle, grid *Grid, radius float64) iter.Seq[Pair] {
	radiusSq := radius * radius
	return func(yield func(Pair) bool) {
		for i := range particles {
			p1 := &particles[i]
			for j := range grid.Neighbors(p1.Pos) {
				if j >= len(particles) {
					continue
				}
				p2 := &particles[j]
				if p2.ID <= p1.ID {
					continue
				}
				delta := r2.Sub(p1.Pos, p2.Pos)
				distSq := r2.Norm2(delta)
				if distSq >= radiusSq {
					continue
				}
				if !yield(Pair{I: i, J: j, Delta: delta, DistSq: distSq}) {
					return
				}
			}
		}
	}
}
