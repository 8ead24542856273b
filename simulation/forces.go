package simulation

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Cursor is the pointer position in banner coordinates
type Cursor struct {
	Pos r2.Vec
}

// ParkedCursor returns the far-offscreen cursor used while the pointer is
// outside the banner
func ParkedCursor(radius float64) Cursor {
	return Cursor{Pos: r2.Vec{X: -radius * CursorParkFactor, Y: -radius * CursorParkFactor}}
}

// Active reports whether the cursor is close enough to the banner to matter
func (c Cursor) Active(radius float64) bool {
	return c.Pos.X > -radius && c.Pos.Y > -radius
}

// falloff is the clamped linear ramp from strength at 0 to 0 at radius
func falloff(dist, radius, strength float64) float64 {
	return math.Max(0, 1-dist/radius) * strength
}

// ApplyForces adds cursor repulsion and particle-particle repulsion to the
// velocities. Positions are only read.
func ApplyForces(particles []Particle, grid *Grid, cursor Cursor, cfg Config) {
	applyCursorForce(particles, cursor, cfg.InteractionRadius, cfg.MouseRepulsion)
	applySeparation(particles, grid, cfg.MinSeparation, cfg.ParticleRepulsion)
}

func applyCursorForce(particles []Particle, cursor Cursor, radius, strength float64) {
	if strength == 0 || !cursor.Active(radius) {
		return
	}
	radiusSq := radius * radius
	for i := range particles {
		p := &particles[i]
		d := r2.Sub(p.Pos, cursor.Pos)
		distSq := r2.Norm2(d)
		if distSq >= radiusSq || distSq <= CursorEpsilon*CursorEpsilon {
			continue
		}
		dist := math.Sqrt(distSq)
		mag := falloff(dist, radius, strength)
		p.Vel = r2.Add(p.Vel, r2.Scale(mag/dist, d))
	}
}

func applySeparation(particles []Particle, grid *Grid, minSep, strength float64) {
	if strength == 0 || minSep == 0 {
		return
	}
	for pair := range NearPairs(particles, grid, minSep) {
		if pair.DistSq <= PairEpsilonSq {
			continue
		}
		dist := math.Sqrt(pair.DistSq)
		f := r2.Scale(falloff(dist, minSep, strength)/dist, pair.Delta)

		// Equal and opposite
		particles[pair.I].Vel = r2.Add(particles[pair.I].Vel, f)
		particles[pair.J].Vel = r2.Sub(particles[pair.J].Vel, f)
	}
}
