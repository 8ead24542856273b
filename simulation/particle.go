package simulation

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Particle is one drifting point of the banner
type Particle struct {
	ID     int    // Unique within its population, equals its index
	Pos    r2.Vec // Banner-local position
	Vel    r2.Vec // Displacement per frame
	Size   float64
	Accent bool // Drawn in the accent colour
}

// Buffer returns how far past an edge the particle travels before wrapping
func (p *Particle) Buffer(scale float64) float64 {
	return p.Size * scale
}

// NewPopulation creates a batch of cfg.NumParticles particles scattered over
// a width x height banner. Identities run from 0 for every batch.
func NewPopulation(cfg Config, width, height float64, rng *rand.Rand) []Particle {
	particles := make([]Particle, cfg.NumParticles)
	nextID := 0
	for i := range particles {
		particles[i] = Particle{
			ID: nextID,
			Pos: r2.Vec{
				X: rng.Float64() * width,
				Y: rng.Float64() * height,
			},
			Vel: r2.Vec{
				X: (rng.Float64() - 0.5) * cfg.BaseSpeed,
				Y: (rng.Float64() - 0.5) * cfg.BaseSpeed,
			},
			Size:   rng.Float64()*(cfg.MaxSize-cfg.MinSize) + cfg.MinSize,
			Accent: rng.Float64() < cfg.AccentProbability,
		}
		nextID++
	}
	return particles
}

// CountAccents returns the number of accent particles
func CountAccents(particles []Particle) int {
	n := 0
	for i := range particles {
		if particles[i].Accent {
			n++
		}
	}
	return n
}
