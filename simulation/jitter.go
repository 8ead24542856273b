package simulation

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"gonum.org/v1/gonum/spatial/r2"
)

// JitterSource produces the small random drift added to a particle's
// velocity each frame. Each component lies in [-mag/2, mag/2].
type JitterSource interface {
	Jitter(p *Particle, mag r2.Vec) r2.Vec
	// Advance is called once per frame after every particle was stepped
	Advance()
}

// UniformJitter draws independent uniform samples from a seeded generator
type UniformJitter struct {
	rng *rand.Rand
}

// NewUniformJitter creates a uniform source backed by rng
func NewUniformJitter(rng *rand.Rand) *UniformJitter {
	return &UniformJitter{rng: rng}
}

func (u *UniformJitter) Jitter(_ *Particle, mag r2.Vec) r2.Vec {
	return r2.Vec{
		X: (u.rng.Float64() - 0.5) * mag.X,
		Y: (u.rng.Float64() - 0.5) * mag.Y,
	}
}

func (u *UniformJitter) Advance() {}

// PerlinJitter samples a drifting noise field at the particle position, so
// neighbouring particles wander together instead of independently.
type PerlinJitter struct {
	noise *perlin.Perlin
	scale float64
	step  float64
	t     float64
}

// NewPerlinJitter creates a noise-driven source from cfg's Perlin settings
func NewPerlinJitter(cfg Config, seed int64) *PerlinJitter {
	return &PerlinJitter{
		noise: perlin.NewPerlin(cfg.PerlinAlpha, cfg.PerlinBeta, cfg.PerlinOctaves, seed),
		scale: cfg.PerlinScale,
		step:  cfg.PerlinTimeStep,
	}
}

func (pj *PerlinJitter) Jitter(p *Particle, mag r2.Vec) r2.Vec {
	x := p.Pos.X*pj.scale + pj.t
	y := p.Pos.Y*pj.scale - pj.t
	// Offset the second sample so the axes decorrelate
	nx := clampUnit(pj.noise.Noise2D(x, y))
	ny := clampUnit(pj.noise.Noise2D(x+31.7, y+47.3))
	return r2.Vec{X: nx * 0.5 * mag.X, Y: ny * 0.5 * mag.Y}
}

func (pj *PerlinJitter) Advance() {
	pj.t += pj.step
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

// NewJitterSource picks the source named by cfg.JitterMode
func NewJitterSource(cfg Config, rng *rand.Rand) JitterSource {
	if cfg.JitterMode == JitterPerlin {
		return NewPerlinJitter(cfg, rng.Int63())
	}
	return NewUniformJitter(rng)
}
