package simulation

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Bounds is the banner size in pixels
type Bounds struct {
	Width, Height float64
}

// IntegrationParams are the per-frame motion settings derived from Config
type IntegrationParams struct {
	Damping     float64
	Jitter      r2.Vec // Per-axis jitter magnitude
	MaxSpeed    float64
	BufferScale float64
}

// IntegrationParamsFrom extracts the integrator settings from cfg
func IntegrationParamsFrom(cfg Config) IntegrationParams {
	return IntegrationParams{
		Damping:     cfg.Damping,
		Jitter:      r2.Vec{X: cfg.JitterX, Y: cfg.JitterY},
		MaxSpeed:    cfg.MaxSpeed(),
		BufferScale: cfg.BufferScale,
	}
}

// Step advances one particle by one frame: damping, jitter, speed clamp,
// explicit Euler position update, then wrap-around past the buffer.
func Step(p *Particle, params IntegrationParams, jitter JitterSource, bounds Bounds) {
	p.Vel = r2.Scale(params.Damping, p.Vel)
	p.Vel = r2.Add(p.Vel, jitter.Jitter(p, params.Jitter))

	if speed := r2.Norm(p.Vel); speed > params.MaxSpeed {
		p.Vel = r2.Scale(params.MaxSpeed/speed, p.Vel)
	}

	p.Pos = r2.Add(p.Pos, p.Vel)

	buffer := p.Buffer(params.BufferScale)
	p.Pos.X = wrap(p.Pos.X, bounds.Width, buffer)
	p.Pos.Y = wrap(p.Pos.Y, bounds.Height, buffer)
}

// wrap moves v to the opposite side once it leaves [-buffer, dim+buffer]
func wrap(v, dim, buffer float64) float64 {
	switch {
	case v < -buffer:
		return dim + buffer
	case v > dim+buffer:
		return -buffer
	case math.IsNaN(v):
		return dim / 2
	}
	return v
}
