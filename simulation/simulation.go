// Package simulation is the particle field behind the banner: a spatial grid,
// cursor and pairwise repulsion, a damped Euler integrator with wrap-around,
// and the fading line segments drawn between close particles.
package simulation

import (
	"fmt"
	"iter"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r2"
)

// Renderer draws one frame. The simulation calls it with draw instructions
// and never hands over ownership of its state.
type Renderer interface {
	DrawSegment(seg Segment)
	DrawParticle(p *Particle)
}

// Stats summarises the current frame for overlays and logging
type Stats struct {
	Particles  int
	Accents    int
	Segments   int // Segments drawn by the last Render
	Generation int
	Frame      int
	GridCols   int
	GridRows   int
}

// Simulation owns the particle population and steps it frame by frame
type Simulation struct {
	cfg        Config
	params     IntegrationParams
	bounds     Bounds
	particles  []Particle
	grid       *Grid
	cursor     Cursor
	jitter     JitterSource
	rng        *rand.Rand
	generation int
	frame      int
	segments   int
}

// New creates a simulation over a width x height banner and seeds the first
// population.
func New(cfg Config, width, height float64) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Simulation{
		cfg:    cfg,
		params: IntegrationParamsFrom(cfg),
		grid:   NewGrid(cfg.GridCellSize()),
		cursor: ParkedCursor(cfg.InteractionRadius),
		jitter: NewJitterSource(cfg, rng),
		rng:    rng,
	}
	s.Resize(width, height)
	return s, nil
}

// Resize discards the whole population and seeds a new one sized for the
// new banner. Identities restart from zero.
func (s *Simulation) Resize(width, height float64) {
	s.bounds = Bounds{Width: width, Height: height}
	s.particles = NewPopulation(s.cfg, width, height, s.rng)
	s.grid.Rebuild(s.particles, width, height, s.cfg.GridCellSize())
	s.generation++
	s.frame = 0
	s.segments = 0
}

// SetCursor places the pointer in banner coordinates
func (s *Simulation) SetCursor(x, y float64) {
	s.cursor = Cursor{Pos: r2.Vec{X: x, Y: y}}
}

// ClearCursor parks the pointer far offscreen
func (s *Simulation) ClearCursor() {
	s.cursor = ParkedCursor(s.cfg.InteractionRadius)
}

// Cursor returns the current pointer state
func (s *Simulation) Cursor() Cursor {
	return s.cursor
}

// Step runs one frame of physics: forces, integration, then a grid rebuild
// so the lines of this frame see wrapped particles in their new cells.
func (s *Simulation) Step() {
	ApplyForces(s.particles, s.grid, s.cursor, s.cfg)
	for i := range s.particles {
		Step(&s.particles[i], s.params, s.jitter, s.bounds)
	}
	s.grid.Rebuild(s.particles, s.bounds.Width, s.bounds.Height, s.cfg.GridCellSize())
	s.jitter.Advance()
	s.frame++
}

// Segments returns this frame's connective lines
func (s *Simulation) Segments() iter.Seq[Segment] {
	return BuildSegments(s.particles, s.grid, s.cursor, s.cfg.InteractionRadius, s.cfg.MaxLineDistance, s.cfg.LineFalloff)
}

// Render draws the lines first so particles sit on top of them
func (s *Simulation) Render(r Renderer) {
	n := 0
	for seg := range s.Segments() {
		r.DrawSegment(seg)
		n++
	}
	s.segments = n
	for i := range s.particles {
		r.DrawParticle(&s.particles[i])
	}
}

// Particles exposes the population for read-only use
func (s *Simulation) Particles() []Particle {
	return s.particles
}

// Bounds returns the banner size
func (s *Simulation) Bounds() Bounds {
	return s.bounds
}

// Config returns the configuration the simulation was built with
func (s *Simulation) Config() Config {
	return s.cfg
}

// Generation counts population rebuilds, starting at 1
func (s *Simulation) Generation() int {
	return s.generation
}

// Stats returns counters describing the current frame
func (s *Simulation) Stats() Stats {
	cols, rows := s.grid.Dims()
	return Stats{
		Particles:  len(s.particles),
		Accents:    CountAccents(s.particles),
		Segments:   s.segments,
		Generation: s.generation,
		Frame:      s.frame,
		GridCols:   cols,
		GridRows:   rows,
	}
}
