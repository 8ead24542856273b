package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// Frame constants shared by every configuration
const (
	VisibilityThreshold = 0.05 // Segments at or below this opacity are not emitted
	MaxSpeedFactor      = 5.0  // Max speed = BaseSpeed * MaxSpeedFactor
	CursorEpsilon       = 3.0  // Below this cursor distance no repulsion is applied
	PairEpsilonSq       = 0.01 // Squared pair distance below which repulsion is skipped
	CursorParkFactor    = 5.0  // Inactive cursor sits at -InteractionRadius*CursorParkFactor
)

// Jitter modes
const (
	JitterUniform = "uniform"
	JitterPerlin  = "perlin"
)

// Config holds the tunables of one run. It is read once at startup.
type Config struct {
	NumParticles      int     `json:"num_particles"`
	MinSize           float64 `json:"min_size"`           // Drawn diameter lower bound
	MaxSize           float64 `json:"max_size"`           // Drawn diameter upper bound
	AccentProbability float64 `json:"accent_probability"` // Chance (0 to 1) a particle is accent coloured
	JitterX           float64 `json:"jitter_x"`           // Per-frame random drift magnitude, x axis
	JitterY           float64 `json:"jitter_y"`           // Per-frame random drift magnitude, y axis

	InteractionRadius float64 `json:"interaction_radius"` // Cursor repulsion reach
	BaseSpeed         float64 `json:"base_speed"`         // Initial velocity spread
	Damping           float64 `json:"damping"`            // Friction factor (closer to 1 = less friction)
	MouseRepulsion    float64 `json:"mouse_repulsion"`
	ParticleRepulsion float64 `json:"particle_repulsion"` // Zero disables pairwise repulsion
	MinSeparation     float64 `json:"min_separation"`
	MaxLineDistance   float64 `json:"max_line_distance"`
	LineFalloff       float64 `json:"line_falloff"` // Higher = lines fade faster with distance
	CellSize          float64 `json:"cell_size"`    // Zero means MaxLineDistance
	BufferScale       float64 `json:"buffer_scale"` // Wrap buffer = particle size * BufferScale
	JitterMode        string  `json:"jitter_mode"`
	PerlinAlpha       float64 `json:"perlin_alpha"`
	PerlinBeta        float64 `json:"perlin_beta"`
	PerlinOctaves     int32   `json:"perlin_octaves"`
	PerlinScale       float64 `json:"perlin_scale"`     // Spatial frequency of the noise field
	PerlinTimeStep    float64 `json:"perlin_time_step"` // Noise drift per frame
	ResizeDebounceMs  int     `json:"resize_debounce_ms"`
	MobileMaxWidth    float64 `json:"mobile_max_width"` // Banners this narrow are not animated
	Seed              int64   `json:"seed"`             // Zero seeds from the clock
}

// DefaultConfig returns the banner's stock tuning
func DefaultConfig() Config {
	return Config{
		NumParticles:      120,
		MinSize:           1,
		MaxSize:           5,
		AccentProbability: 0.4,
		JitterX:           0.020,
		JitterY:           0.015,
		InteractionRadius: 120,
		BaseSpeed:         0.15,
		Damping:           0.995,
		MouseRepulsion:    0.3,
		ParticleRepulsion: 0,
		MinSeparation:     0,
		MaxLineDistance:   150,
		LineFalloff:       1.5,
		BufferScale:       2,
		JitterMode:        JitterUniform,
		PerlinAlpha:       2,
		PerlinBeta:        2,
		PerlinOctaves:     3,
		PerlinScale:       0.01,
		PerlinTimeStep:    0.02,
		ResizeDebounceMs:  250,
		MobileMaxWidth:    600,
	}
}

// GridCellSize returns the effective cell size of the spatial grid
func (c Config) GridCellSize() float64 {
	if c.CellSize > 0 {
		return c.CellSize
	}
	return c.MaxLineDistance
}

// MaxSpeed returns the velocity clamp
func (c Config) MaxSpeed() float64 {
	return c.BaseSpeed * MaxSpeedFactor
}

// ResizeDebounce returns the quiet period before a resize is applied
func (c Config) ResizeDebounce() time.Duration {
	return time.Duration(c.ResizeDebounceMs) * time.Millisecond
}

// Validate reports the first inconsistent setting
func (c Config) Validate() error {
	switch {
	case c.NumParticles < 0:
		return fmt.Errorf("num_particles must not be negative, got %d", c.NumParticles)
	case c.MinSize <= 0 || c.MaxSize < c.MinSize:
		return fmt.Errorf("size range [%g, %g] is invalid", c.MinSize, c.MaxSize)
	case c.AccentProbability < 0 || c.AccentProbability > 1:
		return fmt.Errorf("accent_probability %g outside [0, 1]", c.AccentProbability)
	case c.JitterX < 0 || c.JitterY < 0:
		return errors.New("jitter magnitudes must not be negative")
	case c.InteractionRadius <= 0:
		return fmt.Errorf("interaction_radius must be positive, got %g", c.InteractionRadius)
	case c.BaseSpeed < 0:
		return fmt.Errorf("base_speed must not be negative, got %g", c.BaseSpeed)
	case c.Damping <= 0 || c.Damping > 1:
		return fmt.Errorf("damping %g outside (0, 1]", c.Damping)
	case c.MouseRepulsion < 0 || c.ParticleRepulsion < 0:
		return errors.New("repulsion strengths must not be negative")
	case c.MinSeparation < 0:
		return fmt.Errorf("min_separation must not be negative, got %g", c.MinSeparation)
	case c.MaxLineDistance <= 0:
		return fmt.Errorf("max_line_distance must be positive, got %g", c.MaxLineDistance)
	case c.LineFalloff <= 0:
		return fmt.Errorf("line_falloff must be positive, got %g", c.LineFalloff)
	case c.GridCellSize() < c.MaxLineDistance || c.GridCellSize() < c.MinSeparation:
		return fmt.Errorf("cell_size %g smaller than the interaction distances", c.GridCellSize())
	case c.BufferScale < 0:
		return fmt.Errorf("buffer_scale must not be negative, got %g", c.BufferScale)
	case c.JitterMode != JitterUniform && c.JitterMode != JitterPerlin:
		return fmt.Errorf("unknown jitter_mode %q", c.JitterMode)
	case c.ResizeDebounceMs < 0:
		return fmt.Errorf("resize_debounce_ms must not be negative, got %d", c.ResizeDebounceMs)
	}
	return nil
}

// LoadConfig overlays a JSON file onto the defaults. Fields absent from the
// file keep their default value.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", filename, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as indented JSON
func SaveConfig(filename string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
