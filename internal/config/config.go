package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the spatial engine. Zero values are filled
// in by ApplyDefaults so partial yaml files stay valid.
type Config struct {
	Placement   Placement   `yaml:"placement" json:"placement"`
	Interaction Interaction `yaml:"interaction" json:"interaction"`
	Culling     Culling     `yaml:"culling" json:"culling"`
	Scheduler   Scheduler   `yaml:"scheduler" json:"scheduler"`
}

// Placement tunes the one-time load-time repair pass.
type Placement struct {
	// EdgeMargin keeps dungeons this far inside their zone's bounds.
	EdgeMargin float64 `yaml:"edge_margin" json:"edge_margin"`
	// MinSeparation is the minimum distance between two dungeons in a zone.
	MinSeparation float64 `yaml:"min_separation" json:"min_separation"`
	// MaxIterations bounds the pairwise repair fixed-point loop.
	MaxIterations int `yaml:"max_iterations" json:"max_iterations"`
}

// Interaction tunes per-dungeon state derivation.
type Interaction struct {
	// Radius within which a dungeon counts as in range of the player.
	Radius float64 `yaml:"radius" json:"radius"`
	// CloseFraction and NearFraction discretize distance into proximity
	// tiers as fractions of Radius. CloseFraction must not exceed
	// NearFraction; ApplyDefaults restores the defaults if it does.
	CloseFraction float64 `yaml:"close_fraction" json:"close_fraction"`
	NearFraction  float64 `yaml:"near_fraction" json:"near_fraction"`
}

// Culling tunes distance-based visibility.
type Culling struct {
	// Radius beyond which dungeons are neither rendered nor simulated.
	// Kept larger than Interaction.Radius so effects never pop in after
	// the sprite itself appeared.
	Radius float64 `yaml:"radius" json:"radius"`
}

// Scheduler tunes the recomputation debounce.
type Scheduler struct {
	// MoveThreshold is the player displacement that forces a recompute.
	MoveThreshold float64 `yaml:"move_threshold" json:"move_threshold"`
	// MaxIntervalMS is the staleness cap in milliseconds.
	MaxIntervalMS int `yaml:"max_interval_ms" json:"max_interval_ms"`
}

func (p *Placement) ApplyDefaults() {
	if p.EdgeMargin == 0 {
		p.EdgeMargin = 50
	}
	if p.MinSeparation == 0 {
		p.MinSeparation = 80
	}
	if p.MaxIterations == 0 {
		p.MaxIterations = 10
	}
}

func (i *Interaction) ApplyDefaults() {
	if i.Radius == 0 {
		i.Radius = 100
	}
	if i.CloseFraction == 0 {
		i.CloseFraction = 0.4
	}
	if i.NearFraction == 0 {
		i.NearFraction = 0.8
	}
	if i.CloseFraction > i.NearFraction {
		i.CloseFraction = 0.4
		i.NearFraction = 0.8
	}
}

func (c *Culling) ApplyDefaults() {
	if c.Radius == 0 {
		c.Radius = 800
	}
}

func (s *Scheduler) ApplyDefaults() {
	if s.MoveThreshold == 0 {
		s.MoveThreshold = 10
	}
	if s.MaxIntervalMS == 0 {
		s.MaxIntervalMS = 100
	}
}

func (c *Config) ApplyDefaults() {
	c.Placement.ApplyDefaults()
	c.Interaction.ApplyDefaults()
	c.Culling.ApplyDefaults()
	c.Scheduler.ApplyDefaults()
}

// Default returns a Config with every field at its default value.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// Load reads a yaml config file and fills defaults for anything unset.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
