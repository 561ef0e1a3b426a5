// Package config loads the YAML configuration shared by the service and the previews.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/aspire/logging"
	"github.com/lixenwraith/aspire/parameter"
	"github.com/lixenwraith/aspire/particle"
	"github.com/lixenwraith/aspire/server"
	"github.com/lixenwraith/aspire/shape"
	"github.com/lixenwraith/aspire/transition"
)

// Config is the root of the configuration file
type Config struct {
	Server   server.Config  `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logging  logging.Config `yaml:"logging"`
	Hero     HeroConfig     `yaml:"hero"`
	Globe    GlobeConfig    `yaml:"globe"`
}

// DatabaseConfig locates the submissions database
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// HeroConfig tunes the hero field
// Zero tuning fields are taken from the named preset
type HeroConfig struct {
	Preset    string          `yaml:"preset"`
	Tuning    particle.Tuning `yaml:"tuning"`
	ScrollMax float64         `yaml:"scroll_max"`
	// Count overrides the per-class population when positive
	Count  int    `yaml:"count"`
	Seed   int64  `yaml:"seed"`
	Origin string `yaml:"origin"`
	Alt    string `yaml:"alt"`
	Morph  bool   `yaml:"morph"`
}

// GlobeConfig tunes the not-found globe
type GlobeConfig struct {
	Count int   `yaml:"count"`
	Seed  int64 `yaml:"seed"`
}

// DefaultConfig returns a complete configuration
func DefaultConfig() *Config {
	return &Config{
		Server:   *server.DefaultConfig(),
		Database: DatabaseConfig{Path: filepath.Join("data", "contact.db")},
		Logging:  logging.DefaultConfig(),
		Hero: HeroConfig{
			Preset:    "default",
			Tuning:    particle.DefaultTuning(),
			ScrollMax: parameter.ScrollMax,
			Seed:      1,
			Origin:    shape.KindSphere.String(),
			Alt:       shape.KindSilhouette.String(),
			Morph:     true,
		},
		Globe: GlobeConfig{Count: parameter.GlobeParticleCount, Seed: 1},
	}
}

// Load reads path over the defaults; a missing file yields defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.FillDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Tuning comes from the file or the preset it names
	cfg.Hero.Tuning = particle.Tuning{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.FillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// FillDefaults replaces zero fields with defaults
func (c *Config) FillDefaults() {
	d := DefaultConfig()
	c.Server.FillDefaults()
	if c.Database.Path == "" {
		c.Database.Path = d.Database.Path
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}

	h := &c.Hero
	if h.Preset == "" {
		h.Preset = d.Hero.Preset
	}
	if preset, err := particle.Preset(h.Preset); err == nil {
		fillTuning(&h.Tuning, preset)
	}
	if h.ScrollMax == 0 {
		h.ScrollMax = d.Hero.ScrollMax
	}
	if h.Origin == "" {
		h.Origin = d.Hero.Origin
	}
	if h.Alt == "" {
		h.Alt = d.Hero.Alt
	}

	if c.Globe.Count == 0 {
		c.Globe.Count = d.Globe.Count
	}
}

func fillTuning(t *particle.Tuning, from particle.Tuning) {
	if t.Stiffness == 0 {
		t.Stiffness = from.Stiffness
	}
	if t.Friction == 0 {
		t.Friction = from.Friction
	}
	if t.PushStrength == 0 {
		t.PushStrength = from.PushStrength
	}
	if t.InteractRadius == 0 {
		t.InteractRadius = from.InteractRadius
	}
	if t.InteractGrowth == 0 {
		t.InteractGrowth = from.InteractGrowth
	}
}

// Validate checks every section
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if _, err := particle.Preset(c.Hero.Preset); err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	if err := c.Hero.Tuning.Validate(); err != nil {
		return fmt.Errorf("hero tuning: %w", err)
	}
	if c.Hero.ScrollMax < 0 {
		return fmt.Errorf("hero: scroll_max %v must be positive", c.Hero.ScrollMax)
	}
	if _, err := shape.ParseKind(c.Hero.Origin); err != nil {
		return fmt.Errorf("hero origin: %w", err)
	}
	if _, err := shape.ParseKind(c.Hero.Alt); err != nil {
		return fmt.Errorf("hero alt: %w", err)
	}
	if c.Hero.Count < 0 || c.Globe.Count < 0 {
		return errors.New("particle counts must be non-negative")
	}
	return nil
}

// FieldConfig builds a hero field configuration for a viewport
func (h HeroConfig) FieldConfig(class transition.ViewportClass, width, height int) (particle.FieldConfig, error) {
	origin, err := shape.ParseKind(h.Origin)
	if err != nil {
		return particle.FieldConfig{}, err
	}
	alt, err := shape.ParseKind(h.Alt)
	if err != nil {
		return particle.FieldConfig{}, err
	}
	return particle.FieldConfig{
		Class:     class,
		Count:     h.Count,
		Origin:    origin,
		Alt:       alt,
		Morph:     h.Morph,
		Tuning:    h.Tuning,
		ScrollMax: h.ScrollMax,
		Seed:      h.Seed,
		Width:     width,
		Height:    height,
	}, nil
}
