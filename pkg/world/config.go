package world

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config describes a simulation, loaded from a TOML file:
//
//	width = 24
//	height = 16
//	ticks = 200
//	seed = 42
//	wall-rate = 0.05
//
//	[[species]]
//	name = "guard"
//	program = "guard.bl"
//	count = 4
type Config struct {
	Width    int             `toml:"width"`
	Height   int             `toml:"height"`
	Ticks    int             `toml:"ticks"`
	Seed     int64           `toml:"seed"`
	WallRate float64         `toml:"wall-rate"`
	Species  []SpeciesConfig `toml:"species"`

	// Dir is the directory containing the config file (set at load
	// time); species program paths resolve relative to it.
	Dir string `toml:"-"`
}

// SpeciesConfig declares one species: its BL program file and how many
// bugs to spawn.
type SpeciesConfig struct {
	Name    string `toml:"name"`
	Program string `toml:"program"`
	Count   int    `toml:"count"`
	Glyph   string `toml:"glyph"`
}

// LoadConfig parses a simulation config file and fills in defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	// Defaults
	if c.Width == 0 {
		c.Width = 24
	}
	if c.Height == 0 {
		c.Height = 16
	}
	if c.Ticks == 0 {
		c.Ticks = 100
	}
	if len(c.Species) == 0 {
		return nil, fmt.Errorf("%s declares no species", path)
	}
	for i := range c.Species {
		s := &c.Species[i]
		if s.Name == "" {
			return nil, fmt.Errorf("species %d has no name", i)
		}
		if s.Program == "" {
			return nil, fmt.Errorf("species %q has no program", s.Name)
		}
		if s.Count == 0 {
			s.Count = 1
		}
		if !filepath.IsAbs(s.Program) {
			s.Program = filepath.Join(c.Dir, s.Program)
		}
	}
	return &c, nil
}

// SpeciesGlyph returns the display rune for s: the configured glyph, or
// the first rune of the name.
func (s *SpeciesConfig) SpeciesGlyph() rune {
	if s.Glyph != "" {
		return []rune(s.Glyph)[0]
	}
	return []rune(s.Name)[0]
}
