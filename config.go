package main

import (
	"fmt"
	"image/color"

	"gopkg.in/gcfg.v1"
)

// Config carries the dust field tunables. The defaults reproduce the site's
// shipped look; none of them is load-bearing, so a config file may override
// any of them.
type Config struct {
	NarrowWidth float64    // Viewports narrower than this get the smaller set
	NarrowCount int        // Particle count on narrow viewports
	WideCount   int        // Particle count everywhere else
	Gold        color.RGBA // Fill color; the per-particle opacity sets A
}

// ExampleConfigFile documents the accepted file format.
const ExampleConfigFile = `[Field]

# Viewport width (px) below which the smaller particle count is used.
NarrowWidth = 768

# Particle counts for narrow and regular viewports.
NarrowCount = 100
WideCount = 200

# Fill color of the dust motes, as an RGB triple.
GoldR = 212
GoldG = 175
GoldB = 55`

// fileConfig mirrors the INI layout for gcfg.
type fileConfig struct {
	Field struct {
		NarrowWidth float64
		NarrowCount int
		WideCount   int
		GoldR       int
		GoldG       int
		GoldB       int
	}
}

// DefaultConfig returns the shipped tunables.
func DefaultConfig() Config {
	return Config{
		NarrowWidth: 768,
		NarrowCount: 100,
		WideCount:   200,
		Gold:        color.RGBA{R: 212, G: 175, B: 55, A: 255},
	}
}

// LoadConfig reads an INI file and returns the defaults with the file's
// [Field] values applied on top.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	var fc fileConfig
	fc.Field.NarrowWidth = cfg.NarrowWidth
	fc.Field.NarrowCount = cfg.NarrowCount
	fc.Field.WideCount = cfg.WideCount
	fc.Field.GoldR = int(cfg.Gold.R)
	fc.Field.GoldG = int(cfg.Gold.G)
	fc.Field.GoldB = int(cfg.Gold.B)

	if err := gcfg.ReadFileInto(&fc, path); err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if fc.Field.NarrowCount <= 0 || fc.Field.WideCount <= 0 {
		return cfg, fmt.Errorf("config %s: particle counts must be positive", path)
	}
	for _, c := range []int{fc.Field.GoldR, fc.Field.GoldG, fc.Field.GoldB} {
		if c < 0 || c > 255 {
			return cfg, fmt.Errorf("config %s: color channels must be in 0..255", path)
		}
	}

	cfg.NarrowWidth = fc.Field.NarrowWidth
	cfg.NarrowCount = fc.Field.NarrowCount
	cfg.WideCount = fc.Field.WideCount
	cfg.Gold = color.RGBA{
		R: uint8(fc.Field.GoldR),
		G: uint8(fc.Field.GoldG),
		B: uint8(fc.Field.GoldB),
		A: 255,
	}
	return cfg, nil
}
