package config

import (
	_ "embed"
)

//go:embed defaults/starfield.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration. It matches the embedded
// defaults/starfield.yaml.
func Default() Config {
	return Config{
		Stars: StarsConfig{
			Count:    180,
			Radius:   8,
			MinSpeed: -30,
			MaxSpeed: 30,
			Color:    "#ffffff",
			Draw:     false,
		},
		Links: LinksConfig{
			Threshold: 170,
			MinWidth:  1,
			MaxWidth:  4.5,
			Color:     "#ffffff",
		},
		Cursor: CursorConfig{
			RepulsionRadius: 150,
		},
		Recycle: RecycleConfig{
			ExtraMargin: 80,
		},
		Timing: TimingConfig{
			TickRate: 30,
			MaxDT:    0,
		},
		Index: IndexConfig{
			Kind: "brute",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
