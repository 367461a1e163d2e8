package config

import "fmt"

// Preset represents a named density level.
type Preset string

const (
	PresetSparse  Preset = "sparse"
	PresetDefault Preset = "default"
	PresetDense   Preset = "dense"
)

// ParsePreset validates a preset name. An empty name means PresetDefault.
func ParsePreset(name string) (Preset, error) {
	switch p := Preset(name); p {
	case "":
		return PresetDefault, nil
	case PresetSparse, PresetDefault, PresetDense:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown preset %q (want sparse, default or dense)", ErrInvalid, name)
	}
}

// ApplyPreset modifies the config based on a density preset.
// PresetDefault leaves the loaded values untouched.
func ApplyPreset(cfg *Config, preset Preset) {
	switch preset {
	case PresetSparse:
		cfg.Stars.Count = 90
		cfg.Links.Threshold = 140
		cfg.Links.MaxWidth = 3.5
	case PresetDense:
		cfg.Stars.Count = 320
		cfg.Links.Threshold = 190
		cfg.Links.MaxWidth = 5
		cfg.Index.Kind = "grid" // more pairs per tick
	}
}

// ApplyTickRate overrides timing.tick_rate with a command-line rate.
// A rate of 0 keeps the loaded value.
func ApplyTickRate(cfg *Config, rate int) {
	if rate > 0 {
		cfg.Timing.TickRate = rate
	}
}
