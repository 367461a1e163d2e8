// Package config provides YAML-based configuration loading, presets and
// live reload for the starfield.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/starfield"
)

// ErrInvalid is returned (wrapped) by Validate.
var ErrInvalid = errors.New("invalid config")

// Config contains every tunable of the starfield.
type Config struct {
	Stars   StarsConfig   `yaml:"stars"`
	Links   LinksConfig   `yaml:"links"`
	Cursor  CursorConfig  `yaml:"cursor"`
	Recycle RecycleConfig `yaml:"recycle"`
	Timing  TimingConfig  `yaml:"timing"`
	Index   IndexConfig   `yaml:"index"`
}

// StarsConfig defines how stars look and move.
type StarsConfig struct {
	Count    int     `yaml:"count"`
	Radius   float64 `yaml:"radius"`
	MinSpeed float64 `yaml:"min_speed"` // units per second
	MaxSpeed float64 `yaml:"max_speed"`
	Color    string  `yaml:"color"` // #rrggbb
	Draw     bool    `yaml:"draw"`  // Stars themselves are hidden by default, only links show
}

// LinksConfig defines the connective lines.
type LinksConfig struct {
	Threshold float64 `yaml:"threshold"` // Stars closer than this are linked
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	Color     string  `yaml:"color"`
}

// CursorConfig defines pointer interaction.
type CursorConfig struct {
	RepulsionRadius float64 `yaml:"repulsion_radius"`
}

// RecycleConfig defines when stars are replaced.
type RecycleConfig struct {
	ExtraMargin float64 `yaml:"extra_margin"` // Added to the link threshold
}

// TimingConfig defines the tick schedule.
type TimingConfig struct {
	TickRate int     `yaml:"tick_rate"` // Ticks per second
	MaxDT    float64 `yaml:"max_dt"`    // Seconds; 0 applies pauses in full
}

// IndexConfig selects the pair search strategy.
type IndexConfig struct {
	Kind string `yaml:"kind"` // "brute" or "grid"
}

// Validate reports the first problem found, wrapped around ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Stars.Count < 0:
		return fmt.Errorf("%w: stars.count must not be negative, got %d", ErrInvalid, c.Stars.Count)
	case c.Stars.Radius <= 0:
		return fmt.Errorf("%w: stars.radius must be positive, got %g", ErrInvalid, c.Stars.Radius)
	case c.Stars.MinSpeed > c.Stars.MaxSpeed:
		return fmt.Errorf("%w: stars.min_speed %g exceeds max_speed %g", ErrInvalid, c.Stars.MinSpeed, c.Stars.MaxSpeed)
	case c.Links.Threshold <= 0:
		return fmt.Errorf("%w: links.threshold must be positive, got %g", ErrInvalid, c.Links.Threshold)
	case c.Links.MinWidth <= 0 || c.Links.MinWidth > c.Links.MaxWidth:
		return fmt.Errorf("%w: links widths must satisfy 0 < min_width <= max_width, got %g and %g",
			ErrInvalid, c.Links.MinWidth, c.Links.MaxWidth)
	case c.Cursor.RepulsionRadius < 0:
		return fmt.Errorf("%w: cursor.repulsion_radius must not be negative, got %g", ErrInvalid, c.Cursor.RepulsionRadius)
	case c.Recycle.ExtraMargin < 0:
		return fmt.Errorf("%w: recycle.extra_margin must not be negative, got %g", ErrInvalid, c.Recycle.ExtraMargin)
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("%w: timing.tick_rate must be positive, got %d", ErrInvalid, c.Timing.TickRate)
	case c.Timing.MaxDT < 0:
		return fmt.Errorf("%w: timing.max_dt must not be negative, got %g", ErrInvalid, c.Timing.MaxDT)
	}
	if _, err := starfield.NewPairIndex(c.Index.Kind); err != nil {
		return fmt.Errorf("%w: index.kind: %v", ErrInvalid, err)
	}
	if _, err := core.ParseHex(c.Stars.Color); err != nil {
		return fmt.Errorf("%w: stars.color: %v", ErrInvalid, err)
	}
	if _, err := core.ParseHex(c.Links.Color); err != nil {
		return fmt.Errorf("%w: links.color: %v", ErrInvalid, err)
	}
	return nil
}

// Params converts the config into simulation tunables.
func (c Config) Params() (starfield.Params, error) {
	starColor, err := core.ParseHex(c.Stars.Color)
	if err != nil {
		return starfield.Params{}, fmt.Errorf("stars.color: %w", err)
	}
	lineColor, err := core.ParseHex(c.Links.Color)
	if err != nil {
		return starfield.Params{}, fmt.Errorf("links.color: %w", err)
	}
	return starfield.Params{
		Count:           c.Stars.Count,
		Radius:          c.Stars.Radius,
		MinSpeed:        c.Stars.MinSpeed,
		MaxSpeed:        c.Stars.MaxSpeed,
		StarColor:       starColor,
		DrawStars:       c.Stars.Draw,
		LineThreshold:   c.Links.Threshold,
		MinLineWidth:    c.Links.MinWidth,
		MaxLineWidth:    c.Links.MaxWidth,
		LineColor:       lineColor,
		RepulsionRadius: c.Cursor.RepulsionRadius,
		RecycleExtra:    c.Recycle.ExtraMargin,
	}, nil
}

// PairIndex builds the configured pair search strategy.
func (c Config) PairIndex() (starfield.PairIndex, error) {
	return starfield.NewPairIndex(c.Index.Kind)
}

// Scene validates the config and builds everything a host needs to apply
// it to a running simulation.
func (c Config) Scene() (starfield.Params, starfield.PairIndex, error) {
	if err := c.Validate(); err != nil {
		return starfield.Params{}, nil, err
	}
	params, err := c.Params()
	if err != nil {
		return starfield.Params{}, nil, err
	}
	idx, err := c.PairIndex()
	if err != nil {
		return starfield.Params{}, nil, err
	}
	return params, idx, nil
}
