// Package starfield implements the starfield simulation: drifting stars that
// ease toward moving anchors, get pushed away by the pointer, are recycled
// once they leave the area around the viewport, and are linked by lines
// whose strength grows as they get closer.
package starfield

import "github.com/vovakirdan/starfield/internal/core"

// Defaults.
const (
	DefaultStarCount       = 180
	DefaultStarRadius      = 8.0
	DefaultMinSpeed        = -30.0 // units per second
	DefaultMaxSpeed        = 30.0
	DefaultLineThreshold   = 170.0 // stars closer than this are linked
	DefaultMinLineWidth    = 1.0
	DefaultMaxLineWidth    = 4.5
	DefaultRepulsionRadius = 150.0 // stars are kept this far from the pointer
	DefaultRecycleExtra    = 80.0  // recycle margin beyond the line threshold
)

// Params holds the tunables of a simulation.
type Params struct {
	Count     int
	Radius    float64
	MinSpeed  float64
	MaxSpeed  float64
	StarColor core.RGBA
	DrawStars bool

	LineThreshold float64
	MinLineWidth  float64
	MaxLineWidth  float64
	LineColor     core.RGBA

	RepulsionRadius float64
	RecycleExtra    float64
}

// DefaultParams returns the stock starfield look.
func DefaultParams() Params {
	return Params{
		Count:           DefaultStarCount,
		Radius:          DefaultStarRadius,
		MinSpeed:        DefaultMinSpeed,
		MaxSpeed:        DefaultMaxSpeed,
		StarColor:       core.White,
		DrawStars:       false,
		LineThreshold:   DefaultLineThreshold,
		MinLineWidth:    DefaultMinLineWidth,
		MaxLineWidth:    DefaultMaxLineWidth,
		LineColor:       core.White,
		RepulsionRadius: DefaultRepulsionRadius,
		RecycleExtra:    DefaultRecycleExtra,
	}
}

// Margin is how far outside the viewport a star may drift before it is
// recycled. Replacements spawn between LineThreshold and Margin.
func (p Params) Margin() float64 {
	return p.LineThreshold + p.RecycleExtra
}
