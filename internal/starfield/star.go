package starfield

import (
	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/surface"
)

// Star is a single point that drifts across the viewport.
// Anchor moves at constant velocity; Pos is the rendered position and eases
// toward Anchor, which gives the trailing motion.
type Star struct {
	Anchor core.Point
	Pos    core.Point
	Radius float64
	SpeedX float64
	SpeedY float64
	Color  core.RGBA
}

// NewStar creates a star whose anchor and rendered position both start at pos.
func NewStar(pos core.Point, radius, speedX, speedY float64, c core.RGBA) Star {
	return Star{
		Anchor: pos.Copy(),
		Pos:    pos.Copy(),
		Radius: radius,
		SpeedX: speedX,
		SpeedY: speedY,
		Color:  c,
	}
}

// Move advances the anchor by velocity*dt, then closes dt of the remaining
// gap between Pos and Anchor. The pursuit step is deliberately frame-rate
// dependent: a larger dt gives a larger single correction.
func (s *Star) Move(dt float64) {
	s.Anchor.X += s.SpeedX * dt
	s.Anchor.Y += s.SpeedY * dt

	delta := s.Anchor.Sub(s.Pos)
	s.Pos.X += delta.X * dt
	s.Pos.Y += delta.Y * dt
}

// Repel pushes Pos straight away from p until it is radius away.
// Returns false when the star was out of range or exactly on p.
func (s *Star) Repel(p core.Point, radius float64) bool {
	d := s.Pos.Sub(p)
	dist := d.Len()
	if dist == 0 || dist >= radius {
		return false
	}
	pushed := d.Scale(radius / dist)
	s.Pos.X += pushed.X - d.X
	s.Pos.Y += pushed.Y - d.Y
	return true
}

// OutOfBounds reports whether the star has left the viewport grown by margin.
func (s Star) OutOfBounds(v core.Viewport, margin float64) bool {
	return v.Outside(s.Pos, margin)
}

// Render draws the star as a filled, outlined disc.
func (s Star) Render(dst surface.Surface) {
	dst.BeginPath()
	dst.Arc(s.Pos.X, s.Pos.Y, s.Radius, 0, surface.Tau)
	dst.SetFillStyle(s.Color)
	dst.Fill()
	dst.SetLineWidth(1)
	dst.SetStrokeStyle(s.Color)
	dst.Stroke()
}
