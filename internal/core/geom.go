// Package core provides fundamental types and utilities for the starfield.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep the simulation pure and testable.
package core

import "math"

// Point is a 2D coordinate in viewport units.
// It is a value type: assigning a Point copies it.
type Point struct {
	X, Y float64
}

// Pt creates a new point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Copy returns an independent copy of the point.
func (p Point) Copy() Point {
	return Point{X: p.X, Y: p.Y}
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Len returns the euclidean length of p treated as a vector.
func (p Point) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Len()
}

// Viewport is the drawing area supplied by the host.
// X and Y are the offset of the area on the host's screen; stars live in
// viewport-local coordinates [0, Width] x [0, Height].
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// NewViewport creates a viewport with the given offset and size.
func NewViewport(x, y, w, h float64) Viewport {
	return Viewport{X: x, Y: y, Width: w, Height: h}
}

// Top returns the y-coordinate of the top edge in host coordinates.
func (v Viewport) Top() float64 {
	return v.Y
}

// Bottom returns the y-coordinate of the bottom edge in host coordinates.
func (v Viewport) Bottom() float64 {
	return v.Y + v.Height
}

// Left returns the x-coordinate of the left edge in host coordinates.
func (v Viewport) Left() float64 {
	return v.X
}

// Right returns the x-coordinate of the right edge in host coordinates.
func (v Viewport) Right() float64 {
	return v.X + v.Width
}

// Local returns the same-sized viewport at the origin, the frame stars
// live in.
func (v Viewport) Local() Viewport {
	return Viewport{Width: v.Width, Height: v.Height}
}

// Outside reports whether a viewport-local point lies outside the viewport
// grown by margin on every side. Points exactly on the grown edge are inside.
func (v Viewport) Outside(p Point, margin float64) bool {
	return p.X < -margin || p.X > v.Width+margin ||
		p.Y < -margin || p.Y > v.Height+margin
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
