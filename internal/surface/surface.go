// Package surface defines the 2D immediate-mode drawing contract the
// starfield renders through, plus helpers shared by its implementations.
package surface

import "github.com/vovakirdan/starfield/internal/core"

// Surface is the minimal drawing capability the simulation needs.
// Coordinates are viewport units; implementations map them to pixels.
type Surface interface {
	// ClearRect resets the given area to transparent.
	ClearRect(x, y, w, h float64)

	// BeginPath discards the current path.
	BeginPath()

	// Arc appends a circular arc centred at (x, y) to the current path.
	// Angles are in radians, measured clockwise from the positive x axis.
	Arc(x, y, radius, startAngle, endAngle float64)

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo appends a straight segment to the current subpath.
	LineTo(x, y float64)

	// Fill paints the interior of the current path with the fill style.
	Fill()

	// Stroke paints the outline of the current path with the stroke style
	// and line width.
	Stroke()

	SetFillStyle(c core.RGBA)
	SetStrokeStyle(c core.RGBA)
	SetLineWidth(w float64)
}
