package tui

import (
	"image"

	"github.com/vovakirdan/starfield/internal/core"
)

// Each terminal cell shows a 2x4 block of pixels as one braille glyph.
const (
	dotsX = 2
	dotsY = 4

	// Viewport units per cell. With dotsX by dotsY pixels per cell this
	// gives a uniform 0.25 pixels per unit.
	unitsX = 8
	unitsY = 16

	brailleBase = 0x2800
)

// dotBits maps a pixel offset inside a cell to its braille dot.
var dotBits = [dotsY][dotsX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// pixelScale converts viewport units to raster pixels.
const pixelScale = float64(dotsX) / unitsX

// viewportSize returns the viewport for a terminal of cols x rows cells.
func viewportSize(cols, rows int) (w, h float64) {
	return float64(cols * unitsX), float64(rows * unitsY)
}

// cellToViewport maps a terminal cell to the viewport point at its centre.
func cellToViewport(x, y int) core.Point {
	return core.Pt(float64(x*unitsX+unitsX/2), float64(y*unitsY+unitsY/2))
}

// Braille converts img into glyphs on s. A pixel counts as a dot once its
// alpha reaches minAlpha. Each cell takes the colour of its brightest dot,
// composited over black and quantized so runs stay long.
func Braille(img *image.RGBA, s *core.Screen, minAlpha uint8) {
	s.Clear()
	b := img.Bounds()
	for cy := 0; cy < s.Height(); cy++ {
		for cx := 0; cx < s.Width(); cx++ {
			var glyph rune
			var best core.RGBA
			bestLevel := -1
			for dy := 0; dy < dotsY; dy++ {
				py := b.Min.Y + cy*dotsY + dy
				for dx := 0; dx < dotsX; dx++ {
					px := b.Min.X + cx*dotsX + dx
					if px >= b.Max.X || py >= b.Max.Y {
						continue
					}
					c := img.RGBAAt(px, py)
					if c.A < minAlpha {
						continue
					}
					glyph |= dotBits[dy][dx]
					// Premultiplied channels are the colour over black.
					level := int(c.R) + int(c.G) + int(c.B)
					if level > bestLevel {
						bestLevel = level
						best = core.RGBA{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B), A: 1}
					}
				}
			}
			if glyph != 0 {
				s.Set(cx, cy, brailleBase+glyph, best)
			}
		}
	}
}

// quantize snaps a channel to 16 levels, keeping 255 reachable.
func quantize(v uint8) uint8 {
	return uint8(core.Clamp((int(v)+8)/17*17, 0, 255))
}
