package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/surface"
)

// Canvas implements surface.Surface on an offscreen ebiten.Image.
// Only full circles are filled; stroked paths become anti-aliased lines.
type Canvas struct {
	surface.Path

	img   *ebiten.Image
	scale float64

	fill   color.NRGBA
	stroke color.NRGBA
	width  float64
}

// NewCanvas creates a canvas drawing into img. Viewport units are
// multiplied by scale to get pixels.
func NewCanvas(img *ebiten.Image, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	return &Canvas{
		img:    img,
		scale:  scale,
		fill:   color.NRGBA{A: 255},
		stroke: color.NRGBA{A: 255},
		width:  1,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// ClearRect resets the given area to transparent.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	rect := image.Rect(
		int(math.Floor(x*c.scale)),
		int(math.Floor(y*c.scale)),
		int(math.Ceil((x+w)*c.scale)),
		int(math.Ceil((y+h)*c.scale)),
	).Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	c.img.SubImage(rect).(*ebiten.Image).Clear()
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.Path.Reset()
}

// Arc appends an arc to the current path.
func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64) {
	c.Path.Arc(core.Pt(x, y), radius, startAngle, endAngle)
}

// MoveTo starts a subpath.
func (c *Canvas) MoveTo(x, y float64) {
	c.Path.MoveTo(core.Pt(x, y))
}

// LineTo extends the current subpath.
func (c *Canvas) LineTo(x, y float64) {
	c.Path.LineTo(core.Pt(x, y))
}

// Fill paints full-circle subpaths.
func (c *Canvas) Fill() {
	for _, sp := range c.Subpaths() {
		if sp.Circle == nil {
			continue
		}
		vector.DrawFilledCircle(c.img,
			float32(sp.Circle.Center.X*c.scale), float32(sp.Circle.Center.Y*c.scale),
			float32(sp.Circle.Radius*c.scale), c.fill, true)
	}
}

// Stroke outlines every subpath with the current width and colour.
func (c *Canvas) Stroke() {
	w := float32(c.width * c.scale)
	for _, sp := range c.Subpaths() {
		if sp.Circle != nil {
			vector.StrokeCircle(c.img,
				float32(sp.Circle.Center.X*c.scale), float32(sp.Circle.Center.Y*c.scale),
				float32(sp.Circle.Radius*c.scale), w, c.stroke, true)
			continue
		}
		for i := 1; i < len(sp.Points); i++ {
			a, b := sp.Points[i-1], sp.Points[i]
			vector.StrokeLine(c.img,
				float32(a.X*c.scale), float32(a.Y*c.scale),
				float32(b.X*c.scale), float32(b.Y*c.scale),
				w, c.stroke, true)
		}
	}
}

// SetFillStyle sets the fill colour.
func (c *Canvas) SetFillStyle(col core.RGBA) {
	c.fill = toNRGBA(col)
}

// SetStrokeStyle sets the stroke colour.
func (c *Canvas) SetStrokeStyle(col core.RGBA) {
	c.stroke = toNRGBA(col)
}

// SetLineWidth sets the stroke width in viewport units.
func (c *Canvas) SetLineWidth(w float64) {
	c.width = w
}

func toNRGBA(c core.RGBA) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
