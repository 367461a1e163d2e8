// Package raster implements surface.Surface on an in-memory RGBA image using
// the anti-aliasing rasterizer from golang.org/x/image/vector.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/surface"
)

// Raster draws into an *image.RGBA. Viewport units are multiplied by scale
// to get pixels.
type Raster struct {
	surface.Path

	img   *image.RGBA
	z     *vector.Rasterizer
	scale float64

	// minWidth is the thinnest stroke in pixels. Strokes thinner than a
	// pixel fade out under anti-aliasing, which washes out small targets.
	minWidth float64

	fill   color.NRGBA
	stroke color.NRGBA
	width  float64
}

// New creates a transparent w x h pixel raster.
func New(w, h int, scale float64) *Raster {
	if scale <= 0 {
		scale = 1
	}
	return &Raster{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		z:      vector.NewRasterizer(w, h),
		scale:  scale,
		fill:   color.NRGBA{A: 255},
		stroke: color.NRGBA{A: 255},
		width:  1,
	}
}

// Image returns the backing image. It is overwritten by later draw calls.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// SetMinLineWidth sets the thinnest stroke width in pixels.
func (r *Raster) SetMinLineWidth(px float64) {
	r.minWidth = px
}

// ClearRect resets the given area to transparent.
func (r *Raster) ClearRect(x, y, w, h float64) {
	rect := image.Rect(
		int(math.Floor(x*r.scale)),
		int(math.Floor(y*r.scale)),
		int(math.Ceil((x+w)*r.scale)),
		int(math.Ceil((y+h)*r.scale)),
	).Intersect(r.img.Bounds())
	draw.Draw(r.img, rect, image.Transparent, image.Point{}, draw.Src)
}

// BeginPath discards the current path.
func (r *Raster) BeginPath() {
	r.Path.Reset()
}

// Arc appends an arc to the current path.
func (r *Raster) Arc(x, y, radius, startAngle, endAngle float64) {
	r.Path.Arc(core.Pt(x, y), radius, startAngle, endAngle)
}

// MoveTo starts a subpath.
func (r *Raster) MoveTo(x, y float64) {
	r.Path.MoveTo(core.Pt(x, y))
}

// LineTo extends the current subpath.
func (r *Raster) LineTo(x, y float64) {
	r.Path.LineTo(core.Pt(x, y))
}

// Fill paints every closed subpath with the fill style.
func (r *Raster) Fill() {
	src := image.NewUniform(r.fill)
	for _, sp := range r.Subpaths() {
		if len(sp.Points) < 3 {
			continue
		}
		r.begin()
		first := r.px(sp.Points[0])
		r.z.MoveTo(first[0], first[1])
		for _, pt := range sp.Points[1:] {
			p := r.px(pt)
			r.z.LineTo(p[0], p[1])
		}
		r.z.ClosePath()
		r.z.Draw(r.img, r.img.Bounds(), src, image.Point{})
	}
}

// Stroke paints each subpath segment as a quad of the current line width.
func (r *Raster) Stroke() {
	src := image.NewUniform(r.stroke)
	half := math.Max(r.width*r.scale, r.minWidth) / 2
	for _, sp := range r.Subpaths() {
		for i := 1; i < len(sp.Points); i++ {
			r.strokeSegment(sp.Points[i-1], sp.Points[i], half, src)
		}
	}
}

func (r *Raster) strokeSegment(a, b core.Point, half float64, src image.Image) {
	pa := a.Scale(r.scale)
	pb := b.Scale(r.scale)
	d := pb.Sub(pa)
	l := d.Len()
	if l == 0 {
		return
	}
	// Unit normal scaled to half the stroke width.
	n := core.Pt(-d.Y/l*half, d.X/l*half)

	r.begin()
	r.z.MoveTo(float32(pa.X+n.X), float32(pa.Y+n.Y))
	r.z.LineTo(float32(pb.X+n.X), float32(pb.Y+n.Y))
	r.z.LineTo(float32(pb.X-n.X), float32(pb.Y-n.Y))
	r.z.LineTo(float32(pa.X-n.X), float32(pa.Y-n.Y))
	r.z.ClosePath()
	r.z.Draw(r.img, r.img.Bounds(), src, image.Point{})
}

func (r *Raster) begin() {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
}

func (r *Raster) px(p core.Point) [2]float32 {
	return [2]float32{float32(p.X * r.scale), float32(p.Y * r.scale)}
}

// SetFillStyle sets the fill colour.
func (r *Raster) SetFillStyle(c core.RGBA) {
	r.fill = toNRGBA(c)
}

// SetStrokeStyle sets the stroke colour.
func (r *Raster) SetStrokeStyle(c core.RGBA) {
	r.stroke = toNRGBA(c)
}

// SetLineWidth sets the stroke width in viewport units.
func (r *Raster) SetLineWidth(w float64) {
	r.width = w
}

func toNRGBA(c core.RGBA) color.NRGBA {
	cr, cg, cb, ca := c.RGBA8()
	return color.NRGBA{R: cr, G: cg, B: cb, A: ca}
}
