package surface

import (
	"fmt"

	"github.com/vovakirdan/starfield/internal/core"
)

// Line is a stroked segment captured by the Recorder.
type Line struct {
	From, To core.Point
	Width    float64
	Color    core.RGBA
}

// Disc is a filled circle captured by the Recorder.
type Disc struct {
	Circle
	Color core.RGBA
}

// Recorder is a Surface that keeps what was drawn instead of rasterizing it.
// It backs the headless benchmark and is the main test double.
type Recorder struct {
	Path

	fill   core.RGBA
	stroke core.RGBA
	width  float64

	Ops    []string // Call log, e.g. "clearRect(0,0,800,600)"
	Lines  []Line
	Discs  []Disc
	Clears int
}

// NewRecorder creates an empty recorder with canvas default styles.
func NewRecorder() *Recorder {
	return &Recorder{
		fill:   core.Black,
		stroke: core.Black,
		width:  1,
	}
}

// Reset forgets everything drawn so far.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.Lines = r.Lines[:0]
	r.Discs = r.Discs[:0]
	r.Clears = 0
	r.Path.Reset()
}

func (r *Recorder) log(format string, args ...any) {
	r.Ops = append(r.Ops, fmt.Sprintf(format, args...))
}

// ClearRect records a clear. Previously captured shapes are kept so tests
// can inspect a whole tick.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.Clears++
	r.log("clearRect(%g,%g,%g,%g)", x, y, w, h)
}

// BeginPath discards the current path.
func (r *Recorder) BeginPath() {
	r.Path.Reset()
	r.log("beginPath()")
}

// Arc appends an arc to the current path.
func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.Path.Arc(core.Pt(x, y), radius, startAngle, endAngle)
	r.log("arc(%g,%g,%g,%g,%g)", x, y, radius, startAngle, endAngle)
}

// MoveTo starts a subpath.
func (r *Recorder) MoveTo(x, y float64) {
	r.Path.MoveTo(core.Pt(x, y))
	r.log("moveTo(%g,%g)", x, y)
}

// LineTo extends the current subpath.
func (r *Recorder) LineTo(x, y float64) {
	r.Path.LineTo(core.Pt(x, y))
	r.log("lineTo(%g,%g)", x, y)
}

// Fill captures full-circle subpaths as discs.
func (r *Recorder) Fill() {
	for _, sp := range r.Subpaths() {
		if sp.Circle != nil {
			r.Discs = append(r.Discs, Disc{Circle: *sp.Circle, Color: r.fill})
		}
	}
	r.log("fill()")
}

// Stroke captures every straight subpath segment as a line.
func (r *Recorder) Stroke() {
	for _, sp := range r.Subpaths() {
		if sp.Circle != nil {
			continue
		}
		for i := 1; i < len(sp.Points); i++ {
			r.Lines = append(r.Lines, Line{
				From:  sp.Points[i-1],
				To:    sp.Points[i],
				Width: r.width,
				Color: r.stroke,
			})
		}
	}
	r.log("stroke()")
}

// SetFillStyle sets the fill colour.
func (r *Recorder) SetFillStyle(c core.RGBA) {
	r.fill = c
	r.log("fillStyle=%s", c)
}

// SetStrokeStyle sets the stroke colour.
func (r *Recorder) SetStrokeStyle(c core.RGBA) {
	r.stroke = c
	r.log("strokeStyle=%s", c)
}

// SetLineWidth sets the stroke width.
func (r *Recorder) SetLineWidth(w float64) {
	r.width = w
	r.log("lineWidth=%g", w)
}
