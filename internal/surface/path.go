package surface

import (
	"math"

	"github.com/vovakirdan/starfield/internal/core"
)

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Circle describes a subpath made of a single full arc.
type Circle struct {
	Center core.Point
	Radius float64
}

// Subpath is a polyline built from MoveTo/LineTo/Arc calls.
type Subpath struct {
	Points []core.Point

	// Circle is set when the subpath is exactly one full-turn arc, so
	// implementations with a native circle primitive can use it.
	Circle *Circle
}

// Path accumulates subpaths between BeginPath calls.
// Surfaces embed it to get canvas-style path semantics for free.
type Path struct {
	subpaths []Subpath
}

// Reset discards all subpaths.
func (p *Path) Reset() {
	p.subpaths = p.subpaths[:0]
}

// Subpaths returns the accumulated subpaths.
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(pt core.Point) {
	p.subpaths = append(p.subpaths, Subpath{Points: []core.Point{pt}})
}

// LineTo extends the current subpath, or starts one when there is none.
func (p *Path) LineTo(pt core.Point) {
	if len(p.subpaths) == 0 {
		p.MoveTo(pt)
		return
	}
	cur := &p.subpaths[len(p.subpaths)-1]
	cur.Points = append(cur.Points, pt)
	cur.Circle = nil
}

// Arc flattens an arc into the current subpath.
func (p *Path) Arc(c core.Point, radius, start, end float64) {
	sweep := end - start
	full := math.Abs(sweep) >= Tau
	if full {
		sweep = math.Copysign(Tau, sweep)
	}

	steps := arcSteps(radius, math.Abs(sweep))
	fresh := len(p.subpaths) == 0 || len(p.subpaths[len(p.subpaths)-1].Points) == 0
	if fresh {
		p.subpaths = append(p.subpaths, Subpath{})
	}
	cur := &p.subpaths[len(p.subpaths)-1]
	for i := 0; i <= steps; i++ {
		a := start + sweep*float64(i)/float64(steps)
		cur.Points = append(cur.Points, core.Pt(c.X+radius*math.Cos(a), c.Y+radius*math.Sin(a)))
	}

	if full && fresh {
		cur.Circle = &Circle{Center: c, Radius: radius}
	} else {
		cur.Circle = nil
	}
}

// arcSteps picks a segment count that keeps flattened arcs smooth.
func arcSteps(radius, sweep float64) int {
	n := int(math.Ceil(sweep / Tau * math.Max(12, radius*2)))
	if n < 1 {
		n = 1
	}
	return n
}
