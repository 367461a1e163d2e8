package starfield

import (
	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/random"
	"github.com/vovakirdan/starfield/internal/surface"
)

// Simulator owns the star collection and advances it one tick at a time.
// It is not safe for concurrent use.
type Simulator struct {
	params   Params
	viewport core.Viewport
	rng      *random.Rand
	index    PairIndex

	stars []Star
	next  []Star // scratch collection for the tick being built
	pts   []core.Point
}

// New creates a simulator and populates it with params.Count random stars.
func New(params Params, vp core.Viewport, rng *random.Rand) *Simulator {
	s := &Simulator{
		params: params,
		rng:    rng,
		index:  BruteForce{},
	}
	s.Reset(vp)
	return s
}

// Reset replaces every star with a fresh random one inside the viewport
// grown by the line threshold.
func (s *Simulator) Reset(vp core.Viewport) {
	s.viewport = vp
	s.stars = s.stars[:0]
	t := s.params.LineThreshold
	for i := 0; i < s.params.Count; i++ {
		pos := core.Pt(
			s.rng.Uniform(-t, vp.Width+t),
			s.rng.Uniform(-t, vp.Height+t),
		)
		s.stars = append(s.stars, NewStar(
			pos,
			s.params.Radius,
			s.rng.Uniform(s.params.MinSpeed, s.params.MaxSpeed),
			s.rng.Uniform(s.params.MinSpeed, s.params.MaxSpeed),
			s.params.StarColor,
		))
	}
}

// SetStars replaces the collection. The slice is copied.
func (s *Simulator) SetStars(stars []Star) {
	s.stars = append(s.stars[:0], stars...)
}

// Stars returns a copy of the current collection.
func (s *Simulator) Stars() []Star {
	return append([]Star(nil), s.stars...)
}

// Len returns the number of stars.
func (s *Simulator) Len() int {
	return len(s.stars)
}

// Params returns the current tunables.
func (s *Simulator) Params() Params {
	return s.params
}

// Tune swaps the tunables without touching existing stars.
// Count only takes effect on the next Reset.
func (s *Simulator) Tune(p Params) {
	s.params = p
}

// Viewport returns the area the simulation runs in.
func (s *Simulator) Viewport() core.Viewport {
	return s.viewport
}

// SetIndex swaps the pair search strategy.
func (s *Simulator) SetIndex(idx PairIndex) {
	if idx == nil {
		idx = BruteForce{}
	}
	s.index = idx
}

// Step advances every star by dt seconds, keeps them away from pointer
// (given in host coordinates), recycles stars that drifted too far out,
// and draws the links between close stars onto dst.
//
// Every star that exists when Step starts is advanced exactly once.
// Survivors keep their order and each recycled star contributes exactly one
// replacement, appended after the survivors and not advanced until the
// next tick.
func (s *Simulator) Step(dst surface.Surface, dt float64, pointer core.Point) core.StepResult {
	res := core.StepResult{DT: dt}
	cursor := core.Pt(pointer.X, pointer.Y-s.viewport.Top())
	margin := s.params.Margin()

	s.next = s.next[:0]
	for i := range s.stars {
		star := s.stars[i]
		star.Move(dt)
		star.Repel(cursor, s.params.RepulsionRadius)
		if star.OutOfBounds(s.viewport, margin) {
			res.Recycled++
			continue
		}
		s.next = append(s.next, star)
	}
	for i := 0; i < res.Recycled; i++ {
		s.next = append(s.next, s.spawn())
	}
	s.stars, s.next = s.next, s.stars

	res.Lines = s.drawLinks(dst)
	if s.params.DrawStars {
		for _, star := range s.stars {
			star.Render(dst)
		}
	}
	return res
}

// spawn creates a replacement star just outside one of the four edges.
//
// The placement is a two level pick: first between "along the top or
// bottom" and "along the left or right", then between the two bands of
// that axis. Every candidate is sampled before any pick is made, so the
// random sequence matches a run that evaluates all options eagerly.
// The per-edge density is not uniform: a band along a short edge packs the
// same probability into less length.
//
// Each band is sampled from the margin side, so a spawn may land on the
// margin line but never on the threshold line.
func (s *Simulator) spawn() Star {
	p := s.params
	vp := s.viewport.Local()
	near, far := p.LineThreshold, p.Margin()

	horizontal := core.Pt(
		s.rng.Uniform(vp.Left(), vp.Right()),
		random.Choice(s.rng, []float64{
			s.rng.Uniform(vp.Top()-far, vp.Top()-near),
			s.rng.Uniform(vp.Bottom()+far, vp.Bottom()+near),
		}),
	)
	vertical := core.Pt(
		random.Choice(s.rng, []float64{
			s.rng.Uniform(vp.Left()-far, vp.Left()-near),
			s.rng.Uniform(vp.Right()+far, vp.Right()+near),
		}),
		s.rng.Uniform(vp.Top(), vp.Bottom()),
	)

	star := NewStar(
		random.Choice(s.rng, []core.Point{horizontal, vertical}),
		p.Radius,
		s.rng.Uniform(p.MinSpeed, p.MaxSpeed),
		s.rng.Uniform(p.MinSpeed, p.MaxSpeed),
		p.StarColor,
	)
	// Single-candidate pick kept so the random sequence stays aligned.
	return random.Choice(s.rng, []Star{star})
}
