package starfield

import (
	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/surface"
)

// LinkStyle returns the alpha and width of the line between two stars d
// apart. ok is false when no line should be drawn: coincident stars and
// stars at or beyond the threshold.
func (p Params) LinkStyle(d float64) (alpha, width float64, ok bool) {
	if d <= 0 || d >= p.LineThreshold {
		return 0, 0, false
	}
	alpha = 1 - d/p.LineThreshold
	width = alpha*(p.MaxLineWidth-p.MinLineWidth) + p.MinLineWidth
	return alpha, width, true
}

// drawLinks strokes a line for every close pair and returns how many were drawn.
func (s *Simulator) drawLinks(dst surface.Surface) int {
	s.pts = s.pts[:0]
	for i := range s.stars {
		s.pts = append(s.pts, s.stars[i].Pos)
	}

	lines := 0
	s.index.Pairs(s.pts, s.params.LineThreshold, func(i, j int, d float64) {
		alpha, width, ok := s.params.LinkStyle(d)
		if !ok {
			return
		}
		drawLine(dst, s.pts[i], s.pts[j], width, s.params.LineColor.WithAlpha(alpha))
		lines++
	})
	return lines
}

func drawLine(dst surface.Surface, a, b core.Point, width float64, c core.RGBA) {
	dst.BeginPath()
	dst.MoveTo(a.X, a.Y)
	dst.LineTo(b.X, b.Y)
	dst.SetStrokeStyle(c)
	dst.SetLineWidth(width)
	dst.Stroke()
}
