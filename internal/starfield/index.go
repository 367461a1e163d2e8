package starfield

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/starfield/internal/core"
)

// PairIndex finds pairs of points closer than a threshold.
// Implementations must call visit for every pair i<j with 0 < d < threshold,
// ordered by i and then j, so the drawn output does not depend on the index.
type PairIndex interface {
	Pairs(pts []core.Point, threshold float64, visit func(i, j int, d float64))
}

// Index names accepted by NewPairIndex.
const (
	IndexBrute = "brute"
	IndexGrid  = "grid"
)

// NewPairIndex returns the index registered under name.
func NewPairIndex(name string) (PairIndex, error) {
	switch name {
	case "", IndexBrute:
		return BruteForce{}, nil
	case IndexGrid:
		return NewGrid(), nil
	default:
		return nil, fmt.Errorf("unknown pair index %q", name)
	}
}

// BruteForce checks every pair. O(n^2), fine for a couple hundred stars.
type BruteForce struct{}

// Pairs visits every close pair.
func (BruteForce) Pairs(pts []core.Point, threshold float64, visit func(i, j int, d float64)) {
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			d := pts[i].Dist(pts[j])
			if d > 0 && d < threshold {
				visit(i, j, d)
			}
		}
	}
}

type cellKey struct {
	X, Y int
}

// Grid buckets points into threshold-sized cells so only neighbouring
// cells are compared. Buffers are reused between calls.
type Grid struct {
	cells map[cellKey][]int
	near  []int
}

// NewGrid creates an empty grid index.
func NewGrid() *Grid {
	return &Grid{cells: make(map[cellKey][]int)}
}

func (g *Grid) key(p core.Point, size float64) cellKey {
	return cellKey{X: int(math.Floor(p.X / size)), Y: int(math.Floor(p.Y / size))}
}

// Pairs visits every close pair in the same order as BruteForce.
func (g *Grid) Pairs(pts []core.Point, threshold float64, visit func(i, j int, d float64)) {
	if threshold <= 0 {
		return
	}
	for k, bucket := range g.cells {
		g.cells[k] = bucket[:0]
	}
	for i, p := range pts {
		k := g.key(p, threshold)
		g.cells[k] = append(g.cells[k], i)
	}

	for i, p := range pts {
		k := g.key(p, threshold)
		g.near = g.near[:0]
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for _, j := range g.cells[cellKey{X: k.X + dx, Y: k.Y + dy}] {
					if j > i {
						g.near = append(g.near, j)
					}
				}
			}
		}
		sort.Ints(g.near)
		for _, j := range g.near {
			d := p.Dist(pts[j])
			if d > 0 && d < threshold {
				visit(i, j, d)
			}
		}
	}
}
