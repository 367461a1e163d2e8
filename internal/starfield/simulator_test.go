package starfield

import (
	"math"
	"testing"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/random"
	"github.com/vovakirdan/starfield/internal/surface"
)

// farPointer is far enough from any test star to never repel it.
var farPointer = core.Pt(-1e6, -1e6)

func newTestSim(t *testing.T, count int) *Simulator {
	t.Helper()
	p := DefaultParams()
	p.Count = count
	return New(p, core.NewViewport(0, 0, 800, 600), random.New(42))
}

func TestResetPopulatesInsideThreshold(t *testing.T) {
	sim := newTestSim(t, DefaultStarCount)

	if sim.Len() != DefaultStarCount {
		t.Fatalf("Len() = %d, expected %d", sim.Len(), DefaultStarCount)
	}
	for i, s := range sim.Stars() {
		if s.Pos.X < -170 || s.Pos.X > 970 || s.Pos.Y < -170 || s.Pos.Y > 770 {
			t.Errorf("star %d spawned at %v, outside the viewport grown by the threshold", i, s.Pos)
		}
		if s.SpeedX < DefaultMinSpeed || s.SpeedX >= DefaultMaxSpeed {
			t.Errorf("star %d speedx %f outside [%f, %f)", i, s.SpeedX, DefaultMinSpeed, DefaultMaxSpeed)
		}
		if s.Anchor != s.Pos {
			t.Errorf("star %d should start on its anchor", i)
		}
		if s.Radius <= 0 {
			t.Errorf("star %d has non-positive radius %f", i, s.Radius)
		}
	}
}

func TestStepZeroDTLeavesStarsInPlace(t *testing.T) {
	sim := newTestSim(t, 50)
	before := sim.Stars()

	sim.Step(surface.NewRecorder(), 0, farPointer)

	after := sim.Stars()
	for i := range before {
		if before[i].Pos != after[i].Pos || before[i].Anchor != after[i].Anchor {
			t.Errorf("star %d moved with dt=0: %v -> %v", i, before[i].Pos, after[i].Pos)
		}
	}
}

func TestStepSingleStarOnPointer(t *testing.T) {
	// viewport 800x600, star at (0,0) at rest, pointer at (0,0), dt=0.1
	sim := newTestSim(t, 0)
	sim.SetStars([]Star{NewStar(core.Pt(0, 0), 8, 0, 0, core.White)})

	res := sim.Step(surface.NewRecorder(), 0.1, core.Pt(0, 0))

	stars := sim.Stars()
	if len(stars) != 1 || stars[0].Pos != core.Pt(0, 0) {
		t.Errorf("star should stay at (0,0), got %v", stars)
	}
	if res.Recycled != 0 || res.Lines != 0 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestStepSubtractsViewportTop(t *testing.T) {
	p := DefaultParams()
	p.Count = 0
	sim := New(p, core.NewViewport(0, 100, 800, 600), random.New(1))
	sim.SetStars([]Star{NewStar(core.Pt(400, 300), 8, 0, 0, core.White)})

	// Host pointer at y=350 is y=250 inside the viewport, 50 units above the star.
	sim.Step(surface.NewRecorder(), 0, core.Pt(400, 350))

	got := sim.Stars()[0].Pos
	if !near(got.X, 400, 1e-9) || !near(got.Y, 400, 1e-9) {
		t.Errorf("pos = %v, expected (400, 400)", got)
	}
}

func TestStepRepulsionIsContinuous(t *testing.T) {
	sim := newTestSim(t, 0)
	// Anchor keeps pulling the star into the pointer; repulsion wins every tick.
	sim.SetStars([]Star{NewStar(core.Pt(400, 300), 8, 0, 0, core.White)})
	pointer := core.Pt(420, 300)

	for i := 0; i < 20; i++ {
		sim.Step(surface.NewRecorder(), 1.0/30, pointer)
		d := sim.Stars()[0].Pos.Dist(pointer)
		if d < DefaultRepulsionRadius-1e-6 {
			t.Fatalf("tick %d: star at distance %f, inside the repulsion radius", i, d)
		}
	}
}

func TestStepKeepsCollectionSize(t *testing.T) {
	sim := newTestSim(t, DefaultStarCount)
	rec := surface.NewRecorder()

	total := 0
	for i := 0; i < 200; i++ {
		rec.Reset()
		// Long ticks push many stars out so recycling actually happens.
		res := sim.Step(rec, 1.5, core.Pt(400, 300))
		total += res.Recycled
		if sim.Len() != DefaultStarCount {
			t.Fatalf("tick %d: Len() = %d, expected %d", i, sim.Len(), DefaultStarCount)
		}
	}
	if total == 0 {
		t.Error("expected some stars to be recycled")
	}
}

func TestStepVisitsEveryStarOnceAcrossRemoval(t *testing.T) {
	sim := newTestSim(t, 0)
	a := NewStar(core.Pt(2000, 300), 8, 0, 0, core.White) // already past the margin
	b := NewStar(core.Pt(100, 100), 8, 10, 0, core.White)
	c := NewStar(core.Pt(200, 200), 8, 0, 20, core.White)
	sim.SetStars([]Star{a, b, c})

	const dt = 0.25
	res := sim.Step(surface.NewRecorder(), dt, farPointer)

	if res.Recycled != 1 {
		t.Fatalf("Recycled = %d, expected 1", res.Recycled)
	}
	stars := sim.Stars()
	if len(stars) != 3 {
		t.Fatalf("Len() = %d, expected 3", len(stars))
	}

	wantB, wantC := b, c
	wantB.Move(dt)
	wantC.Move(dt)
	if stars[0] != wantB {
		t.Errorf("star after the removed one was not advanced exactly once: got %+v, expected %+v", stars[0], wantB)
	}
	if stars[1] != wantC {
		t.Errorf("last survivor was not advanced exactly once: got %+v, expected %+v", stars[1], wantC)
	}
	if stars[2].Anchor != stars[2].Pos {
		t.Error("replacement should not be advanced on the tick it spawns")
	}
}

func TestRecycledStarSpawnsInEdgeBand(t *testing.T) {
	sim := newTestSim(t, 0)
	vp := sim.Viewport()
	const tn, tf = 170.0, 250.0

	edges := make(map[string]int)
	for i := 0; i < 400; i++ {
		sim.SetStars([]Star{NewStar(core.Pt(-5000, -5000), 8, 0, 0, core.White)})
		sim.Step(surface.NewRecorder(), 0, farPointer)

		s := sim.Stars()[0]
		x, y := s.Pos.X, s.Pos.Y
		switch {
		case x >= 0 && x <= vp.Width && y >= -tf && y < -tn:
			edges["top"]++
		case x >= 0 && x <= vp.Width && y > vp.Height+tn && y <= vp.Height+tf:
			edges["bottom"]++
		case y >= 0 && y <= vp.Height && x >= -tf && x < -tn:
			edges["left"]++
		case y >= 0 && y <= vp.Height && x > vp.Width+tn && x <= vp.Width+tf:
			edges["right"]++
		default:
			t.Fatalf("spawn %d at %v is not in any edge band", i, s.Pos)
		}

		if s.Radius != DefaultStarRadius || s.Color != core.White {
			t.Errorf("spawn %d should use default radius and colour, got %f %v", i, s.Radius, s.Color)
		}
		if s.SpeedX < DefaultMinSpeed || s.SpeedX >= DefaultMaxSpeed ||
			s.SpeedY < DefaultMinSpeed || s.SpeedY >= DefaultMaxSpeed {
			t.Errorf("spawn %d speed (%f, %f) outside the speed range", i, s.SpeedX, s.SpeedY)
		}
	}

	for _, e := range []string{"top", "bottom", "left", "right"} {
		if edges[e] == 0 {
			t.Errorf("no star spawned along the %s edge in 400 spawns", e)
		}
	}
}

// zeroSource makes every draw return 0, the lowest value Float64 can give.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

func TestSpawnNeverLandsOnThresholdLine(t *testing.T) {
	sim := New(DefaultParams(), core.NewViewport(0, 0, 800, 600), random.FromSource(zeroSource{}))
	sim.SetStars([]Star{NewStar(core.Pt(-5000, -5000), 8, 0, 0, core.White)})
	sim.Step(surface.NewRecorder(), 0, farPointer)

	// Every pick takes the first candidate: the top band at the left edge.
	s := sim.Stars()[0]
	if s.Pos.X != 0 || s.Pos.Y != -DefaultParams().Margin() {
		t.Errorf("spawn at %v, expected (0, %g) on the margin line", s.Pos, -DefaultParams().Margin())
	}
	if s.Pos.Y >= -DefaultLineThreshold {
		t.Errorf("spawn at y=%g is not beyond the threshold line", s.Pos.Y)
	}
}

func TestRecycledStarCarriesDefaultsNotRemovedStar(t *testing.T) {
	sim := newTestSim(t, 0)
	odd := NewStar(core.Pt(5000, 0), 30, 0, 0, core.RGBA{R: 255, A: 1})
	sim.SetStars([]Star{odd})

	sim.Step(surface.NewRecorder(), 0, farPointer)

	s := sim.Stars()[0]
	if s.Radius != DefaultStarRadius {
		t.Errorf("radius = %f, expected default %f", s.Radius, DefaultStarRadius)
	}
	if s.Color != core.White {
		t.Errorf("colour = %v, expected default white", s.Color)
	}
}

func TestStepDeterminism(t *testing.T) {
	run := func() []Star {
		sim := newTestSim(t, 60)
		for i := 0; i < 120; i++ {
			sim.Step(surface.NewRecorder(), 0.2, core.Pt(float64(i*5), 300))
		}
		return sim.Stars()
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at star %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestStepDrawsStarsWhenEnabled(t *testing.T) {
	p := DefaultParams()
	p.Count = 5
	p.DrawStars = true
	sim := New(p, core.NewViewport(0, 0, 800, 600), random.New(9))

	rec := surface.NewRecorder()
	sim.Step(rec, 0, farPointer)
	if len(rec.Discs) != 5 {
		t.Errorf("expected 5 discs, got %d", len(rec.Discs))
	}

	sim.Tune(DefaultParams())
	rec.Reset()
	sim.Step(rec, 0, farPointer)
	if len(rec.Discs) != 0 {
		t.Errorf("stars should not be drawn by default, got %d discs", len(rec.Discs))
	}
}

func TestUnclampedLargeDT(t *testing.T) {
	sim := newTestSim(t, 0)
	sim.SetStars([]Star{NewStar(core.Pt(400, 300), 8, 1, 0, core.White)})

	// A 3 second pause is applied in one step, overshooting the anchor.
	sim.Step(surface.NewRecorder(), 3, farPointer)

	s := sim.Stars()[0]
	if !near(s.Anchor.X, 403, eps) {
		t.Errorf("anchor.X = %f, expected 403", s.Anchor.X)
	}
	if !near(s.Pos.X, 409, eps) {
		t.Errorf("pos.X = %f, expected 409", s.Pos.X)
	}
	if math.IsNaN(s.Pos.Y) {
		t.Error("pos.Y is NaN")
	}
}
