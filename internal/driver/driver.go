// Package driver turns wall-clock time and pointer input into simulation
// ticks. Hosts own the scheduling; the driver owns timing and the pointer.
package driver

import (
	"context"
	"time"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/starfield"
	"github.com/vovakirdan/starfield/internal/surface"
)

// Clock returns the current time. Tests inject a fake one.
type Clock func() time.Time

// Driver advances a simulator once per Tick. Not safe for concurrent use.
type Driver struct {
	sim   *starfield.Simulator
	dst   surface.Surface
	clock Clock

	last    time.Time
	pointer core.Point
	maxDT   float64
	ticks   uint64
}

// New creates a driver. A nil clock means time.Now.
func New(sim *starfield.Simulator, dst surface.Surface, clock Clock) *Driver {
	if clock == nil {
		clock = time.Now
	}
	return &Driver{
		sim:   sim,
		dst:   dst,
		clock: clock,
		last:  clock(),
	}
}

// SetMaxDT caps the seconds a single tick may cover. 0 disables the cap,
// which is the default: a long pause is applied in one step.
func (d *Driver) SetMaxDT(maxDT float64) {
	if maxDT < 0 {
		maxDT = 0
	}
	d.maxDT = maxDT
}

// MovePointer records the pointer in host coordinates.
func (d *Driver) MovePointer(x, y float64) {
	d.pointer = core.Pt(x, y)
}

// Pointer returns the last recorded pointer position.
func (d *Driver) Pointer() core.Point {
	return d.pointer
}

// Ticks returns how many ticks have run.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Retarget swaps the surface and restarts the clock, e.g. after a resize.
func (d *Driver) Retarget(dst surface.Surface) {
	d.dst = dst
	d.last = d.clock()
}

// Tick clears the surface, advances the simulation by the time elapsed
// since the previous tick and draws the new frame.
func (d *Driver) Tick() core.StepResult {
	now := d.clock()
	dt := now.Sub(d.last).Seconds()
	d.last = now
	if dt < 0 {
		dt = 0
	}
	if d.maxDT > 0 && dt > d.maxDT {
		dt = d.maxDT
	}

	vp := d.sim.Viewport()
	d.dst.ClearRect(0, 0, vp.Width, vp.Height)
	res := d.sim.Step(d.dst, dt, d.pointer)
	d.ticks++
	return res
}

// Run ticks every period until ctx is cancelled. onFrame, if set, receives
// every result on the calling goroutine.
func (d *Driver) Run(ctx context.Context, period time.Duration, onFrame func(core.StepResult)) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	d.last = d.clock()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			res := d.Tick()
			if onFrame != nil {
				onFrame(res)
			}
		}
	}
}
