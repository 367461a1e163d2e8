package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/driver"
	"github.com/vovakirdan/starfield/internal/random"
	"github.com/vovakirdan/starfield/internal/starfield"
	"github.com/vovakirdan/starfield/internal/surface"
	"github.com/vovakirdan/starfield/internal/surface/raster"
)

var (
	flagTicks    int
	flagDT       float64
	flagRealtime bool
	flagSurface  string
	flagBenchW   int
	flagBenchH   int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run headless and report timings",
	Long: `Run the simulation without a display and report how long ticks take,
how many lines were drawn and how many stars were recycled.

By default every tick advances a fixed --dt, so runs with the same --seed are
reproducible. --realtime instead ticks on a wall-clock timer at --fps.

Surfaces:
  raster   - anti-aliased rasterizer, one pixel per unit (default)
  record   - records draw calls only, measuring the simulation alone

Examples:
  starfield bench
  starfield bench --ticks 5000 --seed 1 --preset dense
  starfield bench --surface record --index grid
  starfield bench --realtime --ticks 90`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagTicks, "ticks", 300, "Number of ticks to run")
	benchCmd.Flags().Float64Var(&flagDT, "dt", 1.0/30, "Seconds per tick (ignored with --realtime)")
	benchCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick on a wall-clock timer at --fps")
	benchCmd.Flags().StringVar(&flagSurface, "surface", "raster", "Drawing surface: raster or record")
	benchCmd.Flags().IntVar(&flagBenchW, "width", 800, "Viewport width")
	benchCmd.Flags().IntVar(&flagBenchH, "height", 600, "Viewport height")
	benchCmd.Flags().String("index", "", "Pair index override: brute or grid")
}

// benchStats accumulates per-tick results.
type benchStats struct {
	ticks    int
	lines    int
	recycled int
	maxLines int
}

func (s *benchStats) add(res core.StepResult) {
	s.ticks++
	s.lines += res.Lines
	s.recycled += res.Recycled
	s.maxLines = max(s.maxLines, res.Lines)
}

func runBench(cmd *cobra.Command, _ []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	if flagDT < 0 {
		return fmt.Errorf("--dt must not be negative, got %g", flagDT)
	}
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if idx, _ := cmd.Flags().GetString("index"); idx != "" {
		cfg.Index.Kind = idx
	}
	params, idx, err := cfg.Scene()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	vp := core.NewViewport(0, 0, float64(flagBenchW), float64(flagBenchH))
	sim := starfield.New(params, vp, random.New(seed))
	sim.SetIndex(idx)

	var dst surface.Surface
	var rec *surface.Recorder
	switch flagSurface {
	case "raster":
		dst = raster.New(flagBenchW, flagBenchH, 1)
	case "record":
		rec = surface.NewRecorder()
		dst = rec
	default:
		return fmt.Errorf("unknown surface %q (want raster or record)", flagSurface)
	}

	logger.Info("bench starting", "ticks", flagTicks, "stars", sim.Len(), "index", cfg.Index.Kind,
		"surface", flagSurface, "seed", seed, "realtime", flagRealtime)

	var stats benchStats
	onFrame := func(res core.StepResult) {
		stats.add(res)
		if rec != nil {
			rec.Reset()
		}
	}

	start := time.Now()
	if flagRealtime {
		drv := driver.New(sim, dst, nil)
		drv.SetMaxDT(cfg.Timing.MaxDT)
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		period := time.Second / time.Duration(cfg.Timing.TickRate)
		err := drv.Run(ctx, period, func(res core.StepResult) {
			onFrame(res)
			if stats.ticks >= flagTicks {
				cancel()
			}
		})
		if err != nil && ctx.Err() == nil {
			return err
		}
	} else {
		drv := driver.New(sim, dst, fixedStep(time.Duration(flagDT*float64(time.Second))))
		for range flagTicks {
			onFrame(drv.Tick())
		}
	}
	elapsed := time.Since(start)

	perTick := elapsed / time.Duration(stats.ticks)
	logger.Debug("bench finished", "elapsed", elapsed)
	fmt.Fprintf(cmd.OutOrStdout(),
		"ticks:      %d\nstars:      %d\nelapsed:    %s\nper tick:   %s\nlines/tick: %.1f avg, %d max\nrecycled:   %d\n",
		stats.ticks, sim.Len(), elapsed, perTick,
		float64(stats.lines)/float64(stats.ticks), stats.maxLines, stats.recycled)
	return nil
}

// fixedStep returns a clock that moves forward by step on every reading,
// so each driver tick sees exactly step seconds.
func fixedStep(step time.Duration) driver.Clock {
	now := time.Unix(0, 0)
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}
