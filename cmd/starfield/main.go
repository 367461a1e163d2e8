// starfield draws drifting stars linked by fading lines that shy away from
// the pointer.
//
// Usage:
//
//	starfield [run]         - Run in the terminal (default)
//	starfield window        - Run in a desktop window
//	starfield bench         - Run headless and report timings
//	starfield config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30, or timing.tick_rate from the config)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--config <path>     - Use this config file instead of searching
//	--preset <name>     - Density preset: sparse, default, dense
//	--log <path>        - Write logs to a file (terminal mode)
//	--debug             - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfield/internal/config"
	"github.com/vovakirdan/starfield/internal/core"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
	flagPreset string
	flagLog    string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfield",
	Short: "Starfield - drifting stars linked by fading lines",
	Long: `Starfield animates a field of slowly drifting stars. Stars closer than a
threshold are linked by lines that grow brighter and thicker as they approach,
and the pointer pushes nearby stars away.

Available commands:
  run      - Run in the terminal (default)
  window   - Run in a desktop window
  bench    - Run headless and report timings
  config   - Print the effective configuration

Examples:
  starfield
  starfield --preset dense
  starfield window --width 1280 --height 800
  starfield bench --ticks 1000
  starfield config > ~/.starfield/starfield.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTerminal,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second), overrides timing.tick_rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Density preset: sparse, default, dense")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Log file (terminal mode logs nowhere by default)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "starfield",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the config, applies the preset and the --fps override,
// and validates the result.
func loadConfig(cmd *cobra.Command) (config.Config, config.Preset, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyPreset(&cfg, preset)
	config.ApplyTickRate(&cfg, fpsOverride(cmd))
	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, preset, nil
}

// fpsOverride returns the --fps value when it was given, or 0.
func fpsOverride(cmd *cobra.Command) int {
	if !cmd.Flags().Changed("fps") {
		return 0
	}
	return flagFPS
}

// runtimeConfig builds the host parameters for a w x h host.
func runtimeConfig(cfg config.Config, w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
	}
}

// startWatcher watches the active config file. It returns nil when the
// embedded default is in use or the watch cannot be set up.
func startWatcher(logger *log.Logger) *config.Watcher {
	path := config.Resolve(flagConfig)
	if path == "" {
		logger.Debug("using embedded config, live reload disabled")
		return nil
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		logger.Warn("live reload disabled", "err", err)
		return nil
	}
	if err := w.Start(); err != nil {
		logger.Warn("live reload disabled", "err", err)
		return nil
	}
	logger.Debug("watching config", "path", w.Path)
	return w
}
