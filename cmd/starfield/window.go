package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfield/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Run in a desktop window",
	Long: `Run the starfield in a resizable desktop window, one pixel per unit.

Controls:
  S          - Show or hide the stars themselves
  R          - New set of stars
  Q/Esc      - Quit

Examples:
  starfield window
  starfield window --width 1920 --height 1080 --preset dense`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 1280, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 800, "Initial window height in pixels")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr)

	watcher := startWatcher(logger)
	if watcher != nil {
		defer watcher.Stop()
	}

	return window.Run(window.Options{
		Config:  cfg,
		Preset:  preset,
		FPS:     fpsOverride(cmd),
		Runtime: runtimeConfig(cfg, flagWidth, flagHeight),
		Logger:  logger,
		Watcher: watcher,
	})
}
