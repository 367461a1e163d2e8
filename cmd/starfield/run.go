package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/starfield/internal/platform/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run in the terminal",
	Long: `Run the starfield in the terminal using braille characters.

Move the mouse to push stars away. The terminal must report mouse motion.

Controls:
  P/Space    - Pause
  S          - Show or hide the stars themselves
  R          - New set of stars
  ?          - Status line
  Q/Ctrl+C   - Quit

Examples:
  starfield run
  starfield run --preset sparse --fps 60
  starfield run --log /tmp/starfield.log --debug`,
	Args: cobra.NoArgs,
	RunE: runTerminal,
}

func runTerminal(cmd *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	watcher := startWatcher(logger)
	if watcher != nil {
		defer watcher.Stop()
	}

	if err := tui.Run(tui.Options{
		Config:  cfg,
		Preset:  preset,
		FPS:     fpsOverride(cmd),
		Runtime: runtimeConfig(cfg, width, height),
		Logger:  logger,
		Watcher: watcher,
	}); err != nil {
		return fmt.Errorf("error running starfield: %w", err)
	}
	return nil
}
