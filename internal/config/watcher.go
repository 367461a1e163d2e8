package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Update is a reloaded configuration, or the reason the reload failed.
type Update struct {
	Config Config
	Err    error
}

// Watcher reloads a config file whenever it changes on disk.
// The parent directory is watched so editors that replace the file on save
// are picked up too.
type Watcher struct {
	Path    string
	Updates <-chan Update // Read-only external channel

	updates chan Update // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for the given config file.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	ch := make(chan Update, 4)
	return &Watcher{
		Path:    abs,
		Updates: ch,
		updates: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}, nil
}

// Start begins watching the config file for changes.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.Path, err)
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Updates channel.
func (w *Watcher) Stop() {
	w.watcher.Close() //nolint:errcheck // best-effort
	<-w.done          // Wait for loop to exit
	close(w.updates)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: editors emit several events per save.
	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case now := <-ticker.C:
			if !pending.IsZero() && now.Sub(pending) >= debounce {
				pending = time.Time{}
				w.emit()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

func (w *Watcher) emit() {
	cfg, err := LoadFile(w.Path)
	if err == nil {
		err = cfg.Validate()
	}
	u := Update{Config: cfg, Err: err}

	// Drop the oldest pending update rather than block the loop.
	select {
	case w.updates <- u:
	default:
		select {
		case <-w.updates:
		default:
		}
		w.updates <- u
	}
}
