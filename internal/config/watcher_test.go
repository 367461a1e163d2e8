package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func waitUpdate(t *testing.T, w *Watcher) Update {
	t.Helper()
	select {
	case u := <-w.Updates:
		return u
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a config update")
		return Update{}
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), fileName)
	writeFile(t, path, "stars:\n  count: 10\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer w.Stop()

	writeFile(t, path, "stars:\n  count: 42\nlinks:\n  threshold: 99\n")
	u := waitUpdate(t, w)
	if u.Err != nil {
		t.Fatalf("update error: %v", u.Err)
	}
	if u.Config.Stars.Count != 42 || u.Config.Links.Threshold != 99 {
		t.Errorf("reloaded %+v", u.Config)
	}
}

func TestWatcherReportsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), fileName)
	writeFile(t, path, "stars:\n  count: 10\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer w.Stop()

	writeFile(t, path, "links:\n  threshold: -1\n")
	u := waitUpdate(t, w)
	if !errors.Is(u.Err, ErrInvalid) {
		t.Errorf("update error = %v, expected ErrInvalid", u.Err)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, fileName)
	writeFile(t, path, "stars:\n  count: 10\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	writeFile(t, filepath.Join(dir, "notes.txt"), "hello")
	select {
	case u := <-w.Updates:
		t.Errorf("unexpected update %+v", u)
	case <-time.After(400 * time.Millisecond):
	}

	w.Stop()
	if _, ok := <-w.Updates; ok {
		t.Error("Updates should be closed after Stop")
	}
}
