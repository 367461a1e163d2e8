package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/starfield"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestDefaultParamsMatchSimulation(t *testing.T) {
	p, err := Default().Params()
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	if p != starfield.DefaultParams() {
		t.Errorf("Params() = %+v, expected %+v", p, starfield.DefaultParams())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative count", func(c *Config) { c.Stars.Count = -1 }},
		{"zero radius", func(c *Config) { c.Stars.Radius = 0 }},
		{"inverted speeds", func(c *Config) { c.Stars.MinSpeed, c.Stars.MaxSpeed = 10, -10 }},
		{"zero threshold", func(c *Config) { c.Links.Threshold = 0 }},
		{"inverted widths", func(c *Config) { c.Links.MinWidth, c.Links.MaxWidth = 5, 1 }},
		{"zero min width", func(c *Config) { c.Links.MinWidth = 0 }},
		{"negative repulsion", func(c *Config) { c.Cursor.RepulsionRadius = -1 }},
		{"negative margin", func(c *Config) { c.Recycle.ExtraMargin = -5 }},
		{"zero tick rate", func(c *Config) { c.Timing.TickRate = 0 }},
		{"negative max dt", func(c *Config) { c.Timing.MaxDT = -0.1 }},
		{"unknown index", func(c *Config) { c.Index.Kind = "octree" }},
		{"bad star colour", func(c *Config) { c.Stars.Color = "white" }},
		{"bad line colour", func(c *Config) { c.Links.Color = "#12" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestValidateAcceptsEdgeValues(t *testing.T) {
	cfg := Default()
	cfg.Stars.Count = 0
	cfg.Stars.MinSpeed, cfg.Stars.MaxSpeed = 5, 5
	cfg.Links.MinWidth, cfg.Links.MaxWidth = 2, 2
	cfg.Cursor.RepulsionRadius = 0
	cfg.Index.Kind = ""

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestParamsConvertsColours(t *testing.T) {
	cfg := Default()
	cfg.Links.Color = "#78c8ff"
	cfg.Stars.Draw = true

	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	if p.LineColor != (core.RGBA{R: 0x78, G: 0xc8, B: 0xff, A: 1}) {
		t.Errorf("LineColor = %v", p.LineColor)
	}
	if !p.DrawStars {
		t.Error("DrawStars should follow stars.draw")
	}
	if p.Margin() != 250 {
		t.Errorf("Margin() = %f, expected 250", p.Margin())
	}
}

func TestParamsRejectsBadColour(t *testing.T) {
	cfg := Default()
	cfg.Stars.Color = "nope"
	if _, err := cfg.Params(); err == nil {
		t.Error("expected an error for an unparsable colour")
	}
}

func TestPairIndex(t *testing.T) {
	cfg := Default()
	cfg.Index.Kind = "grid"
	idx, err := cfg.PairIndex()
	if err != nil {
		t.Fatalf("PairIndex() error: %v", err)
	}
	if _, ok := idx.(*starfield.Grid); !ok {
		t.Errorf("PairIndex() = %T, expected *starfield.Grid", idx)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starfield.yaml")
	writeFile(t, path, "links:\n  threshold: 120\n  color: \"#ff0000\"\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.Links.Threshold != 120 || cfg.Links.Color != "#ff0000" {
		t.Errorf("links = %+v, expected overrides", cfg.Links)
	}
	if cfg.Stars.Count != 180 || cfg.Links.MaxWidth != 4.5 || cfg.Timing.TickRate != 30 {
		t.Errorf("missing keys lost their defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom file")
	}

	broken := filepath.Join(dir, "broken.yaml")
	writeFile(t, broken, "stars: [this is not a map\n")
	if _, err := Load(broken); err == nil {
		t.Error("expected an error for an unparsable custom file")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, work)

	// Nothing on disk: embedded default.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected the embedded default, got %+v", cfg)
	}
	if got := Resolve(""); got != "" {
		t.Errorf("Resolve() = %q, expected embedded", got)
	}

	// Local configs directory.
	local := filepath.Join(work, "configs", fileName)
	writeFile(t, local, "stars:\n  count: 11\n")
	cfg, _ = Load("")
	if cfg.Stars.Count != 11 {
		t.Errorf("count = %d, expected 11 from ./configs", cfg.Stars.Count)
	}

	// User config wins over the local one.
	user := filepath.Join(home, ".starfield", fileName)
	writeFile(t, user, "stars:\n  count: 22\n")
	cfg, _ = Load("")
	if cfg.Stars.Count != 22 {
		t.Errorf("count = %d, expected 22 from the user directory", cfg.Stars.Count)
	}
	if got := Resolve(""); got != user {
		t.Errorf("Resolve() = %q, expected %q", got, user)
	}

	// A broken user file is skipped.
	writeFile(t, user, "stars: [\n")
	cfg, _ = Load("")
	if cfg.Stars.Count != 11 {
		t.Errorf("count = %d, expected fallback to ./configs", cfg.Stars.Count)
	}

	// Custom path wins over everything.
	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "stars:\n  count: 33\n")
	cfg, _ = Load(custom)
	if cfg.Stars.Count != 33 {
		t.Errorf("count = %d, expected 33 from the custom path", cfg.Stars.Count)
	}
}

func TestMarshalRoundTripsThroughLoad(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, PresetDense)

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !bytes.Contains(data, []byte("tick_rate: 30")) {
		t.Errorf("marshalled YAML lacks snake_case keys:\n%s", data)
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	writeFile(t, path, string(data))
	back, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if back != cfg {
		t.Errorf("reloaded %+v, expected %+v", back, cfg)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) }) //nolint:errcheck
}

func TestScene(t *testing.T) {
	cfg := Default()
	cfg.Index.Kind = "grid"
	params, idx, err := cfg.Scene()
	if err != nil {
		t.Fatalf("Scene() error: %v", err)
	}
	if params.LineThreshold != 170 || idx == nil {
		t.Errorf("Scene() = %+v, %T", params, idx)
	}

	cfg.Timing.TickRate = 0
	if _, _, err := cfg.Scene(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Scene() error = %v, expected ErrInvalid", err)
	}
}
