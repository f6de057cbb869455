package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("BETSLIDER_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Slider.MaxDistance != 150 {
		t.Errorf("max_distance = %v, want 150", cfg.Slider.MaxDistance)
	}
	if cfg.UI.CellWidth != 10 || cfg.UI.CellHeight != 20 {
		t.Errorf("cell = %dx%d, want 10x20", cfg.UI.CellWidth, cfg.UI.CellHeight)
	}
	if cfg.UI.TrackWidth != 500 || cfg.UI.TrackHeight != 120 {
		t.Errorf("track = %dx%d, want 500x120", cfg.UI.TrackWidth, cfg.UI.TrackHeight)
	}
	if cfg.UI.FrameInterval != 100*time.Millisecond {
		t.Errorf("frame_interval = %v", cfg.UI.FrameInterval)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log.level = %q", cfg.Log.Level)
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[slider]
max_distance = 120

[ui]
cell_width = 8
frame_interval = "250ms"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BETSLIDER_LOG_LEVEL", "debug")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Slider.MaxDistance != 120 {
		t.Errorf("max_distance = %v, want 120", cfg.Slider.MaxDistance)
	}
	if cfg.UI.CellWidth != 8 {
		t.Errorf("cell_width = %d, want 8", cfg.UI.CellWidth)
	}
	if cfg.UI.CellHeight != 20 {
		t.Errorf("cell_height = %d, want default 20", cfg.UI.CellHeight)
	}
	if cfg.UI.FrameInterval != 250*time.Millisecond {
		t.Errorf("frame_interval = %v", cfg.UI.FrameInterval)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want env override", cfg.Log.Level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[slider]\nmax_distance = -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for negative max_distance")
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[slider\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Slider.MaxDistance = 90
	cfg.UI.FrameInterval = 50 * time.Millisecond
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Slider.MaxDistance != 90 || got.UI.FrameInterval != 50*time.Millisecond {
		t.Fatalf("round trip = %+v", got)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	bad := cfg
	bad.UI.CellWidth = 0
	if bad.Validate() == nil {
		t.Error("zero cell width should fail")
	}
	bad = cfg
	bad.UI.TrackWidth = 5
	if bad.Validate() == nil {
		t.Error("track narrower than a cell should fail")
	}
	bad = cfg
	bad.UI.FrameInterval = 0
	if bad.Validate() == nil {
		t.Error("zero frame interval should fail")
	}
}
