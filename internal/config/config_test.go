package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Map != "logistic" {
		t.Errorf("expected map logistic, got %s", cfg.Map)
	}
	if cfg.RPoints < 1 {
		t.Error("r_points should be positive")
	}
	if cfg.Samples < 1 {
		t.Error("samples should be positive")
	}
	if cfg.RMin >= cfg.RMax {
		t.Error("default range should be non-empty")
	}
	if cfg.Render.DPI != DefaultDPI {
		t.Errorf("expected dpi %d, got %d", DefaultDPI, cfg.Render.DPI)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("logistic", "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.RMin != 2.8 {
		t.Errorf("expected r_min 2.8, got %f", cfg.RMin)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("logistic", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "classic")
	if cfg != nil {
		t.Error("expected nil for nonexistent map")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("logistic")
	if len(presets) == 0 {
		t.Error("expected presets for logistic")
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent map")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")

	cfg := DefaultConfig()
	cfg.Map = "tent"
	cfg.RMin = 1.0
	cfg.RMax = 2.0
	cfg.Workers = 8
	cfg.Render.Out = "tent.png"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Map != "tent" {
		t.Errorf("expected map tent, got %s", loaded.Map)
	}
	if loaded.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", loaded.Workers)
	}
	if loaded.Render.Out != "tent.png" {
		t.Errorf("expected tent.png, got %s", loaded.Render.Out)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
