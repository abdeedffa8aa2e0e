package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Span.Velocity != 3.0 {
		t.Errorf("expected velocity 3, got %f", cfg.Span.Velocity)
	}
	if cfg.Span.Frequency <= 0 {
		t.Error("frequency should be positive")
	}
	if cfg.Trace.Samples != 100 {
		t.Errorf("expected 100 trace samples, got %d", cfg.Trace.Samples)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "span.yaml")

	cfg := DefaultConfig()
	cfg.Span.Frequency = 2.35
	cfg.Span.Mass = 12500

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Span.Frequency != 2.35 {
		t.Errorf("expected frequency 2.35, got %f", loaded.Span.Frequency)
	}
	if loaded.Span.Mass != 12500 {
		t.Errorf("expected mass 12500, got %f", loaded.Span.Mass)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("steel-light")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Span.Frequency != 2.8 {
		t.Errorf("expected frequency 2.8, got %f", cfg.Span.Frequency)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestToSpan(t *testing.T) {
	cfg := DefaultConfig()
	span := cfg.ToSpan()
	if err := span.Validate(); err != nil {
		t.Fatalf("default config should produce a valid span, got %v", err)
	}
	if span.Length != cfg.Span.Length {
		t.Errorf("length mismatch: %f vs %f", span.Length, cfg.Span.Length)
	}
}

func TestPresetsValidate(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.ToSpan().Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}
