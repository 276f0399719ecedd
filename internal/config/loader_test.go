package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded defaults drifted from DefaultConfig():\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ship:\n  lives: 7\nmeteorite:\n  speed: 9.5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Ship.Lives != 7 {
		t.Errorf("Ship.Lives = %d, expected 7", cfg.Ship.Lives)
	}
	if cfg.Meteorite.Speed != 9.5 {
		t.Errorf("Meteorite.Speed = %f, expected 9.5", cfg.Meteorite.Speed)
	}
	// Untouched fields keep their defaults
	if cfg.World.Width != 800 || cfg.Ship.Width != 100 {
		t.Errorf("defaults not preserved: world %v, ship width %v", cfg.World.Width, cfg.Ship.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero world", func(c *Config) { c.World.Width = 0 }},
		{"negative ship", func(c *Config) { c.Ship.Height = -1 }},
		{"ship wider than world", func(c *Config) { c.Ship.Width = 900 }},
		{"meteorite wider than world", func(c *Config) { c.Meteorite.Width = 801 }},
		{"stalled meteorites", func(c *Config) { c.Meteorite.Speed = 0 }},
		{"no lives", func(c *Config) { c.Ship.Lives = 0 }},
		{"no hold", func(c *Config) { c.Controls.HoldTicks = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid, got %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	base := DefaultConfig()

	easy := DefaultConfig()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Ship.Lives <= base.Ship.Lives || easy.Meteorite.Speed >= base.Meteorite.Speed {
		t.Errorf("easy preset should add lives and slow meteorites: %+v", easy)
	}

	hard := DefaultConfig()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Ship.Lives >= base.Ship.Lives || hard.Meteorite.Speed <= base.Meteorite.Speed {
		t.Errorf("hard preset should remove lives and speed up meteorites: %+v", hard)
	}

	normal := DefaultConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should leave the config untouched")
	}

	fixed := DefaultConfig()
	ApplyPreset(&fixed, DifficultyFixed)
	if fixed.Progression.Enabled {
		t.Error("fixed preset should disable progression")
	}
	if step := fixed.ShipRamp().Next(6); step != 6 {
		t.Errorf("fixed ramp should not change speed, got %f", step)
	}
}

func TestParsePreset(t *testing.T) {
	for _, p := range Presets {
		got, ok := ParsePreset(string(p))
		if !ok || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, ok)
		}
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("unknown preset should be rejected")
	}
	if got, ok := ParsePreset(""); !ok || got != "" {
		t.Error("empty preset should be accepted as no preset")
	}
}

func TestSpeedRamp(t *testing.T) {
	tests := []struct {
		name     string
		ramp     SpeedRamp
		cur      float64
		expected float64
	}{
		{"uncapped", SpeedRamp{Step: 0.5}, 6, 6.5},
		{"below cap", SpeedRamp{Step: 0.5, Max: 10}, 6, 6.5},
		{"hits cap", SpeedRamp{Step: 0.5, Max: 10}, 9.8, 10},
		{"already above cap", SpeedRamp{Step: 0.5, Max: 10}, 12, 12},
		{"zero step", SpeedRamp{}, 3, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ramp.Next(tc.cur); got != tc.expected {
				t.Errorf("Next(%f) = %f, expected %f", tc.cur, got, tc.expected)
			}
		})
	}
}
