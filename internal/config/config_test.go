package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg CoreDefenseConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultCoreDefenseConfig() {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, DefaultCoreDefenseConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		body     string
		wantBase float64
		wantAtk  float64
	}{
		{"yaml", "cd.yaml", "difficulty:\n  base: 2.0\ncore:\n  atk: 12\n", 2.0, 12},
		{"yml", "cd.yml", "difficulty:\n  base: 1.5\n", 1.5, 10},
		{"toml", "cd.toml", "[difficulty]\nbase = 3.0\n\n[core]\natk = 7.0\n", 3.0, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Difficulty.Base != tt.wantBase {
				t.Errorf("base = %v, want %v", cfg.Difficulty.Base, tt.wantBase)
			}
			if cfg.Core.Atk != tt.wantAtk {
				t.Errorf("atk = %v, want %v", cfg.Core.Atk, tt.wantAtk)
			}
			// untouched sections keep their defaults
			if cfg.Shop != DefaultCoreDefenseConfig().Shop {
				t.Errorf("shop section lost defaults: %+v", cfg.Shop)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	ini := filepath.Join(dir, "cd.ini")
	if err := os.WriteFile(ini, []byte("base=1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(ini); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(.ini) error = %v, want ErrUnsupportedFormat", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("core: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultCoreDefenseConfig() {
		t.Error("expected embedded defaults with no config files present")
	}

	local := filepath.Join(work, "configs")
	if err := os.MkdirAll(local, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(local, fileName), []byte("difficulty:\n  base: 1.1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Difficulty.Base != 1.1 {
		t.Errorf("local config not picked up: base = %v", cfg.Difficulty.Base)
	}

	user := filepath.Join(home, ".coredefense", "configs")
	if err := os.MkdirAll(user, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(user, fileName), []byte("difficulty:\n  base: 1.7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Difficulty.Base != 1.7 {
		t.Errorf("user config should win over local: base = %v", cfg.Difficulty.Base)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		wantBase float64
		wantRamp float64
	}{
		{DifficultyEasy, 1.0, 0.35},
		{DifficultyNormal, 1.0, 0.5},
		{DifficultyHard, 1.25, 0.5},
		{DifficultyFixed, 1.0, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultCoreDefenseConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Difficulty.Base != tt.wantBase || cfg.Difficulty.RampAmount != tt.wantRamp {
				t.Errorf("difficulty = %+v", cfg.Difficulty)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("HARD"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(HARD) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
