package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := DefaultConfig()

	if cfg.Field.Width != def.Field.Width || cfg.Field.Height != def.Field.Height {
		t.Errorf("field = %vx%v, expected %vx%v", cfg.Field.Width, cfg.Field.Height, def.Field.Width, def.Field.Height)
	}
	if len(cfg.Field.Lanes) != len(def.Field.Lanes) {
		t.Errorf("lanes = %v, expected %v", cfg.Field.Lanes, def.Field.Lanes)
	}
	if cfg.Spawn.MaxBees != 3 || cfg.Spawn.MaxHoney != 4 {
		t.Errorf("caps = %d/%d, expected 3/4", cfg.Spawn.MaxBees, cfg.Spawn.MaxHoney)
	}
	if cfg.Movers.BeePeriod != 7*time.Millisecond || cfg.Movers.HoneyPeriod != 10*time.Millisecond {
		t.Errorf("periods = %v/%v, expected 7ms/10ms", cfg.Movers.BeePeriod, cfg.Movers.HoneyPeriod)
	}
	if cfg.SaveFile != "gamestate" {
		t.Errorf("save_file = %q, expected gamestate", cfg.SaveFile)
	}
}

func TestLoadCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "player:\n  lives: 7\nmovers:\n  bee_period: 0s\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Movers.BeePeriod != 0 {
		t.Errorf("bee_period = %v, expected 0", cfg.Movers.BeePeriod)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Width != 80 || cfg.Movers.HoneyPeriod != 10*time.Millisecond {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field:\n  lanes: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "lanes") {
		t.Errorf("Load() with empty lanes should fail validation, got %v", err)
	}
}

func TestValidateSpawnOffsets(t *testing.T) {
	tests := []struct {
		name    string
		offsets []float64
		wantErr bool
	}{
		{"defaults", DefaultConfig().Spawn.XOffsets, false},
		{"field edge", []float64{0, 800}, false},
		{"past field width", []float64{20, 801}, true},
		{"negative", []float64{-1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Spawn.XOffsets = tc.offsets
			err := cfg.Validate()
			if tc.wantErr && (err == nil || !strings.Contains(err.Error(), "x_offsets")) {
				t.Errorf("Validate() = %v, expected an x_offsets error", err)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		beePeriod time.Duration
	}{
		{DifficultyEasy, 5, 10500 * time.Microsecond},
		{DifficultyNormal, 3, 7 * time.Millisecond},
		{DifficultyHard, 2, 4900 * time.Microsecond},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Player.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Player.Lives, tc.lives)
			}
			if cfg.Movers.BeePeriod != tc.beePeriod {
				t.Errorf("bee_period = %v, expected %v", cfg.Movers.BeePeriod, tc.beePeriod)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg.Movers.BeePeriod != 7*time.Millisecond {
		t.Errorf("bee_period = %v after round trip", cfg.Movers.BeePeriod)
	}
}
