package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/honeyrun/internal/storage"
)

func resetFlags(t *testing.T) {
	t.Helper()
	old := []string{flagConfig, flagDifficulty, flagSavePath}
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagSavePath = old[0], old[1], old[2]
	})
	t.Setenv("HOME", t.TempDir())
	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	flagDifficulty = ""
	flagSavePath = ""
}

func TestLoadConfigFlags(t *testing.T) {
	resetFlags(t)
	flagConfig = ""
	flagDifficulty = "hard"
	flagSavePath = "slot1"

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Player.Lives != 2 {
		t.Errorf("hard preset lives = %d, expected 2", cfg.Player.Lives)
	}
	if cfg.SaveFile != "slot1" {
		t.Errorf("save file = %q, expected the --save value", cfg.SaveFile)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name       string
		config     string
		difficulty string
	}{
		{"unknown difficulty", "", "nightmare"},
		{"missing config file", "missing", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetFlags(t)
			if tc.config == "" {
				flagConfig = ""
			}
			flagDifficulty = tc.difficulty
			if _, err := loadConfig(); err == nil {
				t.Error("loadConfig() should fail")
			}
		})
	}
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	resetFlags(t)
	flagConfig = ""

	var out bytes.Buffer
	configCmd.SetOut(&out)
	t.Cleanup(func() { configCmd.SetOut(nil) })

	if err := runConfig(configCmd, nil); err != nil {
		t.Fatalf("runConfig() failed: %v", err)
	}
	for _, key := range []string{"field:", "lanes:", "max_bees: 3", "save_file: gamestate"} {
		if !strings.Contains(out.String(), key) {
			t.Errorf("config output is missing %q:\n%s", key, out.String())
		}
	}
}

func TestRootAcceptsPlayFlags(t *testing.T) {
	oldNew, oldName := flagNew, flagName
	t.Cleanup(func() { flagNew, flagName = oldNew, oldName })

	if err := rootCmd.ParseFlags([]string{"--new", "--name", "grizzly"}); err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}
	if !flagNew || flagName != "grizzly" {
		t.Errorf("new = %v, name = %q after parsing root flags", flagNew, flagName)
	}
	if got := playerName(); got != "grizzly" {
		t.Errorf("playerName() = %q, expected the --name value", got)
	}
}

func TestScoresClear(t *testing.T) {
	oldDB, oldClear := flagDBPath, flagClear
	t.Cleanup(func() { flagDBPath, flagClear = oldDB, oldClear })
	flagDBPath = filepath.Join(t.TempDir(), "scores.db")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("bear", 12)
	store.Close()

	var out bytes.Buffer
	scoresCmd.SetOut(&out)
	t.Cleanup(func() { scoresCmd.SetOut(nil) })

	flagClear = true
	if err := runScores(scoresCmd, nil); err != nil {
		t.Fatalf("runScores() with --clear failed: %v", err)
	}
	if !strings.Contains(out.String(), "cleared") {
		t.Errorf("unexpected output %q", out.String())
	}

	flagClear = false
	out.Reset()
	if err := runScores(scoresCmd, nil); err != nil {
		t.Fatalf("runScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("scores should be empty after clearing:\n%s", out.String())
	}
}
