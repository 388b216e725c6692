// Package config provides YAML-based game configuration loading and
// difficulty presets for honeyrun.
package config

import "time"

// Config contains all configuration for the bear game.
type Config struct {
	Field    FieldConfig  `yaml:"field"`
	Player   PlayerConfig `yaml:"player"`
	Bee      SpriteConfig `yaml:"bee"`
	Honey    SpriteConfig `yaml:"honey"`
	Spawn    SpawnConfig  `yaml:"spawn"`
	Movers   MoverConfig  `yaml:"movers"`
	SaveFile string       `yaml:"save_file"`

	// LegacyAxisOrder reads bee and honey save records as y;x, the way the
	// first version of the game did.
	LegacyAxisOrder bool `yaml:"legacy_axis_order"`
}

// FieldConfig defines the playing field in pixels.
type FieldConfig struct {
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Lanes  []float64 `yaml:"lanes"` // y coordinates bees and honey may occupy
}

// PlayerConfig defines the bear.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Lives       int     `yaml:"lives"`
	StepDivisor float64 `yaml:"step_divisor"` // step = size / divisor
}

// SpriteConfig defines a moving bee or honey pot.
type SpriteConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StepDivisor float64 `yaml:"step_divisor"`
}

// SpawnConfig defines the spawn policy.
type SpawnConfig struct {
	MaxBees  int       `yaml:"max_bees"`
	MaxHoney int       `yaml:"max_honey"`
	XOffsets []float64 `yaml:"x_offsets"` // spawn x = offset + sprite width
}

// MoverConfig defines how often the background movers run.
// A zero period disables the automatic mover.
type MoverConfig struct {
	BeePeriod   time.Duration `yaml:"bee_period"`
	HoneyPeriod time.Duration `yaml:"honey_period"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy gives more lives and slower movers, hard the opposite.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Movers.BeePeriod = scalePeriod(cfg.Movers.BeePeriod, 1.5)
		cfg.Movers.HoneyPeriod = scalePeriod(cfg.Movers.HoneyPeriod, 1.5)
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Movers.BeePeriod = scalePeriod(cfg.Movers.BeePeriod, 0.7)
		cfg.Movers.HoneyPeriod = scalePeriod(cfg.Movers.HoneyPeriod, 0.7)
	}
}

func scalePeriod(d time.Duration, factor float64) time.Duration {
	if d <= 0 {
		return d
	}
	scaled := time.Duration(float64(d) * factor)
	if scaled < time.Millisecond {
		scaled = time.Millisecond
	}
	return scaled
}
