package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/honeyrun.yaml
var defaultYAML []byte

// DefaultConfig returns the default game configuration.
// It mirrors defaults/honeyrun.yaml and is the fallback when the embedded
// file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
			Lanes:  []float64{20, 130, 240, 350, 460},
		},
		Player: PlayerConfig{
			Width:       80,
			Height:      80,
			StartX:      20,
			StartY:      240,
			Lives:       3,
			StepDivisor: 4,
		},
		Bee: SpriteConfig{
			Width:       60,
			Height:      50,
			StepDivisor: 40,
		},
		Honey: SpriteConfig{
			Width:       50,
			Height:      50,
			StepDivisor: 40,
		},
		Spawn: SpawnConfig{
			MaxBees:  3,
			MaxHoney: 4,
			XOffsets: []float64{20, 200, 350, 500, 650, 770},
		},
		Movers: MoverConfig{
			BeePeriod:   7 * time.Millisecond,
			HoneyPeriod: 10 * time.Millisecond,
		},
		SaveFile: "gamestate",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
