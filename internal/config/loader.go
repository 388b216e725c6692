package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.honeyrun/config.yaml -> ./configs/honeyrun.yaml -> embedded default
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/honeyrun.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults, so a partial file only
// overrides the keys it names, then validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the config as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks that the config describes a playable field.
func (c Config) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, errors.New("field dimensions must be positive"))
	}
	if len(c.Field.Lanes) == 0 {
		errs = append(errs, errors.New("field.lanes must not be empty"))
	}
	if len(c.Spawn.XOffsets) == 0 {
		errs = append(errs, errors.New("spawn.x_offsets must not be empty"))
	}
	for _, off := range c.Spawn.XOffsets {
		if off < 0 || off > c.Field.Width {
			errs = append(errs, fmt.Errorf("spawn.x_offsets value %g is outside [0, field.width]", off))
		}
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 ||
		c.Bee.Width <= 0 || c.Bee.Height <= 0 ||
		c.Honey.Width <= 0 || c.Honey.Height <= 0 {
		errs = append(errs, errors.New("sprite dimensions must be positive"))
	}
	if c.Player.StepDivisor <= 0 || c.Bee.StepDivisor <= 0 || c.Honey.StepDivisor <= 0 {
		errs = append(errs, errors.New("step_divisor must be positive"))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, errors.New("player.lives must be positive"))
	}
	if c.Spawn.MaxBees < 0 || c.Spawn.MaxHoney < 0 {
		errs = append(errs, errors.New("spawn caps must not be negative"))
	}
	if c.Movers.BeePeriod < 0 || c.Movers.HoneyPeriod < 0 {
		errs = append(errs, errors.New("mover periods must not be negative"))
	}
	if c.SaveFile == "" {
		errs = append(errs, errors.New("save_file must not be empty"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".honeyrun", filename)
}
