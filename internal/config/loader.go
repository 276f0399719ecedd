package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

const fileName = "starship.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.starship/configs/starship.yaml -> ./configs/starship.yaml -> embedded default.
// Files are applied on top of the defaults, so partial files are fine.
// Only an explicit customPath may fail; implicit locations are skipped when
// missing or unparsable.
func Load(customPath string) (Config, error) {
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

	candidates := []string{userConfigPath(fileName), filepath.Join("configs", fileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig and validates the result.
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

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalid)
	case c.Ship.Width <= 0 || c.Ship.Height <= 0:
		return fmt.Errorf("%w: ship size must be positive", ErrInvalid)
	case c.Ship.Width > c.World.Width:
		return fmt.Errorf("%w: ship is wider than the world", ErrInvalid)
	case c.Meteorite.Width <= 0 || c.Meteorite.Height <= 0:
		return fmt.Errorf("%w: meteorite size must be positive", ErrInvalid)
	case c.Meteorite.Width > c.World.Width:
		return fmt.Errorf("%w: meteorite is wider than the world", ErrInvalid)
	case c.Ship.Speed < 0 || c.Meteorite.Speed <= 0:
		return fmt.Errorf("%w: meteorite speed must be positive and ship speed non-negative", ErrInvalid)
	case c.Ship.Lives < 1:
		return fmt.Errorf("%w: ship needs at least one life", ErrInvalid)
	case c.Controls.HoldTicks < 1:
		return fmt.Errorf("%w: controls.hold_ticks must be at least 1", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starship", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Lives = 5
		cfg.Ship.Speed *= 1.25
		cfg.Meteorite.Speed *= 0.75
	case DifficultyHard:
		cfg.Ship.Lives = 2
		cfg.Meteorite.Speed *= 1.5
		cfg.Progression.MeteoriteSpeedStep *= 2
	case DifficultyFixed:
		cfg.Progression.Enabled = false
	}
}
