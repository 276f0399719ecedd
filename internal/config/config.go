// Package config provides YAML-based game configuration loading and
// difficulty management for the starship game.
package config

// Config contains all tunable parameters of the game.
// Distances are in world units, speeds in world units per tick.
type Config struct {
	World       WorldConfig       `yaml:"world"`
	Ship        ShipConfig        `yaml:"ship"`
	Meteorite   MeteoriteConfig   `yaml:"meteorite"`
	Progression ProgressionConfig `yaml:"progression"`
	Assets      AssetsConfig      `yaml:"assets"`
	Controls    ControlsConfig    `yaml:"controls"`
}

// WorldConfig defines the logical canvas the simulation runs on.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player's starship.
type ShipConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Lives  int     `yaml:"lives"`
	Color  string  `yaml:"color"` // Used when no texture is loaded
}

// MeteoriteConfig defines the falling obstacles.
type MeteoriteConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Color  string  `yaml:"color"` // Used when no texture is loaded
}

// ProgressionConfig defines how speeds grow each time the field is cleared.
type ProgressionConfig struct {
	Enabled            bool    `yaml:"enabled"`
	ShipSpeedStep      float64 `yaml:"ship_speed_step"`
	MeteoriteSpeedStep float64 `yaml:"meteorite_speed_step"`
	MaxShipSpeed       float64 `yaml:"max_ship_speed"`      // <= 0 means uncapped
	MaxMeteoriteSpeed  float64 `yaml:"max_meteorite_speed"` // <= 0 means uncapped
}

// AssetsConfig locates the texture files.
type AssetsConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Dir        string `yaml:"dir"` // Empty means the built-in sprite set
	Background string `yaml:"background"`
	Ship       string `yaml:"ship"`
	Meteorite  string `yaml:"meteorite"`
}

// ControlsConfig tunes keyboard handling.
type ControlsConfig struct {
	// HoldTicks is how long a single steering key press keeps the ship
	// moving. Terminal autorepeat refreshes it while the key is held.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI string to a preset.
// The empty string is valid and means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, bool) {
	if s == "" {
		return "", true
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}
