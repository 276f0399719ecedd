package config

import (
	_ "embed"
)

//go:embed defaults/starship.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/starship.yaml and backs it up if the embed fails to parse.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:  800,
			Height: 450,
		},
		Ship: ShipConfig{
			X:      400,
			Y:      340,
			Width:  100,
			Height: 100,
			Speed:  6.0,
			Lives:  3,
			Color:  "blue",
		},
		Meteorite: MeteoriteConfig{
			Width:  150,
			Height: 150,
			Speed:  3.0,
			Color:  "brown",
		},
		Progression: ProgressionConfig{
			Enabled:            true,
			ShipSpeedStep:      0.5,
			MeteoriteSpeedStep: 0.25,
			MaxShipSpeed:       20,
			MaxMeteoriteSpeed:  15,
		},
		Assets: AssetsConfig{
			Enabled:    true,
			Background: "images/bg.txt",
			Ship:       "images/ship.txt",
			Meteorite:  "images/meteor.txt",
		},
		Controls: ControlsConfig{
			HoldTicks: 8,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
