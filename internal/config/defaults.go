package config

import (
	_ "embed"
)

//go:embed defaults/ballgame.yaml
var defaultBallGameYAML []byte

// DefaultBallGameConfig returns the built-in configuration.
func DefaultBallGameConfig() BallGameConfig {
	return BallGameConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Size:  64,
			Speed: 500,
		},
		Enemy: EnemyConfig{
			Size:         64,
			Speed:        200,
			InitialCount: 4,
			SpawnPeriod:  5.0,
			SpawnRetries: 100,
			AvoidFactor:  2.0,
		},
		Star: StarConfig{
			Size:         30,
			InitialCount: 10,
			SpawnPeriod:  1.0,
		},
		Session: SessionConfig{
			PlayerLabel: "Player",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBallGameYAML
}
