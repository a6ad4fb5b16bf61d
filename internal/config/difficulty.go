package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the enemy pressure of a config for a difficulty preset.
// Normal leaves the config untouched.
func ApplyPreset(cfg *BallGameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.Speed *= 0.75
		cfg.Enemy.SpawnPeriod *= 1.5
		if cfg.Enemy.InitialCount > 1 {
			cfg.Enemy.InitialCount--
		}
	case DifficultyHard:
		cfg.Enemy.Speed *= 1.25
		cfg.Enemy.SpawnPeriod *= 0.6
		cfg.Enemy.InitialCount += 2
	}
}
