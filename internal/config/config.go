// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for the ball game.
package config

import (
	"errors"
	"fmt"
)

// BallGameConfig contains all tunables of the simulation.
type BallGameConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Star    StarConfig    `yaml:"star"`
	Session SessionConfig `yaml:"session"`
}

// WindowConfig defines the logical playfield in playfield units.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Size  float64 `yaml:"size"`  // Sprite diameter
	Speed float64 `yaml:"speed"` // Units per second
}

// EnemyConfig defines enemy parameters and spawn policy.
type EnemyConfig struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`
	InitialCount int     `yaml:"initial_count"`
	SpawnPeriod  float64 `yaml:"spawn_period"`  // Seconds between timed spawns
	SpawnRetries int     `yaml:"spawn_retries"` // Placement attempts before dropping a spawn
	AvoidFactor  float64 `yaml:"avoid_factor"`  // Minimum player distance as a multiple of Size
}

// StarConfig defines collectible parameters.
type StarConfig struct {
	Size         float64 `yaml:"size"`
	InitialCount int     `yaml:"initial_count"`
	SpawnPeriod  float64 `yaml:"spawn_period"`
}

// SessionConfig defines score bookkeeping parameters.
type SessionConfig struct {
	PlayerLabel string `yaml:"player_label"` // Label recorded in the high-score history
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every value is usable by the simulation.
func (c BallGameConfig) Validate() error {
	checks := []struct {
		ok   bool
		name string
	}{
		{c.Window.Width > 0, "window.width must be positive"},
		{c.Window.Height > 0, "window.height must be positive"},
		{c.Player.Size > 0, "player.size must be positive"},
		{c.Player.Speed >= 0, "player.speed must not be negative"},
		{c.Enemy.Size > 0, "enemy.size must be positive"},
		{c.Enemy.Speed >= 0, "enemy.speed must not be negative"},
		{c.Enemy.InitialCount >= 0, "enemy.initial_count must not be negative"},
		{c.Enemy.SpawnPeriod > 0, "enemy.spawn_period must be positive"},
		{c.Enemy.SpawnRetries > 0, "enemy.spawn_retries must be positive"},
		{c.Enemy.AvoidFactor >= 0, "enemy.avoid_factor must not be negative"},
		{c.Star.Size > 0, "star.size must be positive"},
		{c.Star.InitialCount >= 0, "star.initial_count must not be negative"},
		{c.Star.SpawnPeriod > 0, "star.spawn_period must be positive"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, chk.name)
		}
	}
	return nil
}
