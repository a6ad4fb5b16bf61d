// ballgame is a terminal arcade game: dodge the bouncing enemies and collect
// the stars.
//
// Usage:
//
//	ballgame play            - Play in the terminal
//	ballgame sim             - Run a headless simulation and print a report
//	ballgame config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log <path>        - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ballgame/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogPath  string
	flagLogLevel string

	// Shared by play, sim and config
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ballgame",
	Short: "Ball Game - dodge enemies and collect stars in your terminal",
	Long: `Ball Game is a small arcade game for the terminal. Steer the blue ball,
avoid the red ones bouncing around the field and pick up as many stars as
you can. Touching an enemy ends the game.

Available commands:
  play     - Play interactively
  sim      - Headless deterministic run
  config   - Print the effective configuration

Examples:
  ballgame play
  ballgame play --difficulty hard
  ballgame sim --seed 42 --ticks 36000
  ballgame config --difficulty easy`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the configuration from the --config and --difficulty flags.
func loadConfig() (config.BallGameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.BallGameConfig{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BallGameConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.BallGameConfig{}, err
	}
	return cfg, nil
}

// seed returns the --seed value, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
