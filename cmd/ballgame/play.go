package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ballgame/internal/ballgame"
	"github.com/vovakirdan/tui-ballgame/internal/core"
	"github.com/vovakirdan/tui-ballgame/internal/logging"
	"github.com/vovakirdan/tui-ballgame/internal/platform/audio"
	"github.com/vovakirdan/tui-ballgame/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD  - Move (menus: select)
  Enter        - Confirm
  Space/P      - Pause / resume
  M            - Back to the main menu
  Esc/Q        - Quit
  G / N        - Jump straight to the game / main menu

Difficulty options:
  easy   - Slower, fewer enemies that spawn less often
  normal - Default settings
  hard   - Faster enemies, more of them, spawning more often

Examples:
  ballgame play
  ballgame play --difficulty hard --mute
  ballgame play --config ./my-ballgame.yaml --log ballgame.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal; try 'ballgame sim'")
		os.Exit(1)
	}
	if err := playGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs an interactive session. Every resource it opens is closed
// before it returns, on the error paths too.
func playGame() error {
	logger, closeLog, err := logging.OpenFile(flagLogPath, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("loading config", "error", err)
		return fmt.Errorf("loading config: %w", err)
	}

	game, err := ballgame.New(cfg,
		core.FixedViewport{W: cfg.Window.Width, H: cfg.Window.Height},
		seed(),
		ballgame.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	var sound core.SoundPlayer = core.NopSoundPlayer{}
	if !flagMute {
		player, closeAudio := audio.OpenOrSilent(logger)
		defer closeAudio()
		sound = player
	}

	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
		logger.Debug("terminal size", "width", w, "height", h)
	}
	logger.Info("starting", "fps", flagFPS, "window", fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height))

	if err := tui.Run(game, tui.Options{TickRate: flagFPS, Sound: sound, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
