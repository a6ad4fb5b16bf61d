package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ballgame/internal/ballgame"
	"github.com/vovakirdan/tui-ballgame/internal/core"
	"github.com/vovakirdan/tui-ballgame/internal/logging"
	"github.com/vovakirdan/tui-ballgame/internal/platform/headless"
)

var (
	flagTicks   int
	flagMaxHold int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI. A random-walk pilot steers the player
and starts a new game after every game over. With a fixed --seed the run is
fully reproducible.

Examples:
  ballgame sim --seed 42
  ballgame sim --seed 7 --ticks 36000 --difficulty hard
  ballgame sim --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().IntVar(&flagMaxHold, "max-hold", 30, "Maximum ticks the pilot keeps one heading")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	s := seed()
	game, err := ballgame.New(cfg,
		core.FixedViewport{W: cfg.Window.Width, H: cfg.Window.Height},
		s,
		ballgame.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	rc.TickRate = flagFPS

	logger.Info("simulating", "seed", s, "ticks", flagTicks, "fps", rc.TickRate)
	report := headless.Run(game, headless.NewRandomWalk(s, flagMaxHold), flagTicks, rc.TickSeconds())

	fmt.Printf("Seed:      %d\n", s)
	report.Print(os.Stdout)
}
