package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/clonkbot/void-runner-60f04d/internal/core"
	"github.com/clonkbot/void-runner-60f04d/internal/platform/tui"
	"github.com/clonkbot/void-runner-60f04d/internal/runner"
	"github.com/clonkbot/void-runner-60f04d/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the runner in the current terminal.

Controls:
  A/Left/H    - Move left
  D/Right/L   - Move right
  Space/W/Up  - Jump
  Enter/R     - Start / restart
  Tab         - Scoreboard (while idle or after game over)
  Q/Ctrl+C    - Quit

Examples:
  voidrunner play
  voidrunner play --config ./my-runner.yaml
  voidrunner play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	runner.SetConfigPath(flagConfig)

	// Probe terminal size; fall back to a sane default
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(runner.New(), store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
