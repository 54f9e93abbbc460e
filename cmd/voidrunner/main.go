// voidrunner is a three-lane endless runner for the terminal.
//
// Usage:
//
//	voidrunner               - Play (same as 'voidrunner play')
//	voidrunner play          - Play the game
//	voidrunner serve         - Start SSH server for remote play
//	voidrunner scores        - Show recorded high scores
//	voidrunner config        - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.voidrunner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clonkbot/void-runner-60f04d/internal/config"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "voidrunner",
	Short: "Void Runner - dodge obstacles in your terminal",
	Long: `Void Runner is a three-lane endless runner played in the terminal.
Crystals and spikes must be dodged by switching lanes; rings demand a
well-timed jump. One point per tick, until you hit something.

Running with no subcommand starts the game.

Examples:
  voidrunner
  voidrunner play --config ./my-runner.yaml
  voidrunner serve --ssh :2222
  voidrunner scores`,
	Run: runPlay,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Print the built-in default configuration to stdout.

Save it to ~/.voidrunner/configs/runner.yaml (or pass it via
'play --config') to tune physics, track geometry and clearances.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.GetDefaultYAML()))
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.voidrunner/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
