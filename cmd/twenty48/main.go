// twenty48 is a terminal version of the 2048 sliding tile game.
//
// Usage:
//
//	twenty48 play             - Play in the current terminal
//	twenty48 scores           - Show high scores
//	twenty48 serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible tile spawns
//	--db <path>     - Set database path (default: ~/.twenty48/scores.db)
//	--config <path> - Path to custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"twenty48/internal/config"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "twenty48",
	Short: "2048 in your terminal",
	Long: `twenty48 is a terminal version of the 2048 sliding tile game.

Tilt the board to slide all tiles in one direction. Tiles with equal
values merge on contact and double. Reach the winning tile before the
board locks up.

Available commands:
  play     - Play in the current terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  twenty48 play
  twenty48 play --size 5 --difficulty hard
  twenty48 scores --size 4
  twenty48 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.twenty48/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads the game config, applies the difficulty preset
// and per-command overrides, then validates the result.
func loadGameConfig(difficulty string, size, target int) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if err := config.ApplyPreset(&cfg, config.Preset(difficulty)); err != nil {
		return config.Config{}, err
	}

	if size > 0 {
		cfg.Board.Size = size
	}
	if target > 0 {
		cfg.Board.WinningTile = target
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
