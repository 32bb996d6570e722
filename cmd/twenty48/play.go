package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"twenty48/internal/core"
	"twenty48/internal/platform/tui"
	"twenty48/internal/storage"
)

var (
	flagSize       int
	flagTarget     int
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Tilt the board
  R                - New game
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  classic - Standard 2048 spawn odds (10% fours)
  easy    - Fewer fours (5%)
  normal  - Same as classic
  hard    - More fours (18%)

Examples:
  twenty48 play
  twenty48 play --size 5
  twenty48 play --target 1024 --difficulty easy
  twenty48 play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size N for an NxN board (overrides config)")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Winning tile value (overrides config)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: classic, easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig(flagDifficulty, flagSize, flagTarget)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Probe terminal size, fall back to defaults
	rt := core.DefaultRuntimeConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.Seed = flagSeed

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, rt, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
