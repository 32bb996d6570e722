// Package config provides YAML-based game configuration loading and
// difficulty presets for twenty48.
package config

import "fmt"

// Config contains all tunable game parameters.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
}

// BoardConfig defines the board geometry and win condition.
type BoardConfig struct {
	Size        int `yaml:"size"`         // Board dimension (N×N)
	WinningTile int `yaml:"winning_tile"` // Tile value that ends the game
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	FourChance float64 `yaml:"four_chance"` // Probability of a 4 instead of a 2 (0.0-1.0)
	StartTiles int     `yaml:"start_tiles"` // Tiles placed at the start of a game
}

// Validate checks the configuration for contract violations.
func (c Config) Validate() error {
	if c.Board.Size < 2 || c.Board.Size > 16 {
		return fmt.Errorf("config: board size %d out of range [2,16]", c.Board.Size)
	}
	if c.Board.WinningTile < 4 || c.Board.WinningTile&(c.Board.WinningTile-1) != 0 {
		return fmt.Errorf("config: winning tile %d must be a power of two >= 4", c.Board.WinningTile)
	}
	if c.Spawn.FourChance < 0 || c.Spawn.FourChance > 1 {
		return fmt.Errorf("config: four chance %g out of range [0,1]", c.Spawn.FourChance)
	}
	if c.Spawn.StartTiles < 1 || c.Spawn.StartTiles > c.Board.Size*c.Board.Size {
		return fmt.Errorf("config: start tiles %d out of range for a %dx%d board",
			c.Spawn.StartTiles, c.Board.Size, c.Board.Size)
	}
	return nil
}

// Preset is a named difficulty setting.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetEasy    Preset = "easy"
	PresetNormal  Preset = "normal"
	PresetHard    Preset = "hard"
)

// ApplyPreset adjusts the config for a difficulty preset. Unknown
// presets leave the config untouched and return an error.
func ApplyPreset(cfg *Config, preset Preset) error {
	switch preset {
	case "", PresetClassic, PresetNormal:
		cfg.Spawn.FourChance = 0.10
	case PresetEasy:
		cfg.Spawn.FourChance = 0.05
	case PresetHard:
		cfg.Spawn.FourChance = 0.18
	default:
		return fmt.Errorf("config: unknown difficulty preset %q", preset)
	}
	return nil
}
