package config

import (
	_ "embed"
)

//go:embed defaults/twenty48.yaml
var defaultYAML []byte

// Default returns the classic configuration: 4x4 board, 2048 winning
// tile, two starting tiles, 10% chance of spawning a 4.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:        4,
			WinningTile: 2048,
		},
		Spawn: SpawnConfig{
			FourChance: 0.10,
			StartTiles: 2,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
