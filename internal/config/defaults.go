package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// DefaultBricksConfig returns the built-in Bricks configuration.
// It mirrors defaults/bricks.yaml and is used if the embedded file is unreadable.
func DefaultBricksConfig() BricksConfig {
	const size = 20.0
	return BricksConfig{
		World: WorldConfig{
			Width:  512,
			Height: 824,
		},
		Player: PlayerConfig{
			Size:       size,
			JumpSpeedX: 2.0 * 100,
			JumpSpeedY: 4.0 * 100,
			Gravity:    -9.8 * 100,
		},
		Level: LevelConfig{
			BandRatio:     0.5,
			GateThickness: size,
			GapWidth:      size * 5,
			GapPadding:    0.2,
			GapRange:      0.6,
			BrickCount:    4,
			BrickSize:     size,
		},
		Camera: CameraConfig{
			DisplayRatio: 0.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bricks", "bricks_hard":
		return defaultBricksYAML
	default:
		return nil
	}
}
