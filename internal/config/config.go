// Package config provides YAML-based configuration loading for the climber.
package config

// BricksConfig contains all tunables of the Bricks climber.
// World units are abstract pixels; the terminal view scales them to cells.
type BricksConfig struct {
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Level  LevelConfig  `yaml:"level"`
	Camera CameraConfig `yaml:"camera"`
}

// WorldConfig defines the logical screen size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player body and its jump physics.
type PlayerConfig struct {
	Size       float64 `yaml:"size"`
	JumpSpeedX float64 `yaml:"jump_speed_x"`
	JumpSpeedY float64 `yaml:"jump_speed_y"`
	Gravity    float64 `yaml:"gravity"` // Vertical acceleration, negative pulls down
}

// LevelConfig defines how each barrier segment is generated.
type LevelConfig struct {
	BandRatio     float64 `yaml:"band_ratio"`     // Segment height as a fraction of world height
	GateThickness float64 `yaml:"gate_thickness"` // Height of the gate rectangles
	GapWidth      float64 `yaml:"gap_width"`      // Width of the passable gap
	GapPadding    float64 `yaml:"gap_padding"`    // Fraction of width kept clear on the left of the gap centre range
	GapRange      float64 `yaml:"gap_range"`      // Fraction of width over which the gap centre is drawn
	BrickCount    int     `yaml:"brick_count"`
	BrickSize     float64 `yaml:"brick_size"`
}

// CameraConfig defines how the camera follows the player.
type CameraConfig struct {
	DisplayRatio float64 `yaml:"display_ratio"` // Player height above camera bottom, as a fraction of world height
}

// DifficultyPreset represents a named set of static tunables.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyBricksPreset modifies the config based on a difficulty preset.
// Presets only change generation constants; there is no progression.
func ApplyBricksPreset(cfg *BricksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Level.BrickCount = 2
		cfg.Level.GapWidth = cfg.Player.Size * 6
	case DifficultyHard:
		cfg.Level.BrickCount = 6
		cfg.Level.GapWidth = cfg.Player.Size * 4
	}
}
