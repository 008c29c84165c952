package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBricks loads the Bricks configuration.
// Search order: customPath -> ~/.arcade/configs/bricks.yaml -> ./configs/bricks.yaml -> embedded default
//
// Files only need to mention the keys they override; everything else keeps
// the embedded default value.
func LoadBricks(customPath string) (BricksConfig, error) {
	cfg := embeddedBricks()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("bricks.yaml"), filepath.Join("configs", "bricks.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := cfg
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			continue
		}
		if fileCfg.Validate() != nil {
			continue
		}
		return fileCfg, nil
	}

	return cfg, nil
}

// ParseBricks decodes a YAML document on top of the embedded defaults and validates it.
func ParseBricks(data []byte) (BricksConfig, error) {
	cfg := embeddedBricks()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// embeddedBricks decodes the embedded YAML, falling back to the hardcoded default.
func embeddedBricks() BricksConfig {
	var cfg BricksConfig
	if err := yaml.Unmarshal(defaultBricksYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBricksConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports every constraint the configuration violates.
func (c BricksConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %g", c.Player.Size))
	}
	if c.Player.Size >= c.World.Width {
		errs = append(errs, fmt.Errorf("player size %g does not fit world width %g", c.Player.Size, c.World.Width))
	}
	if c.Player.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("gravity must pull down (negative), got %g", c.Player.Gravity))
	}
	if c.Player.JumpSpeedY <= 0 {
		errs = append(errs, fmt.Errorf("jump_speed_y must be positive, got %g", c.Player.JumpSpeedY))
	}
	if c.Player.JumpSpeedX < 0 {
		errs = append(errs, fmt.Errorf("jump_speed_x must not be negative, got %g", c.Player.JumpSpeedX))
	}
	if c.Level.BandRatio <= 0 {
		errs = append(errs, fmt.Errorf("band_ratio must be positive, got %g", c.Level.BandRatio))
	}
	if c.Level.GateThickness <= 0 {
		errs = append(errs, fmt.Errorf("gate_thickness must be positive, got %g", c.Level.GateThickness))
	}
	if c.Level.GapWidth <= c.Player.Size {
		errs = append(errs, fmt.Errorf("gap_width %g must exceed player size %g", c.Level.GapWidth, c.Player.Size))
	}
	if c.Level.GapWidth > c.World.Width {
		errs = append(errs, fmt.Errorf("gap_width %g exceeds world width %g", c.Level.GapWidth, c.World.Width))
	}
	if c.Level.GapPadding < 0 || c.Level.GapRange < 0 || c.Level.GapPadding+c.Level.GapRange > 1 {
		errs = append(errs, fmt.Errorf("gap_padding + gap_range must lie within [0, 1], got %g + %g", c.Level.GapPadding, c.Level.GapRange))
	}
	if c.Level.BrickCount < 0 {
		errs = append(errs, fmt.Errorf("brick_count must not be negative, got %d", c.Level.BrickCount))
	}
	if c.Level.BrickSize <= 0 {
		errs = append(errs, fmt.Errorf("brick_size must be positive, got %g", c.Level.BrickSize))
	}
	if c.Camera.DisplayRatio < 0 || c.Camera.DisplayRatio > 1 {
		errs = append(errs, fmt.Errorf("display_ratio must lie within [0, 1], got %g", c.Camera.DisplayRatio))
	}
	return errors.Join(errs...)
}
