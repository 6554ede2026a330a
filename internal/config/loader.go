package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const gameConfigFile = "t2048.yaml"

// LoadGame loads the 2048 configuration.
// Search order: customPath -> ~/.t2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
func LoadGame(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultGameConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseGame(data)
		if err != nil {
			return DefaultGameConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(gameConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseGame(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", gameConfigFile)); err == nil {
		if cfg, err := parseGame(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseGame(defaultGameYAML)
	if err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseGame decodes YAML on top of the hardcoded defaults and validates the result.
func parseGame(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "configs", filename)
}

// ApplyGamePreset modifies the config based on a difficulty preset.
// Easy and normal keep a constant four-spawn chance; hard ramps it up with the score.
func ApplyGamePreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = false
		cfg.Rules.FourProbability = 0.05
	case DifficultyNormal:
		cfg.Difficulty.Enabled = false
		cfg.Rules.FourProbability = 0.10
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Rules.FourProbability = 0.20
	}
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
