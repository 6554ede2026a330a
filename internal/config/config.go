// Package config provides YAML-based game configuration loading and
// difficulty management for t2048.
package config

import (
	"fmt"
	"time"
)

// GameConfig contains all configuration for a 2048 game and its host.
type GameConfig struct {
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Theme      ThemeConfig      `yaml:"theme"`
	Storage    StorageConfig    `yaml:"storage"`
	SSH        SSHConfig        `yaml:"ssh"`
}

// RulesConfig defines the game rules.
type RulesConfig struct {
	WinTile         int     `yaml:"win_tile"`
	FourProbability float64 `yaml:"four_probability"` // Chance a spawned tile is a 4
}

// ThemeConfig maps tile values to color names ("yellow", "orange", ...).
// Values missing from the map fall back to the built-in palette.
type ThemeConfig struct {
	TileColors map[int]string `yaml:"tile_colors"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig defines the remote play server.
type SSHConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleMinutes int    `yaml:"idle_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleMinutes) * time.Minute
}

// DifficultyConfig defines the difficulty progression system.
// For 2048 difficulty is the chance of a 4 spawning instead of a 2.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the range of the four-spawn probability.
type ScalingConfig struct {
	MinFourProbability float64 `yaml:"min_four_probability"`
	MaxFourProbability float64 `yaml:"max_four_probability"`
}

// Validate checks that the rules are playable.
func (c GameConfig) Validate() error {
	w := c.Rules.WinTile
	if w < 4 || w&(w-1) != 0 {
		return fmt.Errorf("config: win_tile %d must be a power of two >= 4", w)
	}
	if p := c.Rules.FourProbability; p < 0 || p > 1 {
		return fmt.Errorf("config: four_probability %.2f out of range [0, 1]", p)
	}
	s := c.Difficulty.Scaling
	if c.Difficulty.Enabled && (s.MinFourProbability < 0 || s.MaxFourProbability > 1 || s.MinFourProbability > s.MaxFourProbability) {
		return fmt.Errorf("config: four-probability scaling [%.2f, %.2f] is invalid", s.MinFourProbability, s.MaxFourProbability)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means "use the config as is".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
