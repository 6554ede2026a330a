package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default 2048 configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Rules: RulesConfig{
			WinTile:         2048,
			FourProbability: 0.10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				MinFourProbability: 0.05,
				MaxFourProbability: 0.25,
			},
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/scores.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleMinutes: 30,
		},
	}
}
