package config

import "math"

// DifficultyManager calculates the four-spawn probability based on progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	base         float64
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager. base is the
// probability used while progression is disabled.
func NewDifficultyManager(cfg DifficultyConfig, base float64) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		base:         base,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/moves.
func (d *DifficultyManager) Level(score int, moves int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "moves":
		progress = float64(moves) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// FourProbability returns the chance of spawning a 4 at the given progress.
func (d *DifficultyManager) FourProbability(score int, moves int) float64 {
	if !d.IsEnabled() {
		return d.base
	}
	lo := d.cfg.Scaling.MinFourProbability
	hi := d.cfg.Scaling.MaxFourProbability
	return lo + d.Level(score, moves)*(hi-lo)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
