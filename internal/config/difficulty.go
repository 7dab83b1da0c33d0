package config

import "math"

// DifficultyManager derives board and goal parameters from the difficulty
// level. In endless mode the level rises with score.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) for a score.
func (d *DifficultyManager) Level(score int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "score" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(score)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Colors returns the palette size for a new board at the given score.
func (d *DifficultyManager) Colors(base, score int) int {
	return base + int(math.Round(d.Level(score)*float64(d.cfg.Scaling.ExtraColors)))
}

// Target scales a campaign level's score target by the starting level.
func (d *DifficultyManager) Target(base int) int {
	return int(math.Round(float64(base) * (1.0 + d.initialLevel*d.cfg.Scaling.TargetFactor)))
}

// Moves shrinks a campaign level's move budget by the starting level.
// A budget never drops below 5 moves; 0 (unlimited) stays unlimited.
func (d *DifficultyManager) Moves(base int) int {
	if base <= 0 {
		return base
	}
	result := base - int(math.Round(d.initialLevel*float64(d.cfg.Scaling.MovePenalty)))
	if result < 5 {
		result = 5
	}
	return result
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
