// Package config provides YAML-based game configuration loading and
// difficulty management for Match-3.
package config

import "fmt"

// Match3Config contains all configuration for the Match-3 game.
type Match3Config struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Play       PlayConfig       `yaml:"play"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board used by endless mode.
// Campaign levels carry their own size and colors.
type BoardConfig struct {
	Size   int `yaml:"size"`
	Colors int `yaml:"colors"`
}

// ScoringConfig defines how cleared tiles turn into points.
type ScoringConfig struct {
	PointsPerTile   int     `yaml:"points_per_tile"`
	CascadeStep     float64 `yaml:"cascade_step"` // Multiplier added per chained wave
	LineBonus       int     `yaml:"line_bonus"`   // Creating a line booster
	AreaBonus       int     `yaml:"area_bonus"`   // Creating an area booster
	ActivationBonus int     `yaml:"activation_bonus"`
	CrateBonus      int     `yaml:"crate_bonus"` // Per broken crate
}

// PlayConfig defines game flow parameters.
type PlayConfig struct {
	MoveLimit    int  `yaml:"move_limit"`     // Endless mode budget; 0 means unlimited
	HintDelay    int  `yaml:"hint_delay"`     // Idle ticks before a hint appears; 0 disables
	FlashTicks   int  `yaml:"flash_ticks"`    // How long refilled cells stay highlighted
	ReseedOnDead bool `yaml:"reseed_on_dead"` // Reshuffle when no move is left
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during endless play.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraColors  int     `yaml:"extra_colors"`  // Colors added at max difficulty
	TargetFactor float64 `yaml:"target_factor"` // Campaign target multiplier added at max difficulty
	MovePenalty  int     `yaml:"move_penalty"`  // Campaign moves removed at max difficulty
}

// Validate checks values the game cannot run with.
func (c Match3Config) Validate() error {
	if c.Board.Size < 3 {
		return fmt.Errorf("board.size must be at least 3, got %d", c.Board.Size)
	}
	if c.Board.Colors < 3 {
		return fmt.Errorf("board.colors must be at least 3, got %d", c.Board.Colors)
	}
	if c.Scoring.PointsPerTile <= 0 {
		return fmt.Errorf("scoring.points_per_tile must be positive, got %d", c.Scoring.PointsPerTile)
	}
	if c.Play.MoveLimit < 0 {
		return fmt.Errorf("play.move_limit must not be negative, got %d", c.Play.MoveLimit)
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

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
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
