package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the hardcoded Match-3 configuration. It matches
// the embedded YAML and is used when that fails to parse.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Size:   8,
			Colors: 5,
		},
		Scoring: ScoringConfig{
			PointsPerTile:   10,
			CascadeStep:     0.5,
			LineBonus:       50,
			AreaBonus:       75,
			ActivationBonus: 25,
			CrateBonus:      20,
		},
		Play: PlayConfig{
			MoveLimit:    0,
			HintDelay:    150, // 5 seconds at 30fps
			FlashTicks:   6,
			ReseedOnDead: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				ExtraColors:  2,
				TargetFactor: 0.5,
				MovePenalty:  5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
