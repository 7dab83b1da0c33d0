package match3

import (
	"math"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

// Score returns the points earned by an applied move.
//
// Wave i (starting at 0) pays cleared * PointsPerTile * (1 + i*CascadeStep),
// so chain reactions are worth more the deeper they go. Broken crates and
// created or fired boosters add flat bonuses.
func Score(out core.Outcome, s config.ScoringConfig) int {
	if !out.Applied {
		return 0
	}

	total := 0
	for i, w := range out.Resolution.Waves {
		mult := 1.0 + float64(i)*s.CascadeStep
		total += int(math.Round(float64(len(w.Cleared)*s.PointsPerTile) * mult))
		total += len(w.Broken) * s.CrateBonus
	}

	switch out.Created {
	case core.BoosterLine:
		total += s.LineBonus
	case core.BoosterArea:
		total += s.AreaBonus
	}
	if out.Activated != core.BoosterNone {
		total += s.ActivationBonus
	}

	return total
}
