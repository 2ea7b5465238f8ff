package progression

import "github.com/ideaforge/forge/internal/domain"

// Level classifier: a pure function of the tier counters and the total.
// It is a ladder evaluated from highest to lowest, recomputed fresh from
// the full history on every call — never stored.

// Level thresholds. Master is volume-only; the middle rungs compound a
// total floor with a per-tier floor.
const (
	masterTotal  = 50
	seniorTotal  = 25
	seniorCount  = 8
	juniorTotal  = 15
	juniorCount  = 5
	traineeTotal = 10
	traineeCount = 3
)

// ClassifyLevel returns the highest tier whose compound threshold is met.
func ClassifyLevel(total int, perTier map[domain.Tier]int) domain.Tier {
	switch {
	case total >= masterTotal:
		return domain.TierMaster
	case total >= seniorTotal && perTier[domain.TierSenior] >= seniorCount:
		return domain.TierSenior
	case total >= juniorTotal && perTier[domain.TierJunior] >= juniorCount:
		return domain.TierJunior
	case total >= traineeTotal && perTier[domain.TierTrainee] >= traineeCount:
		return domain.TierTrainee
	default:
		return domain.TierStudent
	}
}

// LevelFromHistory classifies directly from a work history.
func LevelFromHistory(history []domain.CompletedWork) domain.Tier {
	perTier, total := TierCounts(history)
	return ClassifyLevel(total, perTier)
}
