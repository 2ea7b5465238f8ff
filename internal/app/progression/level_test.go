package progression

import (
	"testing"

	"github.com/ideaforge/forge/internal/domain"
)

func TestClassifyLevel(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		perTier map[domain.Tier]int
		want    domain.Tier
	}{
		{"empty", 0, nil, domain.TierStudent},
		{"volume without tier depth", 20, map[domain.Tier]int{domain.TierStudent: 20}, domain.TierStudent},
		{"trainee threshold", 10, map[domain.Tier]int{domain.TierTrainee: 3}, domain.TierTrainee},
		{"trainee total without count", 10, map[domain.Tier]int{domain.TierTrainee: 2}, domain.TierStudent},
		{"junior threshold", 15, map[domain.Tier]int{domain.TierJunior: 5}, domain.TierJunior},
		{"junior count without total", 14, map[domain.Tier]int{domain.TierJunior: 10}, domain.TierStudent},
		{"senior threshold", 25, map[domain.Tier]int{domain.TierSenior: 8}, domain.TierSenior},
		{"senior count without total", 24, map[domain.Tier]int{domain.TierSenior: 20}, domain.TierStudent},
		{"master is volume only", 50, map[domain.Tier]int{domain.TierStudent: 50}, domain.TierMaster},
		{"senior beats junior when both met", 30, map[domain.Tier]int{domain.TierSenior: 8, domain.TierJunior: 5}, domain.TierSenior},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyLevel(tc.total, tc.perTier); got != tc.want {
				t.Errorf("ClassifyLevel(%d, %v) = %s, want %s", tc.total, tc.perTier, got, tc.want)
			}
		})
	}
}

func TestLevelFromHistory(t *testing.T) {
	history := make([]domain.CompletedWork, 0, 15)
	for i := 0; i < 10; i++ {
		history = append(history, tieredWork(baseMonday.AddDate(0, 0, i), domain.TierStudent))
	}
	for i := 0; i < 5; i++ {
		history = append(history, tieredWork(baseMonday.AddDate(0, 0, i), domain.TierJunior))
	}
	if got := LevelFromHistory(history); got != domain.TierJunior {
		t.Errorf("LevelFromHistory = %s, want junior", got)
	}
}
