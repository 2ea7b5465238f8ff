package progression

import "github.com/ideaforge/forge/internal/domain"

// ─── Criteria Catalogs ───────────────────────────────────────────────────────
// Declarative definitions for both scopes. Loaded once at startup, never
// mutated; only evaluation results change as history grows. Ids are stable
// — renaming a definition must not change its id.

// AchievementCriteria returns the full achievement catalog.
func AchievementCriteria() []domain.Criterion {
	a := domain.ScopeAchievement
	return []domain.Criterion{
		// ── Volume ─────────────────────────────────────────────────────
		{
			ID: "first_idea", Name: "First Idea", Scope: a, Kind: domain.KindCount,
			Count: &domain.CountConfig{Required: 1},
		},
		{
			ID: "ten_ideas", Name: "Ten Down", Scope: a, Kind: domain.KindCount,
			Count: &domain.CountConfig{Required: 10},
		},
		{
			ID: "fifty_ideas", Name: "Half Century", Scope: a, Kind: domain.KindCount,
			Count: &domain.CountConfig{Required: 50},
		},

		// ── Graduation (tier-scoped counts with inheritance) ───────────
		{
			ID: "student_graduate", Name: "Student Graduate", Scope: a, Kind: domain.KindCount,
			Count: &domain.CountConfig{Required: 5, Tier: domain.TierStudent},
		},
		{
			ID: "trainee_graduate", Name: "Trainee Graduate", Scope: a, Kind: domain.KindCount,
			Count: &domain.CountConfig{Required: 8, Tier: domain.TierTrainee},
		},
		{
			ID: "junior_graduate", Name: "Junior Graduate", Scope: a, Kind: domain.KindCount,
			Count: &domain.CountConfig{Required: 12, Tier: domain.TierJunior},
		},
		{
			ID: "senior_graduate", Name: "Senior Graduate", Scope: a, Kind: domain.KindCount,
			Count: &domain.CountConfig{Required: 10, Tier: domain.TierSenior},
		},
		{
			ID: "master_path", Name: "Path to Mastery", Scope: a, Kind: domain.KindCount,
			Count: &domain.CountConfig{Required: 20, Tier: domain.TierMaster},
		},

		// ── Tier volume ────────────────────────────────────────────────
		{
			ID: "junior_ten", Name: "Junior League", Scope: a, Kind: domain.KindTierCount,
			TierCount: &domain.TierCountConfig{Tier: domain.TierJunior, Required: 10},
		},
		{
			ID: "senior_five", Name: "Heavy Lifting", Scope: a, Kind: domain.KindTierCount,
			TierCount: &domain.TierCountConfig{Tier: domain.TierSenior, Required: 5},
		},

		// ── Diversity ──────────────────────────────────────────────────
		{
			ID: "polyglot_3", Name: "Polyglot", Scope: a, Kind: domain.KindTagDiversity,
			Diversity: &domain.DiversityConfig{Dimension: domain.DimLanguages, Required: 3},
		},
		{
			ID: "polyglot_5", Name: "Tongue Twister", Scope: a, Kind: domain.KindTagDiversity,
			Diversity: &domain.DiversityConfig{Dimension: domain.DimLanguages, Required: 5},
		},
		{
			ID: "framework_explorer", Name: "Framework Explorer", Scope: a, Kind: domain.KindTagDiversity,
			Diversity: &domain.DiversityConfig{Dimension: domain.DimFrameworks, Required: 4},
		},
		{
			ID: "datastore_dabbler", Name: "Datastore Dabbler", Scope: a, Kind: domain.KindTagDiversity,
			Diversity: &domain.DiversityConfig{Dimension: domain.DimDatastores, Required: 2},
		},
		{
			ID: "go_specialist", Name: "Gopher", Scope: a, Kind: domain.KindTagDiversity,
			Diversity: &domain.DiversityConfig{
				Dimension: domain.DimLanguages, Required: 5, Candidates: []string{"Go"},
			},
		},
		{
			ID: "scripting_regular", Name: "Script Kid No More", Scope: a, Kind: domain.KindTagDiversity,
			Diversity: &domain.DiversityConfig{
				Dimension:  domain.DimLanguages,
				Required:   8,
				Candidates: []string{"Python", "JavaScript", "Ruby"},
			},
		},

		// ── Combinations ───────────────────────────────────────────────
		{
			ID: "fullstack_duo", Name: "Full-Stack Duo", Scope: a, Kind: domain.KindTagCombination,
			Combination: &domain.CombinationConfig{
				Languages:   []string{"JavaScript", "TypeScript"},
				FrameworksA: []string{"React", "Vue"},
				Required:    2,
			},
		},
		{
			ID: "mean_machine", Name: "MEAN Machine", Scope: a, Kind: domain.KindTagCombination,
			Combination: &domain.CombinationConfig{
				Languages:   []string{"JavaScript", "TypeScript"},
				FrameworksA: []string{"Express"},
				FrameworksB: []string{"Angular"},
				Datastores:  []string{"MongoDB"},
				Required:    3,
			},
		},
		{
			ID: "data_wrangler", Name: "Data Wrangler", Scope: a, Kind: domain.KindTagCombination,
			Combination: &domain.CombinationConfig{
				Languages:  []string{"Python"},
				Datastores: []string{"PostgreSQL", "MySQL"},
				Required:   3,
			},
		},

		// ── Stack coverage ─────────────────────────────────────────────
		{
			ID: "modern_web_stack", Name: "Modern Web", Scope: a, Kind: domain.KindStackExact,
			Stack: &domain.StackConfig{Stack: []string{"TypeScript", "React", "PostgreSQL"}},
		},
		{
			ID: "gopher_stack", Name: "Cloud Native", Scope: a, Kind: domain.KindStackExact,
			Stack: &domain.StackConfig{Stack: []string{"Go", "Gin", "Redis"}},
		},

		// ── Consistency ────────────────────────────────────────────────
		{
			ID: "streak_3", Name: "Warming Up", Scope: a, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubStreak, Required: 3},
		},
		{
			ID: "streak_7", Name: "Week Warrior", Scope: a, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubStreak, Required: 7},
		},
		{
			ID: "streak_30", Name: "Monthly Machine", Scope: a, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubStreak, Required: 30},
		},
		{
			ID: "weekly_grinder", Name: "Weekly Grinder", Scope: a, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubWeekly, Required: 2, Periods: 4},
		},
		{
			ID: "monthly_steady", Name: "Steady Hand", Scope: a, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubMonthly, Required: 4, Periods: 3},
		},
		{
			ID: "productive_day", Name: "Productive Day", Scope: a, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubSameDay, Required: 3},
		},
		{
			ID: "early_bird", Name: "Early Bird", Scope: a, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubTimeOfDay, Required: 10, Range: domain.RangeMorning},
		},
		{
			ID: "night_owl", Name: "Night Owl", Scope: a, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubTimeOfDay, Required: 10, Range: domain.RangeNight},
		},
		{
			ID: "weekend_warrior", Name: "Weekend Warrior", Scope: a, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubDayOfWeek, Required: 10, Weekend: true},
		},
		{
			ID: "nine_to_fiver", Name: "Nine to Fiver", Scope: a, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubDayOfWeek, Required: 25},
		},

		// ── Meta ───────────────────────────────────────────────────────
		{
			ID: "completionist", Name: "Completionist", Scope: a, Kind: domain.KindMeta,
		},
	}
}

// BadgeCriteria returns the badge catalog. Badges are a parallel instance
// of the same engine with their own ledger; combination badges use the
// halved requirement rule.
func BadgeCriteria() []domain.Criterion {
	b := domain.ScopeBadge
	return []domain.Criterion{
		{
			ID: "badge_first_blood", Name: "First Blood", Scope: b, Kind: domain.KindCount,
			Count: &domain.CountConfig{Required: 1},
		},
		{
			ID: "badge_apprentice", Name: "Apprentice", Scope: b, Kind: domain.KindTierCount,
			TierCount: &domain.TierCountConfig{Tier: domain.TierTrainee, Required: 3},
		},
		{
			ID: "badge_globetrotter", Name: "Globetrotter", Scope: b, Kind: domain.KindTagDiversity,
			Diversity: &domain.DiversityConfig{Dimension: domain.DimDatastores, Required: 3},
		},
		{
			ID: "badge_react_pair", Name: "Dynamic Duo", Scope: b, Kind: domain.KindTagCombination,
			Combination: &domain.CombinationConfig{
				Languages:   []string{"JavaScript", "TypeScript"},
				FrameworksA: []string{"React"},
				Required:    4, // Badge rule: effective requirement is 2
			},
		},
		{
			ID: "badge_lamp", Name: "Old Reliable", Scope: b, Kind: domain.KindStackExact,
			Stack: &domain.StackConfig{Stack: []string{"PHP", "Laravel", "MySQL"}},
		},
		{
			ID: "badge_streak_7", Name: "On Fire", Scope: b, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubStreak, Required: 7},
		},
		{
			ID: "badge_regular", Name: "Regular", Scope: b, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubWeekly, Required: 1, Periods: 3},
		},
		{
			ID: "badge_sprint", Name: "Sprinter", Scope: b, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubSameDay, Required: 5},
		},
		{
			ID: "badge_dawn_patrol", Name: "Dawn Patrol", Scope: b, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubTimeOfDay, Required: 5, Range: domain.RangeMorning},
		},
		{
			ID: "badge_midnight_oil", Name: "Midnight Oil", Scope: b, Kind: domain.KindConsistency,
			Consistency: &domain.ConsistencyConfig{Sub: domain.SubTimeOfDay, Required: 5, Range: domain.RangeNight},
		},
		{
			ID: "badge_collector", Name: "Badge Collector", Scope: b, Kind: domain.KindMeta,
		},
	}
}
