package progression

import (
	"time"

	"github.com/ideaforge/forge/internal/domain"
)

// Criteria evaluators: one pure function per family. Every evaluator is
// total — any history (including empty) and any definition (including
// malformed) produce a snapshot, never an error. A definition missing its
// required config evaluates to permanently unsatisfied with 0% progress,
// so one bad definition cannot halt evaluation of the rest.

// evaluateOne dispatches a non-meta criterion to its family evaluator.
// Meta criteria are resolved by the engine's second pass.
func evaluateOne(def domain.Criterion, history []domain.CompletedWork, now time.Time) domain.ProgressSnapshot {
	switch def.Kind {
	case domain.KindCount:
		return evalCount(def, history)
	case domain.KindTierCount:
		return evalTierCount(def, history)
	case domain.KindTagDiversity:
		return evalTagDiversity(def, history)
	case domain.KindTagCombination:
		return evalTagCombination(def, history)
	case domain.KindStackExact:
		return evalStackExact(def, history)
	case domain.KindConsistency:
		return evalConsistency(def, history, now)
	}
	return unsatisfied(def.ID)
}

// unsatisfied is the snapshot for malformed or unknown definitions.
func unsatisfied(id string) domain.ProgressSnapshot {
	return domain.ProgressSnapshot{CriterionID: id}
}

// ratioSnapshot builds a snapshot from a current/required pair. Progress
// is min(floor(current/required*100), 99) while unsatisfied and exactly
// 100 once current reaches required. A non-positive requirement is a
// malformed definition, not a free unlock.
func ratioSnapshot(id string, current, required int) domain.ProgressSnapshot {
	if required <= 0 {
		return unsatisfied(id)
	}
	if current >= required {
		return domain.ProgressSnapshot{CriterionID: id, Satisfied: true, ProgressPercent: 100}
	}
	p := current * 100 / required
	if p < 0 {
		p = 0
	}
	if p > 99 {
		p = 99
	}
	return domain.ProgressSnapshot{CriterionID: id, ProgressPercent: p}
}

// ─── count ──────────────────────────────────────────────────────────────────

// InheritedTiers returns the set of work tiers counted by a tier-scoped
// count criterion. The counted set depends on the criterion's own declared
// tier, not the work's tier alone, and the inclusion is deliberately
// non-monotonic: lower tiers are subsumed going up, but Senior excludes
// Student and Trainee work to force recent relevant practice.
func InheritedTiers(t domain.Tier) []domain.Tier {
	switch t {
	case domain.TierStudent:
		return []domain.Tier{domain.TierStudent}
	case domain.TierTrainee:
		return []domain.Tier{domain.TierStudent, domain.TierTrainee}
	case domain.TierJunior:
		return []domain.Tier{domain.TierStudent, domain.TierTrainee, domain.TierJunior}
	case domain.TierSenior:
		return []domain.Tier{domain.TierJunior, domain.TierSenior}
	case domain.TierMaster:
		return domain.AllTiers
	}
	return nil
}

func evalCount(def domain.Criterion, history []domain.CompletedWork) domain.ProgressSnapshot {
	cfg := def.Count
	if cfg == nil {
		return unsatisfied(def.ID)
	}

	if cfg.Tier == "" {
		return ratioSnapshot(def.ID, len(history), cfg.Required)
	}

	counted := InheritedTiers(cfg.Tier)
	if counted == nil {
		return unsatisfied(def.ID)
	}
	in := make(map[domain.Tier]bool, len(counted))
	for _, t := range counted {
		in[t] = true
	}

	n := 0
	for _, w := range history {
		if in[w.Tier] {
			n++
		}
	}
	return ratioSnapshot(def.ID, n, cfg.Required)
}

// ─── tierCount ──────────────────────────────────────────────────────────────

func evalTierCount(def domain.Criterion, history []domain.CompletedWork) domain.ProgressSnapshot {
	cfg := def.TierCount
	if cfg == nil || !cfg.Tier.Valid() {
		return unsatisfied(def.ID)
	}
	n := 0
	for _, w := range history {
		if w.Tier == cfg.Tier {
			n++
		}
	}
	return ratioSnapshot(def.ID, n, cfg.Required)
}

// ─── tagDiversity ───────────────────────────────────────────────────────────

func evalTagDiversity(def domain.Criterion, history []domain.CompletedWork) domain.ProgressSnapshot {
	cfg := def.Diversity
	if cfg == nil || !cfg.Dimension.Valid() {
		return unsatisfied(def.ID)
	}

	if len(cfg.Candidates) == 0 {
		// Distinct values of one dimension.
		distinct := make(map[string]bool)
		for _, w := range history {
			for _, tag := range w.Tags(cfg.Dimension) {
				distinct[tag] = true
			}
		}
		return ratioSnapshot(def.ID, len(distinct), cfg.Required)
	}

	// Best single candidate: the maximum count across candidates, never
	// the sum. Any one candidate at the threshold satisfies the criterion.
	counts := make(map[string]int, len(cfg.Candidates))
	for _, w := range history {
		for _, tag := range w.Tags(cfg.Dimension) {
			counts[tag]++
		}
	}
	best := 0
	for _, cand := range cfg.Candidates {
		if counts[cand] > best {
			best = counts[cand]
		}
	}
	return ratioSnapshot(def.ID, best, cfg.Required)
}

// ─── tagCombination ─────────────────────────────────────────────────────────

// intersects reports whether the two sets share at least one member.
func intersects(tags, candidates []string) bool {
	for _, t := range tags {
		for _, c := range candidates {
			if t == c {
				return true
			}
		}
	}
	return false
}

func evalTagCombination(def domain.Criterion, history []domain.CompletedWork) domain.ProgressSnapshot {
	cfg := def.Combination
	if cfg == nil || !cfg.Supplied() {
		return unsatisfied(def.ID)
	}

	required := cfg.Required
	if def.Scope == domain.ScopeBadge {
		// Badge combinations use a halved-and-floored requirement with a
		// minimum of one. Achievement combinations use the count verbatim.
		required = cfg.Required / 2
		if required < 1 {
			required = 1
		}
	}

	qualifying := 0
	for _, w := range history {
		if len(cfg.Languages) > 0 && !intersects(w.Languages, cfg.Languages) {
			continue
		}
		if len(cfg.FrameworksA) > 0 && !intersects(w.Frameworks, cfg.FrameworksA) {
			continue
		}
		if len(cfg.FrameworksB) > 0 && !intersects(w.Frameworks, cfg.FrameworksB) {
			continue
		}
		if len(cfg.Datastores) > 0 && !intersects(w.Datastores, cfg.Datastores) {
			continue
		}
		qualifying++
	}
	return ratioSnapshot(def.ID, qualifying, required)
}

// ─── stackExact ─────────────────────────────────────────────────────────────

func evalStackExact(def domain.Criterion, history []domain.CompletedWork) domain.ProgressSnapshot {
	cfg := def.Stack
	if cfg == nil || len(cfg.Stack) == 0 {
		return unsatisfied(def.ID)
	}
	minRecords := cfg.MinRecords
	if minRecords <= 0 {
		minRecords = domain.DefaultStackMinRecords
	}

	// A record qualifies by touching at least one stack member; the union
	// of qualifying records' tags must cover the whole stack. No single
	// record needs the full stack.
	covered := make(map[string]bool, len(cfg.Stack))
	qualifying := 0
	for _, w := range history {
		touches := false
		for _, member := range cfg.Stack {
			if w.HasTag(member) {
				covered[member] = true
				touches = true
			}
		}
		if touches {
			qualifying++
		}
	}

	if len(covered) == len(cfg.Stack) && qualifying >= minRecords {
		return domain.ProgressSnapshot{CriterionID: def.ID, Satisfied: true, ProgressPercent: 100}
	}

	// Progress is the weaker of the two requirements.
	pCover := len(covered) * 100 / len(cfg.Stack)
	pRecords := qualifying * 100 / minRecords
	p := pCover
	if pRecords < p {
		p = pRecords
	}
	if p > 99 {
		p = 99
	}
	return domain.ProgressSnapshot{CriterionID: def.ID, ProgressPercent: p}
}

// ─── consistency ────────────────────────────────────────────────────────────

func evalConsistency(def domain.Criterion, history []domain.CompletedWork, now time.Time) domain.ProgressSnapshot {
	cfg := def.Consistency
	if cfg == nil {
		return unsatisfied(def.ID)
	}

	switch cfg.Sub {
	case domain.SubStreak:
		return ratioSnapshot(def.ID, LongestActiveRun(history, now), cfg.Required)

	case domain.SubWeekly:
		return evalSustained(def.ID, CountByWeek(history), cfg)

	case domain.SubMonthly:
		return evalSustained(def.ID, CountByMonth(history), cfg)

	case domain.SubSameDay:
		width := time.Duration(cfg.MaxHours) * time.Hour
		if cfg.MaxHours <= 0 {
			width = 24 * time.Hour
		}
		return ratioSnapshot(def.ID, MaxSameDayWindow(history, width), cfg.Required)

	case domain.SubTimeOfDay:
		switch cfg.Range {
		case domain.RangeMorning, domain.RangeAfternoon, domain.RangeEvening, domain.RangeNight:
			return ratioSnapshot(def.ID, CountInHourRange(history, cfg.Range), cfg.Required)
		}
		return unsatisfied(def.ID)

	case domain.SubDayOfWeek:
		return ratioSnapshot(def.ID, CountByWeekendness(history, cfg.Weekend), cfg.Required)
	}
	return unsatisfied(def.ID)
}

// evalSustained applies the strict sustained-performance rule for weekly
// and monthly criteria: across the trailing P consecutive periods ending
// at the most recent active period, every period must reach the threshold.
// A single weak period fails the whole window — the minimum is compared,
// not an average. Progress counts how many window periods already qualify.
func evalSustained(id string, counts map[int]int, cfg *domain.ConsistencyConfig) domain.ProgressSnapshot {
	if cfg.Required <= 0 || cfg.Periods <= 0 {
		return unsatisfied(id)
	}
	window := trailingWindow(counts, cfg.Periods)
	if window == nil {
		return domain.ProgressSnapshot{CriterionID: id}
	}

	meeting := 0
	min := window[0]
	for _, n := range window {
		if n >= cfg.Required {
			meeting++
		}
		if n < min {
			min = n
		}
	}
	if min >= cfg.Required {
		return domain.ProgressSnapshot{CriterionID: id, Satisfied: true, ProgressPercent: 100}
	}
	return ratioSnapshot(id, meeting, cfg.Periods)
}
