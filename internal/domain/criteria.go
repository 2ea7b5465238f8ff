package domain

import "time"

// ─── Criteria ───────────────────────────────────────────────────────────────
// A Criterion is a declarative, immutable unlock condition. The Kind field
// discriminates the family; exactly one of the config sub-structs is set.
// A definition whose config is missing or inconsistent is treated as
// permanently unsatisfied — one bad definition never halts evaluation of
// the rest.

// Scope separates the two parallel criteria catalogs. Achievements and
// badges run through the same engine with their own definition lists and
// their own unlock ledgers.
type Scope string

const (
	ScopeAchievement Scope = "achievement"
	ScopeBadge       Scope = "badge"
)

// CriterionKind discriminates the criterion family.
type CriterionKind string

const (
	KindCount          CriterionKind = "count"
	KindTierCount      CriterionKind = "tierCount"
	KindTagDiversity   CriterionKind = "tagDiversity"
	KindTagCombination CriterionKind = "tagCombination"
	KindStackExact     CriterionKind = "stackExact"
	KindConsistency    CriterionKind = "consistency"
	KindMeta           CriterionKind = "meta"
)

// Criterion is one unlock condition. Ids are globally unique and stable;
// only the evaluation result changes as history grows.
type Criterion struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Scope Scope         `json:"scope"`
	Kind  CriterionKind `json:"kind"`

	Count       *CountConfig       `json:"count,omitempty"`
	TierCount   *TierCountConfig   `json:"tier_count,omitempty"`
	Diversity   *DiversityConfig   `json:"diversity,omitempty"`
	Combination *CombinationConfig `json:"combination,omitempty"`
	Stack       *StackConfig       `json:"stack,omitempty"`
	Consistency *ConsistencyConfig `json:"consistency,omitempty"`
}

// CountConfig: total completed work ≥ Required. If Tier is set, the counted
// records depend on the criterion's declared tier through the inheritance
// table (see progression.InheritedTiers), not the record tier alone.
type CountConfig struct {
	Required int  `json:"required"`
	Tier     Tier `json:"tier,omitempty"` // empty = count everything
}

// TierCountConfig: completed work of one specific tier ≥ Required.
type TierCountConfig struct {
	Tier     Tier `json:"tier"`
	Required int  `json:"required"`
}

// DiversityConfig: with no Candidates, ≥ Required distinct values of one
// dimension. With Candidates, the best single candidate must reach
// Required completions — any one candidate at the threshold satisfies the
// whole criterion (maximum across candidates, never the sum).
type DiversityConfig struct {
	Dimension  TagDimension `json:"dimension"`
	Required   int          `json:"required"`
	Candidates []string     `json:"candidates,omitempty"`
}

// CombinationConfig: a record qualifies when it intersects every supplied
// set; unsupplied sets are vacuously true. Required qualifying records are
// compared verbatim for achievements and as max(1, Required/2) for badges.
type CombinationConfig struct {
	Languages   []string `json:"languages,omitempty"`
	FrameworksA []string `json:"frameworks_a,omitempty"`
	FrameworksB []string `json:"frameworks_b,omitempty"`
	Datastores  []string `json:"datastores,omitempty"`
	Required    int      `json:"required"`
}

// Supplied reports whether at least one dimension set is present.
func (c CombinationConfig) Supplied() bool {
	return len(c.Languages) > 0 || len(c.FrameworksA) > 0 ||
		len(c.FrameworksB) > 0 || len(c.Datastores) > 0
}

// StackConfig: the union of tags over qualifying records must cover every
// stack member. Coverage is collective — no single record needs the whole
// stack — but at least MinRecords records must touch the stack.
type StackConfig struct {
	Stack      []string `json:"stack"`
	MinRecords int      `json:"min_records"` // 0 = default of 3
}

// DefaultStackMinRecords is the qualifying-record floor when a stackExact
// definition leaves MinRecords unset.
const DefaultStackMinRecords = 3

// ConsistencySub selects the calendar sub-kind of a consistency criterion.
type ConsistencySub string

const (
	SubStreak    ConsistencySub = "streak"
	SubWeekly    ConsistencySub = "weekly"
	SubMonthly   ConsistencySub = "monthly"
	SubSameDay   ConsistencySub = "sameDay"
	SubTimeOfDay ConsistencySub = "timeOfDay"
	SubDayOfWeek ConsistencySub = "dayOfWeek"
)

// HourRange names one of the four timeOfDay buckets. Night wraps midnight:
// a completion is night when its local hour is ≥22 or ≤4.
type HourRange string

const (
	RangeMorning   HourRange = "morning"   // 05:00–11:59
	RangeAfternoon HourRange = "afternoon" // 12:00–17:59
	RangeEvening   HourRange = "evening"   // 18:00–21:59
	RangeNight     HourRange = "night"     // 22:00–04:59
)

// ConsistencyConfig carries the sub-kind plus whichever fields that
// sub-kind reads. Required is the threshold for every sub-kind (run length
// for streak, per-period minimum for weekly/monthly, window count for
// sameDay, completion count for timeOfDay/dayOfWeek).
type ConsistencyConfig struct {
	Sub      ConsistencySub `json:"sub"`
	Required int            `json:"required"`
	Periods  int            `json:"periods,omitempty"`   // weekly/monthly window length P
	MaxHours int            `json:"max_hours,omitempty"` // sameDay window width, 0 = 24
	Range    HourRange      `json:"range,omitempty"`     // timeOfDay
	Weekend  bool           `json:"weekend,omitempty"`   // dayOfWeek: weekend vs weekday
}

// ─── Progress Snapshots ─────────────────────────────────────────────────────

// ProgressSnapshot is the derived, never-persisted evaluation result for
// one criterion against the current history. ProgressPercent is in [0,99]
// while unsatisfied and exactly 100 once satisfied.
type ProgressSnapshot struct {
	CriterionID     string `json:"criterionId"`
	Satisfied       bool   `json:"satisfied"`
	ProgressPercent int    `json:"progressPercent"`
}

// UnlockedCriterion records when a criterion id entered a ledger.
type UnlockedCriterion struct {
	ID         string    `json:"id"`
	Scope      Scope     `json:"scope"`
	UnlockedAt time.Time `json:"unlocked_at"`
}
