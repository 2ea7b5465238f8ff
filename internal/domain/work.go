// Package domain holds the pure types of the IdeaForge progression engine:
// completed-work records, skill tiers, unlock criteria, and progress
// snapshots. Nothing in this package touches storage or the network.
package domain

import "time"

// ─── Tiers ──────────────────────────────────────────────────────────────────

// Tier is an ordered skill label attached to both completed work and
// tier-scoped criteria. Master is only reachable once explicitly enabled
// in configuration.
type Tier string

const (
	TierStudent Tier = "student"
	TierTrainee Tier = "trainee"
	TierJunior  Tier = "junior"
	TierSenior  Tier = "senior"
	TierMaster  Tier = "master"
)

// AllTiers lists tiers in ascending order.
var AllTiers = []Tier{TierStudent, TierTrainee, TierJunior, TierSenior, TierMaster}

// Rank returns the tier's position in the ladder (Student=0 … Master=4).
// Unknown tiers rank below Student.
func (t Tier) Rank() int {
	for i, tier := range AllTiers {
		if tier == t {
			return i
		}
	}
	return -1
}

// Valid reports whether t is one of the five known tiers.
func (t Tier) Valid() bool { return t.Rank() >= 0 }

// ParseTier converts a string to a Tier, returning ErrUnknownTier for
// anything outside the five known labels.
func ParseTier(s string) (Tier, error) {
	t := Tier(s)
	if !t.Valid() {
		return "", ErrUnknownTier
	}
	return t, nil
}

// ─── Completed Work ─────────────────────────────────────────────────────────

// CompletedWork is one finished project idea. CompletedAt is the sole
// source of truth for all calendar aggregation. Records are immutable once
// created; undo removes the record entirely.
type CompletedWork struct {
	ID          string    `json:"id"`      // Record id (uuid) — undo targets this
	WorkID      int       `json:"work_id"` // Idea template id, not unique per record
	CompletedAt time.Time `json:"completed_at"`
	Tier        Tier      `json:"tier"`
	Languages   []string  `json:"languages"`
	Frameworks  []string  `json:"frameworks"`
	Datastores  []string  `json:"datastores"`
}

// CompletedAtMillis returns the wire-format timestamp.
func (w CompletedWork) CompletedAtMillis() int64 {
	return w.CompletedAt.UnixMilli()
}

// Tags returns the tag set for one dimension. Unknown dimensions return nil.
func (w CompletedWork) Tags(dim TagDimension) []string {
	switch dim {
	case DimLanguages:
		return w.Languages
	case DimFrameworks:
		return w.Frameworks
	case DimDatastores:
		return w.Datastores
	}
	return nil
}

// HasTag reports whether the record carries the tag in any dimension.
// Matching is case-sensitive exact string comparison.
func (w CompletedWork) HasTag(tag string) bool {
	for _, dim := range []TagDimension{DimLanguages, DimFrameworks, DimDatastores} {
		for _, t := range w.Tags(dim) {
			if t == tag {
				return true
			}
		}
	}
	return false
}

// TagDimension names one of the three tag sets on a record.
type TagDimension string

const (
	DimLanguages  TagDimension = "languages"
	DimFrameworks TagDimension = "frameworks"
	DimDatastores TagDimension = "datastores"
)

// Valid reports whether the dimension is one of the three known sets.
func (d TagDimension) Valid() bool {
	return d == DimLanguages || d == DimFrameworks || d == DimDatastores
}
