package progression

import (
	"time"

	"github.com/ideaforge/forge/internal/domain"
)

// The engine is the orchestrator: it iterates criterion definitions,
// dispatches each to its family evaluator, and decides unlocks against
// the ledger. It is pure and synchronous — no locking, no storage, no
// clock of its own. Callers serialize access to one logical ledger and
// trigger a full pass after every history mutation; the pass is safe to
// repeat with an unchanged history (the ledger comes out identical).

// Result is the outcome of one full evaluation pass.
type Result struct {
	// Snapshots holds one derived progress entry per definition, in
	// definition order. Satisfaction reflects the current history only:
	// an already-ledgered criterion can show unsatisfied here while it
	// stays unlocked in the ledger.
	Snapshots []domain.ProgressSnapshot

	// NewlyUnlocked lists the criterion ids inserted into the ledger by
	// this pass, in definition order.
	NewlyUnlocked []string
}

// Evaluate runs one full pass over the definitions in two phases: every
// non-meta family first, then meta definitions against the phase-one
// results plus already-ledgered ids. The ordering is mandatory — a meta
// criterion must never trigger its own re-evaluation, so unlocking is a
// plain ledger insert and the meta check runs exactly once per call,
// never inside the unlock itself.
func Evaluate(defs []domain.Criterion, history []domain.CompletedWork, ledger *Ledger, now time.Time) Result {
	res := Result{Snapshots: make([]domain.ProgressSnapshot, len(defs))}

	// Phase 1: ordinary criteria.
	satisfied := make(map[string]bool, len(defs))
	nonMeta := 0
	for i, def := range defs {
		if def.Kind == domain.KindMeta {
			continue
		}
		nonMeta++
		snap := evaluateOne(def, history, now)
		res.Snapshots[i] = snap

		// The meta check treats ledgered ids as done even when the
		// current history no longer satisfies them.
		satisfied[def.ID] = snap.Satisfied || ledger.Has(def.ID)

		if snap.Satisfied && ledger.Unlock(def.ID, now) {
			res.NewlyUnlocked = append(res.NewlyUnlocked, def.ID)
		}
	}

	// Phase 2: meta criteria — boolean AND over every other non-meta
	// definition. A catalog with no ordinary criteria leaves meta
	// unsatisfied rather than vacuously true.
	done := 0
	for _, ok := range satisfied {
		if ok {
			done++
		}
	}
	for i, def := range defs {
		if def.Kind != domain.KindMeta {
			continue
		}
		snap := ratioSnapshot(def.ID, done, nonMeta)
		res.Snapshots[i] = snap
		if snap.Satisfied && ledger.Unlock(def.ID, now) {
			res.NewlyUnlocked = append(res.NewlyUnlocked, def.ID)
		}
	}

	return res
}
