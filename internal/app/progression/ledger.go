package progression

import (
	"sort"
	"time"
)

// Ledger is the set of criterion ids already unlocked. It is append-only:
// the engine never removes an id, even when a later history edit would
// make the underlying criterion unsatisfied again ("once earned, always
// earned"). The sole mutation is Unlock, which is an idempotent
// insert-if-absent.
type Ledger struct {
	unlocked map[string]time.Time
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{unlocked: make(map[string]time.Time)}
}

// Seed records an already-persisted unlock without treating it as new.
func (l *Ledger) Seed(id string, at time.Time) {
	if _, ok := l.unlocked[id]; !ok {
		l.unlocked[id] = at
	}
}

// Unlock inserts the id if absent. Returns true only when the id is newly
// unlocked; unlocking a present id is a no-op with no side effects.
func (l *Ledger) Unlock(id string, at time.Time) bool {
	if _, ok := l.unlocked[id]; ok {
		return false
	}
	l.unlocked[id] = at
	return true
}

// Has reports whether the id is in the ledger.
func (l *Ledger) Has(id string) bool {
	_, ok := l.unlocked[id]
	return ok
}

// UnlockedAt returns when an id was unlocked.
func (l *Ledger) UnlockedAt(id string) (time.Time, bool) {
	at, ok := l.unlocked[id]
	return at, ok
}

// Len returns the number of unlocked ids.
func (l *Ledger) Len() int { return len(l.unlocked) }

// IDs returns the unlocked ids in sorted order.
func (l *Ledger) IDs() []string {
	ids := make([]string, 0, len(l.unlocked))
	for id := range l.unlocked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns an independent copy. Read-only evaluation passes run
// against a clone so display reads never mutate persisted state.
func (l *Ledger) Clone() *Ledger {
	c := NewLedger()
	for id, at := range l.unlocked {
		c.unlocked[id] = at
	}
	return c
}
