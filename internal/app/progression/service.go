// Package progression implements the IdeaForge progression engine: the
// criteria evaluators, calendar aggregators, unlock ledger, level
// classifier, and the service that re-runs a full evaluation pass after
// every history mutation.
package progression

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ideaforge/forge/internal/domain"
	"github.com/ideaforge/forge/internal/infra/metrics"
	"github.com/ideaforge/forge/internal/infra/sqlite"
)

// Service is the orchestrating caller around the pure engine. It owns the
// store, loads history and ledgers, runs Evaluate, and persists new
// unlocks. The engine itself stays lock-free; the service serializes
// passes so no two re-evaluations interleave for the same state.
type Service struct {
	mu            sync.Mutex
	db            *sqlite.DB
	achievements  []domain.Criterion
	badges        []domain.Criterion
	names         map[string]string
	masterEnabled bool
	policy        domain.NotificationPolicy

	now func() time.Time // test seam
}

// Options configures a Service.
type Options struct {
	// MasterEnabled allows master-tier completions. Off by default.
	MasterEnabled bool
	// Notifications rate-limits unlock announcements. Zero value means
	// the default policy.
	Notifications domain.NotificationPolicy
}

// NewService creates a progression service with the built-in catalogs.
func NewService(db *sqlite.DB, opts Options) *Service {
	if opts.Notifications == (domain.NotificationPolicy{}) {
		opts.Notifications = domain.DefaultNotificationPolicy()
	}
	s := &Service{
		db:            db,
		achievements:  AchievementCriteria(),
		badges:        BadgeCriteria(),
		names:         make(map[string]string),
		masterEnabled: opts.MasterEnabled,
		policy:        opts.Notifications,
		now:           time.Now,
	}
	for _, def := range s.achievements {
		s.names[def.ID] = def.Name
	}
	for _, def := range s.badges {
		s.names[def.ID] = def.Name
	}
	return s
}

// SetClock overrides the service clock. Test use only.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// Definitions returns the criteria catalog for a scope.
func (s *Service) Definitions(scope domain.Scope) []domain.Criterion {
	if scope == domain.ScopeBadge {
		return s.badges
	}
	return s.achievements
}

// CompletionResult is returned from Complete and Undo.
type CompletionResult struct {
	Record          *domain.CompletedWork `json:"record,omitempty"`
	NewAchievements []string              `json:"new_achievements"`
	NewBadges       []string              `json:"new_badges"`
	Level           domain.Tier           `json:"level"`
}

// Complete records one finished idea and runs a full re-evaluation pass
// over both scopes.
func (s *Service) Complete(w domain.CompletedWork) (*CompletionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !w.Tier.Valid() {
		return nil, domain.ErrUnknownTier
	}
	if w.Tier == domain.TierMaster && !s.masterEnabled {
		return nil, domain.ErrMasterDisabled
	}
	if w.WorkID <= 0 {
		return nil, fmt.Errorf("%w: work id must be positive", domain.ErrInvalidWork)
	}

	now := s.now()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.CompletedAt.IsZero() {
		w.CompletedAt = now
	}

	if err := s.db.InsertWork(w); err != nil {
		return nil, fmt.Errorf("insert work: %w", err)
	}
	metrics.WorkCompleted.Inc()

	res, err := s.reevaluate(now)
	if err != nil {
		return nil, err
	}
	res.Record = &w
	return res, nil
}

// Undo removes one completed-work record and runs a full re-evaluation
// pass. Satisfaction of not-yet-unlocked criteria can regress; ledgered
// unlocks stay.
func (s *Service) Undo(recordID string) (*CompletionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.DeleteWork(recordID); err != nil {
		return nil, err
	}
	metrics.WorkUndone.Inc()

	return s.reevaluate(s.now())
}

// Reevaluate runs a full pass without mutating history. Useful at startup
// to reconcile the ledgers with a history that changed out of band.
func (s *Service) Reevaluate() (*CompletionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reevaluate(s.now())
}

// reevaluate runs the two-scope evaluation pass and persists new unlocks.
// Caller holds s.mu.
func (s *Service) reevaluate(now time.Time) (*CompletionResult, error) {
	started := time.Now()
	defer func() {
		metrics.EvaluationDuration.Observe(time.Since(started).Seconds())
	}()
	metrics.EvaluationPasses.Inc()

	history, err := s.db.ListWork()
	if err != nil {
		return nil, fmt.Errorf("list work: %w", err)
	}
	history = rezone(history, now.Location())
	metrics.HistorySize.Set(float64(len(history)))

	res := &CompletionResult{
		NewAchievements: []string{},
		NewBadges:       []string{},
		Level:           LevelFromHistory(history),
	}

	res.NewAchievements, err = s.evaluateScope(domain.ScopeAchievement, s.achievements, history, now)
	if err != nil {
		return nil, err
	}
	res.NewBadges, err = s.evaluateScope(domain.ScopeBadge, s.badges, history, now)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// evaluateScope loads one scope's ledger, runs the pure engine, and
// persists whatever the pass unlocked.
func (s *Service) evaluateScope(scope domain.Scope, defs []domain.Criterion, history []domain.CompletedWork, now time.Time) ([]string, error) {
	ledger, err := s.loadLedger(scope)
	if err != nil {
		return nil, err
	}

	result := Evaluate(defs, history, ledger, now)

	newly := []string{}
	for _, id := range result.NewlyUnlocked {
		isNew, err := s.db.Unlock(scope, id, now)
		if err != nil {
			return nil, fmt.Errorf("persist unlock %s: %w", id, err)
		}
		if !isNew {
			continue // Raced with an earlier pass — already persisted
		}
		newly = append(newly, id)
		metrics.Unlocks.WithLabelValues(string(scope)).Inc()
		s.notifyUnlock(scope, id, now)
	}
	return newly, nil
}

// loadLedger materializes a scope's persisted ledger.
func (s *Service) loadLedger(scope domain.Scope) (*Ledger, error) {
	rows, err := s.db.ListUnlocks(scope)
	if err != nil {
		return nil, fmt.Errorf("list unlocks: %w", err)
	}
	ledger := NewLedger()
	for _, u := range rows {
		ledger.Seed(u.ID, u.UnlockedAt)
	}
	return ledger, nil
}

// Snapshots returns the derived progress snapshot for every criterion in
// a scope. Read-only: the pass runs against a clone of the ledger, so a
// display read never persists an unlock.
func (s *Service) Snapshots(scope domain.Scope) ([]domain.ProgressSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	history, err := s.db.ListWork()
	if err != nil {
		return nil, fmt.Errorf("list work: %w", err)
	}
	history = rezone(history, now.Location())
	ledger, err := s.loadLedger(scope)
	if err != nil {
		return nil, err
	}
	result := Evaluate(s.Definitions(scope), history, ledger.Clone(), now)
	return result.Snapshots, nil
}

// ScopeSummary counts unlocked vs defined criteria for one scope.
type ScopeSummary struct {
	Unlocked int `json:"unlocked"`
	Total    int `json:"total"`
}

// Summary is the roll-up surfaced to the UI after each pass.
type Summary struct {
	Level          domain.Tier         `json:"level"`
	TotalCompleted int                 `json:"total_completed"`
	TierCounts     map[domain.Tier]int `json:"tier_counts"`
	CurrentStreak  int                 `json:"current_streak"`
	Achievements   ScopeSummary        `json:"achievements"`
	Badges         ScopeSummary        `json:"badges"`
}

// Summary recomputes the level, streak, and unlock counts from scratch.
func (s *Service) Summary() (*Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	history, err := s.db.ListWork()
	if err != nil {
		return nil, fmt.Errorf("list work: %w", err)
	}
	history = rezone(history, now.Location())
	perTier, total := TierCounts(history)

	sum := &Summary{
		Level:          ClassifyLevel(total, perTier),
		TotalCompleted: total,
		TierCounts:     perTier,
		CurrentStreak:  LongestActiveRun(history, now),
	}

	for _, scope := range []domain.Scope{domain.ScopeAchievement, domain.ScopeBadge} {
		count, err := s.db.UnlockCount(scope)
		if err != nil {
			return nil, fmt.Errorf("unlock count: %w", err)
		}
		ss := ScopeSummary{Unlocked: count, Total: len(s.Definitions(scope))}
		if scope == domain.ScopeAchievement {
			sum.Achievements = ss
		} else {
			sum.Badges = ss
		}
	}
	return sum, nil
}

// History returns the stored completed-work records, oldest first.
func (s *Service) History() ([]domain.CompletedWork, error) {
	return s.db.ListWork()
}

// Unlocked returns the persisted ledger rows for a scope.
func (s *Service) Unlocked(scope domain.Scope) ([]domain.UnlockedCriterion, error) {
	return s.db.ListUnlocks(scope)
}

// CriterionName resolves a criterion id to its display name.
func (s *Service) CriterionName(id string) string {
	if name, ok := s.names[id]; ok {
		return name
	}
	return id
}

// rezone aligns every record's wall clock with the evaluation clock's
// location. Stored timestamps are bare instants; without this, a record
// loaded in one zone and a clock ticking in another disagree on day and
// hour boundaries, so a completion made this evening could land on
// "tomorrow" for the streak check or in the wrong timeOfDay bucket.
func rezone(history []domain.CompletedWork, loc *time.Location) []domain.CompletedWork {
	for i := range history {
		history[i].CompletedAt = history[i].CompletedAt.In(loc)
	}
	return history
}
