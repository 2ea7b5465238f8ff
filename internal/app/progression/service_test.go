package progression

import (
	"errors"
	"testing"
	"time"

	"github.com/ideaforge/forge/internal/domain"
	"github.com/ideaforge/forge/internal/infra/sqlite"
)

// newTestService wires a Service to a throwaway database with a fixed
// clock at noon (well clear of quiet hours).
func newTestService(t *testing.T, opts Options) (*Service, *sqlite.DB, time.Time) {
	t.Helper()
	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := NewService(db, opts)
	clock := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	svc.SetClock(func() time.Time { return clock })
	return svc, db, clock
}

func contains(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func TestServiceCompleteFirstIdea(t *testing.T) {
	svc, _, _ := newTestService(t, Options{})

	res, err := svc.Complete(domain.CompletedWork{WorkID: 1, Tier: domain.TierStudent})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if res.Record == nil || res.Record.ID == "" {
		t.Fatalf("Complete should assign a record id, got %+v", res.Record)
	}
	if !contains(res.NewAchievements, "first_idea") {
		t.Errorf("NewAchievements = %v, want first_idea", res.NewAchievements)
	}
	if !contains(res.NewBadges, "badge_first_blood") {
		t.Errorf("NewBadges = %v, want badge_first_blood", res.NewBadges)
	}
	if res.Level != domain.TierStudent {
		t.Errorf("Level = %s, want student", res.Level)
	}
}

func TestServiceCompleteValidation(t *testing.T) {
	svc, _, _ := newTestService(t, Options{})

	if _, err := svc.Complete(domain.CompletedWork{WorkID: 1, Tier: "wizard"}); !errors.Is(err, domain.ErrUnknownTier) {
		t.Errorf("unknown tier: got %v", err)
	}
	if _, err := svc.Complete(domain.CompletedWork{WorkID: 0, Tier: domain.TierStudent}); !errors.Is(err, domain.ErrInvalidWork) {
		t.Errorf("zero work id: got %v", err)
	}
}

func TestServiceMasterGate(t *testing.T) {
	svc, _, _ := newTestService(t, Options{})
	if _, err := svc.Complete(domain.CompletedWork{WorkID: 1, Tier: domain.TierMaster}); !errors.Is(err, domain.ErrMasterDisabled) {
		t.Fatalf("master tier should be rejected by default, got %v", err)
	}

	enabled, _, _ := newTestService(t, Options{MasterEnabled: true})
	if _, err := enabled.Complete(domain.CompletedWork{WorkID: 1, Tier: domain.TierMaster}); err != nil {
		t.Fatalf("master tier should pass when enabled: %v", err)
	}
}

func TestServiceReevaluateIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t, Options{})
	if _, err := svc.Complete(domain.CompletedWork{WorkID: 1, Tier: domain.TierStudent}); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	res, err := svc.Reevaluate()
	if err != nil {
		t.Fatalf("Reevaluate: %v", err)
	}
	if len(res.NewAchievements) != 0 || len(res.NewBadges) != 0 {
		t.Errorf("repeat pass unlocked %v / %v, want none", res.NewAchievements, res.NewBadges)
	}
}

func TestServiceUndoKeepsUnlocks(t *testing.T) {
	svc, _, _ := newTestService(t, Options{})
	res, err := svc.Complete(domain.CompletedWork{WorkID: 1, Tier: domain.TierStudent})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if _, err := svc.Undo(res.Record.ID); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	history, err := svc.History()
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history length = %d, want 0", len(history))
	}

	// Once earned, always earned.
	unlocked, err := svc.Unlocked(domain.ScopeAchievement)
	if err != nil {
		t.Fatalf("Unlocked: %v", err)
	}
	found := false
	for _, u := range unlocked {
		if u.ID == "first_idea" {
			found = true
		}
	}
	if !found {
		t.Errorf("undo must not revoke first_idea")
	}
}

func TestServiceUndoUnknownRecord(t *testing.T) {
	svc, _, _ := newTestService(t, Options{})
	if _, err := svc.Undo("nope"); !errors.Is(err, domain.ErrWorkNotFound) {
		t.Errorf("unknown record: got %v", err)
	}
}

func TestServiceSnapshotsAreReadOnly(t *testing.T) {
	svc, db, clock := newTestService(t, Options{})

	// Load history behind the service's back so nothing is ledgered yet.
	if err := db.InsertWork(domain.CompletedWork{
		ID: "r1", WorkID: 1, Tier: domain.TierStudent, CompletedAt: clock,
	}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	snaps, err := svc.Snapshots(domain.ScopeAchievement)
	if err != nil {
		t.Fatalf("Snapshots: %v", err)
	}
	satisfied := false
	for _, snap := range snaps {
		if snap.CriterionID == "first_idea" && snap.Satisfied {
			satisfied = true
		}
	}
	if !satisfied {
		t.Fatalf("first_idea should show satisfied in the snapshot")
	}

	// The display read must not have persisted the unlock.
	unlocked, err := db.IsUnlocked(domain.ScopeAchievement, "first_idea")
	if err != nil {
		t.Fatalf("IsUnlocked: %v", err)
	}
	if unlocked {
		t.Errorf("Snapshots persisted an unlock; reads must be side-effect free")
	}
}

func TestServiceSummary(t *testing.T) {
	svc, _, _ := newTestService(t, Options{})
	for i := 1; i <= 3; i++ {
		if _, err := svc.Complete(domain.CompletedWork{WorkID: i, Tier: domain.TierStudent}); err != nil {
			t.Fatalf("Complete #%d: %v", i, err)
		}
	}

	sum, err := svc.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.TotalCompleted != 3 {
		t.Errorf("TotalCompleted = %d, want 3", sum.TotalCompleted)
	}
	if sum.TierCounts[domain.TierStudent] != 3 {
		t.Errorf("student count = %d, want 3", sum.TierCounts[domain.TierStudent])
	}
	if sum.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", sum.CurrentStreak)
	}
	if sum.Achievements.Unlocked == 0 || sum.Achievements.Total == 0 {
		t.Errorf("achievement summary looks empty: %+v", sum.Achievements)
	}
	if sum.Badges.Total == 0 {
		t.Errorf("badge summary looks empty: %+v", sum.Badges)
	}
}

func TestServiceNotificationDailyCap(t *testing.T) {
	svc, _, _ := newTestService(t, Options{})

	// Ten same-day completions unlock well over three criteria across both
	// scopes; the policy caps the announcements at three per day.
	for i := 1; i <= 10; i++ {
		if _, err := svc.Complete(domain.CompletedWork{WorkID: i, Tier: domain.TierStudent}); err != nil {
			t.Fatalf("Complete #%d: %v", i, err)
		}
	}

	pending, err := svc.PendingNotifications(50)
	if err != nil {
		t.Fatalf("PendingNotifications: %v", err)
	}
	if len(pending) != 3 {
		t.Errorf("pending notifications = %d, want 3 (daily cap)", len(pending))
	}
}

func TestServiceNotificationQuietHours(t *testing.T) {
	svc, _, _ := newTestService(t, Options{})
	svc.SetClock(func() time.Time {
		return time.Date(2026, 4, 15, 23, 30, 0, 0, time.UTC) // inside 22:00–08:00
	})

	if _, err := svc.Complete(domain.CompletedWork{WorkID: 1, Tier: domain.TierStudent}); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	pending, err := svc.PendingNotifications(50)
	if err != nil {
		t.Fatalf("PendingNotifications: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("quiet hours should suppress announcements, got %d", len(pending))
	}

	// The unlock itself is unaffected.
	unlocked, err := svc.Unlocked(domain.ScopeAchievement)
	if err != nil {
		t.Fatalf("Unlocked: %v", err)
	}
	if len(unlocked) == 0 {
		t.Errorf("suppressed notification must not suppress the unlock")
	}
}

func TestServiceStreakCurrencyInNonUTCZone(t *testing.T) {
	svc, _, _ := newTestService(t, Options{})

	// 18:00 in a UTC-7 zone is already past midnight in UTC. A completion
	// made right now must still count as today's for the streak, no matter
	// what zone the store hands the record back in.
	west := time.FixedZone("UTC-7", -7*60*60)
	svc.SetClock(func() time.Time {
		return time.Date(2026, 8, 30, 18, 0, 0, 0, west)
	})

	if _, err := svc.Complete(domain.CompletedWork{WorkID: 1, Tier: domain.TierStudent}); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	sum, err := svc.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", sum.CurrentStreak)
	}
}

func TestServiceTimeOfDayUsesClockZone(t *testing.T) {
	svc, _, _ := newTestService(t, Options{})

	// 18:30 locally is evening; the same instant is 01:30 UTC. After the
	// store round trip the night bucket must not claim it.
	west := time.FixedZone("UTC-7", -7*60*60)
	svc.SetClock(func() time.Time {
		return time.Date(2026, 8, 30, 18, 30, 0, 0, west)
	})

	if _, err := svc.Complete(domain.CompletedWork{WorkID: 1, Tier: domain.TierStudent}); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	snaps, err := svc.Snapshots(domain.ScopeAchievement)
	if err != nil {
		t.Fatalf("Snapshots: %v", err)
	}
	for _, snap := range snaps {
		if snap.CriterionID == "night_owl" && snap.ProgressPercent != 0 {
			t.Errorf("an evening completion made night_owl progress: %+v", snap)
		}
		if snap.CriterionID == "early_bird" && snap.ProgressPercent != 0 {
			t.Errorf("an evening completion made early_bird progress: %+v", snap)
		}
	}
}

func TestServiceStreakUnlockEndToEnd(t *testing.T) {
	svc, _, clock := newTestService(t, Options{})

	for day := 0; day < 3; day++ {
		at := clock.AddDate(0, 0, day)
		svc.SetClock(func() time.Time { return at })
		if _, err := svc.Complete(domain.CompletedWork{WorkID: day + 1, Tier: domain.TierStudent}); err != nil {
			t.Fatalf("Complete day %d: %v", day, err)
		}
	}

	unlocked, err := svc.Unlocked(domain.ScopeAchievement)
	if err != nil {
		t.Fatalf("Unlocked: %v", err)
	}
	found := false
	for _, u := range unlocked {
		if u.ID == "streak_3" {
			found = true
		}
	}
	if !found {
		t.Errorf("3 consecutive days should unlock streak_3")
	}
}
