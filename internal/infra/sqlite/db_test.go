package sqlite

import (
	"errors"
	"testing"
	"time"

	"github.com/ideaforge/forge/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	db.Close()

	// Re-opening runs the migrations again on an existing schema.
	db, err = Open(dir)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		t.Errorf("ping: %v", err)
	}
}

func TestWorkRoundTrip(t *testing.T) {
	db := openTestDB(t)

	at := time.Date(2026, 4, 15, 9, 30, 0, 0, time.UTC)
	w := domain.CompletedWork{
		ID:          "rec-1",
		WorkID:      42,
		CompletedAt: at,
		Tier:        domain.TierJunior,
		Languages:   []string{"Go", "Python"},
		Frameworks:  []string{"Gin"},
		Datastores:  nil, // stored as an empty array, not NULL
	}
	if err := db.InsertWork(w); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := db.GetWork("rec-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatalf("record not found")
	}
	if got.WorkID != 42 || got.Tier != domain.TierJunior {
		t.Errorf("round trip mangled the record: %+v", got)
	}
	if !got.CompletedAt.Equal(at) {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, at)
	}
	if len(got.Languages) != 2 || got.Languages[0] != "Go" {
		t.Errorf("languages = %v", got.Languages)
	}
	if len(got.Datastores) != 0 {
		t.Errorf("nil tag set should come back empty, got %v", got.Datastores)
	}
}

func TestWorkRoundTripPreservesInstant(t *testing.T) {
	db := openTestDB(t)

	// Storage keeps the instant, not the zone: a record written from a
	// non-UTC wall clock must come back Equal to the original time.
	west := time.FixedZone("UTC-7", -7*60*60)
	at := time.Date(2026, 8, 30, 18, 30, 0, 0, west)
	w := domain.CompletedWork{ID: "rec-west", WorkID: 1, Tier: domain.TierStudent, CompletedAt: at}
	if err := db.InsertWork(w); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := db.GetWork("rec-west")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatalf("record not found")
	}
	if !got.CompletedAt.Equal(at) {
		t.Errorf("round trip moved the instant: got %v, want %v", got.CompletedAt, at)
	}
}

func TestGetWorkMissing(t *testing.T) {
	db := openTestDB(t)
	got, err := db.GetWork("missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("missing record should be nil, got %+v", got)
	}
}

func TestDeleteWork(t *testing.T) {
	db := openTestDB(t)
	w := domain.CompletedWork{ID: "rec-1", WorkID: 1, Tier: domain.TierStudent, CompletedAt: time.Now()}
	if err := db.InsertWork(w); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := db.DeleteWork("rec-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := db.DeleteWork("rec-1"); !errors.Is(err, domain.ErrWorkNotFound) {
		t.Errorf("double delete: got %v, want ErrWorkNotFound", err)
	}

	count, err := db.WorkCount()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestListWorkOrdering(t *testing.T) {
	db := openTestDB(t)
	base := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	// Insert out of order; list comes back oldest first.
	for i, offset := range []int{2, 0, 1} {
		w := domain.CompletedWork{
			ID: string(rune('a' + i)), WorkID: i + 1,
			Tier: domain.TierStudent, CompletedAt: base.AddDate(0, 0, offset),
		}
		if err := db.InsertWork(w); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	history, err := db.ListWork()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("got %d records, want 3", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].CompletedAt.Before(history[i-1].CompletedAt) {
			t.Errorf("history not sorted ascending at %d", i)
		}
	}
}

func TestUnlockIdempotent(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	isNew, err := db.Unlock(domain.ScopeAchievement, "first_idea", now)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if !isNew {
		t.Fatalf("first unlock should be new")
	}

	isNew, err = db.Unlock(domain.ScopeAchievement, "first_idea", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if isNew {
		t.Errorf("repeat unlock should be ignored")
	}

	count, err := db.UnlockCount(domain.ScopeAchievement)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestUnlockScopesAreIndependent(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	// The same id in the other scope is a separate row.
	if _, err := db.Unlock(domain.ScopeAchievement, "streak_7", now); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	isNew, err := db.Unlock(domain.ScopeBadge, "streak_7", now)
	if err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if !isNew {
		t.Errorf("scopes must not share ledger rows")
	}

	unlocked, err := db.IsUnlocked(domain.ScopeBadge, "streak_7")
	if err != nil {
		t.Fatalf("is unlocked: %v", err)
	}
	if !unlocked {
		t.Errorf("badge scope row missing")
	}
}

func TestNotificationsLifecycle(t *testing.T) {
	db := openTestDB(t)
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

	id, err := db.InsertNotification(domain.Notification{
		Type: domain.NotifyAchievement, Title: "Achievement unlocked!",
		Body: "First Idea — first_idea", CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	count, err := db.NotificationCountSince(now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}

	pending, err := db.ListPendingNotifications(10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != id {
		t.Fatalf("pending = %+v", pending)
	}

	if err := db.MarkNotificationShown(id); err != nil {
		t.Fatalf("mark shown: %v", err)
	}
	pending, err = db.ListPendingNotifications(10)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("shown notification still pending")
	}
}
