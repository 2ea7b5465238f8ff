package sqlite

import (
	"time"

	"github.com/ideaforge/forge/internal/domain"
)

// ─── Unlock Ledgers ─────────────────────────────────────────────────────────
// One table, two scopes (achievements and badges). Rows are append-only.

// Unlock records a criterion as unlocked for a scope.
// Returns false if already unlocked (idempotent).
func (d *DB) Unlock(scope domain.Scope, criterionID string, at time.Time) (bool, error) {
	result, err := d.db.Exec(
		`INSERT OR IGNORE INTO unlocks (scope, criterion_id, unlocked_at) VALUES (?, ?, ?)`,
		string(scope), criterionID, at.Unix(),
	)
	if err != nil {
		return false, err
	}
	n, _ := result.RowsAffected()
	return n > 0, nil // true = newly unlocked
}

// IsUnlocked checks whether a criterion has been unlocked in a scope.
func (d *DB) IsUnlocked(scope domain.Scope, criterionID string) (bool, error) {
	var count int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM unlocks WHERE scope = ? AND criterion_id = ?`,
		string(scope), criterionID,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListUnlocks returns all unlocked criteria for a scope, newest first.
func (d *DB) ListUnlocks(scope domain.Scope) ([]domain.UnlockedCriterion, error) {
	rows, err := d.db.Query(
		`SELECT criterion_id, unlocked_at FROM unlocks WHERE scope = ? ORDER BY unlocked_at DESC`,
		string(scope),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var unlocks []domain.UnlockedCriterion
	for rows.Next() {
		var u domain.UnlockedCriterion
		var at int64
		if err := rows.Scan(&u.ID, &at); err != nil {
			return nil, err
		}
		u.Scope = scope
		u.UnlockedAt = time.Unix(at, 0).UTC()
		unlocks = append(unlocks, u)
	}
	return unlocks, rows.Err()
}

// UnlockCount returns how many criteria are unlocked in a scope.
func (d *DB) UnlockCount(scope domain.Scope) (int, error) {
	var count int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM unlocks WHERE scope = ?`, string(scope),
	).Scan(&count)
	return count, err
}
