package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ideaforge/forge/internal/domain"
)

// ─── Completed Work History ─────────────────────────────────────────────────
// The history is append/remove only. Records are never updated in place.

// InsertWork appends one completed-work record.
func (d *DB) InsertWork(w domain.CompletedWork) error {
	langs, err := encodeTags(w.Languages)
	if err != nil {
		return err
	}
	fws, err := encodeTags(w.Frameworks)
	if err != nil {
		return err
	}
	dss, err := encodeTags(w.Datastores)
	if err != nil {
		return err
	}

	_, err = d.db.Exec(
		`INSERT INTO completed_work (id, work_id, completed_at_ms, tier, languages, frameworks, datastores)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.ID, w.WorkID, w.CompletedAt.UnixMilli(), string(w.Tier), langs, fws, dss,
	)
	return err
}

// DeleteWork removes one record by id (the undo path).
func (d *DB) DeleteWork(id string) error {
	result, err := d.db.Exec(`DELETE FROM completed_work WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrWorkNotFound
	}
	return nil
}

// GetWork retrieves one record by id. Returns nil when not found.
func (d *DB) GetWork(id string) (*domain.CompletedWork, error) {
	row := d.db.QueryRow(
		`SELECT id, work_id, completed_at_ms, tier, languages, frameworks, datastores
		 FROM completed_work WHERE id = ?`, id,
	)
	return scanWork(row)
}

// ListWork returns the full history ordered by completion time ascending.
// The engine sorts defensively anyway; the ordering here is for display.
func (d *DB) ListWork() ([]domain.CompletedWork, error) {
	rows, err := d.db.Query(
		`SELECT id, work_id, completed_at_ms, tier, languages, frameworks, datastores
		 FROM completed_work ORDER BY completed_at_ms ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []domain.CompletedWork
	for rows.Next() {
		w, err := scanWork(rows)
		if err != nil {
			return nil, err
		}
		history = append(history, *w)
	}
	return history, rows.Err()
}

// WorkCount returns the number of history records.
func (d *DB) WorkCount() (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM completed_work`).Scan(&count)
	return count, err
}

func scanWork(s scanner) (*domain.CompletedWork, error) {
	var w domain.CompletedWork
	var ms int64
	var tier, langs, fws, dss string

	err := s.Scan(&w.ID, &w.WorkID, &ms, &tier, &langs, &fws, &dss)
	if err == sql.ErrNoRows {
		return nil, nil // Not found, no error
	}
	if err != nil {
		return nil, err
	}

	w.CompletedAt = time.UnixMilli(ms).UTC()
	w.Tier = domain.Tier(tier)
	if w.Languages, err = decodeTags(langs); err != nil {
		return nil, err
	}
	if w.Frameworks, err = decodeTags(fws); err != nil {
		return nil, err
	}
	if w.Datastores, err = decodeTags(dss); err != nil {
		return nil, err
	}
	return &w, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(b), nil
}

func decodeTags(raw string) ([]string, error) {
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return tags, nil
}
