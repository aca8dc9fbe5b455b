// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/aubepine/site-go/internal/model"
)

// CreateLogEntryParams holds the fields for CreateLogEntry.
type CreateLogEntryParams struct {
	Level     string
	Category  string
	Message   string
	Metadata  string
	CreatedAt time.Time
}

// CreateLogEntry inserts an audit log entry.
func (q *Queries) CreateLogEntry(ctx context.Context, arg CreateLogEntryParams) (model.LogEntry, error) {
	var e model.LogEntry
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO log_entries (level, category, message, metadata, created_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, level, category, message, metadata, created_at`,
		arg.Level, arg.Category, arg.Message, arg.Metadata, arg.CreatedAt)
	err := row.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.Metadata, &e.CreatedAt)
	return e, err
}

// ListLogEntries returns the most recent log entries, newest first.
func (q *Queries) ListLogEntries(ctx context.Context, limit int64) ([]model.LogEntry, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, level, category, message, metadata, created_at
		FROM log_entries ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LogEntry
	for rows.Next() {
		var e model.LogEntry
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// PruneLogEntries deletes log entries older than the cutoff. Returns the
// number of rows removed.
func (q *Queries) PruneLogEntries(ctx context.Context, before time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM log_entries WHERE created_at < ?`, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
