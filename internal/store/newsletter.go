// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/aubepine/site-go/internal/model"
)

// CreateSubscriber inserts a newsletter subscriber. The email column carries a
// UNIQUE constraint; duplicates fail at the database.
func (q *Queries) CreateSubscriber(ctx context.Context, email string, at time.Time) (model.Subscriber, error) {
	var s model.Subscriber
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO subscribers (email, created_at) VALUES (?, ?)
		RETURNING id, email, created_at`, email, at)
	err := row.Scan(&s.ID, &s.Email, &s.CreatedAt)
	return s, err
}

// GetSubscriberByID fetches a subscriber by id.
func (q *Queries) GetSubscriberByID(ctx context.Context, id int64) (model.Subscriber, error) {
	var s model.Subscriber
	row := q.db.QueryRowContext(ctx,
		`SELECT id, email, created_at FROM subscribers WHERE id = ?`, id)
	err := row.Scan(&s.ID, &s.Email, &s.CreatedAt)
	return s, err
}

// GetSubscriberByEmail fetches a subscriber by email.
func (q *Queries) GetSubscriberByEmail(ctx context.Context, email string) (model.Subscriber, error) {
	var s model.Subscriber
	row := q.db.QueryRowContext(ctx,
		`SELECT id, email, created_at FROM subscribers WHERE email = ?`, email)
	err := row.Scan(&s.ID, &s.Email, &s.CreatedAt)
	return s, err
}

// ListSubscribers returns all subscribers, newest first.
func (q *Queries) ListSubscribers(ctx context.Context) ([]model.Subscriber, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, email, created_at FROM subscribers ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// DeleteSubscriber removes a subscriber by id.
func (q *Queries) DeleteSubscriber(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM subscribers WHERE id = ?`, id)
	return err
}
