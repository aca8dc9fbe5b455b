// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aubepine/site-go/internal/model"
)

const roomColumns = `id, slug, name_fr, name_en, name_nl,
	description_fr, description_en, description_nl,
	amenities_fr, amenities_en, amenities_nl,
	price_single, price_double, capacity, pets_allowed, gallery, position,
	created_at, updated_at`

func scanRoom(row interface{ Scan(...any) error }) (model.Room, error) {
	var r model.Room
	var gallery string
	err := row.Scan(&r.ID, &r.Slug,
		&r.Name.Fr, &r.Name.En, &r.Name.Nl,
		&r.Description.Fr, &r.Description.En, &r.Description.Nl,
		&r.Amenities.Fr, &r.Amenities.En, &r.Amenities.Nl,
		&r.PriceSingle, &r.PriceDouble, &r.Capacity, &r.PetsAllowed, &gallery, &r.Position,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal([]byte(gallery), &r.Gallery); err != nil {
		return r, fmt.Errorf("decoding room gallery: %w", err)
	}
	return r, nil
}

func encodeGallery(gallery []string) (string, error) {
	if gallery == nil {
		gallery = []string{}
	}
	data, err := json.Marshal(gallery)
	if err != nil {
		return "", fmt.Errorf("encoding room gallery: %w", err)
	}
	return string(data), nil
}

// CreateRoom inserts a room and returns it.
func (q *Queries) CreateRoom(ctx context.Context, r model.Room) (model.Room, error) {
	gallery, err := encodeGallery(r.Gallery)
	if err != nil {
		return model.Room{}, err
	}
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO rooms (slug, name_fr, name_en, name_nl,
			description_fr, description_en, description_nl,
			amenities_fr, amenities_en, amenities_nl,
			price_single, price_double, capacity, pets_allowed, gallery, position,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+roomColumns,
		r.Slug, r.Name.Fr, r.Name.En, r.Name.Nl,
		r.Description.Fr, r.Description.En, r.Description.Nl,
		r.Amenities.Fr, r.Amenities.En, r.Amenities.Nl,
		r.PriceSingle, r.PriceDouble, r.Capacity, r.PetsAllowed, gallery, r.Position,
		now, now)
	return scanRoom(row)
}

// GetRoomByID fetches a room by id.
func (q *Queries) GetRoomByID(ctx context.Context, id int64) (model.Room, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id)
	return scanRoom(row)
}

// GetRoomBySlug fetches a room by slug.
func (q *Queries) GetRoomBySlug(ctx context.Context, slug string) (model.Room, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM rooms WHERE slug = ?`, slug)
	return scanRoom(row)
}

// CountRoomsBySlug returns the number of rooms carrying a slug.
func (q *Queries) CountRoomsBySlug(ctx context.Context, slug string) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms WHERE slug = ?`, slug).Scan(&n)
	return n, err
}

// ListRooms returns all rooms ordered by position.
func (q *Queries) ListRooms(ctx context.Context) ([]model.Room, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []model.Room
	for rows.Next() {
		r, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}

// UpdateRoom replaces all mutable fields of a room. Full-record update, last
// write wins.
func (q *Queries) UpdateRoom(ctx context.Context, r model.Room) (model.Room, error) {
	gallery, err := encodeGallery(r.Gallery)
	if err != nil {
		return model.Room{}, err
	}
	row := q.db.QueryRowContext(ctx, `
		UPDATE rooms SET slug = ?, name_fr = ?, name_en = ?, name_nl = ?,
			description_fr = ?, description_en = ?, description_nl = ?,
			amenities_fr = ?, amenities_en = ?, amenities_nl = ?,
			price_single = ?, price_double = ?, capacity = ?, pets_allowed = ?,
			gallery = ?, position = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+roomColumns,
		r.Slug, r.Name.Fr, r.Name.En, r.Name.Nl,
		r.Description.Fr, r.Description.En, r.Description.Nl,
		r.Amenities.Fr, r.Amenities.En, r.Amenities.Nl,
		r.PriceSingle, r.PriceDouble, r.Capacity, r.PetsAllowed,
		gallery, r.Position, time.Now(), r.ID)
	return scanRoom(row)
}

// DeleteRoom removes a room by id. Gallery URLs are weak references, the
// underlying files are not touched.
func (q *Queries) DeleteRoom(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	return err
}
