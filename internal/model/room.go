// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Room is one bookable room type. Description is markdown. Gallery holds an
// ordered list of uploaded image URLs; these are weak references, deleting a
// room never removes the underlying files.
type Room struct {
	ID          int64         `json:"id"`
	Slug        string        `json:"slug"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Amenities   LocalizedText `json:"amenities"`
	PriceSingle string        `json:"price_single"`
	PriceDouble string        `json:"price_double"`
	Capacity    string        `json:"capacity"`
	PetsAllowed bool          `json:"pets_allowed"`
	Gallery     []string      `json:"gallery"`
	Position    int64         `json:"position"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// TranslatableFields implements Translatable.
func (r *Room) TranslatableFields() []string {
	return []string{"name", "description", "amenities"}
}

// LocalizedField implements Translatable.
func (r *Room) LocalizedField(name string) *LocalizedText {
	switch name {
	case "name":
		return &r.Name
	case "description":
		return &r.Description
	case "amenities":
		return &r.Amenities
	}
	return nil
}
