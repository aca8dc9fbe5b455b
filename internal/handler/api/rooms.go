// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aubepine/site-go/internal/middleware"
	"github.com/aubepine/site-go/internal/model"
	"github.com/aubepine/site-go/internal/util"
)

// ListRooms handles GET /api/rooms.
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	rooms, err := h.queries.ListRooms(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list rooms")
		return
	}

	views := make([]RoomView, len(rooms))
	for i, room := range rooms {
		views[i] = roomView(room, locale)
	}
	WriteSuccess(w, views, &Meta{Total: len(views)})
}

// GetRoomBySlug handles GET /api/rooms/{slug}: the public room detail,
// resolved for the request locale.
func (h *Handler) GetRoomBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !util.IsValidSlug(slug) {
		WriteNotFound(w, "Room not found")
		return
	}

	room, err := h.queries.GetRoomBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Room not found")
		} else {
			WriteInternalError(w, "Failed to retrieve room")
		}
		return
	}

	WriteSuccess(w, roomView(room, middleware.GetLocale(r)), nil)
}

// GetRoom handles GET /api/rooms/id/{id}. Returns the full record with all
// three language variants, for editing.
func (h *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, ok := requireEntityByID(w, r, "room", func(id int64) (model.Room, error) {
		return h.queries.GetRoomByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, room, nil)
}

func validateRoom(room model.Room) map[string]string {
	fieldErrors := map[string]string{}
	if room.Name.Fr == "" {
		fieldErrors["name"] = "French name is required"
	}
	if room.Description.Fr == "" {
		fieldErrors["description"] = "French description is required"
	}
	return fieldErrors
}

// uniqueRoomSlug derives a slug from the base and appends a numeric suffix
// until no other room uses it. excludeID skips the room being updated.
func (h *Handler) uniqueRoomSlug(r *http.Request, base string, excludeID int64) (string, error) {
	slug := util.Slugify(base)
	if slug == "" {
		slug = "room"
	}

	candidate := slug
	for i := 2; ; i++ {
		existing, err := h.queries.GetRoomBySlug(r.Context(), candidate)
		if errors.Is(err, sql.ErrNoRows) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		if existing.ID == excludeID {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
}

// CreateRoom handles POST /api/rooms. An empty slug is derived from the
// French name; either way the slug is normalized and made unique.
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var room model.Room
	if err := decodeJSON(r, &room); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	if fieldErrors := validateRoom(room); len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	base := room.Slug
	if base == "" {
		base = room.Name.Fr
	}
	slug, err := h.uniqueRoomSlug(r, base, 0)
	if err != nil {
		WriteInternalError(w, "Failed to generate room slug")
		return
	}
	room.Slug = slug

	created, err := h.queries.CreateRoom(r.Context(), room)
	if err != nil {
		WriteInternalError(w, "Failed to create room")
		return
	}
	WriteCreated(w, created)
}

// UpdateRoom handles PUT /api/rooms/{id}. Full-record update, last write wins.
func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "room", func(id int64) (model.Room, error) {
		return h.queries.GetRoomByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var room model.Room
	if err := decodeJSON(r, &room); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	room.ID = existing.ID

	if fieldErrors := validateRoom(room); len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	base := room.Slug
	if base == "" {
		base = room.Name.Fr
	}
	slug, err := h.uniqueRoomSlug(r, base, existing.ID)
	if err != nil {
		WriteInternalError(w, "Failed to generate room slug")
		return
	}
	room.Slug = slug

	updated, err := h.queries.UpdateRoom(r.Context(), room)
	if err != nil {
		WriteInternalError(w, "Failed to update room")
		return
	}
	WriteSuccess(w, updated, nil)
}

// DeleteRoom handles DELETE /api/rooms/{id}. The gallery entries are weak
// references; the uploaded files stay on disk.
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	room, ok := requireEntityByID(w, r, "room", func(id int64) (model.Room, error) {
		return h.queries.GetRoomByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteRoom(r.Context(), room.ID); err != nil {
		WriteInternalError(w, "Failed to delete room")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
