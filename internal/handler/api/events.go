// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/aubepine/site-go/internal/middleware"
	"github.com/aubepine/site-go/internal/model"
)

// ListEvents handles GET /api/events. Public requests get published events;
// an authenticated ?all=true request also gets drafts and past events.
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale := middleware.GetLocale(r)

	var (
		events []model.Event
		err    error
	)
	if h.wantsAll(r) {
		events, err = h.queries.ListEvents(ctx)
	} else {
		events, err = h.queries.ListPublishedEvents(ctx)
	}
	if err != nil {
		WriteInternalError(w, "Failed to list events")
		return
	}

	views := make([]EventView, len(events))
	for i, e := range events {
		views[i] = eventView(e, locale)
	}
	WriteSuccess(w, views, &Meta{Total: len(views)})
}

// GetEvent handles GET /api/events/{id}. Returns the full record with all
// three language variants, for editing.
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, ok := requireEntityByID(w, r, "event", func(id int64) (model.Event, error) {
		return h.queries.GetEventByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, event, nil)
}

func validateEvent(e model.Event) map[string]string {
	fieldErrors := map[string]string{}
	if e.Title.Fr == "" {
		fieldErrors["title"] = "French title is required"
	}
	if e.StartsAt.IsZero() {
		fieldErrors["starts_at"] = "Start time is required"
	}
	return fieldErrors
}

// CreateEvent handles POST /api/events.
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event model.Event
	if err := decodeJSON(r, &event); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	if fieldErrors := validateEvent(event); len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	created, err := h.queries.CreateEvent(r.Context(), event)
	if err != nil {
		WriteInternalError(w, "Failed to create event")
		return
	}
	WriteCreated(w, created)
}

// UpdateEvent handles PUT /api/events/{id}. Full-record update, last write
// wins.
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "event", func(id int64) (model.Event, error) {
		return h.queries.GetEventByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var event model.Event
	if err := decodeJSON(r, &event); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	event.ID = existing.ID

	if fieldErrors := validateEvent(event); len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	updated, err := h.queries.UpdateEvent(r.Context(), event)
	if err != nil {
		WriteInternalError(w, "Failed to update event")
		return
	}
	WriteSuccess(w, updated, nil)
}

// DeleteEvent handles DELETE /api/events/{id}.
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	event, ok := requireEntityByID(w, r, "event", func(id int64) (model.Event, error) {
		return h.queries.GetEventByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteEvent(r.Context(), event.ID); err != nil {
		WriteInternalError(w, "Failed to delete event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
