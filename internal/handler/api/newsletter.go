// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/aubepine/site-go/internal/i18n"
	"github.com/aubepine/site-go/internal/middleware"
	"github.com/aubepine/site-go/internal/model"
)

// SubscribeRequest is the body for POST /api/newsletter.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/newsletter. Subscribing an address that is
// already on the list succeeds without creating a duplicate.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	lang := string(middleware.GetLocale(r))

	var req SubscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, i18n.T(lang, "newsletter.invalid_email"), nil)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(req.Email); err != nil {
		WriteBadRequest(w, i18n.T(lang, "newsletter.invalid_email"), nil)
		return
	}

	ctx := r.Context()
	if _, err := h.queries.GetSubscriberByEmail(ctx, req.Email); err == nil {
		WriteSuccess(w, map[string]string{"message": i18n.T(lang, "newsletter.subscribed")}, nil)
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		WriteInternalError(w, i18n.T(lang, "common.internal_error"))
		return
	}

	if _, err := h.queries.CreateSubscriber(ctx, req.Email, time.Now()); err != nil {
		// A concurrent signup can hit the unique index; that is still a
		// successful subscription from the visitor's point of view.
		if strings.Contains(err.Error(), "UNIQUE") {
			WriteSuccess(w, map[string]string{"message": i18n.T(lang, "newsletter.subscribed")}, nil)
			return
		}
		WriteInternalError(w, i18n.T(lang, "common.internal_error"))
		return
	}

	WriteSuccess(w, map[string]string{"message": i18n.T(lang, "newsletter.subscribed")}, nil)
}

// ListSubscribers handles GET /api/newsletter.
func (h *Handler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.queries.ListSubscribers(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list subscribers")
		return
	}
	WriteSuccess(w, subscribers, &Meta{Total: len(subscribers)})
}

// DeleteSubscriber handles DELETE /api/newsletter/{id}.
func (h *Handler) DeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	subscriber, ok := requireEntityByID(w, r, "subscriber", func(id int64) (model.Subscriber, error) {
		return h.queries.GetSubscriberByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteSubscriber(r.Context(), subscriber.ID); err != nil {
		WriteInternalError(w, "Failed to delete subscriber")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
