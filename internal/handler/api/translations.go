// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/aubepine/site-go/internal/model"
	"github.com/aubepine/site-go/internal/translations"
)

// TranslationsResponse is the body for GET /api/translations.
type TranslationsResponse struct {
	Rows       []translations.Row      `json:"rows"`
	Completion translations.Completion `json:"completion"`
	Dirty      int                     `json:"dirty"`
}

// GetTranslations handles GET /api/translations: the full workspace, reloaded
// from storage, plus the completion metric.
func (h *Handler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	if h.workspace.DirtyCount() == 0 {
		if err := h.workspace.Load(r.Context()); err != nil {
			WriteInternalError(w, "Failed to load translations")
			return
		}
	}

	WriteSuccess(w, TranslationsResponse{
		Rows:       h.workspace.Rows(),
		Completion: h.workspace.Completion(),
		Dirty:      h.workspace.DirtyCount(),
	}, nil)
}

// EditTranslationRequest is the body for PUT /api/translations: one edit to
// one row's EN or NL value.
type EditTranslationRequest struct {
	Model  string `json:"model"`
	ID     int64  `json:"id"`
	Field  string `json:"field"`
	Locale string `json:"locale"`
	Value  string `json:"value"`
}

// EditTranslation handles PUT /api/translations. The edit lands in the
// workspace and, with autosave on, arms the debounced write.
func (h *Handler) EditTranslation(w http.ResponseWriter, r *http.Request) {
	var req EditTranslationRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	locale, ok := model.LookupLocale(req.Locale)
	if !ok {
		WriteValidationError(w, map[string]string{"locale": "Unknown locale"})
		return
	}

	key := translations.RowKey{Model: req.Model, ID: req.ID, Field: req.Field}
	if err := h.workspace.Edit(key, locale, req.Value); err != nil {
		WriteBadRequest(w, err.Error(), nil)
		return
	}

	WriteSuccess(w, map[string]any{
		"dirty":      h.workspace.DirtyCount(),
		"completion": h.workspace.Completion(),
	}, nil)
}

// SaveAllTranslations handles POST /api/translations/save-all: persists every
// dirty row sequentially and reports per-row failures.
func (h *Handler) SaveAllTranslations(w http.ResponseWriter, r *http.Request) {
	result := h.workspace.SaveAll(r.Context())

	if len(result.Failed) > 0 {
		h.logger.Warn("translation save-all finished with failures",
			"category", "content",
			"saved", result.Saved,
			"failed", len(result.Failed),
		)
	}

	WriteSuccess(w, result, nil)
}
