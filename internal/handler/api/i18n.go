// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aubepine/site-go/internal/i18n"
)

// I18nCatalogResponse is the body for GET /api/i18n/{locale}.
type I18nCatalogResponse struct {
	Locale   string            `json:"locale"`
	Messages map[string]string `json:"messages"`
}

// GetI18nCatalog handles GET /api/i18n/{locale}: the full message catalog for
// one locale, for the front end.
func (h *Handler) GetI18nCatalog(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	if !i18n.IsSupported(locale) {
		WriteNotFound(w, "Unsupported locale")
		return
	}

	messages := i18n.Messages(locale)
	if messages == nil {
		WriteInternalError(w, "Catalog not loaded")
		return
	}

	WriteSuccess(w, I18nCatalogResponse{
		Locale:   locale,
		Messages: messages,
	}, nil)
}
