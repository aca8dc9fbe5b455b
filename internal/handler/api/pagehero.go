// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aubepine/site-go/internal/middleware"
	"github.com/aubepine/site-go/internal/model"
)

// ListPageHeroes handles GET /api/page-heroes: the full set of page banners
// with all language variants, for the back office.
func (h *Handler) ListPageHeroes(w http.ResponseWriter, r *http.Request) {
	heroes, err := h.queries.ListPageHeroes(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list page heroes")
		return
	}
	WriteSuccess(w, heroes, &Meta{Total: len(heroes)})
}

// GetPageHero handles GET /api/page-hero/{pageKey}: the resolved banner for
// one marketing page.
func (h *Handler) GetPageHero(w http.ResponseWriter, r *http.Request) {
	pageKey := chi.URLParam(r, "pageKey")
	if !model.IsValidPageKey(pageKey) {
		WriteNotFound(w, "Unknown page")
		return
	}

	hero, err := h.queries.GetPageHeroByKey(r.Context(), pageKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Page hero not found")
		} else {
			WriteInternalError(w, "Failed to retrieve page hero")
		}
		return
	}

	WriteSuccess(w, pageHeroView(hero, middleware.GetLocale(r)), nil)
}

// GetPageHeroRaw handles GET /api/page-hero/{pageKey}/raw: the full record
// with all language variants, for editing.
func (h *Handler) GetPageHeroRaw(w http.ResponseWriter, r *http.Request) {
	pageKey := chi.URLParam(r, "pageKey")
	if !model.IsValidPageKey(pageKey) {
		WriteNotFound(w, "Unknown page")
		return
	}

	hero, err := h.queries.GetPageHeroByKey(r.Context(), pageKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Page hero not found")
		} else {
			WriteInternalError(w, "Failed to retrieve page hero")
		}
		return
	}

	WriteSuccess(w, hero, nil)
}

// UpdatePageHero handles PUT /api/page-hero/{pageKey}. The page key is
// immutable; the body's key, if any, is ignored.
func (h *Handler) UpdatePageHero(w http.ResponseWriter, r *http.Request) {
	pageKey := chi.URLParam(r, "pageKey")
	if !model.IsValidPageKey(pageKey) {
		WriteNotFound(w, "Unknown page")
		return
	}

	existing, err := h.queries.GetPageHeroByKey(r.Context(), pageKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Page hero not found")
		} else {
			WriteInternalError(w, "Failed to retrieve page hero")
		}
		return
	}

	var hero model.PageHero
	if err := decodeJSON(r, &hero); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	hero.ID = existing.ID
	hero.PageKey = existing.PageKey

	if hero.Title.Fr == "" {
		WriteValidationError(w, map[string]string{"title": "French title is required"})
		return
	}

	updated, err := h.queries.UpdatePageHero(r.Context(), hero)
	if err != nil {
		WriteInternalError(w, "Failed to update page hero")
		return
	}
	WriteSuccess(w, updated, nil)
}
