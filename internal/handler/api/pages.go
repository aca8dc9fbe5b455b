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

// PagePayload is the assembled content of one marketing page, fully resolved
// for a single locale. Collections are only present on the pages that use
// them.
type PagePayload struct {
	Page         string             `json:"page"`
	Locale       string             `json:"locale"`
	Hero         *PageHeroView      `json:"hero,omitempty"`
	Heroes       []HeroView         `json:"heroes,omitempty"`
	About        []AboutSectionView `json:"about,omitempty"`
	Features     []FeatureView      `json:"features,omitempty"`
	Testimonials []TestimonialView  `json:"testimonials,omitempty"`
	Rooms        []RoomView         `json:"rooms,omitempty"`
	Gallery      []GalleryImageView `json:"gallery,omitempty"`
	Events       []EventView        `json:"events,omitempty"`
}

// GetPage handles GET /api/pages/{page}?locale=xx: one request returns
// everything the front end needs to render a marketing page.
func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	if !model.IsValidPageKey(page) {
		WriteNotFound(w, "Unknown page")
		return
	}

	ctx := r.Context()
	locale := middleware.GetLocale(r)

	payload := PagePayload{
		Page:   page,
		Locale: string(locale),
	}

	pageHero, err := h.queries.GetPageHeroByKey(ctx, page)
	switch {
	case err == nil:
		view := pageHeroView(pageHero, locale)
		payload.Hero = &view
	case errors.Is(err, sql.ErrNoRows):
		// A page without a configured banner is still served.
	default:
		WriteInternalError(w, "Failed to assemble page")
		return
	}

	switch page {
	case model.PageHome:
		heroes, err := h.queries.ListActiveHeroes(ctx)
		if err != nil {
			WriteInternalError(w, "Failed to assemble page")
			return
		}
		for _, hero := range heroes {
			payload.Heroes = append(payload.Heroes, heroView(hero, locale))
		}

		about, err := h.queries.ListAboutSections(ctx)
		if err != nil {
			WriteInternalError(w, "Failed to assemble page")
			return
		}
		for _, s := range about {
			payload.About = append(payload.About, aboutSectionView(s, locale))
		}

		features, err := h.queries.ListFeatures(ctx)
		if err != nil {
			WriteInternalError(w, "Failed to assemble page")
			return
		}
		for _, f := range features {
			payload.Features = append(payload.Features, featureView(f, locale))
		}

		testimonials, err := h.queries.ListActiveTestimonials(ctx)
		if err != nil {
			WriteInternalError(w, "Failed to assemble page")
			return
		}
		for _, t := range testimonials {
			payload.Testimonials = append(payload.Testimonials, testimonialView(t, locale))
		}

	case model.PageRooms:
		rooms, err := h.queries.ListRooms(ctx)
		if err != nil {
			WriteInternalError(w, "Failed to assemble page")
			return
		}
		for _, room := range rooms {
			payload.Rooms = append(payload.Rooms, roomView(room, locale))
		}

	case model.PageGallery:
		images, err := h.queries.ListGalleryImages(ctx)
		if err != nil {
			WriteInternalError(w, "Failed to assemble page")
			return
		}
		for _, g := range images {
			payload.Gallery = append(payload.Gallery, galleryImageView(g, locale))
		}

	case model.PageEvents:
		events, err := h.queries.ListPublishedEvents(ctx)
		if err != nil {
			WriteInternalError(w, "Failed to assemble page")
			return
		}
		for _, e := range events {
			payload.Events = append(payload.Events, eventView(e, locale))
		}
	}

	WriteSuccess(w, payload, nil)
}
