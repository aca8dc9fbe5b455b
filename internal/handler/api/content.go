// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/aubepine/site-go/internal/middleware"
	"github.com/aubepine/site-go/internal/model"
)

// ---------------------------------------------------------------------------
// Heroes
// ---------------------------------------------------------------------------

// ListHeroes handles GET /api/heroes. Public requests get active banners
// resolved for the request locale; an authenticated ?all=true request gets
// every record.
func (h *Handler) ListHeroes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale := middleware.GetLocale(r)

	var (
		heroes []model.Hero
		err    error
	)
	if h.wantsAll(r) {
		heroes, err = h.queries.ListHeroes(ctx)
	} else {
		heroes, err = h.queries.ListActiveHeroes(ctx)
	}
	if err != nil {
		WriteInternalError(w, "Failed to list heroes")
		return
	}

	views := make([]HeroView, len(heroes))
	for i, hero := range heroes {
		views[i] = heroView(hero, locale)
	}
	WriteSuccess(w, views, &Meta{Total: len(views)})
}

// GetHero handles GET /api/heroes/{id}. Returns the full record with all
// three language variants, for editing.
func (h *Handler) GetHero(w http.ResponseWriter, r *http.Request) {
	hero, ok := requireEntityByID(w, r, "hero", func(id int64) (model.Hero, error) {
		return h.queries.GetHeroByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, hero, nil)
}

// CreateHero handles POST /api/heroes.
func (h *Handler) CreateHero(w http.ResponseWriter, r *http.Request) {
	var hero model.Hero
	if err := decodeJSON(r, &hero); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	fieldErrors := map[string]string{}
	if hero.Title.Fr == "" {
		fieldErrors["title"] = "French title is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	created, err := h.queries.CreateHero(r.Context(), hero)
	if err != nil {
		WriteInternalError(w, "Failed to create hero")
		return
	}
	WriteCreated(w, created)
}

// UpdateHero handles PUT /api/heroes/{id}. Full-record update, last write wins.
func (h *Handler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "hero", func(id int64) (model.Hero, error) {
		return h.queries.GetHeroByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var hero model.Hero
	if err := decodeJSON(r, &hero); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	hero.ID = existing.ID

	if hero.Title.Fr == "" {
		WriteValidationError(w, map[string]string{"title": "French title is required"})
		return
	}

	updated, err := h.queries.UpdateHero(r.Context(), hero)
	if err != nil {
		WriteInternalError(w, "Failed to update hero")
		return
	}
	WriteSuccess(w, updated, nil)
}

// DeleteHero handles DELETE /api/heroes/{id}.
func (h *Handler) DeleteHero(w http.ResponseWriter, r *http.Request) {
	hero, ok := requireEntityByID(w, r, "hero", func(id int64) (model.Hero, error) {
		return h.queries.GetHeroByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteHero(r.Context(), hero.ID); err != nil {
		WriteInternalError(w, "Failed to delete hero")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// About sections
// ---------------------------------------------------------------------------

// ListAboutSections handles GET /api/about.
func (h *Handler) ListAboutSections(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	sections, err := h.queries.ListAboutSections(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list about sections")
		return
	}

	views := make([]AboutSectionView, len(sections))
	for i, s := range sections {
		views[i] = aboutSectionView(s, locale)
	}
	WriteSuccess(w, views, &Meta{Total: len(views)})
}

// GetAboutSection handles GET /api/about/{id}.
func (h *Handler) GetAboutSection(w http.ResponseWriter, r *http.Request) {
	section, ok := requireEntityByID(w, r, "about section", func(id int64) (model.AboutSection, error) {
		return h.queries.GetAboutSectionByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, section, nil)
}

// CreateAboutSection handles POST /api/about.
func (h *Handler) CreateAboutSection(w http.ResponseWriter, r *http.Request) {
	var section model.AboutSection
	if err := decodeJSON(r, &section); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	fieldErrors := map[string]string{}
	if section.Title.Fr == "" {
		fieldErrors["title"] = "French title is required"
	}
	if section.Body.Fr == "" {
		fieldErrors["body"] = "French body is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	created, err := h.queries.CreateAboutSection(r.Context(), section)
	if err != nil {
		WriteInternalError(w, "Failed to create about section")
		return
	}
	WriteCreated(w, created)
}

// UpdateAboutSection handles PUT /api/about/{id}.
func (h *Handler) UpdateAboutSection(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "about section", func(id int64) (model.AboutSection, error) {
		return h.queries.GetAboutSectionByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var section model.AboutSection
	if err := decodeJSON(r, &section); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	section.ID = existing.ID

	fieldErrors := map[string]string{}
	if section.Title.Fr == "" {
		fieldErrors["title"] = "French title is required"
	}
	if section.Body.Fr == "" {
		fieldErrors["body"] = "French body is required"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	updated, err := h.queries.UpdateAboutSection(r.Context(), section)
	if err != nil {
		WriteInternalError(w, "Failed to update about section")
		return
	}
	WriteSuccess(w, updated, nil)
}

// DeleteAboutSection handles DELETE /api/about/{id}.
func (h *Handler) DeleteAboutSection(w http.ResponseWriter, r *http.Request) {
	section, ok := requireEntityByID(w, r, "about section", func(id int64) (model.AboutSection, error) {
		return h.queries.GetAboutSectionByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteAboutSection(r.Context(), section.ID); err != nil {
		WriteInternalError(w, "Failed to delete about section")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Features
// ---------------------------------------------------------------------------

// ListFeatures handles GET /api/features.
func (h *Handler) ListFeatures(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	features, err := h.queries.ListFeatures(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list features")
		return
	}

	views := make([]FeatureView, len(features))
	for i, f := range features {
		views[i] = featureView(f, locale)
	}
	WriteSuccess(w, views, &Meta{Total: len(views)})
}

// GetFeature handles GET /api/features/{id}.
func (h *Handler) GetFeature(w http.ResponseWriter, r *http.Request) {
	feature, ok := requireEntityByID(w, r, "feature", func(id int64) (model.Feature, error) {
		return h.queries.GetFeatureByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, feature, nil)
}

// CreateFeature handles POST /api/features.
func (h *Handler) CreateFeature(w http.ResponseWriter, r *http.Request) {
	var feature model.Feature
	if err := decodeJSON(r, &feature); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	if feature.Title.Fr == "" {
		WriteValidationError(w, map[string]string{"title": "French title is required"})
		return
	}

	created, err := h.queries.CreateFeature(r.Context(), feature)
	if err != nil {
		WriteInternalError(w, "Failed to create feature")
		return
	}
	WriteCreated(w, created)
}

// UpdateFeature handles PUT /api/features/{id}.
func (h *Handler) UpdateFeature(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "feature", func(id int64) (model.Feature, error) {
		return h.queries.GetFeatureByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var feature model.Feature
	if err := decodeJSON(r, &feature); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	feature.ID = existing.ID

	if feature.Title.Fr == "" {
		WriteValidationError(w, map[string]string{"title": "French title is required"})
		return
	}

	updated, err := h.queries.UpdateFeature(r.Context(), feature)
	if err != nil {
		WriteInternalError(w, "Failed to update feature")
		return
	}
	WriteSuccess(w, updated, nil)
}

// DeleteFeature handles DELETE /api/features/{id}.
func (h *Handler) DeleteFeature(w http.ResponseWriter, r *http.Request) {
	feature, ok := requireEntityByID(w, r, "feature", func(id int64) (model.Feature, error) {
		return h.queries.GetFeatureByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteFeature(r.Context(), feature.ID); err != nil {
		WriteInternalError(w, "Failed to delete feature")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Testimonials
// ---------------------------------------------------------------------------

// ListTestimonials handles GET /api/testimonials. Public requests get active
// quotes; an authenticated ?all=true request gets every record.
func (h *Handler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale := middleware.GetLocale(r)

	var (
		items []model.Testimonial
		err   error
	)
	if h.wantsAll(r) {
		items, err = h.queries.ListTestimonials(ctx)
	} else {
		items, err = h.queries.ListActiveTestimonials(ctx)
	}
	if err != nil {
		WriteInternalError(w, "Failed to list testimonials")
		return
	}

	views := make([]TestimonialView, len(items))
	for i, t := range items {
		views[i] = testimonialView(t, locale)
	}
	WriteSuccess(w, views, &Meta{Total: len(views)})
}

// GetTestimonial handles GET /api/testimonials/{id}.
func (h *Handler) GetTestimonial(w http.ResponseWriter, r *http.Request) {
	testimonial, ok := requireEntityByID(w, r, "testimonial", func(id int64) (model.Testimonial, error) {
		return h.queries.GetTestimonialByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, testimonial, nil)
}

func validateTestimonial(t model.Testimonial) map[string]string {
	fieldErrors := map[string]string{}
	if t.Author == "" {
		fieldErrors["author"] = "Author is required"
	}
	if t.Quote.Fr == "" {
		fieldErrors["quote"] = "French quote is required"
	}
	if t.Rating < 1 || t.Rating > 5 {
		fieldErrors["rating"] = "Rating must be between 1 and 5"
	}
	return fieldErrors
}

// CreateTestimonial handles POST /api/testimonials.
func (h *Handler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var testimonial model.Testimonial
	if err := decodeJSON(r, &testimonial); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	if fieldErrors := validateTestimonial(testimonial); len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	created, err := h.queries.CreateTestimonial(r.Context(), testimonial)
	if err != nil {
		WriteInternalError(w, "Failed to create testimonial")
		return
	}
	WriteCreated(w, created)
}

// UpdateTestimonial handles PUT /api/testimonials/{id}.
func (h *Handler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "testimonial", func(id int64) (model.Testimonial, error) {
		return h.queries.GetTestimonialByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var testimonial model.Testimonial
	if err := decodeJSON(r, &testimonial); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	testimonial.ID = existing.ID

	if fieldErrors := validateTestimonial(testimonial); len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	updated, err := h.queries.UpdateTestimonial(r.Context(), testimonial)
	if err != nil {
		WriteInternalError(w, "Failed to update testimonial")
		return
	}
	WriteSuccess(w, updated, nil)
}

// DeleteTestimonial handles DELETE /api/testimonials/{id}.
func (h *Handler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	testimonial, ok := requireEntityByID(w, r, "testimonial", func(id int64) (model.Testimonial, error) {
		return h.queries.GetTestimonialByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteTestimonial(r.Context(), testimonial.ID); err != nil {
		WriteInternalError(w, "Failed to delete testimonial")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Gallery
// ---------------------------------------------------------------------------

// ListGalleryImages handles GET /api/gallery.
func (h *Handler) ListGalleryImages(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r)

	images, err := h.queries.ListGalleryImages(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list gallery images")
		return
	}

	views := make([]GalleryImageView, len(images))
	for i, g := range images {
		views[i] = galleryImageView(g, locale)
	}
	WriteSuccess(w, views, &Meta{Total: len(views)})
}

// GetGalleryImage handles GET /api/gallery/{id}.
func (h *Handler) GetGalleryImage(w http.ResponseWriter, r *http.Request) {
	image, ok := requireEntityByID(w, r, "gallery image", func(id int64) (model.GalleryImage, error) {
		return h.queries.GetGalleryImageByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, image, nil)
}

// CreateGalleryImage handles POST /api/gallery.
func (h *Handler) CreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	var image model.GalleryImage
	if err := decodeJSON(r, &image); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	if image.URL == "" {
		WriteValidationError(w, map[string]string{"url": "Image URL is required"})
		return
	}

	created, err := h.queries.CreateGalleryImage(r.Context(), image)
	if err != nil {
		WriteInternalError(w, "Failed to create gallery image")
		return
	}
	WriteCreated(w, created)
}

// UpdateGalleryImage handles PUT /api/gallery/{id}.
func (h *Handler) UpdateGalleryImage(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "gallery image", func(id int64) (model.GalleryImage, error) {
		return h.queries.GetGalleryImageByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var image model.GalleryImage
	if err := decodeJSON(r, &image); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}
	image.ID = existing.ID

	if image.URL == "" {
		WriteValidationError(w, map[string]string{"url": "Image URL is required"})
		return
	}

	updated, err := h.queries.UpdateGalleryImage(r.Context(), image)
	if err != nil {
		WriteInternalError(w, "Failed to update gallery image")
		return
	}
	WriteSuccess(w, updated, nil)
}

// DeleteGalleryImage handles DELETE /api/gallery/{id}. The underlying files
// are not removed; gallery rows hold weak references.
func (h *Handler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	image, ok := requireEntityByID(w, r, "gallery image", func(id int64) (model.GalleryImage, error) {
		return h.queries.GetGalleryImageByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if err := h.queries.DeleteGalleryImage(r.Context(), image.ID); err != nil {
		WriteInternalError(w, "Failed to delete gallery image")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
