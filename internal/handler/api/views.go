// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"time"

	"github.com/aubepine/site-go/internal/markdown"
	"github.com/aubepine/site-go/internal/model"
)

// The view types below are the public, locale-resolved shapes of the content
// records: every LocalizedText collapses to one string for the requested
// locale, and markdown fields arrive as sanitized HTML.

// HeroView is a resolved home page banner.
type HeroView struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url"`
	Position int64  `json:"position"`
	IsActive bool   `json:"is_active"`
}

func heroView(h model.Hero, locale model.Locale) HeroView {
	return HeroView{
		ID:       h.ID,
		Title:    h.Title.Resolve(locale),
		Subtitle: h.Subtitle.Resolve(locale),
		ImageURL: h.ImageURL,
		Position: h.Position,
		IsActive: h.IsActive,
	}
}

// AboutSectionView is a resolved prose block. BodyHTML is rendered markdown.
type AboutSectionView struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	BodyHTML string `json:"body_html"`
	ImageURL string `json:"image_url"`
	Position int64  `json:"position"`
}

func aboutSectionView(a model.AboutSection, locale model.Locale) AboutSectionView {
	return AboutSectionView{
		ID:       a.ID,
		Title:    a.Title.Resolve(locale),
		BodyHTML: markdown.RenderOrRaw(a.Body.Resolve(locale)),
		ImageURL: a.ImageURL,
		Position: a.Position,
	}
}

// FeatureView is a resolved selling point.
type FeatureView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Position    int64  `json:"position"`
}

func featureView(f model.Feature, locale model.Locale) FeatureView {
	return FeatureView{
		ID:          f.ID,
		Title:       f.Title.Resolve(locale),
		Description: f.Description.Resolve(locale),
		Icon:        f.Icon,
		Position:    f.Position,
	}
}

// RoomView is a resolved room. DescriptionHTML is rendered markdown.
type RoomView struct {
	ID              int64    `json:"id"`
	Slug            string   `json:"slug"`
	Name            string   `json:"name"`
	DescriptionHTML string   `json:"description_html"`
	Amenities       string   `json:"amenities"`
	PriceSingle     string   `json:"price_single"`
	PriceDouble     string   `json:"price_double"`
	Capacity        string   `json:"capacity"`
	PetsAllowed     bool     `json:"pets_allowed"`
	Gallery         []string `json:"gallery"`
	Position        int64    `json:"position"`
}

func roomView(r model.Room, locale model.Locale) RoomView {
	return RoomView{
		ID:              r.ID,
		Slug:            r.Slug,
		Name:            r.Name.Resolve(locale),
		DescriptionHTML: markdown.RenderOrRaw(r.Description.Resolve(locale)),
		Amenities:       r.Amenities.Resolve(locale),
		PriceSingle:     r.PriceSingle,
		PriceDouble:     r.PriceDouble,
		Capacity:        r.Capacity,
		PetsAllowed:     r.PetsAllowed,
		Gallery:         r.Gallery,
		Position:        r.Position,
	}
}

// TestimonialView is a resolved guest quote.
type TestimonialView struct {
	ID     int64  `json:"id"`
	Author string `json:"author"`
	Quote  string `json:"quote"`
	Rating int64  `json:"rating"`
}

func testimonialView(t model.Testimonial, locale model.Locale) TestimonialView {
	return TestimonialView{
		ID:     t.ID,
		Author: t.Author,
		Quote:  t.Quote.Resolve(locale),
		Rating: t.Rating,
	}
}

// GalleryImageView is a resolved gallery photo.
type GalleryImageView struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	Alt      string `json:"alt"`
	Caption  string `json:"caption"`
	Category string `json:"category"`
	Position int64  `json:"position"`
}

func galleryImageView(g model.GalleryImage, locale model.Locale) GalleryImageView {
	return GalleryImageView{
		ID:       g.ID,
		URL:      g.URL,
		Alt:      g.Alt.Resolve(locale),
		Caption:  g.Caption.Resolve(locale),
		Category: g.Category,
		Position: g.Position,
	}
}

// EventView is a resolved event. DescriptionHTML is rendered markdown.
type EventView struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	DescriptionHTML string    `json:"description_html"`
	StartsAt        time.Time `json:"starts_at"`
	ImageURL        string    `json:"image_url"`
	IsPublished     bool      `json:"is_published"`
}

func eventView(e model.Event, locale model.Locale) EventView {
	return EventView{
		ID:              e.ID,
		Title:           e.Title.Resolve(locale),
		DescriptionHTML: markdown.RenderOrRaw(e.Description.Resolve(locale)),
		StartsAt:        e.StartsAt,
		ImageURL:        e.ImageURL,
		IsPublished:     e.IsPublished,
	}
}

// PageHeroView is a resolved page banner.
type PageHeroView struct {
	PageKey  string `json:"page_key"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url"`
}

func pageHeroView(p model.PageHero, locale model.Locale) PageHeroView {
	return PageHeroView{
		PageKey:  p.PageKey,
		Title:    p.Title.Resolve(locale),
		Subtitle: p.Subtitle.Resolve(locale),
		ImageURL: p.ImageURL,
	}
}
