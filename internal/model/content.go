// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Model names used by the translations manager and the event log.
const (
	ModelHero         = "hero"
	ModelAboutSection = "about_section"
	ModelFeature      = "feature"
	ModelRoom         = "room"
	ModelTestimonial  = "testimonial"
	ModelGalleryImage = "gallery_image"
	ModelEvent        = "event"
	ModelPageHero     = "page_hero"
)

// Page keys for the marketing pages a PageHero can belong to.
const (
	PageHome      = "home"
	PageRooms     = "rooms"
	PageGallery   = "gallery"
	PageEvents    = "events"
	PageSeminars  = "seminars"
	PageGiftCards = "giftcards"
	PageContact   = "contact"
)

// PageKeys lists all valid page keys.
var PageKeys = []string{
	PageHome, PageRooms, PageGallery, PageEvents,
	PageSeminars, PageGiftCards, PageContact,
}

// IsValidPageKey reports whether key names a known marketing page.
func IsValidPageKey(key string) bool {
	for _, k := range PageKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Hero is a rotating banner on the home page.
type Hero struct {
	ID        int64         `json:"id"`
	Title     LocalizedText `json:"title"`
	Subtitle  LocalizedText `json:"subtitle"`
	ImageURL  string        `json:"image_url"`
	Position  int64         `json:"position"`
	IsActive  bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// TranslatableFields implements Translatable.
func (h *Hero) TranslatableFields() []string { return []string{"title", "subtitle"} }

// LocalizedField implements Translatable.
func (h *Hero) LocalizedField(name string) *LocalizedText {
	switch name {
	case "title":
		return &h.Title
	case "subtitle":
		return &h.Subtitle
	}
	return nil
}

// AboutSection is a block of prose on the home page. Body is markdown.
type AboutSection struct {
	ID        int64         `json:"id"`
	Title     LocalizedText `json:"title"`
	Body      LocalizedText `json:"body"`
	ImageURL  string        `json:"image_url"`
	Position  int64         `json:"position"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (a *AboutSection) TranslatableFields() []string { return []string{"title", "body"} }

func (a *AboutSection) LocalizedField(name string) *LocalizedText {
	switch name {
	case "title":
		return &a.Title
	case "body":
		return &a.Body
	}
	return nil
}

// Feature is a short selling point (spa, garden, breakfast, ...).
type Feature struct {
	ID          int64         `json:"id"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Icon        string        `json:"icon"`
	Position    int64         `json:"position"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (f *Feature) TranslatableFields() []string { return []string{"title", "description"} }

func (f *Feature) LocalizedField(name string) *LocalizedText {
	switch name {
	case "title":
		return &f.Title
	case "description":
		return &f.Description
	}
	return nil
}

// Testimonial is a guest quote shown on the home page.
type Testimonial struct {
	ID        int64         `json:"id"`
	Author    string        `json:"author"`
	Quote     LocalizedText `json:"quote"`
	Rating    int64         `json:"rating"`
	IsActive  bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (t *Testimonial) TranslatableFields() []string { return []string{"quote"} }

func (t *Testimonial) LocalizedField(name string) *LocalizedText {
	if name == "quote" {
		return &t.Quote
	}
	return nil
}

// GalleryImage is one photo in the gallery page.
type GalleryImage struct {
	ID        int64         `json:"id"`
	URL       string        `json:"url"`
	Alt       LocalizedText `json:"alt"`
	Caption   LocalizedText `json:"caption"`
	Category  string        `json:"category"`
	Position  int64         `json:"position"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (g *GalleryImage) TranslatableFields() []string { return []string{"alt", "caption"} }

func (g *GalleryImage) LocalizedField(name string) *LocalizedText {
	switch name {
	case "alt":
		return &g.Alt
	case "caption":
		return &g.Caption
	}
	return nil
}

// Event is a happening at the hotel (concert, tasting, seminar slot).
// Description is markdown. Past events are unpublished by the scheduler.
type Event struct {
	ID          int64         `json:"id"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	StartsAt    time.Time     `json:"starts_at"`
	ImageURL    string        `json:"image_url"`
	IsPublished bool          `json:"is_published"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (e *Event) TranslatableFields() []string { return []string{"title", "description"} }

func (e *Event) LocalizedField(name string) *LocalizedText {
	switch name {
	case "title":
		return &e.Title
	case "description":
		return &e.Description
	}
	return nil
}

// PageHero is the top banner of one marketing page, keyed by page name
// rather than by numeric id.
type PageHero struct {
	ID        int64         `json:"id"`
	PageKey   string        `json:"page_key"`
	Title     LocalizedText `json:"title"`
	Subtitle  LocalizedText `json:"subtitle"`
	ImageURL  string        `json:"image_url"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (p *PageHero) TranslatableFields() []string { return []string{"title", "subtitle"} }

func (p *PageHero) LocalizedField(name string) *LocalizedText {
	switch name {
	case "title":
		return &p.Title
	case "subtitle":
		return &p.Subtitle
	}
	return nil
}

// Subscriber is a newsletter signup. Uniqueness by email is enforced by the
// database.
type Subscriber struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
