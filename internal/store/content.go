// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/aubepine/site-go/internal/model"
)

// ---------------------------------------------------------------------------
// Heroes
// ---------------------------------------------------------------------------

const heroColumns = `id, title_fr, title_en, title_nl, subtitle_fr, subtitle_en, subtitle_nl,
	image_url, position, is_active, created_at, updated_at`

func scanHero(row interface{ Scan(...any) error }) (model.Hero, error) {
	var h model.Hero
	err := row.Scan(&h.ID,
		&h.Title.Fr, &h.Title.En, &h.Title.Nl,
		&h.Subtitle.Fr, &h.Subtitle.En, &h.Subtitle.Nl,
		&h.ImageURL, &h.Position, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

// CreateHero inserts a hero banner and returns it.
func (q *Queries) CreateHero(ctx context.Context, h model.Hero) (model.Hero, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO heroes (title_fr, title_en, title_nl, subtitle_fr, subtitle_en, subtitle_nl,
			image_url, position, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+heroColumns,
		h.Title.Fr, h.Title.En, h.Title.Nl,
		h.Subtitle.Fr, h.Subtitle.En, h.Subtitle.Nl,
		h.ImageURL, h.Position, h.IsActive, now, now)
	return scanHero(row)
}

// GetHeroByID fetches a hero banner by id.
func (q *Queries) GetHeroByID(ctx context.Context, id int64) (model.Hero, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+heroColumns+` FROM heroes WHERE id = ?`, id)
	return scanHero(row)
}

// ListHeroes returns all hero banners ordered by position.
func (q *Queries) ListHeroes(ctx context.Context) ([]model.Hero, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+heroColumns+` FROM heroes ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var heroes []model.Hero
	for rows.Next() {
		h, err := scanHero(rows)
		if err != nil {
			return nil, err
		}
		heroes = append(heroes, h)
	}
	return heroes, rows.Err()
}

// ListActiveHeroes returns active hero banners ordered by position.
func (q *Queries) ListActiveHeroes(ctx context.Context) ([]model.Hero, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+heroColumns+` FROM heroes WHERE is_active = 1 ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var heroes []model.Hero
	for rows.Next() {
		h, err := scanHero(rows)
		if err != nil {
			return nil, err
		}
		heroes = append(heroes, h)
	}
	return heroes, rows.Err()
}

// UpdateHero replaces all mutable fields of a hero banner. Full-record update,
// last write wins.
func (q *Queries) UpdateHero(ctx context.Context, h model.Hero) (model.Hero, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE heroes SET title_fr = ?, title_en = ?, title_nl = ?,
			subtitle_fr = ?, subtitle_en = ?, subtitle_nl = ?,
			image_url = ?, position = ?, is_active = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+heroColumns,
		h.Title.Fr, h.Title.En, h.Title.Nl,
		h.Subtitle.Fr, h.Subtitle.En, h.Subtitle.Nl,
		h.ImageURL, h.Position, h.IsActive, time.Now(), h.ID)
	return scanHero(row)
}

// DeleteHero removes a hero banner by id.
func (q *Queries) DeleteHero(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM heroes WHERE id = ?`, id)
	return err
}

// ---------------------------------------------------------------------------
// About sections
// ---------------------------------------------------------------------------

const aboutColumns = `id, title_fr, title_en, title_nl, body_fr, body_en, body_nl,
	image_url, position, created_at, updated_at`

func scanAboutSection(row interface{ Scan(...any) error }) (model.AboutSection, error) {
	var a model.AboutSection
	err := row.Scan(&a.ID,
		&a.Title.Fr, &a.Title.En, &a.Title.Nl,
		&a.Body.Fr, &a.Body.En, &a.Body.Nl,
		&a.ImageURL, &a.Position, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// CreateAboutSection inserts an about section and returns it.
func (q *Queries) CreateAboutSection(ctx context.Context, a model.AboutSection) (model.AboutSection, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO about_sections (title_fr, title_en, title_nl, body_fr, body_en, body_nl,
			image_url, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+aboutColumns,
		a.Title.Fr, a.Title.En, a.Title.Nl,
		a.Body.Fr, a.Body.En, a.Body.Nl,
		a.ImageURL, a.Position, now, now)
	return scanAboutSection(row)
}

// GetAboutSectionByID fetches an about section by id.
func (q *Queries) GetAboutSectionByID(ctx context.Context, id int64) (model.AboutSection, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+aboutColumns+` FROM about_sections WHERE id = ?`, id)
	return scanAboutSection(row)
}

// ListAboutSections returns all about sections ordered by position.
func (q *Queries) ListAboutSections(ctx context.Context) ([]model.AboutSection, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+aboutColumns+` FROM about_sections ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []model.AboutSection
	for rows.Next() {
		a, err := scanAboutSection(rows)
		if err != nil {
			return nil, err
		}
		sections = append(sections, a)
	}
	return sections, rows.Err()
}

// UpdateAboutSection replaces all mutable fields of an about section.
func (q *Queries) UpdateAboutSection(ctx context.Context, a model.AboutSection) (model.AboutSection, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE about_sections SET title_fr = ?, title_en = ?, title_nl = ?,
			body_fr = ?, body_en = ?, body_nl = ?,
			image_url = ?, position = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+aboutColumns,
		a.Title.Fr, a.Title.En, a.Title.Nl,
		a.Body.Fr, a.Body.En, a.Body.Nl,
		a.ImageURL, a.Position, time.Now(), a.ID)
	return scanAboutSection(row)
}

// DeleteAboutSection removes an about section by id.
func (q *Queries) DeleteAboutSection(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM about_sections WHERE id = ?`, id)
	return err
}

// ---------------------------------------------------------------------------
// Features
// ---------------------------------------------------------------------------

const featureColumns = `id, title_fr, title_en, title_nl, description_fr, description_en, description_nl,
	icon, position, created_at, updated_at`

func scanFeature(row interface{ Scan(...any) error }) (model.Feature, error) {
	var f model.Feature
	err := row.Scan(&f.ID,
		&f.Title.Fr, &f.Title.En, &f.Title.Nl,
		&f.Description.Fr, &f.Description.En, &f.Description.Nl,
		&f.Icon, &f.Position, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

// CreateFeature inserts a feature and returns it.
func (q *Queries) CreateFeature(ctx context.Context, f model.Feature) (model.Feature, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO features (title_fr, title_en, title_nl, description_fr, description_en, description_nl,
			icon, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+featureColumns,
		f.Title.Fr, f.Title.En, f.Title.Nl,
		f.Description.Fr, f.Description.En, f.Description.Nl,
		f.Icon, f.Position, now, now)
	return scanFeature(row)
}

// GetFeatureByID fetches a feature by id.
func (q *Queries) GetFeatureByID(ctx context.Context, id int64) (model.Feature, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+featureColumns+` FROM features WHERE id = ?`, id)
	return scanFeature(row)
}

// ListFeatures returns all features ordered by position.
func (q *Queries) ListFeatures(ctx context.Context) ([]model.Feature, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+featureColumns+` FROM features ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var features []model.Feature
	for rows.Next() {
		f, err := scanFeature(rows)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, rows.Err()
}

// UpdateFeature replaces all mutable fields of a feature.
func (q *Queries) UpdateFeature(ctx context.Context, f model.Feature) (model.Feature, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE features SET title_fr = ?, title_en = ?, title_nl = ?,
			description_fr = ?, description_en = ?, description_nl = ?,
			icon = ?, position = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+featureColumns,
		f.Title.Fr, f.Title.En, f.Title.Nl,
		f.Description.Fr, f.Description.En, f.Description.Nl,
		f.Icon, f.Position, time.Now(), f.ID)
	return scanFeature(row)
}

// DeleteFeature removes a feature by id.
func (q *Queries) DeleteFeature(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM features WHERE id = ?`, id)
	return err
}

// ---------------------------------------------------------------------------
// Testimonials
// ---------------------------------------------------------------------------

const testimonialColumns = `id, author, quote_fr, quote_en, quote_nl, rating, is_active, created_at, updated_at`

func scanTestimonial(row interface{ Scan(...any) error }) (model.Testimonial, error) {
	var t model.Testimonial
	err := row.Scan(&t.ID, &t.Author,
		&t.Quote.Fr, &t.Quote.En, &t.Quote.Nl,
		&t.Rating, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// CreateTestimonial inserts a testimonial and returns it.
func (q *Queries) CreateTestimonial(ctx context.Context, t model.Testimonial) (model.Testimonial, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO testimonials (author, quote_fr, quote_en, quote_nl, rating, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+testimonialColumns,
		t.Author, t.Quote.Fr, t.Quote.En, t.Quote.Nl, t.Rating, t.IsActive, now, now)
	return scanTestimonial(row)
}

// GetTestimonialByID fetches a testimonial by id.
func (q *Queries) GetTestimonialByID(ctx context.Context, id int64) (model.Testimonial, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE id = ?`, id)
	return scanTestimonial(row)
}

// ListTestimonials returns all testimonials, newest first.
func (q *Queries) ListTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+testimonialColumns+` FROM testimonials ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ListActiveTestimonials returns active testimonials, newest first.
func (q *Queries) ListActiveTestimonials(ctx context.Context) ([]model.Testimonial, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE is_active = 1 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// UpdateTestimonial replaces all mutable fields of a testimonial.
func (q *Queries) UpdateTestimonial(ctx context.Context, t model.Testimonial) (model.Testimonial, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE testimonials SET author = ?, quote_fr = ?, quote_en = ?, quote_nl = ?,
			rating = ?, is_active = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+testimonialColumns,
		t.Author, t.Quote.Fr, t.Quote.En, t.Quote.Nl, t.Rating, t.IsActive, time.Now(), t.ID)
	return scanTestimonial(row)
}

// DeleteTestimonial removes a testimonial by id.
func (q *Queries) DeleteTestimonial(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = ?`, id)
	return err
}

// ---------------------------------------------------------------------------
// Gallery images
// ---------------------------------------------------------------------------

const galleryColumns = `id, url, alt_fr, alt_en, alt_nl, caption_fr, caption_en, caption_nl,
	category, position, created_at, updated_at`

func scanGalleryImage(row interface{ Scan(...any) error }) (model.GalleryImage, error) {
	var g model.GalleryImage
	err := row.Scan(&g.ID, &g.URL,
		&g.Alt.Fr, &g.Alt.En, &g.Alt.Nl,
		&g.Caption.Fr, &g.Caption.En, &g.Caption.Nl,
		&g.Category, &g.Position, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}

// CreateGalleryImage inserts a gallery image and returns it.
func (q *Queries) CreateGalleryImage(ctx context.Context, g model.GalleryImage) (model.GalleryImage, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO gallery_images (url, alt_fr, alt_en, alt_nl, caption_fr, caption_en, caption_nl,
			category, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+galleryColumns,
		g.URL, g.Alt.Fr, g.Alt.En, g.Alt.Nl,
		g.Caption.Fr, g.Caption.En, g.Caption.Nl,
		g.Category, g.Position, now, now)
	return scanGalleryImage(row)
}

// GetGalleryImageByID fetches a gallery image by id.
func (q *Queries) GetGalleryImageByID(ctx context.Context, id int64) (model.GalleryImage, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+galleryColumns+` FROM gallery_images WHERE id = ?`, id)
	return scanGalleryImage(row)
}

// ListGalleryImages returns all gallery images ordered by position.
func (q *Queries) ListGalleryImages(ctx context.Context) ([]model.GalleryImage, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+galleryColumns+` FROM gallery_images ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []model.GalleryImage
	for rows.Next() {
		g, err := scanGalleryImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, g)
	}
	return images, rows.Err()
}

// UpdateGalleryImage replaces all mutable fields of a gallery image.
func (q *Queries) UpdateGalleryImage(ctx context.Context, g model.GalleryImage) (model.GalleryImage, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE gallery_images SET url = ?, alt_fr = ?, alt_en = ?, alt_nl = ?,
			caption_fr = ?, caption_en = ?, caption_nl = ?,
			category = ?, position = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+galleryColumns,
		g.URL, g.Alt.Fr, g.Alt.En, g.Alt.Nl,
		g.Caption.Fr, g.Caption.En, g.Caption.Nl,
		g.Category, g.Position, time.Now(), g.ID)
	return scanGalleryImage(row)
}

// DeleteGalleryImage removes a gallery image by id.
func (q *Queries) DeleteGalleryImage(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM gallery_images WHERE id = ?`, id)
	return err
}

// ---------------------------------------------------------------------------
// Events
// ---------------------------------------------------------------------------

const eventColumns = `id, title_fr, title_en, title_nl, description_fr, description_en, description_nl,
	starts_at, image_url, is_published, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (model.Event, error) {
	var e model.Event
	err := row.Scan(&e.ID,
		&e.Title.Fr, &e.Title.En, &e.Title.Nl,
		&e.Description.Fr, &e.Description.En, &e.Description.Nl,
		&e.StartsAt, &e.ImageURL, &e.IsPublished, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// CreateEvent inserts an event and returns it.
func (q *Queries) CreateEvent(ctx context.Context, e model.Event) (model.Event, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO events (title_fr, title_en, title_nl, description_fr, description_en, description_nl,
			starts_at, image_url, is_published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+eventColumns,
		e.Title.Fr, e.Title.En, e.Title.Nl,
		e.Description.Fr, e.Description.En, e.Description.Nl,
		e.StartsAt, e.ImageURL, e.IsPublished, now, now)
	return scanEvent(row)
}

// GetEventByID fetches an event by id.
func (q *Queries) GetEventByID(ctx context.Context, id int64) (model.Event, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	return scanEvent(row)
}

// ListEvents returns all events ordered by start time, soonest first.
func (q *Queries) ListEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+eventColumns+` FROM events ORDER BY starts_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListPublishedEvents returns published events ordered by start time.
func (q *Queries) ListPublishedEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE is_published = 1 ORDER BY starts_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// UpdateEvent replaces all mutable fields of an event.
func (q *Queries) UpdateEvent(ctx context.Context, e model.Event) (model.Event, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE events SET title_fr = ?, title_en = ?, title_nl = ?,
			description_fr = ?, description_en = ?, description_nl = ?,
			starts_at = ?, image_url = ?, is_published = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+eventColumns,
		e.Title.Fr, e.Title.En, e.Title.Nl,
		e.Description.Fr, e.Description.En, e.Description.Nl,
		e.StartsAt, e.ImageURL, e.IsPublished, time.Now(), e.ID)
	return scanEvent(row)
}

// UnpublishPastEvents clears the published flag on events that have already
// started. Returns the number of events touched.
func (q *Queries) UnpublishPastEvents(ctx context.Context, before time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`UPDATE events SET is_published = 0, updated_at = ? WHERE is_published = 1 AND starts_at < ?`,
		time.Now(), before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteEvent removes an event by id.
func (q *Queries) DeleteEvent(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	return err
}

// ---------------------------------------------------------------------------
// Page heroes
// ---------------------------------------------------------------------------

const pageHeroColumns = `id, page_key, title_fr, title_en, title_nl,
	subtitle_fr, subtitle_en, subtitle_nl, image_url, created_at, updated_at`

func scanPageHero(row interface{ Scan(...any) error }) (model.PageHero, error) {
	var p model.PageHero
	err := row.Scan(&p.ID, &p.PageKey,
		&p.Title.Fr, &p.Title.En, &p.Title.Nl,
		&p.Subtitle.Fr, &p.Subtitle.En, &p.Subtitle.Nl,
		&p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// CreatePageHero inserts a page hero and returns it.
func (q *Queries) CreatePageHero(ctx context.Context, p model.PageHero) (model.PageHero, error) {
	now := time.Now()
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO page_heroes (page_key, title_fr, title_en, title_nl,
			subtitle_fr, subtitle_en, subtitle_nl, image_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+pageHeroColumns,
		p.PageKey, p.Title.Fr, p.Title.En, p.Title.Nl,
		p.Subtitle.Fr, p.Subtitle.En, p.Subtitle.Nl,
		p.ImageURL, now, now)
	return scanPageHero(row)
}

// GetPageHeroByID fetches a page hero by id.
func (q *Queries) GetPageHeroByID(ctx context.Context, id int64) (model.PageHero, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+pageHeroColumns+` FROM page_heroes WHERE id = ?`, id)
	return scanPageHero(row)
}

// GetPageHeroByKey fetches the hero for a marketing page by its page key.
func (q *Queries) GetPageHeroByKey(ctx context.Context, pageKey string) (model.PageHero, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+pageHeroColumns+` FROM page_heroes WHERE page_key = ?`, pageKey)
	return scanPageHero(row)
}

// ListPageHeroes returns all page heroes ordered by page key.
func (q *Queries) ListPageHeroes(ctx context.Context) ([]model.PageHero, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+pageHeroColumns+` FROM page_heroes ORDER BY page_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var heroes []model.PageHero
	for rows.Next() {
		p, err := scanPageHero(rows)
		if err != nil {
			return nil, err
		}
		heroes = append(heroes, p)
	}
	return heroes, rows.Err()
}

// UpdatePageHero replaces all mutable fields of a page hero. The page key is
// immutable after creation.
func (q *Queries) UpdatePageHero(ctx context.Context, p model.PageHero) (model.PageHero, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE page_heroes SET title_fr = ?, title_en = ?, title_nl = ?,
			subtitle_fr = ?, subtitle_en = ?, subtitle_nl = ?,
			image_url = ?, updated_at = ?
		WHERE page_key = ?
		RETURNING `+pageHeroColumns,
		p.Title.Fr, p.Title.En, p.Title.Nl,
		p.Subtitle.Fr, p.Subtitle.En, p.Subtitle.Nl,
		p.ImageURL, time.Now(), p.PageKey)
	return scanPageHero(row)
}

// DeletePageHero removes a page hero by page key.
func (q *Queries) DeletePageHero(ctx context.Context, pageKey string) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM page_heroes WHERE page_key = ?`, pageKey)
	return err
}
