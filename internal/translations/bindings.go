// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package translations

import (
	"context"

	"github.com/aubepine/site-go/internal/model"
	"github.com/aubepine/site-go/internal/store"
)

// StoreBindings wires every translatable content type to the database.
func StoreBindings(q *store.Queries) []Binding {
	return []Binding{
		heroBinding(q),
		aboutBinding(q),
		featureBinding(q),
		roomBinding(q),
		testimonialBinding(q),
		galleryBinding(q),
		eventBinding(q),
		pageHeroBinding(q),
	}
}

func heroBinding(q *store.Queries) Binding {
	return Binding{
		Model: model.ModelHero,
		List: func(ctx context.Context) ([]Record, error) {
			items, err := q.ListHeroes(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]Record, len(items))
			for i := range items {
				records[i] = Record{ID: items[i].ID, Fields: &items[i]}
			}
			return records, nil
		},
		Get: func(ctx context.Context, id int64) (Record, error) {
			h, err := q.GetHeroByID(ctx, id)
			return Record{ID: h.ID, Fields: &h}, err
		},
		Save: func(ctx context.Context, rec Record) error {
			_, err := q.UpdateHero(ctx, *rec.Fields.(*model.Hero))
			return err
		},
	}
}

func aboutBinding(q *store.Queries) Binding {
	return Binding{
		Model: model.ModelAboutSection,
		List: func(ctx context.Context) ([]Record, error) {
			items, err := q.ListAboutSections(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]Record, len(items))
			for i := range items {
				records[i] = Record{ID: items[i].ID, Fields: &items[i]}
			}
			return records, nil
		},
		Get: func(ctx context.Context, id int64) (Record, error) {
			a, err := q.GetAboutSectionByID(ctx, id)
			return Record{ID: a.ID, Fields: &a}, err
		},
		Save: func(ctx context.Context, rec Record) error {
			_, err := q.UpdateAboutSection(ctx, *rec.Fields.(*model.AboutSection))
			return err
		},
	}
}

func featureBinding(q *store.Queries) Binding {
	return Binding{
		Model: model.ModelFeature,
		List: func(ctx context.Context) ([]Record, error) {
			items, err := q.ListFeatures(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]Record, len(items))
			for i := range items {
				records[i] = Record{ID: items[i].ID, Fields: &items[i]}
			}
			return records, nil
		},
		Get: func(ctx context.Context, id int64) (Record, error) {
			f, err := q.GetFeatureByID(ctx, id)
			return Record{ID: f.ID, Fields: &f}, err
		},
		Save: func(ctx context.Context, rec Record) error {
			_, err := q.UpdateFeature(ctx, *rec.Fields.(*model.Feature))
			return err
		},
	}
}

func roomBinding(q *store.Queries) Binding {
	return Binding{
		Model: model.ModelRoom,
		List: func(ctx context.Context) ([]Record, error) {
			items, err := q.ListRooms(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]Record, len(items))
			for i := range items {
				records[i] = Record{ID: items[i].ID, Fields: &items[i]}
			}
			return records, nil
		},
		Get: func(ctx context.Context, id int64) (Record, error) {
			r, err := q.GetRoomByID(ctx, id)
			return Record{ID: r.ID, Fields: &r}, err
		},
		Save: func(ctx context.Context, rec Record) error {
			_, err := q.UpdateRoom(ctx, *rec.Fields.(*model.Room))
			return err
		},
	}
}

func testimonialBinding(q *store.Queries) Binding {
	return Binding{
		Model: model.ModelTestimonial,
		List: func(ctx context.Context) ([]Record, error) {
			items, err := q.ListTestimonials(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]Record, len(items))
			for i := range items {
				records[i] = Record{ID: items[i].ID, Fields: &items[i]}
			}
			return records, nil
		},
		Get: func(ctx context.Context, id int64) (Record, error) {
			t, err := q.GetTestimonialByID(ctx, id)
			return Record{ID: t.ID, Fields: &t}, err
		},
		Save: func(ctx context.Context, rec Record) error {
			_, err := q.UpdateTestimonial(ctx, *rec.Fields.(*model.Testimonial))
			return err
		},
	}
}

func galleryBinding(q *store.Queries) Binding {
	return Binding{
		Model: model.ModelGalleryImage,
		List: func(ctx context.Context) ([]Record, error) {
			items, err := q.ListGalleryImages(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]Record, len(items))
			for i := range items {
				records[i] = Record{ID: items[i].ID, Fields: &items[i]}
			}
			return records, nil
		},
		Get: func(ctx context.Context, id int64) (Record, error) {
			g, err := q.GetGalleryImageByID(ctx, id)
			return Record{ID: g.ID, Fields: &g}, err
		},
		Save: func(ctx context.Context, rec Record) error {
			_, err := q.UpdateGalleryImage(ctx, *rec.Fields.(*model.GalleryImage))
			return err
		},
	}
}

func eventBinding(q *store.Queries) Binding {
	return Binding{
		Model: model.ModelEvent,
		List: func(ctx context.Context) ([]Record, error) {
			items, err := q.ListEvents(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]Record, len(items))
			for i := range items {
				records[i] = Record{ID: items[i].ID, Fields: &items[i]}
			}
			return records, nil
		},
		Get: func(ctx context.Context, id int64) (Record, error) {
			e, err := q.GetEventByID(ctx, id)
			return Record{ID: e.ID, Fields: &e}, err
		},
		Save: func(ctx context.Context, rec Record) error {
			_, err := q.UpdateEvent(ctx, *rec.Fields.(*model.Event))
			return err
		},
	}
}

func pageHeroBinding(q *store.Queries) Binding {
	return Binding{
		Model: model.ModelPageHero,
		List: func(ctx context.Context) ([]Record, error) {
			items, err := q.ListPageHeroes(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]Record, len(items))
			for i := range items {
				records[i] = Record{ID: items[i].ID, Fields: &items[i]}
			}
			return records, nil
		},
		Get: func(ctx context.Context, id int64) (Record, error) {
			p, err := q.GetPageHeroByID(ctx, id)
			return Record{ID: p.ID, Fields: &p}, err
		},
		Save: func(ctx context.Context, rec Record) error {
			_, err := q.UpdatePageHero(ctx, *rec.Fields.(*model.PageHero))
			return err
		},
	}
}
