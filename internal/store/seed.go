// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aubepine/site-go/internal/auth"
	"github.com/aubepine/site-go/internal/model"
)

// Default admin credentials
const (
	DefaultAdminEmail    = "admin@maison-aubepine.example"
	DefaultAdminPassword = "changeme"
	DefaultAdminName     = "Administrateur"
)

// Seed creates initial data: the default admin account and one hero record
// per marketing page. Safe to run repeatedly.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	if err := seedAdmin(ctx, queries); err != nil {
		return err
	}
	return seedPageHeroes(ctx, queries)
}

func seedAdmin(ctx context.Context, queries *Queries) error {
	_, err := queries.GetUserByEmail(ctx, DefaultAdminEmail)
	if err == nil {
		slog.Info("admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user, err := queries.CreateUser(ctx, CreateUserParams{
		Email:        DefaultAdminEmail,
		PasswordHash: passwordHash,
		Name:         DefaultAdminName,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created default admin user",
		"id", user.ID,
		"email", user.Email,
	)
	return nil
}

// SeedDemo inserts sample marketing content for local development. It only
// runs when enabled and when the content tables are still empty.
func SeedDemo(ctx context.Context, db *sql.DB, enabled bool) error {
	if !enabled {
		return nil
	}
	queries := New(db)

	rooms, err := queries.ListRooms(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing rooms: %w", err)
	}
	if len(rooms) > 0 {
		slog.Info("content tables not empty, skipping demo seed")
		return nil
	}

	demoRooms := []model.Room{
		{
			Slug:        "chambre-aubepine",
			Name:        model.LocalizedText{Fr: "Chambre Aubépine", En: "Hawthorn Room", Nl: "Meidoornkamer"},
			Description: model.LocalizedText{Fr: "Chambre double avec vue sur le jardin."},
			Amenities:   model.LocalizedText{Fr: "Wi-Fi, salle de bain privée"},
			PriceSingle: "95",
			PriceDouble: "120",
			Capacity:    "2",
			Position:    1,
		},
		{
			Slug:        "suite-verger",
			Name:        model.LocalizedText{Fr: "Suite du Verger", En: "Orchard Suite"},
			Description: model.LocalizedText{Fr: "Suite spacieuse avec terrasse privée."},
			Amenities:   model.LocalizedText{Fr: "Wi-Fi, terrasse, baignoire"},
			PriceSingle: "140",
			PriceDouble: "165",
			Capacity:    "2",
			PetsAllowed: true,
			Position:    2,
		},
	}
	for _, room := range demoRooms {
		if _, err := queries.CreateRoom(ctx, room); err != nil {
			return fmt.Errorf("seeding room %q: %w", room.Slug, err)
		}
	}

	if _, err := queries.CreateHero(ctx, model.Hero{
		Title:    model.LocalizedText{Fr: "Bienvenue à la Maison Aubépine", En: "Welcome to Maison Aubépine"},
		Subtitle: model.LocalizedText{Fr: "Hôtel de charme au cœur des Ardennes"},
		IsActive: true,
		Position: 1,
	}); err != nil {
		return fmt.Errorf("seeding hero: %w", err)
	}

	if _, err := queries.CreateTestimonial(ctx, model.Testimonial{
		Author:   "Jeanne D.",
		Quote:    model.LocalizedText{Fr: "Un séjour inoubliable, nous reviendrons."},
		Rating:   5,
		IsActive: true,
	}); err != nil {
		return fmt.Errorf("seeding testimonial: %w", err)
	}

	slog.Info("demo content seeded", "rooms", len(demoRooms))
	return nil
}

func seedPageHeroes(ctx context.Context, queries *Queries) error {
	titles := map[string]string{
		model.PageHome:      "Maison Aubépine",
		model.PageRooms:     "Nos chambres",
		model.PageGallery:   "Galerie",
		model.PageEvents:    "Événements",
		model.PageSeminars:  "Séminaires",
		model.PageGiftCards: "Cartes cadeaux",
		model.PageContact:   "Contact",
	}

	for _, key := range model.PageKeys {
		_, err := queries.GetPageHeroByKey(ctx, key)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("checking page hero %q: %w", key, err)
		}

		_, err = queries.CreatePageHero(ctx, model.PageHero{
			PageKey: key,
			Title:   model.LocalizedText{Fr: titles[key]},
		})
		if err != nil {
			return fmt.Errorf("seeding page hero %q: %w", key, err)
		}
	}
	return nil
}
