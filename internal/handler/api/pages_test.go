// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aubepine/site-go/internal/model"
)

func seedHomePage(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()

	if _, err := env.queries.CreatePageHero(ctx, model.PageHero{
		PageKey:  model.PageHome,
		Title:    model.LocalizedText{Fr: "Maison Aubépine", En: "Maison Aubépine"},
		Subtitle: model.LocalizedText{Fr: "Hôtel de charme", En: "Boutique hotel"},
	}); err != nil {
		t.Fatalf("CreatePageHero: %v", err)
	}

	mustCreateHero(t, env, model.Hero{Title: model.LocalizedText{Fr: "Bienvenue", En: "Welcome"}, IsActive: true})
	mustCreateHero(t, env, model.Hero{Title: model.LocalizedText{Fr: "Caché"}, IsActive: false})

	if _, err := env.queries.CreateFeature(ctx, model.Feature{
		Title: model.LocalizedText{Fr: "Jardin"},
		Icon:  "leaf",
	}); err != nil {
		t.Fatalf("CreateFeature: %v", err)
	}

	if _, err := env.queries.CreateTestimonial(ctx, model.Testimonial{
		Author:   "Jeanne",
		Quote:    model.LocalizedText{Fr: "Merveilleux"},
		Rating:   5,
		IsActive: true,
	}); err != nil {
		t.Fatalf("CreateTestimonial: %v", err)
	}

	if _, err := env.queries.CreateAboutSection(ctx, model.AboutSection{
		Title: model.LocalizedText{Fr: "Notre histoire"},
		Body:  model.LocalizedText{Fr: "Depuis 1890."},
	}); err != nil {
		t.Fatalf("CreateAboutSection: %v", err)
	}
}

func TestGetPage_HomeAssemblesEverything(t *testing.T) {
	env := testSetup(t)
	seedHomePage(t, env)

	req := withLocale(newGetRequest(t, "/api/pages/home", map[string]string{"page": "home"}), model.LocaleEN)
	w := executeHandler(t, env.handler.GetPage, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	payload := unmarshalData[PagePayload](t, w)
	if payload.Page != "home" || payload.Locale != "en" {
		t.Errorf("page/locale = %s/%s", payload.Page, payload.Locale)
	}
	if payload.Hero == nil || payload.Hero.Subtitle != "Boutique hotel" {
		t.Errorf("hero = %+v", payload.Hero)
	}
	if len(payload.Heroes) != 1 || payload.Heroes[0].Title != "Welcome" {
		t.Errorf("heroes = %+v, want only the active one, translated", payload.Heroes)
	}
	if len(payload.Features) != 1 || payload.Features[0].Title != "Jardin" {
		t.Errorf("features = %+v, want French fallback", payload.Features)
	}
	if len(payload.Testimonials) != 1 {
		t.Errorf("testimonials = %+v", payload.Testimonials)
	}
	if len(payload.About) != 1 {
		t.Errorf("about = %+v", payload.About)
	}
	if payload.Rooms != nil || payload.Gallery != nil || payload.Events != nil {
		t.Error("home must not carry rooms, gallery or events")
	}
}

func TestGetPage_EventsOnlyPublished(t *testing.T) {
	env := testSetup(t)
	ctx := context.Background()

	if _, err := env.queries.CreateEvent(ctx, model.Event{
		Title:       model.LocalizedText{Fr: "Concert"},
		StartsAt:    time.Now().Add(24 * time.Hour),
		IsPublished: true,
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if _, err := env.queries.CreateEvent(ctx, model.Event{
		Title:       model.LocalizedText{Fr: "Brouillon"},
		StartsAt:    time.Now().Add(48 * time.Hour),
		IsPublished: false,
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	req := newGetRequest(t, "/api/pages/events", map[string]string{"page": "events"})
	w := executeHandler(t, env.handler.GetPage, req)
	payload := unmarshalData[PagePayload](t, w)

	if len(payload.Events) != 1 || payload.Events[0].Title != "Concert" {
		t.Errorf("events = %+v, want only the published one", payload.Events)
	}
}

func TestGetPage_UnknownPage(t *testing.T) {
	env := testSetup(t)

	req := newGetRequest(t, "/api/pages/spa", map[string]string{"page": "spa"})
	w := executeHandler(t, env.handler.GetPage, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetPage_MissingBannerStillServes(t *testing.T) {
	env := testSetup(t)

	req := newGetRequest(t, "/api/pages/contact", map[string]string{"page": "contact"})
	w := executeHandler(t, env.handler.GetPage, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	payload := unmarshalData[PagePayload](t, w)
	if payload.Hero != nil {
		t.Errorf("hero = %+v, want none", payload.Hero)
	}
}

func TestGetPageHero_ResolvesLocale(t *testing.T) {
	env := testSetup(t)

	if _, err := env.queries.CreatePageHero(context.Background(), model.PageHero{
		PageKey: model.PageRooms,
		Title:   model.LocalizedText{Fr: "Nos chambres", Nl: "Onze kamers"},
	}); err != nil {
		t.Fatalf("CreatePageHero: %v", err)
	}

	req := withLocale(newGetRequest(t, "/api/page-hero/rooms", map[string]string{"pageKey": "rooms"}), model.LocaleNL)
	w := executeHandler(t, env.handler.GetPageHero, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	view := unmarshalData[PageHeroView](t, w)
	if view.Title != "Onze kamers" {
		t.Errorf("title = %q", view.Title)
	}
}

func TestUpdatePageHero_KeyImmutable(t *testing.T) {
	env := testSetup(t)

	if _, err := env.queries.CreatePageHero(context.Background(), model.PageHero{
		PageKey: model.PageRooms,
		Title:   model.LocalizedText{Fr: "Nos chambres"},
	}); err != nil {
		t.Fatalf("CreatePageHero: %v", err)
	}

	body := `{"page_key":"gallery","title":{"fr":"Chambres et suites"}}`
	req := newJSONRequest(t, http.MethodPut, "/api/page-hero/rooms", body, map[string]string{"pageKey": "rooms"})
	w := executeHandler(t, env.handler.UpdatePageHero, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	updated := unmarshalData[model.PageHero](t, w)
	if updated.PageKey != model.PageRooms {
		t.Errorf("page_key = %q, must not change", updated.PageKey)
	}
	if updated.Title.Fr != "Chambres et suites" {
		t.Errorf("title = %q", updated.Title.Fr)
	}
}

func TestUpdatePageHero_UnknownKey(t *testing.T) {
	env := testSetup(t)

	body := `{"title":{"fr":"X"}}`
	req := newJSONRequest(t, http.MethodPut, "/api/page-hero/spa", body, map[string]string{"pageKey": "spa"})
	w := executeHandler(t, env.handler.UpdatePageHero, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
