// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/aubepine/site-go/internal/middleware"
	"github.com/aubepine/site-go/internal/model"
)

func withLocale(r *http.Request, locale model.Locale) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyLocale, locale))
}

func TestCreateHero(t *testing.T) {
	env := testSetup(t)

	body := `{"title":{"fr":"Bienvenue","en":"Welcome"},"subtitle":{"fr":"Au coeur des Ardennes"},"image_url":"/uploads/x.jpg","position":1,"is_active":true}`
	w := executeHandler(t, env.handler.CreateHero, newJSONRequest(t, http.MethodPost, "/api/heroes", body, nil))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	hero := unmarshalData[model.Hero](t, w)
	if hero.ID == 0 {
		t.Error("expected an assigned id")
	}
	if hero.Title.Fr != "Bienvenue" || hero.Title.En != "Welcome" {
		t.Errorf("title = %+v", hero.Title)
	}
}

func TestCreateHero_MissingFrenchTitle(t *testing.T) {
	env := testSetup(t)

	body := `{"title":{"en":"Welcome"},"image_url":"/uploads/x.jpg"}`
	w := executeHandler(t, env.handler.CreateHero, newJSONRequest(t, http.MethodPost, "/api/heroes", body, nil))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error.Code != "validation_error" {
		t.Errorf("code = %q", resp.Error.Code)
	}
	if _, ok := resp.Error.Details["title"]; !ok {
		t.Error("expected a title field error")
	}
}

func TestListHeroes_ResolvesLocale(t *testing.T) {
	env := testSetup(t)
	ctx := context.Background()

	_, err := env.queries.CreateHero(ctx, model.Hero{
		Title:    model.LocalizedText{Fr: "Bienvenue", En: "Welcome"},
		Subtitle: model.LocalizedText{Fr: "Sous-titre"},
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("CreateHero: %v", err)
	}

	// English request: translated title, French fallback for the subtitle.
	req := withLocale(newGetRequest(t, "/api/heroes", nil), model.LocaleEN)
	w := executeHandler(t, env.handler.ListHeroes, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	views, meta := unmarshalList[HeroView](t, w)
	if meta == nil || meta.Total != 1 {
		t.Fatalf("meta = %+v", meta)
	}
	if views[0].Title != "Welcome" {
		t.Errorf("title = %q, want Welcome", views[0].Title)
	}
	if views[0].Subtitle != "Sous-titre" {
		t.Errorf("subtitle = %q, want French fallback", views[0].Subtitle)
	}

	// French request resolves the primary text.
	req = withLocale(newGetRequest(t, "/api/heroes", nil), model.LocaleFR)
	w = executeHandler(t, env.handler.ListHeroes, req)
	views, _ = unmarshalList[HeroView](t, w)
	if views[0].Title != "Bienvenue" {
		t.Errorf("title = %q, want Bienvenue", views[0].Title)
	}
}

func TestListHeroes_OnlyActiveForPublic(t *testing.T) {
	env := testSetup(t)

	mustCreateHero(t, env, model.Hero{Title: model.LocalizedText{Fr: "A"}, IsActive: true})
	mustCreateHero(t, env, model.Hero{Title: model.LocalizedText{Fr: "B"}, IsActive: false})

	w := executeHandler(t, env.handler.ListHeroes, newGetRequest(t, "/api/heroes", nil))
	views, _ := unmarshalList[HeroView](t, w)
	if len(views) != 1 {
		t.Fatalf("got %d heroes, want only the active one", len(views))
	}
}

func mustCreateHero(t *testing.T, env *testEnv, h model.Hero) model.Hero {
	t.Helper()
	created, err := env.queries.CreateHero(context.Background(), h)
	if err != nil {
		t.Fatalf("CreateHero: %v", err)
	}
	return created
}

func TestUpdateHero_FullRecordLastWriteWins(t *testing.T) {
	env := testSetup(t)

	hero := mustCreateHero(t, env, model.Hero{
		Title:    model.LocalizedText{Fr: "Ancien", En: "Old"},
		ImageURL: "/uploads/a.jpg",
		IsActive: true,
	})

	body := `{"title":{"fr":"Nouveau"},"image_url":"/uploads/b.jpg","is_active":false}`
	req := newJSONRequest(t, http.MethodPut, "/api/heroes/1", body, map[string]string{"id": "1"})
	w := executeHandler(t, env.handler.UpdateHero, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	updated := unmarshalData[model.Hero](t, w)
	if updated.ID != hero.ID {
		t.Errorf("id = %d, want %d", updated.ID, hero.ID)
	}
	// The missing EN value is gone: the update replaces the whole record.
	if updated.Title.En != "" {
		t.Errorf("title.en = %q, want empty after full-record update", updated.Title.En)
	}
	if updated.IsActive {
		t.Error("is_active should be false")
	}
}

func TestGetHero_NotFound(t *testing.T) {
	env := testSetup(t)

	req := newGetRequest(t, "/api/heroes/99", map[string]string{"id": "99"})
	w := executeHandler(t, env.handler.GetHero, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestDeleteHero(t *testing.T) {
	env := testSetup(t)

	hero := mustCreateHero(t, env, model.Hero{Title: model.LocalizedText{Fr: "X"}})

	req := newDeleteRequest(t, "/api/heroes/1", map[string]string{"id": "1"})
	w := executeHandler(t, env.handler.DeleteHero, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}

	if _, err := env.queries.GetHeroByID(context.Background(), hero.ID); err == nil {
		t.Error("hero should be gone")
	}
}

func TestCreateTestimonial_RatingBounds(t *testing.T) {
	env := testSetup(t)

	for _, rating := range []string{"0", "6"} {
		body := `{"author":"Jeanne","quote":{"fr":"Superbe séjour"},"rating":` + rating + `}`
		w := executeHandler(t, env.handler.CreateTestimonial, newJSONRequest(t, http.MethodPost, "/api/testimonials", body, nil))
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("rating %s: status = %d, want 422", rating, w.Code)
		}
	}

	body := `{"author":"Jeanne","quote":{"fr":"Superbe séjour"},"rating":5}`
	w := executeHandler(t, env.handler.CreateTestimonial, newJSONRequest(t, http.MethodPost, "/api/testimonials", body, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
}

func TestAboutSection_MarkdownRendered(t *testing.T) {
	env := testSetup(t)

	_, err := env.queries.CreateAboutSection(context.Background(), model.AboutSection{
		Title: model.LocalizedText{Fr: "Notre histoire"},
		Body:  model.LocalizedText{Fr: "Une **maison** de caractère"},
	})
	if err != nil {
		t.Fatalf("CreateAboutSection: %v", err)
	}

	w := executeHandler(t, env.handler.ListAboutSections, newGetRequest(t, "/api/about", nil))
	views, _ := unmarshalList[AboutSectionView](t, w)
	if len(views) != 1 {
		t.Fatalf("got %d sections", len(views))
	}
	if !strings.Contains(views[0].BodyHTML, "<strong>maison</strong>") {
		t.Errorf("body_html = %q, want rendered markdown", views[0].BodyHTML)
	}
}
