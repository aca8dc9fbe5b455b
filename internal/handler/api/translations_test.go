// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/aubepine/site-go/internal/model"
	"github.com/aubepine/site-go/internal/translations"
)

func TestGetTranslations(t *testing.T) {
	env := testSetup(t)
	mustCreateHero(t, env, model.Hero{Title: model.LocalizedText{Fr: "Bienvenue"}, IsActive: true})

	w := executeHandler(t, env.handler.GetTranslations, newGetRequest(t, "/api/translations", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	resp := unmarshalData[TranslationsResponse](t, w)
	if len(resp.Rows) == 0 {
		t.Fatal("want at least one row for the seeded hero")
	}
	if resp.Completion.Total != len(resp.Rows) {
		t.Errorf("completion total = %d, rows = %d", resp.Completion.Total, len(resp.Rows))
	}
	if resp.Dirty != 0 {
		t.Errorf("dirty = %d, want 0 after a fresh load", resp.Dirty)
	}
}

func TestEditTranslation(t *testing.T) {
	env := testSetup(t)
	hero := mustCreateHero(t, env, model.Hero{Title: model.LocalizedText{Fr: "Bienvenue"}, IsActive: true})
	if err := env.handler.workspace.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	body := `{"model":"hero","id":` + strconv.FormatInt(hero.ID, 10) + `,"field":"title","locale":"en","value":"Welcome"}`
	w := executeHandler(t, env.handler.EditTranslation, newJSONRequest(t, http.MethodPut, "/api/translations", body, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	if n := env.handler.workspace.DirtyCount(); n != 1 {
		t.Errorf("dirty = %d, want 1", n)
	}
}

func TestEditTranslation_FrenchNotEditable(t *testing.T) {
	env := testSetup(t)
	hero := mustCreateHero(t, env, model.Hero{Title: model.LocalizedText{Fr: "Bienvenue"}, IsActive: true})
	if err := env.handler.workspace.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	body := `{"model":"hero","id":` + strconv.FormatInt(hero.ID, 10) + `,"field":"title","locale":"fr","value":"Autre"}`
	w := executeHandler(t, env.handler.EditTranslation, newJSONRequest(t, http.MethodPut, "/api/translations", body, nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestEditTranslation_UnknownLocale(t *testing.T) {
	env := testSetup(t)

	body := `{"model":"hero","id":1,"field":"title","locale":"de","value":"Willkommen"}`
	w := executeHandler(t, env.handler.EditTranslation, newJSONRequest(t, http.MethodPut, "/api/translations", body, nil))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestGetTranslations_KeepsDirtyEdits(t *testing.T) {
	env := testSetup(t)
	hero := mustCreateHero(t, env, model.Hero{Title: model.LocalizedText{Fr: "Bienvenue"}, IsActive: true})
	ws := env.handler.workspace
	if err := ws.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	key := translations.RowKey{Model: "hero", ID: hero.ID, Field: "title"}
	if err := ws.Edit(key, model.LocaleEN, "Welcome"); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	// A refresh while an edit is pending must not wipe the edit.
	w := executeHandler(t, env.handler.GetTranslations, newGetRequest(t, "/api/translations", nil))
	resp := unmarshalData[TranslationsResponse](t, w)
	if resp.Dirty != 1 {
		t.Fatalf("dirty = %d, want the pending edit preserved", resp.Dirty)
	}

	found := false
	for _, row := range resp.Rows {
		if row.RowKey == key {
			found = true
			if row.En != "Welcome" {
				t.Errorf("en = %q", row.En)
			}
		}
	}
	if !found {
		t.Error("edited row missing from response")
	}
}

func TestSaveAllTranslations(t *testing.T) {
	env := testSetup(t)
	hero := mustCreateHero(t, env, model.Hero{Title: model.LocalizedText{Fr: "Bienvenue"}, IsActive: true})
	ws := env.handler.workspace
	if err := ws.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	key := translations.RowKey{Model: "hero", ID: hero.ID, Field: "title"}
	if err := ws.Edit(key, model.LocaleEN, "Welcome"); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if err := ws.Edit(key, model.LocaleNL, "Welkom"); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	w := executeHandler(t, env.handler.SaveAllTranslations, newJSONRequest(t, http.MethodPost, "/api/translations/save-all", "", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	result := unmarshalData[translations.SaveAllResult](t, w)
	if result.Saved != 1 || len(result.Failed) != 0 {
		t.Fatalf("result = %+v", result)
	}

	saved, err := env.queries.GetHeroByID(context.Background(), hero.ID)
	if err != nil {
		t.Fatalf("GetHeroByID: %v", err)
	}
	if saved.Title.En != "Welcome" || saved.Title.Nl != "Welkom" {
		t.Errorf("title = %+v", saved.Title)
	}
}
