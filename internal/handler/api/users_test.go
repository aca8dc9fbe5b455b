// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/aubepine/site-go/internal/model"
)

func TestCreateUser(t *testing.T) {
	env := testSetup(t)

	body := `{"name":"Claire","email":"claire@maison-aubepine.example","password":"correct horse battery"}`
	w := executeHandler(t, env.handler.CreateUser, newJSONRequest(t, http.MethodPost, "/api/users", body, nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	user := unmarshalData[model.User](t, w)
	if user.Email != "claire@maison-aubepine.example" {
		t.Errorf("email = %q", user.Email)
	}
	if strings.Contains(w.Body.String(), "password_hash") || strings.Contains(w.Body.String(), "argon2id") {
		t.Error("response must not leak the password hash")
	}
}

func TestCreateUser_ShortPassword(t *testing.T) {
	env := testSetup(t)

	body := `{"name":"Claire","email":"claire@maison-aubepine.example","password":"short"}`
	w := executeHandler(t, env.handler.CreateUser, newJSONRequest(t, http.MethodPost, "/api/users", body, nil))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	env := testSetup(t)
	createTestUser(t, env.queries, "claire@maison-aubepine.example")

	body := `{"name":"Claire","email":"claire@maison-aubepine.example","password":"correct horse battery"}`
	w := executeHandler(t, env.handler.CreateUser, newJSONRequest(t, http.MethodPost, "/api/users", body, nil))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestDeleteUser_RefusesLastAdmin(t *testing.T) {
	env := testSetup(t)
	only := createTestUser(t, env.queries, "only@maison-aubepine.example")
	actor := model.User{ID: only.ID + 100, Email: "other@maison-aubepine.example"}

	req := newDeleteRequest(t, "/api/users/1", map[string]string{"id": "1"})
	req = withUser(req, actor)
	w := executeHandler(t, env.handler.DeleteUser, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Error.Code != "conflict" {
		t.Errorf("code = %q", resp.Error.Code)
	}

	// The user survived.
	if _, err := env.queries.GetUserByID(req.Context(), only.ID); err != nil {
		t.Errorf("last admin should still exist: %v", err)
	}
}

func TestDeleteUser_RefusesSelf(t *testing.T) {
	env := testSetup(t)
	me := createTestUser(t, env.queries, "me@maison-aubepine.example")
	createTestUser(t, env.queries, "other@maison-aubepine.example")

	req := newDeleteRequest(t, "/api/users/1", map[string]string{"id": "1"})
	req = withUser(req, me)
	w := executeHandler(t, env.handler.DeleteUser, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteUser_OK(t *testing.T) {
	env := testSetup(t)
	me := createTestUser(t, env.queries, "me@maison-aubepine.example")
	victim := createTestUser(t, env.queries, "other@maison-aubepine.example")

	req := newDeleteRequest(t, "/api/users/2", map[string]string{"id": "2"})
	req = withUser(req, me)
	w := executeHandler(t, env.handler.DeleteUser, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204: %s", w.Code, w.Body.String())
	}
	if _, err := env.queries.GetUserByID(req.Context(), victim.ID); err == nil {
		t.Error("user should be gone")
	}
}

func TestUpdateUser_OptionalPassword(t *testing.T) {
	env := testSetup(t)
	user := createTestUser(t, env.queries, "claire@maison-aubepine.example")

	body := `{"name":"Claire Martin","email":"claire@maison-aubepine.example"}`
	req := newJSONRequest(t, http.MethodPut, "/api/users/1", body, map[string]string{"id": "1"})
	w := executeHandler(t, env.handler.UpdateUser, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	updated, err := env.queries.GetUserByID(req.Context(), user.ID)
	if err != nil {
		t.Fatalf("GetUserByID: %v", err)
	}
	if updated.Name != "Claire Martin" {
		t.Errorf("name = %q", updated.Name)
	}
	if updated.PasswordHash != user.PasswordHash {
		t.Error("password hash must be untouched when no password is sent")
	}
}
