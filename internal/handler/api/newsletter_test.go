// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"
	"testing"
)

func TestSubscribe(t *testing.T) {
	env := testSetup(t)

	body := `{"email":"guest@example.com"}`
	w := executeHandler(t, env.handler.Subscribe, newJSONRequest(t, http.MethodPost, "/api/newsletter", body, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	if _, err := env.queries.GetSubscriberByEmail(context.Background(), "guest@example.com"); err != nil {
		t.Errorf("subscriber should exist: %v", err)
	}
}

func TestSubscribe_DuplicateIsIdempotent(t *testing.T) {
	env := testSetup(t)

	body := `{"email":"guest@example.com"}`
	for i := 0; i < 2; i++ {
		w := executeHandler(t, env.handler.Subscribe, newJSONRequest(t, http.MethodPost, "/api/newsletter", body, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: status = %d", i+1, w.Code)
		}
	}

	subs, err := env.queries.ListSubscribers(context.Background())
	if err != nil {
		t.Fatalf("ListSubscribers: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("got %d subscribers, want 1", len(subs))
	}
}

func TestSubscribe_NormalizesEmail(t *testing.T) {
	env := testSetup(t)

	w := executeHandler(t, env.handler.Subscribe, newJSONRequest(t, http.MethodPost, "/api/newsletter", `{"email":"  Guest@Example.COM "}`, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if _, err := env.queries.GetSubscriberByEmail(context.Background(), "guest@example.com"); err != nil {
		t.Errorf("normalized subscriber should exist: %v", err)
	}
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	env := testSetup(t)

	for _, body := range []string{`{"email":""}`, `{"email":"not-an-email"}`, `{}`} {
		w := executeHandler(t, env.handler.Subscribe, newJSONRequest(t, http.MethodPost, "/api/newsletter", body, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestDeleteSubscriber(t *testing.T) {
	env := testSetup(t)

	executeHandler(t, env.handler.Subscribe, newJSONRequest(t, http.MethodPost, "/api/newsletter", `{"email":"guest@example.com"}`, nil))

	req := newDeleteRequest(t, "/api/newsletter/1", map[string]string{"id": "1"})
	w := executeHandler(t, env.handler.DeleteSubscriber, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}

	subs, _ := env.queries.ListSubscribers(context.Background())
	if len(subs) != 0 {
		t.Errorf("got %d subscribers, want 0", len(subs))
	}
}
