// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/aubepine/site-go/internal/i18n"
	"github.com/aubepine/site-go/internal/imaging"
	"github.com/aubepine/site-go/internal/mailer"
	"github.com/aubepine/site-go/internal/middleware"
	"github.com/aubepine/site-go/internal/model"
	"github.com/aubepine/site-go/internal/store"
	"github.com/aubepine/site-go/internal/testutil"
	"github.com/aubepine/site-go/internal/translations"
)

func TestMain(m *testing.M) {
	if err := i18n.Init(nil); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeMailer records sent emails and can be told to fail per recipient.
type fakeMailer struct {
	mu     sync.Mutex
	sent   []mailer.Email
	failTo map[string]bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failTo: make(map[string]bool)}
}

func (f *fakeMailer) Send(_ context.Context, email mailer.Email) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTo[email.To] {
		return "", context.DeadlineExceeded
	}
	f.sent = append(f.sent, email)
	return "msg_test", nil
}

func (f *fakeMailer) sentTo(to string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.sent {
		if e.To == to {
			n++
		}
	}
	return n
}

func (f *fakeMailer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

// testEnv bundles the pieces a handler test needs.
type testEnv struct {
	db        *sql.DB
	queries   *store.Queries
	handler   *Handler
	mailer    *fakeMailer
	uploadDir string
}

// testSetup creates a migrated test database and a wired API handler.
func testSetup(t *testing.T) *testEnv {
	t.Helper()

	db, cleanup := testutil.TestDB(t)
	t.Cleanup(cleanup)

	queries := store.New(db)
	fm := newFakeMailer()
	uploadDir := t.TempDir()

	workspace := translations.NewWorkspace(
		translations.StoreBindings(queries),
		translations.WithAutosave(false),
		translations.WithLogger(testutil.TestLogger()),
	)

	h := NewHandler(Config{
		DB:         db,
		Sessions:   scs.New(),
		Mailer:     fm,
		Workspace:  workspace,
		Processor:  imaging.NewProcessor(uploadDir),
		Logger:     testutil.TestLogger(),
		HotelEmail: "reception@maison-aubepine.example",
		FromEmail:  "site@maison-aubepine.example",
	})

	return &testEnv{db: db, queries: queries, handler: h, mailer: fm, uploadDir: uploadDir}
}

// withUser attaches an authenticated admin to the request context, the way
// the LoadUser middleware does.
func withUser(r *http.Request, user model.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyUser, user))
}

// createTestUser inserts an admin user.
func createTestUser(t *testing.T, q *store.Queries, email string) model.User {
	t.Helper()
	now := time.Now()
	user, err := q.CreateUser(context.Background(), store.CreateUserParams{
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$JHzKsVNiy1wSJw6oU6lDJX5eof//Hz20nQ3AAmL5WCM",
		Name:         "Test Admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return user
}

// requestWithURLParams adds chi URL parameters to a request.
func requestWithURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newJSONRequest creates an HTTP request with a JSON body and optional URL
// params.
func newJSONRequest(t *testing.T, method, path, body string, params map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if len(params) > 0 {
		req = requestWithURLParams(req, params)
	}
	return req
}

// newGetRequest creates an HTTP GET request with optional URL params.
func newGetRequest(t *testing.T, path string, params map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if len(params) > 0 {
		req = requestWithURLParams(req, params)
	}
	return req
}

// newDeleteRequest creates an HTTP DELETE request with optional URL params.
func newDeleteRequest(t *testing.T, path string, params map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	if len(params) > 0 {
		req = requestWithURLParams(req, params)
	}
	return req
}

// dataResponse is a generic wrapper for API responses with a "data" field.
type dataResponse[T any] struct {
	Data T `json:"data"`
}

// listResponse is a generic wrapper for API list responses with data and meta.
type listResponse[T any] struct {
	Data []T   `json:"data"`
	Meta *Meta `json:"meta"`
}

// unmarshalData unmarshals a JSON response body into the specified type.
func unmarshalData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var resp dataResponse[T]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp.Data
}

// unmarshalList unmarshals a JSON list response body into the specified type.
func unmarshalList[T any](t *testing.T, w *httptest.ResponseRecorder) ([]T, *Meta) {
	t.Helper()
	var resp listResponse[T]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	return resp.Data, resp.Meta
}

// executeHandler executes a handler and returns the response recorder.
func executeHandler(t *testing.T, handler func(http.ResponseWriter, *http.Request), req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}
