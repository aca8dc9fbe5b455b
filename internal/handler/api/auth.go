// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aubepine/site-go/internal/auth"
	"github.com/aubepine/site-go/internal/i18n"
	"github.com/aubepine/site-go/internal/middleware"
	"github.com/aubepine/site-go/internal/store"
)

// LoginRequest is the body for POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/login: verifies the password, renews the session
// token and stores the user id. Failures return a single generic message so
// the response does not reveal whether the account exists.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := string(middleware.GetLocale(r))

	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		WriteUnauthorized(w, i18n.T(lang, "auth.invalid_credentials"))
		return
	}

	if h.loginProt != nil {
		if locked, _ := h.loginProt.IsAccountLocked(req.Email); locked {
			h.logger.Warn("login attempt on locked account",
				"category", "auth",
				"email", req.Email,
			)
			WriteError(w, http.StatusTooManyRequests, "account_locked", i18n.T(lang, "auth.locked"), nil)
			return
		}
	}

	user, err := h.queries.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			WriteInternalError(w, "Login failed")
			return
		}
		// Burn a comparison so the timing matches the found-user path.
		_, _ = auth.CheckPassword(req.Password, dummyHash)
		h.recordFailure(w, r, req.Email, lang)
		return
	}

	match, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil || !match {
		h.recordFailure(w, r, req.Email, lang)
		return
	}

	if h.loginProt != nil {
		h.loginProt.RecordSuccessfulLogin(req.Email)
	}

	// Transparent hash upgrade when the stored parameters are stale.
	if auth.NeedsRehash(user.PasswordHash) {
		if hash, err := auth.HashPassword(req.Password); err == nil {
			_ = h.queries.UpdateUserPassword(ctx, store.UpdateUserPasswordParams{
				ID:           user.ID,
				PasswordHash: hash,
				UpdatedAt:    time.Now(),
			})
		}
	}

	if err := h.sessions.RenewToken(ctx); err != nil {
		WriteInternalError(w, "Login failed")
		return
	}
	h.sessions.Put(ctx, middleware.SessionKeyUserID, user.ID)

	if err := h.queries.TouchUserLogin(ctx, user.ID, time.Now()); err != nil {
		h.logger.Warn("failed to record login time",
			"category", "auth",
			"user_id", user.ID,
			"error", err,
		)
	}

	h.logger.Info("admin login", "user_id", user.ID, "email", user.Email)
	WriteSuccess(w, user, nil)
}

// dummyHash is a throwaway argon2id hash compared against when the account
// does not exist, to keep response timing uniform.
const dummyHash = "$argon2id$v=19$m=19456,t=2,p=1$AAAAAAAAAAAAAAAAAAAAAA$JHzKsVNiy1wSJw6oU6lDJX5eof//Hz20nQ3AAmL5WCM"

func (h *Handler) recordFailure(w http.ResponseWriter, r *http.Request, email, lang string) {
	if h.loginProt != nil {
		if locked, _ := h.loginProt.RecordFailedAttempt(email); locked {
			h.logger.Warn("account locked after repeated failures",
				"category", "auth",
				"email", email,
			)
			WriteError(w, http.StatusTooManyRequests, "account_locked", i18n.T(lang, "auth.locked"), nil)
			return
		}
	}

	h.logger.Warn("failed login attempt",
		"category", "auth",
		"email", email,
	)
	WriteUnauthorized(w, i18n.T(lang, "auth.invalid_credentials"))
}

// Logout handles POST /api/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	if err := h.sessions.Destroy(r.Context()); err != nil {
		WriteInternalError(w, "Logout failed")
		return
	}

	h.logger.Info("admin logout", "user_id", userID)
	WriteSuccess(w, map[string]bool{"logged_out": true}, nil)
}

// Session handles GET /api/session: the current admin, for front-end boot.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r)
	if user == nil {
		WriteUnauthorized(w, "Not authenticated")
		return
	}
	WriteSuccess(w, user, nil)
}
