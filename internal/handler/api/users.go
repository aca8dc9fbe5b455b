// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/aubepine/site-go/internal/auth"
	"github.com/aubepine/site-go/internal/middleware"
	"github.com/aubepine/site-go/internal/model"
	"github.com/aubepine/site-go/internal/store"
)

const minPasswordLength = 10

// ListUsers handles GET /api/users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.queries.ListUsers(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to list users")
		return
	}
	WriteSuccess(w, users, &Meta{Total: len(users)})
}

// GetUser handles GET /api/users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := requireEntityByID(w, r, "user", func(id int64) (model.User, error) {
		return h.queries.GetUserByID(r.Context(), id)
	})
	if !ok {
		return
	}
	WriteSuccess(w, user, nil)
}

// CreateUserRequest is the body for creating an admin user.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUser handles POST /api/users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	fieldErrors := map[string]string{}
	if req.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		fieldErrors["email"] = "A valid email address is required"
	}
	if len(req.Password) < minPasswordLength {
		fieldErrors["password"] = "Password must be at least 10 characters"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	if _, err := h.queries.GetUserByEmail(r.Context(), req.Email); err == nil {
		WriteValidationError(w, map[string]string{"email": "Email is already in use"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		WriteInternalError(w, "Failed to create user")
		return
	}

	now := time.Now()
	user, err := h.queries.CreateUser(r.Context(), store.CreateUserParams{
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		WriteInternalError(w, "Failed to create user")
		return
	}

	h.logger.Warn("admin user created",
		"category", "user",
		"user_id", user.ID,
		"email", user.Email,
		"created_by", middleware.GetUserEmail(r),
	)
	WriteCreated(w, user)
}

// UpdateUserRequest is the body for updating an admin user. Password is
// optional; when present the hash is replaced.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

// UpdateUser handles PUT /api/users/{id}.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	existing, ok := requireEntityByID(w, r, "user", func(id int64) (model.User, error) {
		return h.queries.GetUserByID(r.Context(), id)
	})
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, "Invalid JSON body", nil)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	fieldErrors := map[string]string{}
	if req.Name == "" {
		fieldErrors["name"] = "Name is required"
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		fieldErrors["email"] = "A valid email address is required"
	}
	if req.Password != "" && len(req.Password) < minPasswordLength {
		fieldErrors["password"] = "Password must be at least 10 characters"
	}
	if len(fieldErrors) > 0 {
		WriteValidationError(w, fieldErrors)
		return
	}

	if other, err := h.queries.GetUserByEmail(r.Context(), req.Email); err == nil && other.ID != existing.ID {
		WriteValidationError(w, map[string]string{"email": "Email is already in use"})
		return
	}

	user, err := h.queries.UpdateUser(r.Context(), store.UpdateUserParams{
		ID:        existing.ID,
		Email:     req.Email,
		Name:      req.Name,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		WriteInternalError(w, "Failed to update user")
		return
	}

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			WriteInternalError(w, "Failed to update password")
			return
		}
		if err := h.queries.UpdateUserPassword(r.Context(), store.UpdateUserPasswordParams{
			ID:           existing.ID,
			PasswordHash: hash,
			UpdatedAt:    time.Now(),
		}); err != nil {
			WriteInternalError(w, "Failed to update password")
			return
		}
	}

	WriteSuccess(w, user, nil)
}

// DeleteUser handles DELETE /api/users/{id}. The last remaining admin cannot
// be deleted, and admins cannot delete themselves.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user, ok := requireEntityByID(w, r, "user", func(id int64) (model.User, error) {
		return h.queries.GetUserByID(r.Context(), id)
	})
	if !ok {
		return
	}

	if user.ID == middleware.GetUserID(r) {
		WriteBadRequest(w, "You cannot delete your own account", nil)
		return
	}

	count, err := h.queries.CountUsers(r.Context())
	if err != nil {
		WriteInternalError(w, "Failed to delete user")
		return
	}
	if count <= 1 {
		WriteConflict(w, "Cannot delete the last admin user")
		return
	}

	if err := h.queries.DeleteUser(r.Context(), user.ID); err != nil {
		WriteInternalError(w, "Failed to delete user")
		return
	}

	h.logger.Warn("admin user deleted",
		"category", "user",
		"user_id", user.ID,
		"email", user.Email,
		"deleted_by", middleware.GetUserEmail(r),
	)
	w.WriteHeader(http.StatusNoContent)
}
