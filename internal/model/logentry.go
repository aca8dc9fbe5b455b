// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Log entry levels
const (
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log entry categories
const (
	LogCategoryAuth    = "auth"
	LogCategoryContent = "content"
	LogCategoryUser    = "user"
	LogCategoryMail    = "mail"
	LogCategorySystem  = "system"
)

// LogEntry is a persisted audit record. WARN and ERROR slog records are
// mirrored here so admins can review them in the back office.
type LogEntry struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Metadata  string    `json:"metadata"` // JSON string
	CreatedAt time.Time `json:"created_at"`
}
