// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 500
)

// ListLogs handles GET /api/logs: the most recent audit log entries.
func (h *Handler) ListLogs(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultLogLimit)
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 1 || n > maxLogLimit {
			WriteBadRequest(w, "Invalid limit", nil)
			return
		}
		limit = n
	}

	entries, err := h.queries.ListLogEntries(r.Context(), limit)
	if err != nil {
		WriteInternalError(w, "Failed to list log entries")
		return
	}
	WriteSuccess(w, entries, &Meta{Total: len(entries)})
}
