// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

// Package markdown converts editor-authored Markdown into sanitized HTML for
// the public site payloads.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer strips anything outside bluemonday's UGC allowlist. Content
// comes from the back office, but editors paste from everywhere.
var htmlSanitizer = bluemonday.UGCPolicy()

// Render converts Markdown to sanitized HTML.
func Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}

// RenderOrRaw converts Markdown to sanitized HTML, falling back to the
// sanitized source text when rendering fails.
func RenderOrRaw(source string) string {
	html, err := Render(source)
	if err != nil {
		return htmlSanitizer.Sanitize(source)
	}
	return html
}
