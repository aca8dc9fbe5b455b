// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"net/http"

	"github.com/aubepine/site-go/internal/i18n"
	"github.com/aubepine/site-go/internal/model"
)

// ContextKeyLocale is the context key for the resolved display locale.
const ContextKeyLocale ContextKey = "locale"

// LocaleCookieName is the cookie name for the visitor's locale preference.
const LocaleCookieName = "aubepine_locale"

// Locale creates middleware that resolves the display locale for the request.
// Priority order:
//  1. Query parameter ?locale=xx (explicit switch, updates cookie)
//  2. Cookie preference
//  3. Accept-Language header
//  4. French, the primary locale
func Locale() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if q := r.URL.Query().Get("locale"); q != "" {
				if locale, ok := model.LookupLocale(q); ok {
					SetLocaleCookie(w, locale)
					next.ServeHTTP(w, r.WithContext(withLocale(ctx, locale)))
					return
				}
			}

			if cookie, err := r.Cookie(LocaleCookieName); err == nil {
				if locale, ok := model.LookupLocale(cookie.Value); ok {
					next.ServeHTTP(w, r.WithContext(withLocale(ctx, locale)))
					return
				}
			}

			if header := r.Header.Get("Accept-Language"); header != "" {
				locale := i18n.MatchLocale(header)
				next.ServeHTTP(w, r.WithContext(withLocale(ctx, locale)))
				return
			}

			next.ServeHTTP(w, r.WithContext(withLocale(ctx, model.PrimaryLocale)))
		})
	}
}

func withLocale(ctx context.Context, locale model.Locale) context.Context {
	return context.WithValue(ctx, ContextKeyLocale, locale)
}

// GetLocale retrieves the resolved locale from the request context.
// Falls back to the primary locale when the middleware did not run.
func GetLocale(r *http.Request) model.Locale {
	locale, ok := r.Context().Value(ContextKeyLocale).(model.Locale)
	if !ok {
		return model.PrimaryLocale
	}
	return locale
}

// SetLocaleCookie sets the locale preference cookie.
func SetLocaleCookie(w http.ResponseWriter, locale model.Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     LocaleCookieName,
		Value:    string(locale),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
