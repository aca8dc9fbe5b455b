// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/aubepine/site-go/internal/middleware"
)

// RouterOptions carries the cross-cutting middleware for Routes. Zero fields
// are skipped, which keeps handler tests free of rate limiting and CSRF.
type RouterOptions struct {
	RateLimiter *middleware.RateLimiter
	CSRF        func(http.Handler) http.Handler
	Security    func(http.Handler) http.Handler
	Timeout     time.Duration
}

// Routes assembles the full API router.
func (h *Handler) Routes(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if opts.Timeout > 0 {
		r.Use(middleware.Timeout(opts.Timeout))
	}
	r.Use(middleware.Compress())
	if opts.Security != nil {
		r.Use(opts.Security)
	}
	r.Use(h.sessions.LoadAndSave)
	r.Use(middleware.Locale())
	if opts.CSRF != nil {
		r.Use(opts.CSRF)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", h.Status)

		// Public content delivery.
		r.Get("/pages/{page}", h.GetPage)
		r.Get("/heroes", h.ListHeroes)
		r.Get("/about", h.ListAboutSections)
		r.Get("/features", h.ListFeatures)
		r.Get("/rooms", h.ListRooms)
		r.Get("/rooms/{slug}", h.GetRoomBySlug)
		r.Get("/testimonials", h.ListTestimonials)
		r.Get("/gallery", h.ListGalleryImages)
		r.Get("/events", h.ListEvents)
		r.Get("/page-hero/{pageKey}", h.GetPageHero)
		r.Get("/i18n/{locale}", h.GetI18nCatalog)

		// Public posts, rate limited per IP.
		limited := r.With()
		if opts.RateLimiter != nil {
			limited = r.With(opts.RateLimiter.Middleware())
		}
		limited.Post("/contact", h.Contact)
		limited.Post("/newsletter", h.Subscribe)

		login := r.With()
		if h.loginProt != nil {
			login = r.With(h.loginProt.Middleware())
		}
		login.Post("/login", h.Login)

		// Back office, session gated.
		admin := r.With(
			middleware.Auth(h.sessions),
			middleware.LoadUser(h.sessions, h.db),
		)

		admin.Post("/logout", h.Logout)
		admin.Get("/session", h.Session)

		admin.Post("/heroes", h.CreateHero)
		admin.Get("/heroes/{id}", h.GetHero)
		admin.Put("/heroes/{id}", h.UpdateHero)
		admin.Delete("/heroes/{id}", h.DeleteHero)

		admin.Post("/about", h.CreateAboutSection)
		admin.Get("/about/{id}", h.GetAboutSection)
		admin.Put("/about/{id}", h.UpdateAboutSection)
		admin.Delete("/about/{id}", h.DeleteAboutSection)

		admin.Post("/features", h.CreateFeature)
		admin.Get("/features/{id}", h.GetFeature)
		admin.Put("/features/{id}", h.UpdateFeature)
		admin.Delete("/features/{id}", h.DeleteFeature)

		admin.Post("/rooms", h.CreateRoom)
		admin.Get("/rooms/id/{id}", h.GetRoom)
		admin.Put("/rooms/{id}", h.UpdateRoom)
		admin.Delete("/rooms/{id}", h.DeleteRoom)

		admin.Post("/testimonials", h.CreateTestimonial)
		admin.Get("/testimonials/{id}", h.GetTestimonial)
		admin.Put("/testimonials/{id}", h.UpdateTestimonial)
		admin.Delete("/testimonials/{id}", h.DeleteTestimonial)

		admin.Post("/gallery", h.CreateGalleryImage)
		admin.Get("/gallery/{id}", h.GetGalleryImage)
		admin.Put("/gallery/{id}", h.UpdateGalleryImage)
		admin.Delete("/gallery/{id}", h.DeleteGalleryImage)

		admin.Post("/events", h.CreateEvent)
		admin.Get("/events/{id}", h.GetEvent)
		admin.Put("/events/{id}", h.UpdateEvent)
		admin.Delete("/events/{id}", h.DeleteEvent)

		admin.Get("/page-heroes", h.ListPageHeroes)
		admin.Get("/page-hero/{pageKey}/raw", h.GetPageHeroRaw)
		admin.Put("/page-hero/{pageKey}", h.UpdatePageHero)

		admin.Get("/newsletter", h.ListSubscribers)
		admin.Delete("/newsletter/{id}", h.DeleteSubscriber)

		admin.Get("/users", h.ListUsers)
		admin.Post("/users", h.CreateUser)
		admin.Get("/users/{id}", h.GetUser)
		admin.Put("/users/{id}", h.UpdateUser)
		admin.Delete("/users/{id}", h.DeleteUser)

		admin.Post("/upload", h.Upload)
		admin.Delete("/uploads/{uuid}", h.DeleteUpload)

		admin.Get("/translations", h.GetTranslations)
		admin.Put("/translations", h.EditTranslation)
		admin.Post("/translations/save-all", h.SaveAllTranslations)

		admin.Get("/logs", h.ListLogs)
	})

	return r
}
