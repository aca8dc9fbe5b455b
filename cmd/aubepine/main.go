// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

// Command aubepine serves the Maison Aubépine marketing site API and its
// back office.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aubepine/site-go/internal/config"
	"github.com/aubepine/site-go/internal/handler/api"
	"github.com/aubepine/site-go/internal/i18n"
	"github.com/aubepine/site-go/internal/imaging"
	"github.com/aubepine/site-go/internal/logging"
	"github.com/aubepine/site-go/internal/mailer"
	"github.com/aubepine/site-go/internal/middleware"
	"github.com/aubepine/site-go/internal/scheduler"
	"github.com/aubepine/site-go/internal/session"
	"github.com/aubepine/site-go/internal/store"
	"github.com/aubepine/site-go/internal/translations"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Maison Aubépine - hotel site server\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AUBEPINE_SESSION_SECRET    Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AUBEPINE_DB_PATH           SQLite database path (default: ./data/aubepine.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AUBEPINE_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AUBEPINE_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AUBEPINE_UPLOADS_DIR       Uploaded media directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AUBEPINE_MAILER_API_KEY    Mail provider API key\n")
		_, _ = fmt.Fprintf(os.Stderr, "  AUBEPINE_HOTEL_EMAIL       Contact form recipient\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("aubepine %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Initialize the message catalogs for emails and API errors
	if err := i18n.Init(logger); err != nil {
		return fmt.Errorf("initializing i18n: %w", err)
	}
	slog.Info("i18n catalogs loaded", "locales", i18n.SupportedLanguages)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to mirror WARN and ERROR records into the audit log table
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	auditHandler := logging.NewAuditLogHandler(textHandler, db)
	logger = slog.New(auditHandler)
	slog.SetDefault(logger)
	slog.Info("audit log integration enabled", "min_level", "warn")

	ctx := context.Background()
	if err := store.Seed(ctx, db); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	if err := store.SeedDemo(ctx, db, cfg.DoSeed); err != nil {
		return fmt.Errorf("seeding demo content: %w", err)
	}

	// Session manager backed by the same SQLite database
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Start the scheduler: event unpublishing and audit log pruning
	sched := scheduler.New(db, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	// Translation workspace with debounced autosave
	queries := store.New(db)
	workspace := translations.NewWorkspace(
		translations.StoreBindings(queries),
		translations.WithLogger(logger),
	)
	if err := workspace.Load(ctx); err != nil {
		return fmt.Errorf("loading translation workspace: %w", err)
	}
	slog.Info("translation workspace loaded", "rows", len(workspace.Rows()))

	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		return fmt.Errorf("creating uploads directory: %w", err)
	}

	apiHandler := api.NewHandler(api.Config{
		DB:         db,
		Sessions:   sessionManager,
		Mailer:     mailer.NewClient(cfg.MailerBaseURL, cfg.MailerAPIKey),
		Workspace:  workspace,
		Processor:  imaging.NewProcessor(cfg.UploadsDir),
		LoginProt:  middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig()),
		Logger:     logger,
		HotelEmail: cfg.HotelEmail,
		FromEmail:  cfg.FromEmail,
	})

	// CSRF covers the admin API; the public form endpoints are exempt so the
	// marketing pages can post without fetch metadata quirks.
	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment()))
	skipPublicForms := middleware.SkipCSRF("/api/contact", "/api/newsletter")

	r := apiHandler.Routes(api.RouterOptions{
		RateLimiter: middleware.NewRateLimiter(1, 5),
		CSRF: func(next http.Handler) http.Handler {
			return skipPublicForms(csrfMiddleware(next))
		},
		Security: middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())),
		Timeout:  30 * time.Second,
	})

	// Serve uploaded media; cache for 1 week
	uploadsHandler := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
	r.Handle("/uploads/*", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=604800")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		uploadsHandler.ServeHTTP(w, req)
	}))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // Longer to allow for large uploads and slow connections
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	// Persist any pending translation autosave before exit
	if err := workspace.Flush(shutdownCtx); err != nil {
		slog.Error("flushing translation workspace", "error", err)
	}

	slog.Info("server stopped")
	return nil
}
