// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config loads the application configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"AUBEPINE_DB_PATH" envDefault:"./data/aubepine.db"`
	SessionSecret string `env:"AUBEPINE_SESSION_SECRET,required"`
	ServerHost    string `env:"AUBEPINE_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"AUBEPINE_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"AUBEPINE_ENV" envDefault:"development"`
	LogLevel      string `env:"AUBEPINE_LOG_LEVEL" envDefault:"info"`
	UploadsDir    string `env:"AUBEPINE_UPLOADS_DIR" envDefault:"./uploads"`

	// Mail provider configuration
	MailerBaseURL string `env:"AUBEPINE_MAILER_BASE_URL" envDefault:"https://api.mailprovider.example"`
	MailerAPIKey  string `env:"AUBEPINE_MAILER_API_KEY"`
	FromEmail     string `env:"AUBEPINE_FROM_EMAIL" envDefault:"site@maison-aubepine.be"`
	HotelEmail    string `env:"AUBEPINE_HOTEL_EMAIL" envDefault:"reception@maison-aubepine.be"`

	// Seeding configuration
	DoSeed bool `env:"AUBEPINE_DO_SEED" envDefault:"false"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("AUBEPINE_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("AUBEPINE_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("AUBEPINE_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	if _, err := mail.ParseAddress(cfg.FromEmail); err != nil {
		return nil, fmt.Errorf("AUBEPINE_FROM_EMAIL %q is not a valid address", cfg.FromEmail)
	}
	if _, err := mail.ParseAddress(cfg.HotelEmail); err != nil {
		return nil, fmt.Errorf("AUBEPINE_HOTEL_EMAIL %q is not a valid address", cfg.HotelEmail)
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
