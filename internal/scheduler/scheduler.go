// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the background maintenance jobs: unpublishing past
// events and pruning old audit log entries.
package scheduler

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aubepine/site-go/internal/model"
	"github.com/aubepine/site-go/internal/store"
)

// logRetention is how long audit log entries are kept.
const logRetention = 90 * 24 * time.Hour

// Scheduler handles the recurring maintenance tasks.
type Scheduler struct {
	db     *sql.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// New creates a new scheduler instance.
func New(db *sql.DB, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		db:     db,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start registers the jobs and begins the scheduler: past events are
// unpublished every 10 minutes, the audit log is pruned daily.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("*/10 * * * *", func() {
		if err := s.unpublishPastEvents(); err != nil {
			s.logger.Error("failed to unpublish past events", "error", err)
		}
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc("@daily", func() {
		if err := s.pruneLogEntries(); err != nil {
			s.logger.Error("failed to prune log entries", "error", err)
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// unpublishPastEvents hides events whose start time has passed.
func (s *Scheduler) unpublishPastEvents() error {
	ctx := context.Background()
	queries := store.New(s.db)

	now := time.Now()
	count, err := queries.UnpublishPastEvents(ctx, now)
	if err != nil {
		return err
	}

	if count == 0 {
		return nil
	}

	s.logger.Info("unpublished past events", "count", count)

	metadata, _ := json.Marshal(map[string]any{
		"count":  count,
		"cutoff": now.Format(time.RFC3339),
	})
	_, err = queries.CreateLogEntry(ctx, store.CreateLogEntryParams{
		Level:     model.LogLevelInfo,
		Category:  model.LogCategoryContent,
		Message:   "Past events unpublished by scheduler",
		Metadata:  string(metadata),
		CreatedAt: now,
	})
	if err != nil {
		s.logger.Warn("failed to record unpublish run", "error", err)
	}

	return nil
}

// pruneLogEntries removes audit log entries past the retention window.
func (s *Scheduler) pruneLogEntries() error {
	ctx := context.Background()
	queries := store.New(s.db)

	cutoff := time.Now().Add(-logRetention)
	count, err := queries.PruneLogEntries(ctx, cutoff)
	if err != nil {
		return err
	}

	if count > 0 {
		s.logger.Info("pruned audit log", "count", count, "cutoff", cutoff)
	}
	return nil
}
