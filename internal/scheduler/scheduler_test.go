// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/aubepine/site-go/internal/model"
	"github.com/aubepine/site-go/internal/store"
	"github.com/aubepine/site-go/internal/testutil"
)

func TestUnpublishPastEvents(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	q := store.New(db)

	past, err := q.CreateEvent(ctx, model.Event{
		Title:       model.LocalizedText{Fr: "Concert d'été"},
		StartsAt:    time.Now().Add(-48 * time.Hour),
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	future, err := q.CreateEvent(ctx, model.Event{
		Title:       model.LocalizedText{Fr: "Dégustation"},
		StartsAt:    time.Now().Add(48 * time.Hour),
		IsPublished: true,
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	s := New(db, slog.Default())
	if err := s.unpublishPastEvents(); err != nil {
		t.Fatalf("unpublishPastEvents: %v", err)
	}

	got, err := q.GetEventByID(ctx, past.ID)
	if err != nil {
		t.Fatalf("GetEventByID: %v", err)
	}
	if got.IsPublished {
		t.Error("past event should be unpublished")
	}

	got, err = q.GetEventByID(ctx, future.ID)
	if err != nil {
		t.Fatalf("GetEventByID: %v", err)
	}
	if !got.IsPublished {
		t.Error("future event should stay published")
	}

	// The run is recorded in the audit log
	entries, err := q.ListLogEntries(ctx, 10)
	if err != nil {
		t.Fatalf("ListLogEntries: %v", err)
	}
	if len(entries) == 0 {
		t.Error("expected an audit log entry for the unpublish run")
	}
}

func TestUnpublishPastEvents_NothingToDo(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	s := New(db, slog.Default())
	if err := s.unpublishPastEvents(); err != nil {
		t.Fatalf("unpublishPastEvents: %v", err)
	}

	// No log entry when nothing was unpublished
	entries, err := store.New(db).ListLogEntries(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListLogEntries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no log entries, got %d", len(entries))
	}
}

func TestPruneLogEntries(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	q := store.New(db)

	_, err := q.CreateLogEntry(ctx, store.CreateLogEntryParams{
		Level:     model.LogLevelInfo,
		Category:  model.LogCategorySystem,
		Message:   "ancient entry",
		Metadata:  "{}",
		CreatedAt: time.Now().Add(-100 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateLogEntry: %v", err)
	}

	_, err = q.CreateLogEntry(ctx, store.CreateLogEntryParams{
		Level:     model.LogLevelInfo,
		Category:  model.LogCategorySystem,
		Message:   "recent entry",
		Metadata:  "{}",
		CreatedAt: time.Now().Add(-24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("CreateLogEntry: %v", err)
	}

	s := New(db, slog.Default())
	if err := s.pruneLogEntries(); err != nil {
		t.Fatalf("pruneLogEntries: %v", err)
	}

	entries, err := q.ListLogEntries(ctx, 10)
	if err != nil {
		t.Fatalf("ListLogEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Message != "recent entry" {
		t.Errorf("surviving entry = %q", entries[0].Message)
	}
}

func TestStartStop(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	s := New(db, slog.Default())
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()
}
