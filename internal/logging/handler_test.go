package logging

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aubepine/site-go/internal/model"
	"github.com/aubepine/site-go/internal/store"
)

// testDB creates a temporary test database with migrations applied.
func testDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	f, err := os.CreateTemp("", "aubepine-logging-test-*.db")
	if err != nil {
		t.Fatalf("creating temp file: %v", err)
	}
	dbPath := f.Name()
	_ = f.Close()

	db, err := store.NewDB(dbPath)
	if err != nil {
		_ = os.Remove(dbPath)
		t.Fatalf("NewDB: %v", err)
	}

	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		_ = os.Remove(dbPath)
		t.Fatalf("Migrate: %v", err)
	}

	cleanup := func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	}

	return db, cleanup
}

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func TestAuditLogHandler_Handle_ErrorLevel(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	handler := NewAuditLogHandler(discardHandler{}, db)
	logger := slog.New(handler)

	logger.Error("database connection failed", "host", "localhost", "port", 5432)

	time.Sleep(50 * time.Millisecond)

	q := store.New(db)
	entries, err := q.ListLogEntries(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListLogEntries: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	if entries[0].Level != model.LogLevelError {
		t.Errorf("Level = %q, want %q", entries[0].Level, model.LogLevelError)
	}
	if entries[0].Message != "database connection failed" {
		t.Errorf("Message = %q, want %q", entries[0].Message, "database connection failed")
	}
}

func TestAuditLogHandler_Handle_WarnLevel(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	handler := NewAuditLogHandler(discardHandler{}, db)
	logger := slog.New(handler)

	logger.Warn("slow query detected", "duration_ms", 5000)

	time.Sleep(50 * time.Millisecond)

	q := store.New(db)
	entries, err := q.ListLogEntries(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListLogEntries: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	if entries[0].Level != model.LogLevelWarning {
		t.Errorf("Level = %q, want %q", entries[0].Level, model.LogLevelWarning)
	}
}

func TestAuditLogHandler_Handle_InfoLevel_NotCaptured(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	handler := NewAuditLogHandler(discardHandler{}, db)
	logger := slog.New(handler)

	logger.Info("server started", "port", 8080)

	time.Sleep(50 * time.Millisecond)

	q := store.New(db)
	entries, err := q.ListLogEntries(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListLogEntries: %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("expected 0 entries for INFO level, got %d", len(entries))
	}
}

func TestAuditLogHandler_Handle_CustomLevel(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	handler := NewAuditLogHandlerWithLevel(discardHandler{}, db, slog.LevelInfo)
	logger := slog.New(handler)

	logger.Info("server started", "port", 8080)

	time.Sleep(50 * time.Millisecond)

	q := store.New(db)
	entries, err := q.ListLogEntries(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListLogEntries: %v", err)
	}

	if len(entries) != 1 {
		t.Errorf("expected 1 entry with custom INFO level, got %d", len(entries))
	}
}

func TestAuditLogHandler_CategoryInference(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	handler := NewAuditLogHandler(discardHandler{}, db)
	logger := slog.New(handler)

	testCases := []struct {
		message          string
		expectedCategory string
	}{
		{"login attempt blocked", model.LogCategoryAuth},
		{"logout completed", model.LogCategoryAuth},
		{"confirmation email failed", model.LogCategoryMail},
		{"user account removed", model.LogCategoryUser},
		{"room upload rejected", model.LogCategoryContent},
		{"translation save failed", model.LogCategoryContent},
		{"unknown failure occurred", model.LogCategorySystem},
	}

	for _, tc := range testCases {
		_, _ = db.Exec("DELETE FROM log_entries")

		logger.Error(tc.message)
		time.Sleep(50 * time.Millisecond)

		q := store.New(db)
		entries, _ := q.ListLogEntries(context.Background(), 1)

		if len(entries) != 1 {
			t.Errorf("message %q: expected 1 entry, got %d", tc.message, len(entries))
			continue
		}

		if entries[0].Category != tc.expectedCategory {
			t.Errorf("message %q: Category = %q, want %q", tc.message, entries[0].Category, tc.expectedCategory)
		}
	}
}

func TestAuditLogHandler_ExplicitCategory(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	handler := NewAuditLogHandler(discardHandler{}, db)
	logger := slog.New(handler)

	// Explicit category attribute overrides inference
	logger.Error("something happened", "category", model.LogCategoryUser)
	time.Sleep(50 * time.Millisecond)

	q := store.New(db)
	entries, _ := q.ListLogEntries(context.Background(), 1)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	if entries[0].Category != model.LogCategoryUser {
		t.Errorf("Category = %q, want %q", entries[0].Category, model.LogCategoryUser)
	}
}

func TestAuditLogHandler_MetadataExtraction(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	handler := NewAuditLogHandler(discardHandler{}, db)
	logger := slog.New(handler)

	logger.Error("request failed",
		"status_code", 500,
		"path", "/api/rooms",
		"duration_ms", 1234,
	)
	time.Sleep(50 * time.Millisecond)

	q := store.New(db)
	entries, _ := q.ListLogEntries(context.Background(), 1)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	metadata := entries[0].Metadata
	if metadata == "{}" {
		t.Error("Metadata should not be empty")
	}

	for _, key := range []string{"status_code", "path", "duration_ms"} {
		if !strings.Contains(metadata, key) {
			t.Errorf("Metadata should contain %q: %s", key, metadata)
		}
	}
}

func TestAuditLogHandler_WithAttrs(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	handler := NewAuditLogHandler(discardHandler{}, db)
	handlerWithAttrs := handler.WithAttrs([]slog.Attr{
		slog.String("service", "api"),
	})

	logger := slog.New(handlerWithAttrs)
	logger.Error("service error")
	time.Sleep(50 * time.Millisecond)

	q := store.New(db)
	entries, _ := q.ListLogEntries(context.Background(), 1)

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	if entries[0].Message != "service error" {
		t.Errorf("Message = %q, want %q", entries[0].Message, "service error")
	}
}

func TestAuditLogHandler_MultipleEntries(t *testing.T) {
	db, cleanup := testDB(t)
	defer cleanup()

	handler := NewAuditLogHandler(discardHandler{}, db)
	logger := slog.New(handler)

	logger.Error("error 1")
	logger.Warn("warning 1")
	logger.Error("error 2")
	logger.Warn("warning 2")
	logger.Info("info 1") // Should not be captured

	time.Sleep(100 * time.Millisecond)

	q := store.New(db)
	entries, err := q.ListLogEntries(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListLogEntries: %v", err)
	}

	if len(entries) != 4 {
		t.Errorf("expected 4 entries (2 errors + 2 warnings), got %d", len(entries))
	}
}

func TestEscapeJSON(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{`hello`, `hello`},
		{`hello "world"`, `hello \"world\"`},
		{`path\to\file`, `path\\to\\file`},
		{"line1\nline2", `line1\nline2`},
		{"col1\tcol2", `col1\tcol2`},
		{"return\rhere", `return\rhere`},
	}

	for _, tc := range testCases {
		result := escapeJSON(tc.input)
		if result != tc.expected {
			t.Errorf("escapeJSON(%q) = %q, want %q", tc.input, result, tc.expected)
		}
	}
}

func TestSlogLevelToLogLevel(t *testing.T) {
	testCases := []struct {
		level    slog.Level
		expected string
	}{
		{slog.LevelDebug, model.LogLevelInfo},
		{slog.LevelInfo, model.LogLevelInfo},
		{slog.LevelWarn, model.LogLevelWarning},
		{slog.LevelError, model.LogLevelError},
		{slog.LevelError + 4, model.LogLevelError}, // Higher than error
	}

	for _, tc := range testCases {
		result := slogLevelToLogLevel(tc.level)
		if result != tc.expected {
			t.Errorf("slogLevelToLogLevel(%v) = %q, want %q", tc.level, result, tc.expected)
		}
	}
}
