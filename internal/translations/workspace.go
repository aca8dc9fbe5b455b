// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

// Package translations implements the back-office translation workspace: a
// flat view of every localized field across all content types, with dirty
// tracking, debounced autosave and a sequential save-all.
package translations

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/aubepine/site-go/internal/model"
)

// DefaultDebounce is the autosave debounce window.
const DefaultDebounce = 2000 * time.Millisecond

// saveTimeout bounds a single background autosave write.
const saveTimeout = 10 * time.Second

// RowKey identifies one translatable field of one record.
type RowKey struct {
	Model string `json:"model"`
	ID    int64  `json:"id"`
	Field string `json:"field"`
}

func (k RowKey) String() string {
	return fmt.Sprintf("%s:%d:%s", k.Model, k.ID, k.Field)
}

// Row is one editable line in the workspace. The French value is the
// read-only reference text; EN and NL are the editable translations.
type Row struct {
	RowKey
	Fr    string `json:"fr"`
	En    string `json:"en"`
	Nl    string `json:"nl"`
	Dirty bool   `json:"dirty"`
}

// Record couples a record id with its translatable fields.
type Record struct {
	ID     int64
	Fields model.Translatable
}

// Binding connects the workspace to one content type's storage.
type Binding struct {
	Model string
	List  func(ctx context.Context) ([]Record, error)
	Get   func(ctx context.Context, id int64) (Record, error)
	Save  func(ctx context.Context, rec Record) error
}

// SaveError reports one row that failed to persist.
type SaveError struct {
	RowKey
	Message string `json:"message"`
}

// SaveAllResult reports the outcome of a save-all pass.
type SaveAllResult struct {
	Saved  int         `json:"saved"`
	Failed []SaveError `json:"failed,omitempty"`
}

// Completion is the translation progress metric: rows carrying both
// secondary-locale values out of all rows.
type Completion struct {
	Translated int `json:"translated"`
	Total      int `json:"total"`
}

// Workspace holds the in-memory translation rows. All methods are safe for
// concurrent use.
type Workspace struct {
	mu       sync.Mutex
	rows     map[RowKey]*Row
	order    []RowKey
	bindings map[string]Binding

	autosave bool
	debounce time.Duration

	// Single-slot autosave: one timer, one pending row. A new edit within
	// the window cancels the previous timer and takes the slot.
	timer   *time.Timer
	pending RowKey

	logger *slog.Logger
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithAutosave enables or disables the debounced autosave.
func WithAutosave(enabled bool) Option {
	return func(w *Workspace) { w.autosave = enabled }
}

// WithDebounce overrides the autosave debounce window.
func WithDebounce(d time.Duration) Option {
	return func(w *Workspace) { w.debounce = d }
}

// WithLogger sets the workspace logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workspace) { w.logger = logger }
}

// NewWorkspace creates a workspace over the given bindings.
func NewWorkspace(bindings []Binding, opts ...Option) *Workspace {
	w := &Workspace{
		rows:     make(map[RowKey]*Row),
		bindings: make(map[string]Binding, len(bindings)),
		autosave: true,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
	}
	for _, b := range bindings {
		w.bindings[b.Model] = b
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Load rebuilds the rows from storage. Dirty rows are discarded, so callers
// should save first. Bindings are walked in a stable model order.
func (w *Workspace) Load(ctx context.Context) error {
	models := make([]string, 0, len(w.bindings))
	for name := range w.bindings {
		models = append(models, name)
	}
	sort.Strings(models)

	rows := make(map[RowKey]*Row)
	var order []RowKey

	for _, name := range models {
		binding := w.bindings[name]
		records, err := binding.List(ctx)
		if err != nil {
			return fmt.Errorf("listing %s records: %w", name, err)
		}

		for _, rec := range records {
			for _, field := range rec.Fields.TranslatableFields() {
				lt := rec.Fields.LocalizedField(field)
				if lt == nil {
					continue
				}
				key := RowKey{Model: name, ID: rec.ID, Field: field}
				rows[key] = &Row{
					RowKey: key,
					Fr:     lt.Fr,
					En:     lt.En,
					Nl:     lt.Nl,
				}
				order = append(order, key)
			}
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.rows = rows
	w.order = order
	return nil
}

// Rows returns a snapshot of all rows in load order.
func (w *Workspace) Rows() []Row {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]Row, 0, len(w.order))
	for _, key := range w.order {
		if row, ok := w.rows[key]; ok {
			out = append(out, *row)
		}
	}
	return out
}

// Edit updates one translation value and marks the row dirty. Only the
// secondary locales are editable; the French reference text belongs to the
// content editors, not the translation workspace. When autosave is enabled
// the edit arms the single-slot debounce timer.
func (w *Workspace) Edit(key RowKey, locale model.Locale, value string) error {
	if !locale.IsSecondary() {
		return fmt.Errorf("locale %q is not editable in the translation workspace", locale)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	row, ok := w.rows[key]
	if !ok {
		return fmt.Errorf("unknown translation row %s", key)
	}

	switch locale {
	case model.LocaleEN:
		row.En = value
	case model.LocaleNL:
		row.Nl = value
	}
	row.Dirty = true

	if w.autosave {
		w.armTimerLocked(key)
	}
	return nil
}

// armTimerLocked resets the debounce slot to the given row. Must be called
// with the lock held.
func (w *Workspace) armTimerLocked(key RowKey) {
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pending = key
	w.timer = time.AfterFunc(w.debounce, func() {
		w.fireAutosave()
	})
}

// fireAutosave persists the pending row in the background. A failed row stays
// dirty; the next edit or save-all retries it.
func (w *Workspace) fireAutosave() {
	w.mu.Lock()
	key := w.pending
	w.timer = nil
	w.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := w.SaveRow(ctx, key); err != nil {
		w.logger.Error("translation autosave failed",
			"model", key.Model,
			"id", key.ID,
			"field", key.Field,
			"error", err,
		)
	}
}

// SaveRow persists one row: the owning record is re-fetched, only the two
// translated values are merged in, and the full record is written back.
// On success the row is marked clean and its reference text refreshed.
func (w *Workspace) SaveRow(ctx context.Context, key RowKey) error {
	w.mu.Lock()
	row, ok := w.rows[key]
	if !ok {
		w.mu.Unlock()
		return fmt.Errorf("unknown translation row %s", key)
	}
	en, nl := row.En, row.Nl
	binding, ok := w.bindings[key.Model]
	w.mu.Unlock()

	if !ok {
		return fmt.Errorf("no binding for model %q", key.Model)
	}

	rec, err := binding.Get(ctx, key.ID)
	if err != nil {
		return fmt.Errorf("fetching %s %d: %w", key.Model, key.ID, err)
	}

	lt := rec.Fields.LocalizedField(key.Field)
	if lt == nil {
		return fmt.Errorf("%s has no field %q", key.Model, key.Field)
	}
	lt.En = en
	lt.Nl = nl

	if err := binding.Save(ctx, rec); err != nil {
		return fmt.Errorf("saving %s %d: %w", key.Model, key.ID, err)
	}

	w.mu.Lock()
	if row, ok := w.rows[key]; ok {
		// Only clear the flag if the row wasn't edited again while the
		// write was in flight.
		if row.En == en && row.Nl == nl {
			row.Dirty = false
		}
		row.Fr = lt.Fr
	}
	w.mu.Unlock()

	return nil
}

// SaveAll persists every dirty row sequentially. A failing row is recorded
// and iteration continues; failed rows stay dirty so a later pass can retry.
func (w *Workspace) SaveAll(ctx context.Context) SaveAllResult {
	w.mu.Lock()
	var dirty []RowKey
	for _, key := range w.order {
		if row, ok := w.rows[key]; ok && row.Dirty {
			dirty = append(dirty, key)
		}
	}
	w.mu.Unlock()

	var result SaveAllResult
	for _, key := range dirty {
		if err := w.SaveRow(ctx, key); err != nil {
			result.Failed = append(result.Failed, SaveError{RowKey: key, Message: err.Error()})
			continue
		}
		result.Saved++
	}
	return result
}

// Completion returns the translation progress metric.
func (w *Workspace) Completion() Completion {
	w.mu.Lock()
	defer w.mu.Unlock()

	c := Completion{Total: len(w.rows)}
	for _, row := range w.rows {
		if row.En != "" && row.Nl != "" {
			c.Translated++
		}
	}
	return c
}

// DirtyCount returns the number of unsaved rows.
func (w *Workspace) DirtyCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := 0
	for _, row := range w.rows {
		if row.Dirty {
			n++
		}
	}
	return n
}

// Flush cancels any pending autosave timer and persists the pending row
// immediately. Used during shutdown.
func (w *Workspace) Flush(ctx context.Context) error {
	w.mu.Lock()
	if w.timer == nil {
		w.mu.Unlock()
		return nil
	}
	w.timer.Stop()
	w.timer = nil
	key := w.pending
	w.mu.Unlock()

	return w.SaveRow(ctx, key)
}
