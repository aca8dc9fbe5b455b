// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models and types used throughout the application
// including the content records, users, and the locale resolution rules.
package model

// Locale identifies a content language. French is the primary locale: every
// record carries French text, the other locales are optional overrides.
type Locale string

// Supported content locales.
const (
	LocaleFR Locale = "fr"
	LocaleEN Locale = "en"
	LocaleNL Locale = "nl"
)

// PrimaryLocale is the locale every record is guaranteed to carry.
const PrimaryLocale = LocaleFR

// Locales lists all supported content locales, primary first.
var Locales = []Locale{LocaleFR, LocaleEN, LocaleNL}

// SecondaryLocales lists the optional translation locales.
var SecondaryLocales = []Locale{LocaleEN, LocaleNL}

// ParseLocale returns the locale for a code, falling back to the primary
// locale for anything unrecognized.
func ParseLocale(code string) Locale {
	switch Locale(code) {
	case LocaleEN:
		return LocaleEN
	case LocaleNL:
		return LocaleNL
	default:
		return PrimaryLocale
	}
}

// LookupLocale returns the locale for a code and whether it is supported.
// Unlike ParseLocale it does not fall back.
func LookupLocale(code string) (Locale, bool) {
	switch Locale(code) {
	case LocaleFR, LocaleEN, LocaleNL:
		return Locale(code), true
	default:
		return "", false
	}
}

// IsSecondary reports whether l is an optional translation locale.
func (l Locale) IsSecondary() bool {
	return l == LocaleEN || l == LocaleNL
}

// LocalizedText holds the per-locale variants of one text field. The French
// value is mandatory; English and Dutch are optional and empty means absent.
type LocalizedText struct {
	Fr string `json:"fr"`
	En string `json:"en,omitempty"`
	Nl string `json:"nl,omitempty"`
}

// Resolve returns the best available value for the requested locale: the
// variant when present, the French value otherwise. Total over all inputs.
func (t LocalizedText) Resolve(locale Locale) string {
	switch locale {
	case LocaleEN:
		if t.En != "" {
			return t.En
		}
	case LocaleNL:
		if t.Nl != "" {
			return t.Nl
		}
	}
	return t.Fr
}

// Get returns the raw variant for a locale without fallback.
func (t LocalizedText) Get(locale Locale) string {
	switch locale {
	case LocaleEN:
		return t.En
	case LocaleNL:
		return t.Nl
	default:
		return t.Fr
	}
}

// Set assigns the variant for a locale. Setting the primary locale overwrites
// the French value.
func (t *LocalizedText) Set(locale Locale, value string) {
	switch locale {
	case LocaleEN:
		t.En = value
	case LocaleNL:
		t.Nl = value
	default:
		t.Fr = value
	}
}

// IsComplete reports whether both secondary locales are filled in.
func (t LocalizedText) IsComplete() bool {
	return t.En != "" && t.Nl != ""
}

// Translatable is implemented by content records that carry localized fields.
// LocalizedField is an explicit lookup table per record type, so translation
// tooling never needs dynamic field-name construction.
type Translatable interface {
	// TranslatableFields returns the field names in a stable order.
	TranslatableFields() []string
	// LocalizedField returns a pointer to the named field, or nil when the
	// record has no such field.
	LocalizedField(name string) *LocalizedText
}
