// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestParseLocale(t *testing.T) {
	tests := []struct {
		code string
		want Locale
	}{
		{"fr", LocaleFR},
		{"en", LocaleEN},
		{"nl", LocaleNL},
		{"", LocaleFR},
		{"de", LocaleFR},
		{"EN", LocaleFR},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := ParseLocale(tt.code); got != tt.want {
				t.Errorf("ParseLocale(%q) = %q; want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestLocalizedTextResolve_FallbackLaw(t *testing.T) {
	// Records with only the French value populated resolve to it for every locale.
	text := LocalizedText{Fr: "Chambre double"}

	for _, locale := range Locales {
		if got := text.Resolve(locale); got != "Chambre double" {
			t.Errorf("Resolve(%q) = %q; want fallback to French value", locale, got)
		}
	}
}

func TestLocalizedTextResolve_OverrideLaw(t *testing.T) {
	text := LocalizedText{Fr: "Chambre double", En: "Double room", Nl: "Tweepersoonskamer"}

	tests := []struct {
		locale Locale
		want   string
	}{
		{LocaleFR, "Chambre double"},
		{LocaleEN, "Double room"},
		{LocaleNL, "Tweepersoonskamer"},
	}

	for _, tt := range tests {
		if got := text.Resolve(tt.locale); got != tt.want {
			t.Errorf("Resolve(%q) = %q; want %q", tt.locale, got, tt.want)
		}
	}
}

func TestLocalizedTextResolve_PartialOverride(t *testing.T) {
	text := LocalizedText{Fr: "Jardin", En: "Garden"}

	if got := text.Resolve(LocaleNL); got != "Jardin" {
		t.Errorf("Resolve(nl) = %q; want French fallback", got)
	}
	if got := text.Resolve(LocaleEN); got != "Garden" {
		t.Errorf("Resolve(en) = %q; want override", got)
	}
}

func TestLocalizedTextSetGet(t *testing.T) {
	var text LocalizedText
	text.Set(LocaleFR, "Bienvenue")
	text.Set(LocaleEN, "Welcome")

	if text.Get(LocaleFR) != "Bienvenue" || text.Get(LocaleEN) != "Welcome" {
		t.Errorf("Set/Get round trip failed: %+v", text)
	}
	if text.Get(LocaleNL) != "" {
		t.Errorf("Get(nl) = %q; want empty for absent variant", text.Get(LocaleNL))
	}
}

func TestLocalizedTextIsComplete(t *testing.T) {
	if (LocalizedText{Fr: "a", En: "b"}).IsComplete() {
		t.Error("missing Dutch variant should not be complete")
	}
	if !(LocalizedText{Fr: "a", En: "b", Nl: "c"}).IsComplete() {
		t.Error("both variants present should be complete")
	}
}

func TestTranslatableFieldRegistries(t *testing.T) {
	// Every name returned by TranslatableFields must be resolvable through
	// LocalizedField, and unknown names must return nil.
	records := []Translatable{
		&Hero{}, &AboutSection{}, &Feature{}, &Room{},
		&Testimonial{}, &GalleryImage{}, &Event{}, &PageHero{},
	}

	for _, rec := range records {
		for _, field := range rec.TranslatableFields() {
			if rec.LocalizedField(field) == nil {
				t.Errorf("%T: LocalizedField(%q) returned nil for registered field", rec, field)
			}
		}
		if rec.LocalizedField("no_such_field") != nil {
			t.Errorf("%T: LocalizedField for unknown field should be nil", rec)
		}
	}
}

func TestLocalizedFieldWritesThrough(t *testing.T) {
	room := &Room{Name: LocalizedText{Fr: "Suite"}}

	room.LocalizedField("name").Set(LocaleEN, "Suite (EN)")

	if room.Name.En != "Suite (EN)" {
		t.Errorf("write through LocalizedField did not mutate record: %+v", room.Name)
	}
}
