package locale

import (
	"strings"
	"testing"

	"github.com/five82/aidfinder/internal/catalog"
)

func TestDefault_SupportedLanguages(t *testing.T) {
	tbl := Default()
	got := tbl.Supported()
	want := []string{"en", "es", "fr"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Supported() = %v, want %v", got, want)
	}
	if tbl.DefaultLanguage() != "en" {
		t.Fatalf("DefaultLanguage() = %q, want en", tbl.DefaultLanguage())
	}
}

func TestDefault_EveryLocaleHasEveryString(t *testing.T) {
	tbl := Default()
	en := tbl.Locale("en")
	for _, code := range tbl.Supported() {
		l := tbl.Locale(code)
		for key := range en.Strings {
			if _, ok := l.Strings[key]; !ok {
				t.Errorf("locale %s missing string %q", code, key)
			}
		}
	}
}

func TestResolveCategory(t *testing.T) {
	tbl := Default()

	tests := []struct {
		label  string
		want   Choice
		wantOK bool
	}{
		{"", ChoiceAll, true},
		{"All", ChoiceAll, true},
		{"Tous", ChoiceAll, true},
		{"Saved", ChoiceSaved, true},
		{"Guardados", ChoiceSaved, true},
		{"favoris", ChoiceSaved, true},
		{"Health", CategoryChoice(catalog.Health), true},
		{"Santé", CategoryChoice(catalog.Health), true},
		{"sante", CategoryChoice(catalog.Health), true},
		{"Salud", CategoryChoice(catalog.Health), true},
		{"Éducation", CategoryChoice(catalog.Education), true},
		{"  Logement ", CategoryChoice(catalog.Housing), true},
		{"Pets", ChoiceAll, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := tbl.ResolveCategory(tt.label)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("ResolveCategory(%q) = (%+v, %v), want (%+v, %v)", tt.label, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestChoiceLabel_RoundTrips(t *testing.T) {
	tbl := Default()
	for _, lang := range tbl.Supported() {
		for _, choice := range tbl.Choices() {
			label := tbl.ChoiceLabel(lang, choice)
			got, ok := tbl.ResolveCategory(label)
			if !ok || got != choice {
				t.Fatalf("lang %s: ResolveCategory(ChoiceLabel(%+v)=%q) = (%+v, %v)", lang, choice, label, got, ok)
			}
		}
	}
}

func TestIsAllRegions(t *testing.T) {
	tbl := Default()
	for _, r := range []string{"", "All States", "all states", "Todos los estados", "Tous les États"} {
		if !tbl.IsAllRegions(r) {
			t.Errorf("IsAllRegions(%q) = false, want true", r)
		}
	}
	if tbl.IsAllRegions("CA") {
		t.Error("IsAllRegions(CA) = true, want false")
	}
}

func TestT_Fallbacks(t *testing.T) {
	tbl := Default()
	if got := tbl.T("fr", "filter.state"); got != "État" {
		t.Fatalf("T(fr, filter.state) = %q, want État", got)
	}
	if got := tbl.T("de", "filter.state"); got != "State" {
		t.Fatalf("T(de, filter.state) = %q, want State", got)
	}
	if got := tbl.T("en", "missing.key"); got != "missing.key" {
		t.Fatalf("T(en, missing.key) = %q, want key", got)
	}
	if got := tbl.Tf("es", "list.count", 2, 5); got != "2 de 5 programas" {
		t.Fatalf("Tf = %q", got)
	}
}

func TestNext_Cycles(t *testing.T) {
	tbl := Default()
	if got := tbl.Next("en"); got != "es" {
		t.Fatalf("Next(en) = %q, want es", got)
	}
	if got := tbl.Next("fr"); got != "en" {
		t.Fatalf("Next(fr) = %q, want en", got)
	}
	if got := tbl.Next("xx"); got != "en" {
		t.Fatalf("Next(xx) = %q, want en", got)
	}
}

func TestNewTable_RejectsAmbiguousLabels(t *testing.T) {
	cats := map[catalog.Category]string{}
	for _, c := range catalog.Categories {
		cats[c] = string(c)
	}
	_, err := NewTable([]Locale{{Code: "en", All: "Food", Saved: "Saved", Categories: cats}})
	if err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Fatalf("NewTable error = %v, want ambiguous label", err)
	}

	if _, err := NewTable(nil); err == nil {
		t.Fatal("NewTable(nil) should fail")
	}
}
