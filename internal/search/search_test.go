package search

import (
	"reflect"
	"strings"
	"testing"

	"github.com/five82/aidfinder/internal/catalog"
	"github.com/five82/aidfinder/internal/locale"
)

type favSet map[string]bool

func (f favSet) IsFavorite(id string) bool { return f[id] }

func tr(title, desc string) catalog.Translation {
	return catalog.Translation{Title: title, Description: desc}
}

func testPrograms() []catalog.Program {
	return []catalog.Program{
		{
			Category:     catalog.Food,
			Link:         "https://x/snap",
			Translations: map[string]catalog.Translation{"en": tr("SNAP (Food Stamps)", "Monthly funds for groceries.")},
		},
		{
			Category: catalog.Health,
			Link:     "https://health.example.org/clinic",
			States:   []string{"CA"},
			Translations: map[string]catalog.Translation{
				"en": tr("Community Clinic", "Low-cost care."),
				"fr": tr("Clinique Santé", "Soins à faible coût."),
			},
		},
		{
			Category:     catalog.Housing,
			Link:         "https://housing.example.org/tx",
			States:       []string{"TX"},
			Translations: map[string]catalog.Translation{"en": tr("Texas Rent Relief", "Monthly rent help.")},
		},
		{
			Category:     catalog.Income,
			Link:         "https://income.example.org/credit",
			States:       []string{"CA", "TX"},
			Translations: map[string]catalog.Translation{"en": tr("Work Credit", "Tax credit for workers.")},
		},
	}
}

func links(programs []catalog.Program) []string {
	out := make([]string, len(programs))
	for i, p := range programs {
		out[i] = p.Link
	}
	return out
}

func TestVisible_DefaultFilterReturnsWholeCatalogInOrder(t *testing.T) {
	programs := testPrograms()
	ix := NewIndex(programs, locale.Default())

	got := ix.Visible(DefaultFilter(), nil)
	if !reflect.DeepEqual(links(got), links(programs)) {
		t.Fatalf("Visible(default) = %v, want %v", links(got), links(programs))
	}

	// Blank query with whitespace and the translated "All" labels behave the same.
	for _, f := range []Filter{
		{Query: "   ", Category: "All", Region: "All States"},
		{Category: "Tous", Region: "Tous les États"},
		{Category: "Todos", Region: ""},
	} {
		got := ix.Visible(f, nil)
		if len(got) != len(programs) {
			t.Fatalf("Visible(%+v) returned %d programs, want %d", f, len(got), len(programs))
		}
	}
}

func TestVisible_SnapScenario(t *testing.T) {
	ix := NewIndex(testPrograms(), locale.Default())

	got := ix.Visible(Filter{Query: "snap", Category: "All", Region: "All States"}, nil)
	if len(got) != 1 || got[0].Link != "https://x/snap" {
		t.Fatalf("query snap = %v, want [https://x/snap]", links(got))
	}

	got = ix.Visible(Filter{Query: "snap", Category: "Health", Region: "All States"}, nil)
	if len(got) != 0 {
		t.Fatalf("query snap in Health = %v, want empty", links(got))
	}
}

func TestVisible_AccentInsensitiveQuery(t *testing.T) {
	ix := NewIndex(testPrograms(), locale.Default())

	got := ix.Visible(Filter{Query: "clinique sante", Category: "All", Region: catalog.AllRegions}, nil)
	if len(got) != 1 || got[0].Link != "https://health.example.org/clinic" {
		t.Fatalf("query 'clinique sante' = %v", links(got))
	}

	got = ix.Visible(Filter{Query: "SANTÉ", Category: "All", Region: catalog.AllRegions}, nil)
	if len(got) == 0 {
		t.Fatal("query SANTÉ should match the translated Health label")
	}
}

func TestVisible_ConjunctionLaw(t *testing.T) {
	ix := NewIndex(testPrograms(), locale.Default())
	base := Filter{Category: "All", Region: catalog.AllRegions}

	pairs := [][2]string{
		{"monthly", "rent"},
		{"monthly", "snap"},
		{"credit", "example"},
		{"x", "care"},
		{"housing", "texas"},
	}
	for _, pair := range pairs {
		f1, f2, both := base, base, base
		f1.Query = pair[0]
		f2.Query = pair[1]
		both.Query = pair[0] + " " + pair[1]

		second := map[string]bool{}
		for _, p := range ix.Visible(f2, nil) {
			second[p.Link] = true
		}
		var want []string
		for _, p := range ix.Visible(f1, nil) {
			if second[p.Link] {
				want = append(want, p.Link)
			}
		}

		got := links(ix.Visible(both, nil))
		if len(got) == 0 {
			got = nil
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("query %q = %v, want intersection %v", both.Query, got, want)
		}

		reversed := base
		reversed.Query = pair[1] + " " + pair[0] + " " + pair[1]
		if r := links(ix.Visible(reversed, nil)); len(r) != len(want) {
			t.Fatalf("term order or duplicates changed result: %v vs %v", r, want)
		}
	}
}

func TestVisible_SavedWithNoFavoritesIsEmpty(t *testing.T) {
	ix := NewIndex(testPrograms(), locale.Default())

	for _, f := range []Filter{
		{Category: "Saved", Region: catalog.AllRegions},
		{Query: "snap", Category: "Saved", Region: "CA"},
		{Category: "Favoris", Region: ""},
	} {
		if got := ix.Visible(f, favSet{}); len(got) != 0 {
			t.Fatalf("Visible(%+v) = %v, want empty", f, links(got))
		}
		if got := ix.Visible(f, nil); len(got) != 0 {
			t.Fatalf("Visible(%+v, nil) = %v, want empty", f, links(got))
		}
	}
}

func TestVisible_SavedKeepsFavoritesInCatalogOrder(t *testing.T) {
	ix := NewIndex(testPrograms(), locale.Default())
	favs := favSet{"https://income.example.org/credit": true, "https://x/snap": true}

	got := links(ix.Visible(Filter{Category: "Guardados", Region: catalog.AllRegions}, favs))
	want := []string{"https://x/snap", "https://income.example.org/credit"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("saved = %v, want %v", got, want)
	}
}

func TestVisible_RegionFilter(t *testing.T) {
	ix := NewIndex(testPrograms(), locale.Default())

	got := links(ix.Visible(Filter{Category: "All", Region: "CA"}, nil))
	want := []string{"https://x/snap", "https://health.example.org/clinic", "https://income.example.org/credit"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("region CA = %v, want %v", got, want)
	}
	for _, l := range got {
		if l == "https://housing.example.org/tx" {
			t.Fatal("TX-only program should be excluded for CA")
		}
	}

	lower := links(ix.Visible(Filter{Category: "All", Region: " ca "}, nil))
	if !reflect.DeepEqual(lower, want) {
		t.Fatalf("region ' ca ' = %v, want %v", lower, want)
	}
}

func TestVisible_TranslatedCategoryLabels(t *testing.T) {
	ix := NewIndex(testPrograms(), locale.Default())

	en := links(ix.Visible(Filter{Category: "Housing"}, nil))
	fr := links(ix.Visible(Filter{Category: "Logement"}, nil))
	es := links(ix.Visible(Filter{Category: "Vivienda"}, nil))
	if !reflect.DeepEqual(en, fr) || !reflect.DeepEqual(en, es) {
		t.Fatalf("category labels disagree: en=%v fr=%v es=%v", en, fr, es)
	}
	if len(en) != 1 || en[0] != "https://housing.example.org/tx" {
		t.Fatalf("Housing = %v", en)
	}
}

func TestVisible_UnresolvableCategoryPassesThrough(t *testing.T) {
	programs := testPrograms()
	ix := NewIndex(programs, locale.Default())

	got := ix.Visible(Filter{Category: "Gardening", Region: catalog.AllRegions}, nil)
	if len(got) != len(programs) {
		t.Fatalf("unknown category returned %d programs, want %d", len(got), len(programs))
	}
}

func TestBuildSearchText(t *testing.T) {
	tbl := locale.Default()
	p := testPrograms()[1]

	blob := BuildSearchText(p, tbl)
	for _, want := range []string{
		"community clinic", "low-cost care", "clinique sante", "soins a faible cout",
		"health", "salud", "sante", "health.example.org", "/clinic",
	} {
		if !strings.Contains(blob, want) {
			t.Errorf("blob %q missing %q", blob, want)
		}
	}
}

func TestBuildSearchText_MalformedLinkOmitsURLTokens(t *testing.T) {
	p := catalog.Program{
		Category:     catalog.Food,
		Link:         "http://[::1/%zz",
		Translations: map[string]catalog.Translation{"en": tr("Pantry", "Free groceries.")},
	}
	blob := BuildSearchText(p, locale.Default())
	if !strings.Contains(blob, "pantry") || !strings.Contains(blob, "food") {
		t.Fatalf("blob %q missing text tokens", blob)
	}
	if strings.Contains(blob, "::1") {
		t.Fatalf("blob %q should not contain URL tokens", blob)
	}

	got := VisiblePrograms([]catalog.Program{p}, locale.Default(), Filter{Query: "pantry"}, nil)
	if len(got) != 1 {
		t.Fatalf("VisiblePrograms = %d programs, want 1", len(got))
	}
}

func TestVisible_EmbeddedCatalogFrenchQuery(t *testing.T) {
	ix := NewIndex(catalog.Default(), locale.Default())
	got := ix.Visible(Filter{Query: "logement", Category: "All", Region: catalog.AllRegions}, nil)
	if len(got) == 0 {
		t.Fatal("query logement should match housing programs")
	}
	for _, p := range got {
		if p.Category != catalog.Housing {
			t.Fatalf("query logement matched %s program %s", p.Category, p.Link)
		}
	}
}
