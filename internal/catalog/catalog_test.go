package catalog

import (
	"strings"
	"testing"
)

func TestDefault_IsValidAndCopied(t *testing.T) {
	programs := Default()
	if len(programs) == 0 {
		t.Fatal("Default() returned no programs")
	}
	if err := Validate(programs); err != nil {
		t.Fatalf("embedded catalog invalid: %v", err)
	}

	programs[0].Link = "mutated"
	again := Default()
	if again[0].Link == "mutated" {
		t.Fatal("Default() should return an independent slice")
	}
}

func TestDefault_CoversEveryCategory(t *testing.T) {
	seen := map[Category]bool{}
	for _, p := range Default() {
		seen[p.Category] = true
	}
	for _, c := range Categories {
		if !seen[c] {
			t.Fatalf("no program in category %s", c)
		}
	}
}

func TestParse_RejectsBrokenInvariants(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "duplicate link",
			doc: `programs:
  - {category: Food, link: "https://x/a", translations: {en: {title: A, description: a}}}
  - {category: Food, link: "https://x/a", translations: {en: {title: B, description: b}}}
`,
			wantErr: "duplicate link",
		},
		{
			name: "unknown category",
			doc: `programs:
  - {category: Pets, link: "https://x/a", translations: {en: {title: A, description: a}}}
`,
			wantErr: "unknown category",
		},
		{
			name: "missing english",
			doc: `programs:
  - {category: Food, link: "https://x/a", translations: {fr: {title: A, description: a}}}
`,
			wantErr: "missing English",
		},
		{
			name: "relative link",
			doc: `programs:
  - {category: Food, link: "/snap", translations: {en: {title: A, description: a}}}
`,
			wantErr: "not an absolute URL",
		},
		{
			name: "lowercase state",
			doc: `programs:
  - {category: Food, link: "https://x/a", states: [ca], translations: {en: {title: A, description: a}}}
`,
			wantErr: "invalid state code",
		},
		{
			name:    "bad yaml",
			doc:     "programs: [",
			wantErr: "parse catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Parse error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestProgram_TranslationFallsBackToEnglish(t *testing.T) {
	p := Program{
		Category: Food,
		Link:     "https://x/snap",
		Translations: map[string]Translation{
			"en": {Title: "SNAP", Description: "Monthly funds"},
			"fr": {Title: "", Description: ""},
		},
	}
	if got := p.Translation("fr").Title; got != "SNAP" {
		t.Fatalf("Translation(fr).Title = %q, want SNAP", got)
	}
	if got := p.Translation("de").Title; got != "SNAP" {
		t.Fatalf("Translation(de).Title = %q, want SNAP", got)
	}
}

func TestProgram_AppliesTo(t *testing.T) {
	all := Program{}
	if !all.AppliesTo("CA") {
		t.Fatal("unrestricted program should apply to CA")
	}

	tx := Program{States: []string{"TX"}}
	if tx.AppliesTo("CA") {
		t.Fatal("TX program should not apply to CA")
	}
	if !tx.AppliesTo(" tx ") {
		t.Fatal("TX program should apply to normalized tx")
	}
}

func TestStateCodes_AreValid(t *testing.T) {
	if len(StateCodes) != 51 {
		t.Fatalf("len(StateCodes) = %d, want 51", len(StateCodes))
	}
	for _, code := range StateCodes {
		if !validStateCode(code) {
			t.Fatalf("invalid state code %q", code)
		}
	}
}
