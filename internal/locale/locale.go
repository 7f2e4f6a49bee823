// Package locale holds the UI string tables and category labels for every
// supported language, plus the reverse index that maps a displayed category
// label back to its canonical key.
package locale

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/five82/aidfinder/internal/catalog"
	"github.com/five82/aidfinder/internal/textnorm"
)

// Locale is the string table of a single language.
type Locale struct {
	Code       string                      `yaml:"code"`
	Name       string                      `yaml:"name"`
	All        string                      `yaml:"all"`
	Saved      string                      `yaml:"saved"`
	AllRegions string                      `yaml:"all_regions"`
	Categories map[catalog.Category]string `yaml:"categories"`
	Strings    map[string]string           `yaml:"strings"`
}

// Mode is the kind of category selection.
type Mode int

const (
	ModeAll Mode = iota
	ModeSaved
	ModeCategory
)

// Choice is a resolved category selector value.
type Choice struct {
	Mode     Mode
	Category catalog.Category
}

var (
	ChoiceAll   = Choice{Mode: ModeAll}
	ChoiceSaved = Choice{Mode: ModeSaved}
)

// CategoryChoice returns the choice selecting a concrete category.
func CategoryChoice(c catalog.Category) Choice {
	return Choice{Mode: ModeCategory, Category: c}
}

// Table is the immutable set of locales. The first locale is the default.
type Table struct {
	locales []Locale
	byCode  map[string]int
	choices map[string]Choice // normalized label -> choice
	regions map[string]struct{}
}

// NewTable validates the locales and builds the label index once.
func NewTable(locales []Locale) (*Table, error) {
	if len(locales) == 0 {
		return nil, fmt.Errorf("no locales defined")
	}

	t := &Table{
		locales: locales,
		byCode:  make(map[string]int, len(locales)),
		choices: make(map[string]Choice),
		regions: map[string]struct{}{textnorm.Normalize(catalog.AllRegions): {}},
	}

	for _, c := range catalog.Categories {
		if err := t.addLabel(string(c), CategoryChoice(c)); err != nil {
			return nil, err
		}
	}

	for i, l := range locales {
		code := strings.TrimSpace(l.Code)
		if code == "" {
			return nil, fmt.Errorf("locale %d: code is empty", i)
		}
		if _, dup := t.byCode[code]; dup {
			return nil, fmt.Errorf("locale %s: duplicate code", code)
		}
		t.byCode[code] = i

		if err := t.addLabel(l.All, ChoiceAll); err != nil {
			return nil, fmt.Errorf("locale %s: %w", code, err)
		}
		if err := t.addLabel(l.Saved, ChoiceSaved); err != nil {
			return nil, fmt.Errorf("locale %s: %w", code, err)
		}
		for _, c := range catalog.Categories {
			label, ok := l.Categories[c]
			if !ok || strings.TrimSpace(label) == "" {
				return nil, fmt.Errorf("locale %s: missing label for category %s", code, c)
			}
			if err := t.addLabel(label, CategoryChoice(c)); err != nil {
				return nil, fmt.Errorf("locale %s: %w", code, err)
			}
		}
		if r := textnorm.Normalize(strings.TrimSpace(l.AllRegions)); r != "" {
			t.regions[r] = struct{}{}
		}
	}
	return t, nil
}

func (t *Table) addLabel(label string, choice Choice) error {
	key := textnorm.Normalize(strings.TrimSpace(label))
	if key == "" {
		return fmt.Errorf("empty selector label")
	}
	if existing, ok := t.choices[key]; ok && existing != choice {
		return fmt.Errorf("label %q is ambiguous", label)
	}
	t.choices[key] = choice
	return nil
}

//go:embed locales.yaml
var localesYAML []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the embedded locale table. It panics if the embedded
// document is invalid, which the package tests guard against.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse(localesYAML)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("locale: embedded locales: %v", defaultErr))
	}
	return defaultTable
}

// Parse decodes a YAML locale document into a Table.
func Parse(data []byte) (*Table, error) {
	var doc struct {
		Languages []Locale `yaml:"languages"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse locales: %w", err)
	}
	return NewTable(doc.Languages)
}

// Supported returns the language codes in table order.
func (t *Table) Supported() []string {
	out := make([]string, len(t.locales))
	for i, l := range t.locales {
		out[i] = l.Code
	}
	return out
}

// DefaultLanguage is the first supported code.
func (t *Table) DefaultLanguage() string {
	return t.locales[0].Code
}

// Has reports whether code is a supported language.
func (t *Table) Has(code string) bool {
	_, ok := t.byCode[code]
	return ok
}

// Locale returns the locale for code, falling back to the default language.
func (t *Table) Locale(code string) Locale {
	if i, ok := t.byCode[code]; ok {
		return t.locales[i]
	}
	return t.locales[0]
}

// Next returns the language after code in table order, wrapping around.
func (t *Table) Next(code string) string {
	i, ok := t.byCode[code]
	if !ok {
		return t.locales[0].Code
	}
	return t.locales[(i+1)%len(t.locales)].Code
}

// T returns the string for key in lang, falling back to the default language
// and finally to the key itself.
func (t *Table) T(lang, key string) string {
	if v, ok := t.Locale(lang).Strings[key]; ok {
		return v
	}
	if v, ok := t.locales[0].Strings[key]; ok {
		return v
	}
	return key
}

// Tf formats the string for key with args.
func (t *Table) Tf(lang, key string, args ...any) string {
	return fmt.Sprintf(t.T(lang, key), args...)
}

// CategoryLabel returns the translated label of c.
func (t *Table) CategoryLabel(lang string, c catalog.Category) string {
	if label := t.Locale(lang).Categories[c]; label != "" {
		return label
	}
	return string(c)
}

// CategoryLabels returns the label of c in every supported language.
func (t *Table) CategoryLabels(c catalog.Category) []string {
	out := make([]string, 0, len(t.locales))
	for _, l := range t.locales {
		out = append(out, l.Categories[c])
	}
	return out
}

// Choices returns the selector options in display order.
func (t *Table) Choices() []Choice {
	out := []Choice{ChoiceAll, ChoiceSaved}
	for _, c := range catalog.Categories {
		out = append(out, CategoryChoice(c))
	}
	return out
}

// ChoiceLabel returns the label presented for choice in lang.
func (t *Table) ChoiceLabel(lang string, choice Choice) string {
	l := t.Locale(lang)
	switch choice.Mode {
	case ModeSaved:
		return l.Saved
	case ModeCategory:
		return t.CategoryLabel(lang, choice.Category)
	default:
		return l.All
	}
}

// ResolveCategory maps a displayed selector label in any supported language
// to its choice. Blank labels select everything. Unknown labels return
// ChoiceAll and false so callers can treat the filter as inactive.
func (t *Table) ResolveCategory(label string) (Choice, bool) {
	key := textnorm.Normalize(strings.TrimSpace(label))
	if key == "" {
		return ChoiceAll, true
	}
	choice, ok := t.choices[key]
	if !ok {
		return ChoiceAll, false
	}
	return choice, true
}

// AllRegionsLabel returns the "all regions" label in lang.
func (t *Table) AllRegionsLabel(lang string) string {
	if l := t.Locale(lang).AllRegions; l != "" {
		return l
	}
	return catalog.AllRegions
}

// IsAllRegions reports whether region is blank or an "all regions" label in
// any supported language.
func (t *Table) IsAllRegions(region string) bool {
	key := textnorm.Normalize(strings.TrimSpace(region))
	if key == "" {
		return true
	}
	_, ok := t.regions[key]
	return ok
}
