// Package catalog holds the compiled-in list of assistance programs.
//
// The catalog is decoded once from an embedded YAML document and never
// changes afterwards. Each program is identified by its application link.
package catalog

import (
	_ "embed"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Category is the language-independent key of a program category.
type Category string

const (
	Food      Category = "Food"
	Health    Category = "Health"
	Housing   Category = "Housing"
	Utilities Category = "Utilities"
	Education Category = "Education"
	Income    Category = "Income"
)

// Categories lists every category in display order.
var Categories = []Category{Food, Health, Housing, Utilities, Education, Income}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FallbackLanguage is the language every program must be translated into.
const FallbackLanguage = "en"

// Translation is the localized title and description of a program.
type Translation struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Program is a single assistance-program listing.
type Program struct {
	Category     Category               `yaml:"category"`
	Link         string                 `yaml:"link"`
	States       []string               `yaml:"states,omitempty"`
	Translations map[string]Translation `yaml:"translations"`
}

// ID returns the identifier used for favorites.
func (p Program) ID() string {
	return p.Link
}

// Translation returns the program text in lang, falling back to English.
func (p Program) Translation(lang string) Translation {
	if t, ok := p.Translations[lang]; ok && strings.TrimSpace(t.Title) != "" {
		return t
	}
	return p.Translations[FallbackLanguage]
}

// Unrestricted reports whether the program applies to every region.
func (p Program) Unrestricted() bool {
	return len(p.States) == 0
}

// AppliesTo reports whether the program is available in the given region code.
func (p Program) AppliesTo(region string) bool {
	if p.Unrestricted() {
		return true
	}
	region = strings.ToUpper(strings.TrimSpace(region))
	for _, s := range p.States {
		if s == region {
			return true
		}
	}
	return false
}

//go:embed programs.yaml
var programsYAML []byte

var (
	defaultOnce     sync.Once
	defaultPrograms []Program
	defaultErr      error
)

// Default returns a copy of the embedded catalog. It panics if the embedded
// document is invalid, which the package tests guard against.
func Default() []Program {
	defaultOnce.Do(func() {
		defaultPrograms, defaultErr = Parse(programsYAML)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("catalog: embedded programs: %v", defaultErr))
	}
	dup := make([]Program, len(defaultPrograms))
	copy(dup, defaultPrograms)
	return dup
}

// Parse decodes a YAML program list and validates catalog invariants.
func Parse(data []byte) ([]Program, error) {
	var doc struct {
		Programs []Program `yaml:"programs"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := Validate(doc.Programs); err != nil {
		return nil, err
	}
	return doc.Programs, nil
}

// Validate checks link uniqueness, categories, region codes and the English
// fallback translation.
func Validate(programs []Program) error {
	seen := make(map[string]struct{}, len(programs))
	for i, p := range programs {
		if strings.TrimSpace(p.Link) == "" {
			return fmt.Errorf("program %d: link is empty", i)
		}
		if u, err := url.Parse(p.Link); err != nil || !u.IsAbs() {
			return fmt.Errorf("program %d: link %q is not an absolute URL", i, p.Link)
		}
		if _, dup := seen[p.Link]; dup {
			return fmt.Errorf("program %d: duplicate link %q", i, p.Link)
		}
		seen[p.Link] = struct{}{}

		if !p.Category.Valid() {
			return fmt.Errorf("program %q: unknown category %q", p.Link, p.Category)
		}

		en, ok := p.Translations[FallbackLanguage]
		if !ok || strings.TrimSpace(en.Title) == "" || strings.TrimSpace(en.Description) == "" {
			return fmt.Errorf("program %q: missing English translation", p.Link)
		}

		for _, s := range p.States {
			if !validStateCode(s) {
				return fmt.Errorf("program %q: invalid state code %q", p.Link, s)
			}
		}
	}
	return nil
}

func validStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
