// Package search derives the visible program list from the current filters.
//
// Every program gets a search-text blob: its titles and descriptions in all
// supported languages, its category key and translated category labels, and
// the host and path of its link, normalized with textnorm. Queries match
// when every whitespace-separated term is a substring of the blob.
//
// The pipeline runs three narrowing steps in a fixed order (category or
// saved, region, query) and never reorders the catalog.
package search

import (
	"net/url"
	"strings"

	"github.com/five82/aidfinder/internal/catalog"
	"github.com/five82/aidfinder/internal/locale"
	"github.com/five82/aidfinder/internal/textnorm"
)

// Filter is the per-session filter state. Category holds the selector label
// as displayed in the active language.
type Filter struct {
	Query    string
	Category string
	Region   string
}

// DefaultFilter returns the filter that shows the whole catalog.
func DefaultFilter() Filter {
	return Filter{Category: "All", Region: catalog.AllRegions}
}

// Favorites is the read side of the favorites store.
type Favorites interface {
	IsFavorite(id string) bool
}

// BuildSearchText returns the normalized search blob of p.
func BuildSearchText(p catalog.Program, table *locale.Table) string {
	var parts []string
	for _, lang := range table.Supported() {
		if tr, ok := p.Translations[lang]; ok {
			parts = append(parts, tr.Title, tr.Description)
		}
	}
	parts = append(parts, string(p.Category))
	parts = append(parts, table.CategoryLabels(p.Category)...)

	if u, err := url.Parse(p.Link); err == nil {
		if host := u.Hostname(); host != "" {
			parts = append(parts, host)
		}
		if u.Path != "" {
			parts = append(parts, u.Path)
		}
	}
	return textnorm.Normalize(strings.Join(parts, " "))
}

// Index caches search blobs for an immutable catalog.
type Index struct {
	programs []catalog.Program
	blobs    []string
	table    *locale.Table
}

// NewIndex builds the search blob of every program once.
func NewIndex(programs []catalog.Program, table *locale.Table) *Index {
	blobs := make([]string, len(programs))
	for i, p := range programs {
		blobs[i] = BuildSearchText(p, table)
	}
	return &Index{programs: programs, blobs: blobs, table: table}
}

// Len returns the number of indexed programs.
func (ix *Index) Len() int {
	return len(ix.programs)
}

// Programs returns the indexed catalog in order.
func (ix *Index) Programs() []catalog.Program {
	return ix.programs
}

// Visible returns the programs that pass every filter step, in catalog order.
func (ix *Index) Visible(f Filter, favs Favorites) []catalog.Program {
	choice, _ := ix.table.ResolveCategory(f.Category)
	allRegions := ix.table.IsAllRegions(f.Region)
	region := strings.ToUpper(strings.TrimSpace(f.Region))
	terms := textnorm.Terms(f.Query)

	out := make([]catalog.Program, 0, len(ix.programs))
	for i, p := range ix.programs {
		switch choice.Mode {
		case locale.ModeSaved:
			if favs == nil || !favs.IsFavorite(p.ID()) {
				continue
			}
		case locale.ModeCategory:
			if p.Category != choice.Category {
				continue
			}
		}

		if !allRegions && !p.AppliesTo(region) {
			continue
		}

		if !matchesAll(ix.blobs[i], terms) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// VisiblePrograms filters programs without a prebuilt index.
func VisiblePrograms(programs []catalog.Program, table *locale.Table, f Filter, favs Favorites) []catalog.Program {
	return NewIndex(programs, table).Visible(f, favs)
}

func matchesAll(blob string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(blob, term) {
			return false
		}
	}
	return true
}
