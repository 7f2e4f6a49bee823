package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/aidfinder/internal/catalog"
	"github.com/five82/aidfinder/internal/prefs"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != 2 {
		t.Fatalf("ThemeNames() returned %d names, want 2", len(names))
	}
	if names[0] != prefs.ThemeLight || names[1] != prefs.ThemeDark {
		t.Fatalf("ThemeNames() = %v, want [light dark]", names)
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != prefs.ThemeLight {
		t.Fatalf("GetTheme(Unknown).Name = %q, want light (fallback)", got)
	}
}

func TestThemesColorEveryCategory(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, c := range catalog.Categories {
			if th.CategoryColors[c] == "" {
				t.Fatalf("theme %s has no color for %s", name, c)
			}
		}
	}
}

func TestCategoryStyleFallsBackToMuted(t *testing.T) {
	th := GetTheme(prefs.ThemeDark)
	styles := th.Styles()

	got := styles.CategoryStyle(catalog.Category("Other")).GetBackground()
	want := styles.CategoryStyle(catalog.Food).GetBackground()
	if got == want {
		t.Fatalf("unknown category used the Food color %v", got)
	}
}

func TestThemesDefineFocusAndBorderColors(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		styles := th.Styles()
		if styles.Input.GetBackground() != lipgloss.Color(th.FocusBg) {
			t.Fatalf("theme %s: Input background = %v, want %s", name, styles.Input.GetBackground(), th.FocusBg)
		}
		if styles.Divider.GetForeground() != lipgloss.Color(th.Border) {
			t.Fatalf("theme %s: Divider color = %v, want %s", name, styles.Divider.GetForeground(), th.Border)
		}
		if styles.Modal.GetBorderTopForeground() != lipgloss.Color(th.BorderFocus) {
			t.Fatalf("theme %s: Modal border = %v, want %s", name, styles.Modal.GetBorderTopForeground(), th.BorderFocus)
		}
		if styles.Selected.GetBackground() != lipgloss.Color(th.SelectionBg) {
			t.Fatalf("theme %s: Selected background = %v, want %s", name, styles.Selected.GetBackground(), th.SelectionBg)
		}
	}
}
