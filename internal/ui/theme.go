package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/aidfinder/internal/catalog"
	"github.com/five82/aidfinder/internal/prefs"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and status bar
	SurfaceAlt string // Filter bar
	FocusBg    string // Focused search field

	// Card colors
	SelectionBg   string // Selected card background
	SelectionText string // Selected card text

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Category badge colors
	CategoryColors map[catalog.Category]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Foreground(lipgloss.Color(t.Text)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		SurfaceAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Input: lipgloss.NewStyle().
			Background(lipgloss.Color(t.FocusBg)).
			Foreground(lipgloss.Color(t.Text)),

		Divider: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)),

		categoryColors: t.CategoryColors,
		background:     t.Background,
		muted:          t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	// Components
	Logo     lipgloss.Style
	Selected lipgloss.Style
	Input    lipgloss.Style // focused search field
	Divider  lipgloss.Style
	Modal    lipgloss.Style

	categoryColors map[catalog.Category]string
	background     string
	muted          string
}

// CategoryStyle returns the badge style for a program category.
func (s Styles) CategoryStyle(c catalog.Category) lipgloss.Style {
	color := s.categoryColors[c]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// Theme definitions

var themes = map[string]Theme{
	prefs.ThemeLight: lightTheme(),
	prefs.ThemeDark:  darkTheme(),
}

var themeOrder = []string{prefs.ThemeLight, prefs.ThemeDark}

// GetTheme returns a theme by name, falling back to the light theme.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return lightTheme()
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func lightTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: prefs.ThemeLight,

		Background: "#f8fafc", // slate-50
		Surface:    "#e2e8f0", // slate-200
		SurfaceAlt: "#f1f5f9", // slate-100
		FocusBg:    "#ffffff",

		SelectionBg:   "#bae6fd", // sky-200
		SelectionText: "#0f172a", // slate-900

		Border:      "#cbd5e1", // slate-300
		BorderFocus: "#0284c7", // sky-600

		Text:    "#0f172a", // slate-900
		Muted:   "#475569", // slate-600
		Faint:   "#64748b", // slate-500
		Accent:  "#0369a1", // sky-700
		Success: "#15803d", // green-700
		Warning: "#b45309", // amber-700
		Danger:  "#b91c1c", // red-700

		CategoryColors: map[catalog.Category]string{
			catalog.Food:      "#16a34a", // green-600
			catalog.Health:    "#dc2626", // red-600
			catalog.Housing:   "#2563eb", // blue-600
			catalog.Utilities: "#d97706", // amber-600
			catalog.Education: "#7c3aed", // violet-600
			catalog.Income:    "#0d9488", // teal-600
		},
	}
}

func darkTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: prefs.ThemeDark,

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2
		FocusBg:    "#29394f", // bg3

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderFocus: "#719cd6", // blue

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red

		CategoryColors: map[catalog.Category]string{
			catalog.Food:      "#81b29a", // green
			catalog.Health:    "#c94f6d", // red
			catalog.Housing:   "#719cd6", // blue
			catalog.Utilities: "#f4a261", // orange
			catalog.Education: "#9d79d6", // magenta
			catalog.Income:    "#63cdcf", // cyan
		},
	}
}
