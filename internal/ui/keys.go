package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	ToggleTheme key.Binding
	CycleLang   key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Filters
	Search       key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	NextState    key.Binding
	PrevState    key.Binding
	Reset        key.Binding

	// Program actions
	Favorite      key.Binding
	Open          key.Binding
	ShareMail     key.Binding
	ShareWhatsApp key.Binding
	CopyLink      key.Binding

	// Search input
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "help.quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help.help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "help.theme"),
		),
		CycleLang: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "help.language"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "help.move"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/k", "help.move"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g/G", "help.top_bottom"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "help.top_bottom"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "help.search"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c/C", "help.category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "help.category"),
		),
		NextState: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s/S", "help.state"),
		),
		PrevState: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "help.state"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "help.reset"),
		),

		Favorite: key.NewBinding(
			key.WithKeys("f", " "),
			key.WithHelp("f/Space", "help.favorite"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter/o", "help.open"),
		),
		ShareMail: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "help.mail"),
		),
		ShareWhatsApp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "help.whatsapp"),
		),
		CopyLink: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "help.copy"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
		),
	}
}

// ShortHelp returns key bindings for the status line hint.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings grouped like the help overlay sections:
// browse, filter, actions and general. The help text of each binding is a
// locale string key.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Top},
		{k.Search, k.NextCategory, k.NextState, k.Reset},
		{k.Favorite, k.Open, k.ShareMail, k.ShareWhatsApp, k.CopyLink},
		{k.CycleLang, k.ToggleTheme, k.Help, k.Quit},
	}
}
