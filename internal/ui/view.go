package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/aidfinder/internal/catalog"
)

// renderMain renders the header, filter bar, card list and status line.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n")
	b.WriteString(m.renderCards())
	b.WriteString(m.renderStatus())

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Width(m.width).
		Render(b.String())
}

// renderHeader renders the title line with language, theme and counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := newSurface(m.theme.Surface)

	left := bg.Text(m.t("app.title"), styles.Logo)
	if m.width >= LayoutWideWidth {
		left += bg.Gap(2) + bg.Text(m.t("app.tagline"), styles.MutedText)
	}

	count := m.table.Tf(m.lang, "list.count", len(m.visible), m.index.Len())
	right := bg.Join([]string{
		bg.Text(m.table.Locale(m.lang).Name, styles.AccentText),
		bg.Text(m.theme.Name, styles.MutedText),
		bg.Text(count, styles.Text),
	}, " · ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	line := bg.Gap(1) + left + bg.Gap(gap) + right + bg.Gap(1)
	return bg.Line(line, m.width)
}

// renderFilterBar renders the search field and the category and state
// selectors.
func (m Model) renderFilterBar() string {
	styles := m.theme.Styles()
	bg := newSurface(m.theme.SurfaceAlt)

	var searchPart string
	if m.searching {
		searchPart = m.searchInput().View()
	} else {
		query := m.filter.Query
		if query == "" {
			searchPart = bg.Text(m.t("search.label")+" /", styles.FaintText)
		} else {
			searchPart = bg.Field(m.t("search.label"), query, styles.MutedText, styles.Text)
		}
	}

	chip := styles.AccentText.Bold(true)
	category := bg.Field(m.t("filter.category"), m.filter.Category, styles.MutedText, chip)
	region := bg.Field(m.t("filter.state"), m.filter.Region, styles.MutedText, chip)

	line := bg.Gap(1) + bg.Join([]string{searchPart, category, region}, "   ")
	return bg.Line(line, m.width)
}

// searchInput returns the search field styled for the focused state.
func (m Model) searchInput() textinput.Model {
	styles := m.theme.Styles()
	in := m.input
	in.PromptStyle = styles.Input.Foreground(lipgloss.Color(m.theme.Accent))
	in.TextStyle = styles.Input
	in.PlaceholderStyle = styles.Input.Foreground(lipgloss.Color(m.theme.Faint))
	in.Cursor.Style = styles.Input
	return in
}

// renderCards renders the visible window of program cards. The block always
// spans the space between the filter bar and the status line.
func (m Model) renderCards() string {
	styles := m.theme.Styles()
	bodyHeight := max(0, m.height-ChromeHeight)

	var lines []string
	if len(m.visible) == 0 {
		lines = append(lines, "", "  "+styles.MutedText.Render(m.t("list.empty")))
	} else {
		end := min(len(m.visible), m.offset+m.visibleCards())
		for i := m.offset; i < end; i++ {
			lines = append(lines, m.renderCard(m.visible[i], i == m.selected)...)
		}
	}

	for len(lines) < bodyHeight {
		lines = append(lines, "")
	}
	if bodyHeight > 0 && len(lines) > bodyHeight {
		lines = lines[:bodyHeight]
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderCard renders one program as a title line, a description line and a
// spacer.
func (m Model) renderCard(p catalog.Program, selected bool) []string {
	styles := m.theme.Styles()
	bgColor := m.theme.Background
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := newSurface(bgColor)
	tr := p.Translation(m.lang)

	marker := "  "
	if selected {
		marker = "▌ "
	}

	glyph, starStyle := "☆", styles.FaintText
	if m.favs.IsFavorite(p.ID()) {
		glyph, starStyle = "★", styles.WarningText
	}
	if _, ok := m.flashing[p.ID()]; ok {
		starStyle = styles.SuccessText.Reverse(true)
	}
	star := bg.Text(glyph, starStyle)

	titleStyle := styles.Text.Bold(true)
	if selected {
		titleStyle = styles.Selected.Bold(true)
	}

	badge := ""
	if m.width >= LayoutCompactWidth {
		badge = bg.Gap(1) + styles.CategoryStyle(p.Category).Render(m.table.CategoryLabel(m.lang, p.Category))
	}
	states := bg.Text(statesLabel(p.States, m.t("card.all_states")), styles.MutedText)

	fixed := lipgloss.Width(marker) + 2 + lipgloss.Width(badge) + lipgloss.Width(states) + 3
	title := bg.Text(truncate(tr.Title, max(8, m.width-fixed)), titleStyle)

	first := bg.Text(marker, styles.AccentText) + star + bg.Gap(1) + title + badge + bg.Gap(2) + states
	second := bg.Gap(4) + bg.Text(truncate(tr.Description, max(8, m.width-6)), styles.MutedText)

	return []string{
		bg.Line(first, m.width),
		bg.Line(second, m.width),
		"",
	}
}

// renderStatus renders the status line, falling back to the key hints.
func (m Model) renderStatus() string {
	styles := m.theme.Styles()
	bg := newSurface(m.theme.Surface)

	var text string
	switch {
	case m.status == "":
		hints := help.New()
		hints.ShortSeparator = "  "
		hints.Styles.ShortKey = styles.AccentText.Background(lipgloss.Color(m.theme.Surface))
		hints.Styles.ShortDesc = styles.FaintText.Background(lipgloss.Color(m.theme.Surface))
		hints.Styles.ShortSeparator = styles.FaintText.Background(lipgloss.Color(m.theme.Surface))
		text = hints.ShortHelpView(m.localized(m.keys.ShortHelp()))
	case m.statusErr:
		text = bg.Text(m.status, styles.DangerText)
	default:
		text = bg.Text(m.status, styles.SuccessText)
	}
	return bg.Line(bg.Gap(1)+text, m.width)
}

// localized returns copies of bindings whose help text is translated into
// the active language.
func (m Model) localized(bindings []key.Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		out = append(out, key.NewBinding(
			key.WithKeys(b.Keys()...),
			key.WithHelp(h.Key, m.t(h.Desc)),
		))
	}
	return out
}
