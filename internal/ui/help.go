package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var helpSectionKeys = []string{"help.browse", "help.filter", "help.actions", "help.general"}

// renderHelp renders the help overlay in the active language.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(m.t("help.title")))
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", 36)))
	b.WriteString("\n\n")

	groups := m.keys.FullHelp()
	for i, group := range groups {
		if i < len(helpSectionKeys) {
			b.WriteString(styles.AccentText.Bold(true).Render(m.t(helpSectionKeys[i])))
			b.WriteString("\n")
		}

		for _, binding := range group {
			h := binding.Help()
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(h.Key))
			b.WriteString(styles.Text.Render(m.t(h.Desc)))
			b.WriteString("\n")
		}

		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}

	modal := styles.Modal.
		Padding(1, 2).
		Width(48)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(m.theme.Background)),
	)
}
