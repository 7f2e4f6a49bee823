package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// surface paints text onto one background color. Lipgloss resets attributes
// after every styled run, so a bare space between two runs would show the
// terminal background; surface renders those spaces itself.
type surface struct {
	color lipgloss.Color
	fill  lipgloss.Style
}

func newSurface(color string) surface {
	c := lipgloss.Color(color)
	return surface{color: c, fill: lipgloss.NewStyle().Background(c)}
}

// Text renders text in style on the surface color, including its spaces.
func (s surface) Text(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	fg := style.Background(s.color)
	var b strings.Builder
	for i, word := range strings.Split(text, " ") {
		if i > 0 {
			b.WriteString(s.Gap(1))
		}
		if word != "" {
			b.WriteString(fg.Render(word))
		}
	}
	return b.String()
}

// Field renders a "label: value" pair such as a filter selector.
func (s surface) Field(label, value string, labelStyle, valueStyle lipgloss.Style) string {
	return s.Text(label+":", labelStyle) + s.Gap(1) + s.Text(value, valueStyle)
}

// Gap returns n painted spaces.
func (s surface) Gap(n int) string {
	if n <= 0 {
		return ""
	}
	return s.fill.Render(strings.Repeat(" ", n))
}

// Join joins rendered parts with a painted separator.
func (s surface) Join(parts []string, sep string) string {
	return strings.Join(parts, s.fill.Render(sep))
}

// Line pads or cuts rendered content to one row of exactly width cells.
func (s surface) Line(content string, width int) string {
	return s.fill.Width(width).MaxWidth(width).MaxHeight(1).Render(content)
}
