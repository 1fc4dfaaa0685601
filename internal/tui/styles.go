package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pixelary/internal/config"
)

// palette maps editor color indexes to terminal colors. Index 0 is paper.
var palette = []lipgloss.Color{
	"#FFFFFF",
	"#000000",
	"#FF4500",
	"#FFB000",
	"#2EB82E",
	"#0079D3",
	"#8B3FD9",
	"#7A4B2A",
}

func paletteColor(i int) lipgloss.Color {
	if i < 0 || i >= len(palette) {
		return palette[0]
	}
	return palette[i]
}

type styles struct {
	title     lipgloss.Style
	primary   lipgloss.Style
	secondary lipgloss.Style
	accent    lipgloss.Style
	cutoff    lipgloss.Style
	card      lipgloss.Style
	cardFocus lipgloss.Style
	tabOn     lipgloss.Style
	tabOff    lipgloss.Style
	status    lipgloss.Style
	errText   lipgloss.Style
}

func newStyles(t config.ThemeConfig) styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Primary)),
		primary:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)),
		secondary: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Orangered)),
		cutoff:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Tertiary)),
		card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(t.Shadow)).
			Padding(0, 2),
		cardFocus: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.Orangered)).
			Padding(0, 2),
		tabOn:   lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color(t.Orangered)).Padding(0, 1),
		tabOff:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Tertiary)).Padding(0, 1),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)).Italic(true),
		errText: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Orangered)),
	}
}
