package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-notes-keeper/internal/state"
)

type palette struct {
	text      lipgloss.Color
	muted     lipgloss.Color
	accent    lipgloss.Color
	border    lipgloss.Color
	selected  lipgloss.Color
	errorText lipgloss.Color
	errorBg   lipgloss.Color
}

var palettes = map[state.Theme]palette{
	state.ThemeLight: {
		text:      lipgloss.Color("#1F2328"),
		muted:     lipgloss.Color("#6E7781"),
		accent:    lipgloss.Color("#0969DA"),
		border:    lipgloss.Color("#D0D7DE"),
		selected:  lipgloss.Color("#DDF4FF"),
		errorText: lipgloss.Color("#82071E"),
		errorBg:   lipgloss.Color("#FFEBE9"),
	},
	state.ThemeDark: {
		text:      lipgloss.Color("#E6EDF3"),
		muted:     lipgloss.Color("#8B949E"),
		accent:    lipgloss.Color("#58A6FF"),
		border:    lipgloss.Color("#30363D"),
		selected:  lipgloss.Color("#1F3A5F"),
		errorText: lipgloss.Color("#FFDCD7"),
		errorBg:   lipgloss.Color("#8E1519"),
	},
}

type styles struct {
	app      lipgloss.Style
	header   lipgloss.Style
	title    lipgloss.Style
	muted    lipgloss.Style
	banner   lipgloss.Style
	sidebar  lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	pane     lipgloss.Style
	overlay  lipgloss.Style
	help     lipgloss.Style
}

func newStyles(theme state.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[state.ThemeLight]
	}

	return styles{
		app:      lipgloss.NewStyle().Padding(0, 1).Foreground(p.text),
		header:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.text),
		muted:    lipgloss.NewStyle().Faint(true).Foreground(p.muted),
		banner:   lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(p.errorText).Background(p.errorBg),
		sidebar:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		item:     lipgloss.NewStyle().Foreground(p.text),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.accent).Background(p.selected),
		pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(1, 2),
		help:     lipgloss.NewStyle().Faint(true).Foreground(p.muted),
	}
}
