package tui

import "github.com/charmbracelet/lipgloss"

// Palette lifted from the original demo: emerald on slate.
var (
	colorAccent  = lipgloss.Color("#10b981") // emerald
	colorWarn    = lipgloss.Color("#f59e0b") // amber
	colorDanger  = lipgloss.Color("#ef4444") // red
	colorMuted   = lipgloss.Color("#64748b") // slate-500
	colorSubtle  = lipgloss.Color("#94a3b8") // slate-400
	colorSurface = lipgloss.Color("#1e293b") // slate-800
)

// Styles groups every lipgloss style the views use.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warn     lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
	Tag      lipgloss.Style
	Urgent   lipgloss.Style
}

// DefaultStyles builds the app theme.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Subtitle: lipgloss.NewStyle().Foreground(colorSubtle),
		Accent:   lipgloss.NewStyle().Foreground(colorAccent),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Error:    lipgloss.NewStyle().Foreground(colorDanger),
		Warn:     lipgloss.NewStyle().Foreground(colorWarn),
		Help:     lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1),
		Tag:    lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Urgent: lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
	}
}
