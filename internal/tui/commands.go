package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"handouts/internal/geo"
	"handouts/internal/insight"
	"handouts/internal/listing"
	"handouts/internal/session"
)

// Commands capture the generation they were issued under; the matching
// apply handler compares it against the model's current generation.

func (m Model) loginCmd(p session.LoginPayload) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		id, err := m.authp.Authenticate(m.bg(), p)
		return authResultMsg{gen: gen, identity: id, isNew: false, err: err}
	}
}

func (m Model) signupCmd(p session.SignupPayload) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		id, err := m.authp.Register(m.bg(), p)
		return authResultMsg{gen: gen, identity: id, isNew: true, err: err}
	}
}

func (m Model) analyzeCmd(text string) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		// The fallback decorator absorbs errors, so a failed analysis
		// arrives here as a nil result.
		a, _ := m.insights.AnalyzeRequest(m.bg(), text)
		return analysisMsg{gen: gen, analysis: a}
	}
}

func (m Model) optimizeCmd(text string, kind listing.Kind) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		out, err := m.insights.OptimizeDescription(m.bg(), text, kind)
		if err != nil || out == "" {
			out = text
		}
		return optimizeMsg{gen: gen, text: out}
	}
}

func (m Model) dashboardCmd(role session.Role, metrics insight.Metrics) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		data, _ := insight.LoadDashboard(m.bg(), m.insights, role, metrics)
		return dashboardMsg{gen: gen, data: data}
	}
}

func (m Model) profileInsightCmd(role session.Role, location string, prefs []listing.Category) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		note, _ := m.insights.ProfileInsights(m.bg(), role, location, prefs)
		return profileInsightMsg{gen: gen, note: note}
	}
}

func (m Model) geocodeCmd(lat, lon float64) tea.Cmd {
	gen := m.gen
	return func() tea.Msg {
		label, err := m.geocoder.ReverseGeocode(m.bg(), lat, lon)
		if err != nil || label == "" {
			label = geo.FallbackLabel(lat, lon)
		}
		return geocodeMsg{gen: gen, label: label}
	}
}
