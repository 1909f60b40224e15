package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"handouts/internal/insight"
	"handouts/internal/listing"
	"handouts/internal/nav"
	"handouts/internal/session"
)

// dashState caches the last loaded dashboard payload.
type dashState struct {
	loading bool
	loaded  bool
	data    insight.DashboardData
}

// enterDashboard kicks off the concurrent load. The stats render
// immediately from the store; the generated text arrives as a message.
func (m Model) enterDashboard() (Model, tea.Cmd) {
	role := session.RoleUnset
	if id := m.sess.Identity(); id != nil {
		role = id.Role
	}
	m.dash.loading = true
	m.logger.Debug("loading dashboard")
	return m, m.dashboardCmd(role, m.currentMetrics())
}

func (m Model) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "m", "esc":
		return m.navigate(nav.ViewMarketplace)
	case "p":
		return m.navigate(nav.ViewProfile)
	case "r":
		m.gen++
		next, cmd := m.enterDashboard()
		return next, cmd
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Community Dashboard") + "\n\n")

	all, err := m.listings.All()
	if err == nil {
		stats := listing.ComputeStats(all)
		b.WriteString(fmt.Sprintf("%s active needs   %s open offers   %s matches made\n\n",
			m.styles.Accent.Render(fmt.Sprintf("%d", stats.ActiveNeeds)),
			m.styles.Accent.Render(fmt.Sprintf("%d", stats.TotalOffers)),
			m.styles.Accent.Render(fmt.Sprintf("%d", stats.MatchesMade))))
	}

	if m.dash.loading {
		b.WriteString(m.spinner.View() + " Gathering community insights...\n")
	}
	if m.dash.loaded {
		d := m.dash.data
		if d.Summary != "" {
			b.WriteString(m.styles.Card.Render(d.Summary) + "\n\n")
		}
		if d.Pulse.Story != "" {
			pulse := d.Pulse.Story + "\n" + m.styles.Muted.Render(d.Pulse.Prediction)
			if len(d.Pulse.Hotspots) > 0 {
				pulse += "\n" + m.styles.Muted.Render("Hotspots: "+strings.Join(d.Pulse.Hotspots, ", "))
			}
			b.WriteString(m.styles.Card.Render(pulse) + "\n\n")
		}
		if len(d.Tips) > 0 {
			b.WriteString(m.styles.Subtitle.Render("Tips for you") + "\n")
			for _, tip := range d.Tips {
				b.WriteString("  - " + tip + "\n")
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(m.styles.Help.Render("m marketplace · p profile · r refresh · q quit"))
	return b.String() + "\n"
}

// applyDashboard installs the loaded payload unless superseded.
func (m Model) applyDashboard(msg dashboardMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		m.logger.Debug("stale dashboard payload dropped", zap.Int("gen", msg.gen))
		return m, nil
	}
	m.dash.loading = false
	m.dash.loaded = true
	m.dash.data = msg.data
	return m, nil
}
