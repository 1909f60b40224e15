package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"handouts/internal/nav"
)

const infoMarkdown = `# How Handouts Works

Handouts connects neighbors directly. No warehouses, no waiting lists.

## For those who need

1. **Post a request.** Describe what you need in your own words; the
   assistant turns it into a structured listing.
2. **Get matched.** Nearby givers see your request on the marketplace.
3. **Arrange pickup.** Coordinate a time and place that works.

## For those who give

1. **Post an offer.** List items you no longer need, with a pickup window.
2. **Respond to needs.** Browse open requests near you.
3. **Hand it over.** Every match is a direct neighbor-to-neighbor handoff.

## Principles

- Dignity first: needs are requests, not applications.
- Local only: everything stays within your community.
- Free always: no fees, no resale.
`

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l":
		return m.navigate(nav.ViewLogin)
	case "s":
		return m.navigate(nav.ViewSignup)
	case "i":
		return m.navigate(nav.ViewInfo)
	case "b", "m":
		// Browsing is gated; anonymous users land on LOGIN.
		return m.navigate(nav.ViewMarketplace)
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Handouts") + "\n")
	b.WriteString(m.styles.Subtitle.Render("Community aid, neighbor to neighbor.") + "\n\n")

	b.WriteString("Give what you can spare. Ask for what you need.\n")
	b.WriteString("Every listing is a direct connection, not a queue.\n\n")

	if m.sess.Authenticated() {
		b.WriteString(fmt.Sprintf("Signed in as %s.\n\n", m.styles.Accent.Render(m.sess.Identity().Name)))
		b.WriteString(m.styles.Help.Render("m marketplace · i how it works · q quit"))
	} else {
		b.WriteString(m.styles.Help.Render("l log in · s sign up · b browse · i how it works · q quit"))
	}
	if m.status != "" {
		b.WriteString("\n\n" + m.styles.Muted.Render(m.status))
	}
	return b.String() + "\n"
}

func (m Model) updateInfo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		return m.navigate(nav.ViewHome)
	}
	return m, nil
}

func (m Model) viewInfo() string {
	width := m.width
	if width <= 0 || width > 80 {
		width = 80
	}
	out := infoMarkdown
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if rendered, rerr := r.Render(infoMarkdown); rerr == nil {
			out = rendered
		}
	}
	return out + "\n" + m.styles.Help.Render("esc back") + "\n"
}
