package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"handouts/internal/listing"
	"handouts/internal/nav"
)

// marketState is the transient browse state: the filter selection and the
// list cursor. Resetting it never touches the store.
type marketState struct {
	selection listing.Selection
	catIdx    int // 0 is the All wildcard, then Categories() order
	kindIdx   int // 0 All, 1 NEED, 2 OFFER
	cursor    int
}

func newMarketState() marketState {
	return marketState{selection: listing.AllSelection()}
}

var kindCycle = []listing.Kind{listing.KindAll, listing.KindNeed, listing.KindOffer}

func (s *marketState) cycleCategory() {
	cats := listing.Categories()
	s.catIdx = (s.catIdx + 1) % (len(cats) + 1)
	if s.catIdx == 0 {
		s.selection.Category = listing.CategoryAll
	} else {
		s.selection.Category = cats[s.catIdx-1]
	}
	s.cursor = 0
}

func (s *marketState) cycleKind() {
	s.kindIdx = (s.kindIdx + 1) % len(kindCycle)
	s.selection.Kind = kindCycle[s.kindIdx]
	s.cursor = 0
}

func (s *marketState) reset() {
	*s = newMarketState()
}

func (m Model) updateMarketplace(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleListings()
	switch msg.String() {
	case "up", "k":
		if m.market.cursor > 0 {
			m.market.cursor--
		}
	case "down", "j":
		if m.market.cursor < len(visible)-1 {
			m.market.cursor++
		}
	case "c":
		m.market.cycleCategory()
	case "f":
		m.market.cycleKind()
	case "r":
		m.market.reset()
	case "n":
		return m.navigate(nav.ViewIntake)
	case "d":
		return m.navigate(nav.ViewDashboard)
	case "p":
		return m.navigate(nav.ViewProfile)
	case "i":
		return m.navigate(nav.ViewInfo)
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewMarketplace() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Marketplace") + "\n")

	kindLabel := "All"
	if m.market.selection.Kind != listing.KindAll {
		kindLabel = string(m.market.selection.Kind)
	}
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf(
		"Category: %s · Kind: %s", m.market.selection.Category, kindLabel)) + "\n\n")

	visible := m.visibleListings()
	if len(visible) == 0 {
		b.WriteString(m.styles.Muted.Render("No listings match these filters.") + "\n")
	}
	for i, l := range visible {
		b.WriteString(m.renderListing(l, i == m.market.cursor) + "\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.Accent.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.styles.Help.Render(
		"up/down browse · c category · f kind · r reset · n post · d dashboard · p profile · q quit"))
	return b.String() + "\n"
}

func (m Model) renderListing(l listing.Listing, selected bool) string {
	tag := m.styles.Tag.Render("OFFER")
	detail := ""
	if l.Kind == listing.KindNeed {
		tag = m.styles.Urgent.Render("NEED")
		detail = m.styles.Warn.Render(fmt.Sprintf("urgency %d (%s)", int(l.Urgency), l.Urgency))
	} else {
		if l.Pickup != "" {
			detail = m.styles.Muted.Render("pickup " + strings.ToLower(string(l.Pickup)))
		}
		if l.Quantity > 1 {
			detail += m.styles.Muted.Render(fmt.Sprintf(" · qty %d", l.Quantity))
		}
	}

	header := fmt.Sprintf("%s %s", tag, l.Title)
	meta := m.styles.Muted.Render(fmt.Sprintf(
		"%s · %s · %.1f km", l.Category, l.Location, l.DistanceKm))
	body := header + "\n" + l.Description + "\n" + meta
	if detail != "" {
		body += "  " + detail
	}

	if selected {
		return m.styles.Selected.Render(body)
	}
	return m.styles.Card.Render(body)
}
