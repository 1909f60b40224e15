package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"handouts/internal/listing"
	"handouts/internal/nav"
	"handouts/internal/session"
)

// Demo coordinates used by "detect my location"; a terminal has no
// geolocation API to ask.
const (
	demoLat = 43.6532
	demoLon = -79.3832
)

var helpFrequencies = []string{"Weekly", "Monthly", "Occasionally"}

// onboardForm walks a fresh account through location, category preferences,
// and one role-specific question.
type onboardForm struct {
	step int // 0 location, 1 preferences, 2 role detail

	location  textinput.Model
	geocoding bool

	prefCursor int
	selected   map[listing.Category]bool

	household textinput.Model
	freqIdx   int
}

func newOnboardForm() onboardForm {
	loc := textinput.New()
	loc.Placeholder = "Neighborhood or city"
	loc.Prompt = "Location > "
	loc.CharLimit = 120

	hh := textinput.New()
	hh.Placeholder = "2"
	hh.Prompt = "People in your household > "
	hh.CharLimit = 3

	return onboardForm{
		location:  loc,
		selected:  make(map[listing.Category]bool),
		household: hh,
	}
}

func (m Model) focusOnboarding() Model {
	m.onboard.location.Blur()
	m.onboard.household.Blur()
	switch m.onboard.step {
	case 0:
		m.onboard.location.Focus()
	case 2:
		if m.sess.Identity() != nil && m.sess.Identity().Role == session.RoleNeeder {
			m.onboard.household.Focus()
		}
	}
	return m
}

func (m Model) updateOnboarding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.onboard.step {
	case 0:
		return m.updateOnboardingLocation(msg)
	case 1:
		return m.updateOnboardingPrefs(msg)
	default:
		return m.updateOnboardingDetail(msg)
	}
}

func (m Model) updateOnboardingLocation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+g":
		if m.onboard.geocoding {
			return m, nil
		}
		m.onboard.geocoding = true
		m.gen++
		m.logger.Debug("reverse geocoding demo coordinates")
		return m, m.geocodeCmd(demoLat, demoLon)
	case "enter":
		if strings.TrimSpace(m.onboard.location.Value()) == "" {
			m.errMsg = "tell us roughly where you are"
			return m, nil
		}
		m.errMsg = ""
		m.onboard.step = 1
		return m.focusOnboarding(), nil
	}
	var cmd tea.Cmd
	m.onboard.location, cmd = m.onboard.location.Update(msg)
	return m, cmd
}

func (m Model) updateOnboardingPrefs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cats := listing.Categories()
	switch msg.String() {
	case "up", "k":
		if m.onboard.prefCursor > 0 {
			m.onboard.prefCursor--
		}
	case "down", "j":
		if m.onboard.prefCursor < len(cats)-1 {
			m.onboard.prefCursor++
		}
	case " ":
		c := cats[m.onboard.prefCursor]
		m.onboard.selected[c] = !m.onboard.selected[c]
		m.errMsg = ""
	case "enter":
		if len(selectedCategories(m.onboard.selected)) == 0 {
			m.errMsg = "pick at least one category"
			return m, nil
		}
		m.errMsg = ""
		m.onboard.step = 2
		return m.focusOnboarding(), nil
	case "esc":
		m.onboard.step = 0
		return m.focusOnboarding(), nil
	}
	return m, nil
}

func (m Model) updateOnboardingDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.sess.Identity()
	if id == nil {
		// Session vanished mid-flow; nothing to onboard.
		return m.navigate(nav.ViewHome)
	}

	if msg.String() == "esc" {
		m.onboard.step = 1
		return m.focusOnboarding(), nil
	}

	if id.Role == session.RoleGiver {
		switch msg.String() {
		case "up", "k", "left":
			if m.onboard.freqIdx > 0 {
				m.onboard.freqIdx--
			}
			return m, nil
		case "down", "j", "right":
			if m.onboard.freqIdx < len(helpFrequencies)-1 {
				m.onboard.freqIdx++
			}
			return m, nil
		case "enter":
			return m.completeOnboarding()
		}
		return m, nil
	}

	switch msg.String() {
	case "enter":
		n, err := strconv.Atoi(strings.TrimSpace(m.onboard.household.Value()))
		if err != nil || n < 1 {
			m.errMsg = "household size must be a positive number"
			return m, nil
		}
		m.errMsg = ""
		return m.completeOnboarding()
	}
	var cmd tea.Cmd
	m.onboard.household, cmd = m.onboard.household.Update(msg)
	return m, cmd
}

// completeOnboarding merges the captured answers into the session and
// forces the marketplace transition.
func (m Model) completeOnboarding() (tea.Model, tea.Cmd) {
	prefs := selectedCategories(m.onboard.selected)
	update := session.Identity{
		Location:      strings.TrimSpace(m.onboard.location.Value()),
		Preferences:   prefs,
		HelpFrequency: helpFrequencies[m.onboard.freqIdx],
	}
	if n, err := strconv.Atoi(strings.TrimSpace(m.onboard.household.Value())); err == nil {
		update.HouseholdSize = n
	}
	m.sess.CompleteOnboarding(update)
	landed := m.navg.OnboardingComplete()
	m.logger.Info("onboarding complete",
		zap.String("location", update.Location),
		zap.Int("preferences", len(prefs)))

	m.gen++
	return m.enterView(landed)
}

func (m Model) viewOnboarding() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Let's set you up") + "\n")
	b.WriteString(m.styles.Subtitle.Render("Step "+strconv.Itoa(m.onboard.step+1)+" of 3") + "\n\n")

	switch m.onboard.step {
	case 0:
		b.WriteString("Where should neighbors look for you?\n\n")
		b.WriteString(m.onboard.location.View() + "\n\n")
		if m.onboard.geocoding {
			b.WriteString(m.spinner.View() + " Looking up your area...\n")
		}
		b.WriteString(m.styles.Help.Render("ctrl+g detect my location · enter continue"))
	case 1:
		b.WriteString("Which categories matter to you?\n\n")
		for i, c := range listing.Categories() {
			mark := "[ ]"
			if m.onboard.selected[c] {
				mark = m.styles.Accent.Render("[x]")
			}
			line := "  " + mark + " " + string(c)
			if i == m.onboard.prefCursor {
				line = m.styles.Accent.Render(">") + line[1:]
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n" + m.styles.Help.Render("space toggle · enter continue · esc back"))
	default:
		id := m.sess.Identity()
		if id != nil && id.Role == session.RoleGiver {
			b.WriteString("How often can you help out?\n\n")
			for i, f := range helpFrequencies {
				line := "  " + f
				if i == m.onboard.freqIdx {
					line = m.styles.Accent.Render("> " + f)
				}
				b.WriteString(line + "\n")
			}
			b.WriteString("\n" + m.styles.Help.Render("up/down choose · enter finish · esc back"))
		} else {
			b.WriteString("A little about your household.\n\n")
			b.WriteString(m.onboard.household.View() + "\n\n")
			b.WriteString(m.styles.Help.Render("enter finish · esc back"))
		}
	}
	if m.errMsg != "" {
		b.WriteString("\n" + m.styles.Error.Render(m.errMsg))
	}
	return b.String() + "\n"
}

// selectedCategories flattens a toggle set into display order.
func selectedCategories(set map[listing.Category]bool) []listing.Category {
	var out []listing.Category
	for _, c := range listing.Categories() {
		if set[c] {
			out = append(out, c)
		}
	}
	return out
}

// applyGeocode fills the location input with the resolved label.
func (m Model) applyGeocode(msg geocodeMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		m.logger.Debug("stale geocode result dropped", zap.Int("gen", msg.gen))
		return m, nil
	}
	m.onboard.geocoding = false
	m.onboard.location.SetValue(msg.label)
	return m, nil
}
