package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"handouts/internal/listing"
	"handouts/internal/nav"
	"handouts/internal/session"
)

// profileForm is the in-place edit state for the profile view. Focus walks
// name, location, then the preference toggles.
type profileForm struct {
	editing bool
	inputs  []textinput.Model // name, location
	focus   int               // 0 name, 1 location, 2 preferences

	prefCursor int
	selected   map[listing.Category]bool

	note    string
	loading bool
}

const profileFields = 3

func newProfileForm() profileForm {
	name := textinput.New()
	name.Prompt = "Name     > "
	name.CharLimit = 120

	location := textinput.New()
	location.Prompt = "Location > "
	location.CharLimit = 120

	return profileForm{inputs: []textinput.Model{name, location}}
}

// enterProfile requests the personalized note and resets edit state.
func (m Model) enterProfile() (Model, tea.Cmd) {
	id := m.sess.Identity()
	if id == nil {
		return m, nil
	}
	m.profile.editing = false
	m.profile.loading = true
	m.logger.Debug("loading profile insight")
	return m, m.profileInsightCmd(id.Role, id.Location, id.Preferences)
}

func (m Model) focusProfile() Model {
	for i := range m.profile.inputs {
		if m.profile.editing && i == m.profile.focus {
			m.profile.inputs[i].Focus()
		} else {
			m.profile.inputs[i].Blur()
		}
	}
	return m
}

func (m Model) updateProfileEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.profile.editing = false
		return m.focusProfile(), nil
	case "tab":
		m.profile.focus = (m.profile.focus + 1) % profileFields
		return m.focusProfile(), nil
	case "shift+tab":
		m.profile.focus = (m.profile.focus + profileFields - 1) % profileFields
		return m.focusProfile(), nil
	case "enter":
		m.sess.UpdateProfile(session.Identity{
			Name:        strings.TrimSpace(m.profile.inputs[0].Value()),
			Location:    strings.TrimSpace(m.profile.inputs[1].Value()),
			Preferences: selectedCategories(m.profile.selected),
		})
		m.profile.editing = false
		m.status = "Profile updated."
		m.logger.Info("profile updated")
		return m.focusProfile(), nil
	}

	if m.profile.focus == 2 {
		cats := listing.Categories()
		switch msg.String() {
		case "up", "k":
			if m.profile.prefCursor > 0 {
				m.profile.prefCursor--
			}
		case "down", "j":
			if m.profile.prefCursor < len(cats)-1 {
				m.profile.prefCursor++
			}
		case " ":
			c := cats[m.profile.prefCursor]
			m.profile.selected[c] = !m.profile.selected[c]
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
	return m, cmd
}

func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.sess.Identity()
	if id == nil {
		return m.navigate(nav.ViewHome)
	}

	if m.profile.editing {
		return m.updateProfileEdit(msg)
	}

	switch msg.String() {
	case "e":
		m.profile.editing = true
		m.profile.focus = 0
		m.profile.inputs[0].SetValue(id.Name)
		m.profile.inputs[1].SetValue(id.Location)
		m.profile.selected = make(map[listing.Category]bool)
		for _, c := range id.Preferences {
			m.profile.selected[c] = true
		}
		m.status = ""
		return m.focusProfile(), nil
	case "m", "esc":
		return m.navigate(nav.ViewMarketplace)
	case "d":
		return m.navigate(nav.ViewDashboard)
	case "s":
		next, cmd := m.logout()
		return next, cmd
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewProfile() string {
	id := m.sess.Identity()
	if id == nil {
		return m.styles.Muted.Render("No profile while signed out.") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Your Profile") + "\n\n")

	if m.profile.editing {
		for i := range m.profile.inputs {
			b.WriteString(m.profile.inputs[i].View() + "\n")
		}
		b.WriteString("\nInterests\n")
		for i, c := range listing.Categories() {
			mark := "[ ]"
			if m.profile.selected[c] {
				mark = m.styles.Accent.Render("[x]")
			}
			line := "  " + mark + " " + string(c)
			if m.profile.focus == 2 && i == m.profile.prefCursor {
				line = m.styles.Accent.Render(">") + line[1:]
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n" + m.styles.Help.Render("enter save · tab next field · space toggle interest · esc cancel"))
		return b.String() + "\n"
	}

	role := "Giver"
	if id.Role == session.RoleNeeder {
		role = "Needer"
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", m.styles.Accent.Render(id.Name), m.styles.Tag.Render(role)))
	b.WriteString(m.styles.Muted.Render(id.Email) + "\n")
	if id.Location != "" {
		b.WriteString("Location: " + id.Location + "\n")
	}
	if len(id.Preferences) > 0 {
		b.WriteString("Interests: " + joinCategories(id.Preferences) + "\n")
	}
	switch id.Role {
	case session.RoleNeeder:
		if id.HouseholdSize > 0 {
			b.WriteString(fmt.Sprintf("Household: %d\n", id.HouseholdSize))
		}
	case session.RoleGiver:
		if id.HelpFrequency != "" {
			b.WriteString("Helps out: " + id.HelpFrequency + "\n")
		}
	}
	b.WriteString(m.styles.Muted.Render("Member since "+id.JoinedAt.Format("January 2006")) + "\n\n")

	if m.profile.loading {
		b.WriteString(m.spinner.View() + " Personalizing...\n")
	} else if m.profile.note != "" {
		b.WriteString(m.styles.Card.Render(m.profile.note) + "\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.Accent.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.styles.Help.Render("e edit · m marketplace · d dashboard · s sign out · q quit"))
	return b.String() + "\n"
}

func joinCategories(cats []listing.Category) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// applyProfileInsight installs the personalized note unless superseded.
func (m Model) applyProfileInsight(msg profileInsightMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		m.logger.Debug("stale profile insight dropped", zap.Int("gen", msg.gen))
		return m, nil
	}
	m.profile.loading = false
	m.profile.note = msg.note
	return m, nil
}
