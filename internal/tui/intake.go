package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"handouts/internal/listing"
	"handouts/internal/nav"
	"handouts/internal/session"
)

// intakeForm posts a new listing. Needers start with a free-text phase the
// assistant structures for them; givers go straight to the fields.
type intakeForm struct {
	phase int // 0 describe (needers only), 1 fields

	raw       textarea.Model
	analyzing bool

	title       textinput.Model
	description textarea.Model
	optimizing  bool

	catIdx    int
	urgIdx    int
	pickupIdx int
	quantity  textinput.Model

	focus int
}

// Field indexes for the structured phase.
const (
	fieldTitle = iota
	fieldDescription
	fieldCategory
	fieldDetail // urgency for needs, pickup window for offers
	fieldQuantity
)

func newIntakeForm() intakeForm {
	raw := textarea.New()
	raw.Placeholder = "Tell us what you need, in your own words..."
	raw.SetHeight(4)

	title := textinput.New()
	title.Placeholder = "Short title"
	title.Prompt = "Title > "
	title.CharLimit = 80

	desc := textarea.New()
	desc.Placeholder = "Details neighbors should know"
	desc.SetHeight(3)

	qty := textinput.New()
	qty.Placeholder = "1"
	qty.Prompt = "Quantity > "
	qty.CharLimit = 3

	return intakeForm{
		raw:         raw,
		title:       title,
		description: desc,
		quantity:    qty,
		urgIdx:      1, // Medium
	}
}

// intakeKind maps the account role to the listing kind it posts.
func (m Model) intakeKind() listing.Kind {
	if id := m.sess.Identity(); id != nil && id.Role == session.RoleGiver {
		return listing.KindOffer
	}
	return listing.KindNeed
}

func (m Model) focusIntake() Model {
	if m.intakeKind() == listing.KindNeed && m.intake.phase == 0 {
		m.intake.raw.Focus()
		return m
	}
	m.intake.phase = 1
	m.intake.raw.Blur()
	m.intake.title.Blur()
	m.intake.description.Blur()
	m.intake.quantity.Blur()
	switch m.intake.focus {
	case fieldTitle:
		m.intake.title.Focus()
	case fieldDescription:
		m.intake.description.Focus()
	case fieldQuantity:
		m.intake.quantity.Focus()
	}
	return m
}

// fieldCount is the number of focusable fields for the current kind.
func (m Model) intakeFieldCount() int {
	if m.intakeKind() == listing.KindOffer {
		return 5
	}
	return 4
}

func (m Model) updateIntake(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.intake.phase == 0 && m.intakeKind() == listing.KindNeed {
		return m.updateIntakeDescribe(msg)
	}
	return m.updateIntakeFields(msg)
}

func (m Model) updateIntakeDescribe(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.navigate(nav.ViewMarketplace)
	case "ctrl+a":
		text := strings.TrimSpace(m.intake.raw.Value())
		if text == "" {
			m.errMsg = "describe what you need first"
			return m, nil
		}
		if m.intake.analyzing {
			return m, nil
		}
		m.errMsg = ""
		m.intake.analyzing = true
		m.gen++
		m.logger.Info("analyzing intake request", zap.Int("chars", len(text)))
		return m, m.analyzeCmd(text)
	case "ctrl+n":
		// Skip the assistant and fill the form by hand.
		m.intake.phase = 1
		m.intake.description.SetValue(strings.TrimSpace(m.intake.raw.Value()))
		m.intake.focus = fieldTitle
		return m.focusIntake(), nil
	}
	var cmd tea.Cmd
	m.intake.raw, cmd = m.intake.raw.Update(msg)
	return m, cmd
}

func (m Model) updateIntakeFields(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.navigate(nav.ViewMarketplace)
	case "tab":
		m.intake.focus = (m.intake.focus + 1) % m.intakeFieldCount()
		return m.focusIntake(), nil
	case "shift+tab":
		n := m.intakeFieldCount()
		m.intake.focus = (m.intake.focus + n - 1) % n
		return m.focusIntake(), nil
	case "ctrl+o":
		text := strings.TrimSpace(m.intake.description.Value())
		if text == "" || m.intake.optimizing {
			return m, nil
		}
		m.intake.optimizing = true
		m.gen++
		return m, m.optimizeCmd(text, m.intakeKind())
	case "ctrl+s":
		return m.submitIntake()
	}

	switch m.intake.focus {
	case fieldCategory:
		cats := listing.Categories()
		switch msg.String() {
		case "left", "h":
			m.intake.catIdx = (m.intake.catIdx + len(cats) - 1) % len(cats)
		case "right", "l":
			m.intake.catIdx = (m.intake.catIdx + 1) % len(cats)
		}
		return m, nil
	case fieldDetail:
		if m.intakeKind() == listing.KindNeed {
			switch msg.String() {
			case "left", "h":
				if m.intake.urgIdx > 0 {
					m.intake.urgIdx--
				}
			case "right", "l":
				if m.intake.urgIdx < 4 {
					m.intake.urgIdx++
				}
			}
		} else {
			wins := listing.PickupWindows()
			switch msg.String() {
			case "left", "h":
				m.intake.pickupIdx = (m.intake.pickupIdx + len(wins) - 1) % len(wins)
			case "right", "l":
				m.intake.pickupIdx = (m.intake.pickupIdx + 1) % len(wins)
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.intake.focus {
	case fieldTitle:
		m.intake.title, cmd = m.intake.title.Update(msg)
	case fieldDescription:
		m.intake.description, cmd = m.intake.description.Update(msg)
	case fieldQuantity:
		m.intake.quantity, cmd = m.intake.quantity.Update(msg)
	}
	return m, cmd
}

// submitIntake validates through the store; a rejected listing leaves the
// store untouched and keeps the form as typed.
func (m Model) submitIntake() (tea.Model, tea.Cmd) {
	id := m.sess.Identity()
	if id == nil {
		return m.navigate(nav.ViewHome)
	}

	kind := m.intakeKind()
	l := listing.Listing{
		Title:       strings.TrimSpace(m.intake.title.Value()),
		Description: strings.TrimSpace(m.intake.description.Value()),
		Category:    listing.Categories()[m.intake.catIdx],
		Kind:        kind,
		Location:    id.Location,
	}
	if kind == listing.KindNeed {
		l.Urgency = listing.Urgency(m.intake.urgIdx + 1)
	} else {
		l.Pickup = listing.PickupWindows()[m.intake.pickupIdx]
		l.Quantity = 1
		if n, err := strconv.Atoi(strings.TrimSpace(m.intake.quantity.Value())); err == nil && n > 0 {
			l.Quantity = n
		}
	}

	if err := m.listings.Add(&l); err != nil {
		var verr *listing.ValidationError
		if errors.As(err, &verr) {
			m.errMsg = strings.Join(verr.Problems, "; ")
		} else {
			m.errMsg = "could not save the listing"
			m.logger.Error("listing insert failed", zap.Error(err))
		}
		return m, nil
	}

	m.logger.Info("listing posted",
		zap.String("id", l.ID),
		zap.String("kind", string(l.Kind)),
		zap.String("category", string(l.Category)))

	next, cmd := m.navigate(nav.ViewMarketplace)
	next.status = "Your listing is live."
	return next, cmd
}

func (m Model) viewIntake() string {
	var b strings.Builder
	kind := m.intakeKind()
	if kind == listing.KindNeed {
		b.WriteString(m.styles.Title.Render("Ask for help") + "\n\n")
	} else {
		b.WriteString(m.styles.Title.Render("Offer an item") + "\n\n")
	}

	if m.intake.phase == 0 && kind == listing.KindNeed {
		b.WriteString(m.intake.raw.View() + "\n\n")
		if m.intake.analyzing {
			b.WriteString(m.spinner.View() + " Structuring your request...\n")
		}
		if m.errMsg != "" {
			b.WriteString(m.styles.Error.Render(m.errMsg) + "\n")
		}
		b.WriteString(m.styles.Help.Render("ctrl+a let the assistant structure it · ctrl+n fill in manually · esc cancel"))
		return b.String() + "\n"
	}

	b.WriteString(m.intake.title.View() + "\n\n")
	b.WriteString("Description" + optimizeHint(m.intake.optimizing, m.spinner.View()) + "\n")
	b.WriteString(m.intake.description.View() + "\n\n")

	b.WriteString(m.chooserLine("Category", string(listing.Categories()[m.intake.catIdx]), m.intake.focus == fieldCategory) + "\n")
	if kind == listing.KindNeed {
		u := listing.Urgency(m.intake.urgIdx + 1)
		b.WriteString(m.chooserLine("Urgency", fmt.Sprintf("%d (%s)", int(u), u), m.intake.focus == fieldDetail) + "\n")
	} else {
		b.WriteString(m.chooserLine("Pickup", string(listing.PickupWindows()[m.intake.pickupIdx]), m.intake.focus == fieldDetail) + "\n")
		b.WriteString(m.intake.quantity.View() + "\n")
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg) + "\n")
	}
	b.WriteString(m.styles.Help.Render("tab next field · left/right adjust · ctrl+o polish description · ctrl+s post · esc cancel"))
	return b.String() + "\n"
}

func (m Model) chooserLine(label, value string, focused bool) string {
	line := fmt.Sprintf("%s < %s >", label, value)
	if focused {
		return m.styles.Accent.Render(line)
	}
	return line
}

func optimizeHint(optimizing bool, spin string) string {
	if optimizing {
		return "  " + spin + " polishing..."
	}
	return ""
}

// applyAnalysis prefills the structured fields from the assistant's reading.
// A nil analysis keeps the manual path available.
func (m Model) applyAnalysis(msg analysisMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		m.logger.Debug("stale analysis dropped", zap.Int("gen", msg.gen))
		return m, nil
	}
	m.intake.analyzing = false
	if msg.analysis == nil {
		m.status = "The assistant had no suggestion; fill the form in manually."
		m.intake.phase = 1
		m.intake.description.SetValue(strings.TrimSpace(m.intake.raw.Value()))
		m.intake.focus = fieldTitle
		return m.focusIntake(), nil
	}

	a := msg.analysis
	m.intake.phase = 1
	m.intake.title.SetValue(a.Title)
	m.intake.description.SetValue(a.Description)
	for i, c := range listing.Categories() {
		if string(c) == a.Category {
			m.intake.catIdx = i
			break
		}
	}
	if a.Urgency >= 1 && a.Urgency <= 5 {
		m.intake.urgIdx = a.Urgency - 1
	}
	m.intake.focus = fieldTitle
	m.logger.Info("intake analysis applied", zap.String("category", a.Category))
	return m.focusIntake(), nil
}

// applyOptimize swaps in the polished description.
func (m Model) applyOptimize(msg optimizeMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		m.logger.Debug("stale optimize dropped", zap.Int("gen", msg.gen))
		return m, nil
	}
	m.intake.optimizing = false
	if msg.text != "" {
		m.intake.description.SetValue(msg.text)
	}
	return m, nil
}
