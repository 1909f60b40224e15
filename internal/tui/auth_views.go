package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"handouts/internal/auth"
	"handouts/internal/nav"
	"handouts/internal/session"
)

// loginForm holds the email and password inputs.
type loginForm struct {
	inputs []textinput.Model
	focus  int
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email    > "
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password > "
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	return loginForm{inputs: []textinput.Model{email, password}}
}

func (m Model) focusLogin() Model {
	for i := range m.login.inputs {
		if i == m.login.focus {
			m.login.inputs[i].Focus()
		} else {
			m.login.inputs[i].Blur()
		}
	}
	return m
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	switch msg.String() {
	case "esc":
		return m.navigate(nav.ViewHome)
	case "ctrl+s":
		return m.navigate(nav.ViewSignup)
	case "tab", "down":
		m.login.focus = (m.login.focus + 1) % len(m.login.inputs)
		return m.focusLogin(), nil
	case "shift+tab", "up":
		m.login.focus = (m.login.focus + len(m.login.inputs) - 1) % len(m.login.inputs)
		return m.focusLogin(), nil
	case "enter":
		payload := session.LoginPayload{
			Email:    strings.TrimSpace(m.login.inputs[0].Value()),
			Password: m.login.inputs[1].Value(),
		}
		if err := payload.Validate(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.busy = true
		m.gen++
		m.logger.Info("login submitted", zap.String("email", payload.Email))
		return m, m.loginCmd(payload)
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Welcome back") + "\n\n")
	for i := range m.login.inputs {
		b.WriteString(m.login.inputs[i].View() + "\n")
	}
	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spinner.View() + " Signing in...\n")
	}
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg) + "\n")
	}
	b.WriteString(m.styles.Help.Render("enter submit · tab next field · ctrl+s sign up instead · esc back"))
	return b.String() + "\n"
}

// signupForm runs in two steps: role selection, then the account fields.
type signupForm struct {
	step       int // 0 role, 1 fields
	roleCursor int
	inputs     []textinput.Model
	focus      int
}

var signupRoles = []session.Role{session.RoleGiver, session.RoleNeeder}

func newSignupForm() signupForm {
	name := textinput.New()
	name.Placeholder = "Jane Doe"
	name.Prompt = "Name     > "
	name.CharLimit = 120

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email    > "
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password > "
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	return signupForm{inputs: []textinput.Model{name, email, password}}
}

func (m Model) focusSignup() Model {
	for i := range m.signup.inputs {
		if m.signup.step == 1 && i == m.signup.focus {
			m.signup.inputs[i].Focus()
		} else {
			m.signup.inputs[i].Blur()
		}
	}
	return m
}

func (m Model) updateSignup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	if m.signup.step == 0 {
		switch msg.String() {
		case "esc":
			return m.navigate(nav.ViewHome)
		case "ctrl+s":
			return m.navigate(nav.ViewLogin)
		case "up", "k", "left":
			if m.signup.roleCursor > 0 {
				m.signup.roleCursor--
			}
			return m, nil
		case "down", "j", "right":
			if m.signup.roleCursor < len(signupRoles)-1 {
				m.signup.roleCursor++
			}
			return m, nil
		case "enter":
			m.signup.step = 1
			m.signup.focus = 0
			return m.focusSignup(), nil
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.signup.step = 0
		m.errMsg = ""
		return m.focusSignup(), nil
	case "tab", "down":
		m.signup.focus = (m.signup.focus + 1) % len(m.signup.inputs)
		return m.focusSignup(), nil
	case "shift+tab", "up":
		m.signup.focus = (m.signup.focus + len(m.signup.inputs) - 1) % len(m.signup.inputs)
		return m.focusSignup(), nil
	case "enter":
		payload := session.SignupPayload{
			Name:     strings.TrimSpace(m.signup.inputs[0].Value()),
			Email:    strings.TrimSpace(m.signup.inputs[1].Value()),
			Password: m.signup.inputs[2].Value(),
			Role:     signupRoles[m.signup.roleCursor],
		}
		if err := payload.Validate(); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.busy = true
		m.gen++
		m.logger.Info("signup submitted",
			zap.String("email", payload.Email),
			zap.String("role", string(payload.Role)))
		return m, m.signupCmd(payload)
	}

	var cmd tea.Cmd
	m.signup.inputs[m.signup.focus], cmd = m.signup.inputs[m.signup.focus].Update(msg)
	return m, cmd
}

func (m Model) viewSignup() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Join Handouts") + "\n\n")

	if m.signup.step == 0 {
		b.WriteString("How do you want to take part?\n\n")
		labels := []string{"I want to give - share items I can spare", "I need help - request items for my household"}
		for i, label := range labels {
			line := "  " + label
			if i == m.signup.roleCursor {
				line = m.styles.Accent.Render("> " + label)
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n" + m.styles.Help.Render("up/down choose · enter continue · ctrl+s log in instead · esc back"))
		return b.String() + "\n"
	}

	role := "giver"
	if signupRoles[m.signup.roleCursor] == session.RoleNeeder {
		role = "needer"
	}
	b.WriteString(fmt.Sprintf("Creating a %s account.\n\n", m.styles.Accent.Render(role)))
	for i := range m.signup.inputs {
		b.WriteString(m.signup.inputs[i].View() + "\n")
	}
	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spinner.View() + " Creating account...\n")
	}
	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg) + "\n")
	}
	b.WriteString(m.styles.Help.Render("enter submit · tab next field · esc change role"))
	return b.String() + "\n"
}

// applyAuthResult installs the identity and runs the post-auth transition.
// Stale results are dropped; failed results never touch the session.
func (m Model) applyAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		m.logger.Debug("stale auth result dropped", zap.Int("gen", msg.gen))
		return m, nil
	}
	m.busy = false
	if msg.err != nil {
		var authErr *auth.AuthError
		if errors.As(msg.err, &authErr) {
			m.errMsg = authErr.Reason
		} else {
			m.errMsg = "Something went wrong. Please try again."
		}
		m.logger.Warn("auth failed", zap.Error(msg.err))
		return m, nil
	}

	m.sess.Login(msg.identity, msg.isNew)
	landed := m.navg.LoggedIn(msg.isNew)
	m.logger.Info("authenticated",
		zap.String("email", msg.identity.Email),
		zap.Bool("new_user", msg.isNew),
		zap.String("view", string(landed)))

	m.gen++
	next, cmd := m.enterView(landed)
	return next, cmd
}
