// Package tui is the interactive terminal front end. The root Model owns
// the session, the listing store and the navigator, and its Update loop is
// the only place any of them are mutated. Collaborator calls run as
// tea.Cmds and hand their results back as messages.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"handouts/internal/auth"
	"handouts/internal/geo"
	"handouts/internal/insight"
	"handouts/internal/listing"
	"handouts/internal/nav"
	"handouts/internal/session"
	"handouts/internal/store"
)

// Options wires the collaborators into the root model. Zero-value fields
// get offline defaults, which is what the tests use.
type Options struct {
	Session  *session.Session
	Store    store.Store
	Insight  insight.Provider
	Auth     auth.Provider
	Geocoder geo.ReverseGeocoder
	Logger   *zap.Logger
}

// Model is the root bubbletea model.
type Model struct {
	styles Styles
	logger *zap.Logger

	sess     *session.Session
	listings store.Store
	navg     *nav.Navigator

	insights insight.Provider
	authp    auth.Provider
	geocoder geo.ReverseGeocoder

	// gen stamps outgoing collaborator calls; bumping it on navigation or
	// a new submission orphans every in-flight request.
	gen  int
	busy bool

	spinner spinner.Model
	width   int
	height  int

	// status is a transient notice; errMsg is a user-visible failure.
	status string
	errMsg string

	login   loginForm
	signup  signupForm
	onboard onboardForm
	intake  intakeForm
	profile profileForm
	market  marketState
	dash    dashState

	quitting bool
}

// New builds the root model.
func New(opts Options) Model {
	if opts.Session == nil {
		opts.Session = session.New()
	}
	if opts.Store == nil {
		opts.Store = store.NewMemorySeeded()
	}
	if opts.Insight == nil {
		opts.Insight = insight.WithFallback(insight.Static{}, 0)
	}
	if opts.Auth == nil {
		opts.Auth = &auth.Stub{}
	}
	if opts.Geocoder == nil {
		opts.Geocoder = geo.Static{Label: "Downtown"}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		styles:   DefaultStyles(),
		logger:   opts.Logger,
		sess:     opts.Session,
		listings: opts.Store,
		navg:     nav.New(opts.Session),
		insights: opts.Insight,
		authp:    opts.Auth,
		geocoder: opts.Geocoder,
		spinner:  sp,
		login:    newLoginForm(),
		signup:   newSignupForm(),
		onboard:  newOnboardForm(),
		intake:   newIntakeForm(),
		profile:  newProfileForm(),
		market:   newMarketState(),
	}
}

// Init starts the spinner ticker.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// View renders the current view.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.navg.Current() {
	case nav.ViewHome:
		return m.viewHome()
	case nav.ViewLogin:
		return m.viewLogin()
	case nav.ViewSignup:
		return m.viewSignup()
	case nav.ViewOnboarding:
		return m.viewOnboarding()
	case nav.ViewMarketplace:
		return m.viewMarketplace()
	case nav.ViewIntake:
		return m.viewIntake()
	case nav.ViewDashboard:
		return m.viewDashboard()
	case nav.ViewProfile:
		return m.viewProfile()
	case nav.ViewInfo:
		return m.viewInfo()
	default:
		return m.viewHome()
	}
}

// Update is the single mutation point for session, store and navigator.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case authResultMsg:
		return m.applyAuthResult(msg)

	case analysisMsg:
		return m.applyAnalysis(msg)

	case optimizeMsg:
		return m.applyOptimize(msg)

	case dashboardMsg:
		return m.applyDashboard(msg)

	case profileInsightMsg:
		return m.applyProfileInsight(msg)

	case geocodeMsg:
		return m.applyGeocode(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.updateKey(msg)
	}
	return m, nil
}

// updateKey dispatches a key press to the handler for the current view.
func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.navg.Current() {
	case nav.ViewHome:
		return m.updateHome(msg)
	case nav.ViewLogin:
		return m.updateLogin(msg)
	case nav.ViewSignup:
		return m.updateSignup(msg)
	case nav.ViewOnboarding:
		return m.updateOnboarding(msg)
	case nav.ViewMarketplace:
		return m.updateMarketplace(msg)
	case nav.ViewIntake:
		return m.updateIntake(msg)
	case nav.ViewDashboard:
		return m.updateDashboard(msg)
	case nav.ViewProfile:
		return m.updateProfile(msg)
	case nav.ViewInfo:
		return m.updateInfo(msg)
	}
	return m, nil
}

// navigate resolves the requested view, orphans in-flight requests, and
// runs the entry hook for the landed view.
func (m Model) navigate(requested nav.View) (Model, tea.Cmd) {
	m.gen++
	m.busy = false
	m.status = ""
	m.errMsg = ""
	landed := m.navg.Go(requested)
	if landed != requested {
		m.logger.Debug("navigation guarded",
			zap.String("requested", string(requested)),
			zap.String("resolved", string(landed)))
	}
	return m.enterView(landed)
}

// enterView runs the load hook for views with async content.
func (m Model) enterView(v nav.View) (Model, tea.Cmd) {
	switch v {
	case nav.ViewDashboard:
		return m.enterDashboard()
	case nav.ViewProfile:
		return m.enterProfile()
	case nav.ViewMarketplace:
		m.market.cursor = 0
		return m, nil
	case nav.ViewIntake:
		m.intake = newIntakeForm()
		return m.focusIntake(), nil
	case nav.ViewLogin:
		m.login = newLoginForm()
		return m.focusLogin(), nil
	case nav.ViewSignup:
		m.signup = newSignupForm()
		return m, nil
	case nav.ViewOnboarding:
		m.onboard = newOnboardForm()
		return m.focusOnboarding(), nil
	}
	return m, nil
}

// logout clears the session and forces the HOME transition.
func (m Model) logout() (Model, tea.Cmd) {
	m.gen++
	m.busy = false
	m.sess.Logout()
	m.navg.LoggedOut()
	m.status = "Signed out."
	m.logger.Info("session ended")
	return m, nil
}

// visibleListings reads the store through the marketplace filter.
func (m Model) visibleListings() []listing.Listing {
	all, err := m.listings.All()
	if err != nil {
		m.logger.Warn("listing read failed", zap.Error(err))
		return nil
	}
	return listing.Filter(all, m.market.selection)
}

// currentMetrics derives the insight prompt metrics from the store.
func (m Model) currentMetrics() insight.Metrics {
	all, err := m.listings.All()
	if err != nil {
		return insight.Metrics{}
	}
	stats := listing.ComputeStats(all)
	return insight.Metrics{
		ActiveNeeds: stats.ActiveNeeds,
		Matches:     stats.MatchesMade,
		Trend:       listing.TrendingCategory(all),
	}
}

// bg is the root context for collaborator commands. Cancellation is not
// modeled; superseded results are dropped by generation instead.
func (m Model) bg() context.Context {
	return context.Background()
}
