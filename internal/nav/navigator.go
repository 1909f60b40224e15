// Package nav resolves requested views against the current session. The
// guard rules live in Resolve, a pure function; Navigator adds the single
// piece of state the machine owns, the currently resolved view, plus the
// forced transitions that follow specific user actions.
package nav

import "handouts/internal/session"

// Resolve maps a requested view to the view actually shown.
//
// Guards:
//  1. Views behind the access guard resolve to LOGIN while anonymous.
//  2. ONBOARDING resolves to HOME while anonymous; there is nobody to
//     onboard.
//  3. Everything else resolves to itself.
func Resolve(requested View, s *session.Session) View {
	if s.Authenticated() {
		return requested
	}
	if requested.RequiresIdentity() {
		return ViewLogin
	}
	if requested == ViewOnboarding {
		return ViewHome
	}
	return requested
}

// Navigator tracks the current view for one session. It has no hidden
// state beyond the session it reads and the view it writes.
type Navigator struct {
	session *session.Session
	current View
}

// New starts the machine at HOME.
func New(s *session.Session) *Navigator {
	return &Navigator{session: s, current: ViewHome}
}

// Current returns the view being shown.
func (n *Navigator) Current() View {
	return n.current
}

// Go resolves requested against the session, makes the result current, and
// returns it.
func (n *Navigator) Go(requested View) View {
	n.current = Resolve(requested, n.session)
	return n.current
}

// LoggedIn applies the post-auth override: new users are forced into
// onboarding, existing users land on the marketplace.
func (n *Navigator) LoggedIn(isNewUser bool) View {
	if isNewUser {
		n.current = ViewOnboarding
	} else {
		n.current = ViewMarketplace
	}
	return n.current
}

// OnboardingComplete forces the transition to the marketplace.
func (n *Navigator) OnboardingComplete() View {
	n.current = ViewMarketplace
	return n.current
}

// LoggedOut forces the transition back to the landing screen.
func (n *Navigator) LoggedOut() View {
	n.current = ViewHome
	return n.current
}
