package nav

import (
	"testing"

	"handouts/internal/session"
)

func anonymous() *session.Session {
	return session.New()
}

func authenticated() *session.Session {
	s := session.New()
	s.Login(session.Identity{Name: "Demo User", Email: "demo@example.com", Role: session.RoleGiver}, false)
	return s
}

func TestGuardedViewsResolveToLoginWhileAnonymous(t *testing.T) {
	s := anonymous()
	for _, v := range []View{ViewMarketplace, ViewIntake, ViewDashboard, ViewProfile} {
		if got := Resolve(v, s); got != ViewLogin {
			t.Fatalf("anonymous request for %s resolved to %s, want LOGIN", v, got)
		}
	}
}

func TestOnboardingResolvesToHomeWhileAnonymous(t *testing.T) {
	if got := Resolve(ViewOnboarding, anonymous()); got != ViewHome {
		t.Fatalf("anonymous onboarding resolved to %s, want HOME", got)
	}
}

func TestUnguardedViewsResolveToThemselvesWhileAnonymous(t *testing.T) {
	s := anonymous()
	for _, v := range []View{ViewHome, ViewLogin, ViewSignup, ViewInfo} {
		if got := Resolve(v, s); got != v {
			t.Fatalf("anonymous request for %s resolved to %s", v, got)
		}
	}
}

func TestEveryViewResolvesToItselfOnceAuthenticated(t *testing.T) {
	s := authenticated()
	for _, v := range Views() {
		if got := Resolve(v, s); got != v {
			t.Fatalf("authenticated request for %s resolved to %s", v, got)
		}
	}
}

func TestNavigatorStartsAtHome(t *testing.T) {
	n := New(anonymous())
	if n.Current() != ViewHome {
		t.Fatalf("initial view is %s, want HOME", n.Current())
	}
}

func TestSignupForcesOnboardingRegardlessOfRole(t *testing.T) {
	for _, role := range []session.Role{session.RoleGiver, session.RoleNeeder} {
		s := session.New()
		n := New(s)
		s.Login(session.Identity{Name: "New", Email: "new@example.com", Role: role}, true)
		if got := n.LoggedIn(true); got != ViewOnboarding {
			t.Fatalf("signup as %s landed on %s, want ONBOARDING", role, got)
		}
	}
}

func TestExistingUserLoginForcesMarketplace(t *testing.T) {
	s := session.New()
	n := New(s)
	s.Login(session.Identity{Name: "Demo", Email: "demo@example.com", Role: session.RoleGiver}, false)
	if got := n.LoggedIn(false); got != ViewMarketplace {
		t.Fatalf("login landed on %s, want MARKETPLACE", got)
	}
}

func TestOnboardingCompleteForcesMarketplace(t *testing.T) {
	s := authenticated()
	n := New(s)
	if got := n.OnboardingComplete(); got != ViewMarketplace {
		t.Fatalf("onboarding completion landed on %s, want MARKETPLACE", got)
	}
}

func TestLogoutRestoresAnonymousGuards(t *testing.T) {
	s := session.New()
	n := New(s)
	s.Login(session.Identity{Name: "Demo", Email: "demo@example.com", Role: session.RoleGiver}, false)
	n.LoggedIn(false)

	s.Logout()
	if got := n.LoggedOut(); got != ViewHome {
		t.Fatalf("logout landed on %s, want HOME", got)
	}
	// Subsequent requests behave as if never authenticated.
	if got := n.Go(ViewDashboard); got != ViewLogin {
		t.Fatalf("post-logout dashboard request resolved to %s, want LOGIN", got)
	}
	if got := n.Go(ViewOnboarding); got != ViewHome {
		t.Fatalf("post-logout onboarding request resolved to %s, want HOME", got)
	}
}

func TestGoTracksResolvedView(t *testing.T) {
	s := authenticated()
	n := New(s)
	if got := n.Go(ViewDashboard); got != ViewDashboard {
		t.Fatalf("go resolved to %s", got)
	}
	if n.Current() != ViewDashboard {
		t.Fatalf("current not updated: %s", n.Current())
	}
}
