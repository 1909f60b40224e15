package nav

// View names one screen of the application. The set is closed; exactly one
// view is current at any time.
type View string

const (
	// ViewHome is the landing screen and the initial view.
	ViewHome View = "HOME"

	// ViewLogin is the existing-user sign-in form.
	ViewLogin View = "LOGIN"

	// ViewSignup is the new-user registration flow.
	ViewSignup View = "SIGNUP"

	// ViewOnboarding captures location and preferences after signup.
	ViewOnboarding View = "ONBOARDING"

	// ViewMarketplace is the filtered listing browser.
	ViewMarketplace View = "MARKETPLACE"

	// ViewIntake is the listing creation form.
	ViewIntake View = "INTAKE"

	// ViewDashboard shows community stats and insights.
	ViewDashboard View = "DASHBOARD"

	// ViewProfile shows and edits the current identity.
	ViewProfile View = "PROFILE"

	// ViewInfo is the static about/how-it-works page.
	ViewInfo View = "INFO"
)

// Views lists every view in the machine.
func Views() []View {
	return []View{
		ViewHome, ViewLogin, ViewSignup, ViewOnboarding, ViewMarketplace,
		ViewIntake, ViewDashboard, ViewProfile, ViewInfo,
	}
}

// RequiresIdentity reports whether the view sits behind the access guard.
func (v View) RequiresIdentity() bool {
	switch v {
	case ViewMarketplace, ViewIntake, ViewDashboard, ViewProfile:
		return true
	default:
		return false
	}
}
