package session

import (
	"testing"

	"handouts/internal/listing"
)

func TestNewSessionIsAnonymous(t *testing.T) {
	s := New()
	if s.Authenticated() {
		t.Fatalf("fresh session should be anonymous")
	}
	if s.Onboarded() {
		t.Fatalf("fresh session cannot be onboarded")
	}
}

func TestLoginNewUserOwesOnboarding(t *testing.T) {
	s := New()
	s.Login(Identity{Name: "New", Email: "n@example.com", Role: RoleNeeder}, true)
	if !s.Authenticated() {
		t.Fatalf("login did not install identity")
	}
	if s.Onboarded() {
		t.Fatalf("new user should not be onboarded yet")
	}
	if s.Identity().JoinedAt.IsZero() {
		t.Fatalf("login should stamp JoinedAt")
	}
}

func TestLoginExistingUserSkipsOnboarding(t *testing.T) {
	s := New()
	s.Login(Identity{Name: "Demo", Email: "d@example.com", Role: RoleGiver}, false)
	if !s.Onboarded() {
		t.Fatalf("existing user should be treated as onboarded")
	}
}

func TestCompleteOnboardingMergesRoleFields(t *testing.T) {
	s := New()
	s.Login(Identity{Name: "N", Email: "n@example.com", Role: RoleNeeder}, true)
	s.CompleteOnboarding(Identity{
		Location:      "Downtown",
		Preferences:   []listing.Category{listing.CategoryFood, listing.CategoryBaby},
		HouseholdSize: 4,
		HelpFrequency: "Weekly", // giver field, must be ignored for needers
	})
	id := s.Identity()
	if !s.Onboarded() {
		t.Fatalf("onboarding did not complete")
	}
	if id.Location != "Downtown" || id.HouseholdSize != 4 {
		t.Fatalf("needer fields not merged: %+v", id)
	}
	if id.HelpFrequency != "" {
		t.Fatalf("giver field leaked onto a needer: %+v", id)
	}
}

func TestCompleteOnboardingGiverKeepsFrequency(t *testing.T) {
	s := New()
	s.Login(Identity{Name: "G", Email: "g@example.com", Role: RoleGiver}, true)
	s.CompleteOnboarding(Identity{Location: "West End", HelpFrequency: "Monthly", HouseholdSize: 3})
	id := s.Identity()
	if id.HelpFrequency != "Monthly" {
		t.Fatalf("giver frequency not merged: %+v", id)
	}
	if id.HouseholdSize != 0 {
		t.Fatalf("needer field leaked onto a giver: %+v", id)
	}
}

func TestCompleteOnboardingIsNoOpWhileAnonymous(t *testing.T) {
	s := New()
	s.CompleteOnboarding(Identity{Location: "Nowhere"})
	if s.Onboarded() || s.Authenticated() {
		t.Fatalf("anonymous onboarding must not change state")
	}
}

func TestUpdateProfileDoesNotTouchOnboarded(t *testing.T) {
	s := New()
	s.Login(Identity{Name: "N", Email: "n@example.com", Role: RoleNeeder}, true)
	s.UpdateProfile(Identity{Name: "Renamed", Location: "North York"})
	if s.Onboarded() {
		t.Fatalf("profile update flipped onboarded")
	}
	if id := s.Identity(); id.Name != "Renamed" || id.Location != "North York" {
		t.Fatalf("profile fields not merged: %+v", id)
	}
	if s.Identity().Email != "n@example.com" {
		t.Fatalf("empty fields must not overwrite")
	}
}

func TestLogoutResetsEverything(t *testing.T) {
	s := New()
	s.Login(Identity{Name: "Demo", Email: "d@example.com", Role: RoleGiver}, false)
	s.Logout()
	if s.Authenticated() || s.Onboarded() {
		t.Fatalf("logout did not reset session")
	}
}

func TestPayloadValidation(t *testing.T) {
	if err := (LoginPayload{Email: "a@b.c", Password: "x"}).Validate(); err != nil {
		t.Fatalf("valid login payload rejected: %v", err)
	}
	if err := (LoginPayload{Email: "not-an-address", Password: "x"}).Validate(); err == nil {
		t.Fatalf("malformed email accepted")
	}
	if err := (SignupPayload{Name: "N", Email: "a@b.c", Password: "x", Role: RoleNeeder}).Validate(); err != nil {
		t.Fatalf("valid signup payload rejected: %v", err)
	}
	if err := (SignupPayload{Name: "N", Email: "a@b.c", Password: "x"}).Validate(); err == nil {
		t.Fatalf("signup without role accepted")
	}
}
