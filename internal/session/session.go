// Package session holds the current user's authentication and onboarding
// state. A Session is created empty at startup, populated by login/signup,
// and cleared by logout. It raises no errors of its own; callers (the
// navigator and the views) guard operations that require an identity.
package session

import (
	"time"

	"handouts/internal/listing"
)

// Role is the declared purpose of an account.
type Role string

const (
	// RoleGiver marks a user offering items.
	RoleGiver Role = "GIVER"

	// RoleNeeder marks a user requesting items.
	RoleNeeder Role = "NEEDER"

	// RoleUnset is the zero role before a user has chosen a path.
	RoleUnset Role = ""
)

// Valid reports whether the role is one of the two declared roles.
func (r Role) Valid() bool {
	return r == RoleGiver || r == RoleNeeder
}

// Identity is the authenticated user record. Location, Preferences and the
// role-specific fields are filled in by onboarding.
type Identity struct {
	Name     string
	Email    string
	Role     Role
	Location string

	// Preferences are the categories the user cares about.
	Preferences []listing.Category

	// HouseholdSize is meaningful for needers only.
	HouseholdSize int

	// HelpFrequency is meaningful for givers only (e.g. "Weekly").
	HelpFrequency string

	JoinedAt time.Time
}

// Session is the process-wide authentication state. It is owned by the root
// TUI model and mutated only from the Update loop.
type Session struct {
	identity  *Identity
	onboarded bool
}

// New returns an empty, anonymous session.
func New() *Session {
	return &Session{}
}

// Identity returns the current identity, or nil when anonymous.
func (s *Session) Identity() *Identity {
	return s.identity
}

// Authenticated reports whether an identity is present.
func (s *Session) Authenticated() bool {
	return s.identity != nil
}

// Onboarded reports whether onboarding has been completed. It can only be
// true while an identity is present.
func (s *Session) Onboarded() bool {
	return s.identity != nil && s.onboarded
}

// Login installs an identity. New users still owe us onboarding; existing
// users are treated as already onboarded.
func (s *Session) Login(id Identity, isNewUser bool) {
	if id.JoinedAt.IsZero() {
		id.JoinedAt = time.Now()
	}
	s.identity = &id
	s.onboarded = !isNewUser
}

// CompleteOnboarding merges the captured location, preferences and
// role-specific attributes and marks the session onboarded. It is a no-op
// on an anonymous session.
func (s *Session) CompleteOnboarding(update Identity) {
	if s.identity == nil {
		return
	}
	s.identity.Location = update.Location
	s.identity.Preferences = update.Preferences
	switch s.identity.Role {
	case RoleNeeder:
		s.identity.HouseholdSize = update.HouseholdSize
	case RoleGiver:
		s.identity.HelpFrequency = update.HelpFrequency
	}
	s.onboarded = true
}

// UpdateProfile merges non-empty fields from partial into the identity
// without touching the onboarded flag. A no-op on an anonymous session.
func (s *Session) UpdateProfile(partial Identity) {
	if s.identity == nil {
		return
	}
	if partial.Name != "" {
		s.identity.Name = partial.Name
	}
	if partial.Location != "" {
		s.identity.Location = partial.Location
	}
	if partial.Preferences != nil {
		s.identity.Preferences = partial.Preferences
	}
	if partial.HouseholdSize > 0 {
		s.identity.HouseholdSize = partial.HouseholdSize
	}
	if partial.HelpFrequency != "" {
		s.identity.HelpFrequency = partial.HelpFrequency
	}
}

// Logout resets the session to anonymous.
func (s *Session) Logout() {
	s.identity = nil
	s.onboarded = false
}
