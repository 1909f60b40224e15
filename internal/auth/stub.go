package auth

import (
	"context"
	"strings"
	"time"

	"handouts/internal/session"
)

// DefaultDelay matches the fixed timer the original demo used to fake a
// network round trip.
const DefaultDelay = 1500 * time.Millisecond

// Stub is the demo provider: every well-formed request succeeds after a
// fixed delay. With a zero delay it is the deterministic test double.
//
// Existing-user logins come back as a giver named from the email and skip
// onboarding. That is stubbed demo behavior, not a lookup; a real provider
// would return the stored role.
type Stub struct {
	Delay time.Duration
}

// NewStub returns a provider with the demo delay.
func NewStub() *Stub {
	return &Stub{Delay: DefaultDelay}
}

func (s *Stub) wait(ctx context.Context) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Authenticate validates the payload and fabricates the demo identity.
func (s *Stub) Authenticate(ctx context.Context, p session.LoginPayload) (session.Identity, error) {
	if err := p.Validate(); err != nil {
		return session.Identity{}, &AuthError{Reason: err.Error()}
	}
	if err := s.wait(ctx); err != nil {
		return session.Identity{}, err
	}
	return session.Identity{
		Name:  displayName(p.Email),
		Email: p.Email,
		Role:  session.RoleGiver,
	}, nil
}

// Register validates the payload and returns the identity the user typed.
func (s *Stub) Register(ctx context.Context, p session.SignupPayload) (session.Identity, error) {
	if err := p.Validate(); err != nil {
		return session.Identity{}, &AuthError{Reason: err.Error()}
	}
	if err := s.wait(ctx); err != nil {
		return session.Identity{}, err
	}
	return session.Identity{
		Name:  p.Name,
		Email: p.Email,
		Role:  p.Role,
	}, nil
}

// displayName derives a friendly name from the email local part.
func displayName(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return "Demo User"
	}
	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
