// Package auth is the authentication collaborator boundary. The demo ships
// only the Stub provider, which always succeeds after a configurable delay;
// real credential checks live behind the same interface when they arrive.
package auth

import (
	"context"

	"handouts/internal/session"
)

// Provider authenticates existing users and registers new ones. Failures
// surface as *AuthError; the session is never touched on failure.
type Provider interface {
	Authenticate(ctx context.Context, p session.LoginPayload) (session.Identity, error)
	Register(ctx context.Context, p session.SignupPayload) (session.Identity, error)
}

// AuthError is a user-visible authentication failure.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "authentication failed: " + e.Reason
}
