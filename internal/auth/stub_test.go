package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"handouts/internal/session"
)

func TestAuthenticateReturnsGiverIdentity(t *testing.T) {
	s := &Stub{} // zero delay: deterministic
	id, err := s.Authenticate(context.Background(), session.LoginPayload{
		Email:    "jane.doe@example.com",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if id.Role != session.RoleGiver {
		t.Fatalf("stub login should return the giver role, got %s", id.Role)
	}
	if id.Name != "Jane Doe" {
		t.Fatalf("display name not derived from email: %q", id.Name)
	}
}

func TestAuthenticateRejectsBadPayload(t *testing.T) {
	s := &Stub{}
	_, err := s.Authenticate(context.Background(), session.LoginPayload{Email: "nope"})
	if err == nil {
		t.Fatalf("expected auth error")
	}
	var aerr *AuthError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected *AuthError, got %T", err)
	}
}

func TestRegisterEchoesChosenRole(t *testing.T) {
	s := &Stub{}
	id, err := s.Register(context.Background(), session.SignupPayload{
		Name:     "New Person",
		Email:    "new@example.com",
		Password: "secret",
		Role:     session.RoleNeeder,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id.Role != session.RoleNeeder || id.Name != "New Person" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestDelayHonorsContextCancellation(t *testing.T) {
	s := &Stub{Delay: time.Minute}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Authenticate(ctx, session.LoginPayload{Email: "a@b.c", Password: "x"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
