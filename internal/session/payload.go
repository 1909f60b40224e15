package session

import (
	"fmt"
	"strings"
)

// LoginPayload carries the fields an existing user submits. It is validated
// at the boundary before any auth call is made.
type LoginPayload struct {
	Email    string
	Password string
}

// Validate checks the login form fields.
func (p LoginPayload) Validate() error {
	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(p.Email, "@") {
		return fmt.Errorf("email %q is not an address", p.Email)
	}
	if p.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// SignupPayload carries the fields a new user submits, including the chosen
// role. Distinct from LoginPayload so the two paths cannot be confused.
type SignupPayload struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

// Validate checks the signup form fields.
func (p SignupPayload) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if !strings.Contains(p.Email, "@") {
		return fmt.Errorf("email %q is not an address", p.Email)
	}
	if p.Password == "" {
		return fmt.Errorf("password is required")
	}
	if !p.Role.Valid() {
		return fmt.Errorf("choose a role before signing up")
	}
	return nil
}
