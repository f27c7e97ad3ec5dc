package ports

import (
	"context"

	"github.com/tripnest/travel-client/internal/core/domain"
)

// Credentials are the login form fields.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput mirrors the signup form, confirmation included.
type RegisterInput struct {
	Username        string `json:"username" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// ProfileInput holds the editable profile fields.
type ProfileInput struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
}

// SessionService manages many sessions keyed by an opaque session id.
// It backs multi-user front ends; single-user clients use service.Session directly.
type SessionService interface {
	Login(ctx context.Context, sid string, c Credentials) (*domain.Identity, error)
	// Current returns domain.ErrNotAuthenticated when sid has no identity.
	Current(ctx context.Context, sid string) (*domain.Identity, error)
	Logout(ctx context.Context, sid string)
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	UpdateProfile(ctx context.Context, sid string, in ProfileInput) (*domain.Identity, error)
}
