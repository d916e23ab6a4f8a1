// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"postboard/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Password string
	// ConfirmationBaseURL is the scheme and host the confirmation link points at.
	ConfirmationBaseURL string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the stored user and the link that confirms it.
type RegisterOutput struct {
	User            *entity.User
	ConfirmationURL string
}

// LoginOutput carries the bearer token issued after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
}

// AuthUsecase defines the registration, confirmation and login flow.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Confirm(ctx context.Context, token string) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

// IdentityUsecase resolves bearer tokens to users and exposes the user listing.
type IdentityUsecase interface {
	Resolve(ctx context.Context, accessToken string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
