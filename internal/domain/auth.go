package domain

import (
	"context"
	"errors"
)

// ErrAuthNotConfigured is returned when the auth provider URL or key is missing
var ErrAuthNotConfigured = errors.New("auth provider is not configured")

// AuthProvider is the third-party account service. It owns the account
// record; nothing is persisted locally.
type AuthProvider interface {
	// SignUp registers a new account
	SignUp(ctx context.Context, email, password string) error
}

// ProviderRejection is an error from the provider that carries a message
// meant for the user, e.g. "User already registered"
type ProviderRejection interface {
	error
	ProviderMessage() string
}

// AuthUsecase handles account signup
type AuthUsecase interface {
	// SignUp forwards the credentials to the provider once, without local validation
	SignUp(ctx context.Context, email, password string) error
}
