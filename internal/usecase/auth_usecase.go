package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lvyanru/aida-chat/internal/domain"
)

const providerUnreachableMessage = "Unable to reach the authentication service"

// authUsecase implements domain.AuthUsecase
type authUsecase struct {
	provider domain.AuthProvider
	logger   *slog.Logger
}

// NewAuthUsecase creates an auth usecase backed by provider
func NewAuthUsecase(provider domain.AuthProvider, logger *slog.Logger) domain.AuthUsecase {
	return &authUsecase{
		provider: provider,
		logger:   logger,
	}
}

// SignUp forwards the credentials to the provider exactly once. Email and
// password are not checked locally; the provider's answer decides.
func (u *authUsecase) SignUp(ctx context.Context, email, password string) error {
	err := u.provider.SignUp(ctx, email, password)
	if err == nil {
		u.logger.Info("user signed up")
		return nil
	}

	if errors.Is(err, domain.ErrAuthNotConfigured) {
		u.logger.Error("signup attempted without auth provider configuration")
		return domain.NewInternalError(err)
	}

	var rejection domain.ProviderRejection
	if errors.As(err, &rejection) {
		u.logger.Warn("auth provider rejected signup", "error", err)
		return domain.NewProviderError(rejection.ProviderMessage(), err)
	}

	u.logger.Error("auth provider call failed", "error", err)
	return domain.NewProviderError(providerUnreachableMessage, err)
}
