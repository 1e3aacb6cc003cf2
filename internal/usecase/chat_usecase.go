package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/lvyanru/aida-chat/internal/domain"
)

// chatUsecase implements domain.ChatUsecase.
// Every call is stateless: only the latest message reaches the backend.
type chatUsecase struct {
	backend domain.BackendClient
	logger  *slog.Logger
}

// NewChatUsecase creates a chat usecase.
//
// Parameters:
//   - backend: client for the external chat backend
//   - logger: structured logger; upstream failures are logged here and
//     never returned to the caller verbatim
func NewChatUsecase(backend domain.BackendClient, logger *slog.Logger) domain.ChatUsecase {
	return &chatUsecase{
		backend: backend,
		logger:  logger,
	}
}

// Chat validates message and forwards it to the backend in a single attempt.
//
// Returns:
//   - *domain.ChatReply: the backend answer, Raw holding its exact body
//   - error: ErrInvalidInput for an empty message, ErrUpstream for any
//     backend or network failure
func (u *chatUsecase) Chat(ctx context.Context, message string) (*domain.ChatReply, error) {
	// Whitespace counts as content; only the empty string is rejected
	if message == "" {
		return nil, domain.NewInvalidInputError("Message is required")
	}

	start := time.Now()
	reply, err := u.backend.Chat(ctx, message)
	if err != nil {
		u.logger.Error("chat backend call failed",
			"error", err,
			"message_len", len(message),
			"duration", time.Since(start),
		)
		return nil, domain.NewUpstreamError(err)
	}

	u.logger.Debug("chat backend call succeeded",
		"duration", time.Since(start),
		"sources", len(reply.Sources),
		"empty_response", strings.TrimSpace(reply.Response) == "",
	)
	return reply, nil
}
