package handler

import (
	"context"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/aida-chat/internal/domain"
	"github.com/lvyanru/aida-chat/internal/handler/dto"
	"github.com/lvyanru/aida-chat/pkg/logger"
)

// AuthHandler handles account signup
type AuthHandler struct {
	usecase domain.AuthUsecase
	logger  *slog.Logger
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(usecase domain.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// SignUp handles the signup endpoint
//
//	@Summary		Register a new account
//	@Description	Forwards email and password to the auth provider. Provider rejections are relayed as 400.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SignupRequest	true	"Signup credentials"
//	@Success		200		{object}	dto.SignupResponse
//	@Failure		400		{object}	dto.ErrorResponse	"Provider message or invalid body"
//	@Failure		405		{object}	dto.ErrorResponse	"Method not allowed"
//	@Failure		500		{object}	dto.ErrorResponse	"Provider not configured"
//	@Router			/api/auth [post]
func (h *AuthHandler) SignUp(ctx context.Context, c *app.RequestContext) {
	Write(c, h.Handle(ctx, string(c.Method()), c.Request.Body()))
}

// Handle runs signup independent of transport
func (h *AuthHandler) Handle(ctx context.Context, method string, body []byte) Reply {
	if method != consts.MethodPost {
		return methodNotAllowedReply()
	}

	var req dto.SignupRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		h.log(ctx).Warn("invalid signup request body", "error", err)
		return ErrorReply(consts.StatusBadRequest, msgInvalidBody)
	}

	if err := h.usecase.SignUp(ctx, req.Email, req.Password); err != nil {
		if domain.IsProvider(err) {
			return ErrorReply(consts.StatusBadRequest, domain.UserMessage(err, msgInternalError))
		}
		h.log(ctx).Error("signup failed", "error", err)
		return ErrorReply(consts.StatusInternalServerError, msgInternalError)
	}

	return JSONReply(consts.StatusOK, dto.SignupResponse{Message: msgSignupSuccess})
}

// log prefers the request-scoped logger set by the logging middleware
func (h *AuthHandler) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOr(ctx, h.logger)
}
