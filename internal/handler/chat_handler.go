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

// ChatHandler proxies chat messages to the backend
type ChatHandler struct {
	usecase domain.ChatUsecase
	logger  *slog.Logger
}

// NewChatHandler creates a chat handler
func NewChatHandler(usecase domain.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// Chat handles the chat proxy endpoint
//
//	@Summary		Send a chat message
//	@Description	Forwards a single message to the conference assistant backend and relays its answer unchanged
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChatRequest		true	"Chat message"
//	@Success		200		{object}	dto.ChatResponse	"Backend answer"
//	@Failure		400		{object}	dto.ErrorResponse	"Message is required"
//	@Failure		405		{object}	dto.ErrorResponse	"Method not allowed"
//	@Failure		500		{object}	dto.ErrorResponse	"Fallback answer"
//	@Router			/api/chat [post]
func (h *ChatHandler) Chat(ctx context.Context, c *app.RequestContext) {
	Write(c, h.Handle(ctx, string(c.Method()), c.Request.Body()))
}

// Handle runs the chat proxy independent of transport
func (h *ChatHandler) Handle(ctx context.Context, method string, body []byte) Reply {
	if method != consts.MethodPost {
		return methodNotAllowedReply()
	}

	var req dto.ChatRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		h.log(ctx).Warn("invalid chat request body", "error", err)
		return ErrorReply(consts.StatusBadRequest, msgMessageRequired)
	}

	reply, err := h.usecase.Chat(ctx, req.Message)
	if err != nil {
		if domain.IsInvalidInput(err) {
			return ErrorReply(consts.StatusBadRequest, domain.UserMessage(err, msgMessageRequired))
		}
		h.log(ctx).Error("chat request failed", "error", err)
		return fallbackReply()
	}

	return Reply{Status: consts.StatusOK, Body: reply.Raw}
}

// fallbackReply is the fixed answer for any upstream or unexpected failure
func fallbackReply() Reply {
	return JSONReply(consts.StatusInternalServerError, dto.ErrorResponse{
		Error:    msgFailedToProcess,
		Response: msgTechnicalDifficult,
	})
}

// log prefers the request-scoped logger set by the logging middleware
func (h *ChatHandler) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOr(ctx, h.logger)
}
