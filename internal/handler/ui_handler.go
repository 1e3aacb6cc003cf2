package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/aida-chat/internal/web"
)

// UIHandler serves the browser chat page
type UIHandler struct {
	index []byte
}

// NewUIHandler creates a UI handler
func NewUIHandler() *UIHandler {
	return &UIHandler{index: web.Index()}
}

// Index serves the chat page
func (h *UIHandler) Index(ctx context.Context, c *app.RequestContext) {
	c.Data(consts.StatusOK, "text/html; charset=utf-8", h.index)
}
