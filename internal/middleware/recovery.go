package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// panicBody carries the same apology the chat endpoint uses for upstream
// failures, so the browser still has text to show
var panicBody = []byte(`{"error":"Failed to process request","response":"I'm sorry, I'm having technical difficulties. Please try again."}`)

// Recovery turns a handler panic into a logged 500
func Recovery(logger *slog.Logger) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					"request_id", GetRequestID(c),
					"method", string(c.Method()),
					"path", string(c.Path()),
					"panic", fmt.Sprintf("%v", err),
					"stack", string(debug.Stack()),
				)

				c.Data(consts.StatusInternalServerError, "application/json; charset=utf-8", panicBody)
				c.Abort()
			}
		}()

		c.Next(ctx)
	}
}
