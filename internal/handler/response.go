package handler

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/aida-chat/internal/handler/dto"
)

const contentTypeJSON = "application/json; charset=utf-8"

// User-facing messages
const (
	msgMethodNotAllowed   = "Method not allowed"
	msgMessageRequired    = "Message is required"
	msgFailedToProcess    = "Failed to process request"
	msgTechnicalDifficult = "I'm sorry, I'm having technical difficulties. Please try again."
	msgInvalidBody        = "Invalid request body"
	msgSignupSuccess      = "User registered successfully"
	msgInternalError      = "Internal server error"
	msgNotFound           = "Not found"
)

// Reply is a transport-neutral HTTP answer. Body is always JSON.
type Reply struct {
	Status int
	Body   []byte
}

// Endpoint is implemented by handlers that can be served by any transport
type Endpoint interface {
	Handle(ctx context.Context, method string, body []byte) Reply
}

// internalErrorBody is written when a reply cannot be encoded
var internalErrorBody = []byte(`{"error":"Internal server error"}`)

// JSONReply encodes v as the reply body
func JSONReply(status int, v interface{}) Reply {
	body, err := sonic.Marshal(v)
	if err != nil {
		return Reply{Status: consts.StatusInternalServerError, Body: internalErrorBody}
	}
	return Reply{Status: status, Body: body}
}

// ErrorReply builds {"error": message}
func ErrorReply(status int, message string) Reply {
	return JSONReply(status, dto.ErrorResponse{Error: message})
}

// NotFoundReply is returned for unknown routes
func NotFoundReply() Reply {
	return ErrorReply(consts.StatusNotFound, msgNotFound)
}

func methodNotAllowedReply() Reply {
	return ErrorReply(consts.StatusMethodNotAllowed, msgMethodNotAllowed)
}

// Write sends reply through hertz
func Write(c *app.RequestContext, reply Reply) {
	c.Data(reply.Status, contentTypeJSON, reply.Body)
}
