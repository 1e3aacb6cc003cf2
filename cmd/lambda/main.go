// AIDA chat proxy as an AWS Lambda function behind API Gateway.
//
// Configuration comes from the environment only:
//
//	BACKEND_URL        chat backend base URL (default http://localhost:8000)
//	BACKEND_TIMEOUT    optional backend timeout, e.g. 30s (default: none)
//	SUPABASE_URL       auth provider URL
//	SUPABASE_ANON_KEY  auth provider public key
package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/aida-chat/internal/config"
	"github.com/lvyanru/aida-chat/internal/handler"
	"github.com/lvyanru/aida-chat/internal/infrastructure/backend"
	"github.com/lvyanru/aida-chat/internal/infrastructure/gotrue"
	"github.com/lvyanru/aida-chat/internal/usecase"
	"github.com/lvyanru/aida-chat/pkg/logger"
)

var (
	proxy    *app
	initOnce sync.Once
	initErr  error
)

// app routes API Gateway events to the transport-neutral handlers
type app struct {
	chat   handler.Endpoint
	auth   handler.Endpoint
	origin string
	logger *slog.Logger
}

func initialize() error {
	initOnce.Do(func() {
		proxy, initErr = newApp()
	})
	return initErr
}

func newApp() (*app, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Lambda ships stdout and stderr to CloudWatch
	appLogger, err := logger.New(cfg.Log, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	backendClient, err := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	if err != nil {
		return nil, fmt.Errorf("creating backend client: %w", err)
	}
	authClient, err := gotrue.NewClient(cfg.Auth.URL, cfg.Auth.AnonKey)
	if err != nil {
		return nil, fmt.Errorf("creating auth client: %w", err)
	}
	if !cfg.AuthConfigured() {
		appLogger.Warn("auth provider URL or key missing, signup will be unavailable")
	}

	origin := "*"
	if len(cfg.CORS.AllowedOrigins) == 1 {
		origin = cfg.CORS.AllowedOrigins[0]
	}

	appLogger.Info("lambda initialized", "backend_url", cfg.Backend.BaseURL)

	return &app{
		chat:   handler.NewChatHandler(usecase.NewChatUsecase(backendClient, appLogger), appLogger),
		auth:   handler.NewAuthHandler(usecase.NewAuthUsecase(authClient, appLogger), appLogger),
		origin: origin,
		logger: appLogger,
	}, nil
}

func (a *app) handle(ctx context.Context, req events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	if req.HTTPMethod == consts.MethodOptions {
		return a.respond(handler.Reply{Status: consts.StatusNoContent})
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			a.logger.Warn("invalid base64 body", "path", req.Path, "error", err)
			return a.respond(handler.ErrorReply(consts.StatusBadRequest, "Invalid request body"))
		}
		body = decoded
	}

	path := strings.TrimRight(req.Path, "/")
	var reply handler.Reply
	switch {
	case strings.HasSuffix(path, "/api/chat"):
		reply = a.chat.Handle(ctx, req.HTTPMethod, body)
	case strings.HasSuffix(path, "/api/auth"):
		reply = a.auth.Handle(ctx, req.HTTPMethod, body)
	default:
		reply = handler.NotFoundReply()
	}

	a.logger.Info("request completed",
		"request_id", req.RequestContext.RequestID,
		"method", req.HTTPMethod,
		"path", req.Path,
		"status", reply.Status,
	)
	return a.respond(reply)
}

func (a *app) respond(reply handler.Reply) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: reply.Status,
		Headers: map[string]string{
			"Content-Type":                 "application/json; charset=utf-8",
			"Access-Control-Allow-Origin":  a.origin,
			"Access-Control-Allow-Methods": "POST, OPTIONS",
			"Access-Control-Allow-Headers": "Content-Type",
		},
		Body: string(reply.Body),
	}
}

func handleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if err := initialize(); err != nil {
		log.Printf("init error: %v", err)
		return events.APIGatewayProxyResponse{
			StatusCode: consts.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json; charset=utf-8"},
			Body:       `{"error":"Failed to process request","response":"I'm sorry, I'm having technical difficulties. Please try again."}`,
		}, nil
	}
	return proxy.handle(ctx, req), nil
}

func main() {
	lambda.Start(handleRequest)
}
