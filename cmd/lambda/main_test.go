package main

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/lvyanru/aida-chat/internal/domain"
	"github.com/lvyanru/aida-chat/internal/domain/mocks"
	"github.com/lvyanru/aida-chat/internal/handler"
	"github.com/lvyanru/aida-chat/internal/usecase"
)

func newTestApp(backend *mocks.MockBackendClient, provider *mocks.MockAuthProvider) *app {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return &app{
		chat:   handler.NewChatHandler(usecase.NewChatUsecase(backend, logger), logger),
		auth:   handler.NewAuthHandler(usecase.NewAuthUsecase(provider, logger), logger),
		origin: "*",
		logger: logger,
	}
}

func TestHandleRouting(t *testing.T) {
	backend := &mocks.MockBackendClient{
		ChatFunc: func(ctx context.Context, message string) (*domain.ChatReply, error) {
			return &domain.ChatReply{Raw: []byte(`{"response":"pong"}`), Response: "pong"}, nil
		},
	}
	provider := &mocks.MockAuthProvider{}
	a := newTestApp(backend, provider)

	tests := []struct {
		name       string
		req        events.APIGatewayProxyRequest
		wantStatus int
		wantBody   string
	}{
		{
			name:       "chat",
			req:        events.APIGatewayProxyRequest{HTTPMethod: "POST", Path: "/api/chat", Body: `{"message":"ping"}`},
			wantStatus: 200,
			wantBody:   `{"response":"pong"}`,
		},
		{
			name:       "chat with stage prefix",
			req:        events.APIGatewayProxyRequest{HTTPMethod: "POST", Path: "/prod/api/chat/", Body: `{"message":"ping"}`},
			wantStatus: 200,
			wantBody:   `{"response":"pong"}`,
		},
		{
			name: "chat base64 body",
			req: events.APIGatewayProxyRequest{
				HTTPMethod:      "POST",
				Path:            "/api/chat",
				Body:            base64.StdEncoding.EncodeToString([]byte(`{"message":"ping"}`)),
				IsBase64Encoded: true,
			},
			wantStatus: 200,
			wantBody:   `{"response":"pong"}`,
		},
		{
			name:       "chat wrong method",
			req:        events.APIGatewayProxyRequest{HTTPMethod: "GET", Path: "/api/chat"},
			wantStatus: 405,
			wantBody:   `{"error":"Method not allowed"}`,
		},
		{
			name:       "signup",
			req:        events.APIGatewayProxyRequest{HTTPMethod: "POST", Path: "/api/auth", Body: `{"email":"a@b.c","password":"pw"}`},
			wantStatus: 200,
			wantBody:   `{"message":"User registered successfully"}`,
		},
		{
			name:       "unknown path",
			req:        events.APIGatewayProxyRequest{HTTPMethod: "POST", Path: "/api/other"},
			wantStatus: 404,
			wantBody:   `{"error":"Not found"}`,
		},
		{
			name:       "bad base64",
			req:        events.APIGatewayProxyRequest{HTTPMethod: "POST", Path: "/api/chat", Body: "%%%", IsBase64Encoded: true},
			wantStatus: 400,
			wantBody:   `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := a.handle(context.Background(), tt.req)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if resp.Body != tt.wantBody {
				t.Errorf("body = %s, want %s", resp.Body, tt.wantBody)
			}
			if resp.Headers["Content-Type"] == "" {
				t.Error("missing Content-Type header")
			}
		})
	}
}

func TestHandleUpstreamFallback(t *testing.T) {
	backend := &mocks.MockBackendClient{
		ChatFunc: func(ctx context.Context, message string) (*domain.ChatReply, error) {
			return nil, errors.New("timeout")
		},
	}
	a := newTestApp(backend, &mocks.MockAuthProvider{})

	resp := a.handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "POST", Path: "/api/chat", Body: `{"message":"hi"}`})

	want := `{"error":"Failed to process request","response":"I'm sorry, I'm having technical difficulties. Please try again."}`
	if resp.StatusCode != 500 || resp.Body != want {
		t.Errorf("got %d %s", resp.StatusCode, resp.Body)
	}
}

func TestHandlePreflight(t *testing.T) {
	a := newTestApp(&mocks.MockBackendClient{}, &mocks.MockAuthProvider{})

	resp := a.handle(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: "OPTIONS", Path: "/api/chat"})
	if resp.StatusCode != 204 {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Errorf("allow origin = %q", resp.Headers["Access-Control-Allow-Origin"])
	}
}
