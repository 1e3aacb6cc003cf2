package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/lvyanru/aida-chat/internal/domain"
	"github.com/lvyanru/aida-chat/internal/domain/mocks"
	"github.com/lvyanru/aida-chat/internal/infrastructure/backend"
	"github.com/lvyanru/aida-chat/internal/usecase"
)

const fallbackText = "I'm sorry, I'm having technical difficulties. Please try again."

func newChatHandler(backend *mocks.MockBackendClient) *ChatHandler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewChatHandler(usecase.NewChatUsecase(backend, logger), logger)
}

func decodeBody(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	if err := sonic.Unmarshal(body, &m); err != nil {
		t.Fatalf("body is not a JSON object: %s", body)
	}
	return m
}

func TestChatHandle(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		body       string
		chatFunc   func(ctx context.Context, message string) (*domain.ChatReply, error)
		wantStatus int
		wantError  string
		wantCalls  int
	}{
		{name: "GET rejected", method: "GET", body: `{"message":"hi"}`, wantStatus: 405, wantError: "Method not allowed"},
		{name: "PUT rejected", method: "PUT", body: `{"message":"hi"}`, wantStatus: 405, wantError: "Method not allowed"},
		{name: "DELETE rejected", method: "DELETE", wantStatus: 405, wantError: "Method not allowed"},
		{name: "missing message", method: "POST", body: `{}`, wantStatus: 400, wantError: "Message is required"},
		{name: "empty message", method: "POST", body: `{"message":""}`, wantStatus: 400, wantError: "Message is required"},
		{name: "number message", method: "POST", body: `{"message":42}`, wantStatus: 400, wantError: "Message is required"},
		{name: "array message", method: "POST", body: `{"message":["hi"]}`, wantStatus: 400, wantError: "Message is required"},
		{name: "null message", method: "POST", body: `{"message":null}`, wantStatus: 400, wantError: "Message is required"},
		{name: "not json", method: "POST", body: `message=hi`, wantStatus: 400, wantError: "Message is required"},
		{name: "empty body", method: "POST", body: ``, wantStatus: 400, wantError: "Message is required"},
		{
			name:   "backend failure",
			method: "POST",
			body:   `{"message":"hi"}`,
			chatFunc: func(ctx context.Context, message string) (*domain.ChatReply, error) {
				return nil, errors.New("backend returned HTTP 503")
			},
			wantStatus: 500,
			wantError:  "Failed to process request",
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &mocks.MockBackendClient{ChatFunc: tt.chatFunc}
			h := newChatHandler(backend)

			reply := h.Handle(context.Background(), tt.method, []byte(tt.body))

			if reply.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", reply.Status, tt.wantStatus)
			}
			body := decodeBody(t, reply.Body)
			if body["error"] != tt.wantError {
				t.Errorf("error = %v, want %q", body["error"], tt.wantError)
			}
			if tt.wantStatus == 500 && body["response"] != fallbackText {
				t.Errorf("response = %v, want fallback text", body["response"])
			}
			if len(backend.Messages) != tt.wantCalls {
				t.Errorf("backend calls = %d, want %d", len(backend.Messages), tt.wantCalls)
			}
		})
	}
}

func TestChatHandlePassthrough(t *testing.T) {
	raw := []byte(`{"response":"The keynote starts at 9am.","sources":[{"id":7,"score":0.91}]}`)
	backend := &mocks.MockBackendClient{
		ChatFunc: func(ctx context.Context, message string) (*domain.ChatReply, error) {
			return &domain.ChatReply{Raw: raw, Response: "The keynote starts at 9am."}, nil
		},
	}

	reply := newChatHandler(backend).Handle(context.Background(), "POST", []byte(`{"message":"What time is the keynote?"}`))

	if reply.Status != 200 {
		t.Fatalf("status = %d, want 200", reply.Status)
	}
	if string(reply.Body) != string(raw) {
		t.Errorf("body = %s, want backend bytes unchanged", reply.Body)
	}
	if len(backend.Messages) != 1 || backend.Messages[0] != "What time is the keynote?" {
		t.Errorf("forwarded messages = %v", backend.Messages)
	}
}

func TestChatHandleRelaysUnexpectedShapes(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, body := range []string{
		`{"answer":"x"}`,
		`{"response":42}`,
		`{"response":"ok","sources":"n/a"}`,
	} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, body)
			}))
			defer srv.Close()

			client, err := backend.NewClient(srv.URL, 0)
			if err != nil {
				t.Fatalf("NewClient() error = %v", err)
			}
			h := NewChatHandler(usecase.NewChatUsecase(client, logger), logger)

			reply := h.Handle(context.Background(), "POST", []byte(`{"message":"hello"}`))
			if reply.Status != 200 {
				t.Fatalf("status = %d, want 200", reply.Status)
			}
			if string(reply.Body) != body {
				t.Errorf("body = %s, want %s", reply.Body, body)
			}
		})
	}
}
