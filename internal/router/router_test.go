package router

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"

	"github.com/lvyanru/aida-chat/internal/domain"
	"github.com/lvyanru/aida-chat/internal/domain/mocks"
	"github.com/lvyanru/aida-chat/internal/handler"
	"github.com/lvyanru/aida-chat/internal/usecase"
)

func newTestServer(backend *mocks.MockBackendClient, provider *mocks.MockAuthProvider, origins []string) *server.Hertz {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	h := server.Default(server.WithHostPorts("127.0.0.1:0"))
	Setup(h, Handlers{
		Chat:   handler.NewChatHandler(usecase.NewChatUsecase(backend, logger), logger),
		Auth:   handler.NewAuthHandler(usecase.NewAuthUsecase(provider, logger), logger),
		Health: handler.NewHealthHandler(backend),
		UI:     handler.NewUIHandler(),
	}, Options{AllowedOrigins: origins}, logger)
	return h
}

func jsonBody(s string) *ut.Body {
	return &ut.Body{Body: strings.NewReader(s), Len: len(s)}
}

var jsonHeader = ut.Header{Key: "Content-Type", Value: "application/json"}

func TestChatRoute(t *testing.T) {
	backend := &mocks.MockBackendClient{
		ChatFunc: func(ctx context.Context, message string) (*domain.ChatReply, error) {
			return &domain.ChatReply{
				Raw:      []byte(`{"response":"The keynote starts at 9am.","sources":[]}`),
				Response: "The keynote starts at 9am.",
			}, nil
		},
	}
	h := newTestServer(backend, &mocks.MockAuthProvider{}, nil)

	w := ut.PerformRequest(h.Engine, "POST", "/api/chat", jsonBody(`{"message":"What time is the keynote?"}`), jsonHeader)
	resp := w.Result()

	if resp.StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode())
	}
	if got := string(resp.Body()); got != `{"response":"The keynote starts at 9am.","sources":[]}` {
		t.Errorf("body = %s", got)
	}
	if ct := string(resp.Header.ContentType()); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestChatRouteWrongMethod(t *testing.T) {
	h := newTestServer(&mocks.MockBackendClient{}, &mocks.MockAuthProvider{}, nil)

	for _, method := range []string{"GET", "PUT", "PATCH", "DELETE"} {
		w := ut.PerformRequest(h.Engine, method, "/api/chat", nil)
		resp := w.Result()
		if resp.StatusCode() != 405 {
			t.Errorf("%s status = %d, want 405", method, resp.StatusCode())
		}
		if got := string(resp.Body()); got != `{"error":"Method not allowed"}` {
			t.Errorf("%s body = %s", method, got)
		}
	}
}

func TestChatRouteUpstreamFailure(t *testing.T) {
	backend := &mocks.MockBackendClient{
		ChatFunc: func(ctx context.Context, message string) (*domain.ChatReply, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := newTestServer(backend, &mocks.MockAuthProvider{}, nil)

	w := ut.PerformRequest(h.Engine, "POST", "/api/chat", jsonBody(`{"message":"hi"}`), jsonHeader)
	resp := w.Result()

	if resp.StatusCode() != 500 {
		t.Fatalf("status = %d, want 500", resp.StatusCode())
	}
	want := `{"error":"Failed to process request","response":"I'm sorry, I'm having technical difficulties. Please try again."}`
	if got := string(resp.Body()); got != want {
		t.Errorf("body = %s", got)
	}
}

func TestAuthRoute(t *testing.T) {
	provider := &mocks.MockAuthProvider{}
	h := newTestServer(&mocks.MockBackendClient{}, provider, nil)

	w := ut.PerformRequest(h.Engine, "POST", "/api/auth", jsonBody(`{"email":"a@b.c","password":"pw123456"}`), jsonHeader)
	resp := w.Result()

	if resp.StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode())
	}
	if got := string(resp.Body()); got != `{"message":"User registered successfully"}` {
		t.Errorf("body = %s", got)
	}
	if provider.Calls != 1 {
		t.Errorf("provider calls = %d, want 1", provider.Calls)
	}
}

func TestHealthRoutes(t *testing.T) {
	backend := &mocks.MockBackendClient{}
	h := newTestServer(backend, &mocks.MockAuthProvider{}, nil)

	for _, path := range []string{"/ping", "/health/live", "/health/ready"} {
		w := ut.PerformRequest(h.Engine, "GET", path, nil)
		if code := w.Result().StatusCode(); code != 200 {
			t.Errorf("GET %s = %d, want 200", path, code)
		}
	}

	backend.HealthFunc = func(ctx context.Context) error { return errors.New("down") }
	w := ut.PerformRequest(h.Engine, "GET", "/health/ready", nil)
	if code := w.Result().StatusCode(); code != 503 {
		t.Errorf("GET /health/ready with backend down = %d, want 503", code)
	}
}

func TestIndexRoute(t *testing.T) {
	h := newTestServer(&mocks.MockBackendClient{}, &mocks.MockAuthProvider{}, nil)

	w := ut.PerformRequest(h.Engine, "GET", "/", nil)
	resp := w.Result()

	if resp.StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode())
	}
	if !strings.Contains(string(resp.Body()), "AIDA Conference Assistant") {
		t.Error("index page not served")
	}
}

func TestCORS(t *testing.T) {
	h := newTestServer(&mocks.MockBackendClient{}, &mocks.MockAuthProvider{}, []string{"http://localhost:3000"})

	w := ut.PerformRequest(h.Engine, "OPTIONS", "/api/chat", nil,
		ut.Header{Key: "Origin", Value: "http://localhost:3000"})
	resp := w.Result()
	if resp.StatusCode() != 204 {
		t.Errorf("preflight status = %d, want 204", resp.StatusCode())
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow origin = %q", got)
	}

	w = ut.PerformRequest(h.Engine, "GET", "/ping", nil,
		ut.Header{Key: "Origin", Value: "http://evil.example"})
	if got := w.Result().Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unlisted origin got allow origin %q", got)
	}
}
