package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizeServerURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "http://localhost:8080/", want: "http://localhost:8080"},
		{in: "https://aida.example.com/api", want: "https://aida.example.com"},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeServerURL(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("normalizeServerURL(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("normalizeServerURL(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestChat(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = io.WriteString(w, `{"response":"The keynote starts at 9am.","sources":[{"title":"Schedule"}]}`)
	}))
	defer srv.Close()

	c, err := NewAPIClient(srv.URL)
	if err != nil {
		t.Fatalf("NewAPIClient() error = %v", err)
	}

	resp, err := c.Chat(context.Background(), "What time is the keynote?")
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if gotBody != `{"message":"What time is the keynote?"}` {
		t.Errorf("request body = %s", gotBody)
	}
	if resp.Response != "The keynote starts at 9am." {
		t.Errorf("response = %q", resp.Response)
	}
	if len(resp.Sources) != 1 || resp.Sources[0]["title"] != "Schedule" {
		t.Errorf("sources = %v", resp.Sources)
	}
}

func TestChatErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantAPI  bool
		wantMsg  string
		wantCode int
	}{
		{
			name:     "fallback payload",
			status:   500,
			body:     `{"error":"Failed to process request","response":"I'm sorry, I'm having technical difficulties. Please try again."}`,
			wantAPI:  true,
			wantMsg:  "Failed to process request",
			wantCode: 500,
		},
		{name: "not json", status: 200, body: `<html></html>`},
		{name: "plain 502", status: 502, body: `bad gateway`, wantAPI: true, wantCode: 502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c, _ := NewAPIClient(srv.URL)
			_, err := c.Chat(context.Background(), "hi")
			if err == nil {
				t.Fatal("expected error")
			}

			var apiErr *APIError
			if errors.As(err, &apiErr) != tt.wantAPI {
				t.Fatalf("error = %v, APIError expected %v", err, tt.wantAPI)
			}
			if tt.wantAPI && (apiErr.StatusCode != tt.wantCode || apiErr.Message != tt.wantMsg) {
				t.Errorf("APIError = %+v", apiErr)
			}
		})
	}
}

func TestChatToleratesUnexpectedShapes(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantText    string
		wantSources int
	}{
		{name: "no response field", body: `{"answer":"x"}`},
		{name: "numeric response", body: `{"response":42}`},
		{name: "mixed sources", body: `{"response":"hi","sources":[{"title":"A"},"loose",3]}`, wantText: "hi", wantSources: 1},
		{name: "array body", body: `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c, _ := NewAPIClient(srv.URL)
			resp, err := c.Chat(context.Background(), "hi")
			if err != nil {
				t.Fatalf("Chat() error = %v", err)
			}
			if resp.Response != tt.wantText {
				t.Errorf("response = %q, want %q", resp.Response, tt.wantText)
			}
			if len(resp.Sources) != tt.wantSources {
				t.Errorf("sources = %v, want %d entries", resp.Sources, tt.wantSources)
			}
		})
	}
}

func TestSignUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		if string(b) == `{"email":"taken@example.com","password":"pw123456"}` {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"User already registered"}`)
			return
		}
		_, _ = io.WriteString(w, `{"message":"User registered successfully"}`)
	}))
	defer srv.Close()

	c, _ := NewAPIClient(srv.URL)

	result, err := c.SignUp(context.Background(), "new@example.com", "pw123456")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if result.Message != "User registered successfully" {
		t.Errorf("message = %q", result.Message)
	}

	_, err = c.SignUp(context.Background(), "taken@example.com", "pw123456")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "User already registered" {
		t.Errorf("error = %v, want provider message", err)
	}
}
