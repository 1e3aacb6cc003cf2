package gotrue

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSignUpNotConfigured(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  string
	}{
		{name: "no url", key: "anon"},
		{name: "no key", url: "https://example.supabase.co"},
		{name: "nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.url, tt.key)
			if err != nil {
				t.Fatalf("NewClient() error = %v", err)
			}
			if c.Configured() {
				t.Error("client should not be configured")
			}
			if err := c.SignUp(context.Background(), "a@b.c", "pw"); !errors.Is(err, ErrNotConfigured) {
				t.Errorf("SignUp() error = %v, want ErrNotConfigured", err)
			}
		})
	}
}

func TestSignUpSuccess(t *testing.T) {
	var gotPath, gotKey, gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = io.WriteString(w, `{"id":"user-1","email":"a@b.c"}`)
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL+"/", "anon-key")
	if err := c.SignUp(context.Background(), "a@b.c", "secret"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if gotPath != "/auth/v1/signup" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "anon-key" || gotAuth != "Bearer anon-key" {
		t.Errorf("headers apikey=%q authorization=%q", gotKey, gotAuth)
	}
	if gotBody != `{"email":"a@b.c","password":"secret"}` {
		t.Errorf("body = %s", gotBody)
	}
}

func TestSignUpProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "msg field", status: 400, body: `{"code":400,"msg":"User already registered"}`, wantMsg: "User already registered"},
		{name: "error_description", status: 422, body: `{"error":"invalid_grant","error_description":"Password should be at least 6 characters"}`, wantMsg: "Password should be at least 6 characters"},
		{name: "message field", status: 429, body: `{"message":"Email rate limit exceeded"}`, wantMsg: "Email rate limit exceeded"},
		{name: "error only", status: 400, body: `{"error":"invalid_request"}`, wantMsg: "invalid_request"},
		{name: "non-json", status: 502, body: `<html>bad gateway</html>`, wantMsg: "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			c, _ := NewClient(srv.URL, "anon-key")
			err := c.SignUp(context.Background(), "a@b.c", "pw")

			var perr *ProviderError
			if !errors.As(err, &perr) {
				t.Fatalf("error = %v, want *ProviderError", err)
			}
			if perr.StatusCode != tt.status || perr.Message != tt.wantMsg {
				t.Errorf("got (%d, %q), want (%d, %q)", perr.StatusCode, perr.Message, tt.status, tt.wantMsg)
			}
		})
	}
}
