// Package gotrue is a minimal client for the hosted auth provider's
// GoTrue signup endpoint.
package gotrue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/aida-chat/internal/domain"
)

const endpointSignup = "/auth/v1/signup"

// ErrNotConfigured is returned by every call on a client built without a
// provider URL or key
var ErrNotConfigured = domain.ErrAuthNotConfigured

// ProviderError is a non-2xx answer from the provider
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("auth provider returned HTTP %d: %s", e.StatusCode, e.Message)
}

// ProviderMessage returns the provider's explanation of the rejection
func (e *ProviderError) ProviderMessage() string {
	return e.Message
}

var _ domain.ProviderRejection = (*ProviderError)(nil)

// Client calls the provider's REST API
type Client struct {
	client  *client.Client
	baseURL string
	anonKey string
}

var _ domain.AuthProvider = (*Client)(nil)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// errorBody covers the error shapes GoTrue has used across versions
type errorBody struct {
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	Message          string `json:"message"`
	Error            string `json:"error"`
}

// NewClient creates a provider client. Missing settings do not fail here;
// the client is returned unusable instead.
func NewClient(baseURL, anonKey string) (*Client, error) {
	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &Client{
		client:  c,
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
	}, nil
}

// Configured reports whether the client can reach the provider
func (c *Client) Configured() bool {
	return c.baseURL != "" && c.anonKey != ""
}

// SignUp registers a new account with email and password
func (c *Client) SignUp(ctx context.Context, email, password string) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body, err := sonic.Marshal(signupRequest{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.baseURL + endpointSignup)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.SetBody(body)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("signup request failed: %w", err)
	}

	code := resp.StatusCode()
	if code >= 200 && code < 300 {
		return nil
	}
	return &ProviderError{StatusCode: code, Message: errorMessage(code, resp.Body())}
}

func errorMessage(code int, body []byte) string {
	var eb errorBody
	if err := sonic.Unmarshal(body, &eb); err == nil {
		for _, m := range []string{eb.Msg, eb.ErrorDescription, eb.Message, eb.Error} {
			if m != "" {
				return m
			}
		}
	}
	return consts.StatusMessage(code)
}
