package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/aida-chat/internal/cli/types"
)

// APIError is a non-2xx answer from the proxy. Message is the server's
// "error" field when it sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with HTTP status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

// APIClient talks to the AIDA proxy
type APIClient struct {
	client *client.Client
	server string
}

// NewAPIClient creates a new API client
func NewAPIClient(server string) (*APIClient, error) {
	normalizedServer, err := normalizeServerURL(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &APIClient{
		client: c,
		server: normalizedServer,
	}, nil
}

// Server returns the normalized server address
func (c *APIClient) Server() string {
	return c.server
}

// normalizeServerURL normalizes server URL to ensure it has a scheme and no trailing slash
func normalizeServerURL(server string) (string, error) {
	if !strings.Contains(server, "://") {
		server = "http://" + server
	}

	u, err := url.Parse(server)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid server URL")
	}

	return fmt.Sprintf("%s://%s", u.Scheme, u.Host), nil
}

// Chat sends one message and waits for the answer. There is no timeout
// unless ctx carries one.
// Fields of an unexpected type are left empty rather than failing the call.
func (c *APIClient) Chat(ctx context.Context, message string) (*types.ChatResponse, error) {
	var decoded interface{}
	if err := c.postJSON(ctx, endpointChat, types.ChatRequest{Message: message}, &decoded); err != nil {
		return nil, err
	}

	var resp types.ChatResponse
	obj, _ := decoded.(map[string]interface{})
	resp.Response, _ = obj["response"].(string)
	if sources, ok := obj["sources"].([]interface{}); ok {
		for _, src := range sources {
			if m, ok := src.(map[string]interface{}); ok {
				resp.Sources = append(resp.Sources, m)
			}
		}
	}
	return &resp, nil
}

// SignUp registers an account through the proxy
func (c *APIClient) SignUp(ctx context.Context, email, password string) (*types.SignupResult, error) {
	var result types.SignupResult
	if err := c.postJSON(ctx, endpointSignup, types.SignupRequest{Email: email, Password: password}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ready checks that the proxy can reach its chat backend
func (c *APIClient) Ready(ctx context.Context) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.server + endpointReady)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if code := resp.StatusCode(); code != consts.StatusOK {
		return &APIError{StatusCode: code}
	}
	return nil
}

func (c *APIClient) postJSON(ctx context.Context, path string, in, out interface{}) error {
	bodyBytes, err := sonic.Marshal(in)
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
	req.SetRequestURI(c.server + path)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(bodyBytes)

	if err := c.client.Do(ctx, req, resp); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode < 200 || statusCode >= 300 {
		var errResp types.ErrorResponse
		_ = sonic.Unmarshal(resp.Body(), &errResp)
		return &APIError{StatusCode: statusCode, Message: errResp.Error}
	}

	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
