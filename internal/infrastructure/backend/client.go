package backend

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

	"github.com/lvyanru/aida-chat/internal/domain"
)

const (
	endpointChat   = "/chat"
	endpointHealth = "/health"
)

// StatusError is returned when the backend answers with a non-2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Client calls the external chat backend over HTTP
type Client struct {
	client  *client.Client
	baseURL string
	timeout time.Duration
}

var _ domain.BackendClient = (*Client)(nil)

type chatRequest struct {
	Message string `json:"message"`
}


// NewClient creates a backend client. A zero timeout waits for the backend
// indefinitely.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend URL %q", baseURL)
	}

	c, err := client.NewClient(
		client.WithDialTimeout(10*time.Second),
		client.WithMaxIdleConnDuration(60*time.Second),
		client.WithDialer(standard.NewDialer()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return &Client{
		client:  c,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}, nil
}

// Chat sends one message and waits for the full answer. There is no retry.
func (c *Client) Chat(ctx context.Context, message string) (*domain.ChatReply, error) {
	body, err := sonic.Marshal(chatRequest{Message: message})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodPost)
	req.SetRequestURI(c.baseURL + endpointChat)
	req.Header.SetContentTypeBytes([]byte("application/json"))
	req.SetBody(body)

	if err := c.do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}

	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return nil, &StatusError{StatusCode: code, Body: string(resp.Body())}
	}

	// resp is returned to the pool on exit
	raw := append([]byte(nil), resp.Body()...)

	// Any JSON document is relayed; response and sources are read when well typed
	var decoded interface{}
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode backend response: %w", err)
	}

	reply := &domain.ChatReply{Raw: raw}
	if obj, ok := decoded.(map[string]interface{}); ok {
		reply.Response, _ = obj["response"].(string)
		reply.Sources, _ = obj["sources"].([]interface{})
	}
	return reply, nil
}

// Health checks the backend's health endpoint
func (c *Client) Health(ctx context.Context) error {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(c.baseURL + endpointHealth)

	if err := c.do(ctx, req, resp); err != nil {
		return fmt.Errorf("backend health check failed: %w", err)
	}
	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return &StatusError{StatusCode: code, Body: string(resp.Body())}
	}
	return nil
}

func (c *Client) do(ctx context.Context, req *protocol.Request, resp *protocol.Response) error {
	if c.timeout > 0 {
		return c.client.DoTimeout(ctx, req, resp, c.timeout)
	}
	return c.client.Do(ctx, req, resp)
}
