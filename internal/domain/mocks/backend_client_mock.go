package mocks

import (
	"context"

	"github.com/lvyanru/aida-chat/internal/domain"
)

// MockBackendClient is a mock implementation of domain.BackendClient
type MockBackendClient struct {
	ChatFunc   func(ctx context.Context, message string) (*domain.ChatReply, error)
	HealthFunc func(ctx context.Context) error

	// Messages records every message passed to Chat
	Messages []string
}

// Chat mocks the Chat method
func (m *MockBackendClient) Chat(ctx context.Context, message string) (*domain.ChatReply, error) {
	m.Messages = append(m.Messages, message)
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, message)
	}
	return &domain.ChatReply{
		Raw:      []byte(`{"response":"ok"}`),
		Response: "ok",
	}, nil
}

// Health mocks the Health method
func (m *MockBackendClient) Health(ctx context.Context) error {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}
