package mocks

import (
	"context"

	"github.com/lvyanru/aida-chat/internal/domain"
)

// MockChatUsecase is a mock implementation of domain.ChatUsecase
type MockChatUsecase struct {
	ChatFunc func(ctx context.Context, message string) (*domain.ChatReply, error)
}

// Chat mocks the Chat method
func (m *MockChatUsecase) Chat(ctx context.Context, message string) (*domain.ChatReply, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, message)
	}
	return &domain.ChatReply{Raw: []byte(`{"response":"ok"}`), Response: "ok"}, nil
}

// MockAuthUsecase is a mock implementation of domain.AuthUsecase
type MockAuthUsecase struct {
	SignUpFunc func(ctx context.Context, email, password string) error
}

// SignUp mocks the SignUp method
func (m *MockAuthUsecase) SignUp(ctx context.Context, email, password string) error {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, email, password)
	}
	return nil
}
