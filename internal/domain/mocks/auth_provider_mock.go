package mocks

import "context"

// MockAuthProvider is a mock implementation of domain.AuthProvider
type MockAuthProvider struct {
	SignUpFunc func(ctx context.Context, email, password string) error

	Calls int
}

// SignUp mocks the SignUp method
func (m *MockAuthProvider) SignUp(ctx context.Context, email, password string) error {
	m.Calls++
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, email, password)
	}
	return nil
}
