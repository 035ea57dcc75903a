package auth

import (
	"context"

	"github.com/stretchr/testify/mock"

	"Quill/internal/core/accounts"
)

// MockAuthService is a mock implementation of accounts.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req accounts.RegisterRequest) (*accounts.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Session), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*accounts.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, actor *accounts.Account) error {
	args := m.Called(ctx, actor)
	return args.Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*accounts.Account, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.Account), args.Error(1)
}
