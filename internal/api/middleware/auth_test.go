package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

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

func protectedEcho(t *testing.T, captured **accounts.Account) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = GetAccount(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	service := new(MockAuthService)
	mw := NewAuthMiddleware(service)

	var captured *accounts.Account
	handler := mw.RequireAuth(protectedEcho(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
	service.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything)
}

func TestRequireAuth_WrongScheme(t *testing.T) {
	service := new(MockAuthService)
	mw := NewAuthMiddleware(service)

	var captured *accounts.Account
	handler := mw.RequireAuth(protectedEcho(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	service := new(MockAuthService)
	mw := NewAuthMiddleware(service)

	service.On("Authenticate", mock.Anything, "bad-token").
		Return(nil, accounts.ErrInvalidToken)

	var captured *accounts.Account
	handler := mw.RequireAuth(protectedEcho(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, captured)
}

func TestRequireAuth_ValidTokenInjectsAccount(t *testing.T) {
	service := new(MockAuthService)
	mw := NewAuthMiddleware(service)

	account := &accounts.Account{ID: "acc-1", Name: "Alice", Role: accounts.RoleStandard}
	service.On("Authenticate", mock.Anything, "good-token").Return(account, nil)

	var captured *accounts.Account
	handler := mw.RequireAuth(protectedEcho(t, &captured))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, account, captured)
}
