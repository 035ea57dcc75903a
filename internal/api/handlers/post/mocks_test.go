package post

import (
	"context"

	"github.com/stretchr/testify/mock"

	"Quill/internal/core/accounts"
	"Quill/internal/core/posts"
)

// MockPostService is a mock implementation of posts.Service
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, author *accounts.Account, req posts.CreatePostRequest) (*posts.Post, error) {
	args := m.Called(ctx, author, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostService) ListVisible(ctx context.Context) ([]*posts.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.Post), args.Error(1)
}

func (m *MockPostService) ListPendingModeration(ctx context.Context, actor *accounts.Account) ([]*posts.Post, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.Post), args.Error(1)
}

func (m *MockPostService) Decide(ctx context.Context, actor *accounts.Account, postID string, approve bool) (*posts.Post, error) {
	args := m.Called(ctx, actor, postID, approve)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, postID string) (*posts.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *MockPostService) Search(ctx context.Context, term string) ([]*posts.Post, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.Post), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, actor *accounts.Account, postID string) error {
	args := m.Called(ctx, actor, postID)
	return args.Error(0)
}
