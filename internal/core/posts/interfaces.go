package posts

import (
	"context"
	"time"

	"Quill/internal/core/accounts"
)

// Service defines the business logic interface for the post lifecycle.
// Every operation takes the acting account explicitly; there is no
// ambient current-user state.
type Service interface {
	// CreatePost validates and persists a new post. Admin-authored posts
	// are approved immediately; everything else starts pending.
	CreatePost(ctx context.Context, author *accounts.Account, req CreatePostRequest) (*Post, error)

	// ListVisible returns the public feed: approved posts only
	ListVisible(ctx context.Context) ([]*Post, error)

	// ListPendingModeration returns the queue of never-decided posts.
	// Admin only.
	ListPendingModeration(ctx context.Context, actor *accounts.Account) ([]*Post, error)

	// Decide approves or rejects a pending post. Admin only. Posts that
	// have already been decided return ErrAlreadyDecided.
	Decide(ctx context.Context, actor *accounts.Account, postID string, approve bool) (*Post, error)

	// Get fetches a single post by id regardless of moderation state
	Get(ctx context.Context, postID string) (*Post, error)

	// Search matches a case-insensitive substring against title,
	// description or author name, across all moderation states
	Search(ctx context.Context, term string) ([]*Post, error)

	// Delete soft-deletes a post. Only the author or an admin may delete.
	Delete(ctx context.Context, actor *accounts.Account, postID string) error
}

// Repository defines the data access interface for posts
type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID returns ErrNotFound for unknown or soft-deleted ids
	GetByID(ctx context.Context, id string) (*Post, error)

	// ListApproved returns approved, non-deleted posts in insertion order
	ListApproved(ctx context.Context) ([]*Post, error)

	// ListUndecided returns pending posts that have never been decided
	// (rejected_at is null), in insertion order
	ListUndecided(ctx context.Context) ([]*Post, error)

	// UpdateDecision moves a pending post to approved or rejected,
	// stamping exactly the matching timestamp. State and timestamp are
	// written in a single statement so a concurrent decision can never
	// observe one without the other. Returns ErrAlreadyDecided when the
	// post exists but is no longer pending.
	UpdateDecision(ctx context.Context, id string, approve bool, decidedAt time.Time) (*Post, error)

	// Search performs case-insensitive substring matching on title,
	// description and author name, across all moderation states
	Search(ctx context.Context, term string) ([]*Post, error)

	// SoftDelete stamps deleted_at without removing the row
	SoftDelete(ctx context.Context, id string) error
}
