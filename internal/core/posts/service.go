package posts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"Quill/internal/core/accounts"
)

// DefaultMinContentLength is the minimum length for post titles and
// descriptions when no override is configured
const DefaultMinContentLength = 10

type moderationEngine struct {
	repo      Repository
	minLength int
}

// NewModerationEngine creates the service enforcing the post lifecycle
// state machine and its authorization rules. minLength <= 0 falls back
// to DefaultMinContentLength.
func NewModerationEngine(repo Repository, minLength int) Service {
	if minLength <= 0 {
		minLength = DefaultMinContentLength
	}
	return &moderationEngine{
		repo:      repo,
		minLength: minLength,
	}
}

// CreatePost validates and persists a new post. Posts authored by an
// admin skip the queue: they are stored approved with approved_at set.
func (s *moderationEngine) CreatePost(ctx context.Context, author *accounts.Account, req CreatePostRequest) (*Post, error) {
	if author == nil {
		return nil, ErrNotAuthorized
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)

	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	post := &Post{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		AuthorID:    author.ID,
		AuthorName:  author.Name,
		State:       StatePending,
	}

	if author.IsAdmin() {
		now := time.Now().UTC()
		post.State = StateApproved
		post.ApprovedAt = &now
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return created, nil
}

// ListVisible returns the public feed: approved posts in insertion order
func (s *moderationEngine) ListVisible(ctx context.Context) ([]*Post, error) {
	visible, err := s.repo.ListApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved posts: %w", err)
	}
	return visible, nil
}

// ListPendingModeration returns the never-decided queue for admins
func (s *moderationEngine) ListPendingModeration(ctx context.Context, actor *accounts.Account) ([]*Post, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, ErrNotAuthorized
	}

	pending, err := s.repo.ListUndecided(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending posts: %w", err)
	}
	return pending, nil
}

// Decide approves or rejects a pending post.
//
// Only pending posts can be decided: allowing re-decision would let the
// state toggle between approved and rejected indefinitely while the stale
// timestamp from the earlier decision survives. Exactly one of
// approved_at/rejected_at is stamped, in the same statement as the state.
func (s *moderationEngine) Decide(ctx context.Context, actor *accounts.Account, postID string, approve bool) (*Post, error) {
	if actor == nil || !actor.IsAdmin() {
		return nil, ErrNotAuthorized
	}

	decided, err := s.repo.UpdateDecision(ctx, postID, approve, time.Now().UTC())
	if err != nil {
		switch {
		case IsNotFound(err):
			return nil, ErrNotFound
		case errors.Is(err, ErrAlreadyDecided):
			return nil, ErrAlreadyDecided
		}
		return nil, fmt.Errorf("failed to record decision: %w", err)
	}

	return decided, nil
}

// Get fetches a single post regardless of moderation state. Any
// authenticated caller may fetch any post by id.
func (s *moderationEngine) Get(ctx context.Context, postID string) (*Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// Search matches a case-insensitive substring against title, description
// or author name. Unlike ListVisible it spans all moderation states, and
// an empty term is a substring of everything, so it returns every post.
func (s *moderationEngine) Search(ctx context.Context, term string) ([]*Post, error) {
	term = strings.TrimSpace(term)

	matches, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}
	return matches, nil
}

// Delete soft-deletes a post. Restricted to the post's author or an admin.
func (s *moderationEngine) Delete(ctx context.Context, actor *accounts.Account, postID string) error {
	if actor == nil {
		return ErrNotAuthorized
	}

	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		if IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get post: %w", err)
	}

	if post.AuthorID != actor.ID && !actor.IsAdmin() {
		return ErrNotAuthorized
	}

	if err := s.repo.SoftDelete(ctx, postID); err != nil {
		if IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

func (s *moderationEngine) validateCreateRequest(req CreatePostRequest) error {
	fields := validation.Errors{
		"title":       validation.Validate(req.Title, validation.Required, validation.Length(s.minLength, 0)),
		"description": validation.Validate(req.Description, validation.Required, validation.Length(s.minLength, 0)),
	}

	if err := fields.Filter(); err != nil {
		out := make(map[string]string, len(fields))
		for field, ferr := range fields {
			if ferr != nil {
				out[field] = ferr.Error()
			}
		}
		return &ValidationError{Fields: out}
	}
	return nil
}
