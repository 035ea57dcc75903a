package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"Quill/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

const postColumns = `p.id, p.title, p.description, p.author_id, a.name,
		p.status, p.approved_at, p.rejected_at, p.created_at`

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) (*posts.Post, error) {
	query := `
		INSERT INTO posts (id, title, description, author_id, status, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.Title, post.Description, post.AuthorID, post.State, post.ApprovedAt).
		Scan(&post.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// GetByID retrieves a post by id, regardless of moderation state.
// Soft-deleted posts are treated as absent.
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN accounts a ON a.id = p.author_id
		WHERE p.id = $1 AND p.deleted_at IS NULL`, postColumns)

	post, err := r.scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// ListApproved returns approved, non-deleted posts in insertion order
func (r *postgresPostRepo) ListApproved(ctx context.Context) ([]*posts.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN accounts a ON a.id = p.author_id
		WHERE p.status = 'approved' AND p.deleted_at IS NULL
		ORDER BY p.created_at, p.id`, postColumns)

	return r.queryPosts(ctx, query)
}

// ListUndecided returns pending posts that have never been decided
func (r *postgresPostRepo) ListUndecided(ctx context.Context) ([]*posts.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN accounts a ON a.id = p.author_id
		WHERE p.status = 'pending' AND p.rejected_at IS NULL AND p.deleted_at IS NULL
		ORDER BY p.created_at, p.id`, postColumns)

	return r.queryPosts(ctx, query)
}

// UpdateDecision moves a pending post to approved or rejected.
//
// Each branch is an explicit single-statement UPDATE writing the state
// together with its matching timestamp, so a concurrent reader can never
// observe one without the other. The WHERE clause gates on pending, which
// also makes concurrent decisions safe: exactly one of them wins.
func (r *postgresPostRepo) UpdateDecision(ctx context.Context, id string, approve bool, decidedAt time.Time) (*posts.Post, error) {
	var query string
	if approve {
		query = fmt.Sprintf(`
			UPDATE posts p
			SET status = 'approved', approved_at = $2
			FROM accounts a
			WHERE p.id = $1 AND p.status = 'pending' AND p.deleted_at IS NULL
				AND a.id = p.author_id
			RETURNING %s`, postColumns)
	} else {
		query = fmt.Sprintf(`
			UPDATE posts p
			SET status = 'rejected', rejected_at = $2
			FROM accounts a
			WHERE p.id = $1 AND p.status = 'pending' AND p.deleted_at IS NULL
				AND a.id = p.author_id
			RETURNING %s`, postColumns)
	}

	post, err := r.scanPost(r.db.QueryRowContext(ctx, query, id, decidedAt))
	if err == sql.ErrNoRows {
		// Nothing matched: either the post is gone or it was already
		// decided. Re-read to tell the two apart.
		if _, getErr := r.GetByID(ctx, id); getErr == nil {
			return nil, posts.ErrAlreadyDecided
		}
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update decision: %w", err)
	}

	return post, nil
}

// Search performs case-insensitive substring matching on title,
// description and author name. Spans all moderation states.
func (r *postgresPostRepo) Search(ctx context.Context, term string) ([]*posts.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN accounts a ON a.id = p.author_id
		WHERE p.deleted_at IS NULL
			AND (p.title ILIKE '%%' || $1 || '%%'
				OR p.description ILIKE '%%' || $1 || '%%'
				OR a.name ILIKE '%%' || $1 || '%%')
		ORDER BY p.created_at, p.id`, postColumns)

	return r.queryPosts(ctx, query, term)
}

// SoftDelete stamps deleted_at without removing the row
func (r *postgresPostRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE posts SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *postgresPostRepo) scanPost(row rowScanner) (*posts.Post, error) {
	post := &posts.Post{}
	err := row.Scan(&post.ID, &post.Title, &post.Description, &post.AuthorID,
		&post.AuthorName, &post.State, &post.ApprovedAt, &post.RejectedAt, &post.CreatedAt)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (r *postgresPostRepo) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	result := []*posts.Post{}
	for rows.Next() {
		post, err := r.scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating post rows: %w", err)
	}

	return result, nil
}
