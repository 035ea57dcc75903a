package posts

import (
	"time"
)

// ModerationState is the three-way lifecycle tag on a post controlling
// public visibility
type ModerationState string

const (
	StatePending  ModerationState = "pending"
	StateApproved ModerationState = "approved"
	StateRejected ModerationState = "rejected"
)

// Post represents a text post moving through the moderation workflow.
//
// Exactly one of ApprovedAt/RejectedAt is set once State leaves pending;
// both are nil while pending. DeletedAt marks a soft delete and hides the
// post from every read path.
type Post struct {
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	ApprovedAt  *time.Time      `json:"approvedAt,omitempty" db:"approved_at"`
	RejectedAt  *time.Time      `json:"rejectedAt,omitempty" db:"rejected_at"`
	DeletedAt   *time.Time      `json:"-" db:"deleted_at"`
	ID          string          `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	AuthorID    string          `json:"authorId" db:"author_id"`
	AuthorName  string          `json:"authorName,omitempty" db:"author_name"`
	State       ModerationState `json:"state" db:"status"`
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DecideRequest represents a moderation decision on a pending post
type DecideRequest struct {
	Approve bool `json:"approve"`
}
