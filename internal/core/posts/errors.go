package posts

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when a post id does not resolve, including
	// soft-deleted posts
	ErrNotFound = errors.New("post not found")

	// ErrNotAuthorized is returned when a non-admin attempts a moderation
	// action, or a caller tries to delete someone else's post
	ErrNotAuthorized = errors.New("not authorized")

	// ErrAlreadyDecided is returned when deciding a post that has already
	// been approved or rejected
	ErrAlreadyDecided = errors.New("post has already been decided")
)

// ValidationError carries every failed field from a single validation pass
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError if it is one
func AsValidationError(err error) (*ValidationError, bool) {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr, true
	}
	return nil, false
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
