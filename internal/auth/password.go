package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"Quill/internal/core/accounts"
)

type bcryptStore struct {
	cost int
}

// NewCredentialStore creates a bcrypt-backed credential store.
// cost <= 0 falls back to bcrypt.DefaultCost.
func NewCredentialStore(cost int) accounts.CredentialStore {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptStore{cost: cost}
}

// Hash generates a password hash
func (s *bcryptStore) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}

// Compare validates the given cleartext password against the stored hash
func (s *bcryptStore) Compare(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return accounts.ErrCredentialMismatch
		}
		return err
	}
	return nil
}
