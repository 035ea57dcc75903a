package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"Quill/internal/core/accounts"
)

// DefaultTokenTTL is how long an issued token stays valid unless revoked
const DefaultTokenTTL = 24 * time.Hour

// RevocationStore tracks which token IDs are still live for each account.
// Logout removes the whole per-account set, invalidating every session
// at once.
type RevocationStore interface {
	Add(ctx context.Context, accountID, tokenID string) error
	Contains(ctx context.Context, accountID, tokenID string) (bool, error)
	RemoveAll(ctx context.Context, accountID string) error
}

type jwtIssuer struct {
	secret []byte
	store  RevocationStore
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer minting HS256 JWTs. Each token
// carries the account id as subject and a unique jti that is registered
// in the revocation store; a token is only accepted while its jti is
// still registered.
func NewTokenIssuer(secret []byte, store RevocationStore, ttl time.Duration) accounts.TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &jwtIssuer{
		secret: secret,
		store:  store,
		ttl:    ttl,
	}
}

// Issue mints a fresh token for the account. Tokens issued earlier are
// untouched, so one account can hold several concurrent sessions.
func (i *jwtIssuer) Issue(ctx context.Context, accountID string) (string, error) {
	now := time.Now().UTC()
	tokenID := uuid.NewString()

	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		ID:        tokenID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	if err := i.store.Add(ctx, accountID, tokenID); err != nil {
		return "", fmt.Errorf("failed to register token: %w", err)
	}

	return signed, nil
}

// Validate resolves a bearer token to its account id. Fails for
// malformed, expired, tampered and revoked tokens.
func (i *jwtIssuer) Validate(ctx context.Context, tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Reject anything but HMAC to prevent algorithm confusion
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", accounts.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" || claims.ID == "" {
		return "", accounts.ErrInvalidToken
	}

	live, err := i.store.Contains(ctx, claims.Subject, claims.ID)
	if err != nil {
		return "", fmt.Errorf("failed to check token registry: %w", err)
	}
	if !live {
		return "", accounts.ErrInvalidToken
	}

	return claims.Subject, nil
}

// RevokeAll drops every registered token id for the account
func (i *jwtIssuer) RevokeAll(ctx context.Context, accountID string) error {
	if err := i.store.RemoveAll(ctx, accountID); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return nil
}
