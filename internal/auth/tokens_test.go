package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Quill/internal/core/accounts"
)

// fakeRevocationStore is an in-memory RevocationStore for tests
type fakeRevocationStore struct {
	mu   sync.Mutex
	sets map[string]map[string]bool
}

func newFakeRevocationStore() *fakeRevocationStore {
	return &fakeRevocationStore{sets: make(map[string]map[string]bool)}
}

func (s *fakeRevocationStore) Add(_ context.Context, accountID, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sets[accountID] == nil {
		s.sets[accountID] = make(map[string]bool)
	}
	s.sets[accountID][tokenID] = true
	return nil
}

func (s *fakeRevocationStore) Contains(_ context.Context, accountID, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets[accountID][tokenID], nil
}

func (s *fakeRevocationStore) RemoveAll(_ context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, accountID)
	return nil
}

var testSecret = []byte("test-secret")

func TestIssueAndValidate_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, newFakeRevocationStore(), time.Hour)
	ctx := context.Background()

	token, err := issuer.Issue(ctx, "acc-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	accountID, err := issuer.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", accountID)
}

func TestValidate_RejectsTamperedToken(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, newFakeRevocationStore(), time.Hour)
	ctx := context.Background()

	token, err := issuer.Issue(ctx, "acc-1")
	require.NoError(t, err)

	_, err = issuer.Validate(ctx, token+"x")
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
}

func TestValidate_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	store := newFakeRevocationStore()
	issuer := NewTokenIssuer(testSecret, store, time.Hour)
	otherIssuer := NewTokenIssuer([]byte("other-secret"), store, time.Hour)
	ctx := context.Background()

	token, err := otherIssuer.Issue(ctx, "acc-1")
	require.NoError(t, err)

	_, err = issuer.Validate(ctx, token)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
}

func TestValidate_RejectsExpiredToken(t *testing.T) {
	store := newFakeRevocationStore()
	issuer := NewTokenIssuer(testSecret, store, time.Hour)
	ctx := context.Background()

	// Craft a token that expired an hour ago but whose jti is still
	// registered, so only the exp check can reject it
	claims := jwt.RegisteredClaims{
		Subject:   "acc-1",
		ID:        "stale-jti",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	require.NoError(t, store.Add(ctx, "acc-1", "stale-jti"))

	_, err = issuer.Validate(ctx, expired)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
}

func TestValidate_RejectsUnsignedAlgorithm(t *testing.T) {
	store := newFakeRevocationStore()
	issuer := NewTokenIssuer(testSecret, store, time.Hour)
	ctx := context.Background()

	claims := jwt.RegisteredClaims{
		Subject:   "acc-1",
		ID:        "none-jti",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	require.NoError(t, store.Add(ctx, "acc-1", "none-jti"))

	_, err = issuer.Validate(ctx, unsigned)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
}

func TestRevokeAll_InvalidatesEverySession(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, newFakeRevocationStore(), time.Hour)
	ctx := context.Background()

	// Two concurrent sessions for the same account
	first, err := issuer.Issue(ctx, "acc-1")
	require.NoError(t, err)
	second, err := issuer.Issue(ctx, "acc-1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// Both valid before revocation
	_, err = issuer.Validate(ctx, first)
	require.NoError(t, err)
	_, err = issuer.Validate(ctx, second)
	require.NoError(t, err)

	require.NoError(t, issuer.RevokeAll(ctx, "acc-1"))

	_, err = issuer.Validate(ctx, first)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
	_, err = issuer.Validate(ctx, second)
	assert.ErrorIs(t, err, accounts.ErrInvalidToken)
}

func TestRevokeAll_LeavesOtherAccountsAlone(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, newFakeRevocationStore(), time.Hour)
	ctx := context.Background()

	mine, err := issuer.Issue(ctx, "acc-1")
	require.NoError(t, err)
	theirs, err := issuer.Issue(ctx, "acc-2")
	require.NoError(t, err)

	require.NoError(t, issuer.RevokeAll(ctx, "acc-1"))

	_, err = issuer.Validate(ctx, mine)
	assert.Error(t, err)
	accountID, err := issuer.Validate(ctx, theirs)
	require.NoError(t, err)
	assert.Equal(t, "acc-2", accountID)
}
