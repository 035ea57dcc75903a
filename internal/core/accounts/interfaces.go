package accounts

import "context"

// AccountRepository defines the interface for account persistence
type AccountRepository interface {
	// Create inserts a new account. Returns ErrEmailTaken if the email
	// is already registered.
	Create(ctx context.Context, account *Account) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
}

// CredentialStore hashes and verifies passwords.
// The stored hash is opaque to the rest of the system.
type CredentialStore interface {
	Hash(password string) (string, error)

	// Compare returns ErrCredentialMismatch when the password does not
	// match the stored hash.
	Compare(password, hash string) error
}

// TokenIssuer issues, validates and revokes bearer tokens for accounts
type TokenIssuer interface {
	// Issue mints a fresh token bound to the account. Previously issued
	// tokens stay valid, so an account may hold concurrent sessions.
	Issue(ctx context.Context, accountID string) (string, error)

	// Validate resolves a bearer token to the account ID it was issued
	// for. Fails for malformed, expired and revoked tokens.
	Validate(ctx context.Context, token string) (string, error)

	// RevokeAll invalidates every outstanding token for the account
	RevokeAll(ctx context.Context, accountID string) error
}

// AuthService defines the business logic for registration and sessions
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)

	// Logout revokes all outstanding tokens for the actor, forcing
	// re-login on every device.
	Logout(ctx context.Context, actor *Account) error

	// Authenticate resolves a bearer token to its account.
	// Used by the auth middleware on every protected request.
	Authenticate(ctx context.Context, token string) (*Account, error)
}
