package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/google/uuid"
)

type authService struct {
	repo   AccountRepository
	creds  CredentialStore
	tokens TokenIssuer
}

// NewAuthService creates the session service backing register/login/logout
func NewAuthService(repo AccountRepository, creds CredentialStore, tokens TokenIssuer) AuthService {
	return &authService{
		repo:   repo,
		creds:  creds,
		tokens: tokens,
	}
}

// Register validates the request, stores the account with a hashed
// password and default standard role, and issues a session token bound
// to the new account
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if err := validateRegister(req); err != nil {
		return nil, err
	}

	hash, err := s.creds.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &Account{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         RoleStandard,
	}

	account, err = s.repo.Create(ctx, account)
	if err != nil {
		// Uniqueness is enforced by the repository; surface it the same
		// way as any other field failure
		if errors.Is(err, ErrEmailTaken) {
			return nil, NewValidationError("email", ErrEmailTaken.Error())
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	token, err := s.tokens.Issue(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &Session{Account: account, Token: token}, nil
}

// Login verifies the credentials and issues a fresh token. Earlier tokens
// for the account remain valid, so concurrent sessions are allowed.
func (s *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			// Same error whether the email is unknown or the password is
			// wrong, to avoid leaking which emails are registered
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if err := s.creds.Compare(password, account.PasswordHash); err != nil {
		if errors.Is(err, ErrCredentialMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	token, err := s.tokens.Issue(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &Session{Account: account, Token: token}, nil
}

// Logout revokes every outstanding token for the actor
func (s *authService) Logout(ctx context.Context, actor *Account) error {
	if actor == nil {
		return ErrInvalidToken
	}
	if err := s.tokens.RevokeAll(ctx, actor.ID); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	return nil
}

// Authenticate resolves a bearer token to the account it belongs to
func (s *authService) Authenticate(ctx context.Context, token string) (*Account, error) {
	accountID, err := s.tokens.Validate(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	return account, nil
}

func validateRegister(req RegisterRequest) error {
	fields := validation.Errors{
		"name":     validation.Validate(req.Name, validation.Required, validation.Length(3, 20)),
		"email":    validation.Validate(req.Email, validation.Required, is.Email),
		"password": validation.Validate(req.Password, validation.Required, validation.Length(3, 0)),
	}

	// Mirror of the confirmed-password rule: reported on the password
	// field unless a length/presence failure already claimed it
	if fields["password"] == nil && req.Password != req.PasswordConfirmation {
		fields["password"] = errors.New("password confirmation does not match")
	}

	if err := fields.Filter(); err != nil {
		return toValidationError(fields)
	}
	return nil
}

func toValidationError(fields validation.Errors) error {
	out := make(map[string]string, len(fields))
	for field, err := range fields {
		if err != nil {
			out[field] = err.Error()
		}
	}
	return &ValidationError{Fields: out}
}
