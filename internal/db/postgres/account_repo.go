package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"Quill/internal/core/accounts"
)

type postgresAccountRepo struct {
	db *sql.DB
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db *sql.DB) accounts.AccountRepository {
	return &postgresAccountRepo{db: db}
}

// Create inserts a new account into the accounts table
func (r *postgresAccountRepo) Create(ctx context.Context, account *accounts.Account) (*accounts.Account, error) {
	query := `
		INSERT INTO accounts (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Name, account.Email, account.PasswordHash, account.Role).
		Scan(&account.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, accounts.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// GetByID retrieves an account by its id
func (r *postgresAccountRepo) GetByID(ctx context.Context, id string) (*accounts.Account, error) {
	account := &accounts.Account{}
	query := `SELECT id, name, email, password_hash, role, created_at FROM accounts WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash,
			&account.Role, &account.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, accounts.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

// GetByEmail retrieves an account by its email (stored lowercase)
func (r *postgresAccountRepo) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	account := &accounts.Account{}
	query := `SELECT id, name, email, password_hash, role, created_at FROM accounts WHERE email = $1`

	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&account.ID, &account.Name, &account.Email, &account.PasswordHash,
			&account.Role, &account.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, accounts.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return account, nil
}
