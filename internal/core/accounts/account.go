package accounts

import (
	"time"
)

// Role is the authorization level of an account.
// Modeled as an enum rather than an is_admin flag so new roles can be
// added without boolean proliferation.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// Account represents a registered user of the content API
type Account struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
}

// IsAdmin reports whether the account may perform moderation actions
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// RegisterRequest represents the input for creating a new account
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Session binds an issued bearer token to the account it authenticates
type Session struct {
	Account *Account `json:"account"`
	Token   string   `json:"token"`
}
