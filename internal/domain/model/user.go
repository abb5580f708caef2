package model

import (
	"strings"
	"time"

	"github.com/seopulse/seopulse-api/internal/errors"
)

// User represents a dashboard user (agency staff).
type User struct {
	ID           string    `json:"id"         db:"id"`
	Email        string    `json:"email"      db:"email"`
	Name         string    `json:"name"       db:"name"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	Role         string    `json:"role"       db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CreateUserRequest represents parameters to create a User.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Validate checks required fields on a create user request.
func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.ValidationField("email", "email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.ValidationField("email", "email is not valid")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.ValidationField("name", "name is required")
	}
	if len(r.Password) < 8 {
		return errors.ValidationField("password", "password must be at least 8 characters")
	}
	return nil
}
