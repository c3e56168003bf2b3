package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents a registered account. The password credential is stored
// as an opaque hash; the core never sees the plaintext after registration.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// RegisterParams contains parameters to register a user.
type RegisterParams struct {
	Email    string
	Username string
	Password string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	AccessToken      string
	UserID           uuid.UUID
	ProfileCompleted bool
}
