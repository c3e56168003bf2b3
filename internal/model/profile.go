package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileStore defines persistence operations for health profiles.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
	Upsert(ctx context.Context, profile Profile) (Profile, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// Profile holds the health baseline a user fills in once after registration.
// A user without a stored row is treated as having an implicit incomplete
// profile; GetProfile never fails with not-found.
type Profile struct {
	UserID        uuid.UUID
	BirthDate     time.Time
	InitialHeight float64
	InitialWeight float64
	Completed     bool
	UpdatedAt     time.Time
}

// CompleteProfileParams contains parameters to complete a profile.
// BirthDate carries the raw wire value so validation owns its parsing.
type CompleteProfileParams struct {
	UserID        uuid.UUID
	BirthDate     string
	InitialHeight float64
	InitialWeight float64
}
