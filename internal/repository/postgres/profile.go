package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vitalog/vitalog-server/internal/model"
)

var _ model.ProfileStore = (*ProfileRepository)(nil)

type ProfileRepository struct {
	db *Connection
}

func NewProfileRepository(db *Connection) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	var profile model.Profile
	query := `SELECT user_id, birth_date, initial_height, initial_weight, completed, updated_at
			  FROM profiles WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID, &profile.BirthDate, &profile.InitialHeight, &profile.InitialWeight,
		&profile.Completed, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Profile{}, model.ErrNotFound
		}
		return model.Profile{}, fmt.Errorf("failed to get profile by user id: %w", err)
	}

	return profile, nil
}

// Upsert writes the profile unconditionally; re-completion overwrites the
// stored values.
func (r *ProfileRepository) Upsert(ctx context.Context, profile model.Profile) (model.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, birth_date, initial_height, initial_weight, completed, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET birth_date = EXCLUDED.birth_date,
		    initial_height = EXCLUDED.initial_height,
		    initial_weight = EXCLUDED.initial_weight,
		    completed = EXCLUDED.completed,
		    updated_at = NOW()
		RETURNING user_id, birth_date, initial_height, initial_weight, completed, updated_at`

	var savedProfile model.Profile
	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.BirthDate, profile.InitialHeight, profile.InitialWeight, profile.Completed,
	).Scan(
		&savedProfile.UserID, &savedProfile.BirthDate, &savedProfile.InitialHeight,
		&savedProfile.InitialWeight, &savedProfile.Completed, &savedProfile.UpdatedAt,
	)
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to upsert profile: %w", err)
	}

	return savedProfile, nil
}

func (r *ProfileRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM profiles WHERE user_id = $1`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
