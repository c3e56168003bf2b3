package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitalog/vitalog-server/internal/logger"
	"github.com/vitalog/vitalog-server/internal/model"
)

const (
	minHeightCm = 50
	maxHeightCm = 300
	minWeightKg = 20
	maxWeightKg = 500
)

// Profile owns the profile completion state machine. The location defines
// the calendar-day boundary, the same one the suggestion quota uses.
type Profile struct {
	profileStore model.ProfileStore
	location     *time.Location
	logger       *logger.Logger
}

func NewProfile(profileStore model.ProfileStore, location *time.Location, logger *logger.Logger) *Profile {
	return &Profile{
		profileStore: profileStore,
		location:     location,
		logger:       logger,
	}
}

// GetProfile returns the user's profile. A user who never completed one has
// an implicit incomplete profile; this never fails with not-found.
func (s *Profile) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	profile, err := s.profileStore.GetByUserID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Profile{UserID: userID, Completed: false}, nil
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// CompleteProfile validates the health baseline and stores it with
// completed = true. Calling it again overwrites the stored values.
func (s *Profile) CompleteProfile(ctx context.Context, params model.CompleteProfileParams) (model.Profile, error) {
	today := model.DateOf(time.Now(), s.location)
	birthDate, err := validateProfileFields(params.BirthDate, params.InitialHeight, params.InitialWeight, today)
	if err != nil {
		return model.Profile{}, err
	}

	profile, err := s.profileStore.Upsert(ctx, model.Profile{
		UserID:        params.UserID,
		BirthDate:     birthDate,
		InitialHeight: params.InitialHeight,
		InitialWeight: params.InitialWeight,
		Completed:     true,
	})
	if err != nil {
		return model.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info("Profile service: profile completed", "user_id", params.UserID)

	return profile, nil
}

// validateProfileFields checks fields in a fixed order so the reported
// field is deterministic: birth date first, then height, then weight.
func validateProfileFields(birthDate string, height, weight float64, today time.Time) (time.Time, error) {
	parsed, err := model.ParseDate(birthDate)
	if err != nil {
		return time.Time{}, model.NewValidationError("birth_date", "invalid date format, use YYYY-MM-DD")
	}

	if parsed.After(today) {
		return time.Time{}, model.NewValidationError("birth_date", "birth date cannot be in the future")
	}

	if height < minHeightCm || height > maxHeightCm {
		return time.Time{}, model.NewValidationError("initial_height",
			fmt.Sprintf("height must be between %d and %d cm", minHeightCm, maxHeightCm))
	}

	if weight < minWeightKg || weight > maxWeightKg {
		return time.Time{}, model.NewValidationError("initial_weight",
			fmt.Sprintf("weight must be between %d and %d kg", minWeightKg, maxWeightKg))
	}

	return parsed, nil
}
