package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vitalog/vitalog-server/internal/model"
	"github.com/vitalog/vitalog-server/internal/testutil"
)

func TestProfileService_GetProfile(t *testing.T) {
	userID := uuid.New()

	t.Run("existing profile", func(t *testing.T) {
		store := &MockProfileStore{}
		stored := model.Profile{
			UserID:        userID,
			BirthDate:     time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
			InitialHeight: 180,
			InitialWeight: 75,
			Completed:     true,
		}
		store.On("GetByUserID", mock.Anything, userID).Return(stored, nil)

		s := NewProfile(store, time.UTC, testutil.MakeNoopLogger())
		got, err := s.GetProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("missing profile is an implicit incomplete one", func(t *testing.T) {
		store := &MockProfileStore{}
		store.On("GetByUserID", mock.Anything, userID).Return(model.Profile{}, model.ErrNotFound)

		s := NewProfile(store, time.UTC, testutil.MakeNoopLogger())
		got, err := s.GetProfile(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, userID, got.UserID)
		assert.False(t, got.Completed)
		assert.Zero(t, got.InitialHeight)
		assert.Zero(t, got.InitialWeight)
	})
}

func TestProfileService_CompleteProfile(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		params    model.CompleteProfileParams
		wantField string
	}{
		{
			name: "valid profile",
			params: model.CompleteProfileParams{
				UserID:        userID,
				BirthDate:     "1990-05-12",
				InitialHeight: 180,
				InitialWeight: 75,
			},
		},
		{
			name: "malformed birth date",
			params: model.CompleteProfileParams{
				UserID:        userID,
				BirthDate:     "12.05.1990",
				InitialHeight: 180,
				InitialWeight: 75,
			},
			wantField: "birth_date",
		},
		{
			name: "birth date tomorrow",
			params: model.CompleteProfileParams{
				UserID:        userID,
				BirthDate:     model.FormatDate(time.Now().UTC().AddDate(0, 0, 1)),
				InitialHeight: 180,
				InitialWeight: 75,
			},
			wantField: "birth_date",
		},
		{
			name: "height below range",
			params: model.CompleteProfileParams{
				UserID:        userID,
				BirthDate:     "1990-05-12",
				InitialHeight: 10,
				InitialWeight: 75,
			},
			wantField: "initial_height",
		},
		{
			name: "weight above range",
			params: model.CompleteProfileParams{
				UserID:        userID,
				BirthDate:     "1990-05-12",
				InitialHeight: 180,
				InitialWeight: 900,
			},
			wantField: "initial_weight",
		},
		{
			name: "birth date reported before bad height",
			params: model.CompleteProfileParams{
				UserID:        userID,
				BirthDate:     "not-a-date",
				InitialHeight: 10,
				InitialWeight: 900,
			},
			wantField: "birth_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockProfileStore{}
			if tt.wantField == "" {
				store.On("Upsert", mock.Anything, mock.MatchedBy(func(p model.Profile) bool {
					return p.UserID == userID && p.Completed &&
						p.InitialHeight == tt.params.InitialHeight &&
						p.InitialWeight == tt.params.InitialWeight
				})).Return(model.Profile{
					UserID:        userID,
					BirthDate:     time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC),
					InitialHeight: tt.params.InitialHeight,
					InitialWeight: tt.params.InitialWeight,
					Completed:     true,
				}, nil)
			}

			s := NewProfile(store, time.UTC, testutil.MakeNoopLogger())
			got, err := s.CompleteProfile(context.Background(), tt.params)

			if tt.wantField != "" {
				var validationErr *model.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantField, validationErr.Field)
				store.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.True(t, got.Completed)
			store.AssertExpectations(t)
		})
	}
}

func TestProfileService_CompleteProfile_Recompletion(t *testing.T) {
	userID := uuid.New()
	store := &MockProfileStore{}
	store.On("Upsert", mock.Anything, mock.Anything).Return(model.Profile{
		UserID:    userID,
		Completed: true,
	}, nil).Twice()

	s := NewProfile(store, time.UTC, testutil.MakeNoopLogger())

	// Re-completing silently overwrites the stored values.
	for range 2 {
		_, err := s.CompleteProfile(context.Background(), model.CompleteProfileParams{
			UserID:        userID,
			BirthDate:     "1990-05-12",
			InitialHeight: 180,
			InitialWeight: 75,
		})
		require.NoError(t, err)
	}

	store.AssertExpectations(t)
}

func TestProfileService_CompleteProfile_DayBoundaryTimezone(t *testing.T) {
	userID := uuid.New()
	store := &MockProfileStore{}
	store.On("Upsert", mock.Anything, mock.Anything).Return(model.Profile{
		UserID:    userID,
		Completed: true,
	}, nil)

	// A zone a day ahead of UTC: its current calendar date must count as
	// "today", not as a future birth date.
	ahead := time.FixedZone("UTC+14", 14*60*60)
	s := NewProfile(store, ahead, testutil.MakeNoopLogger())

	_, err := s.CompleteProfile(context.Background(), model.CompleteProfileParams{
		UserID:        userID,
		BirthDate:     model.FormatDate(model.DateOf(time.Now(), ahead)),
		InitialHeight: 180,
		InitialWeight: 75,
	})
	require.NoError(t, err)
}
