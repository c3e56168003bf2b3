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

// Suggestion owns the once-per-day generation protocol: at most one
// generated recommendation per user per calendar date, with the stored
// row serving as both cache and quota token. The store's conditional
// Create is the only synchronization point; requests may run on
// independent processes, so no in-process lock would be sufficient.
type Suggestion struct {
	suggestionStore model.SuggestionStore
	entryStore      model.EntryStore
	profileStore    model.ProfileStore
	provider        model.SuggestionProvider
	location        *time.Location
	recentEntries   int
	providerTimeout time.Duration
	logger          *logger.Logger
}

func NewSuggestion(
	suggestionStore model.SuggestionStore,
	entryStore model.EntryStore,
	profileStore model.ProfileStore,
	provider model.SuggestionProvider,
	location *time.Location,
	recentEntries int,
	providerTimeout time.Duration,
	logger *logger.Logger,
) *Suggestion {
	return &Suggestion{
		suggestionStore: suggestionStore,
		entryStore:      entryStore,
		profileStore:    profileStore,
		provider:        provider,
		location:        location,
		recentEntries:   recentEntries,
		providerTimeout: providerTimeout,
		logger:          logger,
	}
}

// RequestSuggestion returns today's recommendation for the user, generating
// it if the day's slot is still free. A provider failure writes nothing, so
// the user may retry the same day. When concurrent requests race for the
// slot, the losers discard their generated text and converge on the
// winner's stored row.
func (s *Suggestion) RequestSuggestion(ctx context.Context, userID uuid.UUID, now time.Time) (model.SuggestionResult, error) {
	profile, err := s.profileStore.GetByUserID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.SuggestionResult{}, model.ErrProfileIncomplete
	}
	if err != nil {
		return model.SuggestionResult{}, fmt.Errorf("failed to get profile: %w", err)
	}
	if !profile.Completed {
		return model.SuggestionResult{}, model.ErrProfileIncomplete
	}

	date := model.DateOf(now, s.location)

	existing, err := s.suggestionStore.GetByUserAndDate(ctx, userID, date)
	if err == nil {
		return model.SuggestionResult{Text: existing.Text, AlreadyReceived: true}, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.SuggestionResult{}, fmt.Errorf("failed to get suggestion: %w", err)
	}

	recent, err := s.entryStore.ListRecent(ctx, userID, s.recentEntries)
	if err != nil {
		return model.SuggestionResult{}, fmt.Errorf("failed to list recent entries: %w", err)
	}

	generateCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	text, err := s.provider.Generate(generateCtx, model.SuggestionContext{
		Profile:       profile,
		RecentEntries: recent,
	})
	if err != nil {
		s.logger.Error("Suggestion service: generation failed",
			"user_id", userID,
			"date", model.FormatDate(date),
			"error", err.Error())
		return model.SuggestionResult{}, fmt.Errorf("%w: %v", model.ErrProviderUnavailable, err)
	}

	saved, created, err := s.suggestionStore.Create(ctx, model.Suggestion{
		UserID: userID,
		Date:   date,
		Text:   text,
	})
	if err != nil {
		return model.SuggestionResult{}, fmt.Errorf("failed to save suggestion: %w", err)
	}

	if !created {
		// A concurrent request won the race; its text is canonical.
		s.logger.Info("Suggestion service: lost creation race, returning stored suggestion",
			"user_id", userID,
			"date", model.FormatDate(date))
	} else {
		s.logger.Info("Suggestion service: suggestion generated",
			"user_id", userID,
			"date", model.FormatDate(date))
	}

	return model.SuggestionResult{Text: saved.Text, AlreadyReceived: !created}, nil
}
