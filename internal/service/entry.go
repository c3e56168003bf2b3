package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vitalog/vitalog-server/internal/logger"
	"github.com/vitalog/vitalog-server/internal/model"
)

// Entry owns validated upsert and read of per-day metrics. Submitting the
// same date twice overwrites the stored fields; entry submission does not
// require a completed profile.
type Entry struct {
	entryStore model.EntryStore
	logger     *logger.Logger
}

func NewEntry(entryStore model.EntryStore, logger *logger.Logger) *Entry {
	return &Entry{
		entryStore: entryStore,
		logger:     logger,
	}
}

func (s *Entry) SubmitEntry(ctx context.Context, params model.SubmitEntryParams) (model.DailyEntry, error) {
	date, err := model.ParseDate(params.Date)
	if err != nil {
		return model.DailyEntry{}, model.NewValidationError("date", "invalid date format, use YYYY-MM-DD")
	}

	if params.Height < minHeightCm || params.Height > maxHeightCm {
		return model.DailyEntry{}, model.NewValidationError("height",
			fmt.Sprintf("height must be between %d and %d cm", minHeightCm, maxHeightCm))
	}
	if params.Weight < minWeightKg || params.Weight > maxWeightKg {
		return model.DailyEntry{}, model.NewValidationError("weight",
			fmt.Sprintf("weight must be between %d and %d kg", minWeightKg, maxWeightKg))
	}

	params.Breakfast = strings.TrimSpace(params.Breakfast)
	params.Lunch = strings.TrimSpace(params.Lunch)
	params.Dinner = strings.TrimSpace(params.Dinner)
	if params.Breakfast == "" {
		return model.DailyEntry{}, model.NewValidationError("breakfast", "breakfast description is required")
	}
	if params.Lunch == "" {
		return model.DailyEntry{}, model.NewValidationError("lunch", "lunch description is required")
	}
	if params.Dinner == "" {
		return model.DailyEntry{}, model.NewValidationError("dinner", "dinner description is required")
	}

	entry, err := s.entryStore.Upsert(ctx, model.DailyEntry{
		UserID:    params.UserID,
		Date:      date,
		Height:    params.Height,
		Weight:    params.Weight,
		Breakfast: params.Breakfast,
		Lunch:     params.Lunch,
		Dinner:    params.Dinner,
	})
	if err != nil {
		return model.DailyEntry{}, fmt.Errorf("failed to save entry: %w", err)
	}

	s.logger.Info("Entry service: entry submitted",
		"user_id", params.UserID,
		"date", model.FormatDate(entry.Date))

	return entry, nil
}

// ListEntries returns the user's entries matching the filter, sorted by the
// requested field with ties broken by date ascending. Missing sort
// parameters default to date descending, most recent first.
func (s *Entry) ListEntries(ctx context.Context, userID uuid.UUID, filter model.EntryFilter) ([]model.DailyEntry, error) {
	if filter.SortBy == "" {
		filter.SortBy = model.EntrySortDate
	}
	if filter.Order == "" {
		filter.Order = model.SortDesc
	}

	switch filter.SortBy {
	case model.EntrySortDate, model.EntrySortHeight, model.EntrySortWeight:
	default:
		return nil, model.NewValidationError("sort_by", "must be one of date, height, weight")
	}
	switch filter.Order {
	case model.SortAsc, model.SortDesc:
	default:
		return nil, model.NewValidationError("order", "must be asc or desc")
	}

	entries, err := s.entryStore.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return entries, nil
}
