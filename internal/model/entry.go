package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EntryStore defines persistence operations for daily entries.
// Upsert is unconditional: it creates the row for (user, date) or replaces
// its mutable fields, refreshing updated_at and leaving created_at alone.
type EntryStore interface {
	Upsert(ctx context.Context, entry DailyEntry) (DailyEntry, error)
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (DailyEntry, error)
	List(ctx context.Context, userID uuid.UUID, filter EntryFilter) ([]DailyEntry, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]DailyEntry, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// DailyEntry is one day's health metrics. At most one exists per
// (user, date); resubmitting the same date overwrites it.
type DailyEntry struct {
	UserID    uuid.UUID
	Date      time.Time
	Height    float64
	Weight    float64
	Breakfast string
	Lunch     string
	Dinner    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EntrySortField enumerates the fields entries may be sorted by.
type EntrySortField string

const (
	EntrySortDate   EntrySortField = "date"
	EntrySortHeight EntrySortField = "height"
	EntrySortWeight EntrySortField = "weight"
)

// SortOrder enumerates sort directions.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// EntryFilter narrows and orders a listing. Nil bounds are open,
// ties are always broken by date ascending.
type EntryFilter struct {
	From   *time.Time
	To     *time.Time
	SortBy EntrySortField
	Order  SortOrder
}

// SubmitEntryParams contains parameters to submit a daily entry.
type SubmitEntryParams struct {
	UserID    uuid.UUID
	Date      string
	Height    float64
	Weight    float64
	Breakfast string
	Lunch     string
	Dinner    string
}
