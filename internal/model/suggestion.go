package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SuggestionStore defines persistence operations for generated suggestions.
// Create is conditional (create-if-absent): it is the single serialization
// point for the once-per-day invariant. The returned flag reports whether
// this call's row won; losers receive the winner's stored suggestion.
type SuggestionStore interface {
	Create(ctx context.Context, suggestion Suggestion) (Suggestion, bool, error)
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (Suggestion, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Suggestion is a generated recommendation. Its existence for (user, date)
// means the day's quota is used; it doubles as the cache.
type Suggestion struct {
	UserID    uuid.UUID
	Date      time.Time
	Text      string
	CreatedAt time.Time
}

// SuggestionResult is returned to callers requesting today's suggestion.
type SuggestionResult struct {
	Text            string
	AlreadyReceived bool
}

// SuggestionContext is the payload handed to the text provider.
// RecentEntries are ordered most recent first.
type SuggestionContext struct {
	Profile       Profile
	RecentEntries []DailyEntry
}

// SuggestionProvider generates free text from a context payload.
// Implementations may be slow or unavailable; callers bound every
// invocation with a context deadline.
type SuggestionProvider interface {
	Generate(ctx context.Context, payload SuggestionContext) (string, error)
}
