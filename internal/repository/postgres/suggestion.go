package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/vitalog/vitalog-server/internal/model"
)

var _ model.SuggestionStore = (*SuggestionRepository)(nil)

type SuggestionRepository struct {
	db *Connection
}

func NewSuggestionRepository(db *Connection) *SuggestionRepository {
	return &SuggestionRepository{
		db: db,
	}
}

// Create inserts the suggestion for (user, date) if none exists; otherwise
// it reads the row that is already there. The insert and the fallback read
// run in one statement, so concurrent callers for the same key all observe
// the single winning row and exactly one of them gets inserted = true.
//
// The statement can legitimately return zero rows: when two calls overlap,
// the loser's ON CONFLICT skips the insert after the winner commits, but
// the winner's row is not visible to the loser's statement snapshot yet.
// A fresh statement sees the committed row, so no-rows is retried rather
// than surfaced.
func (r *SuggestionRepository) Create(ctx context.Context, suggestion model.Suggestion) (model.Suggestion, bool, error) {
	query := `
		WITH ins AS (
			INSERT INTO suggestions (user_id, suggestion_date, suggestion)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, suggestion_date) DO NOTHING
			RETURNING user_id, suggestion_date, suggestion, created_at
		)
		SELECT user_id, suggestion_date, suggestion, created_at, TRUE AS inserted
		FROM ins
		UNION ALL
		SELECT s.user_id, s.suggestion_date, s.suggestion, s.created_at, FALSE
		FROM suggestions s
		WHERE NOT EXISTS (SELECT 1 FROM ins) AND s.user_id = $1 AND s.suggestion_date = $2
		LIMIT 1`

	for {
		var savedSuggestion model.Suggestion
		var inserted bool
		err := r.db.QueryRow(ctx, query,
			suggestion.UserID, suggestion.Date, suggestion.Text,
		).Scan(
			&savedSuggestion.UserID, &savedSuggestion.Date, &savedSuggestion.Text,
			&savedSuggestion.CreatedAt, &inserted,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			if ctx.Err() != nil {
				return model.Suggestion{}, false, ctx.Err()
			}
			continue
		}
		if err != nil {
			return model.Suggestion{}, false, fmt.Errorf("failed to create suggestion: %w", err)
		}

		return savedSuggestion, inserted, nil
	}
}

func (r *SuggestionRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (model.Suggestion, error) {
	var suggestion model.Suggestion
	query := `SELECT user_id, suggestion_date, suggestion, created_at
			  FROM suggestions WHERE user_id = $1 AND suggestion_date = $2`

	err := r.db.QueryRow(ctx, query, userID, date).Scan(
		&suggestion.UserID, &suggestion.Date, &suggestion.Text, &suggestion.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Suggestion{}, model.ErrNotFound
		}
		return model.Suggestion{}, fmt.Errorf("failed to get suggestion by user and date: %w", err)
	}

	return suggestion, nil
}

func (r *SuggestionRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM suggestions WHERE user_id = $1`
	cmd, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete suggestions by user: %w", err)
	}
	return cmd.RowsAffected(), nil
}
