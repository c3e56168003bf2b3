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

var _ model.EntryStore = (*EntryRepository)(nil)

// entrySortColumns whitelists the ORDER BY targets reachable from a filter.
var entrySortColumns = map[model.EntrySortField]string{
	model.EntrySortDate:   "entry_date",
	model.EntrySortHeight: "height",
	model.EntrySortWeight: "weight",
}

type EntryRepository struct {
	db *Connection
}

func NewEntryRepository(db *Connection) *EntryRepository {
	return &EntryRepository{
		db: db,
	}
}

// Upsert creates the entry for (user, date) or replaces its mutable fields.
// created_at is set once; updated_at is refreshed on every write.
func (r *EntryRepository) Upsert(ctx context.Context, entry model.DailyEntry) (model.DailyEntry, error) {
	query := `
		INSERT INTO daily_entries (user_id, entry_date, height, weight, breakfast, lunch, dinner, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (user_id, entry_date) DO UPDATE
		SET height = EXCLUDED.height,
		    weight = EXCLUDED.weight,
		    breakfast = EXCLUDED.breakfast,
		    lunch = EXCLUDED.lunch,
		    dinner = EXCLUDED.dinner,
		    updated_at = NOW()
		RETURNING user_id, entry_date, height, weight, breakfast, lunch, dinner, created_at, updated_at`

	var savedEntry model.DailyEntry
	err := r.db.QueryRow(ctx, query,
		entry.UserID, entry.Date, entry.Height, entry.Weight,
		entry.Breakfast, entry.Lunch, entry.Dinner,
	).Scan(
		&savedEntry.UserID, &savedEntry.Date, &savedEntry.Height, &savedEntry.Weight,
		&savedEntry.Breakfast, &savedEntry.Lunch, &savedEntry.Dinner,
		&savedEntry.CreatedAt, &savedEntry.UpdatedAt,
	)
	if err != nil {
		return model.DailyEntry{}, fmt.Errorf("failed to upsert entry: %w", err)
	}

	return savedEntry, nil
}

func (r *EntryRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (model.DailyEntry, error) {
	var entry model.DailyEntry
	query := `
		SELECT user_id, entry_date, height, weight, breakfast, lunch, dinner, created_at, updated_at
		FROM daily_entries
		WHERE user_id = $1 AND entry_date = $2`

	err := r.db.QueryRow(ctx, query, userID, date).Scan(
		&entry.UserID, &entry.Date, &entry.Height, &entry.Weight,
		&entry.Breakfast, &entry.Lunch, &entry.Dinner,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DailyEntry{}, model.ErrNotFound
		}
		return model.DailyEntry{}, fmt.Errorf("failed to get entry by user and date: %w", err)
	}

	return entry, nil
}

func (r *EntryRepository) List(ctx context.Context, userID uuid.UUID, filter model.EntryFilter) ([]model.DailyEntry, error) {
	column, ok := entrySortColumns[filter.SortBy]
	if !ok {
		return nil, fmt.Errorf("unsupported sort field: %s", filter.SortBy)
	}
	direction := "ASC"
	if filter.Order == model.SortDesc {
		direction = "DESC"
	}

	query := `
		SELECT user_id, entry_date, height, weight, breakfast, lunch, dinner, created_at, updated_at
		FROM daily_entries
		WHERE user_id = $1`
	args := []any{userID}

	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND entry_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND entry_date <= $%d", len(args))
	}

	query += fmt.Sprintf(" ORDER BY %s %s, entry_date ASC", column, direction)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *EntryRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]model.DailyEntry, error) {
	query := `
		SELECT user_id, entry_date, height, weight, breakfast, lunch, dinner, created_at, updated_at
		FROM daily_entries
		WHERE user_id = $1
		ORDER BY entry_date DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

func (r *EntryRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM daily_entries WHERE user_id = $1`
	cmd, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entries by user: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanEntries(rows pgx.Rows) ([]model.DailyEntry, error) {
	var entries []model.DailyEntry
	for rows.Next() {
		var entry model.DailyEntry
		err := rows.Scan(
			&entry.UserID, &entry.Date, &entry.Height, &entry.Weight,
			&entry.Breakfast, &entry.Lunch, &entry.Dinner,
			&entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
