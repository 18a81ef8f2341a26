package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tallerhq/ops-backend-go/internal/domain/holiday"
	"github.com/tallerhq/ops-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (date, name, non_waivable, multiplier)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		h.Date,
		h.Name,
		h.NonWaivable,
		h.Multiplier,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)

	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// FindByDate implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) FindByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, non_waivable, multiplier, created_at, updated_at
		FROM holidays
		WHERE date = $1
		LIMIT 1
	`

	var h holiday.Holiday
	err := q.QueryRow(ctx, query, date.Format("2006-01-02")).Scan(
		&h.ID, &h.Date, &h.Name, &h.NonWaivable, &h.Multiplier, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find holiday by date: %w", err)
	}

	return &h, nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) List(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, non_waivable, multiplier, created_at, updated_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.NonWaivable, &h.Multiplier, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
