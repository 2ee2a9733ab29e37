package shift

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/shift-reminder/internal/model"
)

// Repository provides read access to the shifts table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new shift repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// FindScheduledByDate returns all scheduled shifts on the given date (DD-MM-YYYY).
func (r *Repository) FindScheduledByDate(ctx context.Context, date string) ([]model.Shift, error) {
	query := `
		SELECT id, user_id, date, start_time, end_time, type, department, notes, status
		FROM shifts
		WHERE date = $1 AND status = $2;
    `

	rows, err := r.db.QueryContext(ctx, query, date, string(model.ShiftScheduled))
	if err != nil {
		return nil, fmt.Errorf("failed to find shifts by date: %w", err)
	}
	defer rows.Close()

	var shifts []model.Shift
	for rows.Next() {
		var s model.Shift
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Date, &s.StartTime, &s.EndTime, &s.Type, &s.Department, &s.Notes, &s.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}

		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}
