package delivery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/shift-reminder/internal/model"
)

// DefaultLimit caps history queries that do not set a limit.
const DefaultLimit = 50

// Repository provides append and query access to the notification_logs table.
type Repository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

// NewRepository creates a new delivery record repository. Writes are
// retried with the given strategy.
func NewRepository(db *dbpg.DB, strategy retry.Strategy) *Repository {
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}

	return &Repository{db: db, strategy: strategy}
}

// Append inserts a delivery record. Records are never updated; a retry
// of an insert that already committed is a no-op.
func (r *Repository) Append(ctx context.Context, rec model.DeliveryRecord) error {
	query := `
		INSERT INTO notification_logs (
		    id, user_id, shift_id, lead_hours, channel, outcome, provider_id, error, phone, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING;
    `

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rec.ID, rec.UserID, rec.ShiftID, rec.LeadHours, string(rec.Channel), string(rec.Outcome),
		rec.ProviderID, rec.Error, rec.Phone, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append delivery record: %w", err)
	}

	return nil
}

// Query returns delivery records matching the filter, newest first.
func (r *Repository) Query(ctx context.Context, f model.DeliveryFilter) ([]model.DeliveryRecord, error) {
	var (
		conds []string
		args  []interface{}
	)

	if f.UserID != "" {
		args = append(args, f.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if !f.From.IsZero() {
		args = append(args, f.From)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		conds = append(conds, fmt.Sprintf("created_at < $%d", len(args)))
	}

	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	args = append(args, limit)

	var sb strings.Builder
	sb.WriteString(`SELECT id, user_id, shift_id, lead_hours, channel, outcome, provider_id, error, phone, created_at
		FROM notification_logs`)
	if len(conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString(fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d;", len(args)))

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query delivery records: %w", err)
	}
	defer rows.Close()

	var records []model.DeliveryRecord
	for rows.Next() {
		var (
			rec              model.DeliveryRecord
			channel, outcome string
		)
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.ShiftID, &rec.LeadHours, &channel, &outcome,
			&rec.ProviderID, &rec.Error, &rec.Phone, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan delivery record: %w", err)
		}

		rec.Channel = model.Channel(channel)
		rec.Outcome = model.Outcome(outcome)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate delivery records: %w", err)
	}

	return records, nil
}

// HasSent reports whether a sent record exists for the shift, lead time
// and channel at or after since.
func (r *Repository) HasSent(
	ctx context.Context, shiftID string, leadHours int, channel model.Channel, since time.Time,
) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1 FROM notification_logs
		    WHERE shift_id = $1 AND lead_hours = $2 AND channel = $3 AND outcome = $4 AND created_at >= $5
		);
    `

	var exists bool
	err := r.db.QueryRowContext(
		ctx, query, shiftID, leadHours, string(channel), string(model.OutcomeSent), since,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check delivery records: %w", err)
	}

	return exists, nil
}
