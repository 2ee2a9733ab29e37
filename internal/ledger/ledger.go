// Package ledger records every reminder dispatch attempt.
//
// Records are written to durable storage and mirrored into a bounded
// in-process buffer that backs the recent failures view. Records are
// append-only; nothing in the ledger is ever updated.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/shift-reminder/internal/model"
)

var ErrLedgerWriteFailed = errors.New("ledger write failed")

//go:generate mockgen -source=ledger.go -destination=../mocks/ledger/mock.go -package=mocks

type deliveryRepository interface {
	Append(ctx context.Context, rec model.DeliveryRecord) error
	Query(ctx context.Context, f model.DeliveryFilter) ([]model.DeliveryRecord, error)
	HasSent(ctx context.Context, shiftID string, leadHours int, channel model.Channel, since time.Time) (bool, error)
}

type eventPublisher interface {
	Publish(rec model.DeliveryRecord, strategy retry.Strategy) error
}

// Ledger is the append-only record of delivery attempts.
type Ledger struct {
	repo         deliveryRepository
	buffer       *Buffer
	events       eventPublisher
	strategy     retry.Strategy
	writeTimeout time.Duration
}

// New creates a ledger. events may be nil when the delivery event
// stream is disabled; a zero writeTimeout disables the write deadline.
func New(
	repo deliveryRepository,
	buffer *Buffer,
	events eventPublisher,
	strategy retry.Strategy,
	writeTimeout time.Duration,
) *Ledger {
	return &Ledger{
		repo:         repo,
		buffer:       buffer,
		events:       events,
		strategy:     strategy,
		writeTimeout: writeTimeout,
	}
}

// Record durably appends rec and mirrors failures into the buffer. The
// write is detached from ctx cancellation so an attempt made at the end
// of an interrupted pass is still audited; writeTimeout bounds it. It
// returns an error wrapping ErrLedgerWriteFailed when the write fails.
func (l *Ledger) Record(ctx context.Context, rec model.DeliveryRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	wctx := context.WithoutCancel(ctx)
	if l.writeTimeout > 0 {
		var cancel context.CancelFunc
		wctx, cancel = context.WithTimeout(wctx, l.writeTimeout)
		defer cancel()
	}

	err := l.repo.Append(wctx, rec)
	if err != nil {
		l.buffer.add(entry{rec: rec, writeErr: err.Error()})

		zlog.Logger.Error().
			Err(err).
			Str("shift_id", rec.ShiftID).
			Str("channel", string(rec.Channel)).
			Str("outcome", string(rec.Outcome)).
			Msg("failed to persist delivery record")

		return fmt.Errorf("%w: %w", ErrLedgerWriteFailed, err)
	}

	l.buffer.add(entry{rec: rec})

	if l.events != nil {
		if err := l.events.Publish(rec, l.strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("id", rec.ID.String()).Msg("failed to publish delivery event")
		}
	}

	return nil
}

// Query returns durable records for a recipient and time range.
func (l *Ledger) Query(ctx context.Context, f model.DeliveryFilter) ([]model.DeliveryRecord, error) {
	records, err := l.repo.Query(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("query delivery records: %w", err)
	}

	return records, nil
}

// HasSent reports whether the channel already delivered a reminder for
// the shift and lead time since the given instant.
func (l *Ledger) HasSent(
	ctx context.Context, shiftID string, leadHours int, channel model.Channel, since time.Time,
) (bool, error) {
	ok, err := l.repo.HasSent(ctx, shiftID, leadHours, channel, since)
	if err != nil {
		return false, fmt.Errorf("check delivery records: %w", err)
	}

	return ok, nil
}

// RecentFailures returns the buffered failures of this process, newest first.
func (l *Ledger) RecentFailures() []model.Failure {
	return l.buffer.Failures()
}
