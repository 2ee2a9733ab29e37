package ledger

import (
	"sync"

	"github.com/aliskhannn/shift-reminder/internal/model"
)

// DefaultBufferSize is used when a non-positive size is configured.
const DefaultBufferSize = 500

type entry struct {
	rec      model.DeliveryRecord
	writeErr string // durable write error, empty when persisted
}

// Buffer is a bounded in-process ring of failed deliveries and records
// that could not be persisted. It is not authoritative and is lost on
// restart.
type Buffer struct {
	mu    sync.Mutex
	items []entry
	next  int
	full  bool
}

// NewBuffer creates a ring buffer holding at most size failure entries.
func NewBuffer(size int) *Buffer {
	if size <= 0 {
		size = DefaultBufferSize
	}

	return &Buffer{items: make([]entry, size)}
}

func (e entry) failed() bool {
	return e.writeErr != "" || e.rec.Outcome == model.OutcomeFailed
}

// add buffers e if it is a failure; persisted successful sends are dropped.
func (b *Buffer) add(e entry) {
	if !e.failed() {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.items[b.next] = e
	b.next = (b.next + 1) % len(b.items)
	if b.next == 0 {
		b.full = true
	}
}

// snapshot returns the buffered entries, oldest first.
func (b *Buffer) snapshot() []entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.full {
		out := make([]entry, b.next)
		copy(out, b.items[:b.next])
		return out
	}

	out := make([]entry, 0, len(b.items))
	out = append(out, b.items[b.next:]...)
	out = append(out, b.items[:b.next]...)
	return out
}

// Failures returns failed deliveries and unpersisted records, newest first.
func (b *Buffer) Failures() []model.Failure {
	entries := b.snapshot()

	failures := make([]model.Failure, 0)
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]

		if e.writeErr != "" {
			failures = append(failures, model.Failure{
				Type:      "ledger",
				Error:     e.writeErr,
				Timestamp: e.rec.CreatedAt,
				UserID:    e.rec.UserID,
				Phone:     e.rec.Phone,
				ShiftID:   e.rec.ShiftID,
			})
		}

		if e.rec.Outcome == model.OutcomeFailed {
			failures = append(failures, model.Failure{
				Type:      string(e.rec.Channel),
				Error:     e.rec.Error,
				Timestamp: e.rec.CreatedAt,
				UserID:    e.rec.UserID,
				Phone:     e.rec.Phone,
				ShiftID:   e.rec.ShiftID,
			})
		}
	}

	return failures
}

// Len returns the number of buffered failure entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.full {
		return len(b.items)
	}

	return b.next
}
