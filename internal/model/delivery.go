package model

import (
	"time"

	"github.com/google/uuid"
)

// Channel is a delivery mechanism for a reminder.
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelVoice Channel = "voice"
)

// Outcome is the terminal state of a dispatch attempt.
type Outcome string

const (
	OutcomeSent   Outcome = "sent"
	OutcomeFailed Outcome = "failed"
)

// DeliveryRecord is an append-only audit entry for one dispatch attempt.
type DeliveryRecord struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`     // recipient
	ShiftID    string    `json:"shift_id"`    // related shift
	LeadHours  int       `json:"lead_hours"`  // 2 or 24
	Channel    Channel   `json:"channel"`     // sms or voice
	Outcome    Outcome   `json:"outcome"`     // sent or failed
	ProviderID string    `json:"provider_id"` // provider reference, set when sent
	Error      string    `json:"error"`       // error detail, set when failed
	Phone      string    `json:"phone"`       // number the attempt was made to
	CreatedAt  time.Time `json:"created_at"`
}

// Failure is one entry of the process-local recent failures view.
type Failure struct {
	Type      string    `json:"type"` // sms, voice or ledger
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	Phone     string    `json:"to"`
	ShiftID   string    `json:"shift_id"`
}

// DeliveryFilter narrows a ledger query. Zero values mean "no bound".
type DeliveryFilter struct {
	UserID string
	From   time.Time
	To     time.Time
	Limit  int
}
