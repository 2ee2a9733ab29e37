package model

// Window is the target calendar date and hour a shift must start in to
// be due for a reminder with the given lead time.
type Window struct {
	Date      string // DD-MM-YYYY
	Hour      int    // 0-23
	LeadHours int
}

// ChannelResult is the outcome of one channel attempt within a pass.
type ChannelResult struct {
	Channel    Channel `json:"channel"`
	Outcome    Outcome `json:"outcome,omitempty"`
	ProviderID string  `json:"provider_id,omitempty"`
	Error      string  `json:"error,omitempty"`
	Suppressed bool    `json:"suppressed,omitempty"` // already delivered in this window
}

// DispatchResult is the per-shift outcome of a reminder pass.
type DispatchResult struct {
	ShiftID      string          `json:"shift_id"`
	UserID       string          `json:"user_id"`
	Phone        string          `json:"phone"`
	LeadHours    int             `json:"lead_hours"`
	Channels     []ChannelResult `json:"channels"`
	Delivered    bool            `json:"delivered"`               // at least one channel sent
	LedgerErrors []string        `json:"ledger_errors,omitempty"` // durable writes that failed
}
