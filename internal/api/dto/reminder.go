package dto

type TriggerRequest struct {
	Hours int `json:"hours" validate:"required,oneof=2 24"`
}

// SentReminder identifies one shift whose owner received a reminder.
type SentReminder struct {
	ShiftID string `json:"shiftId"`
	UserID  string `json:"userId"`
	Phone   string `json:"phone"`
}

type TriggerResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	RemindersSent int            `json:"remindersSent"`
	Reminders     []SentReminder `json:"reminders"`
}
