package model

// ShiftStatus is the lifecycle state of a shift.
type ShiftStatus string

const (
	ShiftScheduled  ShiftStatus = "scheduled"
	ShiftInProgress ShiftStatus = "in-progress"
	ShiftCompleted  ShiftStatus = "completed"
	ShiftCancelled  ShiftStatus = "cancelled"
)

// Shift represents one scheduled work period of a single person.
type Shift struct {
	ID         string      `json:"id"`         // document identifier
	UserID     string      `json:"user_id"`    // owning person
	Date       string      `json:"date"`       // calendar date, DD-MM-YYYY as entered by the user
	StartTime  string      `json:"start_time"` // HH:MM
	EndTime    string      `json:"end_time"`   // HH:MM
	Type       string      `json:"type"`       // shift category, e.g. "day", "night"
	Department string      `json:"department"` // department or location label
	Notes      string      `json:"notes"`
	Status     ShiftStatus `json:"status"`
}
