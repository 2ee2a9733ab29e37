package model

import "errors"

// ErrContactUnavailable marks a recipient that must not be contacted:
// opted out or without a phone number. It is a skip, not a failure.
var ErrContactUnavailable = errors.New("contact unavailable")

// ContactProfile holds the reachability preferences of a person.
type ContactProfile struct {
	UserID        string `json:"user_id"`
	Phone         string `json:"phone"`          // E.164 mobile number, empty when not set
	OptIn         bool   `json:"opt_in"`         // sms notifications enabled
	PhoneVerified bool   `json:"phone_verified"` // informational, not required for reminders
}

// CanReceive reports whether a reminder may be sent to the profile.
func (p ContactProfile) CanReceive() bool {
	return p.OptIn && p.Phone != ""
}
