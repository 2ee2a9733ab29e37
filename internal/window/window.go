// Package window computes the calendar window a shift has to start in
// to be due for a reminder.
//
// Shifts are stored with a user-entered date and start time instead of
// an absolute timestamp, so matching happens in calendar terms of a
// single configured location.
package window

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aliskhannn/shift-reminder/internal/model"
)

// DateLayout is the layout shift dates are stored in.
const DateLayout = "02-01-2006"

// Tolerance is the accepted distance in hours between a shift's start
// hour and the target hour.
const Tolerance = 1

const (
	LeadShort = 2
	LeadLong  = 24
)

// LeadTimes are the supported lead times in hours.
var LeadTimes = []int{LeadLong, LeadShort}

var ErrInvalidLeadTime = errors.New("invalid lead time")

// Validate returns ErrInvalidLeadTime unless leadHours is supported.
func Validate(leadHours int) error {
	for _, h := range LeadTimes {
		if h == leadHours {
			return nil
		}
	}

	return fmt.Errorf("%w: %d, must be %d or %d", ErrInvalidLeadTime, leadHours, LeadShort, LeadLong)
}

// Compute returns the target date and hour for now + leadHours in loc.
func Compute(now time.Time, leadHours int, loc *time.Location) (model.Window, error) {
	if err := Validate(leadHours); err != nil {
		return model.Window{}, err
	}

	if loc == nil {
		loc = time.Local
	}

	target := now.Add(time.Duration(leadHours) * time.Hour).In(loc)

	return model.Window{
		Date:      target.Format(DateLayout),
		Hour:      target.Hour(),
		LeadHours: leadHours,
	}, nil
}

// Matches reports whether a shift starting at startHour is due for a
// window with targetHour. Distance is plain integer distance: there is
// no wraparound at midnight, a 00:xx shift lives on the next date and
// is matched by that date's windows.
func Matches(startHour, targetHour int) bool {
	d := startHour - targetHour
	if d < 0 {
		d = -d
	}

	return d <= Tolerance
}

// StartHour parses the hour of a stored "HH:MM" start time.
func StartHour(startTime string) (int, error) {
	hh, _, _ := strings.Cut(strings.TrimSpace(startTime), ":")

	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("parse start time %q: %w", startTime, err)
	}

	if h < 0 || h > 23 {
		return 0, fmt.Errorf("parse start time %q: hour out of range", startTime)
	}

	return h, nil
}

// Phrase is the human wording of a lead time used in reminder texts.
func Phrase(leadHours int) string {
	if leadHours == LeadLong {
		return "24 hours"
	}

	return "2 hours"
}
