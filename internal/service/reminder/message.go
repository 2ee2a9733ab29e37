package reminder

import (
	"fmt"

	"github.com/aliskhannn/shift-reminder/internal/model"
	"github.com/aliskhannn/shift-reminder/internal/window"
)

// SMSText is the text message body for a shift reminder.
func SMSText(sh model.Shift, leadHours int) string {
	return fmt.Sprintf("NurseMate Alert: Shift in %s!\nDate: %s\nTime: %s to %s\nLocation: %s",
		window.Phrase(leadHours), sh.Date, sh.StartTime, sh.EndTime, sh.Department)
}

// VoiceScript is read aloud on the reminder call.
func VoiceScript(sh model.Shift, leadHours int) string {
	return fmt.Sprintf("This is NurseMate. You have a shift in %s. On %s, from %s to %s, at %s.",
		window.Phrase(leadHours), sh.Date, sh.StartTime, sh.EndTime, sh.Department)
}
