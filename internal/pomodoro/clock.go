package pomodoro

import "fmt"

const invalidClock = "--"

// FormatClock splits seconds into zero-padded minute and second fields.
func FormatClock(seconds int) (string, string) {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d", seconds/60), fmt.Sprintf("%02d", seconds%60)
}

// Title is the window title for a readout: "MM:SS - suffix".
func Title(minutes, seconds, suffix string) string {
	return fmt.Sprintf("%s:%s - %s", minutes, seconds, suffix)
}
