package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/pomodoro"
	"github.com/charmbracelet/x/ansi"
)

// FormatDuration formats a whole-minute duration for display (e.g., "25m", "1h 30m").
func FormatDuration(d time.Duration) string {
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// formatMinutesInput renders a raw duration field; unusable input shows
// the invalid clock placeholder.
func formatMinutesInput(text string) string {
	minutes, ok := pomodoro.ParseMinutes(text)
	if !ok {
		return "--"
	}
	return FormatDuration(time.Duration(minutes) * time.Minute)
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func keyLabel(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
