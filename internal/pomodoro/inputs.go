package pomodoro

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// maxMinutes keeps minutes*60 from overflowing.
const maxMinutes = math.MaxInt / 60

// ParseMinutes reads the leading integer of a duration field the way a
// browser number input is usually parsed: "25", " 25 min" and "25.5" all
// give 25. Empty, non-numeric and negative input is not a usable duration,
// nor is anything whose length in seconds would not fit in an int.
func ParseMinutes(text string) (int, bool) {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n < 0 || n > maxMinutes {
		return 0, false
	}
	return n, true
}
