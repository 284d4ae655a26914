package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for names that match no mode.
var ErrUnknownMode = errors.New("unknown mode")

// Mode selects which interval the timer counts down.
type Mode int

const (
	ModeFocus Mode = iota
	ModeBreak
)

// Modes lists every mode in selector order.
var Modes = []Mode{ModeFocus, ModeBreak}

func (m Mode) String() string {
	switch m {
	case ModeFocus:
		return "focus"
	case ModeBreak:
		return "break"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Label is the name shown on the mode selector.
func (m Mode) Label() string {
	if m == ModeBreak {
		return "Break"
	}
	return "Pomodoro"
}

// ParseMode accepts "focus", "pomodoro" or "break" in any case.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "focus", "pomodoro":
		return ModeFocus, nil
	case "break":
		return ModeBreak, nil
	}
	return ModeFocus, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// TimerState is a snapshot of the countdown.
type TimerState struct {
	Mode             Mode
	RemainingSeconds int
	TotalSeconds     int
	Running          bool
	FocusLabel       string
	Valid            bool // false when the duration input did not parse
}

// Progress is RemainingSeconds as a percentage of TotalSeconds.
func (s TimerState) Progress() float64 {
	if s.TotalSeconds <= 0 {
		return 0
	}
	return float64(s.RemainingSeconds) / float64(s.TotalSeconds) * 100
}

// Origin is a point in normalized [0,1]x[0,1] screen space.
type Origin struct {
	X float64
	Y float64
}

// Burst configures one particle-effect invocation.
type Burst struct {
	ParticleCount int
	StartVelocity float64
	Spread        float64 // degrees
	Ticks         int     // particle lifetime in animation frames
	ZIndex        int
	Colors        []string
	Shapes        []string
	Gravity       float64
	Scalar        float64
	Origin        Origin
}
