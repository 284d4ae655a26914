package pomodoro

import (
	"fmt"

	"github.com/akyairhashvil/pomo/internal/models"
)

// EffectError wraps a failed particle burst.
type EffectError struct {
	Op   string
	Mode models.Mode
	Err  error
}

func (e *EffectError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s celebration: %v", e.Op, e.Mode, e.Err)
}

func (e *EffectError) Unwrap() error { return e.Err }

func wrapEffectErr(op string, mode models.Mode, err error) error {
	if err == nil {
		return nil
	}
	return &EffectError{Op: op, Mode: mode, Err: err}
}
