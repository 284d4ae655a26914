package pomodoro

import "github.com/akyairhashvil/pomo/internal/models"

// Command is a named user action. Hosts translate their input events into
// commands and hand them to Dispatch.
type Command interface {
	apply(c *Controller)
}

type (
	Start  struct{}
	Pause  struct{}
	Toggle struct{}
	Reset  struct{}

	SetMode struct {
		Mode models.Mode
	}

	SetDuration struct {
		Mode models.Mode
		Text string
	}

	SetFocusLabel struct {
		Text string
	}
)

func (Start) apply(c *Controller) { c.Start() }
func (Pause) apply(c *Controller) { c.Pause() }
func (Toggle) apply(c *Controller) { c.Toggle() }
func (Reset) apply(c *Controller) { c.Reset() }
func (s SetMode) apply(c *Controller) { c.SetMode(s.Mode) }
func (s SetDuration) apply(c *Controller) { c.SetDuration(s.Mode, s.Text) }
func (s SetFocusLabel) apply(c *Controller) { c.SetFocusLabel(s.Text) }

// Dispatch applies cmds in order.
func (c *Controller) Dispatch(cmds ...Command) {
	for _, cmd := range cmds {
		if cmd == nil {
			continue
		}
		cmd.apply(c)
	}
}
