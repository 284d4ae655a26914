package pomodoro

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/pomo/internal/models"
)

// LineSurface prints title, status and hint changes as plain lines, for
// output that is not a terminal.
type LineSurface struct {
	out    io.Writer
	title  string
	status string
	hint   string
}

func NewLineSurface(out io.Writer) *LineSurface {
	return &LineSurface{out: out}
}

func (s *LineSurface) SetMinutes(string) {}

func (s *LineSurface) SetSeconds(string) {}

func (s *LineSurface) SetToggleLabel(string) {}

func (s *LineSurface) SetActiveMode(models.Mode) {}

func (s *LineSurface) SetProgress(float64) {}

func (s *LineSurface) SetTitle(title string) {
	if title == s.title {
		return
	}
	s.title = title
	fmt.Fprintln(s.out, title)
}

func (s *LineSurface) SetStatus(text string) {
	if text == s.status {
		return
	}
	s.status = text
	fmt.Fprintf(s.out, "status: %s\n", text)
}

func (s *LineSurface) SetHint(text string) {
	if text == s.hint {
		return
	}
	s.hint = text
	if text != "" {
		fmt.Fprintf(s.out, "hint: %s\n", text)
	}
}
