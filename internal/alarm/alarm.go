// Package alarm plays the interval-complete sound.
package alarm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

var (
	// ErrPlaybackDenied means the output refused the sound; a later retry
	// may succeed.
	ErrPlaybackDenied = errors.New("alarm playback denied")
	ErrNoCommand      = errors.New("alarm command is empty")
)

// Player plays the alarm from its start and stops it again.
type Player interface {
	Play() error
	Stop() error
}

// Nop never makes a sound.
type Nop struct{}

func (Nop) Play() error { return nil }
func (Nop) Stop() error { return nil }

// TerminalPath is the controlling terminal. The TUI rings the bell there
// so it never writes into the stream the renderer owns.
var TerminalPath = "/dev/tty"

// OpenTerminal opens TerminalPath for writing.
func OpenTerminal() (*os.File, error) {
	f, err := os.OpenFile(TerminalPath, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return f, nil
}

// Bell rings the terminal bell.
type Bell struct {
	out io.Writer
	tty bool
}

// NewBell rings on f when f is a terminal. A nil f never rings.
func NewBell(f *os.File) *Bell {
	if f == nil {
		return &Bell{}
	}
	return &Bell{out: f, tty: term.IsTerminal(int(f.Fd()))}
}

// newBellWriter rings on w; tty reports whether w reaches a terminal.
func newBellWriter(w io.Writer, tty bool) *Bell {
	return &Bell{out: w, tty: tty}
}

func (b *Bell) Play() error {
	if !b.tty {
		return ErrPlaybackDenied
	}
	if _, err := io.WriteString(b.out, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	return nil
}

// Stop is a no-op; the bell cannot be interrupted.
func (b *Bell) Stop() error { return nil }

// Command plays the alarm by running an external program such as
// "paplay alarm.wav". Each Play starts the program from the beginning.
type Command struct {
	name string
	args []string
	cmd  *exec.Cmd
}

func NewCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrNoCommand
	}
	return &Command{name: fields[0], args: fields[1:]}, nil
}

func (c *Command) Play() error {
	if err := c.Stop(); err != nil {
		return err
	}
	cmd := exec.Command(c.name, c.args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", c.name, err)
	}
	c.cmd = cmd
	go func() { _ = cmd.Wait() }()
	return nil
}

// Stop kills a running playback. The next Play starts over.
func (c *Command) Stop() error {
	if c.cmd == nil || c.cmd.Process == nil {
		return nil
	}
	err := c.cmd.Process.Kill()
	c.cmd = nil
	if err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("stop %s: %w", c.name, err)
	}
	return nil
}

// playing reports whether a playback process was started and not stopped.
func (c *Command) playing() bool { return c.cmd != nil }

// New picks the player for the given settings: nothing when silent, the
// external command when one is configured, otherwise the terminal bell.
func New(command string, silent bool, out *os.File) (Player, error) {
	if silent {
		return Nop{}, nil
	}
	if strings.TrimSpace(command) != "" {
		return NewCommand(command)
	}
	return NewBell(out), nil
}
