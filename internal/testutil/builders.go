// Package testutil holds fakes and builders shared by package tests.
package testutil

import (
	"math/rand"
	"time"

	"github.com/akyairhashvil/pomo/internal/alarm"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/pomodoro"
)

// RecordingSurface keeps the latest value written to every sink.
type RecordingSurface struct {
	Minutes  string
	Seconds  string
	Toggle   string
	Status   string
	Hint     string
	Title    string
	Mode     models.Mode
	Progress float64

	ProgressHistory []float64
}

func (s *RecordingSurface) SetMinutes(text string) { s.Minutes = text }
func (s *RecordingSurface) SetSeconds(text string) { s.Seconds = text }
func (s *RecordingSurface) SetToggleLabel(label string) { s.Toggle = label }
func (s *RecordingSurface) SetStatus(text string) { s.Status = text }
func (s *RecordingSurface) SetHint(text string) { s.Hint = text }
func (s *RecordingSurface) SetTitle(title string) { s.Title = title }
func (s *RecordingSurface) SetActiveMode(mode models.Mode) { s.Mode = mode }

func (s *RecordingSurface) SetProgress(percent float64) {
	s.Progress = percent
	s.ProgressHistory = append(s.ProgressHistory, percent)
}

// Clock returns the readout as "MM:SS".
func (s *RecordingSurface) Clock() string { return s.Minutes + ":" + s.Seconds }

// FakePlayer counts calls. While Deny is positive, Play is refused.
type FakePlayer struct {
	Plays int
	Stops int
	Deny  int
	Err   error
}

func (p *FakePlayer) Play() error {
	if p.Deny > 0 {
		p.Deny--
		return alarm.ErrPlaybackDenied
	}
	if p.Err != nil {
		return p.Err
	}
	p.Plays++
	return nil
}

func (p *FakePlayer) Stop() error {
	p.Stops++
	return nil
}

// RecordingEffects keeps every burst it is asked to fire.
type RecordingEffects struct {
	Bursts []models.Burst
	Err    error
}

func (e *RecordingEffects) Fire(b models.Burst) error {
	e.Bursts = append(e.Bursts, b)
	return e.Err
}

// ManualClock only moves when told to.
type ManualClock struct {
	now time.Time
}

func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *ManualClock) Now() time.Time { return c.now }

func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// Fixture is a controller wired to recording collaborators.
type Fixture struct {
	Controller *pomodoro.Controller
	Surface    *RecordingSurface
	Player     *FakePlayer
	Effects    *RecordingEffects
	Clock      *ManualClock
}

// TickN delivers n ticks for the live tick source and reports how many
// were accepted.
func (f Fixture) TickN(n int) int {
	accepted := 0
	for i := 0; i < n; i++ {
		if f.Controller.Tick(f.Controller.TickID()) {
			accepted++
		}
	}
	return accepted
}

// ControllerBuilder provides fluent API for creating test controllers.
type ControllerBuilder struct {
	cfg    pomodoro.Config
	player *FakePlayer
	fx     *RecordingEffects
}

func NewController() *ControllerBuilder {
	return &ControllerBuilder{player: &FakePlayer{}, fx: &RecordingEffects{}}
}

func (b *ControllerBuilder) WithFocus(minutes string) *ControllerBuilder {
	b.cfg.FocusMinutes = minutes
	return b
}

func (b *ControllerBuilder) WithBreak(minutes string) *ControllerBuilder {
	b.cfg.BreakMinutes = minutes
	return b
}

func (b *ControllerBuilder) WithPlayer(p *FakePlayer) *ControllerBuilder {
	b.player = p
	return b
}

func (b *ControllerBuilder) WithEffects(e *RecordingEffects) *ControllerBuilder {
	b.fx = e
	return b
}

func (b *ControllerBuilder) Build() Fixture {
	surface := &RecordingSurface{}
	clock := NewManualClock()
	c := pomodoro.New(b.cfg, pomodoro.Deps{
		Surface: surface,
		Alarm:   b.player,
		Effects: b.fx,
		Now:     clock.Now,
		Rand:    rand.New(rand.NewSource(1)),
	})
	return Fixture{
		Controller: c,
		Surface:    surface,
		Player:     b.player,
		Effects:    b.fx,
		Clock:      clock,
	}
}
