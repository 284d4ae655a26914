// Package pomodoro implements the focus/break countdown state machine and
// the celebration that follows a completed interval.
//
// The controller never schedules anything itself. The host delivers ticks
// carrying TickID roughly once per second while Running, and celebration
// steps carrying CelebrationID every config.CelebrationCadence while
// Celebrating. Pause, Reset and SetMode invalidate the tick ID, so a tick
// already in flight is ignored.
package pomodoro

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/pomo/internal/alarm"
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
)

// Config holds the raw duration inputs, in minutes.
type Config struct {
	FocusMinutes string
	BreakMinutes string
}

// Deps are the controller's collaborators. Nil fields get silent defaults.
type Deps struct {
	Surface Surface
	Alarm   alarm.Player
	Effects Effects
	Now     func() time.Time
	Rand    *rand.Rand
}

type Controller struct {
	surface Surface
	player  alarm.Player
	effects Effects
	now     func() time.Time
	rng     *rand.Rand

	durations map[models.Mode]string
	state     models.TimerState
	progress  float64
	status    string

	tickSeq    int
	activeTick int

	celebration   *Celebration
	celebrationID int

	alarmPending bool
	completions  int
}

// New builds a controller in Idle(Focus) with the focus duration loaded.
func New(cfg Config, deps Deps) *Controller {
	if deps.Surface == nil {
		deps.Surface = nopSurface{}
	}
	if deps.Alarm == nil {
		deps.Alarm = alarm.Nop{}
	}
	if deps.Effects == nil {
		deps.Effects = nopEffects{}
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.FocusMinutes == "" {
		cfg.FocusMinutes = strconv.Itoa(config.DefaultFocusMinutes)
	}
	if cfg.BreakMinutes == "" {
		cfg.BreakMinutes = strconv.Itoa(config.DefaultBreakMinutes)
	}

	c := &Controller{
		surface: deps.Surface,
		player:  deps.Alarm,
		effects: deps.Effects,
		now:     deps.Now,
		rng:     deps.Rand,
		durations: map[models.Mode]string{
			models.ModeFocus: cfg.FocusMinutes,
			models.ModeBreak: cfg.BreakMinutes,
		},
	}
	c.setStatus(config.StatusReady)
	c.SetMode(models.ModeFocus)
	return c
}

// SetMode stops the countdown and loads the configured duration of mode.
func (c *Controller) SetMode(mode models.Mode) {
	c.Pause()
	c.state.Mode = mode
	c.surface.SetActiveMode(mode)

	minutes, ok := ParseMinutes(c.durations[mode])
	c.state.Valid = ok
	c.state.TotalSeconds = minutes * 60
	c.state.RemainingSeconds = c.state.TotalSeconds
	c.setProgress(0)
	c.refresh()
}

// Start begins counting down. It is a no-op while already running.
func (c *Controller) Start() {
	if c.state.Running {
		return
	}
	c.state.Running = true
	c.tickSeq++
	c.activeTick = c.tickSeq
	c.surface.SetToggleLabel(config.TogglePause)
	c.setStatus(c.runningStatus())
}

// Pause stops counting down. Calling it again changes nothing.
func (c *Controller) Pause() {
	c.state.Running = false
	c.activeTick = 0
	c.surface.SetToggleLabel(config.ToggleStart)
}

// Toggle starts an idle timer and pauses a running one.
func (c *Controller) Toggle() {
	if c.state.Running {
		c.Pause()
		return
	}
	c.Start()
}

// Reset returns to a fresh focus interval and silences the alarm.
func (c *Controller) Reset() {
	c.Pause()
	util.LogError("stop alarm", c.player.Stop())
	c.alarmPending = false
	c.surface.SetHint("")
	c.state.FocusLabel = ""
	c.SetMode(models.ModeFocus)
	c.setStatus(config.StatusReady)
}

// Tick advances the countdown by one second. It reports whether the host
// should keep delivering ticks for id.
func (c *Controller) Tick(id int) bool {
	if !c.state.Running || id != c.activeTick {
		return false
	}
	if c.state.RemainingSeconds > 0 {
		c.state.RemainingSeconds--
		c.refresh()
		c.setProgress(c.state.Progress())
	}
	if c.state.RemainingSeconds > 0 {
		return true
	}
	c.onIntervalComplete()
	c.Pause()
	return false
}

// SetDuration stores the raw minutes input for mode. Editing the active
// mode reloads it immediately; the other mode picks it up when selected.
func (c *Controller) SetDuration(mode models.Mode, text string) {
	c.durations[mode] = text
	if mode == c.state.Mode {
		c.SetMode(mode)
	}
}

// SetFocusLabel names the current focus session. Blank input is ignored.
func (c *Controller) SetFocusLabel(text string) {
	label := strings.TrimSpace(text)
	if label == "" {
		return
	}
	c.state.FocusLabel = label
	if c.state.Running && c.state.Mode == models.ModeFocus {
		c.setStatus(label)
	}
	c.refresh()
}

// Interact is called on every user input. It retries an alarm the output
// refused earlier.
func (c *Controller) Interact() {
	if !c.alarmPending {
		return
	}
	c.alarmPending = false
	c.playAlarm()
}

// CelebrationTick fires the bursts due at now for celebration id and
// reports whether more steps follow.
func (c *Controller) CelebrationTick(id int, now time.Time) bool {
	if c.celebration == nil || id != c.celebrationID {
		return false
	}
	bursts, active := c.celebration.Step(now)
	c.fire(c.celebration.Mode(), bursts)
	if !active {
		c.celebration = nil
	}
	return active
}

func (c *Controller) State() models.TimerState { return c.state }

func (c *Controller) Running() bool { return c.state.Running }

func (c *Controller) Mode() models.Mode { return c.state.Mode }

func (c *Controller) Status() string { return c.status }

func (c *Controller) Progress() float64 { return c.progress }

// Duration is the raw input stored for mode.
func (c *Controller) Duration(mode models.Mode) string { return c.durations[mode] }

// TickID identifies the live tick source; zero when idle.
func (c *Controller) TickID() int { return c.activeTick }

func (c *Controller) CelebrationID() int { return c.celebrationID }

func (c *Controller) Celebrating() bool { return c.celebration != nil }

// Completions counts intervals that ran down to zero.
func (c *Controller) Completions() int { return c.completions }

func (c *Controller) AlarmPending() bool { return c.alarmPending }

func (c *Controller) onIntervalComplete() {
	c.completions++
	c.playAlarm()

	c.celebrationID++
	c.celebration = NewCelebration(c.state.Mode, c.now(), c.rng)
	c.fire(c.state.Mode, c.celebration.Initial())
}

func (c *Controller) playAlarm() {
	err := c.player.Play()
	switch {
	case err == nil:
		c.surface.SetHint("")
	case errors.Is(err, alarm.ErrPlaybackDenied):
		c.alarmPending = true
		c.surface.SetHint(config.HintPlaybackDenied)
		util.LogError("play alarm", err)
	default:
		util.LogError("play alarm", err)
	}
}

func (c *Controller) fire(mode models.Mode, bursts []models.Burst) {
	for _, b := range bursts {
		util.LogError("celebration", wrapEffectErr("fire", mode, c.effects.Fire(b)))
	}
}

func (c *Controller) runningStatus() string {
	if c.state.Mode == models.ModeBreak {
		return config.StatusResting
	}
	if c.state.FocusLabel != "" {
		return c.state.FocusLabel
	}
	return config.StatusFocusing
}

func (c *Controller) refresh() {
	minutes, seconds := invalidClock, invalidClock
	if c.state.Valid {
		minutes, seconds = FormatClock(c.state.RemainingSeconds)
	}
	c.surface.SetMinutes(minutes)
	c.surface.SetSeconds(seconds)

	suffix := config.TitleSuffix
	if c.state.Mode == models.ModeFocus && c.state.FocusLabel != "" {
		suffix = c.state.FocusLabel
	}
	c.surface.SetTitle(Title(minutes, seconds, suffix))
}

func (c *Controller) setProgress(percent float64) {
	c.progress = percent
	c.surface.SetProgress(percent)
}

func (c *Controller) setStatus(text string) {
	c.status = text
	c.surface.SetStatus(text)
}
