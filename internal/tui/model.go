package tui

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/akyairhashvil/pomo/internal/alarm"
	"github.com/akyairhashvil/pomo/internal/confetti"
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/pomodoro"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type editTarget int

const (
	editNone editTarget = iota
	editFocus
	editBreak
	editLabel
)

// Options configures a Model. Nil collaborators get real defaults.
type Options struct {
	Settings config.Settings
	Alarm    alarm.Player
	Now      func() time.Time
	Rand     *rand.Rand
}

// --- Model ---
type Model struct {
	ctrl     *pomodoro.Controller
	view     *timerView
	field    *confetti.Field
	registry *HandlerRegistry

	progress progress.Model
	input    textinput.Model
	editing  editTarget

	theme     Theme
	themeName string

	scheduledTick        int
	scheduledCelebration int
	animating            bool
	lastTitle            string

	width    int
	height   int
	quitting bool
}

func NewModel(opts Options) Model {
	if opts.Alarm == nil {
		opts.Alarm = alarm.Nop{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	view := newTimerView()
	field := confetti.New(opts.Rand)
	ctrl := pomodoro.New(pomodoro.Config{
		FocusMinutes: strconv.Itoa(opts.Settings.FocusMinutes),
		BreakMinutes: strconv.Itoa(opts.Settings.BreakMinutes),
	}, pomodoro.Deps{
		Surface: view,
		Alarm:   opts.Alarm,
		Effects: field,
		Now:     opts.Now,
		Rand:    opts.Rand,
	})
	if opts.Settings.Label != "" {
		ctrl.Dispatch(pomodoro.SetFocusLabel{Text: opts.Settings.Label})
	}

	ti := textinput.New()
	ti.Width = 30

	m := Model{
		ctrl:      ctrl,
		view:      view,
		field:     field,
		registry:  newRegistry(),
		input:     ti,
		lastTitle: view.title,
	}
	m.progress.Width = config.ProgressWidth
	m = m.applyTheme(opts.Settings.Theme)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.view.title)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)
	case TickMsg:
		m, cmd = m.handleTick(msg)
	case CelebrationMsg:
		m, cmd = m.handleCelebration(msg)
	case FrameMsg:
		m, cmd = m.handleFrame()
	}

	if m.quitting {
		return m, tea.Quit
	}
	next, scheduled := m.schedule()
	return next, tea.Batch(cmd, scheduled)
}

// schedule starts the tick, celebration and animation loops the controller
// state calls for and has not been started yet, and syncs the window title.
func (m Model) schedule() (Model, tea.Cmd) {
	var cmds []tea.Cmd
	if id := m.ctrl.TickID(); id != 0 && id != m.scheduledTick {
		m.scheduledTick = id
		cmds = append(cmds, tickCmd(id))
	}
	if id := m.ctrl.CelebrationID(); m.ctrl.Celebrating() && id != m.scheduledCelebration {
		m.scheduledCelebration = id
		cmds = append(cmds, celebrationCmd(id))
	}
	if m.field.Active() && !m.animating {
		m.animating = true
		cmds = append(cmds, frameCmd())
	}
	if m.view.title != m.lastTitle {
		m.lastTitle = m.view.title
		cmds = append(cmds, tea.SetWindowTitle(m.view.title))
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m Model) viewMode() int {
	if m.editing != editNone {
		return ViewModeEditing
	}
	return ViewModeNormal
}

func (m Model) applyTheme(name string) Model {
	theme, err := LookupTheme(name)
	if err != nil {
		util.LogError("theme", err)
		name = ThemeOrder[0]
	}
	m.theme = theme
	m.themeName = name

	width := m.progress.Width
	m.progress = progress.New(progress.WithGradient(theme.GradientStart, theme.GradientEnd))
	m.progress.Width = width
	m.input.PromptStyle = theme.Focused
	m.input.TextStyle = theme.Highlight
	return m
}

func newRegistry() *HandlerRegistry {
	normal := []int{ViewModeNormal}
	editing := []int{ViewModeEditing}

	r := NewHandlerRegistry()
	r.Register(
		KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: 100},
		KeyBinding{Key: " ", Help: "Start/Pause", Modes: normal, Handler: handleToggle},
		KeyBinding{Key: "r", Help: "Reset", Modes: normal, Handler: handleReset},
		KeyBinding{Key: "f", Help: "Focus", Modes: normal, Handler: handleFocusMode},
		KeyBinding{Key: "b", Help: "Break", Modes: normal, Handler: handleBreakMode},
		KeyBinding{Key: "e", Help: "Focus min", Modes: normal, Handler: handleEditFocus},
		KeyBinding{Key: "E", Help: "Break min", Modes: normal, Handler: handleEditBreak},
		KeyBinding{Key: "l", Help: "Label", Modes: normal, Handler: handleEditLabel},
		KeyBinding{Key: "t", Help: "Theme", Modes: normal, Handler: handleTheme},
		KeyBinding{Key: "q", Help: "Quit", Modes: normal, Handler: handleQuit},
		KeyBinding{Key: "enter", Help: "Save", Modes: editing, Handler: handleConfirmEdit},
		KeyBinding{Key: "esc", Help: "Cancel", Modes: editing, Handler: handleCancelEdit},
	)
	return r
}
