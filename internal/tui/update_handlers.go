package tui

import (
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/pomodoro"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.ProgressWidth
		if m.width < config.CompactModeThreshold {
			target = m.width / 2
		}
		m.progress.Width = util.Clamp(target, config.MinProgressWidth, config.ProgressWidth)
	}
	return m
}

// handleKey routes a key press through the registry. Unbound keys go to
// the open input. Every key counts as an interaction, after its command
// has been applied.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd, handled := m.registry.Dispatch(m, msg.String())
	if !handled && next.editing != editNone {
		next.input, cmd = next.input.Update(msg)
	}
	next.ctrl.Interact()
	return next, cmd
}

func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if msg.ID != m.ctrl.TickID() {
		return m, nil
	}
	if m.ctrl.Tick(msg.ID) {
		return m, tickCmd(msg.ID)
	}
	return m, nil
}

func (m Model) handleCelebration(msg CelebrationMsg) (Model, tea.Cmd) {
	if m.ctrl.CelebrationTick(msg.ID, msg.At) {
		return m, celebrationCmd(msg.ID)
	}
	return m, nil
}

func (m Model) handleFrame() (Model, tea.Cmd) {
	m.field.Step()
	if m.field.Active() {
		return m, frameCmd()
	}
	m.animating = false
	return m, nil
}

func handleToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	m.ctrl.Dispatch(pomodoro.Toggle{})
	return m, nil, true
}

func handleReset(m Model, _ string) (Model, tea.Cmd, bool) {
	m.ctrl.Dispatch(pomodoro.Reset{})
	return m, nil, true
}

func handleFocusMode(m Model, _ string) (Model, tea.Cmd, bool) {
	m.ctrl.Dispatch(pomodoro.SetMode{Mode: models.ModeFocus})
	return m, nil, true
}

func handleBreakMode(m Model, _ string) (Model, tea.Cmd, bool) {
	m.ctrl.Dispatch(pomodoro.SetMode{Mode: models.ModeBreak})
	return m, nil, true
}

func handleEditFocus(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.beginEdit(editFocus)
	return next, cmd, true
}

func handleEditBreak(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.beginEdit(editBreak)
	return next, cmd, true
}

func handleEditLabel(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.beginEdit(editLabel)
	return next, cmd, true
}

func handleConfirmEdit(m Model, _ string) (Model, tea.Cmd, bool) {
	value := m.input.Value()
	switch m.editing {
	case editFocus:
		m.ctrl.Dispatch(pomodoro.SetDuration{Mode: models.ModeFocus, Text: value})
	case editBreak:
		m.ctrl.Dispatch(pomodoro.SetDuration{Mode: models.ModeBreak, Text: value})
	case editLabel:
		m.ctrl.Dispatch(pomodoro.SetFocusLabel{Text: value})
	}
	return m.endEdit(), nil, true
}

func handleCancelEdit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.endEdit(), nil, true
}

func handleTheme(m Model, _ string) (Model, tea.Cmd, bool) {
	return m.applyTheme(nextTheme(m.themeName)), nil, true
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	m.quitting = true
	return m, nil, true
}

func (m Model) beginEdit(target editTarget) (Model, tea.Cmd) {
	m.editing = target
	m.input.Reset()
	switch target {
	case editFocus:
		m.input.Prompt = "Focus minutes: "
		m.input.CharLimit = config.MinutesCharLimit
		m.input.SetValue(m.ctrl.Duration(models.ModeFocus))
	case editBreak:
		m.input.Prompt = "Break minutes: "
		m.input.CharLimit = config.MinutesCharLimit
		m.input.SetValue(m.ctrl.Duration(models.ModeBreak))
	case editLabel:
		m.input.Prompt = "Focus label: "
		m.input.Placeholder = "What are you working on?"
		m.input.CharLimit = config.MaxLabelLength
		m.input.SetValue(m.ctrl.State().FocusLabel)
	}
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) endEdit() Model {
	m.editing = editNone
	m.input.Blur()
	m.input.Placeholder = ""
	return m
}
