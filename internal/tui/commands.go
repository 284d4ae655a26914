package tui

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg is one countdown second for tick source ID.
type TickMsg struct {
	ID int
	At time.Time
}

// CelebrationMsg is one celebration step for celebration ID.
type CelebrationMsg struct {
	ID int
	At time.Time
}

// FrameMsg advances the confetti animation.
type FrameMsg time.Time

func tickCmd(id int) tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg{ID: id, At: t} })
}

func celebrationCmd(id int) tea.Cmd {
	return tea.Tick(config.CelebrationCadence, func(t time.Time) tea.Msg { return CelebrationMsg{ID: id, At: t} })
}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/config.AnimationFPS, func(t time.Time) tea.Msg { return FrameMsg(t) })
}
