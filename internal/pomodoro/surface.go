package pomodoro

import "github.com/akyairhashvil/pomo/internal/models"

// Surface receives every visible change the controller makes. It is write
// only; the controller never reads display state back.
//
//go:generate mockgen -destination=mock_collaborators_test.go -package=pomodoro_test github.com/akyairhashvil/pomo/internal/pomodoro Surface,Effects
//go:generate mockgen -destination=mock_player_test.go -package=pomodoro_test github.com/akyairhashvil/pomo/internal/alarm Player
type Surface interface {
	SetMinutes(text string)
	SetSeconds(text string)
	SetToggleLabel(label string)
	SetStatus(text string)
	SetHint(text string)
	SetTitle(title string)
	SetActiveMode(mode models.Mode)
	SetProgress(percent float64)
}

// Effects fires one particle burst per call.
type Effects interface {
	Fire(burst models.Burst) error
}

type nopSurface struct{}

func (nopSurface) SetMinutes(string) {}
func (nopSurface) SetSeconds(string) {}
func (nopSurface) SetToggleLabel(string) {}
func (nopSurface) SetStatus(string) {}
func (nopSurface) SetHint(string) {}
func (nopSurface) SetTitle(string) {}
func (nopSurface) SetActiveMode(models.Mode) {}
func (nopSurface) SetProgress(float64) {}

type nopEffects struct{}

func (nopEffects) Fire(models.Burst) error { return nil }
