package tui

import (
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
)

// timerView is the Surface the controller writes to. View reads it back.
type timerView struct {
	minutes  string
	seconds  string
	toggle   string
	status   string
	hint     string
	title    string
	mode     models.Mode
	progress float64
}

func newTimerView() *timerView {
	return &timerView{minutes: "--", seconds: "--"}
}

func (v *timerView) SetMinutes(text string) { v.minutes = text }
func (v *timerView) SetSeconds(text string) { v.seconds = text }
func (v *timerView) SetToggleLabel(label string) { v.toggle = label }
func (v *timerView) SetStatus(text string) { v.status = text }
func (v *timerView) SetHint(text string) { v.hint = text }
func (v *timerView) SetTitle(title string) { v.title = title }
func (v *timerView) SetActiveMode(mode models.Mode) { v.mode = mode }

func (v *timerView) SetProgress(percent float64) { v.progress = util.Clamp(percent, 0, 100) }

func (v *timerView) clock() string { return v.minutes + ":" + v.seconds }
