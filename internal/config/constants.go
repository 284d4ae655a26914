package config

import "time"

// Timer durations.
const (
	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
	MaxMinutes          = 999
	TickInterval        = time.Second
)

// Celebration schedule.
const (
	CelebrationWindow  = 5 * time.Second
	CelebrationCadence = 250 * time.Millisecond
	AnimationFPS       = 30
)

// Status and control text.
const (
	StatusReady        = "Ready to focus?"
	StatusFocusing     = "CONGRATULATIONS! You are focusing!"
	StatusResting      = "After you've rested, get back to work."
	HintPlaybackDenied = "Sound blocked - press any key to play the alarm"
	TitleSuffix        = "Pomodoro Timer"
	ToggleStart        = "Start"
	TogglePause        = "Pause"
)

// Application settings.
const (
	AppName        = "pomo"
	ConfigFileName = "config"
	EnvPrefix      = "POMO"
	DebugEnv       = "POMO_DEBUG"
	DebugLogFile   = "debug.log"
)
