package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/spf13/viper"
)

var ErrInvalidMinutes = errors.New("minutes out of range")

// Settings is the effective configuration after defaults, config file,
// environment and flags are merged.
type Settings struct {
	FocusMinutes int    `mapstructure:"focus_minutes" yaml:"focus_minutes"`
	BreakMinutes int    `mapstructure:"break_minutes" yaml:"break_minutes"`
	Label        string `mapstructure:"label" yaml:"label,omitempty"`
	Theme        string `mapstructure:"theme" yaml:"theme"`
	AlarmCommand string `mapstructure:"alarm_command" yaml:"alarm_command,omitempty"`
	Silent       bool   `mapstructure:"silent" yaml:"silent"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		FocusMinutes: DefaultFocusMinutes,
		BreakMinutes: DefaultBreakMinutes,
		Theme:        "default",
	}
}

// SetDefaults registers every settings key on v so env lookups resolve.
func SetDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("focus_minutes", d.FocusMinutes)
	v.SetDefault("break_minutes", d.BreakMinutes)
	v.SetDefault("label", d.Label)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("alarm_command", d.AlarmCommand)
	v.SetDefault("silent", d.Silent)
}

// Load merges defaults, the config file, POMO_* variables and any flags
// already bound on v. A missing config file is not an error unless file
// names one explicitly.
func Load(v *viper.Viper, file string) (Settings, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(util.ConfigDir(AppName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return DefaultSettings(), fmt.Errorf("read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return DefaultSettings(), fmt.Errorf("decode config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks the durations are usable as starting values.
func (s Settings) Validate() error {
	if s.FocusMinutes < 1 || s.FocusMinutes > MaxMinutes {
		return fmt.Errorf("focus: %w: %d", ErrInvalidMinutes, s.FocusMinutes)
	}
	if s.BreakMinutes < 1 || s.BreakMinutes > MaxMinutes {
		return fmt.Errorf("break: %w: %d", ErrInvalidMinutes, s.BreakMinutes)
	}
	return nil
}
