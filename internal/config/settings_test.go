package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("POMO_FOCUS_MINUTES", "")
	t.Setenv("POMO_BREAK_MINUTES", "")
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	s, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestLoadConfigFileFromConfigDir(t *testing.T) {
	dir := isolate(t)
	appDir := filepath.Join(dir, AppName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	data := []byte("focus_minutes: 50\nbreak_minutes: 10\ntheme: dracula\n")
	if err := os.WriteFile(filepath.Join(appDir, "config.yaml"), data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.FocusMinutes != 50 || s.BreakMinutes != 10 || s.Theme != "dracula" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(file, []byte("focus_minutes: 50\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv("POMO_FOCUS_MINUTES", "15")

	s, err := Load(viper.New(), file)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.FocusMinutes != 15 {
		t.Fatalf("expected env override 15, got %d", s.FocusMinutes)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	if _, err := Load(viper.New(), filepath.Join(dir, "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	s := DefaultSettings()
	s.FocusMinutes = 0
	if err := s.Validate(); !errors.Is(err, ErrInvalidMinutes) {
		t.Fatalf("expected ErrInvalidMinutes, got %v", err)
	}
	s = DefaultSettings()
	s.BreakMinutes = MaxMinutes + 1
	if err := s.Validate(); !errors.Is(err, ErrInvalidMinutes) {
		t.Fatalf("expected ErrInvalidMinutes, got %v", err)
	}
}
