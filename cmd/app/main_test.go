package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/pomo/internal/alarm"
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/tui"
	"gopkg.in/yaml.v3"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	for _, key := range []string{"FOCUS_MINUTES", "BREAK_MINUTES", "LABEL", "THEME", "ALARM_COMMAND", "SILENT"} {
		t.Setenv(config.EnvPrefix+"_"+key, "")
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigCommandPrintsFlags(t *testing.T) {
	isolate(t)
	out, err := execute(t, "config", "--focus", "40", "--label", "Write report")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	var got config.Settings
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if got.FocusMinutes != 40 || got.BreakMinutes != config.DefaultBreakMinutes || got.Label != "Write report" {
		t.Fatalf("unexpected settings %+v", got)
	}
}

func TestConfigCommandReadsConfigFile(t *testing.T) {
	dir := isolate(t)
	appDir := filepath.Join(dir, config.AppName)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	data := []byte("break_minutes: 10\ntheme: dracula\n")
	if err := os.WriteFile(filepath.Join(appDir, "config.yaml"), data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	out, err := execute(t, "config", "--break", "15")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if !strings.Contains(out, "theme: dracula") {
		t.Fatalf("expected theme from file, got:\n%s", out)
	}
	if !strings.Contains(out, "break_minutes: 15") {
		t.Fatalf("expected flag to override file, got:\n%s", out)
	}
}

func TestRejectsBadSettings(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "config", "--focus", "0"); !errors.Is(err, config.ErrInvalidMinutes) {
		t.Fatalf("expected ErrInvalidMinutes, got %v", err)
	}
	if _, err := execute(t, "config", "--theme", "neon"); !errors.Is(err, tui.ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
	if _, err := execute(t, "config", "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for a missing explicit config file")
	}
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, config.AppName+" ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestRunCommandRejectsUnknownMode(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "run", "--mode", "nap"); !errors.Is(err, models.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	a := &app{settings: config.DefaultSettings()}
	a.settings.Silent = true
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	if err := a.runHeadless(ctx, &out, models.ModeBreak); err != nil {
		t.Fatalf("expected cancel to end the run cleanly, got %v", err)
	}
	for _, want := range []string{"05:00 - Pomodoro Timer", "status: " + config.StatusResting} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestSetupLoggingDiscardsByDefault(t *testing.T) {
	isolate(t)
	t.Setenv(config.DebugEnv, "")
	closeLog, err := setupLogging()
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	closeLog()
}

func TestSetupLoggingWritesDebugFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv(config.DebugEnv, "1")
	closeLog, err := setupLogging()
	if err != nil {
		t.Fatalf("setupLogging failed: %v", err)
	}
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	closeLog()
	if _, err := os.Stat(filepath.Join(dir, config.AppName, config.DebugLogFile)); err != nil {
		t.Fatalf("expected debug log file: %v", err)
	}
}

func TestBellWithoutTerminalStaysOffStdout(t *testing.T) {
	a := &app{settings: config.DefaultSettings()}
	player, err := a.player(nil)
	if err != nil {
		t.Fatalf("player failed: %v", err)
	}
	if err := player.Play(); !errors.Is(err, alarm.ErrPlaybackDenied) {
		t.Fatalf("expected the bell to be denied without a terminal, got %v", err)
	}
}
