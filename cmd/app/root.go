package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/akyairhashvil/pomo/internal/alarm"
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/pomodoro"
	"github.com/akyairhashvil/pomo/internal/tui"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// flagKeys maps command line flags to settings keys.
var flagKeys = map[string]string{
	"focus":     "focus_minutes",
	"break":     "break_minutes",
	"label":     "label",
	"theme":     "theme",
	"alarm-cmd": "alarm_command",
	"silent":    "silent",
}

type app struct {
	v          *viper.Viper
	configFile string
	settings   config.Settings
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "pomo is a focus/break Pomodoro timer for the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdout) {
				return a.runHeadless(cmd.Context(), cmd.OutOrStdout(), models.ModeFocus)
			}
			return a.runTUI()
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.Int("focus", config.DefaultFocusMinutes, "Focus interval in minutes")
	flags.Int("break", config.DefaultBreakMinutes, "Break interval in minutes")
	flags.String("label", "", "Name of the focus session")
	flags.String("theme", "default", "Color theme (default, dracula)")
	flags.String("alarm-cmd", "", "Command to run as the alarm, e.g. \"paplay bell.wav\"")
	flags.Bool("silent", false, "Never sound the alarm")
	flags.StringVar(&a.configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/pomo/config.yaml)")

	root.AddCommand(a.runCmd(), a.configCmd(), versionCmd())
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}
	settings, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	if _, err := tui.LookupTheme(settings.Theme); err != nil {
		return err
	}
	a.settings = settings
	return nil
}

// player builds the configured alarm; the bell rings on bell.
func (a *app) player(bell *os.File) (alarm.Player, error) {
	return alarm.New(a.settings.AlarmCommand, a.settings.Silent, bell)
}

func (a *app) runTUI() error {
	var bell *os.File
	if !a.settings.Silent && a.settings.AlarmCommand == "" {
		tty, err := alarm.OpenTerminal()
		if err != nil {
			util.LogError("alarm", err)
		} else {
			defer tty.Close()
			bell = tty
		}
	}
	player, err := a.player(bell)
	if err != nil {
		return err
	}
	defer func() { util.LogError("stop alarm", player.Stop()) }()

	m := tui.NewModel(tui.Options{Settings: a.settings, Alarm: player})
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// runHeadless counts down one interval of mode, printing changes as lines.
func (a *app) runHeadless(ctx context.Context, out io.Writer, mode models.Mode) error {
	player, err := a.player(os.Stdout)
	if err != nil {
		return err
	}
	ctrl := pomodoro.New(pomodoro.Config{
		FocusMinutes: strconv.Itoa(a.settings.FocusMinutes),
		BreakMinutes: strconv.Itoa(a.settings.BreakMinutes),
	}, pomodoro.Deps{
		Surface: pomodoro.NewLineSurface(out),
		Alarm:   player,
	})
	ctrl.Dispatch(
		pomodoro.SetFocusLabel{Text: a.settings.Label},
		pomodoro.SetMode{Mode: mode},
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ticker := time.NewTicker(config.TickInterval)
	defer ticker.Stop()

	err = pomodoro.Run(ctx, ctrl, ticker.C)
	if errors.Is(err, context.Canceled) {
		util.LogError("stop alarm", player.Stop())
		return nil
	}
	return err
}

func (a *app) runCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Count down one interval without the interactive UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := models.ParseMode(mode)
			if err != nil {
				return err
			}
			return a.runHeadless(cmd.Context(), cmd.OutOrStdout(), m)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", models.ModeFocus.String(), "Interval to run (focus, break)")
	return cmd
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.settings); err != nil {
				return fmt.Errorf("encode settings: %w", err)
			}
			return enc.Close()
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, tui.VersionLabel())
		},
	}
}
