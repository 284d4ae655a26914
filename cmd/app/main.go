package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	closeLog, err := setupLogging()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		return 1
	}
	defer closeLog()

	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging sends the standard logger to a debug file when POMO_DEBUG
// is set. Otherwise log output would tear the alt screen, so it is dropped.
func setupLogging() (func(), error) {
	if os.Getenv(config.DebugEnv) == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	dir := util.DataDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(filepath.Join(dir, config.DebugLogFile), config.AppName)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
