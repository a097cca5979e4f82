package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"slate/internal/config"
	"slate/internal/sched"
	"slate/internal/schedule"
)

// Run starts the TUI.
func Run(client *sched.Client, store schedule.Store, cfg *config.Config) error {
	return RunWithDebug(client, store, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(client *sched.Client, store schedule.Store, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(client, store, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
