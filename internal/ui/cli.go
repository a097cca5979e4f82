// Package ui provides the command line interface for slate.
package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"slate/internal/config"
	"slate/internal/db"
	"slate/internal/sched"
	"slate/internal/schedule"
	"slate/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config  *config.Config
	client  *sched.Client
	store   schedule.Store
	root    *cobra.Command
	debug   bool
	noColor bool
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{
		config: cfg,
		client: sched.New(cfg.Service.BaseURL, cfg.Service.Timeout()),
	}

	a.root = &cobra.Command{
		Use:   "slate",
		Short: "A weekly schedule editor backed by a scheduling service",
		Long: `Slate is a terminal client for building weekly class schedules.

The scheduling service generates a timetable from your roster; slate
lets you rearrange it on a grid, flags conflicts as you go, and keeps
sessions locally so you can pick up where you left off.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			return tui.RunWithDebug(a.client, store, a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to slate-debug.log)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.generateCmd())
	a.root.AddCommand(a.conflictsCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.sessionsCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("slate %s (commit: %s)\n", Version, Commit)
		},
	}
}

// openStore opens the local session store, creating its directory on
// first use. The store is cached for the lifetime of the App.
func (a *App) openStore() (schedule.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	path := a.config.Storage.DBPath
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}
	store, err := db.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}
	a.store = store
	return store, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases CLI resources.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}
