package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"slate/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View configuration",
		Long: `Print the resolved configuration.

If no config file exists, one is created with default values so it can
be edited by hand.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigShow()
		},
	}
}

func runConfigShow() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println(colorHeader.Sprint("Service"))
	fmt.Printf("  base_url: %s\n", cfg.Service.BaseURL)
	fmt.Printf("  timeout:  %s\n", cfg.Service.Timeout())

	fmt.Println(colorHeader.Sprint("Storage"))
	fmt.Printf("  db_path:  %s\n", cfg.Storage.DBPath)

	fmt.Println(colorHeader.Sprint("UI"))
	fmt.Printf("  theme:    %s\n", cfg.UI.Theme)

	fmt.Println(colorHeader.Sprint("Roster"))
	fmt.Printf("  days:       %s\n", strings.Join(cfg.Roster.Days, ", "))
	fmt.Printf("  time_slots: %s\n", strings.Join(cfg.Roster.TimeSlots, ", "))
	fmt.Printf("  classrooms: %s\n", strings.Join(cfg.Roster.Classrooms, ", "))
	fmt.Printf("  semesters:  %s\n", strings.Join(cfg.Roster.Semesters, ", "))
	fmt.Printf("  teachers:   %d\n", len(cfg.Roster.Teachers))
	fmt.Printf("  subjects:   %d\n", len(cfg.Roster.Subjects))

	if err := cfg.RosterReady(); err != nil {
		fmt.Printf("\n%s %v\n", colorConflict.Sprint("Roster incomplete:"), err)
	}
}
