package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) conflictsCmd() *cobra.Command {
	var session string

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Show the conflict report for a session",
		Long: `Fetch the current conflict report from the scheduling service.

Defaults to the most recently stored session.`,
		Example: `  slate conflicts
  slate conflicts --session 1c9f2a44-...`,
		RunE: func(_ *cobra.Command, _ []string) error {
			id, err := a.latestSessionID(session)
			if err != nil {
				return err
			}
			conflicts, err := a.client.Conflicts(context.Background(), id)
			if err != nil {
				return fmt.Errorf("fetching conflicts: %w", err)
			}
			printConflicts(conflicts)
			return nil
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "Session handle (defaults to most recent)")

	return cmd
}
