package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage locally stored sessions",
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.listSessions()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <session-id>",
		Short: "Delete a stored session",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			if err := store.DeleteSession(context.Background(), args[0]); err != nil {
				return fmt.Errorf("deleting session: %w", err)
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <session-id>",
		Short: "Print a stored session's timetable",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			rec, err := store.LoadSession(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("loading session: %w", err)
			}
			if rec == nil {
				return fmt.Errorf("unknown session %q", args[0])
			}
			printTimetable(rec.Entries, rec.Meta)
			return nil
		},
	})

	return cmd
}

func (a *App) listSessions() error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	summaries, err := store.ListSessions(context.Background())
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}
	if len(summaries) == 0 {
		fmt.Println("No stored sessions.")
		return nil
	}

	fmt.Println(colorHeader.Sprint("Stored sessions (most recent first):"))
	for _, s := range summaries {
		fmt.Printf("  %s  %s  %s\n",
			s.SessionID,
			colorMuted.Sprint(s.UpdatedAt.Format("2006-01-02 15:04")),
			fmt.Sprintf("%d entries", s.Entries))
	}
	return nil
}
