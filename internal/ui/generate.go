package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"slate/internal/schedule"
)

func (a *App) generateCmd() *cobra.Command {
	var session string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a timetable from the configured roster",
		Long: `Request a full timetable from the scheduling service and print it.

The roster (teachers, subjects, classrooms, time slots, days) comes
from the config file. The resulting session is stored locally so the
TUI and other commands can pick it up.`,
		Example: `  slate generate
  slate generate --session 1c9f2a44-...`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.config.RosterReady(); err != nil {
				return fmt.Errorf("roster incomplete: %w", err)
			}

			result, err := a.client.Generate(context.Background(), a.config.WireRoster(), session)
			if err != nil {
				return fmt.Errorf("generating timetable: %w", err)
			}

			meta := schedule.GridMetadata{
				Classrooms: a.config.Roster.Classrooms,
				Days:       a.config.Roster.Days,
				TimeSlots:  a.config.Roster.TimeSlots,
			}

			fmt.Printf("Session %s\n\n", result.SessionID)
			printTimetable(result.Entries, meta)
			printConflicts(result.Conflicts)

			store, err := a.openStore()
			if err != nil {
				return err
			}
			rec := &schedule.SessionRecord{
				SessionID: result.SessionID,
				Meta:      meta,
				Entries:   result.Entries,
			}
			if err := store.SaveSession(context.Background(), rec); err != nil {
				return fmt.Errorf("storing session: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "Existing session handle to regenerate into")

	return cmd
}

// latestSessionID resolves the session to operate on: an explicit flag
// wins, otherwise the most recently stored session.
func (a *App) latestSessionID(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	store, err := a.openStore()
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rec, err := store.LatestSession(ctx)
	if err != nil {
		return "", fmt.Errorf("loading latest session: %w", err)
	}
	if rec == nil {
		return "", fmt.Errorf("no stored sessions; run %q first", "slate generate")
	}
	return rec.SessionID, nil
}
