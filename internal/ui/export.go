package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"slate/internal/sched"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		session string
		output  string
	)

	cmd := &cobra.Command{
		Use:       "export {pdf|excel}",
		Short:     "Download a timetable export from the service",
		ValidArgs: []string{"pdf", "excel"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `  slate export pdf
  slate export excel -o timetable.xlsx`,
		RunE: func(_ *cobra.Command, args []string) error {
			kind := sched.ExportPDF
			ext := "pdf"
			if args[0] == "excel" {
				kind = sched.ExportExcel
				ext = "xlsx"
			}

			id, err := a.latestSessionID(session)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = "timetable." + ext
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			defer f.Close()

			if err := a.client.Export(context.Background(), kind, id, f); err != nil {
				os.Remove(path)
				return fmt.Errorf("downloading export: %w", err)
			}

			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "Session handle (defaults to most recent)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to timetable.<ext>)")

	return cmd
}
