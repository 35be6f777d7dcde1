package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/beliefted/beliefted-server/internal/domain"
)

const dateLayout = "2006-01-02"

func newVerseCmd() *cobra.Command {
	var date string
	var days int

	cmd := &cobra.Command{
		Use:   "verse",
		Short: "Print the daily verse for a date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now().UTC()
			if date != "" {
				t, err := time.Parse(dateLayout, date)
				if err != nil {
					return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
				}
				start = t
			}
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}
			return printVerses(cmd.OutOrStdout(), start, days)
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date as YYYY-MM-DD (defaults to today, UTC)")
	cmd.Flags().IntVarP(&days, "days", "n", 1, "Number of consecutive days to print")
	return cmd
}

func printVerses(w io.Writer, start time.Time, days int) error {
	for i := range days {
		day := start.AddDate(0, 0, i)
		v := domain.SelectVerseForDate(day)
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", day.Format(dateLayout), v.Reference, v.Text); err != nil {
			return err
		}
	}
	return nil
}
