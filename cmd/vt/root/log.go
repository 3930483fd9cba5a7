package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"votetrack/internal/ui"
)

func newLogCmd() *cobra.Command {
	var day string
	var days int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the vote journal",
		Long: `Show the vote journal.

Without flags, lists today's checklist changes. --day selects another voting
day (e.g. "Thu Oct 15 2026"); --days N shows net votes for the last N days.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if days > 0 {
				tallies, err := a.votes.Tallies(ctx, days)
				if err != nil {
					return err
				}
				if len(tallies) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("No votes logged yet."))
					return nil
				}
				for _, t := range tallies {
					fmt.Fprintf(out, "%s  %s\n", ui.Key.Render(t.Day), ui.Thousands(t.Net))
				}
				return nil
			}

			if day == "" {
				day = a.tracker.Summary().Day.String()
			}
			events, err := a.votes.ListByDay(ctx, day)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Heading(ui.IconVote, "Votes on "+day))
			if len(events) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing logged)"))
				return nil
			}
			catalog := a.tracker.Catalog()
			for _, e := range events {
				name := e.TargetID
				if t, ok := catalog.Lookup(e.TargetID); ok {
					name = t.Name
				}
				mark := ui.Good.Render("+")
				if e.Action != "completed" {
					mark = ui.Warn.Render("-")
				}
				fmt.Fprintf(out, "%s %s %s\n", ui.Muted.Render(e.At.In(time.Local).Format("15:04")), mark, name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Voting day to show (default today)")
	cmd.Flags().IntVar(&days, "days", 0, "Show net votes for the last N days")

	return cmd
}
