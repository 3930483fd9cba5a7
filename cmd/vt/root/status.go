package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"votetrack/internal/tracker"
	"votetrack/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's checklist and lifetime total",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			st := a.tracker.State()
			sum := a.tracker.Summary()

			fmt.Fprintln(out, ui.Heading(ui.IconVote, "BadWolfMC Votes"))
			name := st.Name
			if name == "" {
				name = ui.Muted.Render("(not set, use: vt name <username>)")
			}
			fmt.Fprintln(out, ui.LabelValue("Username", name))
			fmt.Fprintln(out, ui.LabelValue("Voting day", sum.Day))
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d/%d %s %.0f%%", sum.Completed, sum.Targets, ui.ProgressBar(sum.Completed, sum.Targets, 12), sum.Percent())))
			fmt.Fprintln(out, ui.LabelValue("Total Votes", ui.Gold.Render(ui.Thousands(sum.Total))))
			fmt.Fprintln(out, "")

			printChecklist(cmd, a.tracker)
			fmt.Fprintln(out, "")

			ms := tracker.Milestones(sum)
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Milestones (%d/%d)", ui.IconTrophy, tracker.CountEarned(ms), len(ms))))
			for _, m := range ms {
				if m.Earned {
					fmt.Fprintf(out, "- %s %s %s\n", m.Icon, m.Name, ui.Muted.Render(m.Description))
				}
			}
			fmt.Fprintln(out, "")

			if sum.AllDone {
				fmt.Fprintln(out, ui.Good.Render(ui.IconSparkle+" All votes completed! Your rewards are on the way!"))
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%s You will be able to vote again in approximately %s", ui.IconClock, countdown(a.tracker.Clock()))))
			return nil
		},
	}

	return cmd
}

func printChecklist(cmd *cobra.Command, tr *tracker.Tracker) {
	for _, t := range tr.Catalog().Targets() {
		done := tr.IsCompleted(t.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-22s %s %s\n", ui.Check(done), t.Name, ui.Muted.Render(fmt.Sprintf("(%s)", t.ID)), ui.VoteStatus(done))
	}
}

func countdown(c tracker.Clock) string {
	return tracker.FormatCountdown(c.TimeUntilNextReset(c.Now()))
}
