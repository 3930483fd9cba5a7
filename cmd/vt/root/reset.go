package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"votetrack/internal/tracker"
	"votetrack/internal/ui"
)

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Show when the daily checklist resets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			clock, err := tracker.NewClock(cfg.Timezone, cfg.ResetHour)
			if err != nil {
				return err
			}
			now := clock.Now()
			next := clock.NextReset(now)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.LabelValue("Voting day", clock.ResetDay(now)))
			fmt.Fprintln(out, ui.LabelValue("Next reset", fmt.Sprintf("%s (%s)", next.Format("Mon Jan 2 15:04 MST"), next.In(time.Local).Format("15:04 local"))))
			fmt.Fprintln(out, ui.LabelValue("Time left", tracker.FormatCountdown(next.Sub(now))))
			return nil
		},
	}

	return cmd
}
