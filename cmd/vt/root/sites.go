package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"votetrack/internal/ui"
)

func newSitesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sites",
		Short: "List the voting sites with their ids and links",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, t := range a.tracker.Catalog().Targets() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-13s %-22s %s\n",
					ui.Check(a.tracker.IsCompleted(t.ID)), ui.Key.Render(t.ID), t.Name, ui.Muted.Render(t.URL))
			}
			return nil
		},
	}

	return cmd
}
