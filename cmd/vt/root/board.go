package root

import (
	"context"

	"github.com/spf13/cobra"

	"votetrack/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, a.tracker, a.opener, a.clip, tui.Options{
				OpenPolicy:      a.cfg.OpenPolicy,
				RefreshInterval: a.cfg.RefreshInterval,
				CopyFlash:       a.cfg.CopyFlash,
			}, cmd.OutOrStdout())
		},
	}

	return cmd
}
