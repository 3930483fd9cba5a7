package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"votetrack/internal/config"
	"votetrack/internal/tracker"
	"votetrack/internal/ui"
)

func newOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <site_id>",
		Short: "Open a voting site in your browser",
		Long: `Open a voting site in your default browser.

With open_policy "manual" (default) the site stays unchecked until you run
"vt vote <site_id>". With open_policy "mark" opening the site counts as a vote;
opening an already voted site again changes nothing.`,
		Args:              targetArgs,
		ValidArgsFunction: completeTargetIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id := args[0]
			t, ok := a.tracker.Catalog().Lookup(id)
			if !ok {
				return tracker.InvalidTargetError{ID: id}
			}
			if err := a.opener.Open(t.URL); err != nil {
				// Best effort: still show the link so it can be opened by hand.
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconWarn+" "+err.Error()))
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Link", t.URL))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconLink+" Opened"), t.Name)

			if a.cfg.OpenPolicy != config.OpenPolicyMark {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("After voting run: vt vote %s", t.ID)))
				return nil
			}
			st, err := a.tracker.RecordExternalCompletion(ctx, id)
			if err != nil {
				return err
			}
			printTransition(cmd, t, st.Progress.Has(id), a.tracker.Summary())
			return nil
		},
	}

	return cmd
}
