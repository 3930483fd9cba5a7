package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"votetrack/internal/tracker"
	"votetrack/internal/ui"
)

func targetArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("site id is required (see: vt sites)")
	}
	return nil
}

// completeTargetIDs offers catalog ids for shell completion.
func completeTargetIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var ids []string
	for _, t := range tracker.DefaultCatalog().Targets() {
		ids = append(ids, t.ID+"\t"+t.Name)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func newVoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "vote <site_id>",
		Aliases:           []string{"toggle"},
		Short:             "Tick a site off (or untick it if already voted)",
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
			st, err := a.tracker.Toggle(ctx, id)
			if err != nil {
				return err
			}
			t, _ := a.tracker.Catalog().Lookup(id)
			printTransition(cmd, t, st.Progress.Has(id), a.tracker.Summary())
			return nil
		},
	}

	return cmd
}

func printTransition(cmd *cobra.Command, t tracker.Target, done bool, sum tracker.Summary) {
	out := cmd.OutOrStdout()
	if done {
		fmt.Fprintf(out, "%s %s\n", ui.Good.Render(ui.IconDone+" Voted"), t.Name)
	} else {
		fmt.Fprintf(out, "%s %s\n", ui.Warn.Render(ui.IconUndo+" Unchecked"), t.Name)
	}
	fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d/%d", sum.Completed, sum.Targets)))
	fmt.Fprintln(out, ui.LabelValue("Total Votes", ui.Thousands(sum.Total)))
	if sum.AllDone {
		fmt.Fprintln(out, ui.Good.Render(ui.IconTrophy+" All votes completed!"))
	}
}
