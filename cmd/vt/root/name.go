package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"votetrack/internal/ui"
)

func newNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name [username]",
		Short: "Show or set your Minecraft username",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("quote usernames that contain spaces")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 {
				name := a.tracker.State().Name
				if name == "" {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No username set."))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
				return nil
			}

			st, err := a.tracker.SetName(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconUser+" Username set:"), st.Name)
			return nil
		},
	}

	return cmd
}

func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy your username to the clipboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			name := a.tracker.State().Name
			if name == "" {
				return errors.New("no username set (use: vt name <username>)")
			}
			if err := a.clip.Copy(name); err != nil {
				// Clipboard failures never affect the checklist.
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(ui.IconWarn+" "+err.Error()))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconCopy+" Copied!"))
			return nil
		},
	}

	return cmd
}
