package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"votetrack/internal/ui"
)

const Version = "0.1.0"

type globalFlags struct {
	configFile string
	dbPath     string
	logLevel   string
}

var flags globalFlags

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vt",
		Short:         "votetrack: daily server voting checklist",
		Long:          "votetrack tracks your daily votes on the 12 BadWolfMC server-list sites.\nThe checklist resets every day at 01:00 New York time; your lifetime total is kept.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/votetrack/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "Database path (overrides db_path)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(
		newStatusCmd(),
		newSitesCmd(),
		newVoteCmd(),
		newOpenCmd(),
		newNameCmd(),
		newCopyCmd(),
		newResetCmd(),
		newLogCmd(),
		newConfigCmd(),
		newExportCmd(),
		newBoardCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
