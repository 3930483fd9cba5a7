package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type exportEntry struct {
	Key       string `yaml:"key"`
	Value     string `yaml:"value"`
	UpdatedAt string `yaml:"updated_at,omitempty"`
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the stored keys as YAML",
		Long: `Dump every stored key as YAML.

Keys and values keep the voting web page's localStorage layout
(minecraft-username, minecraft-votes, minecraft-total-votes).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := a.kv.List(ctx)
			if err != nil {
				return err
			}
			out := make([]exportEntry, 0, len(entries))
			for _, e := range entries {
				row := exportEntry{Key: e.Key, Value: e.Value}
				if !e.UpdatedAt.IsZero() {
					row.UpdatedAt = e.UpdatedAt.UTC().Format(time.RFC3339)
				}
				out = append(out, row)
			}
			b, err := yaml.Marshal(out)
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(b))
			return nil
		},
	}

	return cmd
}
