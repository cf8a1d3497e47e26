package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cetanecli "github.com/cetane-dev/cetane/internal/cli"
)

func statusCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show applied/pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := setupEnv(ctx, currentConfig())
			if err != nil {
				return err
			}
			defer env.Close()

			states, err := env.client.Status(ctx)
			if err != nil {
				return err
			}

			var applied, pending int
			for _, s := range states {
				if s.Applied {
					applied++
				} else {
					pending++
				}
			}

			if jsonOutput {
				entries := make([]map[string]any, len(states))
				for i, s := range states {
					entries[i] = map[string]any{"name": s.Name, "applied": s.Applied}
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(map[string]any{
					"applied":    applied,
					"pending":    pending,
					"migrations": entries,
				}); err != nil {
					return err
				}
				if pending > 0 {
					os.Exit(1)
				}
				return nil
			}

			if len(states) == 0 {
				fmt.Println(cetanecli.Info("no migrations registered"))
				return nil
			}

			fmt.Println(cetanecli.RenderTitle("Migration Status"))
			fmt.Println()
			if pending > 0 {
				fmt.Printf("  %s  %s\n\n",
					cetanecli.Green(cetanecli.FormatCount(applied, "applied", "applied")),
					cetanecli.Yellow(cetanecli.FormatCount(pending, "pending", "pending")))
			} else {
				fmt.Printf("  %s\n\n", cetanecli.Green(cetanecli.FormatCount(applied, "applied", "applied")))
			}

			table := cetanecli.NewStyledTable("NAME", "STATUS")
			for _, s := range states {
				badge := cetanecli.RenderPendingBadge()
				if s.Applied {
					badge = cetanecli.RenderAppliedBadge()
				}
				table.AddRow(s.Name, badge)
			}
			fmt.Println(table.String())

			if pending > 0 {
				os.Exit(1)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output status as JSON (exit code 1 if pending)")
	return cmd
}
