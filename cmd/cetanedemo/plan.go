package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	cetanecli "github.com/cetane-dev/cetane/internal/cli"
	"github.com/cetane-dev/cetane/pkg/cetane"
)

func planCmd() *cobra.Command {
	var target string
	var down bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Preview the SQL up/down would execute, without running it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := setupEnv(ctx, currentConfig())
			if err != nil {
				return err
			}
			defer env.Close()

			var statements []cetane.PlannedStatement
			if down {
				var targetPtr *string
				if target != "" {
					targetPtr = &target
				}
				statements, err = env.client.PlanBackward(ctx, targetPtr)
			} else {
				statements, err = env.client.PlanForward(ctx)
			}
			if err != nil {
				fmt.Println(cetanecli.FormatError(err))
				return err
			}

			if len(statements) == 0 {
				fmt.Println(cetanecli.Info("nothing to do"))
				return nil
			}

			names := migrationNames(statements)

			fmt.Println(cetanecli.RenderTitle("Planned SQL"))
			fmt.Println()
			fmt.Println(cetanecli.FormatKeyValue("statements", cetanecli.FormatCount(len(statements), "statement", "statements")))
			fmt.Println()

			list := cetanecli.NewList()
			for _, migration := range names {
				list.AddInfo(migration)
			}
			fmt.Println(cetanecli.Section("Migrations", list.String()))
			fmt.Println()

			for _, migration := range names {
				var sql []string
				for _, s := range statements {
					if s.Migration == migration {
						sql = append(sql, s.SQL)
					}
				}
				fmt.Println(cetanecli.Box(migration, strings.Join(sql, "\n")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Rollback target (only meaningful with --down)")
	cmd.Flags().BoolVar(&down, "down", false, "Plan a rollback instead of applying pending migrations")
	return cmd
}
