package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	cetanecli "github.com/cetane-dev/cetane/internal/cli"
)

func downCmd() *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := setupEnv(ctx, currentConfig())
			if err != nil {
				return err
			}
			defer env.Close()

			var targetPtr *string
			if target != "" {
				targetPtr = &target
			}

			plan, err := env.client.PlanBackward(ctx, targetPtr)
			if err != nil {
				return err
			}
			if len(plan) == 0 {
				fmt.Println(cetanecli.Info("nothing to roll back"))
				return nil
			}

			bar := cetanecli.NewProgress(len(plan), "rolling back")
			exec := func(ctx context.Context, sql string) error {
				err := env.exec(ctx, sql)
				bar.Increment()
				return err
			}

			err = env.client.MigrateBackward(ctx, targetPtr, exec)
			bar.Done()
			if err != nil {
				fmt.Println(cetanecli.FormatError(err))
				return err
			}

			if target != "" {
				fmt.Println(cetanecli.Success(fmt.Sprintf("rolled back to %s", target)))
			} else {
				fmt.Println(cetanecli.Success("rolled back every applied migration"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Roll back down to (but not including) this migration")
	return cmd
}
