package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	cetanecli "github.com/cetane-dev/cetane/internal/cli"
	"github.com/cetane-dev/cetane/pkg/cetane"
)

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := setupEnv(ctx, currentConfig())
			if err != nil {
				return err
			}
			defer env.Close()

			plan, err := env.client.PlanForward(ctx)
			if err != nil {
				return err
			}
			if len(plan) == 0 {
				fmt.Println(cetanecli.Info("nothing to apply"))
				return nil
			}

			progress := cetanecli.NewTaskProgress(migrationNames(plan))
			tracker := newExecTracker(env.exec, plan, progress)

			begin, commit, rollback := env.txControls()
			if err := env.client.MigrateForwardWithTransactions(ctx, tracker.Exec, begin, commit, rollback); err != nil {
				fmt.Println(cetanecli.FormatError(err))
				return err
			}
			tracker.Finish()
			progress.Summary()

			states, err := env.client.Status(ctx)
			if err != nil {
				return err
			}
			fmt.Println(cetanecli.Success(fmt.Sprintf("applied migrations up to %s", lastAppliedName(states))))
			return nil
		},
	}
}

func lastAppliedName(states []cetane.MigrationState) string {
	name := "(none)"
	for _, s := range states {
		if s.Applied {
			name = s.Name
		}
	}
	return name
}

// migrationNames extracts the unique, in-order migration names a planned
// statement list touches.
func migrationNames(plan []cetane.PlannedStatement) []string {
	var names []string
	seen := make(map[string]bool)
	for _, p := range plan {
		if !seen[p.Migration] {
			seen[p.Migration] = true
			names = append(names, p.Migration)
		}
	}
	return names
}

// execTracker wraps an Exec callback with a TaskProgress tracker, reporting
// Start/Complete/Failed as the boundary between one planned migration's
// statements and the next is crossed.
type execTracker struct {
	exec     cetane.Exec
	progress *cetanecli.TaskProgress
	bounds   []int // statement index where each migration's statements begin
	i        int
	task     int
}

func newExecTracker(exec cetane.Exec, plan []cetane.PlannedStatement, progress *cetanecli.TaskProgress) *execTracker {
	return &execTracker{exec: exec, progress: progress, bounds: migrationBoundaries(plan), task: -1}
}

func (e *execTracker) Exec(ctx context.Context, sql string) error {
	if e.task+1 < len(e.bounds) && e.i == e.bounds[e.task+1] {
		if e.task >= 0 {
			e.progress.Complete()
		}
		e.task++
		e.progress.Start(e.task)
	}
	e.i++
	if err := e.exec(ctx, sql); err != nil {
		e.progress.Failed(err)
		return err
	}
	return nil
}

// Finish completes the last in-flight task. Call once after a successful run.
func (e *execTracker) Finish() {
	if e.task >= 0 {
		e.progress.Complete()
	}
}

func migrationBoundaries(plan []cetane.PlannedStatement) []int {
	var bounds []int
	last := ""
	for i, p := range plan {
		if i == 0 || p.Migration != last {
			bounds = append(bounds, i)
			last = p.Migration
		}
	}
	return bounds
}
