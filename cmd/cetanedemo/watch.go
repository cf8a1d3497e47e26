package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	cetanecli "github.com/cetane-dev/cetane/internal/cli"
)

// watchCmd watches the manifest file and reprints status whenever it changes
// — useful while iterating on a migrations.yaml locally.
func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reprint migration status whenever the manifest file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("creating file watcher: %w", err)
			}
			defer watcher.Close()

			dir := filepath.Dir(cfg.manifest)
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}

			fmt.Println(cetanecli.Info(fmt.Sprintf("watching %s for changes (ctrl-c to stop)", cfg.manifest)))
			printStatus(cmd.Context(), cfg)

			for {
				select {
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(event.Name) != filepath.Clean(cfg.manifest) {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
						continue
					}
					fmt.Println(cetanecli.Info("manifest changed, re-checking status"))
					printStatus(cmd.Context(), cfg)
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Println(cetanecli.FormatError(err))
				case <-cmd.Context().Done():
					return nil
				}
			}
		},
	}
}

func printStatus(ctx context.Context, cfg config) {
	env, err := setupEnv(ctx, cfg)
	if err != nil {
		fmt.Println(cetanecli.FormatError(err))
		return
	}
	defer env.Close()

	states, err := env.client.Status(ctx)
	if err != nil {
		fmt.Println(cetanecli.FormatError(err))
		return
	}

	table := cetanecli.NewStyledTable("NAME", "STATUS")
	for _, s := range states {
		badge := cetanecli.RenderPendingBadge()
		if s.Applied {
			badge = cetanecli.RenderAppliedBadge()
		}
		table.AddRow(s.Name, badge)
	}
	fmt.Println(cetanecli.Indent(table.String(), 2))
}
