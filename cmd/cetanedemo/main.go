// Package main provides cetanedemo, a reference CLI driving the cetane
// migration library against a YAML migration manifest.
//
// Usage:
//
//	cetanedemo up                  # Apply pending migrations
//	cetanedemo down [--target T]   # Roll back applied migrations
//	cetanedemo status [--json]     # Show applied/pending migrations
//	cetanedemo plan [--down [--target T]]  # Preview SQL without executing it
//	cetanedemo watch               # Reprint status whenever the manifest changes
//	cetanedemo new <description>   # Scaffold a migration entry in the manifest
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	flagBackend     string
	flagDatabaseURL string
	flagManifest    string
	flagEnvFile     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "cetanedemo",
		Short:   "Reference CLI for the cetane schema-migration library",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Backend: postgres, sqlite, or mysql (default: sqlite)")
	rootCmd.PersistentFlags().StringVarP(&flagDatabaseURL, "database-url", "d", "", "Database connection string")
	rootCmd.PersistentFlags().StringVarP(&flagManifest, "manifest", "m", "", "Path to the YAML migration manifest (default: migrations.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Path to a .env file (default: .env)")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		loadEnv(flagEnvFile)
	}

	rootCmd.AddCommand(
		upCmd(),
		downCmd(),
		statusCmd(),
		planCmd(),
		watchCmd(),
		newCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// currentConfig resolves a config from the persistent flags set on the
// invoked command, falling back to environment variables and defaults.
func currentConfig() config {
	return resolveConfig(flagBackend, flagDatabaseURL, flagManifest)
}
