package main

import (
	"os"

	"github.com/joho/godotenv"
)

// config holds the resolved settings for a cetanedemo invocation: the
// target backend, the database connection string, and the manifest file
// describing migrations. Flags always win over environment variables;
// environment variables always win over .env defaults.
type config struct {
	backend     string
	databaseURL string
	manifest    string
}

// loadEnv loads a .env file if present (missing file is not an error — most
// invocations rely on flags or exported environment variables instead).
func loadEnv(path string) {
	if path == "" {
		path = ".env"
	}
	_ = godotenv.Load(path)
}

func resolveConfig(flagBackend, flagDatabaseURL, flagManifest string) config {
	cfg := config{
		backend:     firstNonEmpty(flagBackend, os.Getenv("CETANE_BACKEND"), "sqlite"),
		databaseURL: firstNonEmpty(flagDatabaseURL, os.Getenv("DATABASE_URL")),
		manifest:    firstNonEmpty(flagManifest, os.Getenv("CETANE_MANIFEST"), "migrations.yaml"),
	}
	return cfg
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
