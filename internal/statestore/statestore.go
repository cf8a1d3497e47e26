// Package statestore provides the MigrationStateStore abstraction — the
// record of which migrations have been applied — along with an in-memory
// reference implementation and SQL-backed implementations for Postgres,
// SQLite, and MySQL, grounded on the teacher's internal/engine/version.go
// VersionManager.
package statestore

import "context"

// MigrationStateStore tracks which migrations have been applied. Cetane
// itself never interprets the applied set beyond name membership and
// ordering; the Migrator is responsible for comparing it against a
// registry's resolved order.
type MigrationStateStore interface {
	// AppliedMigrations returns the names of all applied migrations, ordered
	// by application order (oldest first).
	AppliedMigrations(ctx context.Context) ([]string, error)
	// MarkApplied records that a migration has been applied.
	MarkApplied(ctx context.Context, name string) error
	// MarkUnapplied removes a migration's applied record.
	MarkUnapplied(ctx context.Context, name string) error
}

// MigrationTableName is the tracking table created lazily by the SQL-backed
// stores on first use.
const MigrationTableName = "_cetane_migrations"
