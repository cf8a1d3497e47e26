// Package migrator drives a registry's resolved migrations forward and
// backward against a state store, grounded on the teacher's
// internal/engine/runner.go Runner — simplified to the closed operation set
// and the callback-based executor Cetane exposes instead of owning a
// *sql.DB directly (callers wire their own driver and transaction scope).
package migrator

import (
	"context"
	"log/slog"

	"github.com/cetane-dev/cetane/internal/dialect"
	"github.com/cetane-dev/cetane/internal/registry"
	"github.com/cetane-dev/cetane/internal/statestore"
)

// Exec runs a single SQL statement. Migrator never opens a connection or a
// transaction itself — callers supply Exec (and, for
// MigrateForwardWithTransactions, the transaction boundary callbacks) bound
// to whatever database/sql handle or pool they manage.
type Exec func(ctx context.Context, sql string) error

// TxControl begins, commits, or rolls back whatever transaction scope the
// caller's Exec closures run in.
type TxControl func(ctx context.Context) error

// Migrator applies and rolls back a Registry's resolved migrations against a
// MigrationStateStore for a specific dialect.Backend.
type Migrator struct {
	reg     *registry.Registry
	backend dialect.Backend
	store   statestore.MigrationStateStore
	log     *slog.Logger
}

// New builds a Migrator with no logger attached; until WithLogger sets a
// non-nil one, slog.Default() is used lazily at call time.
func New(reg *registry.Registry, backend dialect.Backend, store statestore.MigrationStateStore) *Migrator {
	return &Migrator{reg: reg, backend: backend, store: store}
}

// WithLogger attaches a structured logger and returns the Migrator for
// chaining.
func (m *Migrator) WithLogger(logger *slog.Logger) *Migrator {
	m.log = logger
	return m
}

func (m *Migrator) logger() *slog.Logger {
	if m.log != nil {
		return m.log
	}
	return slog.Default()
}

func appliedSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
