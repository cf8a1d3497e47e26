// Package cetane is the public facade over the schema-migration core:
// construct a Registry, register Migrations built from ast Operations, pick
// a Backend, and drive it forward/backward through a Client. Grounded on the
// teacher's pkg/astroladb.Client + functional-options New(opts ...Option)
// pattern, simplified to match this package's explicit non-goal of owning
// connection/transaction management — a Client never holds a *sql.DB; the
// caller supplies Exec/TxControl callbacks bound to whatever database
// handle it manages.
package cetane

import (
	"context"
	"log/slog"

	"github.com/cetane-dev/cetane/internal/dialect"
	"github.com/cetane-dev/cetane/internal/migrator"
	"github.com/cetane-dev/cetane/internal/registry"
	"github.com/cetane-dev/cetane/internal/statestore"
)

// Re-exported core types so callers only need to import this one package
// for everyday use; internal packages remain available for advanced cases
// (custom backends, direct SQL lowering).
type (
	Migration          = registry.Migration
	Registry           = registry.Registry
	Backend            = dialect.Backend
	MigrationStateStore = statestore.MigrationStateStore
	MigrationState      = migrator.MigrationState
	PlannedStatement    = migrator.PlannedStatement
	Exec                = migrator.Exec
	TxControl           = migrator.TxControl
)

// NewMigration and NewRegistry forward to their internal constructors so
// callers building migrations don't need a second import.
var (
	NewMigration = registry.NewMigration
	NewRegistry  = registry.New
)

// Client wires a Registry, a Backend, and a MigrationStateStore into a
// ready-to-drive Migrator.
type Client struct {
	registry *registry.Registry
	backend  dialect.Backend
	store    statestore.MigrationStateStore
	mig      *migrator.Migrator
}

// Option configures a Client during New.
type Option func(*clientConfig)

type clientConfig struct {
	backendName string
	backend     dialect.Backend
	store       statestore.MigrationStateStore
	logger      *slog.Logger
}

// WithBackendName selects a Backend by its case-insensitive dialect name
// ("postgres", "sqlite", "mysql", and their aliases — see dialect.Get).
func WithBackendName(name string) Option {
	return func(c *clientConfig) { c.backendName = name }
}

// WithBackend sets an explicit Backend, taking precedence over WithBackendName.
func WithBackend(b dialect.Backend) Option {
	return func(c *clientConfig) { c.backend = b }
}

// WithStateStore sets the MigrationStateStore. Defaults to an in-memory
// store when omitted — callers talking to a real database should pass a
// *statestore.SQLStore wrapping their own *sql.DB.
func WithStateStore(store statestore.MigrationStateStore) Option {
	return func(c *clientConfig) { c.store = store }
}

// WithLogger attaches a structured logger used for migration progress.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}

// ErrUnsupportedBackend is returned by New when no backend could be resolved.
var ErrUnsupportedBackend = unsupportedBackendError{}

type unsupportedBackendError struct{}

func (unsupportedBackendError) Error() string {
	return "cetane: no backend resolved; pass WithBackend or a recognized WithBackendName"
}

// New builds a Client over reg. A backend must be supplied via WithBackend
// or WithBackendName; an unresolved backend is an error rather than a silent
// default, since SQL lowering is backend-specific throughout.
func New(reg *registry.Registry, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	backend := cfg.backend
	if backend == nil && cfg.backendName != "" {
		backend = dialect.Get(cfg.backendName)
	}
	if backend == nil {
		return nil, ErrUnsupportedBackend
	}

	store := cfg.store
	if store == nil {
		store = statestore.NewMemory()
	}

	mig := migrator.New(reg, backend, store)
	if cfg.logger != nil {
		mig.WithLogger(cfg.logger)
	}

	return &Client{registry: reg, backend: backend, store: store, mig: mig}, nil
}

// Backend returns the Client's resolved dialect.Backend.
func (c *Client) Backend() dialect.Backend { return c.backend }

// Registry returns the underlying Registry.
func (c *Client) Registry() *registry.Registry { return c.registry }

// StateStore returns the underlying MigrationStateStore.
func (c *Client) StateStore() statestore.MigrationStateStore { return c.store }

// MigrateForward applies every pending migration in resolved order.
func (c *Client) MigrateForward(ctx context.Context, exec Exec) error {
	return c.mig.MigrateForward(ctx, exec)
}

// MigrateForwardWithTransactions is MigrateForward with each atomic
// migration wrapped in the supplied transaction boundary callbacks.
func (c *Client) MigrateForwardWithTransactions(ctx context.Context, exec Exec, begin, commit, rollback TxControl) error {
	return c.mig.MigrateForwardWithTransactions(ctx, exec, begin, commit, rollback)
}

// MigrateBackward rolls back applied migrations down to (but not including)
// target, or every applied migration when target is nil.
func (c *Client) MigrateBackward(ctx context.Context, target *string, exec Exec) error {
	return c.mig.MigrateBackward(ctx, target, exec)
}

// Status reports every registered migration's applied state.
func (c *Client) Status(ctx context.Context) ([]MigrationState, error) {
	return c.mig.Status(ctx)
}

// PlanForward returns the SQL MigrateForward would execute, without running it.
func (c *Client) PlanForward(ctx context.Context) ([]PlannedStatement, error) {
	return c.mig.PlanForward(ctx)
}

// PlanBackward returns the SQL MigrateBackward would execute for target,
// without running it.
func (c *Client) PlanBackward(ctx context.Context, target *string) ([]PlannedStatement, error) {
	return c.mig.PlanBackward(ctx, target)
}

// ChecksumChain returns the merkle root over the registry's resolved
// migrations' forward SQL for this Client's backend.
func (c *Client) ChecksumChain() (string, error) {
	return c.registry.ChecksumChain(c.backend)
}
