package main

import (
	"context"
	"database/sql"
	"fmt"

	cetanecli "github.com/cetane-dev/cetane/internal/cli"
	"github.com/cetane-dev/cetane/pkg/cetane"
)

// demoEnv bundles everything a subcommand needs: the manifest-backed
// client, the raw *sql.DB for transaction control, and an Exec callback
// bound to whichever of them is currently active.
type demoEnv struct {
	db     *sql.DB
	tx     *sql.Tx // set between begin/commit-or-rollback when run inside a transaction
	client *cetane.Client
}

func setupEnv(ctx context.Context, cfg config) (*demoEnv, error) {
	spinner := cetanecli.NewSpinner(fmt.Sprintf("connecting to %s", cfg.backend))
	spinner.Start()
	defer spinner.Stop()

	reg, err := loadManifest(cfg.manifest)
	if err != nil {
		return nil, err
	}

	db, store, err := openStore(cfg.backend, cfg.databaseURL)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureTable(ctx); err != nil {
		db.Close()
		return nil, err
	}

	client, err := cetane.New(reg, cetane.WithBackendName(cfg.backend), cetane.WithStateStore(store))
	if err != nil {
		db.Close()
		return nil, err
	}

	return &demoEnv{db: db, client: client}, nil
}

func (e *demoEnv) Close() error { return e.db.Close() }

// exec runs sql against the active transaction, if MigrateForwardWithTransactions
// has one open, or directly against the database otherwise.
func (e *demoEnv) exec(ctx context.Context, sql string) error {
	var err error
	if e.tx != nil {
		_, err = e.tx.ExecContext(ctx, sql)
	} else {
		_, err = e.db.ExecContext(ctx, sql)
	}
	if err != nil {
		return fmt.Errorf("executing %q: %w", sql, err)
	}
	return nil
}

// txControls returns the begin/commit/rollback callbacks MigrateForwardWithTransactions
// drives around each atomic migration.
func (e *demoEnv) txControls() (begin, commit, rollback cetane.TxControl) {
	begin = func(ctx context.Context) error {
		tx, err := e.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		e.tx = tx
		return nil
	}
	commit = func(ctx context.Context) error {
		if e.tx == nil {
			return nil
		}
		err := e.tx.Commit()
		e.tx = nil
		return err
	}
	rollback = func(ctx context.Context) error {
		if e.tx == nil {
			return nil
		}
		err := e.tx.Rollback()
		e.tx = nil
		return err
	}
	return begin, commit, rollback
}
