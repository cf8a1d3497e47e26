package migrator

import (
	"context"

	"github.com/cetane-dev/cetane/internal/alerr"
	"github.com/cetane-dev/cetane/internal/registry"
)

// MigrateForward applies every migration in the registry's resolved order
// that is not yet in the state store, in order. Already-applied migrations
// are skipped entirely — running forward twice against a fully-applied
// state issues zero statements.
func (m *Migrator) MigrateForward(ctx context.Context, exec Exec) error {
	pending, err := m.pendingForward(ctx)
	if err != nil {
		return err
	}

	for _, mig := range pending {
		if err := m.applyOne(ctx, mig, exec); err != nil {
			return err
		}
		if err := m.store.MarkApplied(ctx, mig.Name); err != nil {
			return alerr.Wrap(alerr.ErrStateStore, err, "failed to record applied migration").WithMigration(mig.Name)
		}
		m.logger().Info("migration applied", "migration", mig.Name)
	}
	return nil
}

// MigrateForwardWithTransactions is MigrateForward with each atomic
// migration wrapped in begin/commit, rolling back on any exec failure. A
// migration marked NonAtomic runs outside a transaction even when the
// backend supports transactional DDL, and backends that don't support
// transactional DDL at all run every migration outside a transaction
// regardless of its Atomic flag.
func (m *Migrator) MigrateForwardWithTransactions(ctx context.Context, exec Exec, begin, commit, rollback TxControl) error {
	pending, err := m.pendingForward(ctx)
	if err != nil {
		return err
	}

	for _, mig := range pending {
		wrap := mig.Atomic && m.backend.Capabilities().SupportsTransactionalDDL
		if wrap {
			if err := begin(ctx); err != nil {
				return alerr.Wrap(alerr.ErrExecutor, err, "failed to begin transaction").WithMigration(mig.Name)
			}
		}

		if err := m.applyOne(ctx, mig, exec); err != nil {
			if wrap {
				if rbErr := rollback(ctx); rbErr != nil {
					m.logger().Warn("rollback after failed migration also failed", "migration", mig.Name, "error", rbErr)
				}
			}
			return err
		}

		if wrap {
			if err := commit(ctx); err != nil {
				return alerr.Wrap(alerr.ErrExecutor, err, "failed to commit transaction").WithMigration(mig.Name)
			}
		}

		if err := m.store.MarkApplied(ctx, mig.Name); err != nil {
			return alerr.Wrap(alerr.ErrStateStore, err, "failed to record applied migration").WithMigration(mig.Name)
		}
		m.logger().Info("migration applied", "migration", mig.Name, "transactional", wrap)
	}
	return nil
}

// pendingForward resolves the registry and filters out already-applied
// migrations, preserving resolved order.
func (m *Migrator) pendingForward(ctx context.Context) ([]*registry.Migration, error) {
	ordered, err := m.reg.ResolveOrder()
	if err != nil {
		return nil, err
	}
	appliedNames, err := m.store.AppliedMigrations(ctx)
	if err != nil {
		return nil, alerr.Wrap(alerr.ErrStateStore, err, "failed to load applied migrations")
	}
	applied := appliedSet(appliedNames)

	pending := make([]*registry.Migration, 0, len(ordered))
	for _, mig := range ordered {
		if !applied[mig.Name] {
			pending = append(pending, mig)
		}
	}
	return pending, nil
}

// applyOne lowers and executes every operation of a single migration in
// order, validating each operation before emitting its SQL.
func (m *Migrator) applyOne(ctx context.Context, mig *registry.Migration, exec Exec) error {
	for i, op := range mig.Operations {
		if err := op.Validate(); err != nil {
			return alerr.Wrap(alerr.ErrSchemaInvalid, err, "invalid operation").
				WithMigration(mig.Name).With("operation_index", i)
		}
		stmts, err := op.ForwardSQL(m.backend)
		if err != nil {
			return alerr.Wrap(alerr.ErrSchemaInvalid, err, "failed to lower operation").
				WithMigration(mig.Name).With("operation_index", i)
		}
		for _, stmt := range stmts {
			if err := exec(ctx, stmt); err != nil {
				return alerr.Wrap(alerr.ErrExecutor, err, "statement execution failed").
					WithMigration(mig.Name).WithSQL(stmt)
			}
		}
	}
	return nil
}
