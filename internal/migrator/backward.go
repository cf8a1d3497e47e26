package migrator

import (
	"context"

	"github.com/cetane-dev/cetane/internal/alerr"
	"github.com/cetane-dev/cetane/internal/ast"
	"github.com/cetane-dev/cetane/internal/registry"
)

// MigrateBackward rolls back applied migrations in reverse resolved order,
// stopping once target is reached (target itself stays applied). A nil
// target rolls back every applied migration. Every migration slated for
// rollback is checked for full reversibility before any statement is
// executed (spec: NotReversible must surface without partial side effects).
func (m *Migrator) MigrateBackward(ctx context.Context, target *string, exec Exec) error {
	toRollback, err := m.rollbackSet(ctx, target)
	if err != nil {
		return err
	}

	reversed := make([][]reverseStep, len(toRollback))
	for i, mig := range toRollback {
		steps, err := reverseSteps(mig)
		if err != nil {
			return err
		}
		reversed[i] = steps
	}

	for i := len(toRollback) - 1; i >= 0; i-- {
		mig := toRollback[i]
		for _, step := range reversed[i] {
			stmts, err := step.op.ForwardSQL(m.backend)
			if err != nil {
				return alerr.Wrap(alerr.ErrSchemaInvalid, err, "failed to lower reverse operation").
					WithMigration(mig.Name).With("operation_index", step.index)
			}
			for _, stmt := range stmts {
				if err := exec(ctx, stmt); err != nil {
					return alerr.Wrap(alerr.ErrExecutor, err, "statement execution failed during rollback").
						WithMigration(mig.Name).WithSQL(stmt)
				}
			}
		}
		if err := m.store.MarkUnapplied(ctx, mig.Name); err != nil {
			return alerr.Wrap(alerr.ErrStateStore, err, "failed to clear applied migration record").WithMigration(mig.Name)
		}
		m.logger().Info("migration rolled back", "migration", mig.Name)
	}
	return nil
}

// reverseStep pairs a reverse operation with the index of the forward
// operation it undoes, for error context.
type reverseStep struct {
	op    ast.Operation
	index int
}

// reverseSteps computes the full set of reverse operations for a migration,
// in the order they must be executed (undoing the last applied operation
// first). It fails closed: a single non-reversible operation anywhere in the
// migration makes the whole migration non-reversible.
func reverseSteps(mig *registry.Migration) ([]reverseStep, error) {
	steps := make([]reverseStep, 0, len(mig.Operations))
	for i := len(mig.Operations) - 1; i >= 0; i-- {
		rev, ok := mig.Operations[i].Reverse()
		if !ok {
			return nil, alerr.New(alerr.ErrNotReversible, "migration operation has no reverse").
				WithMigration(mig.Name).With("operation_index", i)
		}
		steps = append(steps, reverseStep{op: rev, index: i})
	}
	return steps, nil
}

// rollbackSet returns the applied migrations, in resolved forward order,
// that must be undone to reach target (or the full applied set if target is
// nil).
func (m *Migrator) rollbackSet(ctx context.Context, target *string) ([]*registry.Migration, error) {
	ordered, err := m.reg.ResolveOrder()
	if err != nil {
		return nil, err
	}
	appliedNames, err := m.store.AppliedMigrations(ctx)
	if err != nil {
		return nil, alerr.Wrap(alerr.ErrStateStore, err, "failed to load applied migrations")
	}
	applied := appliedSet(appliedNames)

	targetIndex := -1
	if target != nil {
		for i, mig := range ordered {
			if mig.Name == *target {
				targetIndex = i
				break
			}
		}
		if targetIndex == -1 {
			return nil, alerr.New(alerr.ErrSchemaInvalid, "rollback target is not a registered migration").
				With("target", *target)
		}
	}

	var toRollback []*registry.Migration
	for i, mig := range ordered {
		if i <= targetIndex {
			continue
		}
		if applied[mig.Name] {
			toRollback = append(toRollback, mig)
		}
	}
	return toRollback, nil
}
