package migrator

import (
	"context"

	"github.com/cetane-dev/cetane/internal/alerr"
)

// MigrationState reports whether a registered migration has been applied.
type MigrationState struct {
	Name    string
	Applied bool
}

// Status returns every registered migration in resolved order tagged with
// its applied state, without executing anything.
func (m *Migrator) Status(ctx context.Context) ([]MigrationState, error) {
	ordered, err := m.reg.ResolveOrder()
	if err != nil {
		return nil, err
	}
	appliedNames, err := m.store.AppliedMigrations(ctx)
	if err != nil {
		return nil, alerr.Wrap(alerr.ErrStateStore, err, "failed to load applied migrations")
	}
	applied := appliedSet(appliedNames)

	states := make([]MigrationState, 0, len(ordered))
	for _, mig := range ordered {
		states = append(states, MigrationState{Name: mig.Name, Applied: applied[mig.Name]})
	}
	return states, nil
}

// PlannedStatement is one SQL statement a migrate run would execute,
// attributed back to the migration that produced it.
type PlannedStatement struct {
	Migration string
	SQL       string
}

// PlanForward returns the SQL that MigrateForward would execute, without
// executing it.
func (m *Migrator) PlanForward(ctx context.Context) ([]PlannedStatement, error) {
	pending, err := m.pendingForward(ctx)
	if err != nil {
		return nil, err
	}

	var plan []PlannedStatement
	for _, mig := range pending {
		for i, op := range mig.Operations {
			if err := op.Validate(); err != nil {
				return nil, alerr.Wrap(alerr.ErrSchemaInvalid, err, "invalid operation").
					WithMigration(mig.Name).With("operation_index", i)
			}
			stmts, err := op.ForwardSQL(m.backend)
			if err != nil {
				return nil, alerr.Wrap(alerr.ErrSchemaInvalid, err, "failed to lower operation").
					WithMigration(mig.Name).With("operation_index", i)
			}
			for _, s := range stmts {
				plan = append(plan, PlannedStatement{Migration: mig.Name, SQL: s})
			}
		}
	}
	return plan, nil
}

// PlanBackward returns the SQL that MigrateBackward would execute for the
// given target, without executing it. Reversibility is checked up front just
// as MigrateBackward does, so a non-reversible migration in range surfaces
// here before any real rollback is attempted.
func (m *Migrator) PlanBackward(ctx context.Context, target *string) ([]PlannedStatement, error) {
	toRollback, err := m.rollbackSet(ctx, target)
	if err != nil {
		return nil, err
	}

	var plan []PlannedStatement
	for i := len(toRollback) - 1; i >= 0; i-- {
		mig := toRollback[i]
		steps, err := reverseSteps(mig)
		if err != nil {
			return nil, err
		}
		for _, step := range steps {
			stmts, err := step.op.ForwardSQL(m.backend)
			if err != nil {
				return nil, alerr.Wrap(alerr.ErrSchemaInvalid, err, "failed to lower reverse operation").
					WithMigration(mig.Name).With("operation_index", step.index)
			}
			for _, s := range stmts {
				plan = append(plan, PlannedStatement{Migration: mig.Name, SQL: s})
			}
		}
	}
	return plan, nil
}
