package sqlgen

import (
	"fmt"

	"github.com/cetane-dev/cetane/internal/alerr"
	"github.com/cetane-dev/cetane/internal/dialect"
	"github.com/cetane-dev/cetane/internal/schema"
)

// AlterFieldSQL lowers a FieldChanges onto an existing column. Postgres and
// SQLite emit one ALTER COLUMN clause per change (SQLite only when no type
// change is requested — it has no ALTER COLUMN TYPE at all, spec open
// question resolved per SPEC_FULL.md §13). MySQL instead emits a single
// MODIFY COLUMN combining type and nullability, since it has no standalone
// ALTER COLUMN TYPE/SET NOT NULL clauses. SetUnique and SetPrimaryKey are
// not lowered on any backend and produce no statement.
func AlterFieldSQL(b dialect.Backend, table, field string, changes schema.FieldChanges) ([]string, error) {
	if changes.NewType != nil && !b.Capabilities().SupportsAlterColumnType {
		return nil, unsupported(b, "alter_field (type change)", table)
	}

	if b.Name() == dialect.MySql {
		return mysqlModifyColumn(b, table, field, changes)
	}
	return alterColumnClauses(b, table, field, changes), nil
}

// alterColumnClauses is shared by Postgres and SQLite: one ALTER TABLE
// statement per requested change, in a fixed order (type, nullability,
// default).
func alterColumnClauses(b dialect.Backend, table, field string, changes schema.FieldChanges) []string {
	var stmts []string
	qTable := b.QuoteIdent(table)
	qCol := b.QuoteIdent(field)

	if changes.NewType != nil {
		stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s TYPE %s", qTable, qCol, b.TypeSQL(*changes.NewType)))
	}
	if changes.SetNullable != nil {
		if *changes.SetNullable {
			stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s DROP NOT NULL", qTable, qCol))
		} else {
			stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s SET NOT NULL", qTable, qCol))
		}
	}
	if changes.SetDefault != nil {
		if *changes.SetDefault == "" {
			stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s DROP DEFAULT", qTable, qCol))
		} else {
			stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s SET DEFAULT %s", qTable, qCol, *changes.SetDefault))
		}
	}
	return stmts
}

// mysqlModifyColumn emits one MODIFY COLUMN, which always restates the full
// column type. The column's current type is not known here, so a
// FieldChanges without NewType fails with alerr.ErrUnsupportedOp.
func mysqlModifyColumn(b dialect.Backend, table, field string, changes schema.FieldChanges) ([]string, error) {
	if changes.NewType == nil {
		return nil, alerr.New(alerr.ErrUnsupportedOp,
			"mysql MODIFY COLUMN requires the full column type; alter_field on mysql must set NewType").
			WithTable(table).WithColumn(field)
	}

	var sb string
	sb = fmt.Sprintf("ALTER TABLE %s MODIFY COLUMN %s %s", b.QuoteIdent(table), b.QuoteIdent(field), b.TypeSQL(*changes.NewType))
	if changes.SetNullable != nil && !*changes.SetNullable {
		sb += " NOT NULL"
	}
	if changes.SetDefault != nil && *changes.SetDefault != "" {
		sb += " DEFAULT " + *changes.SetDefault
	}
	return []string{sb}, nil
}
