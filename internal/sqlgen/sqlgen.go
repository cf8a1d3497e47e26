// Package sqlgen holds the stateless lowering functions from the schema
// data model (package schema) to dialect-specific SQL strings, parameterized
// by a dialect.Backend. ast.Operation.ForwardSQL methods are thin adapters
// over these functions — this package owns the actual generation rules
// fixed by the SQL generator design (quoting, column-def ordering,
// capability-gated errors).
package sqlgen

import (
	"fmt"
	"strings"

	"github.com/cetane-dev/cetane/internal/alerr"
	"github.com/cetane-dev/cetane/internal/dialect"
	"github.com/cetane-dev/cetane/internal/schema"
)

// ColumnDefSQL renders one column's definition for a CREATE TABLE/ADD COLUMN
// statement: "<name> <type> [NOT NULL] [DEFAULT x] [PRIMARY KEY] [UNIQUE]
// [REFERENCES t(c) [ON DELETE x] [ON UPDATE y]]".
//
// singlePK controls whether an inline PRIMARY KEY is emitted for this
// column; CreateTableSQL passes false when multiple fields are primary keys
// (the caller instead emits a table-level PRIMARY KEY clause).
func ColumnDefSQL(b dialect.Backend, f schema.Field, singlePK bool) string {
	f = f.Normalize()
	var sb strings.Builder
	sb.WriteString(b.QuoteIdent(f.Name))
	sb.WriteByte(' ')
	sb.WriteString(b.TypeSQL(f.Type))

	if !f.Nullable {
		sb.WriteString(" NOT NULL")
	}
	if f.Default != "" {
		sb.WriteString(" DEFAULT ")
		sb.WriteString(f.Default)
	}
	if f.PrimaryKey && singlePK {
		sb.WriteString(" PRIMARY KEY")
		// SQLite only recognizes AUTOINCREMENT immediately after an inline
		// INTEGER PRIMARY KEY; it cannot appear as part of the type name the
		// way MySQL's "INTEGER AUTO_INCREMENT" does.
		if b.Name() == dialect.Sqlite && isIdentity(f.Type.Kind) {
			sb.WriteString(" AUTOINCREMENT")
		}
	}
	if f.Unique && !f.PrimaryKey {
		sb.WriteString(" UNIQUE")
	}
	if f.ForeignKey != nil {
		sb.WriteString(" REFERENCES ")
		sb.WriteString(b.QuoteIdent(f.ForeignKey.Table))
		sb.WriteString("(")
		sb.WriteString(b.QuoteIdent(f.ForeignKey.Column))
		sb.WriteString(")")
		writeReferentialActions(&sb, f.ForeignKey.OnDelete, f.ForeignKey.OnUpdate)
	}
	return sb.String()
}

// isIdentity reports whether kind is one of the auto-incrementing integer
// types (Serial, BigSerial).
func isIdentity(kind schema.TypeKind) bool {
	return kind == schema.Serial || kind == schema.BigSerial
}

func writeReferentialActions(sb *strings.Builder, onDelete, onUpdate schema.ReferentialAction) {
	if onDelete != "" {
		sb.WriteString(" ON DELETE ")
		sb.WriteString(string(onDelete))
	}
	if onUpdate != "" {
		sb.WriteString(" ON UPDATE ")
		sb.WriteString(string(onUpdate))
	}
}

// CreateTableSQL renders "CREATE TABLE <t> (<field-defs>[, <constraints>])".
// Field order is insertion order. Multiple PK fields collapse into a single
// table-level PRIMARY KEY clause in insertion order.
func CreateTableSQL(b dialect.Backend, table string, fields []schema.Field, constraints []schema.Constraint) string {
	pkCount := 0
	for _, f := range fields {
		if f.PrimaryKey {
			pkCount++
		}
	}
	singlePK := pkCount <= 1

	parts := make([]string, 0, len(fields)+len(constraints)+1)
	for _, f := range fields {
		parts = append(parts, ColumnDefSQL(b, f, singlePK))
	}
	if !singlePK {
		var pkCols []string
		for _, f := range fields {
			if f.PrimaryKey {
				pkCols = append(pkCols, b.QuoteIdent(f.Name))
			}
		}
		parts = append(parts, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pkCols, ", ")))
	}
	for _, c := range constraints {
		parts = append(parts, ConstraintClauseSQL(b, c))
	}

	return fmt.Sprintf("CREATE TABLE %s (%s)", b.QuoteIdent(table), strings.Join(parts, ", "))
}

// ConstraintClauseSQL renders the inline clause for a table-level constraint
// (used both in CREATE TABLE and in ALTER TABLE ... ADD CONSTRAINT).
func ConstraintClauseSQL(b dialect.Backend, c schema.Constraint) string {
	switch c.Kind {
	case schema.UniqueConstraint:
		return fmt.Sprintf("CONSTRAINT %s UNIQUE (%s)", b.QuoteIdent(c.Name), quoteJoin(b, c.Columns))
	case schema.CheckConstraint:
		return fmt.Sprintf("CONSTRAINT %s CHECK (%s)", b.QuoteIdent(c.Name), c.Expression)
	case schema.ForeignKeyConstraint:
		var sb strings.Builder
		fmt.Fprintf(&sb, "CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s)",
			b.QuoteIdent(c.Name), quoteJoin(b, c.Columns), b.QuoteIdent(c.RefTable), quoteJoin(b, c.RefColumns))
		writeReferentialActions(&sb, c.OnDelete, c.OnUpdate)
		return sb.String()
	default:
		return ""
	}
}

func quoteJoin(b dialect.Backend, names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = b.QuoteIdent(n)
	}
	return strings.Join(quoted, ", ")
}

// DropTableSQL renders "DROP TABLE <t>".
func DropTableSQL(b dialect.Backend, table string) string {
	return fmt.Sprintf("DROP TABLE %s", b.QuoteIdent(table))
}

// RenameTableSQL renders "ALTER TABLE <a> RENAME TO <b>".
func RenameTableSQL(b dialect.Backend, from, to string) string {
	return fmt.Sprintf("ALTER TABLE %s RENAME TO %s", b.QuoteIdent(from), b.QuoteIdent(to))
}

// AddFieldSQL renders "ALTER TABLE <t> ADD COLUMN <def>".
func AddFieldSQL(b dialect.Backend, table string, f schema.Field) string {
	return fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", b.QuoteIdent(table), ColumnDefSQL(b, f, true))
}

// RemoveFieldSQL renders "ALTER TABLE <t> DROP COLUMN <c>", failing with
// alerr.ErrUnsupportedOp when the backend cannot drop columns.
func RemoveFieldSQL(b dialect.Backend, table, field string) (string, error) {
	if !b.Capabilities().SupportsDropColumn {
		return "", unsupported(b, "remove_field", table)
	}
	return fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", b.QuoteIdent(table), b.QuoteIdent(field)), nil
}

// RenameFieldSQL renders "ALTER TABLE <t> RENAME COLUMN <a> TO <b>".
func RenameFieldSQL(b dialect.Backend, table, from, to string) (string, error) {
	if !b.Capabilities().SupportsRenameColumn {
		return "", unsupported(b, "rename_field", table)
	}
	return fmt.Sprintf("ALTER TABLE %s RENAME COLUMN %s TO %s",
		b.QuoteIdent(table), b.QuoteIdent(from), b.QuoteIdent(to)), nil
}

// AddIndexSQL renders "CREATE [UNIQUE] INDEX <n> ON <t>(c1 [ASC|DESC], …)
// [WHERE <filter>]". The filter clause is silently dropped when the
// backend's partial-index capability is false (documented behavior).
func AddIndexSQL(b dialect.Backend, table string, idx schema.Index) string {
	var sb strings.Builder
	sb.WriteString("CREATE ")
	if idx.Unique {
		sb.WriteString("UNIQUE ")
	}
	fmt.Fprintf(&sb, "INDEX %s ON %s(", b.QuoteIdent(idx.Name), b.QuoteIdent(table))
	for i, col := range idx.Columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.QuoteIdent(col.Name))
		if col.Direction == schema.Desc {
			sb.WriteString(" DESC")
		} else {
			sb.WriteString(" ASC")
		}
	}
	sb.WriteString(")")
	if idx.Filter != "" && b.Capabilities().SupportsPartialIndex {
		sb.WriteString(" WHERE ")
		sb.WriteString(idx.Filter)
	}
	return sb.String()
}

// RemoveIndexSQL renders "DROP INDEX <n>".
func RemoveIndexSQL(b dialect.Backend, indexName string) string {
	return fmt.Sprintf("DROP INDEX %s", b.QuoteIdent(indexName))
}

// AddConstraintSQL renders "ALTER TABLE <t> ADD <constraint-clause>".
func AddConstraintSQL(b dialect.Backend, table string, c schema.Constraint) string {
	return fmt.Sprintf("ALTER TABLE %s ADD %s", b.QuoteIdent(table), ConstraintClauseSQL(b, c))
}

// RemoveConstraintSQL renders "ALTER TABLE <t> DROP CONSTRAINT <n>".
func RemoveConstraintSQL(b dialect.Backend, table, name string) string {
	return fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT %s", b.QuoteIdent(table), b.QuoteIdent(name))
}

func unsupported(b dialect.Backend, op, table string) error {
	return alerr.Newf(alerr.ErrUnsupportedOp, "%s does not support %s", b.Name(), op).
		WithTable(table).With("backend", string(b.Name()))
}
