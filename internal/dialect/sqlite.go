package dialect

import "github.com/cetane-dev/cetane/internal/schema"

type sqlite struct{}

// NewSqlite returns the SQLite Backend.
func NewSqlite() Backend { return sqlite{} }

func (sqlite) Name() Name { return Sqlite }

func (sqlite) QuoteIdent(name string) string { return quoteWith(name, '"') }

func (sqlite) Capabilities() Capabilities {
	return Capabilities{
		// SQLite >= 3.35 supports DROP COLUMN and a limited RENAME COLUMN;
		// it has no ALTER COLUMN TYPE at all (column types are dynamically
		// typed in the storage engine).
		SupportsTransactionalDDL: true,
		SupportsPartialIndex:     false,
		SupportsDropColumn:       true,
		SupportsAlterColumnType:  false,
		SupportsRenameColumn:     true,
	}
}

func (sqlite) TypeSQL(t schema.FieldType) string {
	switch t.Kind {
	case schema.Serial, schema.BigSerial:
		return "INTEGER"
	case schema.Integer, schema.BigInt, schema.SmallInt:
		return "INTEGER"
	case schema.Text:
		return "TEXT"
	case schema.VarChar:
		return varcharSQL(t)
	case schema.Boolean:
		return "BOOLEAN"
	case schema.Timestamp, schema.TimestampTz:
		return "TEXT"
	case schema.Date:
		return "TEXT"
	case schema.Time:
		return "TEXT"
	case schema.Uuid:
		return "TEXT"
	case schema.Json, schema.JsonB:
		return "TEXT"
	case schema.Binary:
		return "BLOB"
	case schema.Real, schema.DoublePrecision:
		return "REAL"
	case schema.Decimal:
		return decimalSQL(t)
	default:
		return string(t.Kind)
	}
}
