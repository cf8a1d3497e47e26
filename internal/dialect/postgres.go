package dialect

import "github.com/cetane-dev/cetane/internal/schema"

type postgres struct{}

// NewPostgres returns the PostgreSQL Backend.
func NewPostgres() Backend { return postgres{} }

func (postgres) Name() Name { return Postgres }

func (postgres) QuoteIdent(name string) string { return quoteWith(name, '"') }

func (postgres) Capabilities() Capabilities {
	return Capabilities{
		SupportsTransactionalDDL: true,
		SupportsPartialIndex:     true,
		SupportsDropColumn:       true,
		SupportsAlterColumnType:  true,
		SupportsRenameColumn:     true,
	}
}

func (postgres) TypeSQL(t schema.FieldType) string {
	switch t.Kind {
	case schema.Serial:
		return "SERIAL"
	case schema.BigSerial:
		return "BIGSERIAL"
	case schema.Integer:
		return "INTEGER"
	case schema.BigInt:
		return "BIGINT"
	case schema.SmallInt:
		return "SMALLINT"
	case schema.Text:
		return "TEXT"
	case schema.VarChar:
		return varcharSQL(t)
	case schema.Boolean:
		return "BOOLEAN"
	case schema.Timestamp:
		return "TIMESTAMP"
	case schema.TimestampTz:
		return "TIMESTAMPTZ"
	case schema.Date:
		return "DATE"
	case schema.Time:
		return "TIME"
	case schema.Uuid:
		return "UUID"
	case schema.Json:
		return "JSON"
	case schema.JsonB:
		return "JSONB"
	case schema.Binary:
		return "BYTEA"
	case schema.Real:
		return "REAL"
	case schema.DoublePrecision:
		return "DOUBLE PRECISION"
	case schema.Decimal:
		return decimalSQL(t)
	default:
		return string(t.Kind)
	}
}
