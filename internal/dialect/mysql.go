package dialect

import "github.com/cetane-dev/cetane/internal/schema"

type mysql struct{}

// NewMySql returns the MySQL Backend.
func NewMySql() Backend { return mysql{} }

func (mysql) Name() Name { return MySql }

func (mysql) QuoteIdent(name string) string { return quoteWith(name, '`') }

func (mysql) Capabilities() Capabilities {
	return Capabilities{
		// MySQL's DDL is non-transactional for most storage engines (InnoDB
		// has partial DDL atomicity but it is not portable to assume).
		SupportsTransactionalDDL: false,
		SupportsPartialIndex:     false, // no WHERE clause on CREATE INDEX
		SupportsDropColumn:       true,
		SupportsAlterColumnType:  true, // via MODIFY COLUMN, see AlterField lowering
		SupportsRenameColumn:     true,
	}
}

func (mysql) TypeSQL(t schema.FieldType) string {
	switch t.Kind {
	case schema.Serial:
		return "INTEGER AUTO_INCREMENT"
	case schema.BigSerial:
		return "BIGINT AUTO_INCREMENT"
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
		return "TINYINT(1)"
	case schema.Timestamp:
		return "DATETIME"
	case schema.TimestampTz:
		return "TIMESTAMP"
	case schema.Date:
		return "DATE"
	case schema.Time:
		return "TIME"
	case schema.Uuid:
		return "CHAR(36)"
	case schema.Json, schema.JsonB:
		return "JSON"
	case schema.Binary:
		return "BLOB"
	case schema.Real:
		return "FLOAT"
	case schema.DoublePrecision:
		return "DOUBLE"
	case schema.Decimal:
		return decimalSQL(t)
	default:
		return string(t.Kind)
	}
}
