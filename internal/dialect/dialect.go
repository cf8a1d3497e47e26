// Package dialect implements the Backend abstraction: per-database-engine
// type mapping, identifier quoting, and capability flags. Three concrete
// backends are provided — Postgres, Sqlite, MySql — all built on the
// shared helper layer in base.go.
package dialect

import (
	"strings"

	"github.com/cetane-dev/cetane/internal/schema"
)

// Name is the case-sensitive backend tag used both as the dialect's identity
// and as the lookup key for RunSql::portable (spec §6 "backend name tags").
type Name string

const (
	Postgres Name = "postgres"
	Sqlite   Name = "sqlite"
	MySql    Name = "mysql"
)

// Capabilities are the flags consulted before lowering or running an
// operation. A false SupportsDropColumn, SupportsAlterColumnType or
// SupportsRenameColumn makes the SQL generator fail with
// alerr.ErrUnsupportedOp rather than emit invalid SQL; a false
// SupportsPartialIndex drops an index's filter from CREATE INDEX; a false
// SupportsTransactionalDDL makes the migrator run atomic migrations without
// the transaction callbacks.
type Capabilities struct {
	SupportsTransactionalDDL bool
	SupportsPartialIndex     bool
	SupportsDropColumn       bool
	SupportsAlterColumnType  bool
	SupportsRenameColumn     bool
}

// Backend is a dialect descriptor: identifier quoting, FieldType → SQL type
// mapping, and capability flags.
type Backend interface {
	Name() Name
	QuoteIdent(name string) string
	TypeSQL(t schema.FieldType) string
	Capabilities() Capabilities
}

// Get returns the Backend for a case-insensitive dialect name, or nil if
// unknown.
func Get(name string) Backend {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql", "pg":
		return NewPostgres()
	case "sqlite", "sqlite3":
		return NewSqlite()
	case "mysql", "maria", "mariadb":
		return NewMySql()
	default:
		return nil
	}
}

// Names lists the recognized backend name tags.
func Names() []string { return []string{string(Postgres), string(Sqlite), string(MySql)} }
