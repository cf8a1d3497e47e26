package dialect

import (
	"testing"

	"github.com/cetane-dev/cetane/internal/schema"
)

func TestGetKnownNames(t *testing.T) {
	tests := []struct {
		input string
		want  Name
	}{
		{"postgres", Postgres},
		{"postgresql", Postgres},
		{"PG", Postgres},
		{"sqlite", Sqlite},
		{"sqlite3", Sqlite},
		{"mysql", MySql},
		{"MariaDB", MySql},
	}
	for _, tt := range tests {
		b := Get(tt.input)
		if b == nil {
			t.Fatalf("Get(%q) = nil", tt.input)
		}
		if b.Name() != tt.want {
			t.Fatalf("Get(%q).Name() = %v, want %v", tt.input, b.Name(), tt.want)
		}
	}
}

func TestGetUnknownReturnsNil(t *testing.T) {
	if Get("mssql") != nil {
		t.Fatalf("expected nil for unknown dialect")
	}
}

func TestQuoteIdentPerBackend(t *testing.T) {
	tests := []struct {
		backend Backend
		name    string
		want    string
	}{
		{NewPostgres(), "users", `"users"`},
		{NewSqlite(), "users", `"users"`},
		{NewMySql(), "users", "`users`"},
		{NewPostgres(), `weird"name`, `"weird""name"`},
	}
	for _, tt := range tests {
		if got := tt.backend.QuoteIdent(tt.name); got != tt.want {
			t.Fatalf("QuoteIdent(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTypeSQLVarCharAndDecimal(t *testing.T) {
	vc := schema.NewVarChar(255)
	dec := schema.NewDecimal(10, 2)

	for _, b := range []Backend{NewPostgres(), NewSqlite(), NewMySql()} {
		if got := b.TypeSQL(vc); got != "VARCHAR(255)" {
			t.Fatalf("%v TypeSQL(varchar) = %q", b.Name(), got)
		}
		if got := b.TypeSQL(dec); got != "DECIMAL(10,2)" {
			t.Fatalf("%v TypeSQL(decimal) = %q", b.Name(), got)
		}
	}
}

func TestSqliteCannotAlterColumnType(t *testing.T) {
	if NewSqlite().Capabilities().SupportsAlterColumnType {
		t.Fatalf("sqlite should not claim ALTER COLUMN TYPE support")
	}
}

func TestMySqlNoPartialIndex(t *testing.T) {
	if NewMySql().Capabilities().SupportsPartialIndex {
		t.Fatalf("mysql has no WHERE clause on CREATE INDEX")
	}
}
