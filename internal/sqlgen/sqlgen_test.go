package sqlgen

import (
	"strings"
	"testing"

	"github.com/cetane-dev/cetane/internal/dialect"
	"github.com/cetane-dev/cetane/internal/schema"
)

func TestColumnDefSQLSqliteIdentityAutoincrement(t *testing.T) {
	b := dialect.NewSqlite()
	tests := []struct {
		name string
		kind schema.TypeKind
	}{
		{"serial", schema.Serial},
		{"bigserial", schema.BigSerial},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := schema.Field{Name: "id", Type: schema.Simple(tt.kind), PrimaryKey: true}
			got := ColumnDefSQL(b, f, true)
			if !strings.Contains(got, "PRIMARY KEY AUTOINCREMENT") {
				t.Fatalf("ColumnDefSQL() = %q, want PRIMARY KEY immediately followed by AUTOINCREMENT", got)
			}
		})
	}
}

func TestColumnDefSQLSqliteCompositePrimaryKeyNoAutoincrement(t *testing.T) {
	b := dialect.NewSqlite()
	// singlePK=false: the column itself isn't given an inline PRIMARY KEY, so
	// AUTOINCREMENT (which only attaches to an inline PRIMARY KEY) must not
	// appear either.
	f := schema.Field{Name: "id", Type: schema.Simple(schema.Serial), PrimaryKey: true}
	got := ColumnDefSQL(b, f, false)
	if strings.Contains(got, "AUTOINCREMENT") {
		t.Fatalf("ColumnDefSQL() = %q, should not emit AUTOINCREMENT without an inline PRIMARY KEY", got)
	}
}

func TestColumnDefSQLNonIdentityNoAutoincrement(t *testing.T) {
	b := dialect.NewSqlite()
	f := schema.Field{Name: "id", Type: schema.Simple(schema.Integer), PrimaryKey: true}
	got := ColumnDefSQL(b, f, true)
	if strings.Contains(got, "AUTOINCREMENT") {
		t.Fatalf("ColumnDefSQL() = %q, plain Integer primary key should not autoincrement", got)
	}
}

func TestColumnDefSQLOtherBackendsNoAutoincrementKeyword(t *testing.T) {
	for _, b := range []dialect.Backend{dialect.NewPostgres(), dialect.NewMySql()} {
		f := schema.Field{Name: "id", Type: schema.Simple(schema.Serial), PrimaryKey: true}
		got := ColumnDefSQL(b, f, true)
		if strings.Contains(got, "AUTOINCREMENT") {
			t.Fatalf("%v: ColumnDefSQL() = %q, AUTOINCREMENT is SQLite-specific syntax", b.Name(), got)
		}
	}
}
