package statestore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cetane-dev/cetane/internal/alerr"
	"github.com/cetane-dev/cetane/internal/dialect"
)

// SQLStore is a MigrationStateStore backed by a single tracking table in a
// relational database, reached through database/sql. One implementation
// serves all three backends; only the CREATE TABLE column type, the
// placeholder syntax and MarkApplied's insert-or-ignore form vary, all
// driven off dialect.Backend. The caller owns
// the *sql.DB (opening it with the matching driver — lib/pq, modernc.org/sqlite,
// or go-sql-driver/mysql — and closing it) since Cetane does not manage
// connections.
type SQLStore struct {
	db    *sql.DB
	b     dialect.Backend
	table string
}

// NewSQLStore wraps db as a MigrationStateStore for backend b. The tracking
// table is created lazily on first use via EnsureTable, not at construction.
func NewSQLStore(db *sql.DB, b dialect.Backend) *SQLStore {
	return &SQLStore{db: db, b: b, table: MigrationTableName}
}

// EnsureTable creates the tracking table if it does not already exist.
func (s *SQLStore) EnsureTable(ctx context.Context) error {
	stmt := s.createTableSQL()
	if _, err := s.db.ExecContext(ctx, stmt); err != nil {
		return alerr.Wrap(alerr.ErrStateStore, err, "failed to create migration tracking table").WithSQL(stmt)
	}
	return nil
}

func (s *SQLStore) createTableSQL() string {
	table := s.b.QuoteIdent(s.table)
	name := s.b.QuoteIdent("name")
	appliedAt := s.b.QuoteIdent("applied_at")

	switch s.b.Name() {
	case dialect.Postgres:
		return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s TEXT PRIMARY KEY, %s TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP)`,
			table, name, appliedAt)
	case dialect.MySql:
		return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s VARCHAR(255) PRIMARY KEY, %s DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP)",
			table, name, appliedAt)
	default: // sqlite
		return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s TEXT PRIMARY KEY, %s TEXT NOT NULL DEFAULT (datetime('now')))`,
			table, name, appliedAt)
	}
}

// placeholder returns the nth (1-based) bind-parameter marker for the
// backend's driver: Postgres uses $1, $2, ...; SQLite and MySQL use ?.
func (s *SQLStore) placeholder(n int) string {
	if s.b.Name() == dialect.Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (s *SQLStore) AppliedMigrations(ctx context.Context) ([]string, error) {
	table := s.b.QuoteIdent(s.table)
	name := s.b.QuoteIdent("name")
	appliedAt := s.b.QuoteIdent("applied_at")
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s ASC, %s ASC", name, table, appliedAt, name)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, alerr.Wrap(alerr.ErrStateStore, err, "failed to query applied migrations").WithSQL(query)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, alerr.Wrap(alerr.ErrStateStore, err, "failed to scan applied migration row")
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, alerr.Wrap(alerr.ErrStateStore, err, "error iterating applied migration rows")
	}
	return names, nil
}

func (s *SQLStore) MarkApplied(ctx context.Context, name string) error {
	table := s.b.QuoteIdent(s.table)
	col := s.b.QuoteIdent("name")

	// Marking an already-applied migration must be a no-op (spec §8
	// invariant 4's idempotence requirement extends to the state store
	// itself), so each dialect's insert-or-ignore form is used here rather
	// than a bare INSERT.
	var query string
	switch s.b.Name() {
	case dialect.Postgres:
		query = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO NOTHING", table, col, s.placeholder(1), col)
	case dialect.MySql:
		query = fmt.Sprintf("INSERT IGNORE INTO %s (%s) VALUES (%s)", table, col, s.placeholder(1))
	default: // sqlite
		query = fmt.Sprintf("INSERT OR IGNORE INTO %s (%s) VALUES (%s)", table, col, s.placeholder(1))
	}

	if _, err := s.db.ExecContext(ctx, query, name); err != nil {
		return alerr.Wrap(alerr.ErrStateStore, err, "failed to record applied migration").
			WithMigration(name).WithSQL(query)
	}
	return nil
}

func (s *SQLStore) MarkUnapplied(ctx context.Context, name string) error {
	table := s.b.QuoteIdent(s.table)
	col := s.b.QuoteIdent("name")
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = %s", table, col, s.placeholder(1))

	if _, err := s.db.ExecContext(ctx, query, name); err != nil {
		return alerr.Wrap(alerr.ErrStateStore, err, "failed to remove migration record").
			WithMigration(name).WithSQL(query)
	}
	return nil
}
