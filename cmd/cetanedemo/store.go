package main

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/cetane-dev/cetane/internal/dialect"
	"github.com/cetane-dev/cetane/internal/statestore"
)

// openStore opens a *sql.DB for the named backend and wraps it in a
// statestore.SQLStore. It does not create the bookkeeping table; that is
// done separately through SQLStore.EnsureTable.
func openStore(backendName, databaseURL string) (*sql.DB, *statestore.SQLStore, error) {
	b := dialect.Get(backendName)
	if b == nil {
		return nil, nil, fmt.Errorf("unknown backend %q", backendName)
	}

	driver, dsn, err := driverAndDSN(b.Name(), databaseURL)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s database: %w", backendName, err)
	}

	store := statestore.NewSQLStore(db, b)
	return db, store, nil
}

func driverAndDSN(name dialect.Name, databaseURL string) (driver, dsn string, err error) {
	switch name {
	case dialect.Postgres:
		if databaseURL == "" {
			return "", "", fmt.Errorf("--database-url is required for postgres")
		}
		return "postgres", databaseURL, nil
	case dialect.MySql:
		if databaseURL == "" {
			return "", "", fmt.Errorf("--database-url is required for mysql")
		}
		return "mysql", databaseURL, nil
	case dialect.Sqlite:
		if databaseURL == "" {
			databaseURL = "cetane.db"
		}
		return "sqlite", databaseURL, nil
	default:
		return "", "", fmt.Errorf("unsupported backend %q", name)
	}
}
