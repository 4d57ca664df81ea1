// Package db persists validation runs and reads equipment and reference
// Battle Values from slic-style SQLite and Postgres databases.
package db

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"github.com/SwiggitySwerve/MekStation-sub003/internal/config"
)

// ErrUnsupportedBackend is returned for a backend the operation cannot use.
var ErrUnsupportedBackend = errors.New("unsupported backend")

// open connects to a run store database and pings it.
func open(backend config.Backend, connStr string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	switch backend {
	case config.SQLiteBackend:
		path := connStr
		if path == "" {
			path = config.DefaultStorePath
		}
		db, err = sql.Open("sqlite", path)
		if err != nil {
			return nil, fmt.Errorf("open SQLite database at %q: %w", path, err)
		}
		// A single connection avoids "database is locked" errors.
		db.SetMaxOpenConns(1)

	case config.MySQLBackend:
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("open MySQL database: %w. Check connection string format: user:password@tcp(host:port)/dbname", err)
		}

	case config.PostgreSQLBackend:
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("open PostgreSQL database: %w. Check connection string format: host=... dbname=...", err)
		}

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to %s database: %w", backend, err)
	}
	return db, nil
}
