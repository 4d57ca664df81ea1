package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrateStatus reports what a migration did.
type MigrateStatus struct {
	From    uint
	To      uint
	Changed bool
}

// Migrate runs the run store migrations.
//   - If targetVersion < 0, it migrates to the latest version.
//   - If targetVersion == 0, it rolls back all migrations.
//   - If targetVersion > 0, it migrates to the specified version.
func Migrate(backend config.Backend, connStr string, targetVersion int) (MigrateStatus, error) {
	if backend == config.NoneBackend {
		return MigrateStatus{}, fmt.Errorf("%w: migrations need a database, got %s", ErrUnsupportedBackend, backend)
	}
	db, err := open(backend, connStr)
	if err != nil {
		return MigrateStatus{}, err
	}
	defer func() { _ = db.Close() }()
	return migrateDB(db, backend, targetVersion)
}

func migrateDB(db *sql.DB, backend config.Backend, targetVersion int) (MigrateStatus, error) {
	var driver database.Driver
	var err error
	switch backend {
	case config.SQLiteBackend:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case config.MySQLBackend:
		driver, err = mysql.WithInstance(db, &mysql.Config{})
	case config.PostgreSQLBackend:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		return MigrateStatus{}, fmt.Errorf("%w: %s", ErrUnsupportedBackend, backend)
	}
	if err != nil {
		return MigrateStatus{}, fmt.Errorf("create %s migrate driver: %w", backend, err)
	}

	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return MigrateStatus{}, fmt.Errorf("access migrations: %w", err)
	}
	src, err := iofs.New(sub, ".")
	if err != nil {
		return MigrateStatus{}, fmt.Errorf("create migration source: %w", err)
	}
	// The migrate instance is not closed: closing it would close db.
	m, err := migrate.NewWithInstance("iofs", src, "mekbv", driver)
	if err != nil {
		return MigrateStatus{}, fmt.Errorf("create migrate instance: %w", err)
	}

	from, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return MigrateStatus{}, fmt.Errorf("read migration version: %w", err)
	}
	if dirty {
		return MigrateStatus{}, fmt.Errorf("database is dirty at version %d; fix manually or force the version", from)
	}

	switch {
	case targetVersion < 0:
		err = m.Up()
	case targetVersion == 0:
		err = m.Down()
	default:
		err = m.Migrate(uint(targetVersion))
	}
	if errors.Is(err, migrate.ErrNoChange) {
		return MigrateStatus{From: from, To: from}, nil
	}
	if err != nil {
		return MigrateStatus{}, fmt.Errorf("migrate from version %d: %w", from, err)
	}

	to, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		err = nil
	}
	return MigrateStatus{From: from, To: to, Changed: true}, err
}
