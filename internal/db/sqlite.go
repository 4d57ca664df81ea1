package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
)

// ConnectSQLite opens a slic SQLite export read-only.
func ConnectSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA query_only=ON",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

// ReadCatalog builds a catalog from a slic SQLite equipment table.
func ReadCatalog(ctx context.Context, db *sql.DB, merge bool) (*catalog.Catalog, error) {
	rows, err := db.QueryContext(ctx, equipmentQuery)
	if err != nil {
		return nil, fmt.Errorf("query equipment: %w", err)
	}
	defer rows.Close()
	eq, err := scanEquipment(rows)
	if err != nil {
		return nil, err
	}
	return buildCatalog(eq, merge)
}

// ReadReference returns published BV from a slic SQLite variants table,
// keyed by "Chassis Model".
func ReadReference(ctx context.Context, db *sql.DB) (map[string]int, error) {
	rows, err := db.QueryContext(ctx, referenceQuery)
	if err != nil {
		return nil, fmt.Errorf("query variants: %w", err)
	}
	defer rows.Close()
	return scanVariants(rows)
}
