package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/config"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/db"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
)

// catalogFromDB selects the database-backed catalog source.
const catalogFromDB = "db"

// engine is the read-only state every scoring command shares.
type engine struct {
	catalog    *catalog.Catalog
	tables     *config.Tables
	normalizer *normalize.Normalizer
	calc       *bvcalc.Calculator
}

// loadEngine builds the catalog, tables, normalizer and calculator from
// the configured sources.
func (a *app) loadEngine(ctx context.Context) (*engine, error) {
	cat, err := a.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	tables := &config.Tables{}
	if a.cfg.Tables != "" {
		if tables, err = config.LoadTables(a.cfg.Tables); err != nil {
			return nil, err
		}
	}

	e := &engine{
		catalog:    cat,
		tables:     tables,
		normalizer: normalize.New(cat, normalize.DefaultTables().Merge(tables.Normalizer)),
		calc:       bvcalc.New(bvcalc.Options{ClanCASEAllowList: tables.AllowList()}),
	}
	a.logger.Debug("engine loaded", "catalog_entries", cat.Len(), "overrides", len(tables.Overrides), "exclusions", len(tables.Exclusions))
	return e, nil
}

func (a *app) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	switch a.cfg.Catalog {
	case "":
		return catalog.Default(), nil
	case catalogFromDB:
	default:
		return catalog.LoadFile(a.cfg.Catalog, a.cfg.CatalogMerge)
	}

	switch {
	case a.cfg.SlicDB != "":
		conn, err := db.ConnectSQLite(a.cfg.SlicDB)
		if err != nil {
			return nil, err
		}
		defer func() { _ = conn.Close() }()
		return db.ReadCatalog(ctx, conn, a.cfg.CatalogMerge)
	case a.cfg.ReferenceDSN != "":
		store, err := db.Connect(ctx, a.cfg.ReferenceDSN)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.LoadCatalog(ctx, a.cfg.CatalogMerge)
	}
	return nil, fmt.Errorf("%w: catalog %q needs --slic-db or --reference-dsn", config.ErrInvalid, catalogFromDB)
}

// loadReference reads published BV from the first configured source: a
// reference file, a slic SQLite export, a slic Postgres database, or the
// run store.
func (a *app) loadReference(ctx context.Context, store *db.RunStore) (map[string]int, string, error) {
	switch {
	case a.cfg.Reference != "":
		ref, err := config.LoadReference(a.cfg.Reference)
		return ref, a.cfg.Reference, err
	case a.cfg.SlicDB != "":
		conn, err := db.ConnectSQLite(a.cfg.SlicDB)
		if err != nil {
			return nil, "", err
		}
		defer func() { _ = conn.Close() }()
		ref, err := db.ReadReference(ctx, conn)
		return ref, a.cfg.SlicDB, err
	case a.cfg.ReferenceDSN != "":
		pg, err := db.Connect(ctx, a.cfg.ReferenceDSN)
		if err != nil {
			return nil, "", err
		}
		defer pg.Close()
		ref, err := pg.LoadReference(ctx)
		return ref, "postgres", err
	case store != nil && store.Backend() != config.NoneBackend:
		ref, err := store.Reference(ctx)
		return ref, string(store.Backend()), err
	}
	return nil, "", fmt.Errorf("%w: no reference source; set --reference, --slic-db, --reference-dsn or a store backend", config.ErrInvalid)
}

// readCredentials reads a service account key file.
func readCredentials(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sheet credentials: %w", err)
	}
	return raw, nil
}
