package db

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/catalog"
)

// Store reads equipment and reference BV from a slic Postgres database.
type Store struct {
	Pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}

// Connect opens a pool for dsn and pings it.
func Connect(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return NewStore(pool), nil
}

func (s *Store) Close() { s.Pool.Close() }

// LoadCatalog builds a catalog from the equipment table.
func (s *Store) LoadCatalog(ctx context.Context, merge bool) (*catalog.Catalog, error) {
	rows, err := s.Pool.Query(ctx, equipmentQuery)
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

// LoadReference returns published BV keyed by "Chassis Model".
func (s *Store) LoadReference(ctx context.Context) (map[string]int, error) {
	rows, err := s.Pool.Query(ctx, referenceQuery)
	if err != nil {
		return nil, fmt.Errorf("query variants: %w", err)
	}
	defer rows.Close()
	return scanVariants(rows)
}

// UpdateReference writes battle values onto matching variants in one
// transaction and returns how many rows changed.
func (s *Store) UpdateReference(ctx context.Context, values map[string]int) (int64, error) {
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var updated int64
	err := pgx.BeginFunc(ctx, s.Pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, id := range ids {
			batch.Queue(`UPDATE variants v SET battle_value = $1
				FROM chassis c
				WHERE v.chassis_id = c.id AND c.name || ' ' || v.model_code = $2`, values[id], id)
		}
		br := tx.SendBatch(ctx, batch)
		for _, id := range ids {
			tag, err := br.Exec()
			if err != nil {
				_ = br.Close()
				return fmt.Errorf("update %s: %w", id, err)
			}
			updated += tag.RowsAffected()
		}
		return br.Close()
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}
