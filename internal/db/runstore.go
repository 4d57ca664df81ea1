package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/config"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/harness"
)

// Run is one persisted validation run.
type Run struct {
	ID          uuid.UUID
	StartedAt   time.Time
	FinishedAt  time.Time
	Total       int
	Evaluated   int
	Excluded    int
	Within1Rate float64
	Within5Rate float64
	Passed      bool
	// Params is the JSON-encoded configuration of the run.
	Params string
}

// NewRun builds a Run with a fresh ID from a harness summary.
func NewRun(started, finished time.Time, s harness.Summary, params map[string]any) (Run, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return Run{}, fmt.Errorf("marshal run params: %w", err)
	}
	return Run{
		ID:          uuid.New(),
		StartedAt:   started.UTC(),
		FinishedAt:  finished.UTC(),
		Total:       s.Total,
		Evaluated:   s.Evaluated,
		Excluded:    s.Excluded,
		Within1Rate: s.Within1Rate,
		Within5Rate: s.Within5Rate,
		Passed:      s.Passed,
		Params:      string(raw),
	}, nil
}

// RunStore persists runs, per-unit results and reference values. A store
// for the none backend accepts writes and discards them.
type RunStore struct {
	db      *sql.DB
	backend config.Backend
}

// NewRunStore opens the store for backend and migrates it to the latest
// schema.
func NewRunStore(backend config.Backend, connStr string) (*RunStore, error) {
	if backend == config.NoneBackend {
		return &RunStore{backend: backend}, nil
	}
	db, err := open(backend, connStr)
	if err != nil {
		return nil, err
	}
	if _, err := migrateDB(db, backend, -1); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &RunStore{db: db, backend: backend}, nil
}

// Backend returns the store's backend.
func (s *RunStore) Backend() config.Backend { return s.backend }

// Close releases the connection.
func (s *RunStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// rebind rewrites ? placeholders as $n for PostgreSQL.
func (s *RunStore) rebind(query string) string {
	if s.backend != config.PostgreSQLBackend {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatTime(t time.Time) string { return t.UTC().Format(time.RFC3339Nano) }

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SaveRun writes run and its results in one transaction.
func (s *RunStore) SaveRun(ctx context.Context, run Run, results []harness.Result) error {
	if s.db == nil {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, s.rebind(`INSERT INTO mekbv_runs
		(run_id, started_at, finished_at, total, evaluated, excluded, within_1_rate, within_5_rate, passed, params)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		run.ID.String(), formatTime(run.StartedAt), formatTime(run.FinishedAt),
		run.Total, run.Evaluated, run.Excluded, run.Within1Rate, run.Within5Rate,
		boolInt(run.Passed), run.Params)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, s.rebind(`INSERT INTO mekbv_results
		(run_id, unit_id, name, computed, reference_bv, is_override, abs_diff, pct_diff, bucket, exclusion_reason)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("prepare result insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.ExecContext(ctx, run.ID.String(), r.UnitID, r.Name, r.Computed, r.Reference,
			boolInt(r.Override), r.AbsDiff, r.PctDiff, string(r.Bucket), r.ExclusionReason); err != nil {
			return fmt.Errorf("insert result %s: %w", r.UnitID, err)
		}
	}
	return tx.Commit()
}

// Runs lists runs, most recent first. limit <= 0 means all.
func (s *RunStore) Runs(ctx context.Context, limit int) ([]Run, error) {
	if s.db == nil {
		return nil, nil
	}
	query := `SELECT run_id, started_at, finished_at, total, evaluated, excluded,
		within_1_rate, within_5_rate, passed, COALESCE(params, '')
		FROM mekbv_runs ORDER BY started_at DESC`
	if limit > 0 {
		query += " LIMIT " + strconv.Itoa(limit)
	}
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var id, started, finished string
		var passed int
		if err := rows.Scan(&id, &started, &finished, &r.Total, &r.Evaluated, &r.Excluded,
			&r.Within1Rate, &r.Within5Rate, &passed, &r.Params); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse run id %q: %w", id, err)
		}
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at for run %s: %w", id, err)
		}
		if r.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("parse finished_at for run %s: %w", id, err)
		}
		r.Passed = passed != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the per-unit results of a run sorted by unit ID.
// Breakdowns are not persisted.
func (s *RunStore) Results(ctx context.Context, runID uuid.UUID) ([]harness.Result, error) {
	if s.db == nil {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, s.rebind(`SELECT unit_id, name, computed, reference_bv, is_override,
		abs_diff, pct_diff, bucket, COALESCE(exclusion_reason, '')
		FROM mekbv_results WHERE run_id = ? ORDER BY unit_id`), runID.String())
	if err != nil {
		return nil, fmt.Errorf("query results for run %s: %w", runID, err)
	}
	defer rows.Close()

	var results []harness.Result
	for rows.Next() {
		var r harness.Result
		var override int
		var bucket string
		if err := rows.Scan(&r.UnitID, &r.Name, &r.Computed, &r.Reference, &override,
			&r.AbsDiff, &r.PctDiff, &bucket, &r.ExclusionReason); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Override = override != 0
		r.Bucket = harness.Bucket(bucket)
		results = append(results, r)
	}
	return results, rows.Err()
}

// SaveReference replaces the stored reference values for the given units.
func (s *RunStore) SaveReference(ctx context.Context, ref map[string]int, source string, at time.Time) error {
	if s.db == nil {
		return nil
	}
	ids := make([]string, 0, len(ref))
	for id := range ref {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	del, err := tx.PrepareContext(ctx, s.rebind(`DELETE FROM mekbv_reference WHERE unit_id = ?`))
	if err != nil {
		return fmt.Errorf("prepare reference delete: %w", err)
	}
	defer del.Close()
	ins, err := tx.PrepareContext(ctx, s.rebind(`INSERT INTO mekbv_reference (unit_id, battle_value, source, updated_at) VALUES (?, ?, ?, ?)`))
	if err != nil {
		return fmt.Errorf("prepare reference insert: %w", err)
	}
	defer ins.Close()

	stamp := formatTime(at)
	for _, id := range ids {
		if _, err := del.ExecContext(ctx, id); err != nil {
			return fmt.Errorf("delete reference %s: %w", id, err)
		}
		if _, err := ins.ExecContext(ctx, id, ref[id], source, stamp); err != nil {
			return fmt.Errorf("insert reference %s: %w", id, err)
		}
	}
	return tx.Commit()
}

// Reference returns every stored reference value.
func (s *RunStore) Reference(ctx context.Context) (map[string]int, error) {
	if s.db == nil {
		return map[string]int{}, nil
	}
	rows, err := s.db.QueryContext(ctx, `SELECT unit_id, battle_value FROM mekbv_reference`)
	if err != nil {
		return nil, fmt.Errorf("query reference: %w", err)
	}
	defer rows.Close()
	return scanReference(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanReference(rows rowScanner) (map[string]int, error) {
	out := map[string]int{}
	for rows.Next() {
		var id string
		var bv int
		if err := rows.Scan(&id, &bv); err != nil {
			return nil, fmt.Errorf("scan reference: %w", err)
		}
		out[id] = bv
	}
	return out, rows.Err()
}
