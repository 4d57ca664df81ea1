package report

import (
	"fmt"

	"github.com/parquet-go/parquet-go"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/harness"
)

// ResultRow is one harness result as stored in Parquet.
type ResultRow struct {
	RunID     string `parquet:"run_id,snappy"`
	UnitID    string `parquet:"unit_id,snappy"`
	Name      string `parquet:"name,snappy"`
	Computed  int32  `parquet:"computed,snappy"`
	Reference int32  `parquet:"reference,snappy"`
	AbsDiff   int32  `parquet:"abs_diff,snappy"`
	// PctDiff is the absolute deviation as a percentage of reference.
	PctDiff  float64 `parquet:"pct_diff,snappy"`
	Bucket   string  `parquet:"bucket,snappy"`
	Override bool    `parquet:"override,snappy"`
	// ExclusionReason is set for excluded units only.
	ExclusionReason *string `parquet:"exclusion_reason,optional,snappy"`
	// DefensiveBR and OffensiveBR are set when breakdowns were kept.
	DefensiveBR *float64 `parquet:"defensive_br,optional,snappy"`
	OffensiveBR *float64 `parquet:"offensive_br,optional,snappy"`
}

// Rows converts results to Parquet rows.
func Rows(runID string, results []harness.Result) []ResultRow {
	rows := make([]ResultRow, 0, len(results))
	for _, r := range results {
		row := ResultRow{
			RunID:     runID,
			UnitID:    r.UnitID,
			Name:      r.Name,
			Computed:  int32(r.Computed),
			Reference: int32(r.Reference),
			AbsDiff:   int32(r.AbsDiff),
			PctDiff:   r.PctDiff,
			Bucket:    string(r.Bucket),
			Override:  r.Override,
		}
		if r.ExclusionReason != "" {
			reason := r.ExclusionReason
			row.ExclusionReason = &reason
		}
		if r.Breakdown != nil {
			def, off := r.Breakdown.DefensiveBR, r.Breakdown.OffensiveBR
			row.DefensiveBR = &def
			row.OffensiveBR = &off
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteParquet writes results to path.
func WriteParquet(path, runID string, results []harness.Result) error {
	if path == "" {
		return fmt.Errorf("parquet output needs a file path")
	}
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}

	w := parquet.NewGenericWriter[ResultRow](f)
	if _, err := w.Write(Rows(runID, results)); err != nil {
		_ = f.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close parquet file: %w", err)
	}
	return nil
}
