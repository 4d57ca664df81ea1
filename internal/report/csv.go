package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/harness"
)

var csvHeader = []string{
	"Unit ID", "Name", "Published BV", "Calculated BV", "Diff", "Abs Diff", "Pct Diff",
	"Bucket", "Override", "Exclusion Reason", "Defensive BR", "Offensive BR",
}

// WriteCSV writes one row per result, worst deviation first.
func WriteCSV(w io.Writer, rep *harness.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, r := range byDeviation(rep.Results) {
		if err := cw.Write(csvRow(r)); err != nil {
			return fmt.Errorf("write CSV row %s: %w", r.UnitID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(r harness.Result) []string {
	row := []string{
		r.UnitID,
		r.Name,
		strconv.Itoa(r.Reference),
		"", "", "", "",
		string(r.Bucket),
		strconv.FormatBool(r.Override),
		r.ExclusionReason,
		"", "",
	}
	if r.Bucket != harness.BucketExcluded {
		row[3] = strconv.Itoa(r.Computed)
		row[4] = strconv.Itoa(r.Computed - r.Reference)
		row[5] = strconv.Itoa(r.AbsDiff)
		row[6] = fmt.Sprintf("%.1f", r.PctDiff)
	}
	if r.Breakdown != nil {
		row[10] = fmt.Sprintf("%.1f", r.Breakdown.DefensiveBR)
		row[11] = fmt.Sprintf("%.1f", r.Breakdown.OffensiveBR)
	}
	return row
}
