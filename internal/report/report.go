// Package report renders harness reports and BV breakdowns as tables,
// CSV, JSON, Parquet and Google Sheets.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/config"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/harness"
)

// Options controls report rendering.
type Options struct {
	Format     config.OutputFormat
	OutputFile string
	// Width overrides the detected terminal width for table output.
	Width int
	// All includes exact matches and exclusions in table output.
	All      bool
	Duration time.Duration
	Workers  int
	RunID    string
}

// Write renders rep in the configured format.
func Write(rep *harness.Report, opts Options) error {
	switch opts.Format {
	case config.JSONOut:
		return writeWithFile(opts.OutputFile, func(w io.Writer) error {
			return WriteJSON(w, rep)
		}, "Wrote JSON")
	case config.CSVOut:
		return writeWithFile(opts.OutputFile, func(w io.Writer) error {
			return WriteCSV(w, rep)
		}, "Wrote CSV")
	case config.ParquetOut:
		if err := WriteParquet(opts.OutputFile, opts.RunID, rep.Results); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote Parquet to %s\n", opts.OutputFile)
		return nil
	default:
		return writeWithFile(opts.OutputFile, func(w io.Writer) error {
			return WriteTable(w, rep, opts)
		}, "Wrote table")
	}
}

// createFile opens an output file for writing.
var createFile = func(name string) (io.WriteCloser, error) { return os.Create(name) }

// writeWithFile opens outputFile (stdout when empty), runs writer and
// closes the file. A failed close fails the write.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	if outputFile == "" {
		return writer(os.Stdout)
	}
	f, err := createFile(outputFile)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputFile, err)
	}
	if err := writer(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outputFile, err)
	}
	fmt.Fprintf(os.Stderr, "%s to %s\n", successMsg, outputFile)
	return nil
}

// WriteJSON writes v indented.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

var (
	exactColor    = color.New(color.FgGreen, color.Bold)
	within1Color  = color.New(color.FgGreen)
	within5Color  = color.New(color.FgYellow)
	within10Color = color.New(color.FgRed)
	over10Color   = color.New(color.FgRed, color.Bold)
	excludedColor = color.New(color.FgHiBlack)
)

// ColorBucket returns the bucket label coloured for terminal output.
// Colour is suppressed when color.NoColor is set.
func ColorBucket(b harness.Bucket) string {
	text := string(b)
	switch b {
	case harness.BucketExact:
		return exactColor.Sprint(text)
	case harness.BucketWithin1:
		return within1Color.Sprint(text)
	case harness.BucketWithin5:
		return within5Color.Sprint(text)
	case harness.BucketWithin10:
		return within10Color.Sprint(text)
	case harness.BucketOver10:
		return over10Color.Sprint(text)
	}
	return excludedColor.Sprint(text)
}

// byDeviation returns a copy of results ordered worst first: absolute
// difference descending, then unit ID. Exclusions sort last.
func byDeviation(results []harness.Result) []harness.Result {
	out := append([]harness.Result(nil), results...)
	sort.SliceStable(out, func(i, j int) bool {
		ei, ej := out[i].Bucket == harness.BucketExcluded, out[j].Bucket == harness.BucketExcluded
		if ei != ej {
			return ej
		}
		if out[i].AbsDiff != out[j].AbsDiff {
			return out[i].AbsDiff > out[j].AbsDiff
		}
		return out[i].UnitID < out[j].UnitID
	})
	return out
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
