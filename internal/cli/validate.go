package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/db"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/harness"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/ingestion"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/report"
)

func (a *app) validateCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "validate <path>",
		Short: "Score a corpus against published Battle Values (fails on gate violations).",
		Long: `Compute the Battle Value of every unit under path and compare it with
published reference values. Units are bucketed by percent deviation and the
run fails with a non-zero exit code when the parity gates are not met.

Reference values come from the first configured source: --reference,
--slic-db, --reference-dsn, or the run store.

Examples:
  mekbv validate data/mechs --reference reference.json
  mekbv validate data/mechs --slic-db slic.db --tables tables.yaml --output csv --output-file parity.csv
  mekbv validate data/mechs --reference reference.json --store-backend sqlite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := a.loadEngine(ctx)
			if err != nil {
				return err
			}

			store, err := db.NewRunStore(a.cfg.StoreBackend, a.cfg.StoreConnect)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			reference, source, err := a.loadReference(ctx, store)
			if err != nil {
				return err
			}
			a.logger.Info("reference loaded", "source", source, "units", len(reference))

			units, failed, err := ingestion.Load(ctx, args[0])
			if err != nil {
				return err
			}
			for _, f := range failed {
				a.logger.Warn("skipping unit file", "path", f.Path, "err", f.Err)
			}
			a.logger.Info("units loaded", "units", len(units), "failed", len(failed))

			gates := a.cfg.Gates
			if e.tables.Gates != nil && a.input.GateWithin1 == 0 && a.input.GateWithin5 == 0 {
				gates = *e.tables.Gates
			}

			h := harness.New(harness.Options{
				Workers:        a.cfg.Workers,
				Gates:          gates,
				Exclusions:     e.tables.Exclusions,
				Calculator:     e.calc,
				Normalizer:     e.normalizer,
				KeepBreakdowns: a.cfg.KeepBreakdowns,
				Logger:         a.logger,
			})

			started := time.Now()
			rep, err := h.Validate(ctx, units, reference, e.tables.Overrides)
			if err != nil {
				return err
			}
			finished := time.Now()

			run, err := db.NewRun(started, finished, rep.Summary, map[string]any{
				"path":      args[0],
				"reference": source,
				"catalog":   a.cfg.Catalog,
				"tables":    a.cfg.Tables,
				"gates":     gates,
			})
			if err != nil {
				return err
			}
			if err := store.SaveRun(ctx, run, rep.Results); err != nil {
				return err
			}
			a.logger.Debug("run saved", "run_id", run.ID, "backend", store.Backend())

			if err := report.Write(rep, report.Options{
				Format:     a.cfg.Output,
				OutputFile: a.cfg.OutputFile,
				Width:      a.cfg.Width,
				All:        all,
				Duration:   finished.Sub(started),
				Workers:    a.cfg.Workers,
				RunID:      run.ID.String(),
			}); err != nil {
				return err
			}

			if a.cfg.SheetURL != "" {
				creds, err := readCredentials(a.cfg.SheetCreds)
				if err != nil {
					return err
				}
				sheet, err := report.NewSheetsClient(ctx, creds, a.cfg.SheetURL, "")
				if err != nil {
					return err
				}
				if err := sheet.Upload(ctx, rep); err != nil {
					return err
				}
				a.logger.Info("uploaded report to sheet", "rows", len(rep.Results))
			}

			if !rep.Summary.Passed {
				return fmt.Errorf("%w: within 1%% %.1f%% (gate %.1f%%), within 5%% %.1f%% (gate %.1f%%)",
					ErrGatesFailed,
					rep.Summary.Within1Rate*100, gates.Within1*100,
					rep.Summary.Within5Rate*100, gates.Within5*100)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.String("reference", "", "JSON/YAML file mapping unit ID to published BV")
	f.Float64("gate-within-1", 0, "Minimum share of units within 1% (default 0.95)")
	f.Float64("gate-within-5", 0, "Minimum share of units within 5% (default 0.99)")
	f.String("sheet-url", "", "Google Sheet to upload the report to")
	f.String("sheet-credentials", "", "Service account key file for --sheet-url")
	f.Bool("keep-breakdowns", false, "Attach each unit's breakdown to JSON output")
	f.BoolVar(&all, "all", false, "Include exact matches and exclusions in table output")
	mustBind(a.v.BindPFlags(f))
	return cmd
}
