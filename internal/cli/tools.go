package cli

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/config"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/db"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/ingestion"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mcpserver"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/mul"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/report"
)

func (a *app) auditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check the normalizer tables against the catalog (fails on findings).",
		Long: `Report aliases and name rules that point at unknown IDs, names that
collide within a tech scope, scoped rules that cross tech bases, and
fallback entries the catalog already carries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			findings := normalize.Audit(e.catalog, normalize.DefaultTables().Merge(e.tables.Normalizer))
			out := cmd.OutOrStdout()
			if a.cfg.Output == config.JSONOut {
				if err := report.WriteJSON(out, findings); err != nil {
					return err
				}
			} else {
				for _, f := range findings {
					fmt.Fprintf(out, "%-18s %s: %s\n", f.Kind, f.Key, f.Detail)
				}
			}
			if len(findings) > 0 {
				return fmt.Errorf("%w: %d findings", ErrAuditFindings, len(findings))
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "No findings.")
			return nil
		},
	}
}

func (a *app) fetchReferenceCmd() *cobra.Command {
	var outFile string
	var updateDSN bool
	cmd := &cobra.Command{
		Use:   "fetch-reference <path>",
		Short: "Fetch published Battle Values from the Master Unit List.",
		Long: `Query the Master Unit List once per chassis found under path and keep the
published BV of every variant present in the corpus. Values are written to
--out, saved to the run store, and written to the slic Postgres database
when --update-dsn is set.

Examples:
  mekbv fetch-reference data/mechs --out reference.json
  mekbv fetch-reference data/mechs --store-backend sqlite`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			units, failed, err := ingestion.Load(ctx, args[0])
			if err != nil {
				return err
			}
			for _, f := range failed {
				a.logger.Warn("skipping unit file", "path", f.Path, "err", f.Err)
			}

			want := make(map[string]bool, len(units))
			chassis := make([]string, 0, len(units))
			for _, u := range units {
				want[u.ID] = true
				chassis = append(chassis, u.Chassis)
			}

			client := mul.New(a.cfg.MULURL)
			client.Logger = a.logger
			ref, st, err := client.Fetch(ctx, chassis, want, func(done, total int) {
				if done%50 == 0 || done == total {
					a.logger.Info("fetch progress", "done", done, "total", total)
				}
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Queried %d chassis: %d variants matched, %d errors\n", st.Queried, st.Matched, st.Errors)

			if outFile != "" {
				if err := writeReference(outFile, ref); err != nil {
					return err
				}
			}

			store, err := db.NewRunStore(a.cfg.StoreBackend, a.cfg.StoreConnect)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()
			if err := store.SaveReference(ctx, ref, "mul", time.Now()); err != nil {
				return err
			}

			if updateDSN {
				if a.cfg.ReferenceDSN == "" {
					return fmt.Errorf("%w: --update-dsn needs --reference-dsn", config.ErrInvalid)
				}
				pg, err := db.Connect(ctx, a.cfg.ReferenceDSN)
				if err != nil {
					return err
				}
				defer pg.Close()
				n, err := pg.UpdateReference(ctx, ref)
				if err != nil {
					return err
				}
				a.logger.Info("updated variants", "rows", n)
			}

			if outFile == "" && store.Backend() == config.NoneBackend && !updateDSN {
				return report.WriteJSON(cmd.OutOrStdout(), sortedReference(ref))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outFile, "out", "", "Write the reference map to this JSON file")
	cmd.Flags().BoolVar(&updateDSN, "update-dsn", false, "Write values onto variants in --reference-dsn")
	cmd.Flags().String("mul-url", config.DefaultMULURL, "Master Unit List base URL")
	mustBind(a.v.BindPFlags(cmd.Flags()))
	return cmd
}

// referenceEntry keeps JSON output ordered by unit ID.
type referenceEntry struct {
	UnitID      string `json:"unit_id"`
	BattleValue int    `json:"battle_value"`
}

func sortedReference(ref map[string]int) []referenceEntry {
	out := make([]referenceEntry, 0, len(ref))
	for id, bv := range ref {
		out = append(out, referenceEntry{UnitID: id, BattleValue: bv})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UnitID < out[j].UnitID })
	return out
}

func writeReference(path string, ref map[string]int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := report.WriteJSON(f, ref); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func (a *app) migrateCmd() *cobra.Command {
	var target int
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the run store schema.",
		Long: `Apply the embedded run store migrations.

Examples:
  mekbv migrate --store-backend sqlite
  mekbv migrate --store-backend postgresql --store-connect "host=localhost dbname=mekbv" --target-version 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := db.Migrate(a.cfg.StoreBackend, a.cfg.StoreConnect, target)
			if err != nil {
				return err
			}
			if !st.Changed {
				cmd.Printf("Schema already at version %d\n", st.To)
				return nil
			}
			cmd.Printf("Migrated %s from version %d to %d\n", a.cfg.StoreBackend, st.From, st.To)
			return nil
		},
	}
	cmd.Flags().IntVar(&target, "target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	return cmd
}

func (a *app) mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the mekbv MCP server",
		Long:  `Launch an MCP server over stdio exposing compute_bv and resolve_equipment.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			return mcpserver.Serve(cmd.Context(), e.normalizer, e.calc, version)
		},
	}
}

// versionCmd shows the verbose version for diagnostic purposes.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mekbv.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("mekbv CLI\n")
			cmd.Printf("  Version: %s\n", version)
			cmd.Printf("  Commit:  %s\n", commit)
			cmd.Printf("  Built:   %s\n", date)
			cmd.Printf("  Runtime: %s\n", runtime.Version())
		},
	}
}
