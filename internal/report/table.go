package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/harness"
)

// maxNameWidth sizes the unit column from the terminal width.
func maxNameWidth(override int) int {
	width := override
	if width <= 0 {
		detected, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detected <= 0 {
			width = 80
		} else {
			width = detected
		}
	}
	// Computed, Reference, Diff, Pct, Bucket and Note with borders.
	available := width - 70
	switch {
	case available < 15:
		return 15
	case available > 50:
		return 50
	}
	return available
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

// WriteTable writes deviating results worst first, then the summary.
func WriteTable(w io.Writer, rep *harness.Report, opts Options) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Unit", "Computed", "Reference", "Diff", "Pct", "Bucket", "Note"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := maxNameWidth(opts.Width)
	var data [][]string
	for _, r := range byDeviation(rep.Results) {
		if !opts.All && (r.Bucket == harness.BucketExact || r.Bucket == harness.BucketExcluded) {
			continue
		}
		note := r.ExclusionReason
		if r.Override {
			note = "override"
		}
		row := []string{truncate(r.Name, nameWidth), "", strconv.Itoa(r.Reference), "", "", ColorBucket(r.Bucket), note}
		if r.Bucket != harness.BucketExcluded {
			row[1] = strconv.Itoa(r.Computed)
			row[3] = fmt.Sprintf("%+d", r.Computed-r.Reference)
			row[4] = fmt.Sprintf("%.2f%%", r.PctDiff)
		}
		data = append(data, row)
	}

	if len(data) > 0 {
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	if err := WriteSummary(w, rep.Summary); err != nil {
		return err
	}
	if opts.Duration > 0 {
		if _, err := fmt.Fprintf(w, "Validation completed in %v with %d workers.\n", opts.Duration, opts.Workers); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes bucket counts, cumulative shares, exclusion reasons
// and the gate verdict.
func WriteSummary(w io.Writer, s harness.Summary) error {
	p := &errPrinter{w: w}
	scored := s.Buckets.Total()
	p.printf("\nEvaluated %d of %d units (%d excluded)\n", s.Evaluated, s.Total, s.Excluded)
	for _, b := range harness.Buckets {
		n := s.Buckets.Get(b)
		p.printf("%-12s %5d (%5.1f%%)\n", string(b)+":", n, pct(n, scored))
	}
	p.printf("\nWithin 1%%:   %5d (%5.1f%%)\n", s.Cumulative.Within1, pct(s.Cumulative.Within1, scored))
	p.printf("Within 5%%:   %5d (%5.1f%%)\n", s.Cumulative.Within5, pct(s.Cumulative.Within5, scored))
	p.printf("Within 10%%:  %5d (%5.1f%%)\n", s.Cumulative.Within10, pct(s.Cumulative.Within10, scored))

	if n := s.Overrides.Total(); n > 0 {
		p.printf("\nOverrides:   %5d (exact %d, within 1%% %d, within 5%% %d)\n",
			n, s.Overrides.Exact, s.OverridesCumulative.Within1, s.OverridesCumulative.Within5)
	}

	if len(s.ExcludedBy) > 0 {
		reasons := make([]string, 0, len(s.ExcludedBy))
		for r := range s.ExcludedBy {
			reasons = append(reasons, r)
		}
		sort.Strings(reasons)
		p.printf("\nExcluded:\n")
		for _, r := range reasons {
			p.printf("  %-34s %d\n", r, s.ExcludedBy[r])
		}
	}

	verdict := color.New(color.FgRed, color.Bold).Sprint("FAIL")
	if s.Passed {
		verdict = color.New(color.FgGreen, color.Bold).Sprint("PASS")
	}
	p.printf("\nGates: within 1%% %.1f%% (need %.1f%%), within 5%% %.1f%% (need %.1f%%): %s\n",
		s.Within1Rate*100, s.Gates.Within1*100, s.Within5Rate*100, s.Gates.Within5*100, verdict)
	return p.err
}

// WriteBreakdown writes one computation phase by phase.
func WriteBreakdown(w io.Writer, b *bvcalc.Breakdown) error {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

	phases := tablewriter.NewWriter(w)
	phases.Header([]string{"Phase", "Value"})
	phases.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	rows := [][]string{
		{"Structure", f(b.StructureBV)},
		{"Armor", f(b.ArmorBV)},
		{"Gyro", f(b.GyroBV)},
		{"Defensive equipment", f(b.DefensiveEquipmentBV)},
		{"Explosive penalty", f(-b.ExplosivePenalty)},
		{"Implicit CASE", b.ImplicitCASE.String()},
		{"Run MP / TMM", fmt.Sprintf("%d / %d", b.RunMP, b.TMM)},
		{"Defensive factor", f(b.DefensiveFactor)},
		{"Defensive BR", f(b.DefensiveBR)},
		{"Heat efficiency", f(b.HeatEfficiency)},
		{"Weapons", f(b.WeaponBV)},
		{"Ammo", f(b.AmmoBV)},
		{"Physical", f(b.PhysicalBV)},
		{"Weight bonus", f(b.WeightBonusBV)},
		{"Speed factor", f(b.SpeedFactor)},
		{"Offensive BR", f(b.OffensiveBR)},
		{"Cockpit modifier", f(b.CockpitModifier)},
		{"Raw total", f(b.RawTotal)},
		{"Battle Value", strconv.Itoa(b.Total)},
	}
	if err := phases.Bulk(rows); err != nil {
		return err
	}
	if err := phases.Render(); err != nil {
		return err
	}

	if len(b.Weapons) > 0 {
		weapons := tablewriter.NewWriter(w)
		weapons.Header([]string{"Weapon", "Loc", "Base", "Modified", "Heat", "BV"})
		weapons.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignRight
		})
		var data [][]string
		for _, wl := range b.Weapons {
			loc := string(wl.Location)
			if wl.Rear {
				loc += " (R)"
			}
			bv := f(wl.BV)
			if wl.Half {
				bv += " (half)"
			}
			data = append(data, []string{wl.ID, loc, f(wl.BaseBV), f(wl.ModifiedBV), f(wl.Heat), bv})
		}
		if err := weapons.Bulk(data); err != nil {
			return err
		}
		if err := weapons.Render(); err != nil {
			return err
		}
	}

	p := &errPrinter{w: w}
	if len(b.Rules) > 0 {
		p.printf("Rules: %v\n", b.Rules)
	}
	for _, u := range b.Unscored {
		p.printf("Unscored: %s (%s)\n", u.Label, u.Location)
	}
	return p.err
}

type errPrinter struct {
	w   io.Writer
	err error
}

func (p *errPrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
