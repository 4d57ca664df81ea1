package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/bvcalc"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/config"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/critscan"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/ingestion"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/models"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/normalize"
	"github.com/SwiggitySwerve/MekStation-sub003/internal/report"
)

func (a *app) computeCmd() *cobra.Command {
	var unitID string
	cmd := &cobra.Command{
		Use:   "compute <path>",
		Short: "Compute the Battle Value of one unit and print its breakdown.",
		Long: `Compute the Battle Value of a unit read from a .mtf file or a JSON/YAML
unit file and print every phase of the calculation.

Examples:
  mekbv compute "data/mechs/Atlas AS7-D.mtf"
  mekbv compute units.yaml --unit "Locust LCT-1V" --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			u, err := pickUnit(cmd, args[0], unitID)
			if err != nil {
				return err
			}
			b, err := computeUnit(e, u)
			if err != nil {
				return err
			}
			if a.cfg.Output == config.JSONOut {
				return report.WriteJSON(cmd.OutOrStdout(), b)
			}
			return report.WriteBreakdown(cmd.OutOrStdout(), &b)
		},
	}
	cmd.Flags().StringVar(&unitID, "unit", "", "Unit ID to pick when the file holds several units")
	return cmd
}

func computeUnit(e *engine, u models.Unit) (bvcalc.Breakdown, error) {
	scan := critscan.Scan(u, e.normalizer)
	return e.calc.Compute(u, scan)
}

func pickUnit(cmd *cobra.Command, path, id string) (models.Unit, error) {
	units, failed, err := ingestion.Load(cmd.Context(), path)
	if err != nil {
		return models.Unit{}, err
	}
	if len(failed) > 0 {
		return models.Unit{}, failed[0]
	}
	if id != "" {
		for _, u := range units {
			if u.ID == id {
				return u, nil
			}
		}
		return models.Unit{}, fmt.Errorf("unit %q not found in %s", id, path)
	}
	if len(units) != 1 {
		return models.Unit{}, fmt.Errorf("%s holds %d units; pick one with --unit", path, len(units))
	}
	return units[0], nil
}

func (a *app) resolveCmd() *cobra.Command {
	var techBase, location string
	cmd := &cobra.Command{
		Use:   "resolve <name>...",
		Short: "Resolve equipment names to canonical catalog IDs.",
		Long: `Run each name through the normalizer and print the ID it resolves to and
the stage that matched.

Examples:
  mekbv resolve "ER Medium Laser" --tech-base Clan
  mekbv resolve "Medium Laser (R)" --location RT`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.loadEngine(cmd.Context())
			if err != nil {
				return err
			}
			ctx := normalize.Context{TechBase: models.ParseTechBase(techBase)}
			if location != "" {
				loc, ok := models.ParseLocation(location)
				if !ok {
					return fmt.Errorf("%w: unknown location %q", config.ErrInvalid, location)
				}
				ctx.Location = loc
			}

			out := cmd.OutOrStdout()
			var failed int
			for _, name := range args {
				r, err := e.normalizer.Resolve(name, ctx)
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s\t-\t%v\n", name, err)
					continue
				}
				var flags string
				if r.Rear {
					flags += " rear"
				}
				if r.Half {
					flags += " half"
				}
				fmt.Fprintf(out, "%s\t%s\t%s%s\n", name, r.ID, r.Stage, flags)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d names did not resolve: %w", failed, len(args), normalize.ErrNotFound)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&techBase, "tech-base", "IS", "Tech base of the unit the names came from: IS or Clan or Mixed")
	cmd.Flags().StringVar(&location, "location", "", "Location code the names were found in, such as RT")
	return cmd
}
