// Package cli defines the mekbv command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/config"
)

// All linker flags are set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ErrGatesFailed is returned by validate when a parity gate is not met.
var ErrGatesFailed = errors.New("parity gates failed")

// ErrAuditFindings is returned by audit when the tables are inconsistent.
var ErrAuditFindings = errors.New("audit found table inconsistencies")

// app holds the state shared by one command tree.
type app struct {
	v      *viper.Viper
	input  config.RawInput
	cfg    config.Config
	logger *slog.Logger
}

// NewRootCommand builds the command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "mekbv",
		Short: "Compute and validate BattleMech Battle Values.",
		Long: `mekbv computes the Battle Value of BattleMech variants and checks the
results against published reference values.`,
		Version:            version,
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableSuggestions: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to config file")
	pf.String("catalog", "", "Equipment catalog: a JSON/YAML file, or \"db\" to read --slic-db or --reference-dsn")
	pf.Bool("catalog-merge", false, "Layer the catalog source over the built-in table instead of replacing it")
	pf.String("slic-db", "", "Path to a slic SQLite export")
	pf.String("reference-dsn", "", "Postgres DSN of a slic database")
	pf.String("tables", "", "YAML file of overrides, exclusions, allow-list, gates and normalizer tables")
	pf.Int("workers", 0, "Number of concurrent workers (0 = number of CPUs)")
	pf.String("output", string(config.TableOut), "Output format: table or csv or json or parquet")
	pf.String("output-file", "", "Optional path to write output to")
	pf.Int("width", 0, "Terminal width override (0 = auto-detect)")
	pf.String("color", "yes", "Enable colored labels in output (yes/no)")
	pf.String("store-backend", string(config.NoneBackend), "Run store backend: sqlite or mysql or postgresql or none")
	pf.String("store-connect", "", "Run store connection string")
	pf.BoolP("verbose", "v", false, "Log debug output")
	mustBind(a.v.BindPFlags(pf))

	root.AddCommand(
		a.computeCmd(),
		a.resolveCmd(),
		a.validateCmd(),
		a.auditCmd(),
		a.fetchReferenceCmd(),
		a.migrateCmd(),
		a.mcpCmd(),
		a.serveCmd(),
		versionCmd(),
	)
	return root
}

// Execute runs the command tree.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// mustBind panics on a flag binding error, which only a programming
// mistake can cause.
func mustBind(err error) {
	if err != nil {
		panic(fmt.Sprintf("bind flags: %v", err))
	}
}

// initConfig points viper at the config file and environment.
func (a *app) initConfig() {
	if configFile := a.v.GetString("config"); configFile != "" {
		a.v.SetConfigFile(configFile)
	} else {
		a.v.SetConfigName(".mekbv")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		a.v.AddConfigPath("$HOME")
	}
	a.v.SetEnvPrefix("MEKBV")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
}

// setup reads the config file, unmarshals every source into the raw input
// and validates it.
func (a *app) setup(cmd *cobra.Command) error {
	a.initConfig()
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	if err := a.v.Unmarshal(&a.input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := config.Process(&a.cfg, &a.input); err != nil {
		return err
	}

	level := slog.LevelInfo
	if a.cfg.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if !a.cfg.UseColor {
		color.NoColor = true
	}
	return nil
}
