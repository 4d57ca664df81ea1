// Package config holds the validated runtime configuration and the YAML
// reference tables used by the validation harness.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/SwiggitySwerve/MekStation-sub003/internal/harness"
)

// ErrInvalid is returned for configuration that fails validation.
var ErrInvalid = errors.New("invalid configuration")

// Backend is a database backend for the run store.
type Backend string

const (
	SQLiteBackend     Backend = "sqlite" // default
	MySQLBackend      Backend = "mysql"
	PostgreSQLBackend Backend = "postgresql"
	NoneBackend       Backend = "none"
)

// ValidBackends lists all valid run store backends.
var ValidBackends = map[Backend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// OutputFormat selects how a harness report is written.
type OutputFormat string

const (
	TableOut   OutputFormat = "table"
	CSVOut     OutputFormat = "csv"
	JSONOut    OutputFormat = "json"
	ParquetOut OutputFormat = "parquet"
)

var validOutputs = map[OutputFormat]struct{}{
	TableOut: {}, CSVOut: {}, JSONOut: {}, ParquetOut: {},
}

// Defaults.
const (
	DefaultStorePath = "mekbv.db"
	DefaultMULURL    = "https://masterunitlist.azurewebsites.net"
)

// RawInput holds unvalidated values from file, env and flags. Viper
// unmarshals into it.
type RawInput struct {
	Catalog        string  `mapstructure:"catalog"`
	CatalogMerge   bool    `mapstructure:"catalog-merge"`
	SlicDB         string  `mapstructure:"slic-db"`
	ReferenceDSN   string  `mapstructure:"reference-dsn"`
	Reference      string  `mapstructure:"reference"`
	Tables         string  `mapstructure:"tables"`
	Workers        int     `mapstructure:"workers"`
	GateWithin1    float64 `mapstructure:"gate-within-1"`
	GateWithin5    float64 `mapstructure:"gate-within-5"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Width          int     `mapstructure:"width"`
	Color          string  `mapstructure:"color"`
	StoreBackend   string  `mapstructure:"store-backend"`
	StoreConnect   string  `mapstructure:"store-connect"`
	SheetURL       string  `mapstructure:"sheet-url"`
	SheetCreds     string  `mapstructure:"sheet-credentials"`
	MULURL         string  `mapstructure:"mul-url"`
	KeepBreakdowns bool    `mapstructure:"keep-breakdowns"`
	Verbose        bool    `mapstructure:"verbose"`
}

// Config is the validated configuration.
type Config struct {
	Catalog        string
	CatalogMerge   bool
	SlicDB         string
	ReferenceDSN   string
	Reference      string
	Tables         string
	Workers        int
	Gates          harness.Gates
	Output         OutputFormat
	OutputFile     string
	Width          int
	UseColor       bool
	StoreBackend   Backend
	StoreConnect   string
	SheetURL       string
	SheetCreds     string
	MULURL         string
	KeepBreakdowns bool
	Verbose        bool
}

// Process validates input and fills cfg.
func Process(cfg *Config, input *RawInput) error {
	if input.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, input.Workers)
	}
	cfg.Workers = input.Workers
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	cfg.Gates = harness.DefaultGates
	if input.GateWithin1 != 0 {
		cfg.Gates.Within1 = input.GateWithin1
	}
	if input.GateWithin5 != 0 {
		cfg.Gates.Within5 = input.GateWithin5
	}
	if err := ValidateGates(cfg.Gates); err != nil {
		return err
	}

	cfg.Output = OutputFormat(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = TableOut
	}
	if _, ok := validOutputs[cfg.Output]; !ok {
		return fmt.Errorf("%w: output %q must be table, csv, json or parquet", ErrInvalid, input.Output)
	}
	if cfg.Output == ParquetOut && input.OutputFile == "" {
		return fmt.Errorf("%w: parquet output requires --output-file", ErrInvalid)
	}

	cfg.StoreBackend = Backend(strings.ToLower(input.StoreBackend))
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = NoneBackend
	}
	if _, ok := ValidBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("%w: store backend %q must be sqlite, mysql, postgresql or none", ErrInvalid, input.StoreBackend)
	}
	cfg.StoreConnect = input.StoreConnect
	if cfg.StoreBackend == SQLiteBackend && cfg.StoreConnect == "" {
		cfg.StoreConnect = DefaultStorePath
	}
	if err := ValidateConnectionString(cfg.StoreBackend, cfg.StoreConnect); err != nil {
		return err
	}

	if (input.SheetURL == "") != (input.SheetCreds == "") {
		return fmt.Errorf("%w: sheet-url and sheet-credentials must be set together", ErrInvalid)
	}

	switch strings.ToLower(input.Color) {
	case "", "yes", "true", "auto":
		cfg.UseColor = true
	case "no", "false", "never":
		cfg.UseColor = false
	default:
		return fmt.Errorf("%w: color %q must be yes or no", ErrInvalid, input.Color)
	}

	cfg.MULURL = input.MULURL
	if cfg.MULURL == "" {
		cfg.MULURL = DefaultMULURL
	}

	cfg.Catalog = input.Catalog
	cfg.CatalogMerge = input.CatalogMerge
	cfg.SlicDB = input.SlicDB
	cfg.ReferenceDSN = input.ReferenceDSN
	cfg.Reference = input.Reference
	cfg.Tables = input.Tables
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.SheetURL = input.SheetURL
	cfg.SheetCreds = input.SheetCreds
	cfg.KeepBreakdowns = input.KeepBreakdowns
	cfg.Verbose = input.Verbose
	return nil
}

// ValidateGates checks that both gate shares lie in (0, 1].
func ValidateGates(g harness.Gates) error {
	for name, v := range map[string]float64{"within-1": g.Within1, "within-5": g.Within5} {
		if v <= 0 || v > 1 {
			return fmt.Errorf("%w: gate %s must be in (0, 1], got %v", ErrInvalid, name, v)
		}
	}
	return nil
}

// ValidateConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateConnectionString(backend Backend, connStr string) error {
	switch backend {
	case SQLiteBackend, NoneBackend:
		return nil
	case MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("%w: store-connect is required when using %s backend", ErrInvalid, backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("%w: MySQL connection string must contain '@tcp(' for host:port specification", ErrInvalid)
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("%w: MySQL connection string must contain '/' followed by database name", ErrInvalid)
		}
	case PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("%w: store-connect is required when using %s backend", ErrInvalid, backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("%w: PostgreSQL connection string must contain 'host=' parameter", ErrInvalid)
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("%w: PostgreSQL connection string must contain 'dbname=' parameter", ErrInvalid)
		}
	}
	return nil
}
