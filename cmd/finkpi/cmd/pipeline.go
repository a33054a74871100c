package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/finstat/kpi/config"
	"github.com/finstat/kpi/kpi"
	"github.com/finstat/kpi/statement"
	"github.com/finstat/kpi/table"
)

// buildTable runs the whole derivation: read both statements, harmonize,
// join on year, derive the ratios. Nothing is written.
func buildTable(cfg *config.Config) ([]kpi.Row, error) {
	income, err := table.ReadCSV(cfg.Inputs.IncomeFile)
	if err != nil {
		return nil, fmt.Errorf("load income statement: %w", err)
	}
	balance, err := table.ReadCSV(cfg.Inputs.BalanceFile)
	if err != nil {
		return nil, fmt.Errorf("load balance sheet: %w", err)
	}

	loader := statement.NewLoader(cfg.Aliases, log.Logger)
	joined, err := loader.Join(loader.Harmonize(income), loader.Harmonize(balance))
	if err != nil {
		return nil, fmt.Errorf("join statements: %w", err)
	}

	rows, err := kpi.Derive(joined)
	if err != nil {
		return nil, fmt.Errorf("derive KPIs: %w", err)
	}
	return rows, nil
}

// newWriter picks the output backend from the config.
func newWriter(cfg *config.Config) (table.Writer, error) {
	if cfg.Output.Type == "csv" {
		return table.NewCSV(cfg.Output.File)
	}
	return table.NewSQLite(cfg.Output.DBPath)
}

// loadOrBuild reads the KPI table back from a previous CSV run when the file
// exists, and derives it from the statements otherwise. SQLite outputs always
// rederive; the statements are the source of truth there.
func loadOrBuild(cfg *config.Config) ([]kpi.Row, error) {
	if cfg.Output.Type == "csv" {
		if _, err := os.Stat(cfg.Output.File); err == nil {
			log.Debug().Str("file", cfg.Output.File).Msg("reusing existing KPI table")
			return table.ReadKPI(cfg.Output.File)
		}
	}
	return buildTable(cfg)
}

// printSummary prints a compact view of the key ratios, one line per year.
func printSummary(rows []kpi.Row) {
	fmt.Printf("%6s %16s %10s %10s %10s\n", "Year", "OperatingMargin", "NetMargin", "ROA", "ROE")
	for _, row := range rows {
		fmt.Printf("%6d %16s %10s %10s %10s\n",
			row.Year,
			cell(row.OperatingMargin),
			cell(row.NetMargin),
			cell(row.ROA),
			cell(row.ROE),
		)
	}
}

func cell(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.4f", v)
}
