package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finstat/kpi/config"
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Compute the KPI table from the statement files",
	Long: `Load the income statement and balance sheet named in the config file,
join them on fiscal year, derive the ten ratios, and write the combined table.

Years present in only one statement are dropped from the join. A ratio whose
denominator is zero is written as NaN (CSV) or NULL (SQLite).

Example:
  finkpi derive -f finkpi.yaml`,
	RunE: runDerive,
}

var deriveConfigPath string

func init() {
	rootCmd.AddCommand(deriveCmd)

	deriveCmd.Flags().StringVarP(&deriveConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	deriveCmd.MarkFlagRequired("config")
}

func runDerive(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(deriveConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rows, err := buildTable(cfg)
	if err != nil {
		return err
	}

	w, err := newWriter(cfg)
	if err != nil {
		return fmt.Errorf("create writer: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		w.Close()
		return fmt.Errorf("write KPI table: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close writer: %w", err)
	}

	fmt.Printf("Derived %d years of KPIs\n", len(rows))
	if cfg.Output.Type == "csv" {
		fmt.Printf("Results saved to: %s\n\n", cfg.Output.File)
	} else {
		fmt.Printf("Results saved to: %s\n\n", cfg.Output.DBPath)
	}
	printSummary(rows)
	return nil
}
