package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/finstat/kpi/chart"
	"github.com/finstat/kpi/config"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render KPI trend charts",
	Long: `Render line charts of selected KPIs over fiscal years as PNG files.

If the KPI table from a previous derive run exists it is reused; otherwise the
table is derived from the statement files first. Without --kpi the chart set
comes from the config, falling back to OperatingMargin, NetMargin, ROE and
DebtToEquity.

Examples:
  finkpi chart -f finkpi.yaml
  finkpi chart -f finkpi.yaml --kpi CurrentRatio --kpi QuickRatio`,
	RunE: runChart,
}

var (
	chartConfigPath string
	chartKPIs       []string
)

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().StringVarP(&chartConfigPath, "config", "f", "", "path to config file (YAML or JSON) (required)")
	chartCmd.Flags().StringArrayVar(&chartKPIs, "kpi", nil, "KPI to chart (repeatable, overrides config)")
	chartCmd.MarkFlagRequired("config")
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(chartConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rows, err := loadOrBuild(cfg)
	if err != nil {
		return err
	}

	fields := chartKPIs
	if len(fields) == 0 {
		fields = cfg.ChartKPIs(chart.DefaultSet)
	}

	dir := cfg.Charts.Dir
	if dir == "" {
		dir = "output"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create chart dir: %w", err)
	}

	paths, err := chart.RenderSet(rows, fields, dir)
	for _, path := range paths {
		fmt.Printf("Wrote %s\n", path)
	}
	if err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	return nil
}
