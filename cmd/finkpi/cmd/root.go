package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finkpi",
	Short: "Annual financial-statement KPI calculator and trend charting",
	Long: `Finkpi derives a fixed set of financial ratios from two annual statement
tables (income statement and balance sheet) joined on fiscal year.

It provides tools for:
  - Harmonizing source column names to a canonical schema
  - Computing profitability, liquidity, leverage and efficiency ratios
  - Writing the combined KPI table as CSV or SQLite
  - Rendering PNG trend charts of any KPI over time

Complete documentation is available at https://github.com/finstat/kpi`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
	},
}

var verbose bool

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
