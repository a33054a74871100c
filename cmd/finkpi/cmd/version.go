package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the finkpi CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("finkpi version %s\n", version)
		fmt.Println("Annual financial-statement KPI calculator and trend charting")
		fmt.Println("https://github.com/finstat/kpi")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
