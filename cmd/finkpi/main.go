package main

import (
	"os"

	"github.com/finstat/kpi/cmd/finkpi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
