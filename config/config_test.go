package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "csv", cfg.Output.Type)
	assert.Equal(t, "output/kpi_table.csv", cfg.Output.File)
	assert.Equal(t, []string{"OperatingMargin", "NetMargin", "ROE", "DebtToEquity"}, cfg.Charts.KPIs)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  Default(),
			wantErr: false,
		},
		{
			name: "missing income file",
			config: &Config{
				Inputs: InputsConfig{BalanceFile: "b.csv"},
				Output: OutputConfig{Type: "csv", File: "out.csv"},
			},
			wantErr: true,
			errMsg:  "inputs.income_file is required",
		},
		{
			name: "missing balance file",
			config: &Config{
				Inputs: InputsConfig{IncomeFile: "i.csv"},
				Output: OutputConfig{Type: "csv", File: "out.csv"},
			},
			wantErr: true,
			errMsg:  "inputs.balance_file is required",
		},
		{
			name: "bad output type",
			config: &Config{
				Inputs: InputsConfig{IncomeFile: "i.csv", BalanceFile: "b.csv"},
				Output: OutputConfig{Type: "parquet"},
			},
			wantErr: true,
			errMsg:  "output.type must be 'csv' or 'sqlite'",
		},
		{
			name: "csv without file",
			config: &Config{
				Inputs: InputsConfig{IncomeFile: "i.csv", BalanceFile: "b.csv"},
				Output: OutputConfig{Type: "csv"},
			},
			wantErr: true,
			errMsg:  "output.file required for CSV type",
		},
		{
			name: "sqlite without db path",
			config: &Config{
				Inputs: InputsConfig{IncomeFile: "i.csv", BalanceFile: "b.csv"},
				Output: OutputConfig{Type: "sqlite"},
			},
			wantErr: true,
			errMsg:  "output.db_path required for SQLite type",
		},
		{
			name: "unknown chart KPI",
			config: &Config{
				Inputs: InputsConfig{IncomeFile: "i.csv", BalanceFile: "b.csv"},
				Output: OutputConfig{Type: "csv", File: "out.csv"},
				Charts: ChartsConfig{KPIs: []string{"GrossMargin"}},
			},
			wantErr: true,
			errMsg:  "unknown chart KPI: GrossMargin",
		},
		{
			name: "canonical field chartable",
			config: &Config{
				Inputs: InputsConfig{IncomeFile: "i.csv", BalanceFile: "b.csv"},
				Output: OutputConfig{Type: "csv", File: "out.csv"},
				Charts: ChartsConfig{KPIs: []string{"Revenue"}},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finkpi.yaml")
	data := `
inputs:
  income_file: data/income.csv
  balance_file: data/balance.csv
output:
  type: csv
  file: out/kpi.csv
charts:
  dir: out
  kpis: [ROE, DebtToEquity]
aliases:
  Sales: Revenue
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data/income.csv", cfg.Inputs.IncomeFile)
	assert.Equal(t, []string{"ROE", "DebtToEquity"}, cfg.Charts.KPIs)
	assert.Equal(t, "Revenue", cfg.Aliases["Sales"])
}

func TestLoadFromFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finkpi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  type: parquet\n"), 0644))

	_, err := LoadFromFile(path)
	assert.ErrorContains(t, err, "invalid config")
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finkpi.yaml")

	cfg := Default()
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestChartKPIs(t *testing.T) {
	cfg := Default()
	assert.Equal(t, cfg.Charts.KPIs, cfg.ChartKPIs([]string{"ROA"}))

	cfg.Charts.KPIs = nil
	assert.Equal(t, []string{"ROA"}, cfg.ChartKPIs([]string{"ROA"}))
}
