package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/finstat/kpi/kpi"
	"github.com/finstat/kpi/statement"
)

// Config represents the complete pipeline configuration: where the two
// statement tables live, where the KPI table goes, and which trends to chart.
type Config struct {
	Inputs  InputsConfig      `json:"inputs" yaml:"inputs"`
	Output  OutputConfig      `json:"output" yaml:"output"`
	Charts  ChartsConfig      `json:"charts" yaml:"charts"`
	Aliases map[string]string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// InputsConfig names the two source statement tables.
type InputsConfig struct {
	IncomeFile  string `json:"income_file" yaml:"income_file"`
	BalanceFile string `json:"balance_file" yaml:"balance_file"`
}

// OutputConfig controls how the KPI table is persisted.
type OutputConfig struct {
	Type   string `json:"type" yaml:"type"` // "csv" or "sqlite"
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// ChartsConfig controls trend chart rendering.
type ChartsConfig struct {
	Dir  string   `json:"dir" yaml:"dir"`
	KPIs []string `json:"kpis,omitempty" yaml:"kpis,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Inputs.IncomeFile == "" {
		return fmt.Errorf("inputs.income_file is required")
	}
	if c.Inputs.BalanceFile == "" {
		return fmt.Errorf("inputs.balance_file is required")
	}
	if c.Output.Type != "csv" && c.Output.Type != "sqlite" {
		return fmt.Errorf("output.type must be 'csv' or 'sqlite'")
	}
	if c.Output.Type == "csv" && c.Output.File == "" {
		return fmt.Errorf("output.file required for CSV type")
	}
	if c.Output.Type == "sqlite" && c.Output.DBPath == "" {
		return fmt.Errorf("output.db_path required for SQLite type")
	}
	for _, name := range c.Charts.KPIs {
		if !knownField(name) {
			return fmt.Errorf("unknown chart KPI: %s", name)
		}
	}
	return nil
}

// ChartKPIs returns the configured chart set, or fallback when the config
// names none.
func (c *Config) ChartKPIs(fallback []string) []string {
	if len(c.Charts.KPIs) > 0 {
		return c.Charts.KPIs
	}
	return fallback
}

func knownField(name string) bool {
	for _, n := range kpi.Names {
		if n == name {
			return true
		}
	}
	for _, n := range statement.Required {
		if n == name {
			return true
		}
	}
	return false
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Inputs: InputsConfig{
			IncomeFile:  "data/income_statement.csv",
			BalanceFile: "data/balance_sheet.csv",
		},
		Output: OutputConfig{
			Type: "csv",
			File: "output/kpi_table.csv",
		},
		Charts: ChartsConfig{
			Dir:  "output",
			KPIs: []string{"OperatingMargin", "NetMargin", "ROE", "DebtToEquity"},
		},
	}
}
