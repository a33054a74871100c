package table

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestReadCSV(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "income.csv",
		"Year,Revenue,OperatingIncome\n2021,900,180\n2022,1000,200\n")

	got, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, got.Rows, 2)

	assert.Equal(t, 2021, got.Rows[0].Year)
	assert.Equal(t, 900.0, got.Rows[0].Cols["Revenue"])
	assert.Equal(t, 2022, got.Rows[1].Year)
	assert.Equal(t, 200.0, got.Rows[1].Cols["OperatingIncome"])
	assert.NotContains(t, got.Rows[0].Cols, "Year")
}

func TestReadCSVErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   string
		errMsg string
	}{
		{
			name:   "no year column",
			data:   "Revenue,NetIncome\n1000,100\n",
			errMsg: "no Year column",
		},
		{
			name:   "bad year",
			data:   "Year,Revenue\ntwenty,1000\n",
			errMsg: "bad year",
		},
		{
			name:   "bad number",
			data:   "Year,Revenue\n2022,one thousand\n",
			errMsg: "bad number",
		},
		{
			name:   "empty file",
			data:   "",
			errMsg: "empty file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.csv", tt.data)
			_, err := ReadCSV(path)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestReadKPINaN(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "kpi.csv",
		"Year,Revenue,InterestCoverage,NetMargin\n2022,1000.000000,NaN,0.100000\n")

	rows, err := ReadKPI(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, 2022, r.Year)
	assert.Equal(t, 1000.0, r.Fields["Revenue"])
	assert.True(t, math.IsNaN(r.InterestCoverage))
	assert.InDelta(t, 0.1, r.NetMargin, 1e-9)
}
