package chart

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finstat/kpi/kpi"
	"github.com/finstat/kpi/statement"
)

func testRows() []kpi.Row {
	rows := make([]kpi.Row, 0, 3)
	for i, margin := range []float64{0.18, math.NaN(), 0.22} {
		rows = append(rows, kpi.Row{
			Row:             statement.Row{Year: 2020 + i, Fields: map[string]float64{}},
			OperatingMargin: margin,
			ROE:             0.08 + float64(i)*0.01,
		})
	}
	return rows
}

func TestSnake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"OperatingMargin", "operating_margin"},
		{"NetMargin", "net_margin"},
		{"ROA", "roa"},
		{"ROE", "roe"},
		{"DebtToEquity", "debt_to_equity"},
		{"ReceivablesTurnover", "receivables_turnover"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, snake(tt.in), tt.in)
	}
}

func TestLineWritesPNG(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	path, err := Line(testRows(), "ROE", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "roe_trend.png"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestLineSkipsNaN(t *testing.T) {
	t.Parallel()

	// 2021 is NaN; the chart must still render from the remaining points
	path, err := Line(testRows(), "OperatingMargin", t.TempDir())
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLineUnknownField(t *testing.T) {
	t.Parallel()

	_, err := Line(testRows(), "NoSuchKPI", t.TempDir())
	assert.ErrorContains(t, err, "unknown field")
}

func TestRenderSet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	paths, err := RenderSet(testRows(), []string{"OperatingMargin", "ROE"}, dir)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}
