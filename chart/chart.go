// Package chart renders KPI trend lines over fiscal years as PNG files.
package chart

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"unicode"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/finstat/kpi/kpi"
)

// DefaultSet is the chart set rendered when the configuration names none:
// a quick profitability and leverage review.
var DefaultSet = []string{"OperatingMargin", "NetMargin", "ROE", "DebtToEquity"}

// Line renders one field as a line chart over the fiscal years and saves it
// under dir as <field>_trend.png (snake case). Years where the value is the
// NaN undefined marker are left off the line rather than plotted as zero.
// Returns the written file path.
func Line(rows []kpi.Row, field, dir string) (string, error) {
	pts := make(plotter.XYs, 0, len(rows))
	for _, row := range rows {
		v, ok := row.Value(field)
		if !ok {
			return "", fmt.Errorf("unknown field: %s", field)
		}
		if math.IsNaN(v) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(row.Year), Y: v})
	}

	p := plot.New()
	p.Title.Text = field + " Trend Over Time"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = field
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return "", fmt.Errorf("plot %s: %w", field, err)
	}
	p.Add(line, points)

	path := filepath.Join(dir, snake(field)+"_trend.png")
	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

// RenderSet renders one chart per field into dir and returns the file paths
// in the same order. It stops at the first failure.
func RenderSet(rows []kpi.Row, fields []string, dir string) ([]string, error) {
	paths := make([]string, 0, len(fields))
	for _, field := range fields {
		path, err := Line(rows, field, dir)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// snake converts a field name to snake case: DebtToEquity -> debt_to_equity,
// ROE -> roe.
func snake(name string) string {
	var b strings.Builder
	rs := []rune(name)
	for i, r := range rs {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(rs[i-1]) || (i+1 < len(rs) && unicode.IsLower(rs[i+1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
