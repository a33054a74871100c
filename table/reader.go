package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/finstat/kpi/kpi"
	"github.com/finstat/kpi/statement"
)

// ReadCSV reads a raw statement table. The first row is the header; one
// column must be Year (integer), every other column must parse as a float.
func ReadCSV(path string) (statement.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return statement.Table{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return statement.Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return statement.Table{}, fmt.Errorf("read %s: empty file", path)
	}

	header := records[0]
	yearIdx := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "Year") {
			yearIdx = i
			break
		}
	}
	if yearIdx < 0 {
		return statement.Table{}, fmt.Errorf("read %s: no Year column", path)
	}

	t := statement.Table{Rows: make([]statement.Record, 0, len(records)-1)}
	for n, rec := range records[1:] {
		line := n + 2
		if len(rec) != len(header) {
			return statement.Table{}, fmt.Errorf("read %s: line %d: %d columns, want %d", path, line, len(rec), len(header))
		}
		year, err := strconv.Atoi(strings.TrimSpace(rec[yearIdx]))
		if err != nil {
			return statement.Table{}, fmt.Errorf("read %s: line %d: bad year %q", path, line, rec[yearIdx])
		}
		cols := make(map[string]float64, len(header)-1)
		for i, cell := range rec {
			if i == yearIdx {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return statement.Table{}, fmt.Errorf("read %s: line %d: column %s: bad number %q", path, line, header[i], cell)
			}
			cols[strings.TrimSpace(header[i])] = v
		}
		t.Rows = append(t.Rows, statement.Record{Year: year, Cols: cols})
	}
	return t, nil
}

// ReadKPI reads back a KPI table previously written by the CSV writer. The
// literal NaN parses back to the undefined marker. Columns that are neither
// Year nor a derived ratio land in the row's canonical field map.
func ReadKPI(path string) ([]kpi.Row, error) {
	t, err := ReadCSV(path)
	if err != nil {
		return nil, err
	}

	rows := make([]kpi.Row, 0, len(t.Rows))
	for _, rec := range t.Rows {
		row := kpi.Row{Row: statement.Row{Year: rec.Year, Fields: make(map[string]float64)}}
		for name, v := range rec.Cols {
			if !setDerived(&row, name, v) {
				row.Fields[name] = v
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func setDerived(r *kpi.Row, name string, v float64) bool {
	switch name {
	case "OperatingMargin":
		r.OperatingMargin = v
	case "NetMargin":
		r.NetMargin = v
	case "ROA":
		r.ROA = v
	case "ROE":
		r.ROE = v
	case "CurrentRatio":
		r.CurrentRatio = v
	case "QuickRatio":
		r.QuickRatio = v
	case "DebtToEquity":
		r.DebtToEquity = v
	case "InterestCoverage":
		r.InterestCoverage = v
	case "AssetTurnover":
		r.AssetTurnover = v
	case "ReceivablesTurnover":
		r.ReceivablesTurnover = v
	default:
		return false
	}
	return true
}
