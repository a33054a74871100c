package table

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/finstat/kpi/kpi"
	"github.com/finstat/kpi/statement"
)

// Writer persists the final KPI table. Implementations write the whole table
// or nothing; callers only hand them fully derived rows.
type Writer interface {
	WriteAll(rows []kpi.Row) error
	Close() error
}

// Header returns the output column order: Year, the canonical statement
// fields, then the ten derived ratios.
func Header() []string {
	header := make([]string, 0, 1+len(statement.Required)+len(kpi.Names))
	header = append(header, "Year")
	header = append(header, statement.Required...)
	header = append(header, kpi.Names...)
	return header
}

// CSVWriter writes the KPI table as a row-per-year CSV with a header row.
type CSVWriter struct {
	w *csv.Writer
	f *os.File
}

func NewCSV(path string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header()); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &CSVWriter{w: w, f: f}, nil
}

func (c *CSVWriter) WriteAll(rows []kpi.Row) error {
	header := Header()
	for _, row := range rows {
		rec := make([]string, 0, len(header))
		rec = append(rec, strconv.Itoa(row.Year))
		for _, name := range header[1:] {
			v, _ := row.Value(name)
			rec = append(rec, f(v))
		}
		if err := c.w.Write(rec); err != nil {
			return err
		}
	}
	c.w.Flush()
	return c.w.Error()
}

func (c *CSVWriter) Close() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return err
	}
	return c.f.Close()
}

// f formats one cell. NaN comes out as the literal "NaN", the undefined
// marker in the persisted table.
func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
