package statement

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

// DefaultAliases maps known source column spellings to canonical names.
// Canonical names map to themselves so harmonization is idempotent. Lookup is
// exact-match only; nothing is inferred from similar spellings.
var DefaultAliases = map[string]string{
	"TotalCurrentAssets":      FieldCurrentAssets,
	"TotalCurrentLiabilities": FieldCurrentLiabilities,

	FieldRevenue:            FieldRevenue,
	FieldOperatingIncome:    FieldOperatingIncome,
	FieldNetIncome:          FieldNetIncome,
	FieldInterestExpense:    FieldInterestExpense,
	FieldTotalAssets:        FieldTotalAssets,
	FieldTotalLiabilities:   FieldTotalLiabilities,
	FieldTotalEquity:        FieldTotalEquity,
	FieldCurrentAssets:      FieldCurrentAssets,
	FieldCurrentLiabilities: FieldCurrentLiabilities,
	FieldInventory:          FieldInventory,
	FieldAccountsReceivable: FieldAccountsReceivable,
}

// Loader harmonizes raw statement tables to the canonical schema and joins
// them on fiscal year.
type Loader struct {
	aliases map[string]string
	log     zerolog.Logger
}

// NewLoader builds a Loader whose alias table is DefaultAliases overlaid with
// extra. Extra entries win on conflict.
func NewLoader(extra map[string]string, log zerolog.Logger) *Loader {
	aliases := make(map[string]string, len(DefaultAliases)+len(extra))
	for src, canon := range DefaultAliases {
		aliases[src] = canon
	}
	for src, canon := range extra {
		aliases[src] = canon
	}
	return &Loader{
		aliases: aliases,
		log:     log.With().Str("component", "loader").Logger(),
	}
}

// Harmonize renames source columns to canonical names through the alias
// table. Unrecognized columns pass through untouched. The input table is not
// mutated.
func (l *Loader) Harmonize(t Table) Table {
	out := Table{Rows: make([]Record, 0, len(t.Rows))}
	for _, rec := range t.Rows {
		cols := make(map[string]float64, len(rec.Cols))
		for name, v := range rec.Cols {
			if canon, ok := l.aliases[name]; ok {
				name = canon
			}
			cols[name] = v
		}
		out.Rows = append(out.Rows, Record{Year: rec.Year, Cols: cols})
	}
	return out
}

// Join inner-joins two harmonized tables on fiscal year. A year present in
// only one table produces no output row; the drop is logged, not an error.
// Rows come back sorted ascending by year. Every joined row is checked for
// the full canonical field set; a gap fails the whole join with
// *MissingFieldError.
func (l *Loader) Join(income, balance Table) ([]Row, error) {
	incomeByYear, err := byYear(income, "income")
	if err != nil {
		return nil, err
	}
	balanceByYear, err := byYear(balance, "balance")
	if err != nil {
		return nil, err
	}

	var years []int
	for year := range incomeByYear {
		if _, ok := balanceByYear[year]; ok {
			years = append(years, year)
			continue
		}
		l.log.Warn().Int("year", year).Str("only_in", "income").
			Msg("year missing from balance sheet, dropped from join")
	}
	for year := range balanceByYear {
		if _, ok := incomeByYear[year]; !ok {
			l.log.Warn().Int("year", year).Str("only_in", "balance").
				Msg("year missing from income statement, dropped from join")
		}
	}
	sort.Ints(years)

	rows := make([]Row, 0, len(years))
	for _, year := range years {
		fields := make(map[string]float64)
		for name, v := range incomeByYear[year] {
			fields[name] = v
		}
		for name, v := range balanceByYear[year] {
			fields[name] = v
		}
		row := Row{Year: year, Fields: fields}
		for _, name := range Required {
			if _, ok := row.Fields[name]; !ok {
				return nil, &MissingFieldError{Year: year, Field: name}
			}
		}
		rows = append(rows, row)
	}

	l.log.Debug().Int("rows", len(rows)).Msg("statements joined")
	return rows, nil
}

func byYear(t Table, side string) (map[int]map[string]float64, error) {
	m := make(map[int]map[string]float64, len(t.Rows))
	for _, rec := range t.Rows {
		if _, ok := m[rec.Year]; ok {
			return nil, fmt.Errorf("duplicate year %d in %s table", rec.Year, side)
		}
		m[rec.Year] = rec.Cols
	}
	return m, nil
}
