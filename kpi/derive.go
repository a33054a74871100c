package kpi

import (
	"math"

	"github.com/finstat/kpi/statement"
)

// Row is a harmonized statement row extended with the ten derived ratios.
// Rows are never mutated after Derive returns them.
type Row struct {
	statement.Row

	OperatingMargin     float64
	NetMargin           float64
	ROA                 float64
	ROE                 float64
	CurrentRatio        float64
	QuickRatio          float64
	DebtToEquity        float64
	InterestCoverage    float64
	AssetTurnover       float64
	ReceivablesTurnover float64
}

// Names lists the derived ratio names in output-column order.
var Names = []string{
	"OperatingMargin",
	"NetMargin",
	"ROA",
	"ROE",
	"CurrentRatio",
	"QuickRatio",
	"DebtToEquity",
	"InterestCoverage",
	"AssetTurnover",
	"ReceivablesTurnover",
}

// Value returns the named derived ratio, or falls back to the row's canonical
// fields for anything else. The bool reports whether the name was known.
func (r Row) Value(name string) (float64, bool) {
	switch name {
	case "OperatingMargin":
		return r.OperatingMargin, true
	case "NetMargin":
		return r.NetMargin, true
	case "ROA":
		return r.ROA, true
	case "ROE":
		return r.ROE, true
	case "CurrentRatio":
		return r.CurrentRatio, true
	case "QuickRatio":
		return r.QuickRatio, true
	case "DebtToEquity":
		return r.DebtToEquity, true
	case "InterestCoverage":
		return r.InterestCoverage, true
	case "AssetTurnover":
		return r.AssetTurnover, true
	case "ReceivablesTurnover":
		return r.ReceivablesTurnover, true
	}
	return r.Field(name)
}

// ratio is the single place the zero-denominator convention lives: any ratio
// with a zero denominator is NaN, regardless of the numerator. NaN is the
// undefined marker all the way to the output table.
func ratio(num, den float64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return num / den
}

// Derive computes the ten ratios for every row. Each output row is a pure
// function of the matching input row, so input order is irrelevant to the
// values produced. A row missing any canonical field fails the whole batch
// with *statement.MissingFieldError before anything is returned.
func Derive(rows []statement.Row) ([]Row, error) {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		for _, name := range statement.Required {
			if _, ok := r.Field(name); !ok {
				return nil, &statement.MissingFieldError{Year: r.Year, Field: name}
			}
		}

		revenue := r.Fields[statement.FieldRevenue]
		operatingIncome := r.Fields[statement.FieldOperatingIncome]
		netIncome := r.Fields[statement.FieldNetIncome]
		interestExpense := r.Fields[statement.FieldInterestExpense]
		totalAssets := r.Fields[statement.FieldTotalAssets]
		totalLiabilities := r.Fields[statement.FieldTotalLiabilities]
		totalEquity := r.Fields[statement.FieldTotalEquity]
		currentAssets := r.Fields[statement.FieldCurrentAssets]
		currentLiabilities := r.Fields[statement.FieldCurrentLiabilities]
		inventory := r.Fields[statement.FieldInventory]
		receivables := r.Fields[statement.FieldAccountsReceivable]

		out = append(out, Row{
			Row: r,

			OperatingMargin:     ratio(operatingIncome, revenue),
			NetMargin:           ratio(netIncome, revenue),
			ROA:                 ratio(netIncome, totalAssets),
			ROE:                 ratio(netIncome, totalEquity),
			CurrentRatio:        ratio(currentAssets, currentLiabilities),
			QuickRatio:          ratio(currentAssets-inventory, currentLiabilities),
			DebtToEquity:        ratio(totalLiabilities, totalEquity),
			InterestCoverage:    ratio(operatingIncome, interestExpense),
			AssetTurnover:       ratio(revenue, totalAssets),
			ReceivablesTurnover: ratio(revenue, receivables),
		})
	}
	return out, nil
}
