package statement

// Canonical column names used internally regardless of how a source
// statement labels them.
const (
	FieldRevenue            = "Revenue"
	FieldOperatingIncome    = "OperatingIncome"
	FieldNetIncome          = "NetIncome"
	FieldInterestExpense    = "InterestExpense"
	FieldTotalAssets        = "TotalAssets"
	FieldTotalLiabilities   = "TotalLiabilities"
	FieldTotalEquity        = "TotalEquity"
	FieldCurrentAssets      = "CurrentAssets"
	FieldCurrentLiabilities = "CurrentLiabilities"
	FieldInventory          = "Inventory"
	FieldAccountsReceivable = "AccountsReceivable"
)

// Required lists every canonical field a joined row must carry before KPI
// derivation. Order matters: it is the column order of the output table.
var Required = []string{
	FieldRevenue,
	FieldOperatingIncome,
	FieldNetIncome,
	FieldInterestExpense,
	FieldTotalAssets,
	FieldTotalLiabilities,
	FieldTotalEquity,
	FieldCurrentAssets,
	FieldCurrentLiabilities,
	FieldInventory,
	FieldAccountsReceivable,
}

// Record is one fiscal year of a raw statement table, columns named as they
// appear in the source file. Year is kept out of Cols.
type Record struct {
	Year int
	Cols map[string]float64
}

// Table is a raw statement table as read from disk.
type Table struct {
	Rows []Record
}

// Row is one fiscal year of harmonized, joined statement data.
type Row struct {
	Year   int
	Fields map[string]float64
}

// Field returns the named canonical field and whether it is present.
func (r Row) Field(name string) (float64, bool) {
	v, ok := r.Fields[name]
	return v, ok
}
