package table

import (
	"database/sql"
	"math"

	_ "github.com/mattn/go-sqlite3"

	"github.com/finstat/kpi/kpi"
	"github.com/finstat/kpi/pkg/id"
	"github.com/finstat/kpi/statement"
)

// SQLiteWriter persists the KPI table into a SQLite database. Every write
// shares one run id so a rerun against the same database does not clobber
// earlier rows.
type SQLiteWriter struct {
	db    *sql.DB
	runID string
}

func NewSQLite(path string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteWriter{db: db, runID: id.New()}, nil
}

// RunID returns the identifier stamped on every row of this write.
func (s *SQLiteWriter) RunID() string {
	return s.runID
}

func (s *SQLiteWriter) WriteAll(rows []kpi.Row) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	for _, row := range rows {
		_, err := tx.Exec(`
			INSERT INTO kpi
			(run_id, year,
			 revenue, operating_income, net_income, interest_expense,
			 total_assets, total_liabilities, total_equity,
			 current_assets, current_liabilities, inventory, accounts_receivable,
			 operating_margin, net_margin, roa, roe,
			 current_ratio, quick_ratio, debt_to_equity, interest_coverage,
			 asset_turnover, receivables_turnover)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.runID, row.Year,
			row.Fields[statement.FieldRevenue],
			row.Fields[statement.FieldOperatingIncome],
			row.Fields[statement.FieldNetIncome],
			row.Fields[statement.FieldInterestExpense],
			row.Fields[statement.FieldTotalAssets],
			row.Fields[statement.FieldTotalLiabilities],
			row.Fields[statement.FieldTotalEquity],
			row.Fields[statement.FieldCurrentAssets],
			row.Fields[statement.FieldCurrentLiabilities],
			row.Fields[statement.FieldInventory],
			row.Fields[statement.FieldAccountsReceivable],
			nullable(row.OperatingMargin),
			nullable(row.NetMargin),
			nullable(row.ROA),
			nullable(row.ROE),
			nullable(row.CurrentRatio),
			nullable(row.QuickRatio),
			nullable(row.DebtToEquity),
			nullable(row.InterestCoverage),
			nullable(row.AssetTurnover),
			nullable(row.ReceivablesTurnover),
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteWriter) Close() error {
	return s.db.Close()
}

// nullable maps the NaN undefined marker to SQL NULL.
func nullable(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: !math.IsNaN(v)}
}
