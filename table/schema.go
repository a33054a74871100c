package table

// Schema holds the one output table. Canonical inputs are NOT NULL; derived
// ratios are nullable because NULL is how the undefined marker is stored.
const Schema = `
CREATE TABLE IF NOT EXISTS kpi (
	run_id TEXT NOT NULL,
	year INTEGER NOT NULL,
	revenue REAL NOT NULL,
	operating_income REAL NOT NULL,
	net_income REAL NOT NULL,
	interest_expense REAL NOT NULL,
	total_assets REAL NOT NULL,
	total_liabilities REAL NOT NULL,
	total_equity REAL NOT NULL,
	current_assets REAL NOT NULL,
	current_liabilities REAL NOT NULL,
	inventory REAL NOT NULL,
	accounts_receivable REAL NOT NULL,
	operating_margin REAL,
	net_margin REAL,
	roa REAL,
	roe REAL,
	current_ratio REAL,
	quick_ratio REAL,
	debt_to_equity REAL,
	interest_coverage REAL,
	asset_turnover REAL,
	receivables_turnover REAL,
	PRIMARY KEY (run_id, year)
);

CREATE INDEX IF NOT EXISTS idx_kpi_year ON kpi(year);
`
