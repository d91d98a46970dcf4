package data

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

const tradesSchema = `
CREATE TABLE IF NOT EXISTS trades (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	asset              TEXT    NOT NULL,
	direction          TEXT    NOT NULL,
	entry_date         TEXT    NOT NULL,
	entry_price        REAL    NOT NULL,
	exit_price         REAL    NOT NULL,
	stop_loss          REAL,
	position_size      INTEGER NOT NULL,
	pnl_cents          INTEGER NOT NULL,
	tick_size          REAL    NOT NULL,
	tick_value_cents   INTEGER NOT NULL,
	commission_cents   INTEGER NOT NULL DEFAULT 0,
	fees_cents         INTEGER NOT NULL DEFAULT 0,
	contracts_executed INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_trades_entry_date ON trades(entry_date);
CREATE INDEX IF NOT EXISTS idx_trades_asset ON trades(asset);
`

// SQLiteProvider implements TradeProvider on a local SQLite journal
// database. The source argument of LoadTrades is the database path.
type SQLiteProvider struct {
	asset string
	from  time.Time
	to    time.Time
}

// NewSQLiteProvider creates a SQLite trade provider without filters.
func NewSQLiteProvider() *SQLiteProvider {
	return &SQLiteProvider{}
}

// WithAsset restricts loads to a single asset symbol.
func (p *SQLiteProvider) WithAsset(asset string) *SQLiteProvider {
	p.asset = asset
	return p
}

// WithDateRange restricts loads to entry dates inside [from, to].
// Zero times leave the corresponding bound open.
func (p *SQLiteProvider) WithDateRange(from, to time.Time) *SQLiteProvider {
	p.from = from
	p.to = to
	return p
}

// GetName returns the name of the trade provider.
func (p *SQLiteProvider) GetName() string {
	return "SQLite Provider"
}

// Open opens (creating if necessary) a trades database at the given path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("could not open trades database: %w", err)
	}
	if _, err := db.Exec(tradesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not initialize trades schema: %w", err)
	}
	return db, nil
}

// LoadTrades loads trades from the SQLite database at source, applying any
// configured asset/date filters, ordered by entry date.
func (p *SQLiteProvider) LoadTrades(source string) ([]types.HistoricalTrade, error) {
	db, err := Open(source)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `SELECT asset, direction, entry_date, entry_price, exit_price, stop_loss,
		position_size, pnl_cents, tick_size, tick_value_cents,
		commission_cents, fees_cents, contracts_executed
		FROM trades WHERE 1=1`
	var args []any
	if p.asset != "" {
		query += " AND asset = ?"
		args = append(args, p.asset)
	}
	if !p.from.IsZero() {
		query += " AND entry_date >= ?"
		args = append(args, p.from.UTC().Format(time.RFC3339))
	}
	if !p.to.IsZero() {
		query += " AND entry_date <= ?"
		args = append(args, p.to.UTC().Format(time.RFC3339))
	}
	query += " ORDER BY entry_date ASC, id ASC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query trades: %w", err)
	}
	defer rows.Close()

	var trades []types.HistoricalTrade
	for rows.Next() {
		var t types.HistoricalTrade
		var entryDate string
		var stopLoss sql.NullFloat64
		if err := rows.Scan(&t.Asset, &t.Direction, &entryDate, &t.EntryPrice, &t.ExitPrice, &stopLoss,
			&t.PositionSize, &t.PnlCents, &t.TickSize, &t.TickValueCents,
			&t.CommissionCents, &t.FeesCents, &t.ContractsExecuted); err != nil {
			return nil, fmt.Errorf("could not scan trade row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, entryDate)
		if err != nil {
			return nil, fmt.Errorf("invalid entry date %q in database: %w", entryDate, err)
		}
		t.EntryDate = ts
		if stopLoss.Valid {
			sl := stopLoss.Float64
			t.StopLoss = &sl
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade rows: %w", err)
	}
	return trades, nil
}

// ValidateTrades checks the integrity of a loaded trade slice.
func (p *SQLiteProvider) ValidateTrades(trades []types.HistoricalTrade) error {
	return ValidateTimeSequence(trades)
}

// SaveTrades appends trades to the database at path. Used to seed a journal
// from a CSV export.
func SaveTrades(path string, trades []types.HistoricalTrade) error {
	db, err := Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO trades
		(asset, direction, entry_date, entry_price, exit_price, stop_loss,
		 position_size, pnl_cents, tick_size, tick_value_cents,
		 commission_cents, fees_cents, contracts_executed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("could not prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range trades {
		t := &trades[i]
		var stopLoss any
		if t.StopLoss != nil {
			stopLoss = *t.StopLoss
		}
		if _, err := stmt.Exec(t.Asset, string(t.Direction), t.EntryDate.UTC().Format(time.RFC3339),
			t.EntryPrice, t.ExitPrice, stopLoss,
			t.PositionSize, t.PnlCents, t.TickSize, t.TickValueCents,
			t.CommissionCents, t.FeesCents, t.ContractsExecuted); err != nil {
			tx.Rollback()
			return fmt.Errorf("could not insert trade %d: %w", i, err)
		}
	}
	return tx.Commit()
}
