package data

import (
	"time"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// TradeProvider loads historical trades from a backing source. Providers
// return trades already sorted by entry date, which is what the simulation
// engines require.
type TradeProvider interface {
	// LoadTrades loads all trades from the specified source.
	LoadTrades(source string) ([]types.HistoricalTrade, error)

	// ValidateTrades validates the integrity of the loaded trades.
	ValidateTrades(trades []types.HistoricalTrade) error

	// GetName returns the name of the trade provider.
	GetName() string
}

// TradeFilter narrows a loaded trade slice.
type TradeFilter interface {
	// FilterByAsset keeps only trades for the given asset symbol.
	FilterByAsset(trades []types.HistoricalTrade, asset string) []types.HistoricalTrade

	// FilterByDateRange keeps only trades inside [start, end].
	FilterByDateRange(trades []types.HistoricalTrade, start, end time.Time) []types.HistoricalTrade
}

// TradeCSVFormat defines the column positions for trade CSV files.
type TradeCSVFormat struct {
	AssetCol             int
	DirectionCol         int
	EntryDateCol         int
	EntryPriceCol        int
	ExitPriceCol         int
	StopLossCol          int
	PositionSizeCol      int
	PnlCentsCol          int
	TickSizeCol          int
	TickValueCentsCol    int
	CommissionCentsCol   int
	FeesCentsCol         int
	ContractsExecutedCol int
	MinColumns           int
	DateFormat           string
}

// DefaultTradeCSVFormat is the neutral interchange layout written by the CSV
// exporter and expected by the CSV provider.
var DefaultTradeCSVFormat = TradeCSVFormat{
	AssetCol:             0,
	DirectionCol:         1,
	EntryDateCol:         2,
	EntryPriceCol:        3,
	ExitPriceCol:         4,
	StopLossCol:          5,
	PositionSizeCol:      6,
	PnlCentsCol:          7,
	TickSizeCol:          8,
	TickValueCentsCol:    9,
	CommissionCentsCol:   10,
	FeesCentsCol:         11,
	ContractsExecutedCol: 12,
	MinColumns:           13,
	DateFormat:           time.RFC3339,
}
