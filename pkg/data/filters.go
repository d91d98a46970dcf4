package data

import (
	"time"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// DefaultTradeFilter implements TradeFilter.
type DefaultTradeFilter struct{}

// NewDefaultTradeFilter creates a new trade filter.
func NewDefaultTradeFilter() *DefaultTradeFilter {
	return &DefaultTradeFilter{}
}

// FilterByAsset keeps only trades for the given asset symbol. An empty
// asset keeps everything.
func (f *DefaultTradeFilter) FilterByAsset(trades []types.HistoricalTrade, asset string) []types.HistoricalTrade {
	if asset == "" {
		return trades
	}
	filtered := make([]types.HistoricalTrade, 0, len(trades))
	for _, t := range trades {
		if t.Asset == asset {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// FilterByDateRange keeps only trades with entry dates inside [start, end].
// Zero times leave the corresponding bound open.
func (f *DefaultTradeFilter) FilterByDateRange(trades []types.HistoricalTrade, start, end time.Time) []types.HistoricalTrade {
	filtered := make([]types.HistoricalTrade, 0, len(trades))
	for _, t := range trades {
		if !start.IsZero() && t.EntryDate.Before(start) {
			continue
		}
		if !end.IsZero() && t.EntryDate.After(end) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
