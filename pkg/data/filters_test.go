package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

func filterFixture() []types.HistoricalTrade {
	return []types.HistoricalTrade{
		{Asset: "MNQ", EntryDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{Asset: "ES", EntryDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{Asset: "MNQ", EntryDate: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)},
	}
}

// TestFilterByAsset_Basic tests asset filtering
func TestFilterByAsset_Basic(t *testing.T) {
	filter := NewDefaultTradeFilter()

	filtered := filter.FilterByAsset(filterFixture(), "MNQ")
	assert.Len(t, filtered, 2)
	for _, trade := range filtered {
		assert.Equal(t, "MNQ", trade.Asset)
	}
}

// TestFilterByAsset_EmptyKeepsAll tests that an empty asset is a no-op
func TestFilterByAsset_EmptyKeepsAll(t *testing.T) {
	filter := NewDefaultTradeFilter()

	assert.Len(t, filter.FilterByAsset(filterFixture(), ""), 3)
}

// TestFilterByDateRange_ClosedInterval tests both bounds
func TestFilterByDateRange_ClosedInterval(t *testing.T) {
	filter := NewDefaultTradeFilter()

	filtered := filter.FilterByDateRange(filterFixture(),
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 5, 23, 59, 59, 0, time.UTC))

	assert.Len(t, filtered, 1)
	assert.Equal(t, "ES", filtered[0].Asset)
}

// TestFilterByDateRange_OpenBounds tests zero times leaving bounds open
func TestFilterByDateRange_OpenBounds(t *testing.T) {
	filter := NewDefaultTradeFilter()

	fromOnly := filter.FilterByDateRange(filterFixture(), time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), time.Time{})
	assert.Len(t, fromOnly, 2)

	toOnly := filter.FilterByDateRange(filterFixture(), time.Time{}, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	assert.Len(t, toOnly, 2)

	all := filter.FilterByDateRange(filterFixture(), time.Time{}, time.Time{})
	assert.Len(t, all, 3)
}
