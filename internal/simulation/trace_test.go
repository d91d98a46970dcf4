package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// TestBuildResult_GroupsByDayAndWeek tests trace grouping across period boundaries
func TestBuildResult_GroupsByDayAndWeek(t *testing.T) {
	trades := []types.HistoricalTrade{
		winTrade(monday),
		lossTrade(monday.Add(time.Hour)),
		winTrade(monday.AddDate(0, 0, 1)), // Tuesday, same ISO week
		winTrade(monday.AddDate(0, 0, 7)), // next Monday, next ISO week
	}

	result := RunSimple(trades, baseSimple)

	assert.Len(t, result.Days, 3)
	assert.Len(t, result.Weeks, 2)

	day1 := result.Days[0]
	assert.Equal(t, "2024-03-04", day1.DayKey)
	assert.Equal(t, 2, day1.ExecutedCount)
	assert.Equal(t, int64(0), day1.OriginalPnlCents) // +1000 - 1000

	week1 := result.Weeks[0]
	assert.Equal(t, "2024-W10", week1.WeekKey)
	assert.Equal(t, 3, week1.ExecutedCount)
	assert.Equal(t, "2024-W11", result.Weeks[1].WeekKey)
}

// TestBuildResult_EquityCurveTracksBothRuns tests original vs simulated equity
func TestBuildResult_EquityCurveTracksBothRuns(t *testing.T) {
	trades := []types.HistoricalTrade{
		winTrade(monday),
		lossTrade(monday.Add(time.Hour)),
	}

	result := RunSimple(trades, baseSimple)

	assert.Len(t, result.EquityCurve, 2)
	first := result.EquityCurve[0]
	assert.Equal(t, 0, first.TradeIndex)
	assert.Equal(t, "2024-03-04", first.DayKey)
	assert.Equal(t, int64(101000), first.OriginalEquityCents)
	assert.Equal(t, int64(101000), first.SimulatedEquityCents)

	second := result.EquityCurve[1]
	assert.Equal(t, int64(100000), second.OriginalEquityCents)
}

// TestBuildResult_EquityCurveIncludesSkips tests one curve point per input trade
func TestBuildResult_EquityCurveIncludesSkips(t *testing.T) {
	trades := []types.HistoricalTrade{
		noStopTrade(monday),
		winTrade(monday.Add(time.Hour)),
	}

	result := RunSimple(trades, baseSimple)

	assert.Len(t, result.EquityCurve, 2)
	// The skipped trade still moves the original equity but not the simulated.
	assert.Equal(t, int64(101000), result.EquityCurve[0].OriginalEquityCents)
	assert.Equal(t, int64(100000), result.EquityCurve[0].SimulatedEquityCents)
}

// TestBuildResult_SummaryAccounting tests that skips and executions sum to total
func TestBuildResult_SummaryAccounting(t *testing.T) {
	p := baseSimple
	p.MaxDailyTrades = 1
	trades := []types.HistoricalTrade{
		noStopTrade(monday),
		winTrade(monday.Add(time.Hour)),
		lossTrade(monday.Add(2 * time.Hour)),
	}

	result := RunSimple(trades, p)
	s := result.Summary

	assert.Equal(t, 3, s.TotalTrades)
	assert.Equal(t, 1, s.ExecutedTrades)
	skipped := 0
	for _, count := range s.SkippedByReason {
		skipped += count
	}
	assert.Equal(t, s.TotalTrades-s.ExecutedTrades, skipped)
	assert.Equal(t, 1, s.SkippedByReason[types.StatusSkippedNoSL])
	assert.Equal(t, 1, s.SkippedByReason[types.StatusSkippedMaxTrades])
	// Every skip status is present in the map, zero or not.
	assert.Len(t, s.SkippedByReason, len(types.SkipStatuses))
}

// TestBuildResult_WinRates tests the two win rate denominators
func TestBuildResult_WinRates(t *testing.T) {
	p := baseSimple
	p.MaxDailyTrades = 2
	trades := []types.HistoricalTrade{
		winTrade(monday),
		lossTrade(monday.Add(time.Hour)),
		winTrade(monday.Add(2 * time.Hour)), // skipped by max trades
	}

	result := RunSimple(trades, p)

	// Original: 2 wins of 3 trades. Simulated: 1 win of 2 executed.
	assert.InDelta(t, 66.67, result.Summary.OriginalWinRate, 0.01)
	assert.InDelta(t, 50.0, result.Summary.SimulatedWinRate, 0.01)
}

// TestBuildResult_DateRange tests the covered interval
func TestBuildResult_DateRange(t *testing.T) {
	trades := []types.HistoricalTrade{
		winTrade(monday),
		winTrade(monday.AddDate(0, 0, 3)),
	}

	result := RunSimple(trades, baseSimple)

	assert.Equal(t, monday, result.DateRange.From)
	assert.Equal(t, monday.AddDate(0, 0, 3), result.DateRange.To)
}

// TestBuildResult_PnlDelta tests the simulated-minus-original delta
func TestBuildResult_PnlDelta(t *testing.T) {
	trades := []types.HistoricalTrade{noStopTrade(monday)}

	result := RunSimple(trades, baseSimple)

	assert.Equal(t, int64(1000), result.Summary.OriginalTotalPnlCents)
	assert.Equal(t, int64(0), result.Summary.SimulatedTotalPnl)
	assert.Equal(t, int64(-1000), result.Summary.PnlDeltaCents)
}
