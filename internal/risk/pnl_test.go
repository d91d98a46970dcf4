package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// TestCalculatePnl_LongWin tests a winning long trade with per-execution costs
func TestCalculatePnl_LongWin(t *testing.T) {
	// 100 -> 101 at 0.25 tick = 4 ticks; 2 contracts at $2.50/tick
	result := CalculatePnl(PnlInput{
		EntryPrice:   100.0,
		ExitPrice:    101.0,
		PositionSize: 2,
		Direction:    types.DirectionLong,
		TickSize:     0.25,
		TickValue:    250,
		Commission:   10,
		Fees:         5,
	})

	assert.Equal(t, int64(4), result.TicksGained)
	assert.Equal(t, 2000.0, result.GrossPnl)
	// ContractsExecuted defaults to size*2 (entry + exit fills)
	assert.Equal(t, 60.0, result.TotalCosts)
	assert.Equal(t, 1940.0, result.NetPnl)
}

// TestCalculatePnl_ShortGainsOnFall tests that shorts profit from falling prices
func TestCalculatePnl_ShortGainsOnFall(t *testing.T) {
	result := CalculatePnl(PnlInput{
		EntryPrice:   100.0,
		ExitPrice:    99.0,
		PositionSize: 1,
		Direction:    types.DirectionShort,
		TickSize:     0.25,
		TickValue:    250,
	})

	assert.Equal(t, int64(4), result.TicksGained)
	assert.Equal(t, 1000.0, result.GrossPnl)
}

// TestCalculatePnl_ZeroCosts tests that gross equals net without costs
func TestCalculatePnl_ZeroCosts(t *testing.T) {
	result := CalculatePnl(PnlInput{
		EntryPrice:   100.0,
		ExitPrice:    100.5,
		PositionSize: 3,
		Direction:    types.DirectionLong,
		TickSize:     0.25,
		TickValue:    250,
	})

	assert.Equal(t, result.GrossPnl, result.NetPnl)
	assert.Equal(t, 0.0, result.TotalCosts)
}

// TestCalculatePnl_ExplicitContractsExecuted tests cost scaling by fill count
func TestCalculatePnl_ExplicitContractsExecuted(t *testing.T) {
	result := CalculatePnl(PnlInput{
		EntryPrice:        100.0,
		ExitPrice:         101.0,
		PositionSize:      2,
		Direction:         types.DirectionLong,
		TickSize:          0.25,
		TickValue:         250,
		Commission:        10,
		ContractsExecuted: 6,
	})

	assert.Equal(t, 60.0, result.TotalCosts)
}

// TestCalculatePnl_RoundsToNearestTick tests tick discretization
func TestCalculatePnl_RoundsToNearestTick(t *testing.T) {
	// 0.30 move at 0.25 tick = 1.2 ticks, rounds to 1
	result := CalculatePnl(PnlInput{
		EntryPrice:   100.0,
		ExitPrice:    100.3,
		PositionSize: 1,
		Direction:    types.DirectionLong,
		TickSize:     0.25,
		TickValue:    250,
	})

	assert.Equal(t, int64(1), result.TicksGained)
	assert.Equal(t, 250.0, result.GrossPnl)
}

// TestSimulatedPnlCents_ZeroSize tests that a zero-size replay pays nothing
func TestSimulatedPnlCents_ZeroSize(t *testing.T) {
	trade := types.HistoricalTrade{
		EntryPrice:      100.0,
		ExitPrice:       99.0,
		Direction:       types.DirectionLong,
		TickSize:        0.25,
		TickValueCents:  250,
		CommissionCents: 100,
	}

	assert.Equal(t, int64(0), SimulatedPnlCents(&trade, 0))
}

// TestSimulatedPnlCents_ScalesWithSize tests replaying at a different size
func TestSimulatedPnlCents_ScalesWithSize(t *testing.T) {
	trade := types.HistoricalTrade{
		EntryPrice:     100.0,
		ExitPrice:      101.0,
		Direction:      types.DirectionLong,
		TickSize:       0.25,
		TickValueCents: 250,
	}

	assert.Equal(t, int64(1000), SimulatedPnlCents(&trade, 1))
	assert.Equal(t, int64(5000), SimulatedPnlCents(&trade, 5))
}

// TestTicksGained_ShortLoss tests the signed tick move of a losing short
func TestTicksGained_ShortLoss(t *testing.T) {
	trade := types.HistoricalTrade{
		EntryPrice: 100.0,
		ExitPrice:  100.75,
		Direction:  types.DirectionShort,
		TickSize:   0.25,
	}

	assert.Equal(t, int64(-3), TicksGained(&trade))
}

// TestTicksGained_ZeroTickSize tests the degenerate zero tick size
func TestTicksGained_ZeroTickSize(t *testing.T) {
	trade := types.HistoricalTrade{
		EntryPrice: 100.0,
		ExitPrice:  105.0,
		Direction:  types.DirectionLong,
		TickSize:   0,
	}

	assert.Equal(t, int64(0), TicksGained(&trade))
}
