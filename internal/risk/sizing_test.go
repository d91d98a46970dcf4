package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

func floatPtr(v float64) *float64 { return &v }

// TestCalculatePositionSize_WholeBudget tests sizing when the budget divides evenly
func TestCalculatePositionSize_WholeBudget(t *testing.T) {
	// Entry 100, stop 99, tick 0.25 -> 4 ticks; tick value $2.50 -> $10 risk per contract
	result := CalculatePositionSize(SizingInput{
		RiskBudgetCents: 15000,
		EntryPrice:      100.0,
		StopLoss:        floatPtr(99.0),
		TickSize:        0.25,
		TickValueCents:  250,
	})

	assert.Equal(t, 15, result.Contracts)
	assert.Equal(t, int64(4), result.TicksAtRisk)
	assert.Equal(t, int64(1000), result.RiskPerContractCents)
	assert.Equal(t, int64(15000), result.ActualRiskCents)
}

// TestCalculatePositionSize_FlooredBudget tests that fractional contracts floor down
func TestCalculatePositionSize_FlooredBudget(t *testing.T) {
	result := CalculatePositionSize(SizingInput{
		RiskBudgetCents: 5500,
		EntryPrice:      100.0,
		StopLoss:        floatPtr(99.0),
		TickSize:        0.25,
		TickValueCents:  250,
	})

	assert.Equal(t, 5, result.Contracts)
	assert.Equal(t, int64(5000), result.ActualRiskCents)
}

// TestCalculatePositionSize_MinimumOneContract tests the forced single contract rule
func TestCalculatePositionSize_MinimumOneContract(t *testing.T) {
	// Budget is positive but below the per-contract risk: one contract is
	// forced and the actual risk exceeds the budget.
	result := CalculatePositionSize(SizingInput{
		RiskBudgetCents: 500,
		EntryPrice:      100.0,
		StopLoss:        floatPtr(99.0),
		TickSize:        0.25,
		TickValueCents:  250,
	})

	assert.Equal(t, 1, result.Contracts)
	assert.Equal(t, int64(1000), result.ActualRiskCents)
	assert.Greater(t, result.ActualRiskCents, int64(500))
}

// TestCalculatePositionSize_ZeroBudget tests that a zero budget yields zero contracts
func TestCalculatePositionSize_ZeroBudget(t *testing.T) {
	result := CalculatePositionSize(SizingInput{
		RiskBudgetCents: 0,
		EntryPrice:      100.0,
		StopLoss:        floatPtr(99.0),
		TickSize:        0.25,
		TickValueCents:  250,
	})

	assert.Equal(t, 0, result.Contracts)
	assert.Equal(t, int64(0), result.ActualRiskCents)
	// Tick math is still reported for a zero budget.
	assert.Equal(t, int64(4), result.TicksAtRisk)
}

// TestCalculatePositionSize_MaxContractsCap tests the contract ceiling
func TestCalculatePositionSize_MaxContractsCap(t *testing.T) {
	result := CalculatePositionSize(SizingInput{
		RiskBudgetCents: 15000,
		EntryPrice:      100.0,
		StopLoss:        floatPtr(99.0),
		TickSize:        0.25,
		TickValueCents:  250,
		MaxContracts:    10,
	})

	assert.Equal(t, 10, result.Contracts)
	assert.Equal(t, int64(10000), result.ActualRiskCents)
}

// TestCalculatePositionSize_ZeroMaxContractsUncapped tests that 0 means no cap
func TestCalculatePositionSize_ZeroMaxContractsUncapped(t *testing.T) {
	result := CalculatePositionSize(SizingInput{
		RiskBudgetCents: 15000,
		EntryPrice:      100.0,
		StopLoss:        floatPtr(99.0),
		TickSize:        0.25,
		TickValueCents:  250,
		MaxContracts:    0,
	})

	assert.Equal(t, 15, result.Contracts)
}

// TestCalculatePositionSize_NoStopLoss tests the degenerate no-stop input
func TestCalculatePositionSize_NoStopLoss(t *testing.T) {
	result := CalculatePositionSize(SizingInput{
		RiskBudgetCents: 15000,
		EntryPrice:      100.0,
		StopLoss:        nil,
		TickSize:        0.25,
		TickValueCents:  250,
	})

	assert.Equal(t, SizingResult{}, result)
}

// TestCalculatePositionSize_StopAtEntry tests a stop exactly at the entry price
func TestCalculatePositionSize_StopAtEntry(t *testing.T) {
	result := CalculatePositionSize(SizingInput{
		RiskBudgetCents: 15000,
		EntryPrice:      100.0,
		StopLoss:        floatPtr(100.0),
		TickSize:        0.25,
		TickValueCents:  250,
	})

	assert.Equal(t, SizingResult{}, result)
}

// TestCalculatePositionSize_ZeroTickValue tests a zero tick value input
func TestCalculatePositionSize_ZeroTickValue(t *testing.T) {
	result := CalculatePositionSize(SizingInput{
		RiskBudgetCents: 15000,
		EntryPrice:      100.0,
		StopLoss:        floatPtr(99.0),
		TickSize:        0.25,
		TickValueCents:  0,
	})

	assert.Equal(t, SizingResult{}, result)
}

// TestCalculatePositionSize_ShortStopAboveEntry tests a short trade's stop distance
func TestCalculatePositionSize_ShortStopAboveEntry(t *testing.T) {
	result := CalculatePositionSize(SizingInput{
		RiskBudgetCents: 4000,
		EntryPrice:      100.0,
		StopLoss:        floatPtr(101.0),
		TickSize:        0.25,
		TickValueCents:  250,
	})

	assert.Equal(t, int64(4), result.TicksAtRisk)
	assert.Equal(t, 4, result.Contracts)
}

// TestSizeTrade_UsesTradeParameters tests the trade-level convenience wrapper
func TestSizeTrade_UsesTradeParameters(t *testing.T) {
	trade := types.HistoricalTrade{
		EntryPrice:     5000.0,
		StopLoss:       floatPtr(4990.0),
		TickSize:       0.25,
		TickValueCents: 50,
	}

	// 40 ticks at 50 cents each = 2000 cents per contract
	result := SizeTrade(&trade, 6000, 0)
	assert.Equal(t, 3, result.Contracts)
	assert.Equal(t, int64(40), result.TicksAtRisk)
	assert.Equal(t, int64(6000), result.ActualRiskCents)
}
