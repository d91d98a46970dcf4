package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHasStop_NilStop tests that a missing stop means no measurable risk
func TestHasStop_NilStop(t *testing.T) {
	trade := HistoricalTrade{EntryPrice: 100.0}

	assert.False(t, trade.HasStop())
	assert.Equal(t, 0.0, trade.StopPrice())
}

// TestHasStop_StopAtEntry tests that a stop at the entry price counts as none
func TestHasStop_StopAtEntry(t *testing.T) {
	stop := 100.0
	trade := HistoricalTrade{EntryPrice: 100.0, StopLoss: &stop}

	assert.False(t, trade.HasStop())
	assert.Equal(t, 100.0, trade.StopPrice())
}

// TestHasStop_ValidStop tests a usable stop below entry
func TestHasStop_ValidStop(t *testing.T) {
	stop := 99.0
	trade := HistoricalTrade{EntryPrice: 100.0, StopLoss: &stop}

	assert.True(t, trade.HasStop())
	assert.Equal(t, 99.0, trade.StopPrice())
}

// TestSimulatedTrade_Executed tests the status predicate
func TestSimulatedTrade_Executed(t *testing.T) {
	executed := SimulatedTrade{Status: StatusExecuted}
	skipped := SimulatedTrade{Status: StatusSkippedNoSL}

	assert.True(t, executed.Executed())
	assert.False(t, skipped.Executed())
}
