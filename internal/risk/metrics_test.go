package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// TestDetermineOutcome_SignClassification tests the plain win/loss/breakeven split
func TestDetermineOutcome_SignClassification(t *testing.T) {
	assert.Equal(t, types.OutcomeWin, DetermineOutcome(1500, 6, 0))
	assert.Equal(t, types.OutcomeLoss, DetermineOutcome(-1500, -6, 0))
	assert.Equal(t, types.OutcomeBreakeven, DetermineOutcome(0, 0, 0))
}

// TestDetermineOutcome_BreakevenBand tests the tick tolerance band
func TestDetermineOutcome_BreakevenBand(t *testing.T) {
	// A small negative P&L from costs within the band is still breakeven.
	assert.Equal(t, types.OutcomeBreakeven, DetermineOutcome(-60, 0, 1))
	assert.Equal(t, types.OutcomeBreakeven, DetermineOutcome(250, 1, 1))
	assert.Equal(t, types.OutcomeBreakeven, DetermineOutcome(-250, -1, 1))
	// Outside the band, the sign decides.
	assert.Equal(t, types.OutcomeWin, DetermineOutcome(500, 2, 1))
	assert.Equal(t, types.OutcomeLoss, DetermineOutcome(-500, -2, 1))
}

// TestRMultiple_Basic tests P&L expressed as a risk multiple
func TestRMultiple_Basic(t *testing.T) {
	assert.Equal(t, 2.0, RMultiple(2000, 1000))
	assert.Equal(t, -1.0, RMultiple(-1000, 1000))
}

// TestRMultiple_ZeroRisk tests that unrecorded risk yields zero
func TestRMultiple_ZeroRisk(t *testing.T) {
	assert.Equal(t, 0.0, RMultiple(2000, 0))
}

// TestDrawdownPercent_Basic tests the equity decline from peak
func TestDrawdownPercent_Basic(t *testing.T) {
	assert.Equal(t, 10.0, DrawdownPercent(90000, 100000))
	assert.Equal(t, 0.0, DrawdownPercent(100000, 100000))
}

// TestDrawdownPercent_NonPositivePeak tests the degenerate peak inputs
func TestDrawdownPercent_NonPositivePeak(t *testing.T) {
	assert.Equal(t, 0.0, DrawdownPercent(5000, 0))
	assert.Equal(t, 0.0, DrawdownPercent(-5000, -1000))
}

// TestProfitFactor_Basic tests gross profit over gross loss
func TestProfitFactor_Basic(t *testing.T) {
	assert.Equal(t, 2.0, ProfitFactor(5000, 2500))
}

// TestProfitFactor_AllProfit tests the no-loss run
func TestProfitFactor_AllProfit(t *testing.T) {
	assert.True(t, math.IsInf(ProfitFactor(5000, 0), 1))
}

// TestProfitFactor_EmptyRun tests the zero-profit zero-loss run
func TestProfitFactor_EmptyRun(t *testing.T) {
	assert.Equal(t, 0.0, ProfitFactor(0, 0))
}

// TestWinRate_Basic tests the 0-100 scale win rate
func TestWinRate_Basic(t *testing.T) {
	assert.Equal(t, 25.0, WinRate(1, 4))
	assert.Equal(t, 100.0, WinRate(3, 3))
}

// TestWinRate_ZeroTotal tests the empty denominator
func TestWinRate_ZeroTotal(t *testing.T) {
	assert.Equal(t, 0.0, WinRate(0, 0))
}
