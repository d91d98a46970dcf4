package risk

import (
	"math"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// DetermineOutcome classifies a realized P&L. When breakevenTicks is nonzero
// and the absolute tick move is within it, the trade is breakeven regardless
// of the P&L sign; a zero breakevenTicks always falls through to sign
// classification.
func DetermineOutcome(pnlCents, ticksGained, breakevenTicks int64) types.Outcome {
	if breakevenTicks != 0 {
		abs := ticksGained
		if abs < 0 {
			abs = -abs
		}
		if abs <= breakevenTicks {
			return types.OutcomeBreakeven
		}
	}
	switch {
	case pnlCents > 0:
		return types.OutcomeWin
	case pnlCents < 0:
		return types.OutcomeLoss
	default:
		return types.OutcomeBreakeven
	}
}

// RMultiple expresses a P&L as a multiple of the risk taken.
// Returns 0 when no risk was recorded.
func RMultiple(pnlCents, riskAmountCents int64) float64 {
	if riskAmountCents == 0 {
		return 0
	}
	return float64(pnlCents) / float64(riskAmountCents)
}

// DrawdownPercent is the percentage decline of equity from its peak,
// on a 0-100 scale. Returns 0 when the peak is not positive.
func DrawdownPercent(equityCents, peakCents int64) float64 {
	if peakCents <= 0 {
		return 0
	}
	return float64(peakCents-equityCents) / float64(peakCents) * 100
}

// ProfitFactor is gross profit divided by gross loss (both as positive
// magnitudes). All-profit runs return +Inf; an empty run returns 0.
func ProfitFactor(grossProfitCents, grossLossCents int64) float64 {
	if grossLossCents == 0 {
		if grossProfitCents > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return float64(grossProfitCents) / float64(grossLossCents)
}

// WinRate is wins over total on a 0-100 scale. Returns 0 for an empty total.
func WinRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total) * 100
}
