package risk

import (
	"math"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// SizingInput describes one position-sizing request. The budget is in cents,
// prices in raw price units. A nil stop loss, or a stop equal to the entry
// price, means the trade has no measurable risk. MaxContracts of 0 means
// uncapped.
type SizingInput struct {
	RiskBudgetCents int64
	EntryPrice      float64
	StopLoss        *float64
	TickSize        float64
	TickValueCents  int64
	MaxContracts    int
}

// SizingResult is the outcome of a sizing calculation. ActualRiskCents is
// Contracts * RiskPerContractCents and never exceeds the requested budget,
// except when the minimum-contract rule forces a single contract.
type SizingResult struct {
	Contracts            int
	TicksAtRisk          int64
	RiskPerContractCents int64
	ActualRiskCents      int64
}

// CalculatePositionSize converts a risk budget and a stop distance into a
// whole number of contracts. Degenerate inputs (no stop, zero tick size or
// tick value, zero stop distance) yield an all-zero result; the function
// never fails.
//
// If the budget is positive but rounds down to zero contracts, one contract
// is forced: a sizeable trade is never silently refused, even though the
// actual risk then exceeds the budget.
func CalculatePositionSize(in SizingInput) SizingResult {
	if in.StopLoss == nil || *in.StopLoss == in.EntryPrice || in.TickSize <= 0 {
		return SizingResult{}
	}

	ticksAtRisk := int64(math.Round(math.Abs(in.EntryPrice-*in.StopLoss) / in.TickSize))
	if ticksAtRisk == 0 || in.TickValueCents == 0 {
		return SizingResult{}
	}

	riskPerContract := ticksAtRisk * in.TickValueCents

	var contracts int64
	if in.RiskBudgetCents > 0 {
		contracts = in.RiskBudgetCents / riskPerContract
		if contracts == 0 {
			contracts = 1
		}
	}

	if in.MaxContracts > 0 && contracts > int64(in.MaxContracts) {
		contracts = int64(in.MaxContracts)
	}

	return SizingResult{
		Contracts:            int(contracts),
		TicksAtRisk:          ticksAtRisk,
		RiskPerContractCents: riskPerContract,
		ActualRiskCents:      contracts * riskPerContract,
	}
}

// SizeTrade sizes a historical trade against a risk budget, using the
// trade's own tick parameters and stop distance.
func SizeTrade(t *types.HistoricalTrade, riskBudgetCents int64, maxContracts int) SizingResult {
	return CalculatePositionSize(SizingInput{
		RiskBudgetCents: riskBudgetCents,
		EntryPrice:      t.EntryPrice,
		StopLoss:        t.StopLoss,
		TickSize:        t.TickSize,
		TickValueCents:  t.TickValueCents,
		MaxContracts:    maxContracts,
	})
}
