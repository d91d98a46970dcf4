package risk

import (
	"math"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// PnlInput describes one P&L calculation. Monetary fields (tick value,
// commission, fees) are in whatever currency unit the caller works in; the
// engines pass cents so the arithmetic stays exact.
//
// ContractsExecuted of 0 defaults to PositionSize * 2, modeling one entry
// and one exit fill per contract.
type PnlInput struct {
	EntryPrice        float64
	ExitPrice         float64
	PositionSize      int
	Direction         types.Direction
	TickSize          float64
	TickValue         float64
	Commission        float64 // per execution
	Fees              float64 // per execution
	ContractsExecuted int
}

// PnlResult carries gross and net P&L for a price move. With zero costs,
// NetPnl equals GrossPnl.
type PnlResult struct {
	TicksGained int64
	GrossPnl    float64
	TotalCosts  float64
	NetPnl      float64
}

// CalculatePnl computes gross and net profit for a completed price move at a
// given position size. The move is discretized to whole ticks (rounded to
// nearest) and signed by direction: a short gains when price falls.
func CalculatePnl(in PnlInput) PnlResult {
	var ticksGained int64
	if in.TickSize > 0 {
		move := (in.ExitPrice - in.EntryPrice) / in.TickSize
		if in.Direction == types.DirectionShort {
			move = -move
		}
		ticksGained = int64(math.Round(move))
	}

	executed := in.ContractsExecuted
	if executed == 0 {
		executed = in.PositionSize * 2
	}

	gross := float64(ticksGained) * in.TickValue * float64(in.PositionSize)
	costs := (in.Commission + in.Fees) * float64(executed)

	return PnlResult{
		TicksGained: ticksGained,
		GrossPnl:    gross,
		TotalCosts:  costs,
		NetPnl:      gross - costs,
	}
}

// SimulatedPnlCents replays a historical trade's price action at a new
// position size and returns the net P&L in cents. A zero size yields zero:
// nothing was at stake, nothing was paid.
func SimulatedPnlCents(t *types.HistoricalTrade, size int) int64 {
	if size == 0 {
		return 0
	}
	res := CalculatePnl(PnlInput{
		EntryPrice:        t.EntryPrice,
		ExitPrice:         t.ExitPrice,
		PositionSize:      size,
		Direction:         t.Direction,
		TickSize:          t.TickSize,
		TickValue:         float64(t.TickValueCents),
		Commission:        float64(t.CommissionCents),
		Fees:              float64(t.FeesCents),
		ContractsExecuted: size * 2,
	})
	return int64(math.Round(res.NetPnl))
}

// TicksGained returns the signed whole-tick move of a historical trade.
func TicksGained(t *types.HistoricalTrade) int64 {
	if t.TickSize <= 0 {
		return 0
	}
	move := (t.ExitPrice - t.EntryPrice) / t.TickSize
	if t.Direction == types.DirectionShort {
		move = -move
	}
	return int64(math.Round(move))
}
