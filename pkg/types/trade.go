package types

import "time"

// Direction is the side of a futures trade.
type Direction string

const (
	DirectionLong  Direction = "long"
	DirectionShort Direction = "short"
)

// Outcome classifies a trade's realized result.
type Outcome string

const (
	OutcomeWin       Outcome = "win"
	OutcomeLoss      Outcome = "loss"
	OutcomeBreakeven Outcome = "breakeven"
)

// HistoricalTrade is one immutable input record from the trader's journal.
// All monetary fields are integer cents; prices and tick size are raw
// exchange price units. A nil StopLoss, or a stop equal to the entry price,
// means the trade carried no measurable risk and cannot be resized.
type HistoricalTrade struct {
	Asset             string    `json:"asset"`
	Direction         Direction `json:"direction"`
	EntryDate         time.Time `json:"entry_date"`
	EntryPrice        float64   `json:"entry_price"`
	ExitPrice         float64   `json:"exit_price"`
	StopLoss          *float64  `json:"stop_loss,omitempty"`
	PositionSize      int       `json:"position_size"`
	PnlCents          int64     `json:"pnl_cents"`
	TickSize          float64   `json:"tick_size"`
	TickValueCents    int64     `json:"tick_value_cents"`
	CommissionCents   int64     `json:"commission_cents"` // per execution
	FeesCents         int64     `json:"fees_cents"`       // per execution
	ContractsExecuted int       `json:"contracts_executed"`
}

// HasStop reports whether the trade carries a usable stop loss.
// A stop exactly at the entry price is treated the same as no stop at all.
func (t *HistoricalTrade) HasStop() bool {
	return t.StopLoss != nil && *t.StopLoss != t.EntryPrice
}

// StopPrice returns the stop loss price, or 0 when none is set.
func (t *HistoricalTrade) StopPrice() float64 {
	if t.StopLoss == nil {
		return 0
	}
	return *t.StopLoss
}
