package types

import "time"

// TradeStatus is the final disposition of one simulated trade: executed, or
// one of the seven mutually exclusive skip reasons. Skip checks are resolved
// in a fixed priority order by the engines; the first match wins.
type TradeStatus string

const (
	StatusExecuted            TradeStatus = "executed"
	StatusSkippedNoSL         TradeStatus = "skipped_no_sl"
	StatusSkippedDailyLimit   TradeStatus = "skipped_daily_limit"
	StatusSkippedDailyTarget  TradeStatus = "skipped_daily_target"
	StatusSkippedMaxTrades    TradeStatus = "skipped_max_trades"
	StatusSkippedConsecLoss   TradeStatus = "skipped_consecutive_loss"
	StatusSkippedWeeklyLimit  TradeStatus = "skipped_weekly_limit"
	StatusSkippedMonthlyLimit TradeStatus = "skipped_monthly_limit"
	StatusSkippedRecoveryDone TradeStatus = "skipped_recovery_complete"
)

// SkipStatuses lists every skip status in summary-reporting order.
var SkipStatuses = []TradeStatus{
	StatusSkippedNoSL,
	StatusSkippedDailyLimit,
	StatusSkippedDailyTarget,
	StatusSkippedMaxTrades,
	StatusSkippedConsecLoss,
	StatusSkippedWeeklyLimit,
	StatusSkippedMonthlyLimit,
	StatusSkippedRecoveryDone,
}

// DayPhase is the advanced engine's per-day state machine position.
type DayPhase string

const (
	PhaseBase         DayPhase = "base"
	PhaseLossRecovery DayPhase = "loss_recovery"
	PhaseGainMode     DayPhase = "gain_mode"
)

// SimulatedTrade is one output row per input trade.
// DayPhase, RecoveryStepIndex and DayTradeNumber are only populated by the
// advanced engine; RecoveryStepIndex is nil outside loss recovery.
type SimulatedTrade struct {
	Index                 int         `json:"index"`
	Status                TradeStatus `json:"status"`
	SimulatedPositionSize int         `json:"simulated_position_size"`
	RiskAmountCents       int64       `json:"risk_amount_cents"`
	RiskReason            string      `json:"risk_reason"`
	SimulatedPnlCents     int64       `json:"simulated_pnl_cents"`
	SimulatedRMultiple    float64     `json:"simulated_r_multiple"`
	DrawdownPercent       float64     `json:"drawdown_percent"`
	DayPhase              DayPhase    `json:"day_phase,omitempty"`
	RecoveryStepIndex     *int        `json:"recovery_step_index,omitempty"`
	DayTradeNumber        int         `json:"day_trade_number,omitempty"`
}

// Executed reports whether the trade was executed rather than skipped.
func (t *SimulatedTrade) Executed() bool {
	return t.Status == StatusExecuted
}

// EquityCurvePoint tracks original vs simulated equity after each input
// trade. The curve always has exactly one point per input trade.
type EquityCurvePoint struct {
	TradeIndex           int    `json:"trade_index"`
	DayKey               string `json:"day_key"`
	OriginalEquityCents  int64  `json:"original_equity_cents"`
	SimulatedEquityCents int64  `json:"simulated_equity_cents"`
}

// DayTrace groups simulated trades by calendar day.
type DayTrace struct {
	DayKey            string `json:"day_key"`
	SimulatedPnlCents int64  `json:"simulated_pnl_cents"`
	OriginalPnlCents  int64  `json:"original_pnl_cents"`
	ExecutedCount     int    `json:"executed_count"`
	SkippedCount      int    `json:"skipped_count"`
	HitTarget         bool   `json:"hit_target"`
}

// WeekTrace groups simulated trades by ISO week (Monday start).
type WeekTrace struct {
	WeekKey           string `json:"week_key"`
	SimulatedPnlCents int64  `json:"simulated_pnl_cents"`
	OriginalPnlCents  int64  `json:"original_pnl_cents"`
	ExecutedCount     int    `json:"executed_count"`
	SkippedCount      int    `json:"skipped_count"`
}

// SimulationSummary aggregates a whole run. Win rates are on a 0-100 scale.
// The per-status skip counts plus ExecutedTrades always sum to TotalTrades.
type SimulationSummary struct {
	TotalTrades           int                 `json:"total_trades"`
	ExecutedTrades        int                 `json:"executed_trades"`
	SkippedByReason       map[TradeStatus]int `json:"skipped_by_reason"`
	OriginalWinRate       float64             `json:"original_win_rate"`
	SimulatedWinRate      float64             `json:"simulated_win_rate"`
	OriginalTotalPnlCents int64               `json:"original_total_pnl_cents"`
	SimulatedTotalPnl     int64               `json:"simulated_total_pnl_cents"`
	PnlDeltaCents         int64               `json:"pnl_delta_cents"`
	DaysHitTarget         int                 `json:"days_hit_target"`
}

// DateRange is the closed interval covered by the input trades.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// SimulationResult is the complete output of one simulation run.
type SimulationResult struct {
	Trades      []SimulatedTrade   `json:"trades"`
	EquityCurve []EquityCurvePoint `json:"equity_curve"`
	Days        []DayTrace         `json:"days"`
	Weeks       []WeekTrace        `json:"weeks"`
	Summary     SimulationSummary  `json:"summary"`
	DateRange   DateRange          `json:"date_range"`
}
