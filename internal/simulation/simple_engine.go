package simulation

import (
	"fmt"
	"math"
	"time"

	"github.com/ducln05/futures-risk-replay/internal/risk"
	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// simpleState is the simple engine's running state. It is threaded through
// the trade walk by value: each step consumes one state and produces the
// next, so a run can be replayed from any checkpoint.
type simpleState struct {
	balanceCents int64
	peakCents    int64

	dayKey   string
	weekKey  string
	monthKey string

	dayPnlCents   int64
	weekPnlCents  int64
	monthPnlCents int64

	dayExecuted int
	lossStreak  int
	prevWon     bool
	prevWinPnl  int64
}

// RunSimple replays the trades under a percent-of-balance risk policy with
// streak-based risk adjustment and a four-tier loss-limit cascade. Loss and
// target thresholds are fixed fractions of the starting balance; per-trade
// risk compounds off the current simulated balance.
func RunSimple(trades []types.HistoricalTrade, p SimpleParams) *types.SimulationResult {
	limits := simpleLimits{
		dailyLoss:   percentOf(p.BalanceCents, p.DailyLossPercent),
		weeklyLoss:  percentOf(p.BalanceCents, p.WeeklyLossPercent),
		monthlyLoss: percentOf(p.BalanceCents, p.MonthlyLossPercent),
		dailyTarget: percentOf(p.BalanceCents, p.DailyProfitTargetPercent),
	}

	st := simpleState{balanceCents: p.BalanceCents, peakCents: p.BalanceCents}
	rows := make([]types.SimulatedTrade, 0, len(trades))
	daysHitTarget := make(map[string]bool)

	for i := range trades {
		t := &trades[i]
		st = st.rollPeriods(t.EntryDate)

		var row types.SimulatedTrade
		st, row = simpleStep(st, p, limits, t, i)
		rows = append(rows, row)

		if limits.dailyTarget > 0 && st.dayPnlCents >= limits.dailyTarget {
			daysHitTarget[st.dayKey] = true
		}
	}

	return buildResult(trades, rows, p.BalanceCents, daysHitTarget)
}

type simpleLimits struct {
	dailyLoss   int64
	weeklyLoss  int64
	monthlyLoss int64
	dailyTarget int64
}

// rollPeriods resets period counters the first time a trade in a new
// calendar day, ISO week or calendar month is processed. The consecutive
// loss streak is day-scoped.
func (s simpleState) rollPeriods(ts time.Time) simpleState {
	if dk := dayKey(ts); dk != s.dayKey {
		s.dayKey = dk
		s.dayPnlCents = 0
		s.dayExecuted = 0
		s.lossStreak = 0
	}
	if wk := weekKey(ts); wk != s.weekKey {
		s.weekKey = wk
		s.weekPnlCents = 0
	}
	if mk := monthKey(ts); mk != s.monthKey {
		s.monthKey = mk
		s.monthPnlCents = 0
	}
	return s
}

// simpleSkipStatus resolves the skip cascade in its fixed priority order;
// the first match wins and the checks are mutually exclusive.
func (s simpleState) simpleSkipStatus(p SimpleParams, limits simpleLimits, t *types.HistoricalTrade) (types.TradeStatus, string) {
	switch {
	case !t.HasStop():
		return types.StatusSkippedNoSL, "No stop loss"
	case limits.dailyLoss > 0 && s.dayPnlCents <= -limits.dailyLoss:
		return types.StatusSkippedDailyLimit, "Daily loss limit reached"
	case limits.dailyTarget > 0 && s.dayPnlCents >= limits.dailyTarget:
		return types.StatusSkippedDailyTarget, "Daily profit target reached"
	case p.MaxDailyTrades > 0 && s.dayExecuted >= p.MaxDailyTrades:
		return types.StatusSkippedMaxTrades, "Max daily trades reached"
	case p.MaxConsecutiveLosses > 0 && s.lossStreak >= p.MaxConsecutiveLosses:
		return types.StatusSkippedConsecLoss, "Max consecutive losses reached"
	case limits.monthlyLoss > 0 && s.monthPnlCents <= -limits.monthlyLoss:
		return types.StatusSkippedMonthlyLimit, "Monthly loss limit reached"
	case limits.weeklyLoss > 0 && s.weekPnlCents <= -limits.weeklyLoss:
		return types.StatusSkippedWeeklyLimit, "Weekly loss limit reached"
	}
	return types.StatusExecuted, ""
}

// riskBudget determines the cent budget for the next trade and the
// provenance of that number.
func (s simpleState) riskBudget(p SimpleParams) (int64, string) {
	base := percentOf(s.balanceCents, p.RiskPerTradePercent)
	switch {
	case p.ReduceRiskAfterLoss && s.lossStreak > 0:
		factor := math.Pow(p.RiskReductionFactor, float64(s.lossStreak))
		return int64(math.Round(float64(base) * factor)), fmt.Sprintf("Reduced risk (streak %d)", s.lossStreak)
	case p.IncreaseRiskAfterWin && s.prevWon:
		return base + percentOf(s.prevWinPnl, p.ProfitReinvestmentPercent), "Win bonus"
	default:
		return base, "Base risk"
	}
}

// simpleStep simulates one trade: resolve the skip cascade, or resize and
// replay the trade's price action at the new position size, then advance
// every counter.
func simpleStep(s simpleState, p SimpleParams, limits simpleLimits, t *types.HistoricalTrade, index int) (simpleState, types.SimulatedTrade) {
	row := types.SimulatedTrade{Index: index}

	status, reason := s.simpleSkipStatus(p, limits, t)
	if status != types.StatusExecuted {
		row.Status = status
		row.RiskReason = reason
		row.DrawdownPercent = risk.DrawdownPercent(s.balanceCents, s.peakCents)
		return s, row
	}

	budget, reason := s.riskBudget(p)
	sized := risk.SizeTrade(t, budget, 0)
	pnl := risk.SimulatedPnlCents(t, sized.Contracts)
	outcome := risk.DetermineOutcome(pnl, 0, 0)

	s.balanceCents += pnl
	if s.balanceCents > s.peakCents {
		s.peakCents = s.balanceCents
	}
	s.dayPnlCents += pnl
	s.weekPnlCents += pnl
	s.monthPnlCents += pnl
	s.dayExecuted++

	if outcome == types.OutcomeLoss {
		s.lossStreak++
	} else {
		s.lossStreak = 0
	}
	s.prevWon = outcome == types.OutcomeWin
	if s.prevWon {
		s.prevWinPnl = pnl
	} else {
		s.prevWinPnl = 0
	}

	row.Status = types.StatusExecuted
	row.SimulatedPositionSize = sized.Contracts
	row.RiskAmountCents = sized.ActualRiskCents
	row.RiskReason = reason
	row.SimulatedPnlCents = pnl
	row.SimulatedRMultiple = risk.RMultiple(pnl, sized.ActualRiskCents)
	row.DrawdownPercent = risk.DrawdownPercent(s.balanceCents, s.peakCents)
	return s, row
}
