package simulation

import (
	"fmt"
	"time"

	"github.com/ducln05/futures-risk-replay/internal/risk"
	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// advancedState is the decision-tree engine's running state, threaded by
// value through the trade walk. The day-phase machine (base, loss recovery,
// gain mode) is terminal per day and resets every new calendar day.
type advancedState struct {
	balanceCents int64
	peakCents    int64

	dayKey   string
	weekKey  string
	monthKey string

	dayPnlCents   int64
	weekPnlCents  int64
	monthPnlCents int64

	dayTradeNum   int
	phase         types.DayPhase
	recoveryIdx   int
	targetHit     bool
	prevRiskCents int64
}

// RunAdvanced replays the trades under a decision-tree risk plan: a fixed
// base trade opens each day, losses walk an ordered recovery sequence and
// wins switch the day into gain mode, with cascading daily/weekly/monthly
// ceilings checked before any phase logic.
func RunAdvanced(trades []types.HistoricalTrade, p AdvancedParams) *types.SimulationResult {
	st := advancedState{
		balanceCents: p.BalanceCents,
		peakCents:    p.BalanceCents,
		phase:        types.PhaseBase,
	}
	rows := make([]types.SimulatedTrade, 0, len(trades))
	daysHitTarget := make(map[string]bool)

	for i := range trades {
		t := &trades[i]
		st = st.rollPeriods(t.EntryDate)

		var row types.SimulatedTrade
		st, row = advancedStep(st, p, t, i)
		rows = append(rows, row)

		if st.targetHit {
			daysHitTarget[st.dayKey] = true
		}
	}

	return buildResult(trades, rows, p.BalanceCents, daysHitTarget)
}

func (s advancedState) rollPeriods(ts time.Time) advancedState {
	if dk := dayKey(ts); dk != s.dayKey {
		s.dayKey = dk
		s.dayPnlCents = 0
		s.dayTradeNum = 0
		s.phase = types.PhaseBase
		s.recoveryIdx = 0
		s.targetHit = false
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

// advancedSkipStatus evaluates the cascading limits, in order, before any
// phase logic runs.
func (s advancedState) advancedSkipStatus(p AdvancedParams, t *types.HistoricalTrade) (types.TradeStatus, string) {
	switch {
	case !t.HasStop():
		return types.StatusSkippedNoSL, "No stop loss"
	case p.DailyLossCents > 0 && s.dayPnlCents <= -p.DailyLossCents:
		return types.StatusSkippedDailyLimit, "Daily loss limit reached"
	case s.targetHit || (p.DailyProfitTargetCents > 0 && s.dayPnlCents >= p.DailyProfitTargetCents):
		return types.StatusSkippedDailyTarget, "Daily profit target reached"
	case p.weeklyLimitCents() > 0 && s.weekPnlCents <= -p.weeklyLimitCents():
		return types.StatusSkippedWeeklyLimit, "Weekly loss limit reached"
	case p.monthlyLimitCents() > 0 && s.monthPnlCents <= -p.monthlyLimitCents():
		return types.StatusSkippedMonthlyLimit, "Monthly loss limit reached"
	}

	lr := p.DecisionTree.LossRecovery
	if s.phase == types.PhaseLossRecovery && lr != nil &&
		s.recoveryIdx >= len(lr.Sequence) && lr.StopAfterSequence {
		return types.StatusSkippedRecoveryDone, "Recovery sequence complete"
	}
	return types.StatusExecuted, ""
}

// phaseRisk resolves the next trade's risk budget, contract cap, provenance
// string, and the recovery step index in play (nil outside loss recovery).
func (s advancedState) phaseRisk(p AdvancedParams) (budget int64, maxContracts int, reason string, stepIdx *int) {
	dt := &p.DecisionTree
	maxContracts = dt.BaseTrade.MaxContracts

	switch s.phase {
	case types.PhaseLossRecovery:
		lr := dt.LossRecovery
		idx := s.recoveryIdx
		if idx >= len(lr.Sequence) {
			// Only reachable with ExecuteAllRegardless: keep trading on the
			// final step's terms.
			idx = len(lr.Sequence) - 1
		}
		step := lr.Sequence[idx]
		budget = step.stepRiskCents(dt.BaseTrade.RiskCents, s.prevRiskCents)
		if step.MaxContractsOverride > 0 {
			maxContracts = step.MaxContractsOverride
		}
		reason = fmt.Sprintf("Recovery #%d", idx+1)
		stepIdx = &idx

	case types.PhaseGainMode:
		gains := s.dayPnlCents
		if gains < 0 {
			gains = 0
		}
		budget = percentOf(gains, dt.GainMode.ReinvestmentPercent)
		if budget > gains {
			budget = gains
		}
		reason = "Gain reinvest"

	default: // base
		budget = dt.BaseTrade.RiskCents
		reason = fmt.Sprintf("T%d base risk", s.dayTradeNum+1)
	}

	if ec := dt.ExecutionConstraints; ec != nil && ec.MaxContracts > 0 {
		if maxContracts == 0 || ec.MaxContracts < maxContracts {
			maxContracts = ec.MaxContracts
		}
	}
	return budget, maxContracts, reason, stepIdx
}

// advance applies the day-phase transition for an executed trade's outcome.
func (s advancedState) advance(p AdvancedParams, phaseAtExec types.DayPhase, outcome types.Outcome) advancedState {
	dt := &p.DecisionTree
	lr := dt.LossRecovery

	onWin := func(s advancedState) advancedState {
		if dt.GainMode.Kind == GainSingleTarget {
			// The first win satisfies the day's target outright.
			s.targetHit = true
		} else {
			s.phase = types.PhaseGainMode
		}
		return s
	}

	switch phaseAtExec {
	case types.PhaseBase:
		switch outcome {
		case types.OutcomeWin:
			s = onWin(s)
		case types.OutcomeLoss:
			if lr != nil {
				s.phase = types.PhaseLossRecovery
				s.recoveryIdx = 0
			}
		}
		// Breakeven leaves the base phase untouched.

	case types.PhaseLossRecovery:
		switch {
		case lr.ExecuteAllRegardless:
			s.recoveryIdx++
		case outcome == types.OutcomeLoss:
			s.recoveryIdx++
		case outcome == types.OutcomeWin:
			s = onWin(s)
		}

	case types.PhaseGainMode:
		if outcome == types.OutcomeLoss && dt.GainMode.StopOnFirstLoss {
			// The loss itself executes; the rest of the day is done.
			s.targetHit = true
		}
	}

	if dt.GainMode.DailyTargetCents > 0 && s.dayPnlCents >= dt.GainMode.DailyTargetCents {
		s.targetHit = true
	}
	if p.DailyProfitTargetCents > 0 && s.dayPnlCents >= p.DailyProfitTargetCents {
		s.targetHit = true
	}
	return s
}

// advancedStep simulates one trade under the decision tree.
func advancedStep(s advancedState, p AdvancedParams, t *types.HistoricalTrade, index int) (advancedState, types.SimulatedTrade) {
	row := types.SimulatedTrade{Index: index, DayPhase: s.phase}

	status, reason := s.advancedSkipStatus(p, t)
	if status != types.StatusExecuted {
		row.Status = status
		row.RiskReason = reason
		row.DrawdownPercent = risk.DrawdownPercent(s.balanceCents, s.peakCents)
		return s, row
	}

	budget, maxContracts, reason, stepIdx := s.phaseRisk(p)
	sized := risk.SizeTrade(t, budget, maxContracts)
	pnl := risk.SimulatedPnlCents(t, sized.Contracts)
	outcome := risk.DetermineOutcome(pnl, 0, 0)
	phaseAtExec := s.phase

	s.balanceCents += pnl
	if s.balanceCents > s.peakCents {
		s.peakCents = s.balanceCents
	}
	s.dayPnlCents += pnl
	s.weekPnlCents += pnl
	s.monthPnlCents += pnl
	s.dayTradeNum++
	s.prevRiskCents = sized.ActualRiskCents

	s = s.advance(p, phaseAtExec, outcome)

	row.Status = types.StatusExecuted
	row.SimulatedPositionSize = sized.Contracts
	row.RiskAmountCents = sized.ActualRiskCents
	row.RiskReason = reason
	row.SimulatedPnlCents = pnl
	row.SimulatedRMultiple = risk.RMultiple(pnl, sized.ActualRiskCents)
	row.DrawdownPercent = risk.DrawdownPercent(s.balanceCents, s.peakCents)
	row.DayPhase = phaseAtExec
	row.RecoveryStepIndex = stepIdx
	row.DayTradeNumber = s.dayTradeNum
	return s, row
}
