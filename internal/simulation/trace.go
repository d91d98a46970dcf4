package simulation

import (
	"github.com/ducln05/futures-risk-replay/internal/risk"
	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// buildResult assembles the full result graph in one pass over the per-trade
// rows: the equity curve (always one point per input trade), day and week
// traces ordered by first occurrence, the run summary and the date range.
func buildResult(trades []types.HistoricalTrade, rows []types.SimulatedTrade, startBalanceCents int64, daysHitTarget map[string]bool) *types.SimulationResult {
	result := &types.SimulationResult{
		Trades:      rows,
		EquityCurve: make([]types.EquityCurvePoint, 0, len(trades)),
		Days:        []types.DayTrace{},
		Weeks:       []types.WeekTrace{},
	}
	if result.Trades == nil {
		result.Trades = []types.SimulatedTrade{}
	}

	summary := types.SimulationSummary{
		TotalTrades:     len(trades),
		SkippedByReason: make(map[types.TradeStatus]int, len(types.SkipStatuses)),
	}
	for _, status := range types.SkipStatuses {
		summary.SkippedByReason[status] = 0
	}

	dayIdx := make(map[string]int)
	weekIdx := make(map[string]int)

	origEquity := startBalanceCents
	simEquity := startBalanceCents
	origWins, simWins := 0, 0

	for i := range trades {
		t := &trades[i]
		row := &rows[i]

		origEquity += t.PnlCents
		simEquity += row.SimulatedPnlCents
		dk := dayKey(t.EntryDate)
		wk := weekKey(t.EntryDate)

		result.EquityCurve = append(result.EquityCurve, types.EquityCurvePoint{
			TradeIndex:           i,
			DayKey:               dk,
			OriginalEquityCents:  origEquity,
			SimulatedEquityCents: simEquity,
		})

		di, ok := dayIdx[dk]
		if !ok {
			di = len(result.Days)
			dayIdx[dk] = di
			result.Days = append(result.Days, types.DayTrace{DayKey: dk, HitTarget: daysHitTarget[dk]})
		}
		wi, ok := weekIdx[wk]
		if !ok {
			wi = len(result.Weeks)
			weekIdx[wk] = wi
			result.Weeks = append(result.Weeks, types.WeekTrace{WeekKey: wk})
		}

		day := &result.Days[di]
		week := &result.Weeks[wi]
		day.OriginalPnlCents += t.PnlCents
		week.OriginalPnlCents += t.PnlCents
		day.SimulatedPnlCents += row.SimulatedPnlCents
		week.SimulatedPnlCents += row.SimulatedPnlCents

		summary.OriginalTotalPnlCents += t.PnlCents
		summary.SimulatedTotalPnl += row.SimulatedPnlCents
		if t.PnlCents > 0 {
			origWins++
		}

		if row.Executed() {
			day.ExecutedCount++
			week.ExecutedCount++
			summary.ExecutedTrades++
			if row.SimulatedPnlCents > 0 {
				simWins++
			}
		} else {
			day.SkippedCount++
			week.SkippedCount++
			summary.SkippedByReason[row.Status]++
		}
	}

	for dk, hit := range daysHitTarget {
		if hit {
			if di, ok := dayIdx[dk]; ok {
				result.Days[di].HitTarget = true
			}
			summary.DaysHitTarget++
		}
	}

	summary.OriginalWinRate = risk.WinRate(origWins, summary.TotalTrades)
	summary.SimulatedWinRate = risk.WinRate(simWins, summary.ExecutedTrades)
	summary.PnlDeltaCents = summary.SimulatedTotalPnl - summary.OriginalTotalPnlCents
	result.Summary = summary

	if len(trades) > 0 {
		result.DateRange = types.DateRange{
			From: trades[0].EntryDate,
			To:   trades[len(trades)-1].EntryDate,
		}
	}
	return result
}
