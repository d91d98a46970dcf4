package simulation

import (
	"fmt"
	"math"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// EngineKind selects which simulation engine a Params value drives.
type EngineKind string

const (
	EngineSimple   EngineKind = "simple"
	EngineAdvanced EngineKind = "advanced"
)

// Params is the tagged union of engine configurations: exactly one of
// Simple or Advanced must be set.
type Params struct {
	Simple   *SimpleParams   `json:"simple,omitempty" yaml:"simple,omitempty"`
	Advanced *AdvancedParams `json:"advanced,omitempty" yaml:"advanced,omitempty"`
}

// Kind returns which engine the params select.
func (p *Params) Kind() EngineKind {
	if p.Advanced != nil {
		return EngineAdvanced
	}
	return EngineSimple
}

// Validate rejects malformed configuration up front; the per-trade walk
// itself never fails.
func (p *Params) Validate() error {
	if (p.Simple == nil) == (p.Advanced == nil) {
		return fmt.Errorf("params: exactly one of simple or advanced must be set")
	}
	if p.Simple != nil {
		return p.Simple.Validate()
	}
	return p.Advanced.Validate()
}

// SimpleParams drives the percent-of-balance engine. Percentages are on a
// 0-100 scale; a zero percentage or count disables the corresponding limit.
type SimpleParams struct {
	BalanceCents              int64   `json:"balance_cents" yaml:"balance_cents"`
	RiskPerTradePercent       float64 `json:"risk_per_trade_percent" yaml:"risk_per_trade_percent"`
	DailyLossPercent          float64 `json:"daily_loss_percent" yaml:"daily_loss_percent"`
	WeeklyLossPercent         float64 `json:"weekly_loss_percent" yaml:"weekly_loss_percent"`
	MonthlyLossPercent        float64 `json:"monthly_loss_percent" yaml:"monthly_loss_percent"`
	DailyProfitTargetPercent  float64 `json:"daily_profit_target_percent" yaml:"daily_profit_target_percent"`
	MaxDailyTrades            int     `json:"max_daily_trades" yaml:"max_daily_trades"`
	MaxConsecutiveLosses      int     `json:"max_consecutive_losses" yaml:"max_consecutive_losses"`
	ReduceRiskAfterLoss       bool    `json:"reduce_risk_after_loss" yaml:"reduce_risk_after_loss"`
	RiskReductionFactor       float64 `json:"risk_reduction_factor" yaml:"risk_reduction_factor"`
	IncreaseRiskAfterWin      bool    `json:"increase_risk_after_win" yaml:"increase_risk_after_win"`
	ProfitReinvestmentPercent float64 `json:"profit_reinvestment_percent" yaml:"profit_reinvestment_percent"`
}

// Validate checks the simple engine configuration.
func (p *SimpleParams) Validate() error {
	if p.BalanceCents <= 0 {
		return fmt.Errorf("simple params: balance must be positive, got %d", p.BalanceCents)
	}
	if p.RiskPerTradePercent <= 0 {
		return fmt.Errorf("simple params: risk per trade percent must be positive, got %v", p.RiskPerTradePercent)
	}
	if p.ReduceRiskAfterLoss && (p.RiskReductionFactor <= 0 || p.RiskReductionFactor >= 1) {
		return fmt.Errorf("simple params: risk reduction factor must be in (0, 1), got %v", p.RiskReductionFactor)
	}
	if p.IncreaseRiskAfterWin && p.ProfitReinvestmentPercent <= 0 {
		return fmt.Errorf("simple params: profit reinvestment percent must be positive, got %v", p.ProfitReinvestmentPercent)
	}
	for name, v := range map[string]float64{
		"daily loss":          p.DailyLossPercent,
		"weekly loss":         p.WeeklyLossPercent,
		"monthly loss":        p.MonthlyLossPercent,
		"daily profit target": p.DailyProfitTargetPercent,
	} {
		if v < 0 {
			return fmt.Errorf("simple params: %s percent must not be negative, got %v", name, v)
		}
	}
	return nil
}

// AdvancedParams drives the decision-tree engine. Limits are absolute cents;
// zero disables a limit. The decision tree's own cascading limits take
// precedence over the params-level weekly/monthly ceilings when both are set.
type AdvancedParams struct {
	BalanceCents           int64              `json:"balance_cents" yaml:"balance_cents"`
	DecisionTree           DecisionTreeConfig `json:"decision_tree" yaml:"decision_tree"`
	DailyLossCents         int64              `json:"daily_loss_cents" yaml:"daily_loss_cents"`
	DailyProfitTargetCents int64              `json:"daily_profit_target_cents" yaml:"daily_profit_target_cents"`
	WeeklyLossCents        int64              `json:"weekly_loss_cents" yaml:"weekly_loss_cents"`
	MonthlyLossCents       int64              `json:"monthly_loss_cents" yaml:"monthly_loss_cents"`
}

// Validate checks the advanced engine configuration.
func (p *AdvancedParams) Validate() error {
	if p.BalanceCents <= 0 {
		return fmt.Errorf("advanced params: balance must be positive, got %d", p.BalanceCents)
	}
	for name, v := range map[string]int64{
		"daily loss":          p.DailyLossCents,
		"daily profit target": p.DailyProfitTargetCents,
		"weekly loss":         p.WeeklyLossCents,
		"monthly loss":        p.MonthlyLossCents,
	} {
		if v < 0 {
			return fmt.Errorf("advanced params: %s cents must not be negative, got %d", name, v)
		}
	}
	return p.DecisionTree.Validate()
}

// weeklyLimitCents resolves the effective weekly loss ceiling.
func (p *AdvancedParams) weeklyLimitCents() int64 {
	if cl := p.DecisionTree.CascadingLimits; cl != nil && cl.WeeklyLossCents > 0 {
		return cl.WeeklyLossCents
	}
	return p.WeeklyLossCents
}

// monthlyLimitCents resolves the effective monthly loss ceiling.
func (p *AdvancedParams) monthlyLimitCents() int64 {
	if cl := p.DecisionTree.CascadingLimits; cl != nil && cl.MonthlyLossCents > 0 {
		return cl.MonthlyLossCents
	}
	return p.MonthlyLossCents
}

// Run dispatches to the engine selected by the params. Callers are expected
// to have validated the params; an invalid union falls back to an empty run.
func Run(trades []types.HistoricalTrade, p Params) *types.SimulationResult {
	switch p.Kind() {
	case EngineAdvanced:
		return RunAdvanced(trades, *p.Advanced)
	default:
		if p.Simple == nil {
			return buildResult(nil, nil, 0, nil)
		}
		return RunSimple(trades, *p.Simple)
	}
}

// percentOf discretizes pct% of a cent amount to whole cents.
func percentOf(cents int64, pct float64) int64 {
	return int64(math.Round(float64(cents) * pct / 100))
}
