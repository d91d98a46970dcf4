package simulation

import (
	"fmt"
	"time"
)

// RiskCalcKind is the closed set of per-step risk calculation variants in a
// loss-recovery sequence.
type RiskCalcKind string

const (
	RiskPercentOfBase  RiskCalcKind = "percent_of_base"
	RiskFixedCents     RiskCalcKind = "fixed_cents"
	RiskSameAsPrevious RiskCalcKind = "same_as_previous"
)

// GainModeKind is the closed set of gain-mode variants.
type GainModeKind string

const (
	GainCompounding  GainModeKind = "compounding"
	GainSingleTarget GainModeKind = "single_target"
)

// DecisionTreeConfig is the advanced engine's declarative risk-management
// plan: the base trade, an optional loss-recovery sequence, the gain-mode
// behavior, cascading weekly/monthly ceilings and execution constraints.
type DecisionTreeConfig struct {
	BaseTrade            BaseTradeConfig       `json:"base_trade" yaml:"base_trade"`
	LossRecovery         *LossRecoveryConfig   `json:"loss_recovery,omitempty" yaml:"loss_recovery,omitempty"`
	GainMode             GainModeConfig        `json:"gain_mode" yaml:"gain_mode"`
	CascadingLimits      *CascadingLimits      `json:"cascading_limits,omitempty" yaml:"cascading_limits,omitempty"`
	ExecutionConstraints *ExecutionConstraints `json:"execution_constraints,omitempty" yaml:"execution_constraints,omitempty"`
}

// BaseTradeConfig sizes the first trade of each day.
type BaseTradeConfig struct {
	RiskCents     int64   `json:"risk_cents" yaml:"risk_cents"`
	MaxContracts  int     `json:"max_contracts" yaml:"max_contracts"`
	MinStopPoints float64 `json:"min_stop_points" yaml:"min_stop_points"`
}

// RecoveryStep is one step of the loss-recovery sequence. Exactly the fields
// matching Kind are consulted; MaxContractsOverride of 0 defers to the base
// trade's cap.
type RecoveryStep struct {
	Kind                 RiskCalcKind `json:"kind" yaml:"kind"`
	PercentOfBase        float64      `json:"percent_of_base,omitempty" yaml:"percent_of_base,omitempty"`
	FixedCents           int64        `json:"fixed_cents,omitempty" yaml:"fixed_cents,omitempty"`
	MaxContractsOverride int          `json:"max_contracts_override,omitempty" yaml:"max_contracts_override,omitempty"`
}

// LossRecoveryConfig is the ordered recovery sequence entered after a losing
// base trade. With ExecuteAllRegardless the step index advances after every
// executed recovery trade and wins do not exit the sequence; otherwise the
// index advances only on losses and a win switches the day to gain mode.
// StopAfterSequence skips the rest of the day once the sequence is spent.
type LossRecoveryConfig struct {
	Sequence             []RecoveryStep `json:"sequence" yaml:"sequence"`
	ExecuteAllRegardless bool           `json:"execute_all_regardless" yaml:"execute_all_regardless"`
	StopAfterSequence    bool           `json:"stop_after_sequence" yaml:"stop_after_sequence"`
}

// GainModeConfig selects how winnings are handled after a winning base
// trade. Compounding reinvests a percentage of the day's cumulative gains;
// single_target treats the first win as the day's target, full stop.
type GainModeConfig struct {
	Kind                GainModeKind `json:"kind" yaml:"kind"`
	ReinvestmentPercent float64      `json:"reinvestment_percent,omitempty" yaml:"reinvestment_percent,omitempty"`
	StopOnFirstLoss     bool         `json:"stop_on_first_loss,omitempty" yaml:"stop_on_first_loss,omitempty"`
	DailyTargetCents    int64        `json:"daily_target_cents,omitempty" yaml:"daily_target_cents,omitempty"`
}

// CascadingLimits carries the decision tree's own weekly/monthly loss
// ceilings, checked before any phase logic.
type CascadingLimits struct {
	WeeklyLossCents  int64  `json:"weekly_loss_cents" yaml:"weekly_loss_cents"`
	MonthlyLossCents int64  `json:"monthly_loss_cents" yaml:"monthly_loss_cents"`
	StopAction       string `json:"stop_action,omitempty" yaml:"stop_action,omitempty"`
}

// ExecutionConstraints are advisory sizing constraints. MaxContracts caps
// every sized trade; MinStopPoints and the operating-hours window are
// carried and validated but do not gate execution.
type ExecutionConstraints struct {
	MinStopPoints       float64 `json:"min_stop_points,omitempty" yaml:"min_stop_points,omitempty"`
	MaxContracts        int     `json:"max_contracts,omitempty" yaml:"max_contracts,omitempty"`
	OperatingHoursStart string  `json:"operating_hours_start,omitempty" yaml:"operating_hours_start,omitempty"`
	OperatingHoursEnd   string  `json:"operating_hours_end,omitempty" yaml:"operating_hours_end,omitempty"`
}

// Validate rejects malformed decision trees at construction time.
func (c *DecisionTreeConfig) Validate() error {
	if c.BaseTrade.RiskCents <= 0 {
		return fmt.Errorf("decision tree: base trade risk must be positive, got %d", c.BaseTrade.RiskCents)
	}
	if c.BaseTrade.MaxContracts < 0 {
		return fmt.Errorf("decision tree: base trade max contracts must not be negative, got %d", c.BaseTrade.MaxContracts)
	}

	if lr := c.LossRecovery; lr != nil {
		if len(lr.Sequence) == 0 {
			return fmt.Errorf("decision tree: loss recovery sequence must not be empty")
		}
		for i, step := range lr.Sequence {
			if err := step.validate(); err != nil {
				return fmt.Errorf("decision tree: recovery step %d: %w", i, err)
			}
		}
	}

	switch c.GainMode.Kind {
	case GainCompounding:
		if c.GainMode.ReinvestmentPercent <= 0 {
			return fmt.Errorf("decision tree: compounding gain mode requires a positive reinvestment percent")
		}
	case GainSingleTarget:
		// No extra fields required.
	default:
		return fmt.Errorf("decision tree: unknown gain mode %q", c.GainMode.Kind)
	}

	if ec := c.ExecutionConstraints; ec != nil {
		if err := ec.validate(); err != nil {
			return fmt.Errorf("decision tree: execution constraints: %w", err)
		}
	}
	return nil
}

func (s *RecoveryStep) validate() error {
	switch s.Kind {
	case RiskPercentOfBase:
		if s.PercentOfBase <= 0 {
			return fmt.Errorf("percent of base must be positive, got %v", s.PercentOfBase)
		}
	case RiskFixedCents:
		if s.FixedCents <= 0 {
			return fmt.Errorf("fixed cents must be positive, got %d", s.FixedCents)
		}
	case RiskSameAsPrevious:
		// Copies the preceding executed trade's risk; nothing to check.
	default:
		return fmt.Errorf("unknown risk calculation kind %q", s.Kind)
	}
	if s.MaxContractsOverride < 0 {
		return fmt.Errorf("max contracts override must not be negative, got %d", s.MaxContractsOverride)
	}
	return nil
}

func (ec *ExecutionConstraints) validate() error {
	if ec.MaxContracts < 0 {
		return fmt.Errorf("max contracts must not be negative, got %d", ec.MaxContracts)
	}
	for _, hours := range []string{ec.OperatingHoursStart, ec.OperatingHoursEnd} {
		if hours == "" {
			continue
		}
		if _, err := time.Parse("15:04", hours); err != nil {
			return fmt.Errorf("invalid operating hours %q: %w", hours, err)
		}
	}
	return nil
}

// stepRiskCents resolves a recovery step's risk budget. prevRiskCents is the
// actual risk of the immediately preceding executed trade.
func (s *RecoveryStep) stepRiskCents(baseRiskCents, prevRiskCents int64) int64 {
	switch s.Kind {
	case RiskPercentOfBase:
		return percentOf(baseRiskCents, s.PercentOfBase)
	case RiskFixedCents:
		return s.FixedCents
	case RiskSameAsPrevious:
		return prevRiskCents
	default:
		return 0
	}
}
