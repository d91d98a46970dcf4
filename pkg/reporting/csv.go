package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// DefaultCSVReporter implements CSV output functionality.
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter.
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteTradesCSV writes one row per simulated trade to a CSV file.
func (r *DefaultCSVReporter) WriteTradesCSV(result *types.SimulationResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index", "status", "position_size", "risk_amount_cents", "risk_reason",
		"pnl_cents", "r_multiple", "drawdown_percent",
		"day_phase", "recovery_step_index", "day_trade_number",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, t := range result.Trades {
		stepIdx := ""
		if t.RecoveryStepIndex != nil {
			stepIdx = strconv.Itoa(*t.RecoveryStepIndex)
		}
		row := []string{
			strconv.Itoa(t.Index),
			string(t.Status),
			strconv.Itoa(t.SimulatedPositionSize),
			strconv.FormatInt(t.RiskAmountCents, 10),
			t.RiskReason,
			strconv.FormatInt(t.SimulatedPnlCents, 10),
			strconv.FormatFloat(t.SimulatedRMultiple, 'f', 4, 64),
			strconv.FormatFloat(t.DrawdownPercent, 'f', 2, 64),
			string(t.DayPhase),
			stepIdx,
			strconv.Itoa(t.DayTradeNumber),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteEquityCurveCSV writes the per-trade equity curve to a CSV file.
func (r *DefaultCSVReporter) WriteEquityCurveCSV(result *types.SimulationResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"trade_index", "day_key", "original_equity_cents", "simulated_equity_cents"}); err != nil {
		return err
	}
	for _, p := range result.EquityCurve {
		row := []string{
			strconv.Itoa(p.TradeIndex),
			p.DayKey,
			strconv.FormatInt(p.OriginalEquityCents, 10),
			strconv.FormatInt(p.SimulatedEquityCents, 10),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
