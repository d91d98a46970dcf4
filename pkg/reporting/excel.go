package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// ExcelStyles holds the style IDs used across report sheets.
type ExcelStyles struct {
	HeaderStyle   int
	CurrencyStyle int
	PercentStyle  int
	RedStyle      int
	GreenStyle    int
}

// DefaultExcelReporter implements Excel output functionality.
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter.
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// WriteReportXLSX writes the full simulation report workbook: a Trades
// sheet, a Days sheet, a Weeks sheet and a Summary sheet.
func (r *DefaultExcelReporter) WriteReportXLSX(result *types.SimulationResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const tradesSheet = "Trades"
	const daysSheet = "Days"
	const weeksSheet = "Weeks"
	const summarySheet = "Summary"

	fx.SetSheetName(fx.GetSheetName(0), tradesSheet)
	fx.NewSheet(daysSheet)
	fx.NewSheet(weeksSheet)
	fx.NewSheet(summarySheet)

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeTradesSheet(fx, tradesSheet, result, styles); err != nil {
		return err
	}
	if err := r.writeDaysSheet(fx, daysSheet, result, styles); err != nil {
		return err
	}
	if err := r.writeWeeksSheet(fx, weeksSheet, result, styles); err != nil {
		return err
	}
	if err := r.writeSummarySheet(fx, summarySheet, result, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

func (r *DefaultExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	// Header style - dark background with white text
	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Currency style (right aligned, $ format)
	styles.CurrencyStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 7,
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Percentage style (right aligned, % format)
	styles.PercentStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 9,
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "E0E0E0", Style: 1},
			{Type: "right", Color: "E0E0E0", Style: 1},
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	// Red text for losing rows
	styles.RedStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 7,
		Font: &excelize.Font{
			Color: "FF0000",
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return styles, err
	}

	// Green text for winning rows
	styles.GreenStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt: 7,
		Font: &excelize.Font{
			Color: "008000",
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	return styles, err
}

func (r *DefaultExcelReporter) writeTradesSheet(fx *excelize.File, sheet string, result *types.SimulationResult, styles ExcelStyles) error {
	headers := []string{
		"Index", "Status", "Position Size", "Risk ($)", "Risk Reason",
		"P&L ($)", "R Multiple", "Drawdown (%)", "Day Phase", "Recovery Step", "Day Trade #",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	for i, t := range result.Trades {
		row := i + 2
		setRowValues(fx, sheet, row,
			t.Index,
			string(t.Status),
			t.SimulatedPositionSize,
			dollars(t.RiskAmountCents),
			t.RiskReason,
			dollars(t.SimulatedPnlCents),
			t.SimulatedRMultiple,
			t.DrawdownPercent/100,
		)
		if t.DayPhase != "" {
			cell, _ := excelize.CoordinatesToCellName(9, row)
			fx.SetCellValue(sheet, cell, string(t.DayPhase))
		}
		if t.RecoveryStepIndex != nil {
			cell, _ := excelize.CoordinatesToCellName(10, row)
			fx.SetCellValue(sheet, cell, *t.RecoveryStepIndex)
		}
		if t.DayTradeNumber > 0 {
			cell, _ := excelize.CoordinatesToCellName(11, row)
			fx.SetCellValue(sheet, cell, t.DayTradeNumber)
		}

		pnlCell, _ := excelize.CoordinatesToCellName(6, row)
		switch {
		case t.SimulatedPnlCents > 0:
			fx.SetCellStyle(sheet, pnlCell, pnlCell, styles.GreenStyle)
		case t.SimulatedPnlCents < 0:
			fx.SetCellStyle(sheet, pnlCell, pnlCell, styles.RedStyle)
		default:
			fx.SetCellStyle(sheet, pnlCell, pnlCell, styles.CurrencyStyle)
		}
		riskCell, _ := excelize.CoordinatesToCellName(4, row)
		fx.SetCellStyle(sheet, riskCell, riskCell, styles.CurrencyStyle)
		ddCell, _ := excelize.CoordinatesToCellName(8, row)
		fx.SetCellStyle(sheet, ddCell, ddCell, styles.PercentStyle)
	}

	fx.SetColWidth(sheet, "B", "B", 26)
	fx.SetColWidth(sheet, "E", "E", 24)
	return nil
}

func (r *DefaultExcelReporter) writeDaysSheet(fx *excelize.File, sheet string, result *types.SimulationResult, styles ExcelStyles) error {
	headers := []string{"Day", "Executed", "Skipped", "Original P&L ($)", "Simulated P&L ($)", "Hit Target"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	for i, d := range result.Days {
		row := i + 2
		setRowValues(fx, sheet, row,
			d.DayKey,
			d.ExecutedCount,
			d.SkippedCount,
			dollars(d.OriginalPnlCents),
			dollars(d.SimulatedPnlCents),
			d.HitTarget,
		)
		for col := 4; col <= 5; col++ {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			fx.SetCellStyle(sheet, cell, cell, styles.CurrencyStyle)
		}
	}

	fx.SetColWidth(sheet, "A", "A", 14)
	fx.SetColWidth(sheet, "D", "E", 18)
	return nil
}

func (r *DefaultExcelReporter) writeWeeksSheet(fx *excelize.File, sheet string, result *types.SimulationResult, styles ExcelStyles) error {
	headers := []string{"Week", "Executed", "Skipped", "Original P&L ($)", "Simulated P&L ($)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	for i, w := range result.Weeks {
		row := i + 2
		setRowValues(fx, sheet, row,
			w.WeekKey,
			w.ExecutedCount,
			w.SkippedCount,
			dollars(w.OriginalPnlCents),
			dollars(w.SimulatedPnlCents),
		)
		for col := 4; col <= 5; col++ {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			fx.SetCellStyle(sheet, cell, cell, styles.CurrencyStyle)
		}
	}

	fx.SetColWidth(sheet, "A", "A", 12)
	fx.SetColWidth(sheet, "D", "E", 18)
	return nil
}

func (r *DefaultExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, result *types.SimulationResult, styles ExcelStyles) error {
	s := result.Summary

	fx.SetCellValue(sheet, "A1", "Metric")
	fx.SetCellValue(sheet, "B1", "Value")
	fx.SetCellStyle(sheet, "A1", "B1", styles.HeaderStyle)

	rows := []struct {
		label string
		value interface{}
	}{
		{"Total Trades", s.TotalTrades},
		{"Executed Trades", s.ExecutedTrades},
		{"Skipped Trades", s.TotalTrades - s.ExecutedTrades},
		{"Original Win Rate (%)", s.OriginalWinRate},
		{"Simulated Win Rate (%)", s.SimulatedWinRate},
		{"Original P&L ($)", dollars(s.OriginalTotalPnlCents)},
		{"Simulated P&L ($)", dollars(s.SimulatedTotalPnl)},
		{"P&L Delta ($)", dollars(s.PnlDeltaCents)},
		{"Days Hit Target", s.DaysHitTarget},
	}
	row := 2
	for _, item := range rows {
		cellA, _ := excelize.CoordinatesToCellName(1, row)
		cellB, _ := excelize.CoordinatesToCellName(2, row)
		fx.SetCellValue(sheet, cellA, item.label)
		fx.SetCellValue(sheet, cellB, item.value)
		row++
	}

	// Skip breakdown below the headline metrics.
	row++
	cellA, _ := excelize.CoordinatesToCellName(1, row)
	cellB, _ := excelize.CoordinatesToCellName(2, row)
	fx.SetCellValue(sheet, cellA, "Skip Reason")
	fx.SetCellValue(sheet, cellB, "Count")
	fx.SetCellStyle(sheet, cellA, cellB, styles.HeaderStyle)
	row++
	for _, status := range types.SkipStatuses {
		cellA, _ = excelize.CoordinatesToCellName(1, row)
		cellB, _ = excelize.CoordinatesToCellName(2, row)
		fx.SetCellValue(sheet, cellA, string(status))
		fx.SetCellValue(sheet, cellB, s.SkippedByReason[status])
		row++
	}

	fx.SetColWidth(sheet, "A", "A", 28)
	fx.SetColWidth(sheet, "B", "B", 16)
	return nil
}

// setRowValues writes values left to right starting at column A of row.
func setRowValues(fx *excelize.File, sheet string, row int, values ...interface{}) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		fx.SetCellValue(sheet, cell, v)
	}
}

// dollars converts integer cents to a float dollar amount for cell values.
func dollars(cents int64) float64 {
	return float64(cents) / 100
}
