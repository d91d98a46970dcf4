package reporting

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// DefaultConsoleReporter renders simulation results as console tables.
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter.
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

// OutputResults prints the run summary, skip breakdown and weekly
// performance to the console.
func (r *DefaultConsoleReporter) OutputResults(result *types.SimulationResult) {
	r.OutputResultsWithContext(result, "", "")
}

// OutputResultsWithContext prints the result with asset/engine context in
// the table title.
func (r *DefaultConsoleReporter) OutputResultsWithContext(result *types.SimulationResult, asset, engine string) {
	s := result.Summary

	title := "SIMULATION RESULTS"
	if asset != "" || engine != "" {
		title = fmt.Sprintf("SIMULATION RESULTS — %s %s", asset, engine)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(title)
	t.SetStyle(table.StyleRounded)
	t.AppendRows([]table.Row{
		{"🔄 Total Trades", s.TotalTrades},
		{"✅ Executed", s.ExecutedTrades},
		{"⏭️ Skipped", s.TotalTrades - s.ExecutedTrades},
		{"📈 Original Win Rate", fmt.Sprintf("%.1f%%", s.OriginalWinRate)},
		{"📈 Simulated Win Rate", fmt.Sprintf("%.1f%%", s.SimulatedWinRate)},
		{"💰 Original P&L", formatCents(s.OriginalTotalPnlCents)},
		{"💰 Simulated P&L", formatCents(s.SimulatedTotalPnl)},
		{"💹 P&L Delta", formatCents(s.PnlDeltaCents)},
		{"🎯 Days Hit Target", s.DaysHitTarget},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 22, Align: text.AlignLeft},
		{Number: 2, WidthMin: 16, Align: text.AlignRight},
	})
	t.Render()
	fmt.Println()

	r.printSkipBreakdown(&s)
	r.printWeeks(result.Weeks)
}

func (r *DefaultConsoleReporter) printSkipBreakdown(s *types.SimulationSummary) {
	skippedTotal := s.TotalTrades - s.ExecutedTrades
	if skippedTotal == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("SKIP REASONS")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Reason", "Count"})
	for _, status := range types.SkipStatuses {
		if count := s.SkippedByReason[status]; count > 0 {
			t.AppendRow(table.Row{string(status), count})
		}
	}
	t.Render()
	fmt.Println()
}

func (r *DefaultConsoleReporter) printWeeks(weeks []types.WeekTrace) {
	if len(weeks) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("WEEKLY BREAKDOWN")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Week", "Executed", "Skipped", "Original P&L", "Simulated P&L"})
	for _, w := range weeks {
		t.AppendRow(table.Row{
			w.WeekKey,
			w.ExecutedCount,
			w.SkippedCount,
			formatCents(w.OriginalPnlCents),
			formatCents(w.SimulatedPnlCents),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()
	fmt.Println()
}

// formatCents renders integer cents as a signed dollar string.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
