package simulation

import (
	"fmt"
	"time"
)

// Period keys are derived from each trade's own entry date: calendar day,
// ISO week (Monday start) and calendar month. Counters reset the first time
// a trade in a new period is processed.

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
