package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// Logger is a per-run audit log for simulation decisions. Each run writes
// one file under logs/ recording why every trade was executed or skipped.
type Logger struct {
	asset   string
	engine  string
	logFile *os.File
	logger  *log.Logger
	mu      sync.Mutex
	logPath string
}

// LogLevel represents different types of log entries
type LogLevel string

const (
	LogLevelInfo     LogLevel = "INFO"
	LogLevelWarning  LogLevel = "WARN"
	LogLevelError    LogLevel = "ERROR"
	LogLevelDecision LogLevel = "DECISION"
)

// NewLogger creates a new audit logger for the given asset and engine.
func NewLogger(asset, engine string) (*Logger, error) {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02")
	filename := fmt.Sprintf("%s_%s_%s.log", asset, engine, timestamp)
	logPath := filepath.Join(logDir, filename)

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	l := &Logger{
		asset:   asset,
		engine:  engine,
		logFile: file,
		logger:  log.New(file, "", 0),
		logPath: logPath,
	}

	l.writeSessionHeader()

	return l, nil
}

// writeSessionHeader writes a run start header to the log
func (l *Logger) writeSessionHeader() {
	l.mu.Lock()
	defer l.mu.Unlock()

	header := fmt.Sprintf(`
================================================================================
🚀 RISK REPLAY RUN STARTED
================================================================================
Asset: %s | Engine: %s
Started: %s
Log File: %s
================================================================================
`, l.asset, l.engine, time.Now().Format("2006-01-02 15:04:05"), filepath.Base(l.logPath))

	l.logger.Print(header)
}

// Log writes a formatted log entry with the specified level
func (l *Logger) Log(level LogLevel, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("[%s] [%s] %s", timestamp, level, message)
}

// Info logs an info message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LogLevelInfo, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(format string, args ...interface{}) {
	l.Log(LogLevelWarning, format, args...)
}

// Error logs an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LogLevelError, format, args...)
}

// LogDecision records one simulated trade decision: what happened to the
// trade and why, in replay order.
func (l *Logger) LogDecision(t *types.SimulatedTrade) {
	if t.Executed() {
		l.Log(LogLevelDecision, "trade #%d EXECUTED size=%d risk=$%.2f pnl=$%.2f reason=%q",
			t.Index, t.SimulatedPositionSize,
			float64(t.RiskAmountCents)/100, float64(t.SimulatedPnlCents)/100, t.RiskReason)
		return
	}
	l.Log(LogLevelDecision, "trade #%d SKIPPED status=%s", t.Index, t.Status)
}

// LogRunSummary writes the end-of-run summary block.
func (l *Logger) LogRunSummary(result *types.SimulationResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := result.Summary
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	summaryLog := fmt.Sprintf(`
[%s] [INFO] ==================== RUN SUMMARY ====================
🔄 Trades: %d total, %d executed, %d skipped
📈 Win Rate: %.1f%% original -> %.1f%% simulated
💰 P&L: $%.2f original -> $%.2f simulated (delta $%.2f)
🎯 Days Hit Target: %d
=========================================================`,
		timestamp,
		s.TotalTrades, s.ExecutedTrades, s.TotalTrades-s.ExecutedTrades,
		s.OriginalWinRate, s.SimulatedWinRate,
		float64(s.OriginalTotalPnlCents)/100, float64(s.SimulatedTotalPnl)/100,
		float64(s.PnlDeltaCents)/100,
		s.DaysHitTarget)

	l.logger.Println(summaryLog)
}

// LogError logs error with context
func (l *Logger) LogError(context string, err error) {
	l.Error("%s: %v", context, err)
}

// Close closes the log file
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile != nil {
		timestamp := time.Now().Format("2006-01-02 15:04:05")
		footer := fmt.Sprintf(`
================================================================================
🛑 RISK REPLAY RUN ENDED
================================================================================
Ended: %s
================================================================================

`, timestamp)
		l.logger.Print(footer)

		return l.logFile.Close()
	}
	return nil
}

// GetLogPath returns the current log file path
func (l *Logger) GetLogPath() string {
	return l.logPath
}
