package reporting

import (
	"path/filepath"

	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// DefaultReporter implements the complete Reporter interface.
type DefaultReporter struct {
	console *DefaultConsoleReporter
	csv     *DefaultCSVReporter
	excel   *DefaultExcelReporter
	json    *DefaultJSONFormatter
	paths   *DefaultPathManager
}

// NewDefaultReporter creates a new default reporter with all functionality.
func NewDefaultReporter() *DefaultReporter {
	return &DefaultReporter{
		console: NewDefaultConsoleReporter(),
		csv:     NewDefaultCSVReporter(),
		excel:   NewDefaultExcelReporter(),
		json:    NewDefaultJSONFormatter(),
		paths:   NewDefaultPathManager(),
	}
}

// Console output methods
func (r *DefaultReporter) OutputResults(result *types.SimulationResult) {
	r.console.OutputResults(result)
}

func (r *DefaultReporter) OutputResultsWithContext(result *types.SimulationResult, asset, engine string) {
	r.console.OutputResultsWithContext(result, asset, engine)
}

// File output methods
func (r *DefaultReporter) WriteTradesCSV(result *types.SimulationResult, path string) error {
	return r.csv.WriteTradesCSV(result, path)
}

func (r *DefaultReporter) WriteReportXLSX(result *types.SimulationResult, path string) error {
	return r.excel.WriteReportXLSX(result, path)
}

func (r *DefaultReporter) WriteResultJSON(result *types.SimulationResult, path string) error {
	return r.json.WriteResultJSON(result, path)
}

// Path management methods
func (r *DefaultReporter) GetDefaultOutputDir(asset, engine string) string {
	return r.paths.GetDefaultOutputDir(asset, engine)
}

func (r *DefaultReporter) EnsureDirectoryExists(path string) error {
	return r.paths.EnsureDirectoryExists(path)
}

// ReportingConfig controls which outputs a ReportingManager produces.
type ReportingConfig struct {
	EnableConsole bool
	EnableFiles   bool
	CSVEnabled    bool
	ExcelEnabled  bool
	JSONEnabled   bool
}

// DefaultReportingConfig enables every output channel.
func DefaultReportingConfig() ReportingConfig {
	return ReportingConfig{
		EnableConsole: true,
		EnableFiles:   true,
		CSVEnabled:    true,
		ExcelEnabled:  true,
		JSONEnabled:   true,
	}
}

// ReportingManager provides a high-level interface for all reporting needs.
type ReportingManager struct {
	reporter *DefaultReporter
	config   ReportingConfig
}

// NewReportingManager creates a new reporting manager with configuration.
func NewReportingManager(config ReportingConfig) *ReportingManager {
	return &ReportingManager{
		reporter: NewDefaultReporter(),
		config:   config,
	}
}

// ReportResults outputs the simulation result according to configuration.
// File outputs land under outputDir; pass "" to use the default directory
// for the asset/engine pair.
func (m *ReportingManager) ReportResults(result *types.SimulationResult, asset, engine, outputDir string) error {
	if m.config.EnableConsole {
		m.reporter.OutputResultsWithContext(result, asset, engine)
	}

	if !m.config.EnableFiles {
		return nil
	}
	if outputDir == "" {
		outputDir = m.reporter.GetDefaultOutputDir(asset, engine)
	}

	if m.config.CSVEnabled {
		if err := m.reporter.WriteTradesCSV(result, filepath.Join(outputDir, "trades.csv")); err != nil {
			return err
		}
		if err := m.reporter.csv.WriteEquityCurveCSV(result, filepath.Join(outputDir, "equity.csv")); err != nil {
			return err
		}
	}
	if m.config.ExcelEnabled {
		if err := m.reporter.WriteReportXLSX(result, filepath.Join(outputDir, "report.xlsx")); err != nil {
			return err
		}
	}
	if m.config.JSONEnabled {
		if err := m.reporter.WriteResultJSON(result, filepath.Join(outputDir, "result.json")); err != nil {
			return err
		}
	}
	return nil
}
