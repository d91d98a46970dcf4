package reporting

import (
	"github.com/ducln05/futures-risk-replay/pkg/types"
)

// Package reporting renders simulation results for the console and files.

// ConsoleReporter defines the interface for console output.
type ConsoleReporter interface {
	OutputResults(result *types.SimulationResult)
	OutputResultsWithContext(result *types.SimulationResult, asset, engine string)
}

// FileReporter defines the interface for file output.
type FileReporter interface {
	WriteTradesCSV(result *types.SimulationResult, path string) error
	WriteReportXLSX(result *types.SimulationResult, path string) error
	WriteResultJSON(result *types.SimulationResult, path string) error
}

// PathManager defines the interface for output path management.
type PathManager interface {
	GetDefaultOutputDir(asset, engine string) string
	EnsureDirectoryExists(path string) error
}

// Reporter combines all reporting interfaces.
type Reporter interface {
	ConsoleReporter
	FileReporter
	PathManager
}
