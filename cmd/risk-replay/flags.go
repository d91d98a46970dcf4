package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ReplayFlags holds all command line flags for the risk replay command
type ReplayFlags struct {
	// Configuration
	ConfigFile *string
	DataFile   *string
	DBFile     *string
	Asset      *string

	// Date range filters
	FromDate *string
	ToDate   *string

	// Output options
	OutputDir   *string
	ConsoleOnly *bool
	EnvFile     *string

	// Help and version
	ShowVersion *bool
	ShowHelp    *bool
}

// NewReplayFlags creates and registers all replay command line flags
func NewReplayFlags() *ReplayFlags {
	flags := &ReplayFlags{
		// Configuration
		ConfigFile: flag.String("config", "", "Path to risk profile file (JSON or YAML)"),
		DataFile:   flag.String("data", "", "Path to trade journal CSV file"),
		DBFile:     flag.String("db", "", "Path to trade journal SQLite database"),
		Asset:      flag.String("asset", "", "Filter trades to one asset symbol (e.g. MNQ)"),

		// Date range filters
		FromDate: flag.String("from", "", "Start date filter (YYYY-MM-DD)"),
		ToDate:   flag.String("to", "", "End date filter (YYYY-MM-DD)"),

		// Output options
		OutputDir:   flag.String("output", "", "Output directory (default: results/ASSET_engine)"),
		ConsoleOnly: flag.Bool("console-only", false, "Console output only (no files)"),
		EnvFile:     flag.String("env", ".env", "Environment file path"),

		// Help and version
		ShowVersion: flag.Bool("version", false, "Show version information"),
		ShowHelp:    flag.Bool("help", false, "Show detailed help"),
	}

	return flags
}

// ValidateReplayFlags performs validation on replay flag combinations
func ValidateReplayFlags(flags *ReplayFlags) error {
	if *flags.ShowVersion || *flags.ShowHelp {
		return nil
	}
	if *flags.ConfigFile == "" {
		return fmt.Errorf("a risk profile is required (-config)")
	}
	if (*flags.DataFile == "") == (*flags.DBFile == "") {
		return fmt.Errorf("exactly one trade source is required (-data or -db)")
	}
	if _, err := parseDateFlag(*flags.FromDate); err != nil {
		return fmt.Errorf("invalid -from date: %w", err)
	}
	if _, err := parseDateFlag(*flags.ToDate); err != nil {
		return fmt.Errorf("invalid -to date: %w", err)
	}
	return nil
}

// parseDateFlag parses an optional YYYY-MM-DD date flag.
func parseDateFlag(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", strings.TrimSpace(value))
}

// ResolveConfigPath resolves the profile file path with smart defaults
func ResolveConfigPath(configFile string) string {
	if configFile == "" {
		return ""
	}

	// If no path separators, assume it's in configs/ directory
	if !strings.ContainsAny(configFile, "/\\") {
		if ext := strings.ToLower(filepath.Ext(configFile)); ext != ".json" && ext != ".yaml" && ext != ".yml" {
			configFile += ".json"
		}
		return filepath.Join("configs", configFile)
	}

	return configFile
}

// PrintReplayUsageExamples prints usage examples for the replay command
func PrintReplayUsageExamples() {
	examples := []struct {
		command     string
		description string
	}{
		{
			"risk-replay -config configs/simple.json -data journal.csv",
			"Replay a CSV journal under the simple percent-of-balance policy",
		},
		{
			"risk-replay -config advanced -db journal.db -asset MNQ",
			"Replay MNQ trades from a SQLite journal under the advanced policy",
		},
		{
			"risk-replay -config configs/simple.json -data journal.csv -from 2024-01-01 -to 2024-06-30",
			"Replay only the first half of 2024",
		},
		{
			"risk-replay -config configs/advanced.yaml -data journal.csv -console-only",
			"Console output only, no report files",
		},
	}

	fmt.Printf("\n📚 USAGE EXAMPLES:\n")
	fmt.Printf("%s\n", strings.Repeat("-", 60))

	for _, example := range examples {
		fmt.Printf("\n• %s\n", example.description)
		fmt.Printf("  %s\n", example.command)
	}
}

// PrintReplayFlagGroups prints flags organized by category
func PrintReplayFlagGroups() {
	fmt.Printf(`
📊 CONFIGURATION FLAGS:
  -config FILE          Risk profile file, JSON or YAML (required)
  -data FILE            Trade journal CSV file
  -db FILE              Trade journal SQLite database
  -asset SYMBOL         Filter trades to one asset symbol

📅 DATE RANGE FLAGS:
  -from DATE            Start date filter (YYYY-MM-DD)
  -to DATE              End date filter (YYYY-MM-DD)

📁 OUTPUT FLAGS:
  -output DIR           Output directory (default: results/ASSET_engine)
  -console-only         Console output only, no file output
  -env FILE             Environment file path (default: .env)

❓ HELP FLAGS:
  -version              Show version information
  -help                 Show this help message
`)
}
