package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ducln05/futures-risk-replay/internal/logger"
	"github.com/ducln05/futures-risk-replay/internal/monitoring"
	"github.com/ducln05/futures-risk-replay/internal/simulation"
	"github.com/ducln05/futures-risk-replay/pkg/config"
	"github.com/ducln05/futures-risk-replay/pkg/data"
	"github.com/ducln05/futures-risk-replay/pkg/reporting"
	"github.com/ducln05/futures-risk-replay/pkg/types"
)

const (
	AppName    = "Risk Replay"
	AppVersion = "1.0.0"
)

func main() {
	// Create and parse command line flags
	flags := NewReplayFlags()
	flag.Parse()

	// Version and help
	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	if *flags.ShowHelp {
		printUsageHelp()
		return
	}

	// Validate flags before proceeding
	if err := ValidateReplayFlags(flags); err != nil {
		log.Fatalf("❌ Flag validation error: %v", err)
	}

	// Header
	printHeader()

	// Load environment
	loadEnvironment(*flags.EnvFile)

	// Load the risk profile
	profile, err := config.NewManager().LoadProfile(ResolveConfigPath(*flags.ConfigFile))
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}
	engine := string(profile.Params.Kind())
	fmt.Printf("📋 Profile: %s (%s engine)\n", profile.Name, engine)

	// Load the trade journal
	trades, err := loadTrades(flags)
	if err != nil {
		log.Fatalf("❌ Data error: %v", err)
	}
	if len(trades) == 0 {
		log.Fatalf("❌ No trades matched the given filters")
	}
	fmt.Printf("📂 Loaded %d trades (%s to %s)\n\n",
		len(trades),
		trades[0].EntryDate.Format("2006-01-02"),
		trades[len(trades)-1].EntryDate.Format("2006-01-02"))

	// Run the simulation with a per-run decision audit log
	auditLog, err := logger.NewLogger(assetLabel(*flags.Asset), engine)
	if err != nil {
		log.Fatalf("❌ Could not create audit log: %v", err)
	}
	defer auditLog.Close()

	start := time.Now()
	result := simulation.Run(trades, profile.Params)
	elapsed := time.Since(start)

	for i := range result.Trades {
		auditLog.LogDecision(&result.Trades[i])
	}
	auditLog.LogRunSummary(result)
	monitoring.RecordSimulation(engine, elapsed, result)

	// Report
	reportCfg := reporting.DefaultReportingConfig()
	reportCfg.EnableFiles = !*flags.ConsoleOnly
	manager := reporting.NewReportingManager(reportCfg)
	if err := manager.ReportResults(result, assetLabel(*flags.Asset), engine, *flags.OutputDir); err != nil {
		log.Fatalf("❌ Reporting error: %v", err)
	}

	if !*flags.ConsoleOnly {
		outputDir := *flags.OutputDir
		if outputDir == "" {
			outputDir = reporting.NewDefaultPathManager().GetDefaultOutputDir(assetLabel(*flags.Asset), engine)
		}
		fmt.Printf("💾 Reports written to %s\n", outputDir)
	}
	fmt.Printf("📝 Decision log: %s\n", auditLog.GetLogPath())
	fmt.Printf("⏱️ Completed in %s\n", elapsed.Round(time.Millisecond))
}

func printHeader() {
	fmt.Printf("🎯 %s v%s\n", strings.ToUpper(AppName), AppVersion)
	fmt.Printf("%s\n\n", strings.Repeat("=", 50))
}

func printUsageHelp() {
	fmt.Printf("%s v%s - Historical Trade Risk Policy Replay\n\n", AppName, AppVersion)
	fmt.Printf("USAGE:\n  %s [OPTIONS]\n\n", filepath.Base(flag.CommandLine.Name()))

	PrintReplayUsageExamples()
	PrintReplayFlagGroups()

	fmt.Printf("\nFor more information, see the README or documentation.\n")
}

func loadEnvironment(envFile string) {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("⚠️  Could not load %s (%v)", envFile, err)
	}
}

// loadTrades reads the journal from whichever source was given and applies
// the asset and date filters.
func loadTrades(flags *ReplayFlags) ([]types.HistoricalTrade, error) {
	from, _ := parseDateFlag(*flags.FromDate)
	to, _ := parseDateFlag(*flags.ToDate)
	if !to.IsZero() {
		// Make the -to bound inclusive of the whole day.
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	var provider data.TradeProvider
	var source string
	if *flags.DBFile != "" {
		provider = data.NewSQLiteProvider().WithAsset(*flags.Asset).WithDateRange(from, to)
		source = *flags.DBFile
	} else {
		provider = data.NewCSVProvider()
		source = *flags.DataFile
	}

	trades, err := provider.LoadTrades(source)
	if err != nil {
		return nil, err
	}
	if err := provider.ValidateTrades(trades); err != nil {
		return nil, err
	}

	// CSV loads still need in-process filtering.
	if *flags.DBFile == "" {
		filter := data.NewDefaultTradeFilter()
		trades = filter.FilterByAsset(trades, *flags.Asset)
		trades = filter.FilterByDateRange(trades, from, to)
	}
	return trades, nil
}

func assetLabel(asset string) string {
	if asset == "" {
		return "ALL"
	}
	return strings.ToUpper(asset)
}
