package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bokslquant/index-backtest/internal/backtest"
	"github.com/bokslquant/index-backtest/internal/logger"
	"github.com/bokslquant/index-backtest/pkg/config"
	"github.com/bokslquant/index-backtest/pkg/data"
	"github.com/bokslquant/index-backtest/pkg/reporting"
)

const (
	AppName    = "Index Backtest"
	AppVersion = "1.2.0"

	RunModeSingle = "single"
)

func main() {
	flags := NewBacktestFlags()
	flag.Parse()

	if err := ValidateBacktestFlags(flags); err != nil {
		log.Fatalf("❌ Flag validation error: %v", err)
	}

	if *flags.ShowVersion {
		fmt.Printf("%s v%s\n", AppName, AppVersion)
		return
	}

	if *flags.ShowHelp {
		printUsageHelp()
		return
	}

	if *flags.ListSymbols {
		listAvailableSymbols(*flags.DataRoot)
		return
	}

	printHeader()
	loadEnvironment(*flags.EnvFile)

	// Configuration: defaults ← config file ← explicit flags
	manager := config.NewInvestmentConfigManager()
	cfg, err := manager.LoadConfig(*flags.ConfigFile)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}
	flags.ApplyOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	sessionLog, err := logger.NewLogger(cfg.Symbol, RunModeSingle)
	if err != nil {
		log.Fatalf("❌ Failed to open session log: %v", err)
	}
	defer sessionLog.Close()

	// Load the daily price series
	locator := data.NewDefaultFileLocator()
	dataFile := locator.FindDataFile(*flags.DataRoot, cfg.Symbol)
	provider := data.NewCachedProvider(data.NewCSVProvider())

	sessionLog.Info("Loading price series for %s from %s", cfg.Symbol, dataFile)
	series, err := provider.LoadSeries(cfg.Symbol, dataFile)
	if err != nil {
		sessionLog.LogError("data load", err)
		log.Fatalf("❌ Failed to load price series: %v", err)
	}
	if err := provider.ValidateSeries(series); err != nil {
		sessionLog.LogError("data validation", err)
		log.Fatalf("❌ Price series validation failed: %v", err)
	}
	log.Printf("📊 Loaded %d trading days for %s (%s → %s)",
		series.Len(), series.Symbol,
		series.FirstDate().Format("2006-01-02"), series.LastDate().Format("2006-01-02"))

	// Run both strategies over the window
	engine := backtest.NewEngine()
	result, err := engine.RunComparison(series, cfg)
	if err != nil {
		sessionLog.LogError("backtest", err)
		log.Fatalf("❌ Backtest failed: %v", err)
	}

	sessionLog.LogWindowResult(cfg.StartYear, cfg.StartMonth, result.LumpSum.StrategyName,
		result.LumpSum.Metrics.TotalReturn, result.LumpSum.Metrics.CAGR, result.LumpSum.Metrics.MDD)
	sessionLog.LogWindowResult(cfg.StartYear, cfg.StartMonth, result.DCA.StrategyName,
		result.DCA.Metrics.TotalReturn, result.DCA.Metrics.CAGR, result.DCA.Metrics.MDD)

	reporter := reporting.NewDefaultReporter()
	reporter.OutputComparison(result)

	if *flags.ConsoleOnly {
		return
	}

	outputDir := reporter.GetDefaultOutputDir(cfg.Symbol, RunModeSingle)
	if err := reporter.EnsureDirectoryExists(outputDir); err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Timestamped names so repeated runs over the same window never clobber
	// each other's reports.
	prefix := fmt.Sprintf("%s_%d-%02d_%dy", strings.ToUpper(cfg.Symbol), cfg.StartYear, cfg.StartMonth, cfg.InvestmentPeriodYears)

	xlsxPath := filepath.Join(outputDir, reporter.TimestampedFilename(prefix+"_comparison", "xlsx"))
	if err := reporter.WriteComparisonXLSX(result, xlsxPath); err != nil {
		sessionLog.LogError("excel export", err)
		log.Fatalf("❌ Failed to write Excel report: %v", err)
	}
	log.Printf("📄 Excel report: %s", xlsxPath)

	lsCSV := filepath.Join(outputDir, reporter.TimestampedFilename(prefix+"_lump_sum_daily", "csv"))
	if err := reporter.WriteDailyRecordsCSV(result.LumpSum, lsCSV); err != nil {
		sessionLog.LogError("csv export", err)
		log.Fatalf("❌ Failed to write daily CSV: %v", err)
	}
	dcaCSV := filepath.Join(outputDir, reporter.TimestampedFilename(prefix+"_dca_daily", "csv"))
	if err := reporter.WriteDailyRecordsCSV(result.DCA, dcaCSV); err != nil {
		sessionLog.LogError("csv export", err)
		log.Fatalf("❌ Failed to write daily CSV: %v", err)
	}
	log.Printf("📄 Daily CSVs: %s, %s", lsCSV, dcaCSV)

	chartPath := filepath.Join(outputDir, reporter.TimestampedFilename(prefix+"_value", "png"))
	if err := reporter.RenderValueChart(result, chartPath); err != nil {
		sessionLog.LogError("chart render", err)
		log.Fatalf("❌ Failed to render chart: %v", err)
	}
	log.Printf("📈 Chart: %s", chartPath)

	sessionLog.Result("Single run complete: %s %d-%02d", cfg.Symbol, cfg.StartYear, cfg.StartMonth)
}

func printHeader() {
	fmt.Printf("🚀 %s v%s\n", AppName, AppVersion)
	fmt.Println("   Lump sum vs dollar-cost averaging over historical index data")
	fmt.Println()
}

func loadEnvironment(envFile string) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("⚠️ Could not load env file %s: %v", envFile, err)
		}
		return
	}
	// Optional .env in the working directory
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("⚠️ Could not load .env: %v", err)
		}
	}
}

func listAvailableSymbols(dataRoot string) {
	locator := data.NewDefaultFileLocator()
	symbols := locator.AvailableSymbols(dataRoot)
	if len(symbols) == 0 {
		fmt.Printf("No data files found under %s (expected <SYMBOL>_data.csv)\n", dataRoot)
		return
	}
	fmt.Printf("Available symbols under %s:\n", dataRoot)
	for _, s := range symbols {
		fmt.Printf("  • %s\n", s)
	}
}

func printUsageHelp() {
	fmt.Printf("USAGE:\n  %s [OPTIONS]\n\n", filepath.Base(flag.CommandLine.Name()))
	fmt.Println("Runs a lump sum vs DCA comparison over one investment window and writes")
	fmt.Println("console, Excel, CSV and chart reports.")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  backtest -symbol NASDAQ -start-year 2010 -start-month 1 -years 10 -dca-months 60")
	fmt.Println("  backtest -config configs/nasdaq_2010.json")
	fmt.Println("  backtest -symbol SPX -start-year 2015 -start-month 6 -console-only")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
}
