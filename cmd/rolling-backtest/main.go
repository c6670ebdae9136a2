package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/bokslquant/index-backtest/internal/backtest"
	"github.com/bokslquant/index-backtest/internal/logger"
	"github.com/bokslquant/index-backtest/pkg/config"
	"github.com/bokslquant/index-backtest/pkg/data"
	"github.com/bokslquant/index-backtest/pkg/reporting"
)

const (
	AppName    = "Rolling Index Backtest"
	AppVersion = "1.2.0"

	RunModeRolling = "rolling"
)

func main() {
	flags := NewRollingFlags()
	flag.Parse()

	if err := ValidateRollingFlags(flags); err != nil {
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

	printHeader()
	loadEnvironment(*flags.EnvFile)

	// Configuration: defaults ← config file ← explicit flags
	manager := config.NewInvestmentConfigManager()
	cfg, err := manager.LoadRollingConfig(*flags.ConfigFile)
	if err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}
	flags.ApplyOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Configuration error: %v", err)
	}

	sessionLog, err := logger.NewLogger(cfg.Symbol, RunModeRolling)
	if err != nil {
		log.Fatalf("❌ Failed to open session log: %v", err)
	}
	defer sessionLog.Close()

	// Load the daily price series once; every window shares it
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

	// Ctrl-C cancels the sweep between windows
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runner *backtest.RollingRunner
	if *flags.Workers > 0 {
		runner = backtest.NewRollingRunnerWithWorkers(*flags.Workers)
	} else {
		runner = backtest.NewRollingRunner()
	}

	starts := cfg.WindowStarts()
	log.Printf("🔄 Sweeping %d window starts: %d-%02d → %d-%02d",
		len(starts), cfg.StartYear, cfg.StartMonth, cfg.EndYear, cfg.EndMonth)
	sessionLog.Info("Sweep started: %d windows, %d-year horizon, %d DCA months",
		len(starts), cfg.InvestmentPeriodYears, cfg.DCAMonths)

	began := time.Now()
	result, err := runner.Run(ctx, series, cfg)
	if err != nil {
		sessionLog.LogError("rolling sweep", err)
		log.Fatalf("❌ Rolling sweep failed: %v", err)
	}
	log.Printf("✅ Sweep finished in %s (%d/%d windows completed)",
		time.Since(began).Round(time.Millisecond), len(result.Completed()), len(result.Windows))

	for _, w := range result.Windows {
		if w.Skipped {
			sessionLog.Warning("Window %d-%02d skipped: %s", w.StartYear, w.StartMonth, w.SkipReason)
			continue
		}
		sessionLog.LogWindowResult(w.StartYear, w.StartMonth, "lump_sum",
			w.LumpSum.TotalReturn, w.LumpSum.CAGR, w.LumpSum.MDD)
		sessionLog.LogWindowResult(w.StartYear, w.StartMonth, "dca",
			w.DCA.TotalReturn, w.DCA.CAGR, w.DCA.MDD)
	}

	reporter := reporting.NewDefaultReporter()
	reporter.OutputRollingSummary(result)

	if *flags.ConsoleOnly {
		return
	}

	outputDir := reporter.GetDefaultOutputDir(cfg.Symbol, RunModeRolling)
	if err := reporter.EnsureDirectoryExists(outputDir); err != nil {
		log.Fatalf("❌ %v", err)
	}

	// Timestamped names so repeated sweeps never clobber each other's reports.
	prefix := fmt.Sprintf("%s_%d-%02d_%d-%02d_%dy", strings.ToUpper(cfg.Symbol),
		cfg.StartYear, cfg.StartMonth, cfg.EndYear, cfg.EndMonth, cfg.InvestmentPeriodYears)

	xlsxPath := filepath.Join(outputDir, reporter.TimestampedFilename(prefix+"_rolling", "xlsx"))
	if err := reporter.WriteRollingXLSX(result, xlsxPath); err != nil {
		sessionLog.LogError("excel export", err)
		log.Fatalf("❌ Failed to write Excel report: %v", err)
	}
	log.Printf("📄 Excel report: %s", xlsxPath)

	chartPath := filepath.Join(outputDir, reporter.TimestampedFilename(prefix+"_returns", "png"))
	if err := reporter.RenderRollingChart(result, chartPath); err != nil {
		sessionLog.LogError("chart render", err)
		log.Fatalf("❌ Failed to render chart: %v", err)
	}
	log.Printf("📈 Chart: %s", chartPath)

	sessionLog.Result("Rolling sweep complete: %s, %d/%d windows",
		cfg.Symbol, len(result.Completed()), len(result.Windows))
}

func printHeader() {
	fmt.Printf("🚀 %s v%s\n", AppName, AppVersion)
	fmt.Println("   Lump sum vs DCA across every start month in a range")
	fmt.Println()
}

func loadEnvironment(envFile string) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("⚠️ Could not load env file %s: %v", envFile, err)
		}
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Printf("⚠️ Could not load .env: %v", err)
		}
	}
}

func printUsageHelp() {
	fmt.Printf("USAGE:\n  %s [OPTIONS]\n\n", filepath.Base(flag.CommandLine.Name()))
	fmt.Println("Sweeps every start month in a range, running the lump sum vs DCA")
	fmt.Println("comparison for each window, and writes the aggregated results.")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  rolling-backtest -symbol NASDAQ -start-year 1990 -start-month 1 -end-year 2014 -end-month 12")
	fmt.Println("  rolling-backtest -config configs/nasdaq_rolling.json -workers 8")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
}
