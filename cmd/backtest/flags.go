package main

import (
	"flag"
	"fmt"

	"github.com/bokslquant/index-backtest/pkg/config"
)

// BacktestFlags holds all command line flags for the single-window command
type BacktestFlags struct {
	// Configuration
	ConfigFile *string
	Symbol     *string
	DataRoot   *string

	// Window parameters
	StartYear  *int
	StartMonth *int
	Years      *int
	DCAMonths  *int
	Principal  *float64

	// Output options
	ConsoleOnly *bool
	EnvFile     *string

	// Discovery
	ListSymbols *bool

	// Help and version
	ShowVersion *bool
	ShowHelp    *bool
}

// NewBacktestFlags creates and registers all command line flags
func NewBacktestFlags() *BacktestFlags {
	return &BacktestFlags{
		ConfigFile: flag.String("config", "", "Path to JSON configuration file"),
		Symbol:     flag.String("symbol", "", "Index symbol (e.g. NASDAQ, SPX)"),
		DataRoot:   flag.String("data-root", config.DefaultDataRoot, "Root directory holding <SYMBOL>_data.csv files"),

		StartYear:  flag.Int("start-year", 0, "Window start year"),
		StartMonth: flag.Int("start-month", 0, "Window start month (1-12)"),
		Years:      flag.Int("years", 0, "Investment horizon in years"),
		DCAMonths:  flag.Int("dca-months", 0, "Number of monthly DCA installments"),
		Principal:  flag.Float64("principal", 0, "Total amount to invest"),

		ConsoleOnly: flag.Bool("console-only", false, "Skip Excel, CSV and chart files"),
		EnvFile:     flag.String("env", "", "Path to .env file"),

		ListSymbols: flag.Bool("list-symbols", false, "List symbols available under the data root"),

		ShowVersion: flag.Bool("version", false, "Show version information"),
		ShowHelp:    flag.Bool("help", false, "Show detailed help"),
	}
}

// ApplyOverrides overlays any explicitly set flags onto the loaded config.
func (f *BacktestFlags) ApplyOverrides(cfg *config.InvestmentConfig) {
	if *f.Symbol != "" {
		cfg.Symbol = *f.Symbol
	}
	if *f.StartYear != 0 {
		cfg.StartYear = *f.StartYear
	}
	if *f.StartMonth != 0 {
		cfg.StartMonth = *f.StartMonth
	}
	if *f.Years != 0 {
		cfg.InvestmentPeriodYears = *f.Years
	}
	if *f.DCAMonths != 0 {
		cfg.DCAMonths = *f.DCAMonths
	}
	if *f.Principal != 0 {
		cfg.Principal = *f.Principal
	}
}

// ValidateBacktestFlags checks flag combinations before any work happens.
func ValidateBacktestFlags(f *BacktestFlags) error {
	if *f.StartMonth != 0 && (*f.StartMonth < 1 || *f.StartMonth > 12) {
		return fmt.Errorf("start-month must be between 1 and 12, got %d", *f.StartMonth)
	}
	if *f.Years < 0 {
		return fmt.Errorf("years cannot be negative, got %d", *f.Years)
	}
	if *f.DCAMonths < 0 {
		return fmt.Errorf("dca-months cannot be negative, got %d", *f.DCAMonths)
	}
	if *f.Principal < 0 {
		return fmt.Errorf("principal cannot be negative, got %.2f", *f.Principal)
	}
	return nil
}
