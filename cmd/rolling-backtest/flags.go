package main

import (
	"flag"
	"fmt"

	"github.com/bokslquant/index-backtest/pkg/config"
)

// RollingFlags holds all command line flags for the rolling sweep command
type RollingFlags struct {
	// Configuration
	ConfigFile *string
	Symbol     *string
	DataRoot   *string

	// Sweep range
	StartYear  *int
	StartMonth *int
	EndYear    *int
	EndMonth   *int

	// Window parameters shared by every start month
	Years     *int
	DCAMonths *int
	Principal *float64

	// Execution options
	Workers *int

	// Output options
	ConsoleOnly *bool
	EnvFile     *string

	// Help and version
	ShowVersion *bool
	ShowHelp    *bool
}

// NewRollingFlags creates and registers all command line flags
func NewRollingFlags() *RollingFlags {
	return &RollingFlags{
		ConfigFile: flag.String("config", "", "Path to JSON configuration file"),
		Symbol:     flag.String("symbol", "", "Index symbol (e.g. NASDAQ, SPX)"),
		DataRoot:   flag.String("data-root", config.DefaultDataRoot, "Root directory holding <SYMBOL>_data.csv files"),

		StartYear:  flag.Int("start-year", 0, "First window start year"),
		StartMonth: flag.Int("start-month", 0, "First window start month (1-12)"),
		EndYear:    flag.Int("end-year", 0, "Last window start year"),
		EndMonth:   flag.Int("end-month", 0, "Last window start month (1-12)"),

		Years:     flag.Int("years", 0, "Investment horizon in years for every window"),
		DCAMonths: flag.Int("dca-months", 0, "Number of monthly DCA installments"),
		Principal: flag.Float64("principal", 0, "Total amount to invest per window"),

		Workers: flag.Int("workers", 0, "Worker goroutines (default: number of CPUs)"),

		ConsoleOnly: flag.Bool("console-only", false, "Skip Excel and chart files"),
		EnvFile:     flag.String("env", "", "Path to .env file"),

		ShowVersion: flag.Bool("version", false, "Show version information"),
		ShowHelp:    flag.Bool("help", false, "Show detailed help"),
	}
}

// ApplyOverrides overlays any explicitly set flags onto the loaded config.
func (f *RollingFlags) ApplyOverrides(cfg *config.RollingConfig) {
	if *f.Symbol != "" {
		cfg.Symbol = *f.Symbol
	}
	if *f.StartYear != 0 {
		cfg.StartYear = *f.StartYear
	}
	if *f.StartMonth != 0 {
		cfg.StartMonth = *f.StartMonth
	}
	if *f.EndYear != 0 {
		cfg.EndYear = *f.EndYear
	}
	if *f.EndMonth != 0 {
		cfg.EndMonth = *f.EndMonth
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

// ValidateRollingFlags checks flag combinations before any work happens.
func ValidateRollingFlags(f *RollingFlags) error {
	for _, m := range []struct {
		name  string
		value int
	}{
		{"start-month", *f.StartMonth},
		{"end-month", *f.EndMonth},
	} {
		if m.value != 0 && (m.value < 1 || m.value > 12) {
			return fmt.Errorf("%s must be between 1 and 12, got %d", m.name, m.value)
		}
	}
	if *f.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", *f.Workers)
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
