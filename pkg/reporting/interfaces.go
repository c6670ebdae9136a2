package reporting

import (
	"github.com/bokslquant/index-backtest/internal/backtest"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// Package reporting renders backtest results for human consumption. The core
// engine hands over plain structured data; everything here is presentation.

// ConsoleReporter defines interface for console output
type ConsoleReporter interface {
	OutputComparison(result *backtest.ComparisonResult)
	OutputRollingSummary(result *types.RollingBatchResult)
}

// FileReporter defines interface for file output
type FileReporter interface {
	WriteComparisonXLSX(result *backtest.ComparisonResult, path string) error
	WriteRollingXLSX(result *types.RollingBatchResult, path string) error
	WriteDailyRecordsCSV(run *backtest.RunResult, path string) error
}

// ChartRenderer defines interface for chart image output
type ChartRenderer interface {
	RenderValueChart(result *backtest.ComparisonResult, path string) error
	RenderRollingChart(result *types.RollingBatchResult, path string) error
}

// PathManager defines interface for output path management
type PathManager interface {
	GetDefaultOutputDir(symbol, runMode string) string
	EnsureDirectoryExists(path string) error
}

// Reporter combines all reporting interfaces
type Reporter interface {
	ConsoleReporter
	FileReporter
	ChartRenderer
	PathManager
}

// ExcelStyles holds Excel formatting styles
type ExcelStyles struct {
	HeaderStyle       int
	TitleStyle        int
	CurrencyStyle     int
	PercentStyle      int
	RatioStyle        int
	BaseStyle         int
	LumpSumFillStyle  int
	DCAFillStyle      int
	DifferenceStyle   int
}
