package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bokslquant/index-backtest/internal/backtest"
)

// DefaultCSVReporter writes daily valuation records to CSV files.
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

// WriteDailyRecordsCSV writes one row per trading day of a single run.
func (r *DefaultCSVReporter) WriteDailyRecordsCSV(run *backtest.RunResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"date", "price", "cumulative_invested", "cumulative_units",
		"average_price", "market_value", "total_return", "running_peak", "drawdown",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, rec := range run.DailyRecords {
		row := []string{
			rec.Date.Format("2006-01-02"),
			strconv.FormatFloat(rec.Price, 'f', 4, 64),
			strconv.FormatFloat(rec.CumulativeInvested, 'f', 2, 64),
			strconv.FormatFloat(rec.CumulativeUnits, 'f', 8, 64),
			strconv.FormatFloat(rec.AveragePrice, 'f', 4, 64),
			strconv.FormatFloat(rec.MarketValue, 'f', 2, 64),
			strconv.FormatFloat(rec.TotalReturn, 'f', 6, 64),
			strconv.FormatFloat(rec.RunningPeak, 'f', 2, 64),
			strconv.FormatFloat(rec.Drawdown, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
