package backtest

import (
	"time"

	"github.com/bokslquant/index-backtest/internal/errors"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// ValueLedger expands a ledger into the daily portfolio valuation: one record
// per trading day in the series from the first transaction date through
// horizonEnd inclusive. This is a full re-expansion rather than a sparse
// transaction log because the metrics calculator needs daily granularity for
// its volatility and Sharpe estimates.
//
// The transform is pure: it reads the series and ledger and allocates a fresh
// record slice.
func ValueLedger(ledger types.Ledger, series *types.PriceSeries, horizonEnd time.Time) ([]types.DailyRecord, error) {
	if len(ledger) == 0 {
		return nil, errors.NewBacktestError(errors.ErrorCategoryData, "valuation", "value_ledger", "ledger is empty")
	}

	bars := series.BarsBetween(ledger.FirstDate(), horizonEnd)
	if len(bars) == 0 {
		return nil, errors.NewInsufficientHistoryError("valuation", "no trading days between first transaction and horizon end")
	}

	records := make([]types.DailyRecord, 0, len(bars))

	var (
		units       float64
		invested    float64
		runningPeak float64
		next        int // next ledger entry to apply
	)

	for _, bar := range bars {
		for next < len(ledger) && !ledger[next].Date.After(bar.Date) {
			units += ledger[next].UnitsPurchased
			invested += ledger[next].AmountInvested
			next++
		}

		marketValue := units * bar.Close
		if marketValue > runningPeak {
			runningPeak = marketValue
		}

		drawdown := 0.0
		if runningPeak > 0 {
			drawdown = (marketValue - runningPeak) / runningPeak
		}

		avgPrice := 0.0
		totalReturn := 0.0
		if units > 0 {
			avgPrice = invested / units
		}
		if invested > 0 {
			totalReturn = marketValue/invested - 1
		}

		records = append(records, types.DailyRecord{
			Date:               bar.Date,
			Price:              bar.Close,
			CumulativeUnits:    units,
			CumulativeInvested: invested,
			AveragePrice:       avgPrice,
			MarketValue:        marketValue,
			RunningPeak:        runningPeak,
			Drawdown:           drawdown,
			TotalReturn:        totalReturn,
		})
	}

	return records, nil
}
