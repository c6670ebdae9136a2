package backtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bokslquant/index-backtest/pkg/types"
)

// makeWeekdaySeries generates count weekday bars starting at the first
// weekday on or after start, priced by the index function.
func makeWeekdaySeries(symbol string, start time.Time, count int, price func(i int) float64) *types.PriceSeries {
	bars := make([]types.DailyBar, 0, count)
	d := start
	for len(bars) < count {
		if d.Weekday() != time.Saturday && d.Weekday() != time.Sunday {
			p := price(len(bars))
			bars = append(bars, types.DailyBar{
				Date:   d,
				Open:   p,
				High:   p,
				Low:    p,
				Close:  p,
				Volume: 1_000_000,
			})
		}
		d = d.AddDate(0, 0, 1)
	}
	return &types.PriceSeries{Symbol: symbol, Bars: bars}
}

// TestValueLedger_EmptyLedger verifies an empty ledger is rejected.
func TestValueLedger_EmptyLedger(t *testing.T) {
	series := makeWeekdaySeries("TEST", time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC), 10,
		func(int) float64 { return 100 })

	_, err := ValueLedger(nil, series, series.LastDate())
	assert.Error(t, err)
}

// TestValueLedger_CoversEveryTradingDay verifies one record per trading day
// from the first transaction through the horizon end.
func TestValueLedger_CoversEveryTradingDay(t *testing.T) {
	series := makeWeekdaySeries("TEST", time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC), 50,
		func(i int) float64 { return 100 + float64(i) })

	ledger := types.Ledger{{
		Date:           series.Bars[5].Date,
		AmountInvested: 1000,
		Price:          series.Bars[5].Close,
		UnitsPurchased: 1000 / series.Bars[5].Close,
	}}

	horizonEnd := series.Bars[40].Date
	records, err := ValueLedger(ledger, series, horizonEnd)
	require.NoError(t, err)

	assert.Len(t, records, 36) // bars 5 through 40 inclusive
	assert.Equal(t, series.Bars[5].Date, records[0].Date)
	assert.Equal(t, horizonEnd, records[len(records)-1].Date)
}

// TestValueLedger_AppliesInstallments verifies cumulative invested and units
// step up exactly at each transaction date.
func TestValueLedger_AppliesInstallments(t *testing.T) {
	series := makeWeekdaySeries("TEST", time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC), 30,
		func(int) float64 { return 100 })

	ledger := types.Ledger{
		{Date: series.Bars[0].Date, AmountInvested: 500, Price: 100, UnitsPurchased: 5},
		{Date: series.Bars[10].Date, AmountInvested: 500, Price: 100, UnitsPurchased: 5},
	}

	records, err := ValueLedger(ledger, series, series.LastDate())
	require.NoError(t, err)

	assert.Equal(t, 500.0, records[0].CumulativeInvested)
	assert.Equal(t, 500.0, records[9].CumulativeInvested)
	assert.Equal(t, 1000.0, records[10].CumulativeInvested)
	assert.Equal(t, 10.0, records[10].CumulativeUnits)
	assert.Equal(t, 1000.0, records[len(records)-1].CumulativeInvested)
}

// TestValueLedger_PeakAndDrawdownInvariants verifies the running peak never
// decreases and drawdown is never positive.
func TestValueLedger_PeakAndDrawdownInvariants(t *testing.T) {
	// Rise, crash, partial recovery.
	prices := func(i int) float64 {
		switch {
		case i < 20:
			return 100 + float64(i)*2
		case i < 30:
			return 140 - float64(i-20)*5
		default:
			return 90 + float64(i-30)
		}
	}
	series := makeWeekdaySeries("TEST", time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC), 40, prices)

	ledger := types.Ledger{{
		Date:           series.Bars[0].Date,
		AmountInvested: 1000,
		Price:          series.Bars[0].Close,
		UnitsPurchased: 10,
	}}

	records, err := ValueLedger(ledger, series, series.LastDate())
	require.NoError(t, err)

	prevPeak := 0.0
	for i, rec := range records {
		assert.GreaterOrEqual(t, rec.RunningPeak, prevPeak, "peak decreased at record %d", i)
		assert.LessOrEqual(t, rec.Drawdown, 0.0, "positive drawdown at record %d", i)
		assert.GreaterOrEqual(t, rec.RunningPeak, rec.MarketValue, "peak below value at record %d", i)
		prevPeak = rec.RunningPeak
	}
}

// TestValueLedger_AveragePrice verifies average purchase price tracks
// invested over units.
func TestValueLedger_AveragePrice(t *testing.T) {
	series := makeWeekdaySeries("TEST", time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC), 20,
		func(int) float64 { return 100 })

	ledger := types.Ledger{
		{Date: series.Bars[0].Date, AmountInvested: 1000, Price: 100, UnitsPurchased: 10},
		{Date: series.Bars[5].Date, AmountInvested: 1000, Price: 200, UnitsPurchased: 5},
	}

	records, err := ValueLedger(ledger, series, series.LastDate())
	require.NoError(t, err)

	assert.InDelta(t, 100.0, records[0].AveragePrice, 1e-9)
	assert.InDelta(t, 2000.0/15.0, records[5].AveragePrice, 1e-9)
}
