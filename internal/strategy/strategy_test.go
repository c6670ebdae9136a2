package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bokslquant/index-backtest/internal/errors"
	"github.com/bokslquant/index-backtest/pkg/config"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// makeWeekdaySeries generates a synthetic daily series covering count weekday
// bars starting at the first weekday on or after start. The price function
// maps bar index to close price.
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

func flatPrice(v float64) func(int) float64 {
	return func(int) float64 { return v }
}

// longTestSeries covers 1995-01 through roughly 2011, enough for a 10-year
// window starting in 2000.
func longTestSeries() *types.PriceSeries {
	start := time.Date(1995, 1, 2, 0, 0, 0, 0, time.UTC)
	return makeWeekdaySeries("NASDAQ", start, 4400, func(i int) float64 {
		return 100.0 + float64(i)*0.05
	})
}

func testConfig() config.InvestmentConfig {
	return config.InvestmentConfig{
		Symbol:                "NASDAQ",
		StartYear:             2000,
		StartMonth:            1,
		InvestmentPeriodYears: 10,
		DCAMonths:             60,
		Principal:             10_000_000,
	}
}

// TestLumpSum_SingleTransaction verifies lump sum buys exactly once at the
// first trading day of the window.
func TestLumpSum_SingleTransaction(t *testing.T) {
	series := longTestSeries()
	cfg := testConfig()

	ledger, err := NewLumpSumStrategy().Execute(series, cfg)
	require.NoError(t, err)
	require.Len(t, ledger, 1)

	tx := ledger[0]
	assert.Equal(t, cfg.Principal, tx.AmountInvested)
	assert.InDelta(t, cfg.Principal/tx.Price, tx.UnitsPurchased, 1e-9)

	// 2000-01-01 is a Saturday, so the buy snaps to Monday 2000-01-03.
	assert.Equal(t, time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC), tx.Date)
}

// TestLumpSum_StartBeforeHistory verifies a window starting before the first
// bar fails with InsufficientHistory rather than silently truncating.
func TestLumpSum_StartBeforeHistory(t *testing.T) {
	series := longTestSeries()
	cfg := testConfig()
	cfg.StartYear = 1950

	_, err := NewLumpSumStrategy().Execute(series, cfg)
	require.Error(t, err)
	assert.True(t, errors.IsInsufficientHistory(err))
}

// TestLumpSum_HorizonPastHistory verifies a window ending after the last bar
// fails with InsufficientHistory.
func TestLumpSum_HorizonPastHistory(t *testing.T) {
	series := longTestSeries()
	cfg := testConfig()
	cfg.StartYear = 2010 // last bars land around 2011-2012

	_, err := NewLumpSumStrategy().Execute(series, cfg)
	require.Error(t, err)
	assert.True(t, errors.IsInsufficientHistory(err))
}

// TestLumpSum_EmptySeries verifies an empty series is rejected.
func TestLumpSum_EmptySeries(t *testing.T) {
	series := &types.PriceSeries{Symbol: "NASDAQ"}

	_, err := NewLumpSumStrategy().Execute(series, testConfig())
	require.Error(t, err)
	assert.True(t, errors.IsInsufficientHistory(err))
}

// TestDCA_LedgerSumsToPrincipal verifies the installments sum to the
// principal exactly even when the monthly amount does not divide evenly.
func TestDCA_LedgerSumsToPrincipal(t *testing.T) {
	series := longTestSeries()
	cfg := testConfig()
	cfg.DCAMonths = 7 // 10,000,000 / 7 is not representable exactly

	ledger, err := NewDCAStrategy().Execute(series, cfg)
	require.NoError(t, err)
	require.Len(t, ledger, 7)
	assert.InDelta(t, cfg.Principal, ledger.TotalInvested(), 1e-6)
}

// TestDCA_InstallmentCount verifies one transaction per configured month.
func TestDCA_InstallmentCount(t *testing.T) {
	series := longTestSeries()
	cfg := testConfig()
	cfg.DCAMonths = 24

	ledger, err := NewDCAStrategy().Execute(series, cfg)
	require.NoError(t, err)
	require.Len(t, ledger, 24)

	monthly := cfg.Principal / 24
	for i, tx := range ledger[:23] {
		assert.InDelta(t, monthly, tx.AmountInvested, 1e-9, "installment %d", i)
	}
	assert.InDelta(t, cfg.Principal-monthly*23, ledger[23].AmountInvested, 1e-9)
}

// TestDCA_ForwardSnap verifies scheduled dates on non-trading days buy at the
// next trading date instead.
func TestDCA_ForwardSnap(t *testing.T) {
	series := longTestSeries()
	cfg := testConfig()
	cfg.DCAMonths = 3

	ledger, err := NewDCAStrategy().Execute(series, cfg)
	require.NoError(t, err)
	require.Len(t, ledger, 3)

	// 2000-01-01 Sat → Mon 2000-01-03; 2000-02-01 Tue; 2000-03-01 Wed.
	assert.Equal(t, time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC), ledger[0].Date)
	assert.Equal(t, time.Date(2000, 2, 1, 0, 0, 0, 0, time.UTC), ledger[1].Date)
	assert.Equal(t, time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC), ledger[2].Date)
}

// TestDCA_DatesNonDecreasing verifies installments never go backwards in time.
func TestDCA_DatesNonDecreasing(t *testing.T) {
	series := longTestSeries()
	cfg := testConfig()

	ledger, err := NewDCAStrategy().Execute(series, cfg)
	require.NoError(t, err)
	for i := 1; i < len(ledger); i++ {
		assert.False(t, ledger[i].Date.Before(ledger[i-1].Date),
			"installment %d dated %s before installment %d dated %s",
			i, ledger[i].Date, i-1, ledger[i-1].Date)
	}
}

// TestDCA_ScheduleExhausted verifies a schedule running past the end of the
// series fails rather than buying fewer installments. The horizon itself fits
// inside the data, so window validation passes and the schedule check fires.
func TestDCA_ScheduleExhausted(t *testing.T) {
	// ~14 months of weekday bars starting 2000-01-03.
	start := time.Date(2000, 1, 3, 0, 0, 0, 0, time.UTC)
	series := makeWeekdaySeries("NASDAQ", start, 300, flatPrice(100))

	cfg := config.InvestmentConfig{
		Symbol:                "NASDAQ",
		StartYear:             2000,
		StartMonth:            1,
		InvestmentPeriodYears: 1, // horizon end 2000-12-31, inside the data
		DCAMonths:             24,
		Principal:             240_000,
	}

	_, err := NewDCAStrategy().Execute(series, cfg)
	require.Error(t, err)
	assert.True(t, errors.IsScheduleExhausted(err))
}

// TestDCA_SingleMonthEqualsLumpSum verifies dca_months=1 degenerates to the
// lump sum ledger.
func TestDCA_SingleMonthEqualsLumpSum(t *testing.T) {
	series := longTestSeries()
	cfg := testConfig()
	cfg.DCAMonths = 1

	dcaLedger, err := NewDCAStrategy().Execute(series, cfg)
	require.NoError(t, err)
	lsLedger, err := NewLumpSumStrategy().Execute(series, cfg)
	require.NoError(t, err)

	require.Len(t, dcaLedger, 1)
	assert.Equal(t, lsLedger[0].Date, dcaLedger[0].Date)
	assert.Equal(t, lsLedger[0].AmountInvested, dcaLedger[0].AmountInvested)
	assert.InDelta(t, lsLedger[0].UnitsPurchased, dcaLedger[0].UnitsPurchased, 1e-9)
}

// TestNewStrategy_Factory verifies strategy lookup by name.
func TestNewStrategy_Factory(t *testing.T) {
	ls, err := NewStrategy(NameLumpSum)
	require.NoError(t, err)
	assert.Equal(t, NameLumpSum, ls.GetName())

	dca, err := NewStrategy(NameDCA)
	require.NoError(t, err)
	assert.Equal(t, NameDCA, dca.GetName())

	_, err = NewStrategy("martingale")
	assert.Error(t, err)
}

// TestAll_ComparisonOrder verifies the executor set the comparison pipeline
// iterates: lump sum first, then DCA.
func TestAll_ComparisonOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 2)
	assert.Equal(t, NameLumpSum, all[0].GetName())
	assert.Equal(t, NameDCA, all[1].GetName())
}
