package backtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bokslquant/index-backtest/internal/strategy"
	"github.com/bokslquant/index-backtest/pkg/config"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// engineTestSeries covers 1995 through roughly 2011.
func engineTestSeries() *types.PriceSeries {
	start := time.Date(1995, 1, 2, 0, 0, 0, 0, time.UTC)
	return makeWeekdaySeries("NASDAQ", start, 4400, func(i int) float64 {
		return 100.0 + float64(i)*0.05
	})
}

func engineTestConfig() config.InvestmentConfig {
	return config.InvestmentConfig{
		Symbol:                "NASDAQ",
		StartYear:             2000,
		StartMonth:            1,
		InvestmentPeriodYears: 5,
		DCAMonths:             24,
		Principal:             10_000_000,
	}
}

// TestEngine_Run verifies the full pipeline produces a ledger, daily records
// and metrics for one strategy.
func TestEngine_Run(t *testing.T) {
	engine := NewEngine()
	series := engineTestSeries()
	cfg := engineTestConfig()

	result, err := engine.Run(strategy.NewDCAStrategy(), series, cfg)
	require.NoError(t, err)

	assert.Equal(t, strategy.NameDCA, result.StrategyName)
	assert.Len(t, result.Ledger, cfg.DCAMonths)
	assert.InDelta(t, cfg.Principal, result.Ledger.TotalInvested(), 1e-6)
	assert.NotEmpty(t, result.DailyRecords)
	assert.Equal(t, len(result.DailyRecords), result.Metrics.TradingDays)
	assert.Equal(t, cfg.Principal, result.Metrics.TotalInvested)
}

// TestEngine_Run_InvalidConfig verifies configuration errors surface before
// any execution.
func TestEngine_Run_InvalidConfig(t *testing.T) {
	engine := NewEngine()
	cfg := engineTestConfig()
	cfg.Principal = -1

	_, err := engine.Run(strategy.NewLumpSumStrategy(), engineTestSeries(), cfg)
	assert.Error(t, err)
}

// TestEngine_RunComparison verifies both strategies run over the identical
// window and data.
func TestEngine_RunComparison(t *testing.T) {
	engine := NewEngine()
	series := engineTestSeries()
	cfg := engineTestConfig()

	result, err := engine.RunComparison(series, cfg)
	require.NoError(t, err)

	require.NotNil(t, result.LumpSum)
	require.NotNil(t, result.DCA)
	assert.Equal(t, strategy.NameLumpSum, result.LumpSum.StrategyName)
	assert.Equal(t, strategy.NameDCA, result.DCA.StrategyName)

	// Same window: identical daily record coverage start to end is not
	// required (DCA valuation starts at its first buy), but both end at the
	// horizon.
	lsLast := result.LumpSum.DailyRecords[len(result.LumpSum.DailyRecords)-1]
	dcaLast := result.DCA.DailyRecords[len(result.DCA.DailyRecords)-1]
	assert.Equal(t, lsLast.Date, dcaLast.Date)

	// Both invested the full principal by the end.
	assert.Equal(t, cfg.Principal, result.LumpSum.Metrics.TotalInvested)
	assert.InDelta(t, cfg.Principal, result.DCA.Metrics.TotalInvested, 1e-6)
}

// TestEngine_RunComparison_SingleInstallment verifies dca_months=1 produces
// metrics identical to lump sum.
func TestEngine_RunComparison_SingleInstallment(t *testing.T) {
	engine := NewEngine()
	series := engineTestSeries()
	cfg := engineTestConfig()
	cfg.DCAMonths = 1

	result, err := engine.RunComparison(series, cfg)
	require.NoError(t, err)
	assert.Equal(t, result.LumpSum.Metrics, result.DCA.Metrics)
}
