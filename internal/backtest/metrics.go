package backtest

import (
	"math"

	"github.com/bokslquant/index-backtest/internal/errors"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// Formula constants shared by the single-run and rolling paths. These live in
// exactly one place: two definitions drifting apart would make single-run and
// batch numbers disagree, which is the worst correctness bug this system can
// have.
const (
	// RiskFreeRate is the fixed annual risk-free rate used in Sharpe.
	RiskFreeRate = 0.02

	// AnnualizationFactor converts daily figures to annual: calendar days per
	// year, matching the CAGR day count.
	AnnualizationFactor = 365.25

	// ShortWindowDays is the trading-day count under which CAGR is dominated
	// by rounding and results are flagged low-confidence.
	ShortWindowDays = 30
)

// Summarize reduces a daily valuation sequence into performance metrics.
// The input is the DailyRecord sequence of one run; metrics are never
// recomputed from the ledger directly.
func Summarize(records []types.DailyRecord) (types.PerformanceMetrics, error) {
	if len(records) == 0 {
		return types.PerformanceMetrics{}, errors.NewBacktestError(
			errors.ErrorCategoryData, "metrics", "summarize", "no daily records to summarize")
	}

	last := records[len(records)-1]

	m := types.PerformanceMetrics{
		FinalValue:    last.MarketValue,
		TotalInvested: last.CumulativeInvested,
		TotalReturn:   last.MarketValue/last.CumulativeInvested - 1,
		TradingDays:   len(records),
	}

	m.Years = float64(len(records)) / AnnualizationFactor
	m.CAGR = math.Pow(last.MarketValue/last.CumulativeInvested, 1/m.Years) - 1
	m.ShortWindow = len(records) < ShortWindowDays

	// Daily return differences: successive diffs of the total_return field,
	// not of market value, so DCA cash inflows do not register as gains.
	diffs := make([]float64, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		diffs = append(diffs, records[i].TotalReturn-records[i-1].TotalReturn)
	}

	meanReturn := mean(diffs) * AnnualizationFactor
	m.Volatility = stdDev(diffs) * math.Sqrt(AnnualizationFactor)

	if m.Volatility == 0 {
		// Sharpe is undefined on a flat series; flag instead of dividing.
		m.Degenerate = true
		m.Sharpe = 0
	} else {
		m.Sharpe = (meanReturn - RiskFreeRate) / m.Volatility
	}

	minDrawdown := 0.0
	for _, r := range records {
		if r.Drawdown < minDrawdown {
			minDrawdown = r.Drawdown
		}
	}
	m.MDD = math.Abs(minDrawdown)

	return m, nil
}

// mean returns the arithmetic mean, 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev returns the sample standard deviation (n-1 denominator), 0 when
// fewer than two values.
func stdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	avg := mean(values)
	variance := 0.0
	for _, v := range values {
		d := v - avg
		variance += d * d
	}
	variance /= float64(len(values) - 1)
	return math.Sqrt(variance)
}
