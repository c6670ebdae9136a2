package types

import "time"

// Transaction is one purchase executed by a strategy run.
type Transaction struct {
	Date           time.Time
	AmountInvested float64
	Price          float64
	UnitsPurchased float64
}

// Ledger is the ordered transaction list produced by one strategy run.
type Ledger []Transaction

// TotalInvested sums the invested amounts across the ledger.
func (l Ledger) TotalInvested() float64 {
	total := 0.0
	for _, tx := range l {
		total += tx.AmountInvested
	}
	return total
}

// TotalUnits sums the purchased units across the ledger.
func (l Ledger) TotalUnits() float64 {
	total := 0.0
	for _, tx := range l {
		total += tx.UnitsPurchased
	}
	return total
}

// FirstDate returns the date of the first transaction.
func (l Ledger) FirstDate() time.Time {
	if len(l) == 0 {
		return time.Time{}
	}
	return l[0].Date
}

// DailyRecord is one trading day of the expanded portfolio valuation.
type DailyRecord struct {
	Date               time.Time
	Price              float64
	CumulativeUnits    float64
	CumulativeInvested float64
	AveragePrice       float64
	MarketValue        float64
	RunningPeak        float64
	Drawdown           float64
	TotalReturn        float64
}

// PerformanceMetrics summarizes one daily valuation sequence. Degenerate is
// set when volatility is zero and Sharpe is therefore undefined; ShortWindow
// is set for windows under 30 trading days, where CAGR is dominated by
// rounding and the numbers should be treated as low-confidence.
type PerformanceMetrics struct {
	FinalValue    float64
	TotalInvested float64
	TotalReturn   float64
	CAGR          float64
	MDD           float64
	Sharpe        float64
	Volatility    float64
	TradingDays   int
	Years         float64
	Degenerate    bool
	ShortWindow   bool
}

// WindowResult is the outcome of one rolling window: metrics for both
// strategies, or a gap marker with the reason the window was skipped.
type WindowResult struct {
	StartYear  int
	StartMonth int
	Start      time.Time
	End        time.Time
	LumpSum    PerformanceMetrics
	DCA        PerformanceMetrics
	Skipped    bool
	SkipReason string
}

// RollingBatchResult collects one WindowResult per step of a rolling sweep,
// ordered by window start date. It is populated once and never mutated.
type RollingBatchResult struct {
	Symbol                string
	InvestmentPeriodYears int
	DCAMonths             int
	Principal             float64
	Windows               []WindowResult
}

// Completed returns the windows that produced metrics.
func (r *RollingBatchResult) Completed() []WindowResult {
	out := make([]WindowResult, 0, len(r.Windows))
	for _, w := range r.Windows {
		if !w.Skipped {
			out = append(out, w)
		}
	}
	return out
}
