package types

import "time"

// DailyBar is a single daily OHLCV candle for an index.
type DailyBar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries is an ordered, read-only view of daily bars for one symbol.
// Dates are strictly increasing; gaps appear only at non-trading days.
// The series is never mutated after loading.
type PriceSeries struct {
	Symbol string
	Bars   []DailyBar
}

// NewPriceSeries wraps loaded bars into a series view.
func NewPriceSeries(symbol string, bars []DailyBar) *PriceSeries {
	return &PriceSeries{Symbol: symbol, Bars: bars}
}

// Len returns the number of trading days in the series.
func (s *PriceSeries) Len() int {
	return len(s.Bars)
}

// FirstDate returns the first trading date in the series.
func (s *PriceSeries) FirstDate() time.Time {
	if len(s.Bars) == 0 {
		return time.Time{}
	}
	return s.Bars[0].Date
}

// LastDate returns the last trading date in the series.
func (s *PriceSeries) LastDate() time.Time {
	if len(s.Bars) == 0 {
		return time.Time{}
	}
	return s.Bars[len(s.Bars)-1].Date
}

// IndexOnOrAfter returns the index of the first bar whose date is >= date,
// or -1 when every bar precedes it. This is the forward-snap lookup used to
// map scheduled calendar dates onto actual trading days.
func (s *PriceSeries) IndexOnOrAfter(date time.Time) int {
	lo, hi := 0, len(s.Bars)
	for lo < hi {
		mid := (lo + hi) / 2
		if s.Bars[mid].Date.Before(date) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == len(s.Bars) {
		return -1
	}
	return lo
}

// BarsBetween returns the bars with first <= bar.Date <= last as a
// sub-slice of the backing array.
func (s *PriceSeries) BarsBetween(first, last time.Time) []DailyBar {
	start := s.IndexOnOrAfter(first)
	if start < 0 {
		return nil
	}
	end := start
	for end < len(s.Bars) && !s.Bars[end].Date.After(last) {
		end++
	}
	return s.Bars[start:end]
}
