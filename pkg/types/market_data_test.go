package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleSeries() *PriceSeries {
	// Mon 2020-01-06 .. Fri 2020-01-10, then Mon 2020-01-13.
	dates := []time.Time{
		day(2020, 1, 6), day(2020, 1, 7), day(2020, 1, 8),
		day(2020, 1, 9), day(2020, 1, 10), day(2020, 1, 13),
	}
	bars := make([]DailyBar, len(dates))
	for i, d := range dates {
		p := 100 + float64(i)
		bars[i] = DailyBar{Date: d, Open: p, High: p, Low: p, Close: p, Volume: 1}
	}
	return NewPriceSeries("TEST", bars)
}

// TestIndexOnOrAfter_ExactMatch verifies a trading date maps to itself.
func TestIndexOnOrAfter_ExactMatch(t *testing.T) {
	s := sampleSeries()
	assert.Equal(t, 2, s.IndexOnOrAfter(day(2020, 1, 8)))
}

// TestIndexOnOrAfter_ForwardSnap verifies weekend dates snap to the next
// trading day.
func TestIndexOnOrAfter_ForwardSnap(t *testing.T) {
	s := sampleSeries()
	// Sat 2020-01-11 and Sun 2020-01-12 both snap to Mon 2020-01-13.
	assert.Equal(t, 5, s.IndexOnOrAfter(day(2020, 1, 11)))
	assert.Equal(t, 5, s.IndexOnOrAfter(day(2020, 1, 12)))
}

// TestIndexOnOrAfter_BeforeSeries verifies dates before the first bar map to
// index 0.
func TestIndexOnOrAfter_BeforeSeries(t *testing.T) {
	s := sampleSeries()
	assert.Equal(t, 0, s.IndexOnOrAfter(day(2019, 12, 1)))
}

// TestIndexOnOrAfter_PastEnd verifies dates after the last bar return -1.
func TestIndexOnOrAfter_PastEnd(t *testing.T) {
	s := sampleSeries()
	assert.Equal(t, -1, s.IndexOnOrAfter(day(2020, 1, 14)))
}

// TestBarsBetween_InclusiveBounds verifies both endpoints are included.
func TestBarsBetween_InclusiveBounds(t *testing.T) {
	s := sampleSeries()
	bars := s.BarsBetween(day(2020, 1, 7), day(2020, 1, 10))
	assert.Len(t, bars, 4)
	assert.Equal(t, day(2020, 1, 7), bars[0].Date)
	assert.Equal(t, day(2020, 1, 10), bars[3].Date)
}

// TestBarsBetween_EmptyRange verifies a range beyond the data is empty.
func TestBarsBetween_EmptyRange(t *testing.T) {
	s := sampleSeries()
	assert.Empty(t, s.BarsBetween(day(2020, 2, 1), day(2020, 3, 1)))
}

// TestLedger_Totals verifies the ledger aggregate helpers.
func TestLedger_Totals(t *testing.T) {
	ledger := Ledger{
		{Date: day(2020, 1, 6), AmountInvested: 500, Price: 100, UnitsPurchased: 5},
		{Date: day(2020, 2, 3), AmountInvested: 300, Price: 150, UnitsPurchased: 2},
	}

	assert.InDelta(t, 800, ledger.TotalInvested(), 1e-12)
	assert.InDelta(t, 7, ledger.TotalUnits(), 1e-12)
	assert.Equal(t, day(2020, 1, 6), ledger.FirstDate())
}

// TestRollingBatchResult_Completed counts non-skipped windows.
func TestRollingBatchResult_Completed(t *testing.T) {
	result := RollingBatchResult{
		Windows: []WindowResult{
			{Skipped: false},
			{Skipped: true, SkipReason: "insufficient history"},
			{Skipped: false},
		},
	}
	assert.Len(t, result.Completed(), 2)
}
