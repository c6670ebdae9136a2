package config

import (
	"fmt"
	"time"
)

// Investment configuration constants
const (
	DefaultPrincipal             = 10_000_000.0
	DefaultInvestmentPeriodYears = 10
	DefaultDCAMonths             = 60
	DefaultSymbol                = "NASDAQ"
	DefaultDataRoot              = "data"

	MinDCAMonths = 1
)

// InvestmentConfig holds the parameters of one backtest window.
type InvestmentConfig struct {
	Symbol                string  `json:"symbol"`
	StartYear             int     `json:"start_year"`
	StartMonth            int     `json:"start_month"`
	InvestmentPeriodYears int     `json:"investment_period_years"`
	DCAMonths             int     `json:"dca_months"`
	Principal             float64 `json:"principal_amount"`
}

// RollingConfig holds the parameters of a rolling window sweep. Each calendar
// month in [StartYear/StartMonth, EndYear/EndMonth] becomes one window start.
type RollingConfig struct {
	Symbol                string  `json:"symbol"`
	StartYear             int     `json:"start_year"`
	StartMonth            int     `json:"start_month"`
	EndYear               int     `json:"end_year"`
	EndMonth              int     `json:"end_month"`
	InvestmentPeriodYears int     `json:"investment_period_years"`
	DCAMonths             int     `json:"dca_months"`
	Principal             float64 `json:"principal_amount"`
}

// StartDate returns the first calendar day of the configured start month.
// Strategy executors snap this forward to the first trading day.
func (c InvestmentConfig) StartDate() time.Time {
	return time.Date(c.StartYear, time.Month(c.StartMonth), 1, 0, 0, 0, 0, time.UTC)
}

// HorizonEnd returns the last calendar day of the investment window.
func (c InvestmentConfig) HorizonEnd() time.Time {
	return c.StartDate().AddDate(c.InvestmentPeriodYears, 0, 0).AddDate(0, 0, -1)
}

// MonthlyAmount returns the per-installment DCA amount before the final
// installment absorbs the rounding remainder.
func (c InvestmentConfig) MonthlyAmount() float64 {
	return c.Principal / float64(c.DCAMonths)
}

// Validate checks the window parameters.
func (c InvestmentConfig) Validate() error {
	if c.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if c.StartMonth < 1 || c.StartMonth > 12 {
		return fmt.Errorf("start_month must be 1-12, got %d", c.StartMonth)
	}
	if c.InvestmentPeriodYears <= 0 {
		return fmt.Errorf("investment_period_years must be positive, got %d", c.InvestmentPeriodYears)
	}
	if c.DCAMonths < MinDCAMonths {
		return fmt.Errorf("dca_months must be >= %d, got %d", MinDCAMonths, c.DCAMonths)
	}
	if c.Principal <= 0 {
		return fmt.Errorf("principal_amount must be positive, got %.2f", c.Principal)
	}
	return nil
}

// WindowAt returns the InvestmentConfig for one window of the sweep.
func (c RollingConfig) WindowAt(year, month int) InvestmentConfig {
	return InvestmentConfig{
		Symbol:                c.Symbol,
		StartYear:             year,
		StartMonth:            month,
		InvestmentPeriodYears: c.InvestmentPeriodYears,
		DCAMonths:             c.DCAMonths,
		Principal:             c.Principal,
	}
}

// WindowStarts enumerates every (year, month) start in the sweep range,
// inclusive on both ends.
func (c RollingConfig) WindowStarts() [][2]int {
	var starts [][2]int
	year, month := c.StartYear, c.StartMonth
	for year < c.EndYear || (year == c.EndYear && month <= c.EndMonth) {
		starts = append(starts, [2]int{year, month})
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	return starts
}

// Validate checks the sweep parameters.
func (c RollingConfig) Validate() error {
	if err := c.WindowAt(c.StartYear, c.StartMonth).Validate(); err != nil {
		return err
	}
	if c.EndMonth < 1 || c.EndMonth > 12 {
		return fmt.Errorf("end_month must be 1-12, got %d", c.EndMonth)
	}
	end := time.Date(c.EndYear, time.Month(c.EndMonth), 1, 0, 0, 0, 0, time.UTC)
	if end.Before(time.Date(c.StartYear, time.Month(c.StartMonth), 1, 0, 0, 0, 0, time.UTC)) {
		return fmt.Errorf("sweep end %d-%02d precedes start %d-%02d",
			c.EndYear, c.EndMonth, c.StartYear, c.StartMonth)
	}
	return nil
}
