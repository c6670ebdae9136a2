package strategy

import (
	"fmt"

	"github.com/bokslquant/index-backtest/internal/errors"
	"github.com/bokslquant/index-backtest/pkg/config"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// DCAStrategy splits the principal into equal monthly installments starting
// at the configured start month. With DCAMonths == 1 it degenerates to a
// lump sum purchase.
type DCAStrategy struct{}

// NewDCAStrategy creates a new dollar-cost averaging strategy
func NewDCAStrategy() *DCAStrategy {
	return &DCAStrategy{}
}

// GetName returns the name of the strategy
func (s *DCAStrategy) GetName() string {
	return NameDCA
}

// Execute buys one installment per calendar month. Scheduled dates landing on
// non-trading days snap forward to the next trading date in the series. The
// final installment absorbs the rounding remainder so the ledger sums to the
// principal exactly.
func (s *DCAStrategy) Execute(series *types.PriceSeries, cfg config.InvestmentConfig) (types.Ledger, error) {
	if err := validateWindow(s.GetName(), series, cfg); err != nil {
		return nil, err
	}

	monthly := cfg.MonthlyAmount()
	ledger := make(types.Ledger, 0, cfg.DCAMonths)

	scheduled := cfg.StartDate()
	for i := 0; i < cfg.DCAMonths; i++ {
		idx := series.IndexOnOrAfter(scheduled)
		if idx < 0 {
			return nil, errors.NewScheduleExhaustedError(s.GetName(),
				fmt.Sprintf("installment %d/%d scheduled for %s has no trading date left in %s",
					i+1, cfg.DCAMonths, scheduled.Format("2006-01-02"), series.Symbol)).
				WithContext("installment", i+1).
				WithContext("scheduled", scheduled)
		}

		amount := monthly
		if i == cfg.DCAMonths-1 {
			// Remainder goes into the last installment so the total is exact.
			amount = cfg.Principal - monthly*float64(cfg.DCAMonths-1)
		}

		bar := series.Bars[idx]
		ledger = append(ledger, types.Transaction{
			Date:           bar.Date,
			AmountInvested: amount,
			Price:          bar.Close,
			UnitsPurchased: amount / bar.Close,
		})

		scheduled = scheduled.AddDate(0, 1, 0)
	}

	return ledger, nil
}
