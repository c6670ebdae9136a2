package strategy

import (
	"github.com/bokslquant/index-backtest/internal/errors"
	"github.com/bokslquant/index-backtest/pkg/config"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// LumpSumStrategy invests the full principal on the first trading day of the
// window.
type LumpSumStrategy struct{}

// NewLumpSumStrategy creates a new lump sum strategy
func NewLumpSumStrategy() *LumpSumStrategy {
	return &LumpSumStrategy{}
}

// GetName returns the name of the strategy
func (s *LumpSumStrategy) GetName() string {
	return NameLumpSum
}

// Execute buys once at the close of the first trading date >= the configured
// start date.
func (s *LumpSumStrategy) Execute(series *types.PriceSeries, cfg config.InvestmentConfig) (types.Ledger, error) {
	if err := validateWindow(s.GetName(), series, cfg); err != nil {
		return nil, err
	}

	idx := series.IndexOnOrAfter(cfg.StartDate())
	if idx < 0 {
		// validateWindow already bounds the start date; this only fires on an
		// empty tail, which is still a window/data mismatch.
		return nil, errors.NewInsufficientHistoryError(s.GetName(),
			"no trading date on or after window start")
	}

	bar := series.Bars[idx]
	return types.Ledger{
		{
			Date:           bar.Date,
			AmountInvested: cfg.Principal,
			Price:          bar.Close,
			UnitsPurchased: cfg.Principal / bar.Close,
		},
	}, nil
}
