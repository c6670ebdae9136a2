package strategy

import (
	"fmt"

	"github.com/bokslquant/index-backtest/internal/errors"
	"github.com/bokslquant/index-backtest/pkg/config"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// validateWindow rejects windows falling outside the available price data.
// Truncated windows would silently skew metrics against full ones, so both
// ends fail loudly: a start before the first bar and a horizon end past the
// last bar are each InsufficientHistory.
func validateWindow(component string, series *types.PriceSeries, cfg config.InvestmentConfig) error {
	if series == nil || series.Len() == 0 {
		return errors.NewInsufficientHistoryError(component, "price series is empty")
	}

	start := cfg.StartDate()
	if start.Before(series.FirstDate()) {
		return errors.NewInsufficientHistoryError(component,
			fmt.Sprintf("window start %s precedes first available price %s for %s",
				start.Format("2006-01-02"), series.FirstDate().Format("2006-01-02"), series.Symbol)).
			WithContext("start", start).
			WithContext("series_first", series.FirstDate())
	}

	end := cfg.HorizonEnd()
	if end.After(series.LastDate()) {
		return errors.NewInsufficientHistoryError(component,
			fmt.Sprintf("window end %s exceeds last available price %s for %s",
				end.Format("2006-01-02"), series.LastDate().Format("2006-01-02"), series.Symbol)).
			WithContext("end", end).
			WithContext("series_last", series.LastDate())
	}

	return nil
}
