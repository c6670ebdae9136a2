package strategy

import (
	"github.com/bokslquant/index-backtest/pkg/config"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// Strategy defines the interface for investment execution styles. A strategy
// maps a price series and window configuration to the ledger of purchases it
// would have made. Executors are pure: same inputs, same ledger.
type Strategy interface {
	// Execute produces the purchase ledger for the configured window
	Execute(series *types.PriceSeries, cfg config.InvestmentConfig) (types.Ledger, error)

	// GetName returns the name of the strategy
	GetName() string
}

// Strategy names understood by the factory.
const (
	NameLumpSum = "lump_sum"
	NameDCA     = "dca"
)
