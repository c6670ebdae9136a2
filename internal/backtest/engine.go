package backtest

import (
	"github.com/bokslquant/index-backtest/internal/strategy"
	"github.com/bokslquant/index-backtest/pkg/config"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// Engine runs the single-window pipeline: strategy executor -> valuation ->
// metrics. The rolling runner reuses this exact pipeline per window, so both
// paths compute through the same code.
type Engine struct{}

// RunResult is the full output of one strategy run over one window.
type RunResult struct {
	StrategyName string
	Config       config.InvestmentConfig
	Ledger       types.Ledger
	DailyRecords []types.DailyRecord
	Metrics      types.PerformanceMetrics
}

// ComparisonResult pairs the two strategy runs over the same window.
type ComparisonResult struct {
	Config  config.InvestmentConfig
	LumpSum *RunResult
	DCA     *RunResult
}

// NewEngine creates a new backtest engine
func NewEngine() *Engine {
	return &Engine{}
}

// Run executes one strategy over one window.
func (e *Engine) Run(strat strategy.Strategy, series *types.PriceSeries, cfg config.InvestmentConfig) (*RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ledger, err := strat.Execute(series, cfg)
	if err != nil {
		return nil, err
	}

	records, err := ValueLedger(ledger, series, cfg.HorizonEnd())
	if err != nil {
		return nil, err
	}

	metrics, err := Summarize(records)
	if err != nil {
		return nil, err
	}

	return &RunResult{
		StrategyName: strat.GetName(),
		Config:       cfg,
		Ledger:       ledger,
		DailyRecords: records,
		Metrics:      metrics,
	}, nil
}

// RunComparison executes every registered strategy over the same window.
func (e *Engine) RunComparison(series *types.PriceSeries, cfg config.InvestmentConfig) (*ComparisonResult, error) {
	result := &ComparisonResult{Config: cfg}

	for _, strat := range strategy.All() {
		run, err := e.Run(strat, series, cfg)
		if err != nil {
			return nil, err
		}
		switch strat.GetName() {
		case strategy.NameLumpSum:
			result.LumpSum = run
		case strategy.NameDCA:
			result.DCA = run
		}
	}

	return result, nil
}
