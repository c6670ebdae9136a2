package backtest

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/bokslquant/index-backtest/internal/errors"
	"github.com/bokslquant/index-backtest/pkg/config"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// RollingRunner sweeps a fixed-horizon backtest across successive calendar
// start months. Every window goes through the same Engine pipeline the
// single-run path uses; the runner adds only fan-out and collection.
//
// Windows share nothing but the read-only price series, so they run on a
// worker pool. Result order is restored by start date after collection.
type RollingRunner struct {
	engine      *Engine
	workerCount int
}

// windowJob is one window of the sweep.
type windowJob struct {
	cfg config.InvestmentConfig
}

// NewRollingRunner creates a rolling runner with one worker per CPU.
func NewRollingRunner() *RollingRunner {
	return NewRollingRunnerWithWorkers(runtime.NumCPU())
}

// NewRollingRunnerWithWorkers creates a rolling runner with a fixed worker count.
func NewRollingRunnerWithWorkers(workerCount int) *RollingRunner {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	return &RollingRunner{
		engine:      NewEngine(),
		workerCount: workerCount,
	}
}

// Run executes the sweep. Windows whose data falls outside the series are
// recorded as gap markers, not dropped, so downstream reporting can tell
// "no data" apart from "zero windows configured". Cancelling the context
// aborts between windows; partially completed windows are discarded.
func (r *RollingRunner) Run(ctx context.Context, series *types.PriceSeries, cfg config.RollingConfig) (*types.RollingBatchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	starts := cfg.WindowStarts()

	jobs := make(chan windowJob, len(starts))
	results := make(chan types.WindowResult, len(starts))

	var wg sync.WaitGroup
	for i := 0; i < r.workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				results <- r.runWindow(series, job.cfg)
			}
		}()
	}

	for _, start := range starts {
		jobs <- windowJob{cfg: cfg.WindowAt(start[0], start[1])}
	}
	close(jobs)

	wg.Wait()
	close(results)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	windows := make([]types.WindowResult, 0, len(starts))
	for res := range results {
		windows = append(windows, res)
	}
	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Start.Before(windows[j].Start)
	})

	return &types.RollingBatchResult{
		Symbol:                cfg.Symbol,
		InvestmentPeriodYears: cfg.InvestmentPeriodYears,
		DCAMonths:             cfg.DCAMonths,
		Principal:             cfg.Principal,
		Windows:               windows,
	}, nil
}

// runWindow runs both strategies for one window through the shared engine.
func (r *RollingRunner) runWindow(series *types.PriceSeries, cfg config.InvestmentConfig) types.WindowResult {
	result := types.WindowResult{
		StartYear:  cfg.StartYear,
		StartMonth: cfg.StartMonth,
		Start:      cfg.StartDate(),
		End:        cfg.HorizonEnd(),
	}

	comparison, err := r.engine.RunComparison(series, cfg)
	if err != nil {
		// A window outside the data, or with an unfillable schedule, becomes
		// a gap marker; the sweep continues.
		result.Skipped = true
		result.SkipReason = err.Error()
		if errors.IsInsufficientHistory(err) {
			result.SkipReason = "insufficient history"
		} else if errors.IsScheduleExhausted(err) {
			result.SkipReason = "schedule exhausted"
		}
		return result
	}

	result.LumpSum = comparison.LumpSum.Metrics
	result.DCA = comparison.DCA.Metrics
	return result
}
