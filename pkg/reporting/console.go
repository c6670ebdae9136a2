package reporting

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/bokslquant/index-backtest/internal/backtest"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// DefaultConsoleReporter implements console output functionality
type DefaultConsoleReporter struct{}

// NewDefaultConsoleReporter creates a new console reporter
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{}
}

// OutputComparison prints the lump sum vs DCA metric table for one window.
func (r *DefaultConsoleReporter) OutputComparison(result *backtest.ComparisonResult) {
	cfg := result.Config
	ls := result.LumpSum.Metrics
	dca := result.DCA.Metrics

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("📊 %s %d-%02d · %dy horizon · %d-month DCA",
		cfg.Symbol, cfg.StartYear, cfg.StartMonth, cfg.InvestmentPeriodYears, cfg.DCAMonths))
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Metric", "Lump Sum", "DCA"})
	t.AppendRows([]table.Row{
		{"💰 Final Value", fmt.Sprintf("%.0f", ls.FinalValue), fmt.Sprintf("%.0f", dca.FinalValue)},
		{"📈 Total Return", fmt.Sprintf("%.2f%%", ls.TotalReturn*100), fmt.Sprintf("%.2f%%", dca.TotalReturn*100)},
		{"📈 CAGR", fmt.Sprintf("%.2f%%", ls.CAGR*100), fmt.Sprintf("%.2f%%", dca.CAGR*100)},
		{"📉 MDD", fmt.Sprintf("%.2f%%", ls.MDD*100), fmt.Sprintf("%.2f%%", dca.MDD*100)},
		{"📊 Sharpe", formatSharpe(ls), formatSharpe(dca)},
		{"📊 Volatility", fmt.Sprintf("%.2f%%", ls.Volatility*100), fmt.Sprintf("%.2f%%", dca.Volatility*100)},
		{"📅 Trading Days", ls.TradingDays, dca.TradingDays},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	t.Render()

	if ls.ShortWindow || dca.ShortWindow {
		fmt.Println("⚠️  Window shorter than 30 trading days - treat CAGR and Sharpe as low-confidence")
	}
	fmt.Println()
}

// OutputRollingSummary prints the sweep summary: window counts, averages and
// the lump-sum win rate.
func (r *DefaultConsoleReporter) OutputRollingSummary(result *types.RollingBatchResult) {
	completed := result.Completed()

	fmt.Printf("✅ Rolling backtest complete: %d/%d windows\n", len(completed), len(result.Windows))
	if len(completed) == 0 {
		fmt.Println("⚠️  No window produced metrics - check the sweep range against the data file")
		return
	}

	var lsReturnSum, dcaReturnSum float64
	lumpSumWins := 0
	for _, w := range completed {
		lsReturnSum += w.LumpSum.TotalReturn
		dcaReturnSum += w.DCA.TotalReturn
		if w.LumpSum.TotalReturn > w.DCA.TotalReturn {
			lumpSumWins++
		}
	}

	n := float64(len(completed))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("📊 %s rolling sweep · %dy horizon · %d-month DCA",
		result.Symbol, result.InvestmentPeriodYears, result.DCAMonths))
	t.SetStyle(table.StyleRounded)
	t.AppendRows([]table.Row{
		{"🪟 Windows", fmt.Sprintf("%d completed / %d total", len(completed), len(result.Windows))},
		{"📈 Avg Lump Sum Return", fmt.Sprintf("%.2f%%", lsReturnSum/n*100)},
		{"📈 Avg DCA Return", fmt.Sprintf("%.2f%%", dcaReturnSum/n*100)},
		{"🏆 Lump Sum Win Rate", fmt.Sprintf("%.1f%%", float64(lumpSumWins)/n*100)},
	})
	t.Render()
	fmt.Println()
}

// formatSharpe renders a Sharpe value, marking degenerate (zero-volatility)
// runs instead of showing a misleading zero.
func formatSharpe(m types.PerformanceMetrics) string {
	if m.Degenerate {
		return "n/a (flat)"
	}
	return fmt.Sprintf("%.2f", m.Sharpe)
}
