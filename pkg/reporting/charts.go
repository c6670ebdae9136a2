package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vicanso/go-charts/v2"

	"github.com/bokslquant/index-backtest/internal/backtest"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// DefaultChartRenderer renders PNG comparison charts.
type DefaultChartRenderer struct{}

// NewDefaultChartRenderer creates a new chart renderer
func NewDefaultChartRenderer() *DefaultChartRenderer {
	return &DefaultChartRenderer{}
}

// RenderValueChart draws both strategies' market value over the window and
// writes the PNG to path.
func (cr *DefaultChartRenderer) RenderValueChart(result *backtest.ComparisonResult, path string) error {
	lsRecords := result.LumpSum.DailyRecords
	dcaRecords := result.DCA.DailyRecords
	if len(lsRecords) == 0 || len(dcaRecords) == 0 {
		return fmt.Errorf("no daily records to chart")
	}

	// Both runs cover the same trading days, so one label axis serves both.
	labels := make([]string, len(lsRecords))
	lsValues := make([]float64, len(lsRecords))
	for i, rec := range lsRecords {
		labels[i] = rec.Date.Format("2006-01")
		lsValues[i] = rec.MarketValue
	}
	dcaValues := make([]float64, len(dcaRecords))
	for i, rec := range dcaRecords {
		dcaValues[i] = rec.MarketValue
	}

	names := []string{"Lump Sum", "DCA"}
	seriesList := charts.NewSeriesListDataFromValues([][]float64{lsValues, dcaValues}, charts.ChartTypeLine)
	for i := range seriesList {
		seriesList[i].Name = names[i]
	}

	cfg := result.Config
	title := fmt.Sprintf("%s %d-%02d · %d-year horizon", cfg.Symbol, cfg.StartYear, cfg.StartMonth, cfg.InvestmentPeriodYears)

	painter, err := charts.Render(charts.ChartOption{SeriesList: seriesList},
		charts.TitleTextOptionFunc(title, "portfolio market value"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.YAxisOptionFunc(charts.YAxisOption{DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1200),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return fmt.Errorf("failed to render value chart: %w", err)
	}

	buf, err := painter.Bytes()
	if err != nil {
		return fmt.Errorf("failed to encode value chart: %w", err)
	}
	return writePNG(path, buf)
}

// RenderRollingChart draws total return per window start for both strategies.
// Skipped windows render as gaps.
func (cr *DefaultChartRenderer) RenderRollingChart(result *types.RollingBatchResult, path string) error {
	if len(result.Windows) == 0 {
		return fmt.Errorf("no windows to chart")
	}

	labels := make([]string, len(result.Windows))
	lsValues := make([]float64, len(result.Windows))
	dcaValues := make([]float64, len(result.Windows))
	null := charts.GetNullValue()
	for i, w := range result.Windows {
		labels[i] = fmt.Sprintf("%d-%02d", w.StartYear, w.StartMonth)
		if w.Skipped {
			lsValues[i] = null
			dcaValues[i] = null
			continue
		}
		lsValues[i] = w.LumpSum.TotalReturn * 100
		dcaValues[i] = w.DCA.TotalReturn * 100
	}

	names := []string{"Lump Sum", "DCA"}
	seriesList := charts.NewSeriesListDataFromValues([][]float64{lsValues, dcaValues}, charts.ChartTypeLine)
	for i := range seriesList {
		seriesList[i].Name = names[i]
	}

	title := fmt.Sprintf("%s rolling windows · %d-year horizon · %d-month DCA",
		result.Symbol, result.InvestmentPeriodYears, result.DCAMonths)

	painter, err := charts.Render(charts.ChartOption{SeriesList: seriesList},
		charts.TitleTextOptionFunc(title, "total return per start month (%)"),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 12}),
		charts.YAxisOptionFunc(charts.YAxisOption{DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(1400),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return fmt.Errorf("failed to render rolling chart: %w", err)
	}

	buf, err := painter.Bytes()
	if err != nil {
		return fmt.Errorf("failed to encode rolling chart: %w", err)
	}
	return writePNG(path, buf)
}

func writePNG(path string, buf []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("failed to write chart %s: %w", path, err)
	}
	return nil
}
