package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/bokslquant/index-backtest/internal/backtest"
	"github.com/bokslquant/index-backtest/pkg/types"
)

// DefaultExcelReporter implements Excel output functionality
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// WriteComparisonXLSX writes a single-run comparison workbook: a summary
// sheet with both strategies side by side plus one daily-returns detail
// sheet per strategy.
func (r *DefaultExcelReporter) WriteComparisonXLSX(result *backtest.ComparisonResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	const lumpSumSheet = "LumpSum Daily"
	const dcaSheet = "DCA Daily"

	fx.SetSheetName(fx.GetSheetName(0), summarySheet)
	fx.NewSheet(lumpSumSheet)
	fx.NewSheet(dcaSheet)

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeSummarySheet(fx, summarySheet, result, styles); err != nil {
		return err
	}
	if err := r.writeDailySheet(fx, lumpSumSheet, result.LumpSum, styles); err != nil {
		return err
	}
	if err := r.writeDailySheet(fx, dcaSheet, result.DCA, styles); err != nil {
		return err
	}

	return fx.SaveAs(path)
}

// WriteRollingXLSX writes the rolling sweep workbook: one row per window with
// per-strategy metrics and difference columns; skipped windows stay in the
// table as gap rows.
func (r *DefaultExcelReporter) WriteRollingXLSX(result *types.RollingBatchResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const sheet = "Rolling Results"
	fx.SetSheetName(fx.GetSheetName(0), sheet)

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s rolling backtest (%d-year horizon, %d-month DCA, principal %.0f)",
		result.Symbol, result.InvestmentPeriodYears, result.DCAMonths, result.Principal)
	fx.SetCellValue(sheet, "A1", title)
	fx.SetCellStyle(sheet, "A1", "A1", styles.TitleStyle)
	fx.MergeCell(sheet, "A1", "Q1")

	// Group band row: strategy blocks share a fill color
	bands := []struct {
		label      string
		start, end int
		style      int
	}{
		{"Window", 1, 2, styles.BaseStyle},
		{"Lump Sum", 3, 8, styles.LumpSumFillStyle},
		{"DCA", 9, 14, styles.DCAFillStyle},
		{"Difference (LS − DCA)", 15, 17, styles.DifferenceStyle},
	}
	for _, b := range bands {
		startCell, _ := excelize.CoordinatesToCellName(b.start, 2)
		endCell, _ := excelize.CoordinatesToCellName(b.end, 2)
		fx.SetCellValue(sheet, startCell, b.label)
		fx.MergeCell(sheet, startCell, endCell)
		fx.SetCellStyle(sheet, startCell, endCell, b.style)
	}

	headers := []string{
		"Start", "End",
		"Return", "CAGR", "MDD", "Sharpe", "Volatility", "Final Value",
		"Return", "CAGR", "MDD", "Sharpe", "Volatility", "Final Value",
		"Return", "CAGR", "Value",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	for rowIdx, w := range result.Windows {
		row := rowIdx + 4

		startCell, _ := excelize.CoordinatesToCellName(1, row)
		endCell, _ := excelize.CoordinatesToCellName(2, row)
		fx.SetCellValue(sheet, startCell, fmt.Sprintf("%d-%02d", w.StartYear, w.StartMonth))
		fx.SetCellValue(sheet, endCell, w.End.Format("2006-01"))
		fx.SetCellStyle(sheet, startCell, endCell, styles.BaseStyle)

		if w.Skipped {
			gapCell, _ := excelize.CoordinatesToCellName(3, row)
			lastCell, _ := excelize.CoordinatesToCellName(len(headers), row)
			fx.SetCellValue(sheet, gapCell, "— "+w.SkipReason)
			fx.MergeCell(sheet, gapCell, lastCell)
			fx.SetCellStyle(sheet, gapCell, lastCell, styles.BaseStyle)
			continue
		}

		values := []struct {
			v     float64
			style int
		}{
			{w.LumpSum.TotalReturn, styles.PercentStyle},
			{w.LumpSum.CAGR, styles.PercentStyle},
			{w.LumpSum.MDD, styles.PercentStyle},
			{w.LumpSum.Sharpe, styles.RatioStyle},
			{w.LumpSum.Volatility, styles.PercentStyle},
			{w.LumpSum.FinalValue, styles.CurrencyStyle},
			{w.DCA.TotalReturn, styles.PercentStyle},
			{w.DCA.CAGR, styles.PercentStyle},
			{w.DCA.MDD, styles.PercentStyle},
			{w.DCA.Sharpe, styles.RatioStyle},
			{w.DCA.Volatility, styles.PercentStyle},
			{w.DCA.FinalValue, styles.CurrencyStyle},
			{w.LumpSum.TotalReturn - w.DCA.TotalReturn, styles.PercentStyle},
			{w.LumpSum.CAGR - w.DCA.CAGR, styles.PercentStyle},
			{w.LumpSum.FinalValue - w.DCA.FinalValue, styles.CurrencyStyle},
		}
		for i, val := range values {
			cell, _ := excelize.CoordinatesToCellName(i+3, row)
			fx.SetCellValue(sheet, cell, val.v)
			fx.SetCellStyle(sheet, cell, cell, val.style)
		}
	}

	fx.SetColWidth(sheet, "A", "B", 12)
	fx.SetColWidth(sheet, "C", "Q", 14)
	fx.SetPanes(sheet, &excelize.Panes{
		Freeze: true, YSplit: 3, TopLeftCell: "A4", ActivePane: "bottomLeft",
	})

	return fx.SaveAs(path)
}

// writeSummarySheet writes the side-by-side metric summary for one window.
func (r *DefaultExcelReporter) writeSummarySheet(fx *excelize.File, sheet string, result *backtest.ComparisonResult, styles ExcelStyles) error {
	cfg := result.Config

	title := fmt.Sprintf("%s %d-%02d · %d-year horizon · %d-month DCA",
		cfg.Symbol, cfg.StartYear, cfg.StartMonth, cfg.InvestmentPeriodYears, cfg.DCAMonths)
	fx.SetCellValue(sheet, "A1", title)
	fx.SetCellStyle(sheet, "A1", "A1", styles.TitleStyle)
	fx.MergeCell(sheet, "A1", "C1")

	for i, h := range []string{"Metric", "Lump Sum", "DCA"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	ls := result.LumpSum.Metrics
	dca := result.DCA.Metrics

	rows := []struct {
		label    string
		lsValue  interface{}
		dcaValue interface{}
		style    int
	}{
		{"Principal", cfg.Principal, cfg.Principal, styles.CurrencyStyle},
		{"Total Invested", ls.TotalInvested, dca.TotalInvested, styles.CurrencyStyle},
		{"Final Value", ls.FinalValue, dca.FinalValue, styles.CurrencyStyle},
		{"Total Return", ls.TotalReturn, dca.TotalReturn, styles.PercentStyle},
		{"CAGR", ls.CAGR, dca.CAGR, styles.PercentStyle},
		{"MDD", ls.MDD, dca.MDD, styles.PercentStyle},
		{"Sharpe", ls.Sharpe, dca.Sharpe, styles.RatioStyle},
		{"Volatility", ls.Volatility, dca.Volatility, styles.PercentStyle},
		{"Trading Days", ls.TradingDays, dca.TradingDays, styles.BaseStyle},
		{"Transactions", len(result.LumpSum.Ledger), len(result.DCA.Ledger), styles.BaseStyle},
	}

	for i, rowDef := range rows {
		row := i + 3
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		lsCell, _ := excelize.CoordinatesToCellName(2, row)
		dcaCell, _ := excelize.CoordinatesToCellName(3, row)
		fx.SetCellValue(sheet, labelCell, rowDef.label)
		fx.SetCellStyle(sheet, labelCell, labelCell, styles.BaseStyle)
		fx.SetCellValue(sheet, lsCell, rowDef.lsValue)
		fx.SetCellValue(sheet, dcaCell, rowDef.dcaValue)
		fx.SetCellStyle(sheet, lsCell, dcaCell, rowDef.style)
	}

	fx.SetColWidth(sheet, "A", "A", 16)
	fx.SetColWidth(sheet, "B", "C", 18)
	return nil
}

// writeDailySheet writes the daily-returns detail sheet for one run.
func (r *DefaultExcelReporter) writeDailySheet(fx *excelize.File, sheet string, run *backtest.RunResult, styles ExcelStyles) error {
	headers := []string{
		"Date", "Price", "Invested", "Units", "Avg Price", "Market Value",
		"Total Return", "Drawdown",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}

	for i, rec := range run.DailyRecords {
		row := i + 2
		cells := []struct {
			v     interface{}
			style int
		}{
			{rec.Date.Format("2006-01-02"), styles.BaseStyle},
			{rec.Price, styles.RatioStyle},
			{rec.CumulativeInvested, styles.CurrencyStyle},
			{rec.CumulativeUnits, styles.RatioStyle},
			{rec.AveragePrice, styles.RatioStyle},
			{rec.MarketValue, styles.CurrencyStyle},
			{rec.TotalReturn, styles.PercentStyle},
			{rec.Drawdown, styles.PercentStyle},
		}
		for c, cellDef := range cells {
			cell, _ := excelize.CoordinatesToCellName(c+1, row)
			fx.SetCellValue(sheet, cell, cellDef.v)
			fx.SetCellStyle(sheet, cell, cell, cellDef.style)
		}
	}

	fx.SetColWidth(sheet, "A", "A", 12)
	fx.SetColWidth(sheet, "B", "H", 14)
	fx.SetPanes(sheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	})
	return nil
}

// createExcelStyles creates the shared workbook styles.
func (r *DefaultExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	border := []excelize.Border{
		{Type: "left", Color: "E0E0E0", Style: 1},
		{Type: "right", Color: "E0E0E0", Style: 1},
		{Type: "top", Color: "E0E0E0", Style: 1},
		{Type: "bottom", Color: "E0E0E0", Style: 1},
	}

	styles.TitleStyle, err = fx.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Family: "Calibri"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return styles, err
	}

	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF", Family: "Calibri"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F4F4F"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: border,
	})
	if err != nil {
		return styles, err
	}

	styles.CurrencyStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt:    3, // #,##0
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    border,
	})
	if err != nil {
		return styles, err
	}

	styles.PercentStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt:    10, // 0.00%
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    border,
	})
	if err != nil {
		return styles, err
	}

	styles.RatioStyle, err = fx.NewStyle(&excelize.Style{
		NumFmt:    2, // 0.00
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    border,
	})
	if err != nil {
		return styles, err
	}

	styles.BaseStyle, err = fx.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    border,
	})
	if err != nil {
		return styles, err
	}

	styles.LumpSumFillStyle, err = fx.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return styles, err
	}

	styles.DCAFillStyle, err = fx.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"F0FFF0"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return styles, err
	}

	styles.DifferenceStyle, err = fx.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FCE4D6"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		return styles, err
	}

	return styles, nil
}
