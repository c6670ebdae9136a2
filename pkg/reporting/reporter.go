package reporting

// DefaultReporter bundles the console, file, chart and path implementations
// behind the single Reporter interface the commands consume.
type DefaultReporter struct {
	*DefaultConsoleReporter
	*DefaultExcelReporter
	*DefaultCSVReporter
	*DefaultChartRenderer
	*DefaultPathManager
}

// NewDefaultReporter creates a reporter with all default implementations
func NewDefaultReporter() *DefaultReporter {
	return &DefaultReporter{
		DefaultConsoleReporter: NewDefaultConsoleReporter(),
		DefaultExcelReporter:   NewDefaultExcelReporter(),
		DefaultCSVReporter:     NewDefaultCSVReporter(),
		DefaultChartRenderer:   NewDefaultChartRenderer(),
		DefaultPathManager:     NewDefaultPathManager(),
	}
}

var _ Reporter = (*DefaultReporter)(nil)
