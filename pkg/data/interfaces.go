package data

import (
	"github.com/bokslquant/index-backtest/pkg/types"
)

// DataProvider interface for loading historical index data from various sources
type DataProvider interface {
	// LoadSeries loads the daily price series for a symbol from the given file
	LoadSeries(symbol, source string) (*types.PriceSeries, error)

	// ValidateSeries validates the integrity of the loaded series
	ValidateSeries(series *types.PriceSeries) error

	// GetName returns the name of the data provider
	GetName() string
}

// SeriesCache interface for caching loaded series
type SeriesCache interface {
	// Get retrieves a series from cache if available
	Get(key string) (*types.PriceSeries, bool)

	// Set stores a series in cache
	Set(key string, series *types.PriceSeries)

	// Clear removes all cached series
	Clear()

	// Size returns the number of cached entries
	Size() int
}

// FileLocator interface for finding index data files
type FileLocator interface {
	// FindDataFile locates the data file for a symbol under the data root
	FindDataFile(dataRoot, symbol string) string

	// AvailableSymbols lists the symbols with data files under the data root
	AvailableSymbols(dataRoot string) []string
}

// CSVColumnMapping defines the column positions for different CSV exports
type CSVColumnMapping struct {
	DateCol    int
	OpenCol    int
	HighCol    int
	LowCol     int
	CloseCol   int
	VolumeCol  int
	MinColumns int
	DateFormat string
}

// YahooCSVFormat matches the collector's yfinance export:
// Date,Open,High,Low,Close,Volume,Dividends,Stock Splits
var YahooCSVFormat = CSVColumnMapping{
	DateCol:    0,
	OpenCol:    1,
	HighCol:    2,
	LowCol:     3,
	CloseCol:   4,
	VolumeCol:  5,
	MinColumns: 6,
	DateFormat: "2006-01-02",
}
