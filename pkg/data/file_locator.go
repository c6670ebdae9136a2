package data

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultFileLocator resolves symbol data files under the data root.
// Layout: {dataRoot}/{SYMBOL}_data.csv, one file per symbol.
type DefaultFileLocator struct{}

// NewDefaultFileLocator creates a new default file locator
func NewDefaultFileLocator() *DefaultFileLocator {
	return &DefaultFileLocator{}
}

// FindDataFile returns the data file path for a symbol, or an empty string
// when the file does not exist.
func (f *DefaultFileLocator) FindDataFile(dataRoot, symbol string) string {
	path := filepath.Join(dataRoot, symbol+"_data.csv")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// AvailableSymbols lists the symbols that have data files under the data root.
func (f *DefaultFileLocator) AvailableSymbols(dataRoot string) []string {
	entries, err := os.ReadDir(dataRoot)
	if err != nil {
		return nil
	}

	var symbols []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, "_data.csv") {
			continue
		}
		symbols = append(symbols, strings.TrimSuffix(name, "_data.csv"))
	}
	sort.Strings(symbols)
	return symbols
}
