package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultPathManager implements output path resolution
type DefaultPathManager struct{}

// NewDefaultPathManager creates a new path manager
func NewDefaultPathManager() *DefaultPathManager {
	return &DefaultPathManager{}
}

// GetDefaultOutputDir returns the output directory for a symbol and run
// mode, e.g. results/NASDAQ_single or results/SPX_rolling.
func (pm *DefaultPathManager) GetDefaultOutputDir(symbol, runMode string) string {
	name := fmt.Sprintf("%s_%s", strings.ToUpper(symbol), runMode)
	return filepath.Join("results", name)
}

// TimestampedFilename builds a filename carrying the run start time so
// repeated runs never overwrite each other.
func (pm *DefaultPathManager) TimestampedFilename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102_150405"), ext)
}

// EnsureDirectoryExists creates the directory if needed.
func (pm *DefaultPathManager) EnsureDirectoryExists(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}
