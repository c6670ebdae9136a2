package reporting

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPathManager_GetDefaultOutputDir verifies the results/<SYMBOL>_<mode>
// convention, with the symbol upper-cased.
func TestPathManager_GetDefaultOutputDir(t *testing.T) {
	pm := NewDefaultPathManager()
	assert.Equal(t, filepath.Join("results", "NASDAQ_single"), pm.GetDefaultOutputDir("nasdaq", "single"))
	assert.Equal(t, filepath.Join("results", "SPX_rolling"), pm.GetDefaultOutputDir("SPX", "rolling"))
}

// TestPathManager_TimestampedFilename verifies the prefix_YYYYMMDD_HHMMSS.ext
// shape the commands rely on to keep repeated runs from overwriting reports.
func TestPathManager_TimestampedFilename(t *testing.T) {
	pm := NewDefaultPathManager()
	name := pm.TimestampedFilename("NASDAQ_2000-01_10y_comparison", "xlsx")
	assert.Regexp(t, regexp.MustCompile(`^NASDAQ_2000-01_10y_comparison_\d{8}_\d{6}\.xlsx$`), name)
}
