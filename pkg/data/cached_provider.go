package data

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/bokslquant/index-backtest/pkg/types"
)

// MemoryCache implements SeriesCache using in-memory storage
type MemoryCache struct {
	cache map[string]*types.PriceSeries
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: make(map[string]*types.PriceSeries),
	}
}

// Get retrieves a series from cache if available. The series is shared, not
// copied: PriceSeries is read-only after loading.
func (c *MemoryCache) Get(key string) (*types.PriceSeries, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	series, exists := c.cache[key]
	return series, exists
}

// Set stores a series in cache
func (c *MemoryCache) Set(key string, series *types.PriceSeries) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache[key] = series
}

// Clear removes all cached series
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache = make(map[string]*types.PriceSeries)
}

// Size returns the number of cached entries
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.cache)
}

// CachedProvider wraps another DataProvider with caching, so a rolling sweep
// loads each symbol file once.
type CachedProvider struct {
	provider DataProvider
	cache    SeriesCache
}

// NewCachedProvider creates a new cached data provider
func NewCachedProvider(provider DataProvider) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    NewMemoryCache(),
	}
}

// GetName returns the name of the underlying provider with cache indication
func (p *CachedProvider) GetName() string {
	return "Cached " + p.provider.GetName()
}

// LoadSeries loads a series with caching
func (p *CachedProvider) LoadSeries(symbol, source string) (*types.PriceSeries, error) {
	if cached, exists := p.cache.Get(source); exists {
		return cached, nil
	}

	series, err := p.provider.LoadSeries(symbol, source)
	if err != nil {
		log.Printf("❌ Failed to load data from %s: %v", filepath.Base(source), err)
		return nil, err
	}

	p.cache.Set(source, series)

	log.Printf("✅ Loaded and cached %s (%d trading days)", filepath.Base(source), series.Len())
	return series, nil
}

// ValidateSeries validates a series using the underlying provider
func (p *CachedProvider) ValidateSeries(series *types.PriceSeries) error {
	return p.provider.ValidateSeries(series)
}

// ClearCache clears all cached series
func (p *CachedProvider) ClearCache() {
	p.cache.Clear()
}
