package cache

// instrumentedCache wraps a backend and counts hits, misses, evictions and
// the current entry count under the configured group label, so callers never
// touch the metric objects themselves.
type instrumentedCache struct {
	inner Cache
	group string
}

// newInstrumentedCache registers a lazy entries collector that reads
// inner.Len() at scrape time. Reading lazily stays correct for backends
// where TTL expiry removes entries outside the application (Redis).
func newInstrumentedCache(inner Cache, group string) *instrumentedCache {
	registerEntriesCollector(group, inner.Len)
	return &instrumentedCache{inner: inner, group: group}
}

func (c *instrumentedCache) Get(key string) (Asset, bool) {
	asset, ok := c.inner.Get(key)
	if ok {
		HitsTotal.WithLabelValues(c.group).Inc()
	} else {
		MissesTotal.WithLabelValues(c.group).Inc()
	}
	return asset, ok
}

func (c *instrumentedCache) Set(key string, asset Asset) {
	c.inner.Set(key, asset)
}

func (c *instrumentedCache) Contains(key string) bool {
	return c.inner.Contains(key)
}

func (c *instrumentedCache) Len() int {
	return c.inner.Len()
}

// Close unregisters the entries collector before closing the backend.
func (c *instrumentedCache) Close() error {
	unregisterEntriesCollector(c.group)
	return c.inner.Close()
}
