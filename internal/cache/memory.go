package cache

import (
	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

func init() {
	Register("memory", newMemoryCache)
}

// memoryCache stores assets in an expirable in-process LRU.
type memoryCache struct {
	inner *lru.LRU[string, Asset]
}

func newMemoryCache(cfg ProviderConfig) (Cache, error) {
	var onEvict func(string, Asset)
	if cfg.OnEvict != nil {
		onEvict = func(key string, asset Asset) {
			cfg.OnEvict(key, asset)
		}
	}
	return &memoryCache{
		inner: lru.NewLRU[string, Asset](cfg.Size, onEvict, cfg.TTL),
	}, nil
}

func (m *memoryCache) Get(key string) (Asset, bool) {
	return m.inner.Get(key)
}

func (m *memoryCache) Set(key string, asset Asset) {
	m.inner.Add(key, asset)
}

func (m *memoryCache) Contains(key string) bool {
	return m.inner.Contains(key)
}

func (m *memoryCache) Len() int {
	return m.inner.Len()
}

func (m *memoryCache) Close() error {
	return nil
}
