package cache

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// ProviderConfig carries everything a backend constructor needs.
type ProviderConfig struct {
	// Size bounds the number of cached assets.
	Size int

	// TTL is how long an asset stays valid after being stored.
	TTL time.Duration

	// OnEvict is called for evicted assets. Not every backend supports it.
	OnEvict EvictCallback

	// Logger receives backend error reports. Nil drops them.
	Logger Logger

	// RedisAddress is the Redis/Valkey server address ("localhost:6379").
	RedisAddress string

	// RedisPassword authenticates against the Redis/Valkey server.
	RedisPassword string

	// RedisDB selects the Redis/Valkey database number.
	RedisDB int

	// Group names the cache in Prometheus metrics (the "cache" label of
	// cache_hits_total and friends). A non-empty group wraps the cache with
	// metric instrumentation automatically.
	Group string
}

// Provider constructs a Cache from config.
type Provider func(cfg ProviderConfig) (Cache, error)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register adds a backend under the given name. It panics on a nil provider
// or a duplicate name.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()

	if p == nil {
		panic("cache: Register provider is nil")
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("cache: provider %q already registered", name))
	}
	providers[name] = p
}

// New builds a Cache from the named backend. With a non-empty cfg.Group the
// result is wrapped with instrumentation: hits, misses and evictions are
// counted under the group label, and a lazy entries collector queries Len()
// at scrape time instead of keeping an in-process counter.
func New(name string, cfg ProviderConfig) (Cache, error) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("cache: unknown provider %q (registered: %v)", name, RegisteredProviders())
	}

	if cfg.Group == "" {
		return p(cfg)
	}

	group := cfg.Group
	// Count evictions in the cache layer itself.
	original := cfg.OnEvict
	cfg.OnEvict = func(key string, asset Asset) {
		EvictionsTotal.WithLabelValues(group).Inc()
		if original != nil {
			original(key, asset)
		}
	}

	inner, err := p(cfg)
	if err != nil {
		return nil, err
	}

	return newInstrumentedCache(inner, group), nil
}

// RegisteredProviders returns the sorted backend names.
func RegisteredProviders() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
