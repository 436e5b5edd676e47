package cache

// Asset is one cached artwork payload: the bytes of the image and the
// content type the origin reported for it. Both travel together so a cache
// hit can be served without re-deriving the type.
type Asset struct {
	ContentType string
	Body        []byte
}

// EvictCallback is invoked when an entry falls out of the cache. Backends
// that evict server-side (Redis) report the key with a zero Asset.
type EvictCallback func(key string, asset Asset)

// Logger receives error reports from cache operations.
type Logger interface {
	Error(msg string, err error)
}

// Cache keeps recently proxied artwork around for the duration of an editing
// session, keyed by source URL, with LRU bounds and a TTL. Backends may live
// in process memory or in Redis.
type Cache interface {
	// Get returns the asset stored under key and whether it was present.
	Get(key string) (Asset, bool)

	// Set stores an asset, replacing any previous entry for the key.
	Set(key string, asset Asset)

	// Contains reports key presence without touching LRU ordering.
	Contains(key string) bool

	// Len returns the current number of entries.
	Len() int

	// Close releases backend resources. In-memory backends treat it as a
	// no-op.
	Close() error
}
