package cache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces the service's cache keys in a shared Redis database.
const keyPrefix = "animeta:"

// assetSep separates the content type from the image bytes in the stored
// value. Content types never contain newlines.
const assetSep = '\n'

func init() {
	Register("redis", newRedisCache)
}

// redisCache keeps proxied artwork in Redis/Valkey with application-level
// LRU bounds, so several service instances can share one warm asset cache.
//
// Requires Redis 7.4+ or Valkey 8+ for per-field hash TTL (HPEXPIRE). On
// older servers values are stored but never expire on their own.
//
// Two Redis keys hold the whole cache regardless of entry count:
//
//   - {prefix}assets: a Hash of encoded assets (field = source URL). Each
//     field carries its own TTL via HPEXPIRE, so Redis drops expired art
//     without application-side sweeps.
//   - {prefix}lru: a Sorted Set ordering the URLs by last access
//     (score = access timestamp in µs).
//
// Get (touch) and Set (write + evict) each run as one Lua script so they
// stay atomic across instances. LRU members whose hash field already
// expired are cleaned lazily during eviction.
type redisCache struct {
	client   *redis.Client
	ttl      time.Duration
	maxSize  int
	onEvict  EvictCallback
	logger   Logger
	assetKey string
	lruKey   string
}

// getAndTouch returns the encoded asset for ARGV[2] and refreshes its LRU
// score when present.
//
// KEYS[1] = asset hash, KEYS[2] = LRU sorted set
// ARGV[1] = current µs timestamp, ARGV[2] = source URL
var getAndTouch = redis.NewScript(`
local val = redis.call('HGET', KEYS[1], ARGV[2])
if val then
    redis.call('ZADD', KEYS[2], ARGV[1], ARGV[2])
end
return val
`)

// setAndEvict stores an encoded asset with a per-field TTL, bumps its LRU
// score, and pops the least recently used entries while the cache is over
// capacity. Members whose hash field already expired are dropped along the
// way.
//
// KEYS[1] = asset hash, KEYS[2] = LRU sorted set
// ARGV[1] = encoded asset, ARGV[2] = current µs timestamp,
// ARGV[3] = source URL, ARGV[4] = max entries, ARGV[5] = TTL in ms
//
// Returns the evicted URLs, possibly none.
var setAndEvict = redis.NewScript(`
local member  = ARGV[3]
local maxSize = tonumber(ARGV[4])
local ttlMs   = tonumber(ARGV[5])

redis.call('HSET', KEYS[1], member, ARGV[1])
redis.call('HPEXPIRE', KEYS[1], ttlMs, 'FIELDS', 1, member)
redis.call('ZADD', KEYS[2], ARGV[2], member)

local size = redis.call('ZCARD', KEYS[2])
local evicted = {}
while size > maxSize do
    local oldest = redis.call('ZPOPMIN', KEYS[2], 1)
    if #oldest == 0 then break end
    local oldMember = oldest[1]
    redis.call('HDEL', KEYS[1], oldMember)
    table.insert(evicted, oldMember)
    size = size - 1
end

return evicted
`)

func newRedisCache(cfg ProviderConfig) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &redisCache{
		client:   client,
		ttl:      cfg.TTL,
		maxSize:  cfg.Size,
		onEvict:  cfg.OnEvict,
		logger:   cfg.Logger,
		assetKey: keyPrefix + "assets",
		lruKey:   keyPrefix + "lru",
	}, nil
}

// encodeAsset flattens an asset to one hash value: content type, newline,
// image bytes.
func encodeAsset(a Asset) []byte {
	buf := make([]byte, 0, len(a.ContentType)+1+len(a.Body))
	buf = append(buf, a.ContentType...)
	buf = append(buf, assetSep)
	return append(buf, a.Body...)
}

func decodeAsset(raw []byte) (Asset, bool) {
	i := bytes.IndexByte(raw, assetSep)
	if i < 0 {
		return Asset{}, false
	}
	return Asset{ContentType: string(raw[:i]), Body: raw[i+1:]}, true
}

func (r *redisCache) keys() []string {
	return []string{r.assetKey, r.lruKey}
}

func (r *redisCache) logError(msg string, err error) {
	if r.logger != nil {
		r.logger.Error(msg, err)
	}
}

func (r *redisCache) Get(key string) (Asset, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	now := strconv.FormatInt(time.Now().UnixMicro(), 10)
	result, err := getAndTouch.Run(ctx, r.client, r.keys(), now, key).Text()
	if err != nil {
		// redis.Nil is a normal miss.
		if !errors.Is(err, redis.Nil) {
			r.logError("redis cache Get failed", err)
		}
		return Asset{}, false
	}
	return decodeAsset([]byte(result))
}

func (r *redisCache) Set(key string, asset Asset) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	now := strconv.FormatInt(time.Now().UnixMicro(), 10)
	maxSize := strconv.Itoa(r.maxSize)
	ttlMs := strconv.FormatInt(r.ttl.Milliseconds(), 10)

	evicted, err := setAndEvict.Run(ctx, r.client, r.keys(),
		encodeAsset(asset), now, key, maxSize, ttlMs,
	).StringSlice()

	if err != nil {
		r.logError("redis cache Set failed", err)
		return
	}

	if r.onEvict != nil {
		// Fetching evicted values back would cost extra roundtrips, so the
		// callback only carries the key.
		for _, evictedKey := range evicted {
			r.onEvict(evictedKey, Asset{})
		}
	}
}

func (r *redisCache) Contains(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n, err := r.client.HExists(ctx, r.assetKey, key).Result()
	if err != nil {
		r.logError("redis cache Contains failed", err)
	}
	return err == nil && n
}

func (r *redisCache) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n, err := r.client.HLen(ctx, r.assetKey).Result()
	if err != nil {
		r.logError("redis cache Len failed", err)
		return 0
	}
	return int(n)
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
