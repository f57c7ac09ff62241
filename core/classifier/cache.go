package classifier

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"capcost/core/determinism"
	"capcost/internal/logging"
)

const cacheKeyPrefix = "capcost:classify:"

// DefaultCacheTTL is used when a cache is created without a TTL
const DefaultCacheTTL = 24 * time.Hour

// Cache stores validated primary analyses by description.
// Implementations must be safe for concurrent use; failures are misses.
type Cache interface {
	Get(ctx context.Context, key string) (*Analysis, bool)
	Set(ctx context.Context, key string, a *Analysis)
}

// CacheKey derives the cache key of a description. Case and whitespace
// differences map to the same key.
func CacheKey(description string) string {
	return cacheKeyPrefix + determinism.NormalizedHash(description).Hex()
}

// NopCache never stores anything
type NopCache struct{}

func (NopCache) Get(context.Context, string) (*Analysis, bool) { return nil, false }
func (NopCache) Set(context.Context, string, *Analysis)        {}

// RedisCache keeps analyses in Redis as JSON
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisCache wraps an existing client
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisCache{client: client, ttl: ttl, log: logging.Named("classifier.cache")}
}

// DialRedisCache creates a client for addr. No connection is made until
// the first command.
func DialRedisCache(addr, password string, db int, ttl time.Duration) *RedisCache {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	return NewRedisCache(client, ttl)
}

// Get returns the cached analysis for key
func (c *RedisCache) Get(ctx context.Context, key string) (*Analysis, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !stderrors.Is(err, redis.Nil) {
			c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var a Analysis
	if err := json.Unmarshal(data, &a); err != nil {
		c.log.Warn("cache entry undecodable", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &a, true
}

// Set stores a under key with the cache TTL
func (c *RedisCache) Set(ctx context.Context, key string, a *Analysis) {
	data, err := json.Marshal(a)
	if err != nil {
		c.log.Warn("cache entry unencodable", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Ping checks the connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the client
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// MemoryCache is an in-process Cache without expiry, used by the CLI and tests
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*Analysis
}

// NewMemoryCache creates an empty MemoryCache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*Analysis)}
}

func (m *MemoryCache) Get(_ context.Context, key string) (*Analysis, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	return a.clone(), true
}

func (m *MemoryCache) Set(_ context.Context, key string, a *Analysis) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = a.clone()
}

// Len returns the number of entries
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
