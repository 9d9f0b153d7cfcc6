package redissvc

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Ctx() context.Context {
	return s.ctx
}

// TextCache stores extracted text keyed by image digest so re-uploads of the
// same notes skip the OCR round trip.
type TextCache interface {
	Get(key string) (string, bool)
	Set(key string, value string)
}

type RedisTextCache struct {
	rdb *redis.Client
	ctx context.Context
	ttl time.Duration
}

func NewRedisTextCache(rs *RedisService, ttl time.Duration) *RedisTextCache {
	return &RedisTextCache{rdb: rs.Rdb(), ctx: rs.Ctx(), ttl: ttl}
}

func (c *RedisTextCache) Get(key string) (string, bool) {
	val, err := c.rdb.Get(c.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *RedisTextCache) Set(key string, value string) {
	_ = c.rdb.Set(c.ctx, key, value, c.ttl).Err()
}

// InMemoryTextCache is the test twin of RedisTextCache.
type InMemoryTextCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func NewInMemoryTextCache() *InMemoryTextCache {
	return &InMemoryTextCache{entries: map[string]string{}}
}

func (c *InMemoryTextCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	val, ok := c.entries[key]
	return val, ok
}

func (c *InMemoryTextCache) Set(key string, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}
