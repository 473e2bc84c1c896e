package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores serialized day figures and other short-lived lookups.
// Values are opaque bytes; callers own the encoding.
type Cache struct {
	client *redis.Client
	prefix string
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{
		client: client,
		prefix: "cashcut:cache:",
	}
}

// Get returns the value stored under key. A missing key surfaces as
// redis.Nil, which callers treat as a cache miss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.client.Get(ctx, c.prefix+key).Bytes()
}

// Set stores value under key for ttl.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

// SetNX stores value only when key is absent.
func (c *Cache) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, c.prefix+key, value, ttl).Result()
}

// Delete drops key from the cache.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}
