package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the redis backing for the catalog listing cache. Redis being
// down must never fail a product request, so every operation degrades to a
// cache miss on connectivity errors. A nil Client acts as a permanently
// empty cache; cmd/seed relies on that.
type Client struct {
	client *redis.Client
}

// New connects a listing cache to the given redis instance.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Get returns the cached payload, or nil when the key is missing or redis
// is unreachable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// degrade to a miss
		return nil, nil
	}
	return res, nil
}

// Set stores a payload with TTL. Listing payloads are throwaway, so redis
// errors are dropped.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
	return nil
}

// Delete drops a key after a catalog mutation, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Del(ctx, key).Err()
	return nil
}
