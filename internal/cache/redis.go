package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmytrobakai/music-recomendation/internal/recommend"
	"github.com/redis/go-redis/v9"
)

// Cache stores ranked recommendation id lists per user and requested size.
// Entries expire by TTL and are dropped whenever the user's own like-set
// changes; other users' mutations surface only after expiry.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func buildKey(username string, n int) string {
	return fmt.Sprintf("rec:sim:%s:n:%d", username, n)
}

// Get returns the cached ranking and whether it was present.
func (c *Cache) Get(ctx context.Context, username string, n int) ([]recommend.TrackID, bool, error) {
	key := buildKey(username, n)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache get %s: %w", key, err)
	}

	var ids []recommend.TrackID
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		return nil, false, fmt.Errorf("cache unmarshal %s: %w", key, err)
	}
	return ids, true, nil
}

func (c *Cache) Set(ctx context.Context, username string, n int, ids []recommend.TrackID) error {
	key := buildKey(username, n)
	val, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Invalidate drops every cached ranking for the user; called when their
// like-set changes.
func (c *Cache) Invalidate(ctx context.Context, username string) error {
	pattern := fmt.Sprintf("rec:sim:%s:n:*", username)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
