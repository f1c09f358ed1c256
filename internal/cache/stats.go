package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bloglist/internal/stats"
)

const (
	// StatsKey holds the current aggregation snapshot.
	StatsKey = "stats:blogs"

	// StatsTTL bounds staleness if the worker misses an event.
	StatsTTL = 10 * time.Minute
)

// StatsCache stores the computed aggregation snapshot. An interface so the
// worker and the stats service can be tested with an in-memory fake.
type StatsCache interface {
	// Get returns the cached snapshot; found is false on a miss.
	Get(ctx context.Context) (snap *stats.Snapshot, found bool, err error)

	// Set stores a snapshot with the standard TTL.
	Set(ctx context.Context, snap *stats.Snapshot) error

	// Invalidate drops the snapshot so the next read recomputes.
	Invalidate(ctx context.Context) error
}

// RedisStatsCache implements StatsCache as a single JSON value in Redis.
type RedisStatsCache struct {
	client *redis.Client
}

func NewStatsCache(client *redis.Client) StatsCache {
	return &RedisStatsCache{client: client}
}

func (c *RedisStatsCache) Get(ctx context.Context) (*stats.Snapshot, bool, error) {
	data, err := c.client.Get(ctx, StatsKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get stats cache: %w", err)
	}

	var snap stats.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// A corrupt entry is treated as a miss; the next Set overwrites it.
		return nil, false, nil
	}
	return &snap, true, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, snap *stats.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal stats snapshot: %w", err)
	}
	if err := c.client.Set(ctx, StatsKey, data, StatsTTL).Err(); err != nil {
		return fmt.Errorf("set stats cache: %w", err)
	}
	return nil
}

func (c *RedisStatsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, StatsKey).Err(); err != nil {
		return fmt.Errorf("invalidate stats cache: %w", err)
	}
	return nil
}
