// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"cac40_backend/internal/feature/bars/domain/entity"
)

// BarStore is the slice of the bar repository the cache decorates: the range
// read served to clients plus the write path whose inserts invalidate it.
type BarStore interface {
	FindRange(ctx context.Context, ticker string, start, end *time.Time, limit int) ([]entity.Bar, error)
	InsertIgnoreBatch(ctx context.Context, bars []entity.Bar) (int64, error)
}

// CachingBarRepository decorates a BarStore with Redis caching. It implements
// the decorator pattern, transparently adding caching without modifying the
// underlying repository. A nil Redis client disables caching entirely.
type CachingBarRepository struct {
	inner     BarStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ BarStore = (*CachingBarRepository)(nil)

// NewCachingBarRepository decorates a BarStore with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "bars".
func NewCachingBarRepository(rdb *redis.Client, ttl time.Duration, inner BarStore, namespace string) *CachingBarRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "bars"
	}
	return &CachingBarRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// InsertIgnoreBatch writes through to the underlying store and invalidates
// the cached reads of every ticker the batch touches.
func (c *CachingBarRepository) InsertIgnoreBatch(ctx context.Context, bars []entity.Bar) (int64, error) {
	inserted, err := c.inner.InsertIgnoreBatch(ctx, bars)
	if err != nil {
		return inserted, err
	}
	if c.rdb == nil || len(bars) == 0 {
		return inserted, nil
	}

	seen := map[string]struct{}{}
	for _, b := range bars {
		prefix := c.tickerPrefix(b.Ticker)
		if _, ok := seen[prefix]; ok {
			continue
		}
		seen[prefix] = struct{}{}
		// Best effort: a stale cache entry expires via TTL anyway.
		_ = c.deleteByPattern(ctx, prefix+"*")
	}
	return inserted, nil
}

// FindRange retrieves bars, checking the cache first and falling back to the
// underlying store.
func (c *CachingBarRepository) FindRange(ctx context.Context, ticker string, start, end *time.Time, limit int) ([]entity.Bar, error) {
	if c.rdb == nil {
		return c.inner.FindRange(ctx, ticker, start, end, limit)
	}

	key := c.rangeKey(ticker, start, end, limit)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Bar
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.FindRange(ctx, ticker, start, end, limit)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// rangeKey generates the cache key for one range query.
func (c *CachingBarRepository) rangeKey(ticker string, start, end *time.Time, limit int) string {
	return fmt.Sprintf("%srange:%s:%s:%d",
		c.tickerPrefix(ticker),
		dayOrDash(start),
		dayOrDash(end),
		limit,
	)
}

// tickerPrefix generates the key prefix shared by all cached reads of one
// ticker, which is also the invalidation pattern.
func (c *CachingBarRepository) tickerPrefix(ticker string) string {
	return fmt.Sprintf("%s:%s:", c.namespace, safe(ticker))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingBarRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

func dayOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format("2006-01-02")
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
