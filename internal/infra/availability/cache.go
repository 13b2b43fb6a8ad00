package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"turfbook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CachedProvider fronts a provider with a short-TTL Redis cache. Cache
// misses and Redis outages fall through to the inner provider; only the
// inner provider's failure makes availability unknown.
type CachedProvider struct {
	inner  schedule.AvailabilityProvider
	client *redis.Client
	ttl    time.Duration
}

func NewCachedProvider(inner schedule.AvailabilityProvider, client *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(turfID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("availability:%s:%s", turfID.String(), schedule.DateKey(date))
}

func (c *CachedProvider) BookedHours(ctx context.Context, turfID uuid.UUID, date time.Time) (map[int]bool, error) {
	key := cacheKey(turfID, date)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var hours []int
		if jsonErr := json.Unmarshal(raw, &hours); jsonErr == nil {
			booked := make(map[int]bool, len(hours))
			for _, h := range hours {
				booked[h] = true
			}
			return booked, nil
		}
		// Garbled entry: treat as a miss.
	} else if !errors.Is(err, redis.Nil) {
		slog.Warn("availability cache read failed", "key", key, "error", err.Error())
	}

	booked, err := c.inner.BookedHours(ctx, turfID, date)
	if err != nil {
		return nil, err
	}

	hours := make([]int, 0, len(booked))
	for h := range booked {
		hours = append(hours, h)
	}
	if raw, jsonErr := json.Marshal(hours); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, raw, c.ttl).Err(); setErr != nil {
			slog.Warn("availability cache write failed", "key", key, "error", setErr.Error())
		}
	}

	return booked, nil
}

// Invalidate drops the cached entry after the booked set changes.
func (c *CachedProvider) Invalidate(ctx context.Context, turfID uuid.UUID, date time.Time) error {
	return c.client.Del(ctx, cacheKey(turfID, date)).Err()
}
