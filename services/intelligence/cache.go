package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"studioquote/models"
)

const summaryKeyPrefix = "quote:summary:"

// SummaryCache memoizes generated summaries so identical selections do not
// trigger repeat model calls. A miss returns (nil, nil).
type SummaryCache interface {
	Get(ctx context.Context, key string) (*models.Enrichment, error)
	Set(ctx context.Context, key string, enrichment models.Enrichment) error
}

// RedisSummaryCache keeps generated summaries in Redis with a TTL.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, ttl: ttl}
}

func (c *RedisSummaryCache) Get(ctx context.Context, key string) (*models.Enrichment, error) {
	data, err := c.client.Get(ctx, summaryKeyPrefix+key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cached summary: %w", err)
	}
	var enrichment models.Enrichment
	if err := json.Unmarshal([]byte(data), &enrichment); err != nil {
		return nil, fmt.Errorf("failed to parse cached summary: %w", err)
	}
	return &enrichment, nil
}

func (c *RedisSummaryCache) Set(ctx context.Context, key string, enrichment models.Enrichment) error {
	data, err := json.Marshal(enrichment)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := c.client.Set(ctx, summaryKeyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache summary: %w", err)
	}
	return nil
}
