package cache

import (
	"context"
	"errors"
	"fmt"
	"pathfinder/internal/model"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// ResultCache holds the latest analysis outcome per session
type ResultCache interface {
	Set(ctx context.Context, sessionID string, outcome *model.AnalysisOutcome) error
	Get(ctx context.Context, sessionID string) (*model.AnalysisOutcome, error)
}

type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	return &resultCache{client: client, ttl: ttl}
}

func resultKey(sessionID string) string { return fmt.Sprintf("session:%s:result", sessionID) }

func (c *resultCache) Set(ctx context.Context, sessionID string, outcome *model.AnalysisOutcome) error {
	data, err := json.Marshal(outcome)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, resultKey(sessionID), data, c.ttl).Err()
}

// Get returns nil when nothing is cached.
func (c *resultCache) Get(ctx context.Context, sessionID string) (*model.AnalysisOutcome, error) {
	data, err := c.client.Get(ctx, resultKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var outcome model.AnalysisOutcome
	if err := json.Unmarshal(data, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}
