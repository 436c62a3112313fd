package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const healthBaselineKey = "gym:health:baseline"

// HealthBaselineStore persists the trailing overall health score across
// restarts so the trend direction survives a redeploy.
type HealthBaselineStore struct {
	client *redis.Client
}

// NewHealthBaselineStore creates a new HealthBaselineStore instance.
func NewHealthBaselineStore(client *redis.Client) *HealthBaselineStore {
	return &HealthBaselineStore{client: client}
}

// GetBaseline returns the last stored overall score, or nil if none exists.
func (s *HealthBaselineStore) GetBaseline(ctx context.Context) (*float64, error) {
	val, err := s.client.Get(ctx, healthBaselineKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get health baseline: %w", err)
	}

	baseline, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse health baseline: %w", err)
	}

	return &baseline, nil
}

// SetBaseline persists the current overall score.
func (s *HealthBaselineStore) SetBaseline(ctx context.Context, overall float64) error {
	val := strconv.FormatFloat(overall, 'f', -1, 64)
	if err := s.client.Set(ctx, healthBaselineKey, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to set health baseline: %w", err)
	}
	return nil
}
