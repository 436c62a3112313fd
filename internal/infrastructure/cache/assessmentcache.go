package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pulsegym/internal/domain/retention"
	"pulsegym/internal/shared/logger"
)

const (
	assessmentKeyPrefix = "member:assessment:"
	assessmentTTL       = 5 * time.Minute
)

// RedisAssessmentCache caches the latest single-member assessment so bursts
// of lookups for the same member do not reload the whole roster each time.
type RedisAssessmentCache struct {
	client *redis.Client
	logger logger.Interface
}

// NewRedisAssessmentCache creates a new Redis-based assessment cache.
func NewRedisAssessmentCache(client *redis.Client, logger logger.Interface) *RedisAssessmentCache {
	return &RedisAssessmentCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisAssessmentCache) key(memberID string) string {
	return assessmentKeyPrefix + memberID
}

// Get returns the cached assessment, or nil on a miss.
func (c *RedisAssessmentCache) Get(ctx context.Context, memberID string) (*retention.RiskAssessment, error) {
	data, err := c.client.Get(ctx, c.key(memberID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached assessment: %w", err)
	}

	var assessment retention.RiskAssessment
	if err := json.Unmarshal(data, &assessment); err != nil {
		// Corrupt entry; drop it and treat as a miss.
		c.logger.Warnw("dropping unreadable cached assessment", "member_id", memberID, "error", err)
		c.client.Del(ctx, c.key(memberID))
		return nil, nil
	}

	return &assessment, nil
}

// Set stores the assessment with a short TTL.
func (c *RedisAssessmentCache) Set(ctx context.Context, assessment *retention.RiskAssessment) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		return fmt.Errorf("failed to marshal assessment: %w", err)
	}

	if err := c.client.Set(ctx, c.key(assessment.MemberID), data, assessmentTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache assessment: %w", err)
	}
	return nil
}
