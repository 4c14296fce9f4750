package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vividmgmt/vividbackend/internal/language/domain"
)

type PreferenceRedisRepository struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewPreferenceRedisRepository 创建基于 Redis 的语言偏好仓储
func NewPreferenceRedisRepository(client redis.UniversalClient) *PreferenceRedisRepository {
	return &PreferenceRedisRepository{
		client: client,
		prefix: "language:preference:",
		ttl:    30 * 24 * time.Hour,
	}
}

func (r *PreferenceRedisRepository) Get(ctx context.Context, visitorID string) (*domain.Preference, error) {
	if visitorID == "" {
		return nil, nil
	}
	data, err := r.client.Get(ctx, r.prefix+visitorID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preference from redis: %w", err)
	}
	var pref domain.Preference
	if err := json.Unmarshal(data, &pref); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preference: %w", err)
	}
	return &pref, nil
}

func (r *PreferenceRedisRepository) Set(ctx context.Context, visitorID string, pref domain.Preference) error {
	data, err := json.Marshal(pref)
	if err != nil {
		return fmt.Errorf("failed to marshal preference: %w", err)
	}
	return r.client.Set(ctx, r.prefix+visitorID, data, r.ttl).Err()
}
