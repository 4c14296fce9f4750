package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vividmgmt/vividbackend/internal/admin/domain"
)

type SessionRedisRepository struct {
	client redis.UniversalClient
	prefix string
}

// NewSessionRedisRepository 创建基于 Redis 的会话仓储
func NewSessionRedisRepository(client redis.UniversalClient) *SessionRedisRepository {
	return &SessionRedisRepository{
		client: client,
		prefix: "admin:session:",
	}
}

func (r *SessionRedisRepository) Save(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.Set(ctx, r.prefix+session.TokenID, data, ttl).Err()
}

func (r *SessionRedisRepository) Get(ctx context.Context, tokenID string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, r.prefix+tokenID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}
	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *SessionRedisRepository) Delete(ctx context.Context, tokenID string) error {
	return r.client.Del(ctx, r.prefix+tokenID).Err()
}
