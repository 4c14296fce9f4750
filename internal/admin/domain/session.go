package domain

import (
	"context"
	"time"
)

// Session 一次管理端登录会话。登出即删除，JWT 未过期也随之失效。
type Session struct {
	TokenID   string    `json:"token_id"`
	AdminID   uint      `json:"admin_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionRepository 会话存取，带 TTL
type SessionRepository interface {
	Save(ctx context.Context, session *Session, ttl time.Duration) error
	Get(ctx context.Context, tokenID string) (*Session, error)
	Delete(ctx context.Context, tokenID string) error
}
