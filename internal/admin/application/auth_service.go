// Package application 管理端应用服务
package application

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/vividmgmt/vividbackend/internal/admin/domain"
	"github.com/vividmgmt/vividbackend/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
)

// AuthService 管理端登录/登出。
// JWT 只承载身份，会话存活以 Redis 里的记录为准，登出立即生效。
type AuthService struct {
	admins     domain.AdminRepository
	sessions   domain.SessionRepository
	jwtSecret  []byte
	sessionTTL time.Duration
}

func NewAuthService(admins domain.AdminRepository, sessions domain.SessionRepository, jwtSecret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		admins:     admins,
		sessions:   sessions,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
	}
}

type sessionClaims struct {
	AdminID uint `json:"admin_id"`
	jwt.RegisteredClaims
}

// Login 校验凭据并签发会话 token
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthTokenDTO, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		// 账号不存在与密码错误对外不可区分
		return nil, ErrInvalidCredentials
	}
	if !admin.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	tokenID := uuid.New().String()
	claims := sessionClaims{
		AdminID: admin.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   admin.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		TokenID:   tokenID,
		AdminID:   admin.ID,
		Email:     admin.Email,
		CreatedAt: now,
	}
	if err := s.sessions.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Admin logged in", "admin_id", admin.ID)
	return &AuthTokenDTO{
		Token:     signed,
		Type:      "Bearer",
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}

// Verify 校验 token 并确认会话仍然存活，返回管理员 ID
func (s *AuthService) Verify(ctx context.Context, token string) (uint, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return 0, ErrSessionExpired
	}

	session, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return 0, err
	}
	if session == nil {
		return 0, ErrSessionExpired
	}
	return claims.AdminID, nil
}

// SignOut 删除会话，token 立即失效
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		// 已过期的 token 无会话可删
		return nil
	}
	return s.sessions.Delete(ctx, claims.ID)
}

func (s *AuthService) parseToken(token string) (*sessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// EnsureSeedAdmin 首次启动时创建初始管理员账号，已有账号则不动
func (s *AuthService) EnsureSeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	total, err := s.admins.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	admin, err := domain.NewAdmin(email, password)
	if err != nil {
		return err
	}
	if err := s.admins.Save(ctx, admin); err != nil {
		return err
	}
	logger.Info(ctx, "Seed admin created", "email", email)
	return nil
}
