// Package application 语言偏好服务
package application

import (
	"context"

	"github.com/vividmgmt/vividbackend/internal/language/domain"
	"github.com/vividmgmt/vividbackend/pkg/geoip"
	"github.com/vividmgmt/vividbackend/pkg/i18n"
	"github.com/vividmgmt/vividbackend/pkg/logger"
)

// GeoResolver 按来访 IP 解析国家码
type GeoResolver interface {
	CountryCode(ctx context.Context, ip string) (string, error)
}

// LanguageService 决定访客界面语言：手动偏好 > 地理探测 > 默认
type LanguageService struct {
	repo     domain.PreferenceRepository
	resolver GeoResolver
}

func NewLanguageService(repo domain.PreferenceRepository, resolver GeoResolver) *LanguageService {
	return &LanguageService{repo: repo, resolver: resolver}
}

// Resolve 返回访客应使用的语言。
// 探测失败一律回落到默认语言，绝不因外部服务阻断页面。
func (s *LanguageService) Resolve(ctx context.Context, visitorID, ip string) (domain.Preference, error) {
	if pref, err := s.repo.Get(ctx, visitorID); err != nil {
		logger.Warn(ctx, "Failed to load language preference", "visitor_id", visitorID, "error", err)
	} else if pref != nil {
		return *pref, nil
	}

	code, err := s.resolver.CountryCode(ctx, ip)
	if err != nil {
		logger.Warn(ctx, "Geo lookup failed, falling back to default locale", "ip", ip, "error", err)
		return domain.Preference{Locale: i18n.DefaultLocale, Source: domain.SourceDetected}, nil
	}

	pref := domain.Preference{Locale: geoip.LocaleFor(code), Source: domain.SourceDetected}
	if err := s.repo.Set(ctx, visitorID, pref); err != nil {
		logger.Warn(ctx, "Failed to cache language preference", "visitor_id", visitorID, "error", err)
	}
	return pref, nil
}

// SetManual 记录访客手动选择的语言，之后不再探测
func (s *LanguageService) SetManual(ctx context.Context, visitorID string, loc i18n.Locale) (domain.Preference, error) {
	pref := domain.Preference{Locale: loc, Source: domain.SourceManual}
	if err := s.repo.Set(ctx, visitorID, pref); err != nil {
		return domain.Preference{}, err
	}
	return pref, nil
}
