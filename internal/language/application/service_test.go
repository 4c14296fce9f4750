package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vividmgmt/vividbackend/internal/language/domain"
	"github.com/vividmgmt/vividbackend/pkg/i18n"
)

type memPrefs struct {
	prefs  map[string]domain.Preference
	getErr error
}

func newMemPrefs() *memPrefs { return &memPrefs{prefs: map[string]domain.Preference{}} }

func (m *memPrefs) Get(ctx context.Context, visitorID string) (*domain.Preference, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if p, ok := m.prefs[visitorID]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *memPrefs) Set(ctx context.Context, visitorID string, pref domain.Preference) error {
	m.prefs[visitorID] = pref
	return nil
}

type stubResolver struct {
	code string
	err  error
}

func (s *stubResolver) CountryCode(ctx context.Context, ip string) (string, error) {
	return s.code, s.err
}

func TestResolveDetectsSpanishCountry(t *testing.T) {
	repo := newMemPrefs()
	svc := NewLanguageService(repo, &stubResolver{code: "MX"})

	pref, err := svc.Resolve(context.Background(), "v1", "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, i18n.LocaleES, pref.Locale)
	assert.Equal(t, domain.SourceDetected, pref.Source)

	// 探测结果已缓存
	cached, ok := repo.prefs["v1"]
	require.True(t, ok)
	assert.Equal(t, i18n.LocaleES, cached.Locale)
}

func TestResolveNonSpanishCountryDefaultsToEnglish(t *testing.T) {
	svc := NewLanguageService(newMemPrefs(), &stubResolver{code: "DE"})

	pref, err := svc.Resolve(context.Background(), "v1", "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, i18n.LocaleEN, pref.Locale)
}

func TestResolveManualPreferenceWins(t *testing.T) {
	repo := newMemPrefs()
	repo.prefs["v1"] = domain.Preference{Locale: i18n.LocaleRU, Source: domain.SourceManual}
	svc := NewLanguageService(repo, &stubResolver{code: "MX"})

	pref, err := svc.Resolve(context.Background(), "v1", "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, i18n.LocaleRU, pref.Locale)
	assert.Equal(t, domain.SourceManual, pref.Source)
}

func TestResolveGeoFailureFallsBack(t *testing.T) {
	svc := NewLanguageService(newMemPrefs(), &stubResolver{err: errors.New("timeout")})

	pref, err := svc.Resolve(context.Background(), "v1", "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, i18n.DefaultLocale, pref.Locale)
}

func TestResolveRepoFailureStillDetects(t *testing.T) {
	repo := newMemPrefs()
	repo.getErr = errors.New("redis down")
	svc := NewLanguageService(repo, &stubResolver{code: "AR"})

	pref, err := svc.Resolve(context.Background(), "v1", "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, i18n.LocaleES, pref.Locale)
}

func TestSetManual(t *testing.T) {
	repo := newMemPrefs()
	svc := NewLanguageService(repo, &stubResolver{code: "MX"})

	pref, err := svc.SetManual(context.Background(), "v1", i18n.LocaleRU)
	require.NoError(t, err)
	assert.Equal(t, i18n.LocaleRU, pref.Locale)
	assert.Equal(t, domain.SourceManual, pref.Source)

	// 手动选择后不再改写
	got, err := svc.Resolve(context.Background(), "v1", "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, i18n.LocaleRU, got.Locale)
}
