// Package domain 语言偏好领域
package domain

import (
	"context"

	"github.com/vividmgmt/vividbackend/pkg/i18n"
)

// Source 偏好的来源
type Source string

const (
	// SourceDetected 由来访 IP 的地理位置推断
	SourceDetected Source = "detected"
	// SourceManual 访客手动切换
	SourceManual Source = "manual"
)

// Preference 一个访客的界面语言偏好
type Preference struct {
	Locale i18n.Locale `json:"locale"`
	Source Source      `json:"source"`
}

// PreferenceRepository 偏好存取。手动偏好优先于探测结果。
type PreferenceRepository interface {
	Get(ctx context.Context, visitorID string) (*Preference, error)
	Set(ctx context.Context, visitorID string, pref Preference) error
}
