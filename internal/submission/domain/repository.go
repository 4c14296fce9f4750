package domain

import (
	"context"
	"errors"
)

// ErrNotFound 目标报名记录不存在。仓储在按 ID 未命中时返回它，
// 调用方以此区分“记录没了”和存储层故障。
var ErrNotFound = errors.New("submission not found")

// OnboardingPatch 管理端补录的字段子集。指针为 nil 表示置 null，而不是跳过。
type OnboardingPatch struct {
	SmartphoneModel        *string
	CompensationOffer      *string
	DailyAvailabilityHours *int
	EnglishSkillLevel      *int
	ExplicitContentDetails *string
	StartAvailability      *string
	BlockedCountries       *string
	ContractSigned         bool
	EquipmentReady         bool
	AdminNotes             *string
}

// SubmissionRepository 报名记录存取
type SubmissionRepository interface {
	Insert(ctx context.Context, sub *Submission) error
	// List 按创建时间倒序返回全部记录
	List(ctx context.Context) ([]Submission, error)
	GetByID(ctx context.Context, id string) (*Submission, error)
	UpdateOnboarding(ctx context.Context, id string, patch OnboardingPatch) error
	Delete(ctx context.Context, id string) error
}
