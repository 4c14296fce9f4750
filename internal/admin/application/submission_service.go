package application

import (
	"context"
	"time"

	subapp "github.com/vividmgmt/vividbackend/internal/submission/application"
	subdomain "github.com/vividmgmt/vividbackend/internal/submission/domain"
	"github.com/vividmgmt/vividbackend/pkg/logger"
)

// AdminSubmissionService 管理端的报名记录读写
type AdminSubmissionService struct {
	repo      subdomain.SubmissionRepository
	publisher subdomain.EventPublisher
	topic     string
}

func NewAdminSubmissionService(repo subdomain.SubmissionRepository, publisher subdomain.EventPublisher, topic string) *AdminSubmissionService {
	return &AdminSubmissionService{repo: repo, publisher: publisher, topic: topic}
}

// List 按创建时间倒序返回全部报名
func (s *AdminSubmissionService) List(ctx context.Context) ([]*subapp.SubmissionDTO, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return subapp.ToDTOs(subs), nil
}

func (s *AdminSubmissionService) Get(ctx context.Context, id string) (*subapp.SubmissionDTO, error) {
	sub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return subapp.ToDTO(sub), nil
}

// UpdateOnboarding 补录 onboarding 字段。空串统一落成 null，库里不存占位空串。
func (s *AdminSubmissionService) UpdateOnboarding(ctx context.Context, id string, adminID uint, input OnboardingInput) (*subapp.SubmissionDTO, error) {
	patch := subdomain.OnboardingPatch{
		SmartphoneModel:        blankToNil(input.SmartphoneModel),
		CompensationOffer:      blankToNil(input.CompensationOffer),
		DailyAvailabilityHours: input.DailyAvailabilityHours,
		EnglishSkillLevel:      input.EnglishSkillLevel,
		ExplicitContentDetails: blankToNil(input.ExplicitContentDetails),
		StartAvailability:      blankToNil(input.StartAvailability),
		BlockedCountries:       blankToNil(input.BlockedCountries),
		ContractSigned:         input.ContractSigned,
		EquipmentReady:         input.EquipmentReady,
		AdminNotes:             blankToNil(input.AdminNotes),
	}
	if err := s.repo.UpdateOnboarding(ctx, id, patch); err != nil {
		return nil, err
	}

	if s.publisher != nil {
		event := subdomain.OnboardingCompleted{
			SubmissionID: id,
			AdminID:      adminID,
			CompletedAt:  time.Now(),
		}
		if err := s.publisher.Publish(ctx, s.topic, id, event); err != nil {
			logger.Warn(ctx, "Failed to publish onboarding event", "submission_id", id, "error", err)
		}
	}

	return s.Get(ctx, id)
}

// Delete 删除报名并返回刷新后的列表
func (s *AdminSubmissionService) Delete(ctx context.Context, id string) ([]*subapp.SubmissionDTO, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return s.List(ctx)
}

func blankToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
