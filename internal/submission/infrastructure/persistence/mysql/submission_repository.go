package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vividmgmt/vividbackend/internal/submission/domain"
)

type submissionRepository struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) domain.SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Insert(ctx context.Context, sub *domain.Submission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *submissionRepository) List(ctx context.Context) ([]domain.Submission, error) {
	var subs []domain.Submission
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func (r *submissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	var sub domain.Submission
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateOnboarding 按显式列更新，指针为 nil 的字段写 NULL 而不是跳过
func (r *submissionRepository) UpdateOnboarding(ctx context.Context, id string, patch domain.OnboardingPatch) error {
	updates := map[string]any{
		"smartphone_model":         patch.SmartphoneModel,
		"compensation_offer":       patch.CompensationOffer,
		"daily_availability_hours": patch.DailyAvailabilityHours,
		"english_skill_level":      patch.EnglishSkillLevel,
		"explicit_content_details": patch.ExplicitContentDetails,
		"start_availability":       patch.StartAvailability,
		"blocked_countries":        patch.BlockedCountries,
		"contract_signed":          patch.ContractSigned,
		"equipment_ready":          patch.EquipmentReady,
		"admin_notes":              patch.AdminNotes,
	}
	result := r.db.WithContext(ctx).Model(&domain.Submission{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *submissionRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Submission{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
