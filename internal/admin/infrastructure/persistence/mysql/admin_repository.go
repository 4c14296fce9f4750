package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vividmgmt/vividbackend/internal/admin/domain"
)

var ErrAdminNotFound = errors.New("admin not found")

type adminRepository struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) domain.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Save(ctx context.Context, admin *domain.Admin) error {
	return r.db.WithContext(ctx).Save(admin).Error
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&domain.Admin{}).Count(&total).Error
	return total, err
}
