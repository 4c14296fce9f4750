// Package domain 管理端领域模型
package domain

import (
	"context"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Admin struct {
	gorm.Model
	Email        string `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
}

func (Admin) TableName() string {
	return "admins"
}

// NewAdmin 创建管理员，密码在此处完成散列
func NewAdmin(email, password string) (*Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Admin{Email: email, PasswordHash: string(hash)}, nil
}

// CheckPassword 校验明文密码
func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// AdminRepository 管理员账号存取
type AdminRepository interface {
	Save(ctx context.Context, admin *Admin) error
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	Count(ctx context.Context) (int64, error)
}
