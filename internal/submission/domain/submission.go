// Package domain 报名领域模型
package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ContactMethod 首选联系方式
type ContactMethod string

const (
	ContactTelegram ContactMethod = "Telegram"
	ContactWhatsApp ContactMethod = "WhatsApp"
)

// Submission 一条报名记录。公开表单写入一次，之后仅管理端可改动 onboarding 字段或删除。
type Submission struct {
	// ID 服务端生成的唯一标识，管理端的更新/删除都按它匹配
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	FullName               string         `gorm:"column:full_name;type:varchar(255);not null" json:"full_name"`
	Email                  string         `gorm:"column:email;type:varchar(255);not null;index" json:"email"`
	PhoneNumber            *string        `gorm:"column:phone_number;type:varchar(32)" json:"phone_number"`
	PreferredContactMethod *ContactMethod `gorm:"column:preferred_contact_method;type:varchar(16)" json:"preferred_contact_method"`
	WhatsappNumber         *string        `gorm:"column:whatsapp_number;type:varchar(32)" json:"whatsapp_number"`
	TelegramUsername       *string        `gorm:"column:telegram_username;type:varchar(64)" json:"telegram_username"`

	Age             *int    `gorm:"column:age" json:"age"`
	CountryOrigin   *string `gorm:"column:country_origin;type:varchar(64)" json:"country_origin"`
	PrimaryLanguage *string `gorm:"column:primary_language;type:varchar(64)" json:"primary_language"`

	// 平台状态链：has_account -> is_verified -> has_verified_payment -> earnings。
	// 链上任一层为 no 或未回答时，其后全部字段必须为 null。
	HasAccount         *bool   `gorm:"column:has_account" json:"has_account"`
	IsVerified         *bool   `gorm:"column:is_verified" json:"is_verified"`
	HasVerifiedPayment *bool   `gorm:"column:has_verified_payment" json:"has_verified_payment"`
	EarningsLast30Days *string `gorm:"column:earnings_last_30_days;type:varchar(255)" json:"earnings_last_30_days"`

	WhyJoin      string `gorm:"column:why_join;type:text;not null" json:"why_join"`
	AgeConfirmed bool   `gorm:"column:age_confirmed;not null" json:"age_confirmed"`

	// ImageURLs 上传成功的对象公开地址，JSON 数组；无上传则为 null
	ImageURLs datatypes.JSON `gorm:"column:image_urls" json:"image_urls"`

	// Onboarding 字段，管理端补录
	SmartphoneModel        *string `gorm:"column:smartphone_model;type:varchar(128)" json:"smartphone_model"`
	CompensationOffer      *string `gorm:"column:compensation_offer;type:varchar(255)" json:"compensation_offer"`
	DailyAvailabilityHours *int    `gorm:"column:daily_availability_hours" json:"daily_availability_hours"`
	EnglishSkillLevel      *int    `gorm:"column:english_skill_level" json:"english_skill_level"`
	ExplicitContentDetails *string `gorm:"column:explicit_content_details;type:text" json:"explicit_content_details"`
	StartAvailability      *string `gorm:"column:start_availability;type:varchar(128)" json:"start_availability"`
	BlockedCountries       *string `gorm:"column:blocked_countries;type:text" json:"blocked_countries"`
	ContractSigned         bool    `gorm:"column:contract_signed;not null;default:false" json:"contract_signed"`
	EquipmentReady         bool    `gorm:"column:equipment_ready;not null;default:false" json:"equipment_ready"`
	AdminNotes             *string `gorm:"column:admin_notes;type:text" json:"admin_notes"`
}

func (Submission) TableName() string { return "submissions" }

// ImageURLList 解析 image_urls 列；null 返回空切片
func (s *Submission) ImageURLList() []string {
	if len(s.ImageURLs) == 0 {
		return nil
	}
	var urls []string
	if err := json.Unmarshal(s.ImageURLs, &urls); err != nil {
		return nil
	}
	return urls
}

// FormState 表单提交时的字段快照，提交管道的输入
type FormState struct {
	FullName            string
	Email               string
	PhoneNumber         string
	PreferredContact    ContactMethod // 空串 = 未选择
	WhatsappNumber      string
	UsePhoneForWhatsapp bool
	TelegramUsername    string
	Age                 *int
	CountryOrigin       string
	PrimaryLanguage     string
	HasAccount          *bool // nil = 未回答
	IsVerified          *bool
	HasVerifiedPayment  *bool
	EarningsLast30Days  string
	WhyJoin             string
	AgeConfirmed        bool
}

// Record 按归一化规则组装一条待写入记录。
// 依赖链上任一层不为 yes 时，其后字段一律置 null，不保留界面上的旧值。
func (f FormState) Record(imageURLs []string) (*Submission, error) {
	sub := &Submission{
		ID:           uuid.New().String(),
		FullName:     f.FullName,
		Email:        f.Email,
		PhoneNumber:  nullIfEmpty(f.PhoneNumber),
		Age:          f.Age,
		WhyJoin:      f.WhyJoin,
		AgeConfirmed: f.AgeConfirmed,
	}

	sub.CountryOrigin = nullIfEmpty(f.CountryOrigin)
	sub.PrimaryLanguage = nullIfEmpty(f.PrimaryLanguage)

	switch f.PreferredContact {
	case ContactWhatsApp:
		m := ContactWhatsApp
		sub.PreferredContactMethod = &m
		if f.UsePhoneForWhatsapp {
			sub.WhatsappNumber = nullIfEmpty(f.PhoneNumber)
		} else {
			sub.WhatsappNumber = nullIfEmpty(f.WhatsappNumber)
		}
	case ContactTelegram:
		m := ContactTelegram
		sub.PreferredContactMethod = &m
		sub.TelegramUsername = nullIfEmpty(f.TelegramUsername)
	}

	sub.HasAccount = f.HasAccount
	if f.HasAccount != nil && *f.HasAccount {
		sub.IsVerified = f.IsVerified
		if f.IsVerified != nil && *f.IsVerified {
			sub.HasVerifiedPayment = f.HasVerifiedPayment
			sub.EarningsLast30Days = nullIfEmpty(f.EarningsLast30Days)
		}
	}

	if len(imageURLs) > 0 {
		data, err := json.Marshal(imageURLs)
		if err != nil {
			return nil, err
		}
		sub.ImageURLs = datatypes.JSON(data)
	}

	return sub, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
