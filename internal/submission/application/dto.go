package application

import (
	"time"

	"github.com/vividmgmt/vividbackend/internal/submission/domain"
)

// SubmissionDTO 对外返回的报名记录
type SubmissionDTO struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	FullName               string  `json:"full_name"`
	Email                  string  `json:"email"`
	PhoneNumber            *string `json:"phone_number"`
	PreferredContactMethod *string `json:"preferred_contact_method"`
	WhatsappNumber         *string `json:"whatsapp_number"`
	TelegramUsername       *string `json:"telegram_username"`
	Age                    *int    `json:"age"`
	CountryOrigin          *string `json:"country_origin"`
	PrimaryLanguage        *string `json:"primary_language"`

	HasAccount         *bool   `json:"has_account"`
	IsVerified         *bool   `json:"is_verified"`
	HasVerifiedPayment *bool   `json:"has_verified_payment"`
	EarningsLast30Days *string `json:"earnings_last_30_days"`

	WhyJoin      string   `json:"why_join"`
	AgeConfirmed bool     `json:"age_confirmed"`
	ImageURLs    []string `json:"image_urls"`

	SmartphoneModel        *string `json:"smartphone_model"`
	CompensationOffer      *string `json:"compensation_offer"`
	DailyAvailabilityHours *int    `json:"daily_availability_hours"`
	EnglishSkillLevel      *int    `json:"english_skill_level"`
	ExplicitContentDetails *string `json:"explicit_content_details"`
	StartAvailability      *string `json:"start_availability"`
	BlockedCountries       *string `json:"blocked_countries"`
	ContractSigned         bool    `json:"contract_signed"`
	EquipmentReady         bool    `json:"equipment_ready"`
	AdminNotes             *string `json:"admin_notes"`
}

// ToDTO 领域模型转 DTO
func ToDTO(sub *domain.Submission) *SubmissionDTO {
	var method *string
	if sub.PreferredContactMethod != nil {
		m := string(*sub.PreferredContactMethod)
		method = &m
	}
	return &SubmissionDTO{
		ID:                     sub.ID,
		CreatedAt:              sub.CreatedAt,
		FullName:               sub.FullName,
		Email:                  sub.Email,
		PhoneNumber:            sub.PhoneNumber,
		PreferredContactMethod: method,
		WhatsappNumber:         sub.WhatsappNumber,
		TelegramUsername:       sub.TelegramUsername,
		Age:                    sub.Age,
		CountryOrigin:          sub.CountryOrigin,
		PrimaryLanguage:        sub.PrimaryLanguage,
		HasAccount:             sub.HasAccount,
		IsVerified:             sub.IsVerified,
		HasVerifiedPayment:     sub.HasVerifiedPayment,
		EarningsLast30Days:     sub.EarningsLast30Days,
		WhyJoin:                sub.WhyJoin,
		AgeConfirmed:           sub.AgeConfirmed,
		ImageURLs:              sub.ImageURLList(),
		SmartphoneModel:        sub.SmartphoneModel,
		CompensationOffer:      sub.CompensationOffer,
		DailyAvailabilityHours: sub.DailyAvailabilityHours,
		EnglishSkillLevel:      sub.EnglishSkillLevel,
		ExplicitContentDetails: sub.ExplicitContentDetails,
		StartAvailability:      sub.StartAvailability,
		BlockedCountries:       sub.BlockedCountries,
		ContractSigned:         sub.ContractSigned,
		EquipmentReady:         sub.EquipmentReady,
		AdminNotes:             sub.AdminNotes,
	}
}

// ToDTOs 批量转换
func ToDTOs(subs []domain.Submission) []*SubmissionDTO {
	out := make([]*SubmissionDTO, len(subs))
	for i := range subs {
		out[i] = ToDTO(&subs[i])
	}
	return out
}
