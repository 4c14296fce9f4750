package application

// AuthTokenDTO 登录成功返回的会话凭证
type AuthTokenDTO struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ExpiresAt int64  `json:"expires_at"`
}

// OnboardingInput 管理端补录请求体。空串/零值在落库前统一转为 null。
type OnboardingInput struct {
	SmartphoneModel        string `json:"smartphone_model"`
	CompensationOffer      string `json:"compensation_offer"`
	DailyAvailabilityHours *int   `json:"daily_availability_hours"`
	EnglishSkillLevel      *int   `json:"english_skill_level"`
	ExplicitContentDetails string `json:"explicit_content_details"`
	StartAvailability      string `json:"start_availability"`
	BlockedCountries       string `json:"blocked_countries"`
	ContractSigned         bool   `json:"contract_signed"`
	EquipmentReady         bool   `json:"equipment_ready"`
	AdminNotes             string `json:"admin_notes"`
}
