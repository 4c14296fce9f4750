package application

import (
	"regexp"

	"github.com/vividmgmt/vividbackend/internal/submission/domain"
	"github.com/vividmgmt/vividbackend/pkg/i18n"
)

// emailPattern 标准 local@domain 形式
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator 校验聚合器：跑完整组检查，一次性返回全部违规文案。
// 已知策略缺口：年龄确认勾选与文件 MIME 在这里都不拦，与线上行为一致。
type Validator struct {
	catalog *i18n.Catalog
}

// NewValidator 创建校验聚合器
func NewValidator(catalog *i18n.Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// Validate 纯函数：表单状态 -> 违规文案列表。空列表表示允许提交。
func (v *Validator) Validate(loc i18n.Locale, form domain.FormState, files *domain.FileSet) []string {
	var violations []string

	if form.FullName == "" {
		violations = append(violations, v.catalog.T(loc, i18n.KeyFullNameRequired))
	}
	if form.Email == "" {
		violations = append(violations, v.catalog.T(loc, i18n.KeyEmailRequired))
	} else if !emailPattern.MatchString(form.Email) {
		violations = append(violations, v.catalog.T(loc, i18n.KeyEmailValidationErr))
	}
	if form.PhoneNumber == "" {
		violations = append(violations, v.catalog.T(loc, i18n.KeyPhoneRequired))
	}
	if form.PreferredContact == "" {
		violations = append(violations, v.catalog.T(loc, i18n.KeyPreferredContactErr))
	}
	if form.WhyJoin == "" {
		violations = append(violations, v.catalog.T(loc, i18n.KeyWhyJoinRequired))
	}

	if !files.Valid() {
		violations = append(violations, v.catalog.Tf(loc, i18n.KeyFileValidationErr, files.Min(), files.Count()))
	}

	// 平台状态链：未回答本身就是违规；仅在上一层为 yes 时检查下一层
	if form.HasAccount == nil {
		violations = append(violations, v.catalog.T(loc, i18n.KeyHasAccountErr))
	} else if *form.HasAccount {
		if form.IsVerified == nil {
			violations = append(violations, v.catalog.T(loc, i18n.KeyIsVerifiedErr))
		} else if *form.IsVerified && form.HasVerifiedPayment == nil {
			violations = append(violations, v.catalog.T(loc, i18n.KeyVerifiedPaymentErr))
		}
	}

	return violations
}
