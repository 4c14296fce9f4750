// Package i18n 提供按语言的静态文案表：类型化 key，查找顺序 locale -> 默认语言 -> key 原文
package i18n

import (
	"fmt"
	"strings"
)

// Locale 支持的语言
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleES Locale = "es"
	LocaleRU Locale = "ru"

	// DefaultLocale 检测失败时的回退语言
	DefaultLocale = LocaleEN
)

// ParseLocale 解析语言代码，未知语言返回 false
func ParseLocale(s string) (Locale, bool) {
	switch Locale(strings.ToLower(s)) {
	case LocaleEN:
		return LocaleEN, true
	case LocaleES:
		return LocaleES, true
	case LocaleRU:
		return LocaleRU, true
	}
	return "", false
}

// LocaleOrDefault 宽松解析：接受 "es-MX"、"es,en;q=0.9" 这类请求头取值，
// 解析失败时回默认语言。
func LocaleOrDefault(s string) Locale {
	for _, sep := range []string{",", ";", "-"} {
		if i := strings.Index(s, sep); i >= 0 {
			s = s[:i]
		}
	}
	if loc, ok := ParseLocale(strings.TrimSpace(s)); ok {
		return loc
	}
	return DefaultLocale
}

// Key 文案键。只允许使用本包内声明的常量，避免字面量拼写错误直接漏给用户。
type Key string

const (
	// 校验文案
	KeyFullNameRequired    Key = "fullNameRequired"
	KeyEmailRequired       Key = "emailRequired"
	KeyPhoneRequired       Key = "phoneRequired"
	KeyWhyJoinRequired     Key = "whyJoinRequired"
	KeyEmailValidationErr  Key = "emailValidationError"
	KeyFileValidationErr   Key = "fileValidationError"
	KeyHasAccountErr       Key = "hasAccountError"
	KeyIsVerifiedErr       Key = "isVerifiedError"
	KeyVerifiedPaymentErr  Key = "hasVerifiedPaymentError"
	KeyUnknownSubmitErr    Key = "unknownSubmitError"
	KeyUploadStarting      Key = "uploadStarting"
	KeyUploadProgress      Key = "uploadProgressMsg"
	KeyUploadFinishing     Key = "uploadFinishing"
	KeyUploadFileErr       Key = "uploadFileError"
	KeySubmissionSuccess   Key = "submissionSuccess"
	KeyNeedMoreImages      Key = "needMoreImages"
	KeyPreferredContactErr Key = "preferredContactError"

	// 站点文案
	KeyHeroTitle       Key = "heroTitle"
	KeyHeroSubtitle    Key = "heroSubtitle"
	KeyAboutTitle      Key = "aboutTitle"
	KeyAboutBody       Key = "aboutBody"
	KeyServicesTitle   Key = "servicesTitle"
	KeyServicesBody    Key = "servicesBody"
	KeyWhyUsTitle      Key = "whyUsTitle"
	KeyWhyUsBody       Key = "whyUsBody"
	KeyHowItWorksTitle Key = "howItWorksTitle"
	KeyHowItWorksBody  Key = "howItWorksBody"
	KeyFAQTitle        Key = "faqTitle"
	KeyApplyNow        Key = "applyNow"
)

// Catalog 按语言的文案表
type Catalog struct {
	tables map[Locale]map[Key]string
}

// NewCatalog 创建带全部内置语言的文案表
func NewCatalog() *Catalog {
	return &Catalog{
		tables: map[Locale]map[Key]string{
			LocaleEN: tableEN,
			LocaleES: tableES,
			LocaleRU: tableRU,
		},
	}
}

// T 查找文案：locale -> 默认语言 -> key 原文
func (c *Catalog) T(loc Locale, key Key) string {
	if table, ok := c.tables[loc]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := c.tables[DefaultLocale][key]; ok {
		return s
	}
	return string(key)
}

// Tf 查找文案并格式化参数
func (c *Catalog) Tf(loc Locale, key Key, args ...any) string {
	return fmt.Sprintf(c.T(loc, key), args...)
}
