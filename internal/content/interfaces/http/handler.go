// Package http 站点文案与表单选项的 HTTP 接口
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vividmgmt/vividbackend/internal/submission/domain"
	"github.com/vividmgmt/vividbackend/pkg/i18n"
)

type ContentHandler struct {
	catalog *i18n.Catalog
}

func NewContentHandler(catalog *i18n.Catalog) *ContentHandler {
	return &ContentHandler{catalog: catalog}
}

func (h *ContentHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1/content")
	{
		api.GET("", h.Sections)
		api.GET("/options", h.Options)
	}
}

// Sections 返回指定语言的全部营销区块文案
func (h *ContentHandler) Sections(c *gin.Context) {
	loc := i18n.LocaleOrDefault(c.DefaultQuery("lang", c.GetHeader("Accept-Language")))

	c.JSON(http.StatusOK, gin.H{
		"locale": loc,
		"hero": gin.H{
			"title":    h.catalog.T(loc, i18n.KeyHeroTitle),
			"subtitle": h.catalog.T(loc, i18n.KeyHeroSubtitle),
		},
		"about": gin.H{
			"title": h.catalog.T(loc, i18n.KeyAboutTitle),
			"body":  h.catalog.T(loc, i18n.KeyAboutBody),
		},
		"services": gin.H{
			"title": h.catalog.T(loc, i18n.KeyServicesTitle),
			"body":  h.catalog.T(loc, i18n.KeyServicesBody),
		},
		"why_us": gin.H{
			"title": h.catalog.T(loc, i18n.KeyWhyUsTitle),
			"body":  h.catalog.T(loc, i18n.KeyWhyUsBody),
		},
		"how_it_works": gin.H{
			"title": h.catalog.T(loc, i18n.KeyHowItWorksTitle),
			"body":  h.catalog.T(loc, i18n.KeyHowItWorksBody),
		},
		"faq": gin.H{
			"title": h.catalog.T(loc, i18n.KeyFAQTitle),
		},
		"apply_now": h.catalog.T(loc, i18n.KeyApplyNow),
	})
}

// Options 返回表单的固定选项列表
func (h *ContentHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"countries":         domain.Countries,
		"primary_languages": domain.PrimaryLanguages,
		"contact_methods":   domain.ContactMethods,
	})
}
