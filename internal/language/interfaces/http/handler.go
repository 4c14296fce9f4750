// Package http 语言偏好的 HTTP 接口
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vividmgmt/vividbackend/internal/language/application"
	"github.com/vividmgmt/vividbackend/pkg/i18n"
)

type LanguageHandler struct {
	app *application.LanguageService
}

func NewLanguageHandler(app *application.LanguageService) *LanguageHandler {
	return &LanguageHandler{app: app}
}

func (h *LanguageHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1/language")
	{
		api.GET("", h.Resolve)
		api.PUT("", h.SetManual)
	}
}

// Resolve 返回访客应使用的语言，无法探测时回默认语言
func (h *LanguageHandler) Resolve(c *gin.Context) {
	visitorID := c.GetHeader("X-Visitor-ID")
	if visitorID == "" {
		visitorID = c.Query("visitor_id")
	}

	pref, err := h.app.Resolve(c.Request.Context(), visitorID, c.ClientIP())
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"locale": i18n.DefaultLocale, "source": "detected"})
		return
	}
	c.JSON(http.StatusOK, pref)
}

// SetManual 记录访客手动切换的语言
func (h *LanguageHandler) SetManual(c *gin.Context) {
	visitorID := c.GetHeader("X-Visitor-ID")
	if visitorID == "" {
		visitorID = c.Query("visitor_id")
	}
	if visitorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "visitor id is required"})
		return
	}

	var req struct {
		Locale string `json:"locale" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	loc, ok := i18n.ParseLocale(req.Locale)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported locale: " + req.Locale})
		return
	}

	pref, err := h.app.SetManual(c.Request.Context(), visitorID, loc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pref)
}
