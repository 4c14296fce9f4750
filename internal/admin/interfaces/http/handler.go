// Package http 管理端 HTTP 接口
package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vividmgmt/vividbackend/internal/admin/application"
	subdomain "github.com/vividmgmt/vividbackend/internal/submission/domain"
	"github.com/vividmgmt/vividbackend/pkg/logger"
	"github.com/vividmgmt/vividbackend/pkg/middleware"
)

type AdminHandler struct {
	auth        *application.AuthService
	submissions *application.AdminSubmissionService
}

func NewAdminHandler(auth *application.AuthService, submissions *application.AdminSubmissionService) *AdminHandler {
	return &AdminHandler{auth: auth, submissions: submissions}
}

func (h *AdminHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1/admin")
	api.POST("/login", h.Login)

	authed := api.Group("")
	authed.Use(middleware.GinAuthMiddleware(h.auth))
	{
		authed.POST("/logout", h.Logout)
		authed.GET("/applications", h.List)
		authed.GET("/applications/:id", h.Get)
		authed.PATCH("/applications/:id/onboarding", h.UpdateOnboarding)
		authed.DELETE("/applications/:id", h.Delete)
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		logger.Error(c.Request.Context(), "Login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, token)
}

func (h *AdminHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.auth.SignOut(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) List(c *gin.Context) {
	subs, err := h.submissions.List(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list applications", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": subs, "total": len(subs)})
}

func (h *AdminHandler) Get(c *gin.Context) {
	sub, err := h.submissions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *AdminHandler) UpdateOnboarding(c *gin.Context) {
	var input application.OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID := c.GetUint(middleware.AdminIDKey)
	sub, err := h.submissions.UpdateOnboarding(c.Request.Context(), c.Param("id"), adminID, input)
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Delete 删除报名并把刷新后的列表一并返回，前端不用再拉一次
func (h *AdminHandler) Delete(c *gin.Context) {
	subs, err := h.submissions.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": subs, "total": len(subs)})
}

// writeStoreError 只有真正未命中才回 404，存储层故障原样透出
func (h *AdminHandler) writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, subdomain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
		return
	}
	logger.Error(c.Request.Context(), "Store operation failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
