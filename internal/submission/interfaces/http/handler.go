// Package http 报名提交的 HTTP 接口
package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vividmgmt/vividbackend/internal/submission/application"
	"github.com/vividmgmt/vividbackend/internal/submission/domain"
	"github.com/vividmgmt/vividbackend/pkg/i18n"
	"github.com/vividmgmt/vividbackend/pkg/logger"
)

type SubmissionHandler struct {
	app            *application.SubmissionService
	catalog        *i18n.Catalog
	maxUploadBytes int64
}

func NewSubmissionHandler(app *application.SubmissionService, catalog *i18n.Catalog, maxUploadSizeMB int) *SubmissionHandler {
	if maxUploadSizeMB <= 0 {
		maxUploadSizeMB = 64
	}
	return &SubmissionHandler{
		app:            app,
		catalog:        catalog,
		maxUploadBytes: int64(maxUploadSizeMB) << 20,
	}
}

func (h *SubmissionHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/applications", h.Submit)
	}
}

// Submit 接收 multipart 表单提交。
// 字段三态："yes"/"no"/空串，空串表示未回答，不能当成 no。
func (h *SubmissionHandler) Submit(c *gin.Context) {
	loc := i18n.LocaleOrDefault(c.DefaultQuery("lang", c.GetHeader("Accept-Language")))

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	form := domain.FormState{
		FullName:            c.PostForm("full_name"),
		Email:               c.PostForm("email"),
		PhoneNumber:         c.PostForm("phone_number"),
		PreferredContact:    domain.ContactMethod(c.PostForm("preferred_contact_method")),
		WhatsappNumber:      c.PostForm("whatsapp_number"),
		UsePhoneForWhatsapp: c.PostForm("use_phone_for_whatsapp") == "true",
		TelegramUsername:    c.PostForm("telegram_username"),
		CountryOrigin:       c.PostForm("country_origin"),
		PrimaryLanguage:     c.PostForm("primary_language"),
		HasAccount:          triState(c.PostForm("has_account")),
		IsVerified:          triState(c.PostForm("is_verified")),
		HasVerifiedPayment:  triState(c.PostForm("has_verified_payment")),
		EarningsLast30Days:  c.PostForm("earnings_last_30_days"),
		WhyJoin:             c.PostForm("why_join"),
		AgeConfirmed:        c.PostForm("age_confirmed") == "true",
	}
	if raw := c.PostForm("age"); raw != "" {
		if age, err := strconv.Atoi(raw); err == nil {
			form.Age = &age
		}
	}

	files := domain.NewFileSet(h.app.MinPhotos())
	if mf := c.Request.MultipartForm; mf != nil {
		for _, fh := range mf.File["photos"] {
			f, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file: " + fh.Filename})
				return
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file: " + fh.Filename})
				return
			}
			files.Add(domain.File{
				Name:        fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	sub, err := h.app.Submit(c.Request.Context(), loc, form, files)
	if err != nil {
		h.writeSubmitError(c, loc, files, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    h.catalog.T(loc, i18n.KeySubmissionSuccess),
		"submission": application.ToDTO(sub),
	})
}

func (h *SubmissionHandler) writeSubmitError(c *gin.Context, loc i18n.Locale, files *domain.FileSet, err error) {
	var ve *application.ValidationError
	if errors.As(err, &ve) {
		body := gin.H{
			"error":      ve.Error(),
			"violations": ve.Violations,
		}
		// 图片不够时附带差额提示，前端直接展示
		if !files.Valid() {
			body["hint"] = h.catalog.Tf(loc, i18n.KeyNeedMoreImages, files.Deficit())
		}
		c.JSON(http.StatusUnprocessableEntity, body)
		return
	}

	var ue *application.UploadError
	if errors.As(err, &ue) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": h.catalog.Tf(loc, i18n.KeyUploadFileErr, ue.FileName) + " " + ue.Err.Error(),
		})
		return
	}

	var we *application.WriteError
	if errors.As(err, &we) {
		// 存储层错误原样透出，便于排查
		c.JSON(http.StatusBadGateway, gin.H{"error": we.Error()})
		return
	}

	logger.Error(c.Request.Context(), "Unexpected submit failure", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": h.catalog.T(loc, i18n.KeyUnknownSubmitErr)})
}

func triState(v string) *bool {
	switch v {
	case "yes":
		b := true
		return &b
	case "no":
		b := false
		return &b
	}
	return nil
}
