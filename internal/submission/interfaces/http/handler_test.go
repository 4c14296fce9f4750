package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vividmgmt/vividbackend/internal/submission/application"
	"github.com/vividmgmt/vividbackend/internal/submission/domain"
	"github.com/vividmgmt/vividbackend/pkg/i18n"
	"github.com/vividmgmt/vividbackend/pkg/metrics"
)

type memRepo struct {
	rows      []domain.Submission
	insertErr error
}

func (r *memRepo) Insert(ctx context.Context, sub *domain.Submission) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.rows = append(r.rows, *sub)
	return nil
}

func (r *memRepo) List(ctx context.Context) ([]domain.Submission, error) { return r.rows, nil }

func (r *memRepo) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	return nil, errors.New("not found")
}

func (r *memRepo) UpdateOnboarding(ctx context.Context, id string, patch domain.OnboardingPatch) error {
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error { return nil }

type memStore struct{ fail bool }

func (s *memStore) Upload(ctx context.Context, bucket, key, contentType string, data []byte) error {
	if s.fail {
		return errors.New("storage unavailable")
	}
	return nil
}

func (s *memStore) PublicURL(bucket, key string) (string, bool) {
	return "https://cdn.example.com/" + bucket + "/" + key, true
}

func newRouter(repo *memRepo, store *memStore) *gin.Engine {
	return newRouterWithLimit(repo, store, 64)
}

func newRouterWithLimit(repo *memRepo, store *memStore, maxUploadMB int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog := i18n.NewCatalog()
	svc := application.NewSubmissionService(
		repo,
		application.NewUploader(store, "applicant-photos"),
		application.NewValidator(catalog),
		nil,
		catalog,
		metrics.New("test"),
		"vivid.submissions",
		5,
	)
	router := gin.New()
	NewSubmissionHandler(svc, catalog, maxUploadMB).RegisterRoutes(router)
	return router
}

func multipartBody(t *testing.T, fields map[string]string, photos int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for i := 0; i < photos; i++ {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="photos"; filename="photo%d.jpg"`, i+1)}
		h["Content-Type"] = []string{"image/jpeg"}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		part.Write([]byte("jpegdata"))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func validFields() map[string]string {
	return map[string]string{
		"full_name":                "Jane Doe",
		"email":                    "jane@example.com",
		"phone_number":             "+12025550123",
		"preferred_contact_method": "Telegram",
		"telegram_username":        "janedoe",
		"age":                      "22",
		"country_origin":           "Mexico",
		"primary_language":         "Spanish",
		"has_account":              "no",
		"why_join":                 "I want to grow my audience.",
		"age_confirmed":            "true",
	}
}

func TestSubmitEndpointSuccess(t *testing.T) {
	repo := &memRepo{}
	router := newRouter(repo, &memStore{})

	body, contentType := multipartBody(t, validFields(), 5)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Len(t, repo.rows, 1)

	var resp struct {
		Message    string                    `json:"message"`
		Submission application.SubmissionDTO `json:"submission"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Application submitted successfully! We will contact you soon.", resp.Message)
	assert.Equal(t, "Jane Doe", resp.Submission.FullName)
	assert.Len(t, resp.Submission.ImageURLs, 5)
}

func TestSubmitEndpointBodyOverLimitRejected(t *testing.T) {
	repo := &memRepo{}
	router := newRouterWithLimit(repo, &memStore{}, 1)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range validFields() {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("photos", "huge.jpg")
	require.NoError(t, err)
	_, err = part.Write(make([]byte, 2<<20))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, repo.rows)
}

func TestSubmitEndpointValidationFailure(t *testing.T) {
	repo := &memRepo{}
	router := newRouter(repo, &memStore{})

	body, contentType := multipartBody(t, validFields(), 2)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Empty(t, repo.rows)

	var resp struct {
		Violations []string `json:"violations"`
		Hint       string   `json:"hint"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Violations, "Please select at least 5 images (2 selected).")
	assert.Equal(t, "(Need 3 more)", resp.Hint)
}

func TestSubmitEndpointLocalizedViolations(t *testing.T) {
	router := newRouter(&memRepo{}, &memStore{})

	body, contentType := multipartBody(t, validFields(), 0)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications?lang=es", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Selecciona al menos 5")
}

func TestSubmitEndpointUploadFailure(t *testing.T) {
	repo := &memRepo{}
	router := newRouter(repo, &memStore{fail: true})

	body, contentType := multipartBody(t, validFields(), 5)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Empty(t, repo.rows)
	assert.Contains(t, rec.Body.String(), "photo1.jpg")
}

func TestSubmitEndpointWriteFailureVerbatim(t *testing.T) {
	repo := &memRepo{insertErr: errors.New("Error 1062: Duplicate entry")}
	router := newRouter(repo, &memStore{})

	body, contentType := multipartBody(t, validFields(), 5)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error 1062: Duplicate entry")
}
