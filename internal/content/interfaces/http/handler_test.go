package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vividmgmt/vividbackend/pkg/i18n"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewContentHandler(i18n.NewCatalog()).RegisterRoutes(router)
	return router
}

func TestSectionsLocalized(t *testing.T) {
	router := newRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/content?lang=es", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "es", resp["locale"])
	assert.NotEmpty(t, resp["hero"].(map[string]any)["title"])
}

func TestSectionsUnknownLangFallsBack(t *testing.T) {
	router := newRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/content?lang=fr", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "en", resp["locale"])
}

func TestOptionsListsContactMethods(t *testing.T) {
	router := newRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/content/options", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Countries        []string `json:"countries"`
		PrimaryLanguages []string `json:"primary_languages"`
		ContactMethods   []string `json:"contact_methods"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.ContactMethods, "Telegram")
	assert.Contains(t, resp.ContactMethods, "WhatsApp")
	assert.Contains(t, resp.PrimaryLanguages, "Spanish")
	assert.NotEmpty(t, resp.PrimaryLanguages)
	assert.Contains(t, resp.Countries, "Mexico")
	assert.Contains(t, resp.Countries, "United States")
	assert.Greater(t, len(resp.Countries), 150)
}
