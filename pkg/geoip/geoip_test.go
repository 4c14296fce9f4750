package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vividmgmt/vividbackend/pkg/i18n"
)

func TestCountryCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/203.0.113.7/json/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"country_code":"MX","country_name":"Mexico"}`))
	}))
	defer srv.Close()

	c := New(Config{Endpoint: srv.URL, Timeout: 2 * time.Second})
	code, err := c.CountryCode(context.Background(), "203.0.113.7")
	require.NoError(t, err)
	assert.Equal(t, "MX", code)
}

func TestCountryCodeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(Config{Endpoint: srv.URL, Timeout: 2 * time.Second})
	_, err := c.CountryCode(context.Background(), "203.0.113.7")
	assert.Error(t, err)
}

func TestLocaleFor(t *testing.T) {
	assert.Equal(t, i18n.LocaleES, LocaleFor("MX"))
	assert.Equal(t, i18n.LocaleES, LocaleFor("ES"))
	assert.Equal(t, i18n.LocaleEN, LocaleFor("US"))
	assert.Equal(t, i18n.LocaleEN, LocaleFor(""))
}
