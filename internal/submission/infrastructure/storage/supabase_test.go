package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadSendsObjectWithAuth(t *testing.T) {
	var gotPath, gotAuth, gotType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, ServiceKey: "svc-key", Timeout: 5 * time.Second})
	err := c.Upload(context.Background(), "applicant-photos", "public/jane_1700000000000_a.jpg", "image/jpeg", []byte("jpegdata"))

	require.NoError(t, err)
	assert.Equal(t, "/storage/v1/object/applicant-photos/public/jane_1700000000000_a.jpg", gotPath)
	assert.Equal(t, "Bearer svc-key", gotAuth)
	assert.Equal(t, "image/jpeg", gotType)
	assert.Equal(t, []byte("jpegdata"), gotBody)
}

func TestUploadServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"Duplicate"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{Endpoint: srv.URL, ServiceKey: "svc-key"})
	err := c.Upload(context.Background(), "applicant-photos", "public/x.jpg", "image/jpeg", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 409")
}

func TestPublicURL(t *testing.T) {
	c := NewClient(Config{Endpoint: "https://proj.supabase.co/", ServiceKey: "k"})
	url, ok := c.PublicURL("applicant-photos", "public/jane_1_a.jpg")
	require.True(t, ok)
	assert.Equal(t, "https://proj.supabase.co/storage/v1/object/public/applicant-photos/public/jane_1_a.jpg", url)

	empty := NewClient(Config{})
	_, ok = empty.PublicURL("applicant-photos", "k")
	assert.False(t, ok)
}
