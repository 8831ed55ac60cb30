package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPAssetFetcher_FetchesLogo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("fake-png-bytes"))
	}))
	defer srv.Close()

	f := NewHTTPAssetFetcher(srv.URL)
	asset, err := f.FetchLogo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PNG", asset.Format)
	assert.Equal(t, []byte("fake-png-bytes"), asset.Data)
}

func TestHTTPAssetFetcher_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewHTTPAssetFetcher(srv.URL).FetchLogo(context.Background())
	assert.ErrorContains(t, err, "status 404")
}

func TestImageFormat(t *testing.T) {
	assert.Equal(t, "PNG", imageFormat("image/png", ""))
	assert.Equal(t, "JPG", imageFormat("image/jpeg", ""))
	assert.Equal(t, "GIF", imageFormat("", "https://cdn/logo.gif"))
	assert.Equal(t, "JPG", imageFormat("", "https://cdn/logo.JPG"))
	assert.Equal(t, "PNG", imageFormat("", "https://cdn/logo"))
}
