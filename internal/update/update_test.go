package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withReleasesURL(t *testing.T, url string) {
	t.Helper()
	original := ReleasesURL
	ReleasesURL = url
	t.Cleanup(func() { ReleasesURL = original })
}

func TestCheckForUpdateSkipsDevBuilds(t *testing.T) {
	assert.Nil(t, CheckForUpdate(context.Background(), "dev"))
	assert.Nil(t, CheckForUpdate(context.Background(), ""))
}

func TestCheckForUpdateNewerAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v1.2.0","html_url":"https://example.com/release"}`))
	}))
	defer server.Close()
	withReleasesURL(t, server.URL)

	result := CheckForUpdate(context.Background(), "1.1.0")
	require.NotNil(t, result)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "1.2.0", result.LatestVersion)
	assert.Equal(t, "https://example.com/release", result.UpdateURL)
}

func TestCheckForUpdateAlreadyCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v1.1.0"}`))
	}))
	defer server.Close()
	withReleasesURL(t, server.URL)

	result := CheckForUpdate(context.Background(), "1.1.0")
	require.NotNil(t, result)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckForUpdateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	withReleasesURL(t, server.URL)

	assert.Nil(t, CheckForUpdate(context.Background(), "1.0.0"))
}
