package tmdb

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientOptionsApply(t *testing.T) {
	customHTTP := &http.Client{}

	client := NewClient(
		"key",
		WithBaseURL("https://example.test/"),
		WithImageBaseURL("https://images.test/"),
		WithHTTPClient(customHTTP),
		WithLanguage("en-US"),
	)

	require.Equal(t, "https://example.test", client.baseURL)
	require.Equal(t, "https://images.test", client.imageBaseURL)
	require.Equal(t, customHTTP, client.httpClient)
	require.Equal(t, "en-US", client.language)
}

func TestClientOptionsIgnoreEmptyValues(t *testing.T) {
	client := NewClient("key", WithBaseURL(""), WithImageBaseURL(""), WithHTTPClient(nil), WithLanguage(""))

	require.Equal(t, defaultBaseURL, client.baseURL)
	require.Equal(t, defaultImageBaseURL, client.imageBaseURL)
	require.Equal(t, defaultLanguage, client.language)
	require.NotNil(t, client.httpClient)
}

func TestPosterURL(t *testing.T) {
	client := NewClient("key")

	require.Equal(t, "https://image.tmdb.org/t/p/w500/a.jpg", client.PosterURL("/a.jpg"))
	require.Equal(t, "https://image.tmdb.org/t/p/w500/b.jpg", client.PosterURL("b.jpg"))
	require.Empty(t, client.PosterURL(""))
}
