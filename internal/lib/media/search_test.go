package media

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/generic-tools/internal/errs"
	"github.com/deppfellow/generic-tools/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func TestYouTubeSearcher_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/v3/search", r.URL.Path)
		assert.Equal(t, "yt-key", r.Header.Get(apiKeyHeader))
		assert.Empty(t, r.URL.Query().Get("key"))
		assert.Equal(t, "never gonna", r.URL.Query().Get("q"))
		assert.Equal(t, "video", r.URL.Query().Get("type"))
		assert.Equal(t, "1", r.URL.Query().Get("maxResults"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":{"kind":"youtube#video","videoId":"dQw4w9WgXcQ"},"snippet":{"title":"Rick &amp; Roll"}}]}`))
	}))
	defer srv.Close()

	s, err := NewYouTubeSearcher(context.Background(), "yt-key", srv.Client(), option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	got, err := s.Search(context.Background(), "never gonna")
	require.NoError(t, err)
	assert.Equal(t, &Video{
		ID:    "dQw4w9WgXcQ",
		Title: "Rick & Roll",
		Link:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}, got)
}

func TestYouTubeSearcher_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	s, err := NewYouTubeSearcher(context.Background(), "yt-key", srv.Client(), option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	_, err = s.Search(context.Background(), "nothing")
	assert.True(t, errors.Is(err, upstream.ErrNotFound))
}

type countingTransport struct {
	calls int
	next  http.RoundTripper
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	return t.next.RoundTrip(req)
}

func TestYouTubeSearcher_UsesSharedTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "yt-key", r.Header.Get(apiKeyHeader))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	transport := &countingTransport{next: http.DefaultTransport}
	s, err := NewYouTubeSearcher(context.Background(), "yt-key", &http.Client{Transport: transport}, option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	_, _ = s.Search(context.Background(), "anything")
	assert.Equal(t, 1, transport.calls)
}

func TestYouTubeSearcher_TransportFailureHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	s, err := NewYouTubeSearcher(context.Background(), "YT-SECRET-456", nil, option.WithEndpoint(base+"/"))
	require.NoError(t, err)

	_, err = s.Search(context.Background(), "lofi")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "YT-SECRET-456")

	var httpErr *errs.HTTPError
	require.True(t, errors.As(upstream.HandleError("failed to search video", err), &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.NotContains(t, httpErr.Message, "YT-SECRET-456")
}
