package media

import (
	"context"
	"html"
	"net/http"

	"github.com/deppfellow/generic-tools/internal/upstream"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const serviceYouTube = "youtube"

// Searcher finds the first video matching a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string) (*Video, error)
}

// YouTubeSearcher uses the YouTube Data API v3.
type YouTubeSearcher struct {
	svc *youtube.Service
}

// NewYouTubeSearcher creates a YouTubeSearcher authenticated by apiKey.
//
// Calls go through httpClient's transport; a nil httpClient uses
// http.DefaultTransport. The key travels in the X-Goog-Api-Key header.
func NewYouTubeSearcher(ctx context.Context, apiKey string, httpClient *http.Client, opts ...option.ClientOption) (*YouTubeSearcher, error) {
	keyed := &http.Client{Transport: &apiKeyTransport{key: apiKey, next: http.DefaultTransport}}
	if httpClient != nil {
		if httpClient.Transport != nil {
			keyed.Transport = &apiKeyTransport{key: apiKey, next: httpClient.Transport}
		}
		keyed.Timeout = httpClient.Timeout
	}

	opts = append([]option.ClientOption{option.WithHTTPClient(keyed)}, opts...)

	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create youtube client")
	}
	return &YouTubeSearcher{svc: svc}, nil
}

// apiKeyHeader is the header Google APIs read an API key from.
const apiKeyHeader = "X-Goog-Api-Key"

type apiKeyTransport struct {
	key  string
	next http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set(apiKeyHeader, t.key)
	return t.next.RoundTrip(clone)
}

// Search returns upstream.ErrNotFound when no video matches.
func (s *YouTubeSearcher) Search(ctx context.Context, query string) (*Video, error) {
	resp, err := s.svc.Search.List([]string{"id", "snippet"}).
		Q(query).
		Type("video").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, upstream.Wrap(serviceYouTube, err)
	}

	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}

		v := &Video{ID: item.Id.VideoId, Link: WatchURL(item.Id.VideoId)}
		if item.Snippet != nil {
			v.Title = html.UnescapeString(item.Snippet.Title)
		}
		return v, nil
	}

	return nil, errors.Wrapf(upstream.ErrNotFound, "no video for %q", query)
}
