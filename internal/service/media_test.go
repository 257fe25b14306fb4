package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/generic-tools/internal/errs"
	"github.com/deppfellow/generic-tools/internal/lib/media"
	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/deppfellow/generic-tools/internal/upstream"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSearcher struct {
	videos map[string]*media.Video
	err    error
}

func (f *fakeSearcher) Search(_ context.Context, query string) (*media.Video, error) {
	if f.err != nil {
		return nil, f.err
	}
	if v, ok := f.videos[query]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("search %q: %w", query, upstream.ErrNotFound)
}

type fakeDownloader struct {
	calls []string
	err   error
}

func (f *fakeDownloader) Download(_ context.Context, id string, kind media.Kind) (*media.Download, error) {
	f.calls = append(f.calls, id)
	if f.err != nil {
		return nil, f.err
	}
	ext := ".mp4"
	if kind == media.KindAudio {
		ext = ".m4a"
	}
	return &media.Download{Path: "media/" + id + ext, Title: "Title " + id, Link: media.WatchURL(id)}, nil
}

func newMediaService(searcher media.Searcher, d Downloader) *MediaService {
	l := zerolog.Nop()
	return NewMediaService(searcher, d, &l)
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr.Status
}

var song = &media.Video{ID: "dQw4w9WgXcQ", Title: "Song", Link: media.WatchURL("dQw4w9WgXcQ")}

func TestSearchVideo(t *testing.T) {
	svc := newMediaService(&fakeSearcher{videos: map[string]*media.Video{"song": song}}, &fakeDownloader{})

	got, err := svc.SearchVideo(context.Background(), &model.VideoSearchRequest{Title: "song"})
	require.NoError(t, err)
	assert.Equal(t, song, got)

	_, err = svc.SearchVideo(context.Background(), &model.VideoSearchRequest{Title: "missing"})
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}

func TestSearchVideo_Messages(t *testing.T) {
	svc := newMediaService(&fakeSearcher{}, &fakeDownloader{})

	_, err := svc.SearchVideo(context.Background(), &model.VideoSearchRequest{Title: "missing"})
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "no video found", httpErr.Message)

	failing := newMediaService(&fakeSearcher{err: upstream.Wrap("youtube", errors.New("connection reset"))}, &fakeDownloader{})

	_, err = failing.SearchVideo(context.Background(), &model.VideoSearchRequest{Title: "song"})
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "failed to search video: youtube request failed: connection reset", httpErr.Message)

	_, err = failing.DownloadVideoByTitle(context.Background(), &model.TitleRequest{Title: "song"})
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Contains(t, httpErr.Message, "failed to search video")
}

func TestSearchVideo_NotConfigured(t *testing.T) {
	svc := newMediaService(nil, &fakeDownloader{})

	_, err := svc.SearchVideo(context.Background(), &model.VideoSearchRequest{Title: "song"})
	assert.Equal(t, http.StatusServiceUnavailable, httpStatus(t, err))
}

func TestDownloadVideoByTitle(t *testing.T) {
	d := &fakeDownloader{}
	svc := newMediaService(&fakeSearcher{videos: map[string]*media.Video{"song": song}}, d)

	got, err := svc.DownloadVideoByTitle(context.Background(), &model.TitleRequest{Title: "song"})
	require.NoError(t, err)
	assert.Equal(t, &model.DownloadResponse{
		Message: "video downloaded successfully",
		File:    "media/dQw4w9WgXcQ.mp4",
		Title:   "Title dQw4w9WgXcQ",
		Link:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}, got)

	_, err = svc.DownloadVideoByTitle(context.Background(), &model.TitleRequest{Title: "missing"})
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}

func TestDownloadByURL(t *testing.T) {
	d := &fakeDownloader{}
	svc := newMediaService(nil, d)

	got, err := svc.DownloadMusicByURL(context.Background(), &model.URLRequest{URL: "https://youtu.be/dQw4w9WgXcQ"})
	require.NoError(t, err)
	assert.Equal(t, "music downloaded successfully", got.Message)
	assert.Equal(t, "media/dQw4w9WgXcQ.m4a", got.File)

	_, err = svc.DownloadVideoByURL(context.Background(), &model.URLRequest{URL: "https://example.com/video"})
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	assert.Equal(t, []string{"dQw4w9WgXcQ"}, d.calls)
}

func TestDownloadByURL_Failure(t *testing.T) {
	svc := newMediaService(nil, &fakeDownloader{err: errors.New("no muxed stream found")})

	_, err := svc.DownloadVideoByURL(context.Background(), &model.URLRequest{URL: "https://youtu.be/dQw4w9WgXcQ"})
	require.Equal(t, http.StatusInternalServerError, httpStatus(t, err))
	assert.Equal(t, "failed to download video: no muxed stream found", err.Error())
}

func TestDownloadMusicBatch_SkipsMissingTitles(t *testing.T) {
	other := &media.Video{ID: "aaaaaaaaaaa", Title: "Other"}
	d := &fakeDownloader{}
	svc := newMediaService(&fakeSearcher{videos: map[string]*media.Video{"song": song, "other": other}}, d)

	got, err := svc.DownloadMusicBatch(context.Background(), &model.BatchMusicRequest{
		Titles: []string{"song", "missing", "other"},
	})
	require.NoError(t, err)
	assert.Equal(t, "songs downloaded successfully", got.Message)
	assert.Equal(t, []string{"media/dQw4w9WgXcQ.m4a", "media/aaaaaaaaaaa.m4a"}, got.Files)
}

func TestDownloadMusicBatch_AbortsOnSearchFailure(t *testing.T) {
	svc := newMediaService(&fakeSearcher{err: &upstream.Error{Service: "youtube", StatusCode: 403}}, &fakeDownloader{})

	_, err := svc.DownloadMusicBatch(context.Background(), &model.BatchMusicRequest{Titles: []string{"song"}})
	assert.Equal(t, http.StatusInternalServerError, httpStatus(t, err))
}
