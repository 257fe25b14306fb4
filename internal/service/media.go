package service

import (
	"context"
	"errors"

	"github.com/deppfellow/generic-tools/internal/errs"
	"github.com/deppfellow/generic-tools/internal/lib/media"
	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/deppfellow/generic-tools/internal/upstream"
	"github.com/rs/zerolog"
)

const integrationYouTube = "youtube"

// Downloader stores the stream of one video.
type Downloader interface {
	Download(ctx context.Context, videoID string, kind media.Kind) (*media.Download, error)
}

type MediaService struct {
	searcher   media.Searcher
	downloader Downloader
	logger     *zerolog.Logger
}

// NewMediaService creates the service. A nil searcher marks YouTube
// search as not configured; downloads by URL keep working.
func NewMediaService(searcher media.Searcher, downloader Downloader, logger *zerolog.Logger) *MediaService {
	return &MediaService{searcher: searcher, downloader: downloader, logger: logger}
}

// SearchVideo returns the first video matching the title.
func (s *MediaService) SearchVideo(ctx context.Context, req *model.VideoSearchRequest) (*media.Video, error) {
	video, err := s.search(ctx, req.Title)
	if err != nil {
		return nil, searchError("no video found", err)
	}
	return video, nil
}

func (s *MediaService) DownloadVideoByTitle(ctx context.Context, req *model.TitleRequest) (*model.DownloadResponse, error) {
	video, err := s.search(ctx, req.Title)
	if err != nil {
		return nil, searchError("video not found", err)
	}
	return s.download(ctx, video.ID, media.KindVideo)
}

func (s *MediaService) DownloadVideoByURL(ctx context.Context, req *model.URLRequest) (*model.DownloadResponse, error) {
	id, err := videoID(req.URL)
	if err != nil {
		return nil, err
	}
	return s.download(ctx, id, media.KindVideo)
}

func (s *MediaService) DownloadMusicByURL(ctx context.Context, req *model.URLRequest) (*model.DownloadResponse, error) {
	id, err := videoID(req.URL)
	if err != nil {
		return nil, err
	}
	return s.download(ctx, id, media.KindAudio)
}

// DownloadMusicBatch downloads the audio of the first match of every
// title. Titles without a match are skipped; any other failure aborts.
func (s *MediaService) DownloadMusicBatch(ctx context.Context, req *model.BatchMusicRequest) (*model.BatchDownloadResponse, error) {
	files := []string{}

	for _, title := range req.Titles {
		video, err := s.search(ctx, title)
		if errors.Is(err, upstream.ErrNotFound) {
			s.logger.Warn().Str("title", title).Msg("no video found, skipping")
			continue
		}
		if err != nil {
			return nil, upstream.HandleError("failed to download songs", err)
		}

		d, err := s.downloader.Download(ctx, video.ID, media.KindAudio)
		if err != nil {
			return nil, upstream.HandleError("failed to download songs", err)
		}
		files = append(files, d.Path)
	}

	return &model.BatchDownloadResponse{
		Message: "songs downloaded successfully",
		Files:   files,
	}, nil
}

func (s *MediaService) search(ctx context.Context, title string) (*media.Video, error) {
	if s.searcher == nil {
		return nil, upstream.NotConfigured(integrationYouTube)
	}
	return s.searcher.Search(ctx, title)
}

func (s *MediaService) download(ctx context.Context, id string, kind media.Kind) (*model.DownloadResponse, error) {
	d, err := s.downloader.Download(ctx, id, kind)
	if err != nil {
		if kind == media.KindAudio {
			return nil, upstream.HandleError("failed to download music", err)
		}
		return nil, upstream.HandleError("failed to download video", err)
	}

	message := "video downloaded successfully"
	if kind == media.KindAudio {
		message = "music downloaded successfully"
	}

	return &model.DownloadResponse{
		Message: message,
		File:    d.Path,
		Title:   d.Title,
		Link:    d.Link,
	}, nil
}

// searchError answers 404 with notFound when nothing matched and maps
// every other failure as a failed search.
func searchError(notFound string, err error) error {
	if errors.Is(err, upstream.ErrNotFound) {
		return upstream.HandleError(notFound, err)
	}
	return upstream.HandleError("failed to search video", err)
}

func videoID(rawURL string) (string, error) {
	id := media.ExtractVideoID(rawURL)
	if id == "" {
		return "", errs.NewBadRequestError("invalid YouTube URL", true, nil, nil, nil)
	}
	return id, nil
}
