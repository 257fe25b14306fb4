package handler

import (
	"github.com/deppfellow/generic-tools/internal/lib/media"
	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/deppfellow/generic-tools/internal/service"
	"github.com/labstack/echo/v4"
)

// MediaHandler searches YouTube and stores downloads in the output directory.
type MediaHandler struct {
	Handler
	media *service.MediaService
}

func NewMediaHandler(s *server.Server, mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{
		Handler: NewHandler(s),
		media:   mediaService,
	}
}

func (h *MediaHandler) SearchVideo(c echo.Context, req *model.VideoSearchRequest) (*media.Video, error) {
	return h.media.SearchVideo(c.Request().Context(), req)
}

func (h *MediaHandler) DownloadVideoByTitle(c echo.Context, req *model.TitleRequest) (*model.DownloadResponse, error) {
	return h.media.DownloadVideoByTitle(c.Request().Context(), req)
}

func (h *MediaHandler) DownloadVideoByURL(c echo.Context, req *model.URLRequest) (*model.DownloadResponse, error) {
	return h.media.DownloadVideoByURL(c.Request().Context(), req)
}

func (h *MediaHandler) DownloadMusicByURL(c echo.Context, req *model.URLRequest) (*model.DownloadResponse, error) {
	return h.media.DownloadMusicByURL(c.Request().Context(), req)
}

func (h *MediaHandler) DownloadMusicBatch(c echo.Context, req *model.BatchMusicRequest) (*model.BatchDownloadResponse, error) {
	return h.media.DownloadMusicBatch(c.Request().Context(), req)
}
