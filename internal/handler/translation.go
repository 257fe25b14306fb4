package handler

import (
	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/deppfellow/generic-tools/internal/service"
	"github.com/deppfellow/generic-tools/internal/upstream"
	"github.com/labstack/echo/v4"
)

// TranslationHandler relays translation provider answers unmodified.
type TranslationHandler struct {
	Handler
	translation *service.TranslationService
}

func NewTranslationHandler(s *server.Server, translation *service.TranslationService) *TranslationHandler {
	return &TranslationHandler{
		Handler:     NewHandler(s),
		translation: translation,
	}
}

func (h *TranslationHandler) MyMemory(c echo.Context, req *model.MyMemoryRequest) (*upstream.Response, error) {
	return h.translation.MyMemory(c.Request().Context(), req)
}

func (h *TranslationHandler) Google(c echo.Context, req *model.GoogleTranslateRequest) (*upstream.Response, error) {
	return h.translation.Google(c.Request().Context(), req)
}
