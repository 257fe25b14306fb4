package handler

import (
	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/deppfellow/generic-tools/internal/service"
	"github.com/labstack/echo/v4"
)

// ContentTypePNG is the media type of rendered QR codes.
const ContentTypePNG = "image/png"

type QRCodeHandler struct {
	Handler
	qrcode *service.QRCodeService
}

func NewQRCodeHandler(s *server.Server, qrcode *service.QRCodeService) *QRCodeHandler {
	return &QRCodeHandler{
		Handler: NewHandler(s),
		qrcode:  qrcode,
	}
}

func (h *QRCodeHandler) Generate(_ echo.Context, req *model.QRCodeRequest) ([]byte, error) {
	return h.qrcode.Generate(req)
}
