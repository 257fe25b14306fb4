package service

import (
	"errors"

	"github.com/deppfellow/generic-tools/internal/errs"
	"github.com/deppfellow/generic-tools/internal/lib/qrcode"
	"github.com/deppfellow/generic-tools/internal/model"
)

type QRCodeService struct{}

func NewQRCodeService() *QRCodeService {
	return &QRCodeService{}
}

// Generate renders the request text as a PNG.
func (s *QRCodeService) Generate(req *model.QRCodeRequest) ([]byte, error) {
	png, err := qrcode.RenderPNG(req.Text, req.Scale)
	switch {
	case errors.Is(err, qrcode.ErrInvalidInput):
		return nil, errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	case err != nil:
		return nil, errs.NewServerError("failed to generate QR code", err)
	}
	return png, nil
}
