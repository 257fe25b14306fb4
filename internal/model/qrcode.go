package model

import (
	"net/http"
	"strconv"

	"github.com/deppfellow/generic-tools/internal/validation"
	"github.com/labstack/echo/v4"
)

const defaultQRCodeScale = 20

// QRCodeRequest renders Text as a QR code with Scale pixels per module.
type QRCodeRequest struct {
	Text  string `query:"text" validate:"required,notblank"`
	Scale int    `query:"scale" validate:"gte=1,lte=40"`
}

// BindContext reads the query string. An absent scale takes the default.
func (r *QRCodeRequest) BindContext(c echo.Context) error {
	r.Text = c.QueryParam("text")
	r.Scale = defaultQRCodeScale

	if raw := c.QueryParam("scale"); raw != "" {
		scale, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "scale must be an integer").SetInternal(err)
		}
		r.Scale = scale
	}
	return nil
}

func (r *QRCodeRequest) Validate() error {
	return validation.Struct(r)
}
