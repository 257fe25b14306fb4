package handler

import (
	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/deppfellow/generic-tools/internal/service"
	"github.com/deppfellow/generic-tools/internal/upstream"
	"github.com/labstack/echo/v4"
)

// LocationHandler relays Nominatim and ipify answers unmodified.
type LocationHandler struct {
	Handler
	location *service.LocationService
}

func NewLocationHandler(s *server.Server, location *service.LocationService) *LocationHandler {
	return &LocationHandler{
		Handler:  NewHandler(s),
		location: location,
	}
}

func (h *LocationHandler) Geocode(c echo.Context, req *model.GeocodeRequest) (*upstream.Response, error) {
	return h.location.Geocode(c.Request().Context(), req)
}

func (h *LocationHandler) Reverse(c echo.Context, req *model.ReverseGeocodeRequest) (*upstream.Response, error) {
	return h.location.Reverse(c.Request().Context(), req)
}

func (h *LocationHandler) CityBounds(c echo.Context, req *model.CityBoundsRequest) (*upstream.Response, error) {
	return h.location.CityBounds(c.Request().Context(), req)
}

func (h *LocationHandler) PointsOfInterest(c echo.Context, req *model.POIRequest) (*upstream.Response, error) {
	return h.location.PointsOfInterest(c.Request().Context(), req)
}

func (h *LocationHandler) PublicIP(c echo.Context, _ *model.PublicIPRequest) (*upstream.Response, error) {
	return h.location.PublicIP(c.Request().Context())
}
