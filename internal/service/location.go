package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/generic-tools/internal/lib/geo"
	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/deppfellow/generic-tools/internal/upstream"
)

type LocationService struct {
	geo *geo.Client
}

func NewLocationService(client *geo.Client) *LocationService {
	return &LocationService{geo: client}
}

// Geocode resolves a postal address through Nominatim search.
func (s *LocationService) Geocode(ctx context.Context, req *model.GeocodeRequest) (*upstream.Response, error) {
	query := geo.JoinQuery(req.Street, req.Number, req.Neighborhood, req.City, req.Country)

	resp, err := s.geo.Search(ctx, query, true, 0)
	if err != nil {
		return nil, upstream.HandleError("failed to geocode address", err)
	}
	return resp, nil
}

// Reverse resolves coordinates into an address.
func (s *LocationService) Reverse(ctx context.Context, req *model.ReverseGeocodeRequest) (*upstream.Response, error) {
	resp, err := s.geo.Reverse(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		return nil, upstream.HandleError("failed to reverse geocode coordinates", err)
	}
	return resp, nil
}

// CityBounds returns the single best match for a city, including its
// bounding box.
func (s *LocationService) CityBounds(ctx context.Context, req *model.CityBoundsRequest) (*upstream.Response, error) {
	query := geo.JoinQuery(req.City, req.State, req.Country)

	resp, err := s.geo.Search(ctx, query, true, 1)
	if err != nil {
		return nil, upstream.HandleError("failed to fetch city bounds", err)
	}
	return resp, nil
}

// PointsOfInterest searches "<type> in <city, state, country>".
func (s *LocationService) PointsOfInterest(ctx context.Context, req *model.POIRequest) (*upstream.Response, error) {
	query := fmt.Sprintf("%s in %s", req.Type, geo.JoinQuery(req.City, req.State, req.Country))

	resp, err := s.geo.Search(ctx, query, false, 0)
	if err != nil {
		return nil, upstream.HandleError("failed to search points of interest", err)
	}
	return resp, nil
}

// PublicIP returns the public address of this service.
func (s *LocationService) PublicIP(ctx context.Context) (*upstream.Response, error) {
	resp, err := s.geo.PublicIP(ctx)
	if err != nil {
		return nil, upstream.HandleError("failed to fetch public IP", err)
	}
	return resp, nil
}
