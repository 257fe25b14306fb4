package model

import "github.com/deppfellow/generic-tools/internal/validation"

// GeocodeRequest is a postal address to resolve into coordinates.
type GeocodeRequest struct {
	Street       string `json:"street" validate:"required"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city" validate:"required"`
	Country      string `json:"country"`
}

func (r *GeocodeRequest) Validate() error {
	trim(&r.Street, &r.Number, &r.Neighborhood, &r.City, &r.Country)
	return validation.Struct(r)
}

// ReverseGeocodeRequest is a coordinate pair to resolve into an address.
// Pointers distinguish an absent value from 0.
type ReverseGeocodeRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

func (r *ReverseGeocodeRequest) Validate() error {
	return validation.Struct(r)
}

// CityBoundsRequest names a city whose bounding box is wanted.
type CityBoundsRequest struct {
	City    string `json:"city" validate:"required"`
	State   string `json:"state"`
	Country string `json:"country" validate:"required"`
}

func (r *CityBoundsRequest) Validate() error {
	trim(&r.City, &r.State, &r.Country)
	return validation.Struct(r)
}

// POIRequest searches points of interest of one type inside a city.
type POIRequest struct {
	Type    string `json:"type" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state"`
	Country string `json:"country"`
}

func (r *POIRequest) Validate() error {
	trim(&r.Type, &r.City, &r.State, &r.Country)
	return validation.Struct(r)
}

// PublicIPRequest has no parameters.
type PublicIPRequest struct{}

func (r *PublicIPRequest) Validate() error { return nil }
