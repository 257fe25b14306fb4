// Package geo talks to OpenStreetMap Nominatim and ipify.
//
// Every method returns the downstream answer unmodified so handlers can
// relay it byte for byte.
package geo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/deppfellow/generic-tools/internal/upstream"
)

const (
	serviceNominatim = "nominatim"
	serviceIpify     = "ipify"
)

// Client queries Nominatim and ipify.
type Client struct {
	http         upstream.HTTPDoer
	nominatimURL string
	ipifyURL     string
}

// NewClient creates a Client. Base URLs must not carry a trailing path
// beyond the API root.
func NewClient(httpClient upstream.HTTPDoer, nominatimURL, ipifyURL string) *Client {
	return &Client{
		http:         httpClient,
		nominatimURL: strings.TrimRight(nominatimURL, "/"),
		ipifyURL:     strings.TrimRight(ipifyURL, "/"),
	}
}

// Search runs a free-form Nominatim search.
//
// limit <= 0 leaves the result count to Nominatim. addressDetails adds the
// address breakdown to every hit.
func (c *Client) Search(ctx context.Context, query string, addressDetails bool, limit int) (*upstream.Response, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	if addressDetails {
		params.Set("addressdetails", "1")
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	return c.get(ctx, serviceNominatim, c.nominatimURL+"/search?"+params.Encode())
}

// Reverse resolves a coordinate pair into an address.
func (c *Client) Reverse(ctx context.Context, latitude, longitude float64) (*upstream.Response, error) {
	params := url.Values{}
	params.Set("lat", FormatCoordinate(latitude))
	params.Set("lon", FormatCoordinate(longitude))
	params.Set("format", "json")

	return c.get(ctx, serviceNominatim, c.nominatimURL+"/reverse?"+params.Encode())
}

// PublicIP returns the caller-visible IP of this service as JSON.
func (c *Client) PublicIP(ctx context.Context) (*upstream.Response, error) {
	return c.get(ctx, serviceIpify, c.ipifyURL+"?format=json")
}

func (c *Client) get(ctx context.Context, service, rawURL string) (*upstream.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, upstream.Wrap(service, err)
	}
	req.Header.Set("Accept", "application/json")

	return upstream.Fetch(c.http, service, req)
}

// FormatCoordinate renders a coordinate with '.' as decimal separator and
// the shortest representation that round-trips.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// JoinQuery joins the non-blank parts with ", ".
func JoinQuery(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
