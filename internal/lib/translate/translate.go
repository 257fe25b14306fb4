// Package translate wraps the MyMemory and Google Translate v2 REST APIs.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/deppfellow/generic-tools/internal/upstream"
)

const (
	serviceMyMemory = "mymemory"
	serviceGoogle   = "google"
)

// HeaderAPIKey carries the Google API key, keeping it out of request URLs.
const HeaderAPIKey = "X-Goog-Api-Key"

// Client calls both translation providers.
type Client struct {
	http         upstream.HTTPDoer
	myMemoryURL  string
	googleURL    string
	googleAPIKey string
}

// NewClient creates a Client. An empty googleAPIKey disables Google calls.
func NewClient(httpClient upstream.HTTPDoer, myMemoryURL, googleURL, googleAPIKey string) *Client {
	return &Client{
		http:         httpClient,
		myMemoryURL:  strings.TrimRight(myMemoryURL, "/"),
		googleURL:    strings.TrimRight(googleURL, "/"),
		googleAPIKey: googleAPIKey,
	}
}

// MyMemory translates text from source to target.
//
// The langpair separator is sent literally; MyMemory does not accept an
// escaped pipe.
func (c *Client) MyMemory(ctx context.Context, text, source, target string) (*upstream.Response, error) {
	rawURL := c.myMemoryURL + "/get?q=" + url.QueryEscape(text) +
		"&langpair=" + url.QueryEscape(source) + "|" + url.QueryEscape(target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, upstream.Wrap(serviceMyMemory, err)
	}

	return upstream.Fetch(c.http, serviceMyMemory, req)
}

type googleRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
}

// Google translates text into target, letting Google detect the source.
func (c *Client) Google(ctx context.Context, text, target string) (*upstream.Response, error) {
	if c.googleAPIKey == "" {
		return nil, upstream.NotConfigured(serviceGoogle)
	}

	payload, err := json.Marshal(googleRequest{Q: text, Target: target})
	if err != nil {
		return nil, upstream.Wrap(serviceGoogle, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.googleURL+"/language/translate/v2", bytes.NewReader(payload))
	if err != nil {
		return nil, upstream.Wrap(serviceGoogle, err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set(HeaderAPIKey, c.googleAPIKey)

	return upstream.Fetch(c.http, serviceGoogle, req)
}
