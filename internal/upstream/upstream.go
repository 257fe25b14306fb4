// Package upstream handles errors and responses of external services.
//
// It turns cryptic transport failures and non-2xx answers from the
// collaborators (Nominatim, MyMemory, Twilio, ...) into structured errors,
// and converts those into application HTTP errors in one place.
package upstream

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// maxErrorBody bounds how much of a failed response body is kept.
const maxErrorBody = 4 << 10

// ErrNotFound is returned by clients when the collaborator answered
// successfully but had nothing matching the request.
var ErrNotFound = errors.New("not found")

// HTTPDoer is the subset of *http.Client used by the service clients.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Error describes a failed call to an external service.
//
// StatusCode is zero when the request never produced a response
// (DNS, TLS, connection reset, cancelled context).
type Error struct {
	Service    string
	StatusCode int
	Body       string
	err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s request failed: %v", e.Service, e.err)
	}
	if e.Body == "" {
		return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Service, e.StatusCode, e.Body)
}

func (e *Error) Unwrap() error {
	return e.err
}

// NotConfiguredError is returned when an integration lacks credentials.
type NotConfiguredError struct {
	Integration string
}

func (e *NotConfiguredError) Error() string {
	return e.Integration + " integration is not configured"
}

// NotConfigured builds a *NotConfiguredError.
func NotConfigured(integration string) error {
	return &NotConfiguredError{Integration: integration}
}

// Wrap marks err as a transport failure talking to service.
//
// The request URL of a *url.Error is reduced to scheme, host and path:
// query strings may hold API keys and the message reaches callers.
func Wrap(service string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Service: service, err: redactURL(err)}
}

func redactURL(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	redacted := "[redacted]"
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		redacted = (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: u.Path}).String()
	}

	return &url.Error{Op: urlErr.Op, URL: redacted, Err: urlErr.Err}
}

// Response is a downstream answer relayed to the caller unmodified.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Fetch executes req and returns the whole body of a 2xx response.
//
// Any other status is converted into an *Error holding the first bytes of
// the body.
func Fetch(client HTTPDoer, service string, req *http.Request) (*Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, Wrap(service, err)
	}
	defer resp.Body.Close()

	if err := CheckResponse(service, resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Wrap(service, fmt.Errorf("reading response body: %w", err))
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}

// CheckResponse returns an *Error when resp is not 2xx. It consumes up to
// maxErrorBody bytes of the body in that case.
func CheckResponse(service string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &Error{
		Service:    service,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

// StatusCode reports the downstream status carried by err, or 0.
func StatusCode(err error) int {
	var upErr *Error
	if errors.As(err, &upErr) {
		return upErr.StatusCode
	}
	return 0
}
