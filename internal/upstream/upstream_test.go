package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/deppfellow/generic-tools/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_RelaysBodyAndContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`[{"lat":"1.0"}]`))
	}))
	defer srv.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := Fetch(srv.Client(), "nominatim", req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.ContentType)
	assert.Equal(t, `[{"lat":"1.0"}]`, string(resp.Body))
}

func TestFetch_DefaultContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := Fetch(srv.Client(), "ipify", req)
	require.NoError(t, err)
	assert.Equal(t, "application/json", resp.ContentType)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	_, err := Fetch(srv.Client(), "mymemory", req)
	require.Error(t, err)

	var upErr *Error
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusTooManyRequests, upErr.StatusCode)
	assert.Equal(t, "slow down", upErr.Body)
	assert.Equal(t, "mymemory returned status 429: slow down", err.Error())
	assert.Equal(t, http.StatusTooManyRequests, StatusCode(err))
}

func TestFetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	req, _ := http.NewRequest(http.MethodGet, url, nil)
	_, err := Fetch(http.DefaultClient, "nominatim", req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nominatim request failed")
	assert.Zero(t, StatusCode(err))
}

func TestFetch_TransportFailureRedactsQuery(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	req, _ := http.NewRequest(http.MethodGet, base+"/search?key=SECRET-KEY-123&q=x", nil)
	_, err := Fetch(http.DefaultClient, "google", req)
	require.Error(t, err)

	assert.NotContains(t, err.Error(), "SECRET-KEY-123")
	assert.Contains(t, err.Error(), base+"/search")

	var urlErr *url.Error
	require.True(t, errors.As(err, &urlErr))
	assert.Equal(t, base+"/search", urlErr.URL)

	httpErr := HandleError("failed to translate text", err)
	assert.NotContains(t, httpErr.Error(), "SECRET-KEY-123")
}

func TestWrap_KeepsCause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "http://127.0.0.1:1/?key=k", nil)
	_, err := Fetch(http.DefaultClient, "youtube", req)
	require.Error(t, err)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.NotContains(t, err.Error(), "key=k")
}

func TestWrap_NonURLError(t *testing.T) {
	err := Wrap("email", errors.New("smtp: auth failed"))
	assert.Equal(t, "email request failed: smtp: auth failed", err.Error())
}

func TestHandleError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, HandleError("x", nil))
	})

	t.Run("http error passes through", func(t *testing.T) {
		in := errs.NewBadRequestError("bad", false, nil, nil, nil)
		assert.Same(t, in, HandleError("x", in))
	})

	t.Run("not configured", func(t *testing.T) {
		var httpErr *errs.HTTPError
		require.True(t, errors.As(HandleError("x", NotConfigured("twilio")), &httpErr))
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
		assert.Equal(t, errs.CodeNotConfigured, httpErr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		var httpErr *errs.HTTPError
		err := HandleError("no video found", fmt.Errorf("search: %w", ErrNotFound))
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, "no video found", httpErr.Message)
	})

	t.Run("downstream failure", func(t *testing.T) {
		var httpErr *errs.HTTPError
		err := HandleError("failed to translate text", &Error{Service: "google", StatusCode: 403})
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "failed to translate text: google returned status 403", httpErr.Message)
	})
}
