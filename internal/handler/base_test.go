package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/generic-tools/internal/config"
	"github.com/deppfellow/generic-tools/internal/errs"
	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/deppfellow/generic-tools/internal/upstream"
	"github.com/deppfellow/generic-tools/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetRequest struct {
	Name string `json:"name" validate:"required"`
}

func (r *greetRequest) Validate() error {
	return validation.Struct(r)
}

type greetResponse struct {
	Greeting string `json:"greeting"`
}

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	l := zerolog.Nop()
	return &server.Server{Config: cfg, Logger: &l}
}

func jsonContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func greet(_ echo.Context, req *greetRequest) (*greetResponse, error) {
	return &greetResponse{Greeting: "hello " + req.Name}, nil
}

func TestHandle_JSON(t *testing.T) {
	h := NewHandler(newTestServer(t))
	fn := Handle(h, greet, http.StatusCreated, &greetRequest{})

	c, rec := jsonContext(http.MethodPost, `{"name":"ana"}`)
	require.NoError(t, fn(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"greeting":"hello ana"}`, rec.Body.String())
}

func TestHandle_FreshRequestPerCall(t *testing.T) {
	prototype := &greetRequest{}
	fn := Handle(NewHandler(newTestServer(t)), greet, http.StatusOK, prototype)

	c, rec := jsonContext(http.MethodPost, `{"name":"ana"}`)
	require.NoError(t, fn(c))
	assert.Contains(t, rec.Body.String(), "hello ana")

	c, rec = jsonContext(http.MethodPost, `{"name":"bia"}`)
	require.NoError(t, fn(c))
	assert.Contains(t, rec.Body.String(), "hello bia")

	assert.Empty(t, prototype.Name)
}

func TestHandle_ValidationFailure(t *testing.T) {
	called := false
	fn := Handle(NewHandler(newTestServer(t)), func(c echo.Context, req *greetRequest) (*greetResponse, error) {
		called = true
		return nil, nil
	}, http.StatusOK, &greetRequest{})

	c, _ := jsonContext(http.MethodPost, `{}`)
	err := fn(c)
	require.Error(t, err)
	assert.False(t, called)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "name", httpErr.Errors[0].Field)
}

func TestHandle_HandlerError(t *testing.T) {
	boom := errs.NewServerError("failed to do thing", errors.New("boom"))
	fn := Handle(NewHandler(newTestServer(t)), func(c echo.Context, req *greetRequest) (*greetResponse, error) {
		return nil, boom
	}, http.StatusOK, &greetRequest{})

	c, rec := jsonContext(http.MethodPost, `{"name":"ana"}`)
	assert.Same(t, boom, fn(c))
	assert.Empty(t, rec.Body.String())
}

func TestHandleFile(t *testing.T) {
	h := NewHandler(newTestServer(t))
	produce := func(c echo.Context, req *greetRequest) ([]byte, error) {
		return []byte("data:" + req.Name), nil
	}

	t.Run("attachment", func(t *testing.T) {
		c, rec := jsonContext(http.MethodPost, `{"name":"x"}`)
		require.NoError(t, HandleFile(h, produce, http.StatusOK, &greetRequest{}, "export.xlsx", "application/octet-stream")(c))

		assert.Equal(t, "attachment; filename=export.xlsx", rec.Header().Get(echo.HeaderContentDisposition))
		assert.Equal(t, "application/octet-stream", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "data:x", rec.Body.String())
	})

	t.Run("inline", func(t *testing.T) {
		c, rec := jsonContext(http.MethodPost, `{"name":"x"}`)
		require.NoError(t, HandleFile(h, produce, http.StatusOK, &greetRequest{}, "", ContentTypePNG)(c))

		assert.Empty(t, rec.Header().Get(echo.HeaderContentDisposition))
		assert.Equal(t, ContentTypePNG, rec.Header().Get(echo.HeaderContentType))
	})
}

func TestHandleText(t *testing.T) {
	fn := HandleText(NewHandler(newTestServer(t)), func(c echo.Context, req *greetRequest) (string, error) {
		return "SELECT 1;\n", nil
	}, http.StatusOK, &greetRequest{})

	c, rec := jsonContext(http.MethodPost, `{"name":"x"}`)
	require.NoError(t, fn(c))

	assert.Equal(t, echo.MIMETextPlainCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "SELECT 1;\n", rec.Body.String())
}

func TestHandleRelay(t *testing.T) {
	fn := HandleRelay(NewHandler(newTestServer(t)), func(c echo.Context, req *greetRequest) (*upstream.Response, error) {
		return &upstream.Response{
			StatusCode:  http.StatusOK,
			ContentType: "application/json; charset=utf-8",
			Body:        []byte(`[{"lat":"-8.05"}]`),
		}, nil
	}, &greetRequest{})

	c, rec := jsonContext(http.MethodPost, `{"name":"x"}`)
	require.NoError(t, fn(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `[{"lat":"-8.05"}]`, rec.Body.String())
}

func TestSlowRequestThreshold(t *testing.T) {
	assert.Zero(t, Handler{}.slowRequestThreshold())

	s := newTestServer(t)
	s.Config.Observability.Logging.SlowRequestThreshold = 0
	assert.Zero(t, NewHandler(s).slowRequestThreshold())
}
