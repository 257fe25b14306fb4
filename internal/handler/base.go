package handler

import (
	"reflect"
	"time"

	"github.com/deppfellow/generic-tools/internal/middleware"
	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/deppfellow/generic-tools/internal/upstream"
	"github.com/deppfellow/generic-tools/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is embedded by every concrete handler and carries the server
// container.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc is a typed endpoint. Req is a pointer payload such as
// *model.GeocodeRequest; it reaches the function already bound and validated.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler writes a successful result and describes it to logs
// and New Relic.
type ResponseHandler interface {
	Handle(c echo.Context, result interface{}) error
	GetOperation() string
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler encodes the result as JSON.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
}

// FileResponseHandler writes a []byte result. A filename turns the
// response into an attachment, otherwise it is served inline.
type FileResponseHandler struct {
	status      int
	filename    string
	contentType string
}

func (h FileResponseHandler) Handle(c echo.Context, result interface{}) error {
	data := result.([]byte)

	if h.filename != "" {
		c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+h.filename)
	}

	return c.Blob(h.status, h.contentType, data)
}

func (h FileResponseHandler) GetOperation() string {
	return "handler_file"
}

func (h FileResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if txn != nil {
		txn.AddAttribute("file.name", h.filename)
		txn.AddAttribute("file.content_type", h.contentType)
		if data, ok := result.([]byte); ok {
			txn.AddAttribute("file.size_bytes", len(data))
		}
	}
}

// TextResponseHandler writes a plain-text body. It expects a string result.
type TextResponseHandler struct {
	status int
}

func (h TextResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.String(h.status, result.(string))
}

func (h TextResponseHandler) GetOperation() string {
	return "handler_text"
}

func (h TextResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if text, ok := result.(string); ok && txn != nil {
		txn.AddAttribute("response.size_bytes", len(text))
	}
}

// RelayResponseHandler writes a downstream answer byte for byte with its
// original status and content type. It expects an *upstream.Response.
type RelayResponseHandler struct{}

func (h RelayResponseHandler) Handle(c echo.Context, result interface{}) error {
	resp := result.(*upstream.Response)
	return c.Blob(resp.StatusCode, resp.ContentType, resp.Body)
}

func (h RelayResponseHandler) GetOperation() string {
	return "handler_relay"
}

func (h RelayResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if resp, ok := result.(*upstream.Response); ok && txn != nil {
		txn.AddAttribute("upstream.status_code", resp.StatusCode)
		txn.AddAttribute("upstream.size_bytes", len(resp.Body))
	}
}

// newRequest allocates a zero payload of the pointer type Req so that
// concurrent requests never share one value.
func newRequest[Req validation.Validatable](prototype Req) Req {
	t := reflect.TypeOf(prototype)
	if t == nil || t.Kind() != reflect.Pointer {
		return prototype
	}
	return reflect.New(t.Elem()).Interface().(Req)
}

// handleRequest binds and validates a fresh payload, runs fn and hands the
// result to responseHandler. Every phase is timed, logged with the request
// logger and recorded on the New Relic transaction when one exists.
func handleRequest[Req validation.Validatable](
	h Handler,
	c echo.Context,
	prototype Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	loggerBuilder := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route)

	if fileHandler, ok := responseHandler.(FileResponseHandler); ok {
		loggerBuilder = loggerBuilder.
			Str("filename", fileHandler.filename).
			Str("content_type", fileHandler.contentType)
	}

	logger := loggerBuilder.Logger()

	logger.Debug().Msg("handling request")

	validationStart := time.Now()
	req := newRequest(prototype)

	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.AddAttribute("handler.status", "validation_failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}
		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)
	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
	}

	h.warnIfSlow(&logger, handlerDuration)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle registers a typed handler answering JSON with status.
// req only fixes the payload type; each request binds into a fresh value.
//
//	r.POST("/geocode", handler.Handle(h.Handler, h.Geocode, http.StatusOK, &model.GeocodeRequest{}))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(h, c, req, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleFile registers a handler producing bytes of contentType.
// An empty filename serves the content inline.
func HandleFile[Req validation.Validatable](
	h Handler,
	handler HandlerFunc[Req, []byte],
	status int,
	req Req,
	filename string,
	contentType string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(h, c, req, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, FileResponseHandler{
			status:      status,
			filename:    filename,
			contentType: contentType,
		})
	}
}

// HandleText wraps a handler that returns a plain-text body.
func HandleText[Req validation.Validatable](
	h Handler,
	handler HandlerFunc[Req, string],
	status int,
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(h, c, req, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, TextResponseHandler{status: status})
	}
}

// HandleRelay wraps a handler whose result is a downstream response that
// is passed through unmodified.
func HandleRelay[Req validation.Validatable](
	h Handler,
	handler HandlerFunc[Req, *upstream.Response],
	req Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(h, c, req, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, RelayResponseHandler{})
	}
}
