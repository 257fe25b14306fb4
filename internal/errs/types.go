package errs

import (
	"fmt"
	"net/http"
)

// CodeNotConfigured marks endpoints whose external collaborator has no
// credentials configured.
const CodeNotConfigured = "INTEGRATION_NOT_CONFIGURED"

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
//   - action: optional client instruction
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 HTTPError used by the rate limiter.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message:  message,
		Status:   http.StatusTooManyRequests,
		Override: true,
	}
}

// NewServerError creates a 500 HTTPError carrying the underlying message,
// formatted as "<message>: <err>".
func NewServerError(message string, err error) *HTTPError {
	if err != nil {
		message = fmt.Sprintf("%s: %s", message, err.Error())
	}

	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  message,
		Status:   http.StatusInternalServerError,
		Override: true,
		cause:    err,
	}
}

// NewNotConfiguredError creates a 503 HTTPError for an integration that
// is missing credentials.
func NewNotConfiguredError(integration string) *HTTPError {
	return &HTTPError{
		Code:     CodeNotConfigured,
		Message:  fmt.Sprintf("%s integration is not configured", integration),
		Status:   http.StatusServiceUnavailable,
		Override: true,
		Action: &Action{
			Type:    ActionTypeRetryLater,
			Message: "the operator must provide credentials for this integration",
			Value:   integration,
		},
	}
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil, nil)
}
