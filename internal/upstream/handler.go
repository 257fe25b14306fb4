package upstream

import (
	"errors"

	"github.com/deppfellow/generic-tools/internal/errs"
)

// HandleError converts a service/client error into an application-level error.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - *NotConfiguredError: 503 with the integration name
//   - ErrNotFound: 404 with message
//   - anything else: 500 "<message>: <underlying error>"
//
// Handlers call it with the operation message, e.g.
//
//	return nil, upstream.HandleError("failed to geocode address", err)
func HandleError(message string, err error) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var notConfigured *NotConfiguredError
	if errors.As(err, &notConfigured) {
		return errs.NewNotConfiguredError(notConfigured.Integration)
	}

	if errors.Is(err, ErrNotFound) {
		return errs.NewNotFoundError(message, true, nil)
	}

	return errs.NewServerError(message, err)
}
