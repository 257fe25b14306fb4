package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/deppfellow/generic-tools/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,email"`)
// - Implement Validate() error that runs validation.Struct(req)
// - Return validator.ValidationErrors (or CustomValidationErrors for custom cases)
type Validatable interface {
	Validate() error
}

// ContextBinder is implemented by payloads that cannot be populated by
// echo's default binder, such as multipart uploads.
type ContextBinder interface {
	BindContext(c echo.Context) error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var (
	// sqlIdentRegex matches an SQL identifier, optionally schema-qualified.
	sqlIdentRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their wire name instead of the Go field name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query"} {
			name := strings.Split(f.Tag.Get(tag), ",")[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return strings.ToLower(f.Name)
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("bcp47", func(fl validator.FieldLevel) bool {
		_, err := language.Parse(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("sqlident", func(fl validator.FieldLevel) bool {
		return IsSQLIdentifier(fl.Field().String())
	})

	return v
}

// Struct validates s against its `validate` tags using the shared
// validator and the custom tags notblank, bcp47 and sqlident.
func Struct(s any) error {
	return validate.Struct(s)
}

// IsSQLIdentifier reports whether name is a plain or schema-qualified
// SQL identifier.
func IsSQLIdentifier(name string) bool {
	return sqlIdentRegex.MatchString(name)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) c.Bind(payload) populates request struct from the incoming request body/params,
// or payload.BindContext(c) when payload implements ContextBinder.
// 2) payload.Validate() applies validation rules.
// 3) Returns *errs.HTTPError (400) with field-level errors if validation fails.
//
// NOTE: c.Bind expects a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	var err error
	if binder, ok := payload.(ContextBinder); ok {
		err = binder.BindContext(c)
	} else {
		err = c.Bind(payload)
	}
	if err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}

	if err := validateStruct(payload); err != nil {
		return err
	}

	return nil
}

// bindErrorMessage extracts the client-facing part of a bind error.
func bindErrorMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprint(httpErr.Message)
	}

	var appErr *errs.HTTPError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	return err.Error()
}

// validateStruct calls v.Validate() and converts a failure into a 400.
// Failures that carry no field detail keep their own message.
func validateStruct(v Validatable) *errs.HTTPError {
	err := v.Validate()
	if err == nil {
		return nil
	}

	fieldErrors := extractValidationError(err)
	if len(fieldErrors) == 0 {
		return errs.ValidationError(err)
	}
	return errs.NewBadRequestError("Validation failed", true, nil, fieldErrors, nil)
}

func extractValidationError(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a field-level failure, e.g. an invalid validation target.
		return nil
	}

	// Convert validator.ValidationErrors into user-friendly messages.
	for _, err := range validationErrors {
		field := err.Field()
		var msg string

		switch err.Tag() {
		case "required":
			msg = "is required"

		case "notblank":
			msg = "must not be blank"

		case "min":
			// min on strings is a length, on slices a count, on numbers a value.
			switch err.Kind() {
			case reflect.String:
				msg = fmt.Sprintf("must be at least %s characters", err.Param())
			case reflect.Slice:
				msg = fmt.Sprintf("must contain at least %s items", err.Param())
			default:
				msg = fmt.Sprintf("must be at least %s", err.Param())
			}

		case "max":
			if err.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", err.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", err.Param())
			}

		case "gte":
			msg = fmt.Sprintf("must be greater than or equal to %s", err.Param())

		case "lte":
			msg = fmt.Sprintf("must be less than or equal to %s", err.Param())

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", err.Param())

		case "email":
			msg = "must be a valid email address"

		case "e164":
			msg = "must be a valid phone number with country code"

		case "bcp47":
			msg = "must be a valid language code"

		case "sqlident":
			msg = "must be a valid SQL identifier"

		case "url":
			msg = "must be a valid URL"

		case "dive":
			msg = "some items are invalid"

		default:
			// Includes tag name and param (if any) to help debugging.
			if err.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, err.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return fieldErrors
}
