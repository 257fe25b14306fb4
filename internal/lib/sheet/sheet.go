// Package sheet converts between XLSX workbooks and other formats.
package sheet

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks failures caused by the caller's data rather than
// the converter. Callers map it to a client error.
var ErrInvalidInput = errors.New("invalid input")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Column types emitted by ToSQL.
const (
	TypeVarchar  = "VARCHAR(255)"
	TypeDecimal  = "DECIMAL(18,2)"
	TypeDatetime = "DATETIME"
)

const defaultSheet = "Sheet1"
