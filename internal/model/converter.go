package model

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/deppfellow/generic-tools/internal/lib/sheet"
	"github.com/deppfellow/generic-tools/internal/validation"
	"github.com/labstack/echo/v4"
)

// ExcelToSQLRequest is a multipart XLSX upload plus the target table.
type ExcelToSQLRequest struct {
	File      *multipart.FileHeader `form:"file" validate:"-"`
	TableName string                `form:"table_name" validate:"required,sqlident"`
}

// BindContext reads the upload and takes table_name from the form, or
// from the tableName / table_name query parameters.
func (r *ExcelToSQLRequest) BindContext(c echo.Context) error {
	file, err := c.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		return echo.NewHTTPError(http.StatusBadRequest, "request must be multipart/form-data").SetInternal(err)
	default:
		r.File = file
	}

	r.TableName = c.FormValue("table_name")
	for _, key := range []string{"tableName", "table_name"} {
		if r.TableName != "" {
			break
		}
		r.TableName = c.QueryParam(key)
	}
	return nil
}

func (r *ExcelToSQLRequest) Validate() error {
	trim(&r.TableName)

	switch {
	case r.File == nil:
		return validation.CustomValidationErrors{{Field: "file", Message: "is required"}}
	case r.File.Size == 0:
		return validation.CustomValidationErrors{{Field: "file", Message: "must not be empty"}}
	}
	return validation.Struct(r)
}

// JSONToExcelRequest is a JSON array of flat objects.
type JSONToExcelRequest struct {
	Records []sheet.Record
}

func (r *JSONToExcelRequest) BindContext(c echo.Context) error {
	records, err := sheet.DecodeRecords(c.Request().Body)
	if err != nil {
		return err
	}
	r.Records = records
	return nil
}

func (r *JSONToExcelRequest) Validate() error {
	switch {
	case len(r.Records) == 0:
		return validation.CustomValidationErrors{{Field: "body", Message: "list of objects must not be empty"}}
	case len(r.Records[0].Keys) == 0:
		return validation.CustomValidationErrors{{Field: "body", Message: "first object has no properties"}}
	}
	return nil
}
