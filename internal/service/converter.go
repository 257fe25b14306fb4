package service

import (
	"errors"

	"github.com/deppfellow/generic-tools/internal/errs"
	"github.com/deppfellow/generic-tools/internal/lib/sheet"
	"github.com/deppfellow/generic-tools/internal/model"
)

type ConverterService struct{}

func NewConverterService() *ConverterService {
	return &ConverterService{}
}

// ExcelToSQL converts the uploaded workbook into a SQL script.
func (s *ConverterService) ExcelToSQL(req *model.ExcelToSQLRequest) (string, error) {
	f, err := req.File.Open()
	if err != nil {
		return "", errs.NewServerError("failed to generate SQL script", err)
	}
	defer f.Close()

	script, err := sheet.ToSQL(f, req.TableName)
	if err != nil {
		return "", converterError("failed to generate SQL script", err)
	}
	return script, nil
}

// JSONToExcel writes the records to an XLSX workbook.
func (s *ConverterService) JSONToExcel(req *model.JSONToExcelRequest) ([]byte, error) {
	data, err := sheet.FromRecords(req.Records)
	if err != nil {
		return nil, converterError("failed to generate Excel file", err)
	}
	return data, nil
}

func converterError(message string, err error) error {
	if errors.Is(err, sheet.ErrInvalidInput) {
		return errs.NewBadRequestError(err.Error(), true, nil, nil, nil)
	}
	return errs.NewServerError(message, err)
}
