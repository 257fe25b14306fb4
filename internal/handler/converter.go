package handler

import (
	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/deppfellow/generic-tools/internal/service"
	"github.com/labstack/echo/v4"
)

// ExportFileName is the attachment name of converted spreadsheets.
const ExportFileName = "export.xlsx"

type ConverterHandler struct {
	Handler
	converter *service.ConverterService
}

func NewConverterHandler(s *server.Server, converter *service.ConverterService) *ConverterHandler {
	return &ConverterHandler{
		Handler:   NewHandler(s),
		converter: converter,
	}
}

func (h *ConverterHandler) ExcelToSQL(_ echo.Context, req *model.ExcelToSQLRequest) (string, error) {
	return h.converter.ExcelToSQL(req)
}

func (h *ConverterHandler) JSONToExcel(_ echo.Context, req *model.JSONToExcelRequest) ([]byte, error) {
	return h.converter.JSONToExcel(req)
}
