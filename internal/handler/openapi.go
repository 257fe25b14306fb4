package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/labstack/echo/v4"
)

// StaticDir holds the documentation assets served under /static.
const StaticDir = "static"

// OpenAPIHandler serves the OpenAPI UI. The page loads its scripts from a
// CDN and reads the document from /static/openapi.json.
type OpenAPIHandler struct {
	Handler
	dir string
}

// NewOpenAPIHandler constructs an OpenAPIHandler with access to shared dependencies.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
		dir:     StaticDir,
	}
}

// ServeOpenAPIUI reads static/openapi.html and serves it as an HTML response.
//
// Cache-Control is set to "no-cache" so clients do not reuse old docs UI.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	templateBytes, err := os.ReadFile(filepath.Join(h.dir, "openapi.html"))

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTML(http.StatusOK, string(templateBytes)); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
