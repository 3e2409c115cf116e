package handler

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/acadreview/reviewhub/internal/core/domain"
	"github.com/acadreview/reviewhub/internal/core/ports"
)

// ExportHandler serves single-review documents and generated file downloads.
type ExportHandler struct {
	service   ports.ExportService
	exportDir string
}

func NewExportHandler(service ports.ExportService, exportDir string) *ExportHandler {
	return &ExportHandler{service: service, exportDir: exportDir}
}

// Document handles GET /api/export/:type/:id.
//
// @Summary      Export one review as a Word document
// @Tags         export
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        type  path  string  true  "Review variant"  Enums(module, program)
// @Param        id    path  string  true  "Review id"
// @Success      200  {file}    binary
// @Failure      404  {object}  map[string]string
// @Router       /api/export/{type}/{id} [get]
func (h *ExportHandler) Document(c echo.Context) error {
	typ := domain.ReviewType(c.Param("type"))
	id := c.Param("id")

	path, err := h.service.ExportDocument(c.Request().Context(), typ, id)
	if err != nil {
		return err
	}
	return c.Attachment(path, filepath.Base(path))
}

// Download handles GET /api/download/:filename, serving previously generated
// files from the export directory. The filename is reduced to its base name so
// the route cannot reach outside the directory.
//
// @Summary      Download a generated export file
// @Tags         export
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        filename  path  string  true  "Exported file name"
// @Success      200  {file}    binary
// @Failure      404  {object}  map[string]string
// @Router       /api/download/{filename} [get]
func (h *ExportHandler) Download(c echo.Context) error {
	name := filepath.Base(c.Param("filename"))
	path := filepath.Join(h.exportDir, name)

	if _, err := os.Stat(path); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}
	return c.Attachment(path, name)
}
