package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acadreview/reviewhub/internal/api/metrics"
	"github.com/acadreview/reviewhub/internal/core/domain"
	"github.com/acadreview/reviewhub/internal/core/ports"
)

// RosterHandler fronts the academic-year transition: bulk import and on-demand
// export of the whole store.
type RosterHandler struct {
	service ports.RosterService
}

func NewRosterHandler(service ports.RosterService) *RosterHandler {
	return &RosterHandler{service: service}
}

// Upload handles POST /api/upload. The multipart form must carry a "modules"
// file and a "programs" file; both are parsed before the current roster is
// archived and replaced.
//
// @Summary      Import a new academic year roster
// @Tags         roster
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        modules   formData  file  true  "Module roster workbook"
// @Param        programs  formData  file  true  "Program roster workbook"
// @Success      200  {object}  ports.ImportResult
// @Failure      400  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/upload [post]
func (h *RosterHandler) Upload(c echo.Context) error {
	modules, err := openFormFile(c, "modules")
	if err != nil {
		return err
	}
	defer modules.Close()

	programs, err := openFormFile(c, "programs")
	if err != nil {
		return err
	}
	defer programs.Close()

	result, err := h.service.ImportRoster(c.Request().Context(), modules, programs)
	if err != nil {
		return err
	}

	metrics.RosterImportsTotal.Inc()
	if result.FilePath != "" {
		metrics.SnapshotFilesTotal.Inc()
	}
	return c.JSON(http.StatusOK, result)
}

// ExportCurrent handles GET /api/export/current.
//
// @Summary      Snapshot the live store to a workbook
// @Tags         roster
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /api/export/current [get]
func (h *RosterHandler) ExportCurrent(c echo.Context) error {
	filePath, err := h.service.ExportCurrent(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.SnapshotFilesTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"filePath": filePath})
}

func openFormFile(c echo.Context, field string) (multipart.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, domain.ErrMissingUpload
	}
	f, err := fh.Open()
	if err != nil {
		return nil, domain.ErrMissingUpload
	}
	return f, nil
}
