package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acadreview/reviewhub/internal/api/metrics"
	"github.com/acadreview/reviewhub/internal/core/domain"
	"github.com/acadreview/reviewhub/internal/core/ports"
)

// ReviewHandler handles HTTP requests for both review variants.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// ListModules handles GET /api/modules.
//
// @Summary      List all module reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ModuleReview
// @Router       /api/modules [get]
func (h *ReviewHandler) ListModules(c echo.Context) error {
	modules, err := h.service.ListModules(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, modules)
}

// ListPrograms handles GET /api/programs.
//
// @Summary      List all program reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ProgramReview
// @Router       /api/programs [get]
func (h *ReviewHandler) ListPrograms(c echo.Context) error {
	programs, err := h.service.ListPrograms(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, programs)
}

// GetModule handles GET /api/modules/:id.
//
// @Summary      Get one module review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Module review id"
// @Success      200  {object}  domain.ModuleReview
// @Failure      404  {object}  map[string]string
// @Router       /api/modules/{id} [get]
func (h *ReviewHandler) GetModule(c echo.Context) error {
	m, err := h.service.GetModule(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// GetProgram handles GET /api/programs/:id.
//
// @Summary      Get one program review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Program review id"
// @Success      200  {object}  domain.ProgramReview
// @Failure      404  {object}  map[string]string
// @Router       /api/programs/{id} [get]
func (h *ReviewHandler) GetProgram(c echo.Context) error {
	p, err := h.service.GetProgram(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// UpdateModule handles PUT /api/modules/:id.
//
// @Summary      Update a module review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Module review id"
// @Param        body  body      moduleUpdateRequest  true  "Fields to patch"
// @Success      200   {object}  domain.ModuleReview
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/modules/{id} [put]
func (h *ReviewHandler) UpdateModule(c echo.Context) error {
	var req moduleUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := validateStatus(req.Status); err != nil {
		return err
	}

	m, err := h.service.UpdateModule(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	metrics.ReviewUpdatesTotal.WithLabelValues(string(domain.TypeModule)).Inc()
	return c.JSON(http.StatusOK, m)
}

// UpdateProgram handles PUT /api/programs/:id.
//
// @Summary      Update a program review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Program review id"
// @Param        body  body      programUpdateRequest  true  "Fields to patch"
// @Success      200   {object}  domain.ProgramReview
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/programs/{id} [put]
func (h *ReviewHandler) UpdateProgram(c echo.Context) error {
	var req programUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := validateStatus(req.Status); err != nil {
		return err
	}

	p, err := h.service.UpdateProgram(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return err
	}
	metrics.ReviewUpdatesTotal.WithLabelValues(string(domain.TypeProgram)).Inc()
	return c.JSON(http.StatusOK, p)
}

// NotStarted handles GET /api/reviews/not-started.
//
// @Summary      List reviews not yet started
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.NotStartedReviews
// @Router       /api/reviews/not-started [get]
func (h *ReviewHandler) NotStarted(c echo.Context) error {
	out, err := h.service.NotStarted(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func validateStatus(s *string) error {
	if s != nil && !domain.ValidStatus(domain.ReviewStatus(*s)) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown review status")
	}
	return nil
}
