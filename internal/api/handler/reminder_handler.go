package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/acadreview/reviewhub/internal/api/metrics"
	"github.com/acadreview/reviewhub/internal/core/domain"
	"github.com/acadreview/reviewhub/internal/core/ports"
)

// ReminderHandler fronts reminder delivery. A request names either a single
// address or a review status to fan out to; exactly one of the two.
type ReminderHandler struct {
	service ports.ReminderService
}

func NewReminderHandler(service ports.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

type reminderRequest struct {
	Email   string `json:"email"`
	Status  string `json:"status"`
	Subject string `json:"subject" validate:"required"`
	Text    string `json:"text" validate:"required"`
}

// Send handles POST /api/send-reminder.
//
// @Summary      Send reminder email(s)
// @Tags         reminders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reminderRequest  true  "Target address or review status, plus subject and text"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/send-reminder [post]
func (h *ReminderHandler) Send(c echo.Context) error {
	var req reminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	switch {
	case req.Email != "":
		if err := h.service.SendDirect(c.Request().Context(), req.Email, req.Subject, req.Text); err != nil {
			metrics.RemindersTotal.WithLabelValues("failed").Inc()
			return err
		}
		metrics.RemindersTotal.WithLabelValues("sent").Inc()
		return c.JSON(http.StatusOK, map[string]string{"message": "Email sent successfully"})

	case req.Status != "":
		status := domain.ReviewStatus(req.Status)
		if !domain.ValidStatus(status) {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown review status")
		}
		result, err := h.service.SendByStatus(c.Request().Context(), status, req.Subject, req.Text)
		if err != nil {
			return err
		}
		metrics.RemindersTotal.WithLabelValues("sent").Add(float64(result.Sent))
		metrics.RemindersTotal.WithLabelValues("failed").Add(float64(result.Failed))
		metrics.RemindersTotal.WithLabelValues("skipped").Add(float64(result.Skipped))
		return c.JSON(http.StatusOK, result)

	default:
		return echo.NewHTTPError(http.StatusBadRequest, "either email or status is required")
	}
}
