package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fpdual/dual-admin/internal/core/domain"
	"github.com/fpdual/dual-admin/internal/core/ports"
)

// ActivityHandler handles the activity log and its review workflow.
type ActivityHandler struct {
	service  ports.ActivityService
	notifier ports.Notifier
}

func NewActivityHandler(service ports.ActivityService, notifier ports.Notifier) *ActivityHandler {
	return &ActivityHandler{service: service, notifier: notifier}
}

type logActivityRequest struct {
	StudentID   int64  `json:"student_id"  validate:"required,gt=0"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date"        validate:"required,datetime=2006-01-02"`
	Hours       int    `json:"hours"       validate:"required,gt=0"`
}

type reviewActivityRequest struct {
	Status   string  `json:"status" validate:"required,oneof=approved rejected"`
	Comments *string `json:"comments"`
}

func (h *ActivityHandler) List(c echo.Context) error {
	activities, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

func (h *ActivityHandler) Log(c echo.Context) error {
	var req logActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, _ := time.Parse(dateLayout, req.Date)
	activity, err := h.service.Log(c.Request().Context(), req.StudentID, req.Description, date, req.Hours)
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceActivities)
	return c.JSON(http.StatusCreated, activity)
}

func (h *ActivityHandler) Review(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req reviewActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	activity, err := h.service.Review(c.Request().Context(), id, domain.ActivityStatus(req.Status), req.Comments)
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceActivities)
	return c.JSON(http.StatusOK, activity)
}
