package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fpdual/dual-admin/internal/core/ports"
)

const dateLayout = "2006-01-02"

// AcademicYearHandler handles school-year administration.
type AcademicYearHandler struct {
	service  ports.AcademicYearService
	notifier ports.Notifier
}

func NewAcademicYearHandler(service ports.AcademicYearService, notifier ports.Notifier) *AcademicYearHandler {
	return &AcademicYearHandler{service: service, notifier: notifier}
}

type academicYearRequest struct {
	Name      string `json:"name"       validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

func (r academicYearRequest) dates() (start, end time.Time) {
	// Validated above; parse errors cannot occur here.
	start, _ = time.Parse(dateLayout, r.StartDate)
	end, _ = time.Parse(dateLayout, r.EndDate)
	return start, end
}

func (h *AcademicYearHandler) List(c echo.Context) error {
	years, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, years)
}

func (h *AcademicYearHandler) Create(c echo.Context) error {
	var req academicYearRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	start, end := req.dates()
	year, err := h.service.Create(c.Request().Context(), req.Name, start, end)
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceAcademicYears)
	return c.JSON(http.StatusCreated, year)
}

func (h *AcademicYearHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req academicYearRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	start, end := req.dates()
	year, err := h.service.Update(c.Request().Context(), id, req.Name, start, end)
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceAcademicYears)
	return c.JSON(http.StatusOK, year)
}

func (h *AcademicYearHandler) ToggleActive(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.ToggleActive(c.Request().Context(), id); err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceAcademicYears)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *AcademicYearHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceAcademicYears)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
