package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fpdual/dual-admin/internal/core/ports"
)

// DashboardHandler serves the landing-page aggregate counters.
type DashboardHandler struct {
	repo ports.DashboardRepository
}

func NewDashboardHandler(repo ports.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.repo.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
