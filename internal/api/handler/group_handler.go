package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fpdual/dual-admin/internal/core/ports"
)

// GroupHandler handles group administration within the active year.
type GroupHandler struct {
	service  ports.GroupService
	notifier ports.Notifier
}

func NewGroupHandler(service ports.GroupService, notifier ports.Notifier) *GroupHandler {
	return &GroupHandler{service: service, notifier: notifier}
}

type groupRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *GroupHandler) List(c echo.Context) error {
	groups, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, groups)
}

func (h *GroupHandler) Create(c echo.Context) error {
	var req groupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	group, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceGroups)
	return c.JSON(http.StatusCreated, group)
}

func (h *GroupHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req groupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	group, err := h.service.Rename(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceGroups)
	return c.JSON(http.StatusOK, group)
}

func (h *GroupHandler) ToggleActive(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.ToggleActive(c.Request().Context(), id); err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceGroups)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *GroupHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceGroups)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
