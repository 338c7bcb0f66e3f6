package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fpdual/dual-admin/internal/core/ports"
)

// UserHandler handles identity administration.
type UserHandler struct {
	service  ports.UserService
	notifier ports.Notifier
}

func NewUserHandler(service ports.UserService, notifier ports.Notifier) *UserHandler {
	return &UserHandler{service: service, notifier: notifier}
}

type createUserRequest struct {
	Username   string `json:"username"   validate:"required"`
	Password   string `json:"password"   validate:"required,min=4"`
	Role       string `json:"role"       validate:"required,oneof=admin center_tutor company_tutor"`
	Email      string `json:"email"      validate:"required,email"`
	Phone      string `json:"phone"      validate:"required"`
	FullName   string `json:"full_name"  validate:"required"`
	Department string `json:"department" validate:"required"`
}

type updateUserRequest struct {
	Username   string `json:"username"   validate:"required"`
	Role       string `json:"role"       validate:"required,oneof=admin center_tutor company_tutor"`
	Email      string `json:"email"      validate:"required,email"`
	Phone      string `json:"phone"      validate:"required"`
	FullName   string `json:"full_name"  validate:"required"`
	Department string `json:"department" validate:"required"`
}

func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CompanyTutors(c echo.Context) error {
	tutors, err := h.service.CompanyTutors(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tutors)
}

func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username:   req.Username,
		Password:   req.Password,
		Role:       req.Role,
		Email:      req.Email,
		Phone:      req.Phone,
		FullName:   req.FullName,
		Department: req.Department,
	})
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceUsers)
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.service.Update(c.Request().Context(), id, ports.UpdateUserInput{
		Username:   req.Username,
		Role:       req.Role,
		Email:      req.Email,
		Phone:      req.Phone,
		FullName:   req.FullName,
		Department: req.Department,
	})
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceUsers)
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) ToggleActive(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.ToggleActive(c.Request().Context(), id); err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceUsers)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
