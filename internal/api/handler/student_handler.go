package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fpdual/dual-admin/internal/core/domain"
	"github.com/fpdual/dual-admin/internal/core/ports"
)

// StudentHandler handles trainee administration.
type StudentHandler struct {
	service  ports.StudentService
	notifier ports.Notifier
}

func NewStudentHandler(service ports.StudentService, notifier ports.Notifier) *StudentHandler {
	return &StudentHandler{service: service, notifier: notifier}
}

type studentRequest struct {
	CIAL     string `json:"cial"      validate:"required"`
	DNI      string `json:"dni"       validate:"required"`
	NUSS     string `json:"nuss"      validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"required"`
	GroupID  int64  `json:"group_id"  validate:"required,gt=0"`
}

func (r studentRequest) toDomain() domain.Student {
	return domain.Student{
		CIAL:     r.CIAL,
		DNI:      r.DNI,
		NUSS:     r.NUSS,
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		GroupID:  r.GroupID,
	}
}

func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.ListCurrent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) Create(c echo.Context) error {
	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	student, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceStudents)
	return c.JSON(http.StatusCreated, student)
}

func (h *StudentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	s := req.toDomain()
	s.ID = id
	student, err := h.service.Update(c.Request().Context(), s)
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceStudents)
	return c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) ToggleActive(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.ToggleActive(c.Request().Context(), id); err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceStudents)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
