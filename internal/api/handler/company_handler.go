package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fpdual/dual-admin/internal/core/domain"
	"github.com/fpdual/dual-admin/internal/core/ports"
)

// CompanyHandler handles partner companies and their work centers.
type CompanyHandler struct {
	service  ports.CompanyService
	notifier ports.Notifier
}

func NewCompanyHandler(service ports.CompanyService, notifier ports.Notifier) *CompanyHandler {
	return &CompanyHandler{service: service, notifier: notifier}
}

type companyRequest struct {
	Name       string  `json:"name"        validate:"required"`
	LegalName  string  `json:"legal_name"  validate:"required"`
	TaxID      string  `json:"tax_id"      validate:"required"`
	Address    string  `json:"address"     validate:"required"`
	City       string  `json:"city"        validate:"required"`
	PostalCode string  `json:"postal_code" validate:"required"`
	Phone      string  `json:"phone"       validate:"required"`
	Email      string  `json:"email"       validate:"required,email"`
	Website    *string `json:"website"`
}

func (r companyRequest) toDomain() domain.Company {
	return domain.Company{
		Name:       r.Name,
		LegalName:  r.LegalName,
		TaxID:      r.TaxID,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
		Phone:      r.Phone,
		Email:      r.Email,
		Website:    r.Website,
	}
}

type workCenterRequest struct {
	Name       string `json:"name"        validate:"required"`
	Address    string `json:"address"     validate:"required"`
	City       string `json:"city"        validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Phone      string `json:"phone"       validate:"required"`
	Email      string `json:"email"       validate:"required,email"`
	TutorID    *int64 `json:"tutor_id"`
}

func (r workCenterRequest) toDomain() domain.WorkCenter {
	return domain.WorkCenter{
		Name:       r.Name,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
		Phone:      r.Phone,
		Email:      r.Email,
		TutorID:    r.TutorID,
	}
}

func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

func (h *CompanyHandler) Create(c echo.Context) error {
	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	company, err := h.service.Create(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceCompanies)
	return c.JSON(http.StatusCreated, company)
}

func (h *CompanyHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	company := req.toDomain()
	company.ID = id
	updated, err := h.service.Update(c.Request().Context(), company)
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceCompanies)
	return c.JSON(http.StatusOK, updated)
}

func (h *CompanyHandler) ToggleActive(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.ToggleActive(c.Request().Context(), id); err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceCompanies)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *CompanyHandler) AddWorkCenter(c echo.Context) error {
	companyID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req workCenterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	center := req.toDomain()
	center.CompanyID = companyID
	created, err := h.service.AddWorkCenter(c.Request().Context(), center)
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceCompanies)
	return c.JSON(http.StatusCreated, created)
}

func (h *CompanyHandler) UpdateWorkCenter(c echo.Context) error {
	companyID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	centerID, err := pathID(c, "centerId")
	if err != nil {
		return err
	}

	var req workCenterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	center := req.toDomain()
	center.ID = centerID
	center.CompanyID = companyID
	updated, err := h.service.UpdateWorkCenter(c.Request().Context(), center)
	if err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceCompanies)
	return c.JSON(http.StatusOK, updated)
}

func (h *CompanyHandler) ToggleWorkCenter(c echo.Context) error {
	companyID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	centerID, err := pathID(c, "centerId")
	if err != nil {
		return err
	}
	if err := h.service.ToggleWorkCenter(c.Request().Context(), companyID, centerID); err != nil {
		return err
	}

	h.notifier.Broadcast(ports.ResourceCompanies)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
