package service

import (
	"context"

	"github.com/fpdual/dual-admin/internal/core/domain"
	"github.com/fpdual/dual-admin/internal/core/ports"
)

// CompanyService manages partner companies and their work centers.
type CompanyService struct {
	companies ports.CompanyRepository
}

func NewCompanyService(companies ports.CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies}
}

func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	return s.companies.List(ctx)
}

func (s *CompanyService) Create(ctx context.Context, company domain.Company) (*domain.Company, error) {
	company.Active = true
	return s.companies.Create(ctx, &company)
}

func (s *CompanyService) Update(ctx context.Context, company domain.Company) (*domain.Company, error) {
	existing, err := s.companies.FindByID(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	company.Active = existing.Active
	return s.companies.Update(ctx, &company)
}

func (s *CompanyService) ToggleActive(ctx context.Context, id int64) error {
	return s.companies.ToggleActive(ctx, id)
}

func (s *CompanyService) AddWorkCenter(ctx context.Context, center domain.WorkCenter) (*domain.WorkCenter, error) {
	if _, err := s.companies.FindByID(ctx, center.CompanyID); err != nil {
		return nil, err
	}
	center.Active = true
	return s.companies.CreateWorkCenter(ctx, &center)
}

func (s *CompanyService) UpdateWorkCenter(ctx context.Context, center domain.WorkCenter) (*domain.WorkCenter, error) {
	return s.companies.UpdateWorkCenter(ctx, &center)
}

func (s *CompanyService) ToggleWorkCenter(ctx context.Context, companyID, centerID int64) error {
	return s.companies.ToggleWorkCenter(ctx, companyID, centerID)
}
