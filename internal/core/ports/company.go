package ports

import (
	"context"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

type CompanyRepository interface {
	// List returns every company with its work centers nested.
	List(ctx context.Context) ([]domain.Company, error)
	FindByID(ctx context.Context, id int64) (*domain.Company, error)
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
	ToggleActive(ctx context.Context, id int64) error

	CreateWorkCenter(ctx context.Context, center *domain.WorkCenter) (*domain.WorkCenter, error)
	UpdateWorkCenter(ctx context.Context, center *domain.WorkCenter) (*domain.WorkCenter, error)
	ToggleWorkCenter(ctx context.Context, companyID, centerID int64) error
}

type CompanyService interface {
	List(ctx context.Context) ([]domain.Company, error)
	Create(ctx context.Context, company domain.Company) (*domain.Company, error)
	Update(ctx context.Context, company domain.Company) (*domain.Company, error)
	ToggleActive(ctx context.Context, id int64) error

	AddWorkCenter(ctx context.Context, center domain.WorkCenter) (*domain.WorkCenter, error)
	UpdateWorkCenter(ctx context.Context, center domain.WorkCenter) (*domain.WorkCenter, error)
	ToggleWorkCenter(ctx context.Context, companyID, centerID int64) error
}
