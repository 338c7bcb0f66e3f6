package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

type CompanyRepository struct {
	db *sqlx.DB
}

func NewCompanyRepository(db *sqlx.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	companies := []domain.Company{}
	if err := r.db.SelectContext(ctx, &companies, `SELECT * FROM companies ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	centers := []domain.WorkCenter{}
	if err := r.db.SelectContext(ctx, &centers, `SELECT * FROM work_centers`); err != nil {
		return nil, fmt.Errorf("list work centers: %w", err)
	}

	byCompany := make(map[int64][]domain.WorkCenter, len(companies))
	for _, wc := range centers {
		byCompany[wc.CompanyID] = append(byCompany[wc.CompanyID], wc)
	}
	for i := range companies {
		companies[i].WorkCenters = byCompany[companies[i].ID]
		if companies[i].WorkCenters == nil {
			companies[i].WorkCenters = []domain.WorkCenter{}
		}
	}
	return companies, nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id int64) (*domain.Company, error) {
	var c domain.Company
	err := r.db.GetContext(ctx, &c, `SELECT * FROM companies WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}

	c.WorkCenters = []domain.WorkCenter{}
	err = r.db.SelectContext(ctx, &c.WorkCenters,
		`SELECT * FROM work_centers WHERE company_id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("find company work centers: %w", err)
	}
	return &c, nil
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO companies (name, legal_name, tax_id, address, city, postal_code, phone, email, website)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		company.Name, company.LegalName, company.TaxID, company.Address,
		company.City, company.PostalCode, company.Phone, company.Email, company.Website)
	if err != nil {
		return nil, fmt.Errorf("insert company: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert company id: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *CompanyRepository) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE companies
		SET name = ?, legal_name = ?, tax_id = ?, address = ?, city = ?, postal_code = ?, phone = ?, email = ?, website = ?
		WHERE id = ?`,
		company.Name, company.LegalName, company.TaxID, company.Address,
		company.City, company.PostalCode, company.Phone, company.Email, company.Website, company.ID)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrCompanyNotFound
	}
	return r.FindByID(ctx, company.ID)
}

func (r *CompanyRepository) ToggleActive(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE companies SET active = NOT active WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("toggle company: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

func (r *CompanyRepository) CreateWorkCenter(ctx context.Context, center *domain.WorkCenter) (*domain.WorkCenter, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO work_centers (company_id, name, address, city, postal_code, phone, email, tutor_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		center.CompanyID, center.Name, center.Address, center.City,
		center.PostalCode, center.Phone, center.Email, center.TutorID)
	if err != nil {
		return nil, fmt.Errorf("insert work center: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert work center id: %w", err)
	}
	return r.findWorkCenter(ctx, id)
}

func (r *CompanyRepository) UpdateWorkCenter(ctx context.Context, center *domain.WorkCenter) (*domain.WorkCenter, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE work_centers
		SET name = ?, address = ?, city = ?, postal_code = ?, phone = ?, email = ?, tutor_id = ?
		WHERE id = ? AND company_id = ?`,
		center.Name, center.Address, center.City, center.PostalCode,
		center.Phone, center.Email, center.TutorID, center.ID, center.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("update work center: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrWorkCenterNotFound
	}
	return r.findWorkCenter(ctx, center.ID)
}

func (r *CompanyRepository) ToggleWorkCenter(ctx context.Context, companyID, centerID int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE work_centers SET active = NOT active WHERE id = ? AND company_id = ?`,
		centerID, companyID)
	if err != nil {
		return fmt.Errorf("toggle work center: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrWorkCenterNotFound
	}
	return nil
}

func (r *CompanyRepository) findWorkCenter(ctx context.Context, id int64) (*domain.WorkCenter, error) {
	var wc domain.WorkCenter
	err := r.db.GetContext(ctx, &wc, `SELECT * FROM work_centers WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWorkCenterNotFound
		}
		return nil, fmt.Errorf("find work center: %w", err)
	}
	return &wc, nil
}
