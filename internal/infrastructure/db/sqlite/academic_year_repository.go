package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

type AcademicYearRepository struct {
	db *sqlx.DB
}

func NewAcademicYearRepository(db *sqlx.DB) *AcademicYearRepository {
	return &AcademicYearRepository{db: db}
}

func (r *AcademicYearRepository) List(ctx context.Context) ([]domain.AcademicYear, error) {
	years := []domain.AcademicYear{}
	err := r.db.SelectContext(ctx, &years, `SELECT * FROM academic_years ORDER BY start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list academic years: %w", err)
	}
	return years, nil
}

func (r *AcademicYearRepository) FindByID(ctx context.Context, id int64) (*domain.AcademicYear, error) {
	var year domain.AcademicYear
	err := r.db.GetContext(ctx, &year, `SELECT * FROM academic_years WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAcademicYearNotFound
		}
		return nil, fmt.Errorf("find academic year: %w", err)
	}
	return &year, nil
}

func (r *AcademicYearRepository) FindActive(ctx context.Context) (*domain.AcademicYear, error) {
	var year domain.AcademicYear
	err := r.db.GetContext(ctx, &year, `SELECT * FROM academic_years WHERE active = 1 LIMIT 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoActiveAcademicYear
		}
		return nil, fmt.Errorf("find active academic year: %w", err)
	}
	return &year, nil
}

func (r *AcademicYearRepository) Create(ctx context.Context, year *domain.AcademicYear) (*domain.AcademicYear, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO academic_years (name, start_date, end_date) VALUES (?, ?, ?)`,
		year.Name, year.StartDate, year.EndDate)
	if err != nil {
		return nil, fmt.Errorf("insert academic year: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert academic year id: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *AcademicYearRepository) Update(ctx context.Context, year *domain.AcademicYear) (*domain.AcademicYear, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE academic_years SET name = ?, start_date = ?, end_date = ? WHERE id = ?`,
		year.Name, year.StartDate, year.EndDate, year.ID)
	if err != nil {
		return nil, fmt.Errorf("update academic year: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrAcademicYearNotFound
	}
	return r.FindByID(ctx, year.ID)
}

func (r *AcademicYearRepository) ToggleActive(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE academic_years SET active = NOT active WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("toggle academic year: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrAcademicYearNotFound
	}
	return nil
}

func (r *AcademicYearRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM academic_years WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete academic year: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrAcademicYearNotFound
	}
	return nil
}

func (r *AcademicYearRepository) CountGroups(ctx context.Context, yearID int64) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM groups WHERE academic_year_id = ?`, yearID)
	if err != nil {
		return 0, fmt.Errorf("count groups: %w", err)
	}
	return n, nil
}
