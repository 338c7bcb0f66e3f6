package ports

import (
	"context"
	"time"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

type AcademicYearRepository interface {
	List(ctx context.Context) ([]domain.AcademicYear, error)
	FindByID(ctx context.Context, id int64) (*domain.AcademicYear, error)
	// FindActive returns the currently active year, or
	// domain.ErrNoActiveAcademicYear when none is flagged.
	FindActive(ctx context.Context) (*domain.AcademicYear, error)
	Create(ctx context.Context, year *domain.AcademicYear) (*domain.AcademicYear, error)
	Update(ctx context.Context, year *domain.AcademicYear) (*domain.AcademicYear, error)
	ToggleActive(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	CountGroups(ctx context.Context, yearID int64) (int, error)
}

type AcademicYearService interface {
	List(ctx context.Context) ([]domain.AcademicYear, error)
	Create(ctx context.Context, name string, start, end time.Time) (*domain.AcademicYear, error)
	Update(ctx context.Context, id int64, name string, start, end time.Time) (*domain.AcademicYear, error)
	ToggleActive(ctx context.Context, id int64) error
	// Delete refuses with domain.ErrHasGroups while groups still
	// reference the year.
	Delete(ctx context.Context, id int64) error
}
