package ports

import (
	"context"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

type GroupRepository interface {
	// List returns all groups joined with their academic year name and
	// current student count.
	List(ctx context.Context) ([]domain.Group, error)
	FindByID(ctx context.Context, id int64) (*domain.Group, error)
	Create(ctx context.Context, name string, academicYearID int64) (*domain.Group, error)
	Rename(ctx context.Context, id int64, name string) (*domain.Group, error)
	ToggleActive(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	CountStudents(ctx context.Context, groupID int64) (int, error)
}

type GroupService interface {
	List(ctx context.Context) ([]domain.Group, error)
	// Create attaches the group to the active academic year; fails with
	// domain.ErrNoActiveAcademicYear when there is none.
	Create(ctx context.Context, name string) (*domain.Group, error)
	Rename(ctx context.Context, id int64, name string) (*domain.Group, error)
	ToggleActive(ctx context.Context, id int64) error
	// Delete refuses with domain.ErrHasStudents while students are still
	// assigned to the group.
	Delete(ctx context.Context, id int64) error
}
