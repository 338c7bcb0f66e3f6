package ports

import (
	"context"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

type StudentRepository interface {
	// ListCurrent returns students whose group belongs to the active
	// academic year, joined with the group name.
	ListCurrent(ctx context.Context) ([]domain.Student, error)
	FindByID(ctx context.Context, id int64) (*domain.Student, error)
	Create(ctx context.Context, student *domain.Student) (*domain.Student, error)
	Update(ctx context.Context, student *domain.Student) (*domain.Student, error)
	ToggleActive(ctx context.Context, id int64) error
}

type StudentService interface {
	ListCurrent(ctx context.Context) ([]domain.Student, error)
	Create(ctx context.Context, student domain.Student) (*domain.Student, error)
	Update(ctx context.Context, student domain.Student) (*domain.Student, error)
	ToggleActive(ctx context.Context, id int64) error
}
