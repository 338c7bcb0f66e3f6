package ports

import (
	"context"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

// CreateUserInput carries the fields an administrator supplies when
// provisioning an identity. The plaintext password never reaches the
// repository layer.
type CreateUserInput struct {
	Username   string
	Password   string
	Role       string
	Email      string
	Phone      string
	FullName   string
	Department string
}

// UpdateUserInput mutates profile fields only; passwords move through
// AuthService.ChangePassword.
type UpdateUserInput struct {
	Username   string
	Role       string
	Email      string
	Phone      string
	FullName   string
	Department string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	CompanyTutors(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	ToggleActive(ctx context.Context, id int64) error
}
