package service

import (
	"context"

	"github.com/fpdual/dual-admin/internal/core/domain"
	"github.com/fpdual/dual-admin/internal/core/ports"
)

// UserService implements administrator-facing identity management.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) CompanyTutors(ctx context.Context) ([]domain.User, error) {
	return s.users.ListCompanyTutors(ctx)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
		Active:       true,
		Email:        input.Email,
		Phone:        input.Phone,
		FullName:     input.FullName,
		Department:   input.Department,
		// Provisioned accounts start on a temporary password.
		MustChangePassword: true,
	})
}

func (s *UserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = input.Username
	user.Role = input.Role
	user.Email = input.Email
	user.Phone = input.Phone
	user.FullName = input.FullName
	user.Department = input.Department

	return s.users.Update(ctx, user)
}

func (s *UserService) ToggleActive(ctx context.Context, id int64) error {
	return s.users.ToggleActive(ctx, id)
}
