package ports

import (
	"context"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

// UserRepository defines the persistence surface for identities.
type UserRepository interface {
	// FindActiveByIdentifier matches identifier against username or email
	// of active users only. Returns domain.ErrUserNotFound on miss.
	FindActiveByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListCompanyTutors(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	ToggleActive(ctx context.Context, id int64) error
	// UpdatePassword stores a new hash and clears must_change_password in
	// the same write.
	UpdatePassword(ctx context.Context, id int64, hash string) error
}
