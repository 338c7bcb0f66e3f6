package ports

import (
	"context"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

type AuthService interface {
	// Login verifies identifier+password against an active identity and
	// returns a signed token plus the identity. Unknown identifier,
	// inactive account and wrong password are indistinguishable to the
	// caller (domain.ErrInvalidCredentials).
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)

	// ChangePassword re-hashes the target's password and clears the
	// must-change flag. Non-admin actors may only change their own
	// password and must present the current one.
	ChangePassword(ctx context.Context, actor domain.Claims, targetID int64, currentPassword, newPassword string) (*domain.User, error)
}
