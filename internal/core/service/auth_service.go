package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/fpdual/dual-admin/internal/core/domain"
	"github.com/fpdual/dual-admin/internal/core/ports"
)

const passwordCost = 10

// dummyHash is compared against when the identifier does not resolve, so
// the miss path and the wrong-password path stay in the same timing class.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService implements login and password changes.
type AuthService struct {
	users ports.UserRepository
	codec *TokenCodec
}

func NewAuthService(users ports.UserRepository, codec *TokenCodec) *AuthService {
	return &AuthService{users: users, codec: codec}
}

func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	if identifier == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindActiveByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, actor domain.Claims, targetID int64, currentPassword, newPassword string) (*domain.User, error) {
	if actor.UserID != targetID && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if newPassword == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	// Admins may reset other accounts without knowing the old password.
	if !actor.IsAdmin() {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdatePassword(ctx, targetID, hash); err != nil {
		return nil, err
	}

	user.PasswordHash = hash
	user.MustChangePassword = false
	return user, nil
}

func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
