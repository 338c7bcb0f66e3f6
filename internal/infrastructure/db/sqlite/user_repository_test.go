package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := Connect(ctx, Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, repo *UserRepository, username string, active bool) *domain.User {
	t.Helper()
	user, err := repo.Create(context.Background(), &domain.User{
		Username:           username,
		PasswordHash:       "hash-" + username,
		Role:               domain.RoleCenterTutor,
		Active:             active,
		Email:              username + "@example.com",
		Phone:              "+34600000001",
		FullName:           "Test " + username,
		Department:         "Informática",
		MustChangePassword: true,
	})
	if err != nil {
		t.Fatalf("seed %s: %v", username, err)
	}
	return user
}

func TestUserRepository_FindActiveByIdentifier(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	seedUser(t, repo, "carmen", true)

	byUsername, err := repo.FindActiveByIdentifier(context.Background(), "carmen")
	if err != nil {
		t.Fatalf("by username: %v", err)
	}
	byEmail, err := repo.FindActiveByIdentifier(context.Background(), "carmen@example.com")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if byUsername.ID != byEmail.ID {
		t.Fatalf("username and email lookups disagree: %d vs %d", byUsername.ID, byEmail.ID)
	}
	if byUsername.PasswordHash != "hash-carmen" {
		t.Fatalf("hash not loaded: %+v", byUsername)
	}
}

func TestUserRepository_FindActiveByIdentifier_SkipsInactive(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	seedUser(t, repo, "dormant", false)

	_, err := repo.FindActiveByIdentifier(context.Background(), "dormant")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	seedUser(t, repo, "carmen", true)

	_, err := repo.Create(context.Background(), &domain.User{
		Username:     "carmen",
		PasswordHash: "other-hash",
		Role:         domain.RoleAdmin,
		Active:       true,
		Email:        "other@example.com",
		Phone:        "+34600000002",
		FullName:     "Other",
		Department:   "Dirección",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepository_ToggleActive(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	user := seedUser(t, repo, "carmen", true)

	if err := repo.ToggleActive(context.Background(), user.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	got, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.Active {
		t.Fatal("expected user to be inactive after toggle")
	}

	if err := repo.ToggleActive(context.Background(), 999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_UpdatePassword_ClearsMustChange(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	user := seedUser(t, repo, "carmen", true)

	if err := repo.UpdatePassword(context.Background(), user.ID, "new-hash"); err != nil {
		t.Fatalf("update password: %v", err)
	}

	got, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.PasswordHash != "new-hash" {
		t.Fatalf("hash not updated: %q", got.PasswordHash)
	}
	if got.MustChangePassword {
		t.Fatal("must_change_password should be cleared")
	}
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := SeedAdmin(ctx, db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := SeedAdmin(ctx, db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var n int
	if err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users WHERE username = 'admin'`); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected exactly one admin, got %d", n)
	}

	repo := NewUserRepository(db)
	admin, err := repo.FindActiveByIdentifier(ctx, "admin")
	if err != nil {
		t.Fatalf("find admin: %v", err)
	}
	if !admin.MustChangePassword {
		t.Fatal("seeded admin must be forced to change password")
	}
}
