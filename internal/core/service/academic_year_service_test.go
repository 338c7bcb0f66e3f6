package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

type stubYearRepo struct {
	findByIDFn    func(ctx context.Context, id int64) (*domain.AcademicYear, error)
	findActiveFn  func(ctx context.Context) (*domain.AcademicYear, error)
	countGroupsFn func(ctx context.Context, yearID int64) (int, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (s *stubYearRepo) List(ctx context.Context) ([]domain.AcademicYear, error) { return nil, nil }

func (s *stubYearRepo) FindByID(ctx context.Context, id int64) (*domain.AcademicYear, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubYearRepo) FindActive(ctx context.Context) (*domain.AcademicYear, error) {
	return s.findActiveFn(ctx)
}

func (s *stubYearRepo) Create(ctx context.Context, y *domain.AcademicYear) (*domain.AcademicYear, error) {
	return y, nil
}

func (s *stubYearRepo) Update(ctx context.Context, y *domain.AcademicYear) (*domain.AcademicYear, error) {
	return y, nil
}

func (s *stubYearRepo) ToggleActive(ctx context.Context, id int64) error { return nil }

func (s *stubYearRepo) Delete(ctx context.Context, id int64) error { return s.deleteFn(ctx, id) }

func (s *stubYearRepo) CountGroups(ctx context.Context, yearID int64) (int, error) {
	return s.countGroupsFn(ctx, yearID)
}

func TestAcademicYearService_Delete_RefusesWithGroups(t *testing.T) {
	repo := &stubYearRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.AcademicYear, error) {
			return &domain.AcademicYear{ID: id}, nil
		},
		countGroupsFn: func(ctx context.Context, yearID int64) (int, error) { return 2, nil },
		deleteFn: func(ctx context.Context, id int64) error {
			t.Fatal("delete must not run while groups exist")
			return nil
		},
	}

	err := NewAcademicYearService(repo).Delete(context.Background(), 1)
	if !errors.Is(err, domain.ErrHasGroups) {
		t.Fatalf("expected ErrHasGroups, got %v", err)
	}
}

func TestAcademicYearService_Delete_EmptyYear(t *testing.T) {
	deleted := false
	repo := &stubYearRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.AcademicYear, error) {
			return &domain.AcademicYear{ID: id}, nil
		},
		countGroupsFn: func(ctx context.Context, yearID int64) (int, error) { return 0, nil },
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = true
			return nil
		},
	}

	if err := NewAcademicYearService(repo).Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to run")
	}
}

func TestAcademicYearService_Delete_UnknownYear(t *testing.T) {
	repo := &stubYearRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.AcademicYear, error) {
			return nil, domain.ErrAcademicYearNotFound
		},
	}

	err := NewAcademicYearService(repo).Delete(context.Background(), 99)
	if !errors.Is(err, domain.ErrAcademicYearNotFound) {
		t.Fatalf("expected ErrAcademicYearNotFound, got %v", err)
	}
}
