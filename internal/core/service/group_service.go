package service

import (
	"context"

	"github.com/fpdual/dual-admin/internal/core/domain"
	"github.com/fpdual/dual-admin/internal/core/ports"
)

// GroupService manages student groups within the active academic year.
type GroupService struct {
	groups ports.GroupRepository
	years  ports.AcademicYearRepository
}

func NewGroupService(groups ports.GroupRepository, years ports.AcademicYearRepository) *GroupService {
	return &GroupService{groups: groups, years: years}
}

func (s *GroupService) List(ctx context.Context) ([]domain.Group, error) {
	return s.groups.List(ctx)
}

func (s *GroupService) Create(ctx context.Context, name string) (*domain.Group, error) {
	year, err := s.years.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return s.groups.Create(ctx, name, year.ID)
}

func (s *GroupService) Rename(ctx context.Context, id int64, name string) (*domain.Group, error) {
	return s.groups.Rename(ctx, id, name)
}

func (s *GroupService) ToggleActive(ctx context.Context, id int64) error {
	return s.groups.ToggleActive(ctx, id)
}

func (s *GroupService) Delete(ctx context.Context, id int64) error {
	if _, err := s.groups.FindByID(ctx, id); err != nil {
		return err
	}

	n, err := s.groups.CountStudents(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasStudents
	}

	return s.groups.Delete(ctx, id)
}
