package service

import (
	"context"
	"time"

	"github.com/fpdual/dual-admin/internal/core/domain"
	"github.com/fpdual/dual-admin/internal/core/ports"
)

// AcademicYearService manages school years.
type AcademicYearService struct {
	years ports.AcademicYearRepository
}

func NewAcademicYearService(years ports.AcademicYearRepository) *AcademicYearService {
	return &AcademicYearService{years: years}
}

func (s *AcademicYearService) List(ctx context.Context) ([]domain.AcademicYear, error) {
	return s.years.List(ctx)
}

func (s *AcademicYearService) Create(ctx context.Context, name string, start, end time.Time) (*domain.AcademicYear, error) {
	return s.years.Create(ctx, &domain.AcademicYear{
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Active:    true,
	})
}

func (s *AcademicYearService) Update(ctx context.Context, id int64, name string, start, end time.Time) (*domain.AcademicYear, error) {
	year, err := s.years.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	year.Name = name
	year.StartDate = start
	year.EndDate = end

	return s.years.Update(ctx, year)
}

func (s *AcademicYearService) ToggleActive(ctx context.Context, id int64) error {
	return s.years.ToggleActive(ctx, id)
}

func (s *AcademicYearService) Delete(ctx context.Context, id int64) error {
	if _, err := s.years.FindByID(ctx, id); err != nil {
		return err
	}

	n, err := s.years.CountGroups(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrHasGroups
	}

	return s.years.Delete(ctx, id)
}
