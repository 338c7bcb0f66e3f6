package service

import (
	"context"

	"github.com/fpdual/dual-admin/internal/core/domain"
	"github.com/fpdual/dual-admin/internal/core/ports"
)

// StudentService manages trainee records.
type StudentService struct {
	students ports.StudentRepository
}

func NewStudentService(students ports.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

func (s *StudentService) ListCurrent(ctx context.Context) ([]domain.Student, error) {
	return s.students.ListCurrent(ctx)
}

func (s *StudentService) Create(ctx context.Context, student domain.Student) (*domain.Student, error) {
	student.Active = true
	return s.students.Create(ctx, &student)
}

func (s *StudentService) Update(ctx context.Context, student domain.Student) (*domain.Student, error) {
	existing, err := s.students.FindByID(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	student.Active = existing.Active
	return s.students.Update(ctx, &student)
}

func (s *StudentService) ToggleActive(ctx context.Context, id int64) error {
	return s.students.ToggleActive(ctx, id)
}
