package service

import (
	"context"
	"time"

	"github.com/fpdual/dual-admin/internal/core/domain"
	"github.com/fpdual/dual-admin/internal/core/ports"
)

// ActivityService handles the logging and review of student activities.
type ActivityService struct {
	activities ports.ActivityRepository
	students   ports.StudentRepository
}

func NewActivityService(activities ports.ActivityRepository, students ports.StudentRepository) *ActivityService {
	return &ActivityService{activities: activities, students: students}
}

func (s *ActivityService) List(ctx context.Context) ([]domain.Activity, error) {
	return s.activities.List(ctx)
}

func (s *ActivityService) Log(ctx context.Context, studentID int64, description string, date time.Time, hours int) (*domain.Activity, error) {
	if _, err := s.students.FindByID(ctx, studentID); err != nil {
		return nil, err
	}

	return s.activities.Create(ctx, &domain.Activity{
		StudentID:   studentID,
		Description: description,
		Date:        date,
		Hours:       hours,
		Status:      domain.ActivityPending,
	})
}

func (s *ActivityService) Review(ctx context.Context, id int64, status domain.ActivityStatus, comments *string) (*domain.Activity, error) {
	if status != domain.ActivityApproved && status != domain.ActivityRejected {
		return nil, domain.ErrInvalidStatus
	}
	if _, err := s.activities.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.activities.UpdateStatus(ctx, id, status, comments)
}
