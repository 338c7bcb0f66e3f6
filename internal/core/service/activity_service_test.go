package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

type stubActivityRepo struct {
	findByIDFn     func(ctx context.Context, id int64) (*domain.Activity, error)
	createFn       func(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	updateStatusFn func(ctx context.Context, id int64, status domain.ActivityStatus, comments *string) (*domain.Activity, error)
}

func (s *stubActivityRepo) List(ctx context.Context) ([]domain.Activity, error) { return nil, nil }

func (s *stubActivityRepo) FindByID(ctx context.Context, id int64) (*domain.Activity, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubActivityRepo) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	return s.createFn(ctx, a)
}

func (s *stubActivityRepo) UpdateStatus(ctx context.Context, id int64, status domain.ActivityStatus, comments *string) (*domain.Activity, error) {
	return s.updateStatusFn(ctx, id, status, comments)
}

type stubStudentRepo struct {
	findByIDFn func(ctx context.Context, id int64) (*domain.Student, error)
}

func (s *stubStudentRepo) ListCurrent(ctx context.Context) ([]domain.Student, error) {
	return nil, nil
}

func (s *stubStudentRepo) FindByID(ctx context.Context, id int64) (*domain.Student, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubStudentRepo) Create(ctx context.Context, st *domain.Student) (*domain.Student, error) {
	return st, nil
}

func (s *stubStudentRepo) Update(ctx context.Context, st *domain.Student) (*domain.Student, error) {
	return st, nil
}

func (s *stubStudentRepo) ToggleActive(ctx context.Context, id int64) error { return nil }

func TestActivityService_Log_StartsPending(t *testing.T) {
	activities := &stubActivityRepo{
		createFn: func(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
			if a.Status != domain.ActivityPending {
				t.Fatalf("expected pending status, got %q", a.Status)
			}
			a.ID = 1
			return a, nil
		},
	}
	students := &stubStudentRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Student, error) {
			return &domain.Student{ID: id}, nil
		},
	}

	svc := NewActivityService(activities, students)
	activity, err := svc.Log(context.Background(), 5, "Montaje de red local", time.Now(), 4)
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if activity.StudentID != 5 || activity.Hours != 4 {
		t.Fatalf("unexpected activity: %+v", activity)
	}
}

func TestActivityService_Log_UnknownStudent(t *testing.T) {
	activities := &stubActivityRepo{
		createFn: func(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
			t.Fatal("create must not run for an unknown student")
			return nil, nil
		},
	}
	students := &stubStudentRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Student, error) {
			return nil, domain.ErrStudentNotFound
		},
	}

	_, err := NewActivityService(activities, students).Log(context.Background(), 99, "x", time.Now(), 1)
	if !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestActivityService_Review_RejectsBadStatus(t *testing.T) {
	activities := &stubActivityRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Activity, error) {
			t.Fatal("lookup must not run for an invalid status")
			return nil, nil
		},
	}

	svc := NewActivityService(activities, &stubStudentRepo{})
	_, err := svc.Review(context.Background(), 1, domain.ActivityPending, nil)
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestActivityService_Review_Approves(t *testing.T) {
	comments := "Buen trabajo"
	activities := &stubActivityRepo{
		findByIDFn: func(ctx context.Context, id int64) (*domain.Activity, error) {
			return &domain.Activity{ID: id, Status: domain.ActivityPending}, nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status domain.ActivityStatus, c *string) (*domain.Activity, error) {
			if status != domain.ActivityApproved {
				t.Fatalf("expected approved, got %q", status)
			}
			if c == nil || *c != comments {
				t.Fatalf("comments not forwarded: %v", c)
			}
			return &domain.Activity{ID: id, Status: status, Comments: c}, nil
		},
	}

	svc := NewActivityService(activities, &stubStudentRepo{})
	activity, err := svc.Review(context.Background(), 1, domain.ActivityApproved, &comments)
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if activity.Status != domain.ActivityApproved {
		t.Fatalf("unexpected status: %q", activity.Status)
	}
}
